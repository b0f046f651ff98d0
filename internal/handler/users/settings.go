// File: internal/handler/users/settings.go
package users

import (
	"errors"
	"net/http"
	"strconv"

	"admarket/internal/database"
	"admarket/internal/dto"
	"admarket/internal/model"
	"admarket/internal/store"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

// SettingsResponse 包一層 settings 欄位的回應
// swagger:model SettingsResponse
type SettingsResponse struct {
	Settings *model.UserSettings `json:"settings"`
}

// UpsertSettingsHandler 建立或覆寫使用者設定，冪等
// @Summary     Upsert user settings
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       user_id path int true "使用者 ID"
// @Param       request body dto.UpsertSettingsRequest true "設定欄位"
// @Success     200 {object} SettingsResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /users/{user_id}/settings [post]
func UpsertSettingsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := strconv.Atoi(c.Param("user_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid user id"})
		}

		var req dto.UpsertSettingsRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid request data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
		}

		settings := &model.UserSettings{
			UserID:             userID,
			NotificationsEmail: req.NotificationsEmail,
			NotificationsPush:  req.NotificationsPush,
			Language:           req.Language,
			Timezone:           req.Timezone,
			ProfileVisibility:  req.ProfileVisibility,
			MarketingOptIn:     req.MarketingOptIn,
		}

		out, err := store.UpsertSettings(c.Request().Context(), db, settings)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to upsert settings"})
		}

		return c.JSON(http.StatusOK, SettingsResponse{Settings: out})
	}
}

// GetSettingsHandler 讀取使用者設定
// @Summary     Get user settings
// @Tags        users
// @Produce     json
// @Param       user_id path int true "使用者 ID"
// @Success     200 {object} model.UserSettings
// @Failure     400 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /users/{user_id}/settings [get]
func GetSettingsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := strconv.Atoi(c.Param("user_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid user id"})
		}

		settings, err := store.GetSettings(c.Request().Context(), db, userID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, dto.HTTPError{Message: "settings not found"})
			}
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to fetch settings"})
		}

		return c.JSON(http.StatusOK, settings)
	}
}
