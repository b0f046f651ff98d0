// File: internal/handler/users/profile.go
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

// ProfileResponse 包一層 profile 欄位的回應
// swagger:model ProfileResponse
type ProfileResponse struct {
	Profile *model.UserProfile `json:"profile"`
}

// UpsertProfileHandler 建立或覆寫使用者 profile，冪等
// 需通過自己或管理員的授權檢查
// @Summary     Upsert user profile
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       user_id path int true "使用者 ID"
// @Param       request body dto.UpsertProfileRequest true "profile 欄位"
// @Success     200 {object} ProfileResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /users/{user_id}/profile [post]
func UpsertProfileHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := strconv.Atoi(c.Param("user_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid user id"})
		}

		var req dto.UpsertProfileRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid request data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
		}

		profile := &model.UserProfile{
			UserID:      userID,
			DisplayName: req.DisplayName,
			AvatarURL:   req.AvatarURL,
			Bio:         req.Bio,
			Website:     req.Website,
			CompanyName: req.CompanyName,
			Location:    req.Location,
			SocialLinks: req.SocialLinks,
			Metadata:    req.Metadata,
		}

		out, err := store.UpsertProfile(c.Request().Context(), db, profile)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to upsert profile"})
		}

		return c.JSON(http.StatusOK, ProfileResponse{Profile: out})
	}
}

// GetProfileOverviewHandler 讀取 profile 總覽檢視表
// @Summary     Get profile overview
// @Tags        users
// @Produce     json
// @Param       user_id path int true "使用者 ID"
// @Success     200 {object} model.ProfileOverview
// @Failure     400 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /users/{user_id}/profile/overview [get]
func GetProfileOverviewHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := strconv.Atoi(c.Param("user_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid user id"})
		}

		overview, err := store.GetProfileOverview(c.Request().Context(), db, userID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, dto.HTTPError{Message: "user not found"})
			}
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to fetch profile overview"})
		}

		return c.JSON(http.StatusOK, overview)
	}
}
