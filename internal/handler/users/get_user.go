// File: internal/handler/users/get_user.go
package users

import (
	"errors"
	"net/http"
	"strconv"

	"admarket/internal/database"
	"admarket/internal/dto"
	"admarket/internal/store"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

// GetUserHandler 依 ID 取得使用者的安全投影
// @Summary     Get user by ID
// @Tags        users
// @Produce     json
// @Param       id path int true "使用者 ID"
// @Success     200 {object} dto.UserResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Router      /users/{id} [get]
func GetUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid user id"})
		}

		user, err := store.GetUserByID(c.Request().Context(), db, id)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, dto.HTTPError{Message: "user not found"})
			}
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to retrieve user"})
		}

		return c.JSON(http.StatusOK, dto.NewUserResponse(user))
	}
}

// GetUserByEmailHandler 依 Email 取得使用者的安全投影
// @Summary     Get user by email
// @Tags        users
// @Produce     json
// @Param       email path string true "使用者 Email"
// @Success     200 {object} dto.UserResponse
// @Failure     404 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Router      /users/email/{email} [get]
func GetUserByEmailHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		email := c.Param("email")

		user, err := store.GetUserByEmail(c.Request().Context(), db, email)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, dto.HTTPError{Message: "user not found"})
			}
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to retrieve user"})
		}

		return c.JSON(http.StatusOK, dto.NewUserResponse(user))
	}
}
