// File: internal/handler/users/register.go
package users

import (
	"net/http"
	"strings"

	"admarket/internal/database"
	"admarket/internal/dto"
	"admarket/internal/model"
	"admarket/internal/service"
	"admarket/internal/store"

	"github.com/labstack/echo/v4"
)

// RegisterHandler 註冊新使用者，role 由路由決定
// @Summary     Register a new account
// @Description 建立新帳號，Email 重複時回傳 409
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       request body dto.RegisterRequest true "註冊資料"
// @Success     201 {object} dto.UserResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     409 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Router      /users/register [post]
func RegisterHandler(db database.DB, role string) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.RegisterRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid request data"})
		}
		// 欄位驗證全部通過才會觸碰資料庫
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
		}

		// Email 轉為小寫以確保一致性
		req.Email = strings.ToLower(req.Email)

		hash, err := service.HashPassword(req.Password)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to hash password"})
		}

		user := &model.User{
			Name:         req.Name,
			Email:        req.Email,
			Phone:        req.Phone,
			PasswordHash: hash,
			Role:         role,
		}

		created, err := store.CreateUser(c.Request().Context(), db, user)
		if err != nil {
			// 唯一約束衝突代表 Email 已被註冊
			if database.IsUniqueViolation(err) {
				return c.JSON(http.StatusConflict, dto.HTTPError{Message: "email already exists"})
			}
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "user registration failed"})
		}

		return c.JSON(http.StatusCreated, dto.NewUserResponse(created))
	}
}
