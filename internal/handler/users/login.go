// File: internal/handler/users/login.go
package users

import (
	"net/http"
	"strings"

	"admarket/internal/database"
	"admarket/internal/dto"
	"admarket/internal/service"
	"admarket/internal/store"

	"github.com/labstack/echo/v4"
)

// LoginHandler 使用 Email/Password 驗證並回傳 JWT
// allowedRoles 非空時限制帳號角色，不符合回傳 403
// 查無帳號與密碼錯誤回傳相同訊息，避免洩漏帳號是否存在
// @Summary     登入使用者
// @Description 使用 Email 與 Password 進行驗證，回傳一小時有效的存取令牌
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       request body dto.LoginRequest true "登入資料"
// @Success     200 {object} dto.LoginResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     401 {object} dto.HTTPError
// @Failure     403 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Router      /users/login [post]
func LoginHandler(db database.DB, allowedRoles ...string) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid request data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
		}

		user, err := store.GetUserByEmail(c.Request().Context(), db, strings.ToLower(req.Email))
		if err != nil {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "invalid credentials"})
		}

		authUser, err := service.AuthenticateUser(*user, req.Password)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "invalid credentials"})
		}

		if len(allowedRoles) > 0 && !roleAllowed(authUser.Role, allowedRoles) {
			return c.JSON(http.StatusForbidden, dto.HTTPError{Message: "account role not permitted"})
		}

		token, err := service.IssueAccessToken(*authUser, service.TokenTTL)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to issue token"})
		}

		return c.JSON(http.StatusOK, dto.LoginResponse{Token: token})
	}
}

func roleAllowed(role string, allowed []string) bool {
	for _, r := range allowed {
		if role == r {
			return true
		}
	}
	return false
}
