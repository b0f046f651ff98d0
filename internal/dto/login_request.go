package dto

// LoginRequest 定義登入請求格式
// swagger:model dto.LoginRequest
type LoginRequest struct {
	// 使用者 Email
	// required: true
	Email string `json:"email" form:"email" validate:"required,email" example:"alice@example.com"`

	// 使用者密碼
	// required: true
	Password string `json:"password" form:"password" validate:"required" example:"Secret123!"`
}
