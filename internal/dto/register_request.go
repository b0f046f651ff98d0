package dto

// RegisterRequest 定義註冊請求格式
// 所有欄位皆為必填，驗證失敗不會觸碰資料庫
// swagger:model dto.RegisterRequest
type RegisterRequest struct {
	// 使用者姓名
	// required: true
	Name string `json:"name" form:"name" validate:"required" example:"Alice"`

	// 使用者 Email (會自動轉為小寫)
	// required: true
	Email string `json:"email" form:"email" validate:"required,email" example:"alice@example.com"`

	// 聯絡電話
	// required: true
	Phone string `json:"phone" form:"phone" validate:"required" example:"+88691234567"`

	// 使用者密碼
	// required: true
	Password string `json:"password" form:"password" validate:"required" example:"Secret123!"`
}
