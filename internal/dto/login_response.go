package dto

// LoginResponse 登入成功回傳的存取令牌
// swagger:model dto.LoginResponse
type LoginResponse struct {
	Token string `json:"token"`
}
