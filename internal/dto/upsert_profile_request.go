package dto

import "encoding/json"

// UpsertProfileRequest 建立或更新使用者 profile 的請求格式
// 所有欄位皆為選填，未提供的欄位會覆寫為 null
// swagger:model dto.UpsertProfileRequest
type UpsertProfileRequest struct {
	DisplayName *string         `json:"display_name"`
	AvatarURL   *string         `json:"avatar_url" validate:"omitempty,url"`
	Bio         *string         `json:"bio"`
	Website     *string         `json:"website" validate:"omitempty,url"`
	CompanyName *string         `json:"company_name"`
	Location    *string         `json:"location"`
	SocialLinks json.RawMessage `json:"social_links"`
	Metadata    json.RawMessage `json:"metadata"`
}
