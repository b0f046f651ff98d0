package dto

// UpsertSettingsRequest 建立或更新使用者設定的請求格式
// swagger:model dto.UpsertSettingsRequest
type UpsertSettingsRequest struct {
	NotificationsEmail bool   `json:"notifications_email"`
	NotificationsPush  bool   `json:"notifications_push"`
	Language           string `json:"language" validate:"required"`
	Timezone           string `json:"timezone" validate:"required"`
	ProfileVisibility  string `json:"profile_visibility" validate:"required,oneof=public private"`
	MarketingOptIn     bool   `json:"marketing_opt_in"`
}
