package model

import (
	"encoding/json"
	"time"
)

type UserProfile struct {
	UserID      int             `db:"user_id" json:"user_id"`
	DisplayName *string         `db:"display_name" json:"display_name"`
	AvatarURL   *string         `db:"avatar_url" json:"avatar_url"`
	Bio         *string         `db:"bio" json:"bio"`
	Website     *string         `db:"website" json:"website"`
	CompanyName *string         `db:"company_name" json:"company_name"`
	Location    *string         `db:"location" json:"location"`
	SocialLinks json.RawMessage `db:"social_links" json:"social_links"`
	Metadata    json.RawMessage `db:"metadata" json:"metadata"`
	UpdatedAt   time.Time       `db:"updated_at" json:"updated_at"`
}

// ProfileOverview 對應 v_user_profile_overview 檢視表的一列
// 使用者存在但尚未建立 profile 時，profile 欄位為 null
type ProfileOverview struct {
	UserID      int             `db:"user_id" json:"user_id"`
	Name        string          `db:"name" json:"name"`
	Email       string          `db:"email" json:"email"`
	Phone       string          `db:"phone" json:"phone"`
	Role        string          `db:"role" json:"role"`
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
	DisplayName *string         `db:"display_name" json:"display_name"`
	AvatarURL   *string         `db:"avatar_url" json:"avatar_url"`
	Bio         *string         `db:"bio" json:"bio"`
	Website     *string         `db:"website" json:"website"`
	CompanyName *string         `db:"company_name" json:"company_name"`
	Location    *string         `db:"location" json:"location"`
	SocialLinks json.RawMessage `db:"social_links" json:"social_links"`
	Metadata    json.RawMessage `db:"metadata" json:"metadata"`
}
