package model

import "time"

type UserSettings struct {
	UserID             int       `db:"user_id" json:"user_id"`
	NotificationsEmail bool      `db:"notifications_email" json:"notifications_email"`
	NotificationsPush  bool      `db:"notifications_push" json:"notifications_push"`
	Language           string    `db:"language" json:"language"`
	Timezone           string    `db:"timezone" json:"timezone"`
	ProfileVisibility  string    `db:"profile_visibility" json:"profile_visibility"`
	MarketingOptIn     bool      `db:"marketing_opt_in" json:"marketing_opt_in"`
	UpdatedAt          time.Time `db:"updated_at" json:"updated_at"`
}
