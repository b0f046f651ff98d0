package store

import (
	"context"
	"fmt"

	"admarket/internal/database"
	"admarket/internal/model"
)

// UpsertSettings 以 user_id 為鍵建立或覆寫使用者設定，冪等
func UpsertSettings(ctx context.Context, db database.DB, s *model.UserSettings) (*model.UserSettings, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO user_settings (user_id, notifications_email, notifications_push, language, timezone, profile_visibility, marketing_opt_in)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (user_id) DO UPDATE SET
		     notifications_email = EXCLUDED.notifications_email,
		     notifications_push = EXCLUDED.notifications_push,
		     language = EXCLUDED.language,
		     timezone = EXCLUDED.timezone,
		     profile_visibility = EXCLUDED.profile_visibility,
		     marketing_opt_in = EXCLUDED.marketing_opt_in,
		     updated_at = CURRENT_TIMESTAMP
		 RETURNING user_id, notifications_email, notifications_push, language, timezone, profile_visibility, marketing_opt_in, updated_at`,
		s.UserID,
		s.NotificationsEmail,
		s.NotificationsPush,
		s.Language,
		s.Timezone,
		s.ProfileVisibility,
		s.MarketingOptIn,
	)
	out := &model.UserSettings{}
	if err := scanSettings(row, out); err != nil {
		return nil, fmt.Errorf("UpsertSettings: %w", err)
	}
	return out, nil
}

// GetSettings 讀取使用者設定，無資料時回傳 pgx.ErrNoRows
func GetSettings(ctx context.Context, db database.DB, userID int) (*model.UserSettings, error) {
	row := db.QueryRow(ctx,
		`SELECT user_id, notifications_email, notifications_push, language, timezone, profile_visibility, marketing_opt_in, updated_at
		 FROM user_settings WHERE user_id = $1`,
		userID,
	)
	out := &model.UserSettings{}
	if err := scanSettings(row, out); err != nil {
		return nil, fmt.Errorf("GetSettings: %w", err)
	}
	return out, nil
}

func scanSettings(row scanner, s *model.UserSettings) error {
	return row.Scan(
		&s.UserID,
		&s.NotificationsEmail,
		&s.NotificationsPush,
		&s.Language,
		&s.Timezone,
		&s.ProfileVisibility,
		&s.MarketingOptIn,
		&s.UpdatedAt,
	)
}
