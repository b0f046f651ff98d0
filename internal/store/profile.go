package store

import (
	"context"
	"fmt"

	"admarket/internal/database"
	"admarket/internal/model"
)

// UpsertProfile 以 user_id 為鍵建立或覆寫 profile，冪等
func UpsertProfile(ctx context.Context, db database.DB, p *model.UserProfile) (*model.UserProfile, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO user_profiles (user_id, display_name, avatar_url, bio, website, company_name, location, social_links, metadata)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8::jsonb, $9::jsonb)
		 ON CONFLICT (user_id) DO UPDATE SET
		     display_name = EXCLUDED.display_name,
		     avatar_url = EXCLUDED.avatar_url,
		     bio = EXCLUDED.bio,
		     website = EXCLUDED.website,
		     company_name = EXCLUDED.company_name,
		     location = EXCLUDED.location,
		     social_links = EXCLUDED.social_links,
		     metadata = EXCLUDED.metadata,
		     updated_at = CURRENT_TIMESTAMP
		 RETURNING user_id, display_name, avatar_url, bio, website, company_name, location, social_links, metadata, updated_at`,
		p.UserID,
		p.DisplayName,
		p.AvatarURL,
		p.Bio,
		p.Website,
		p.CompanyName,
		p.Location,
		p.SocialLinks,
		p.Metadata,
	)
	out := &model.UserProfile{}
	if err := row.Scan(
		&out.UserID,
		&out.DisplayName,
		&out.AvatarURL,
		&out.Bio,
		&out.Website,
		&out.CompanyName,
		&out.Location,
		&out.SocialLinks,
		&out.Metadata,
		&out.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("UpsertProfile: %w", err)
	}
	return out, nil
}

// GetProfileOverview 讀取 v_user_profile_overview，使用者不存在時回傳 pgx.ErrNoRows
func GetProfileOverview(ctx context.Context, db database.DB, userID int) (*model.ProfileOverview, error) {
	row := db.QueryRow(ctx,
		`SELECT user_id, name, email, phone, role, created_at,
		        display_name, avatar_url, bio, website, company_name, location, social_links, metadata
		 FROM v_user_profile_overview WHERE user_id = $1`,
		userID,
	)
	o := &model.ProfileOverview{}
	if err := row.Scan(
		&o.UserID,
		&o.Name,
		&o.Email,
		&o.Phone,
		&o.Role,
		&o.CreatedAt,
		&o.DisplayName,
		&o.AvatarURL,
		&o.Bio,
		&o.Website,
		&o.CompanyName,
		&o.Location,
		&o.SocialLinks,
		&o.Metadata,
	); err != nil {
		return nil, fmt.Errorf("GetProfileOverview: %w", err)
	}
	return o, nil
}
