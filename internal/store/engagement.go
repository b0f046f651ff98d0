package store

import (
	"context"
	"fmt"

	"admarket/internal/database"
	"admarket/internal/model"
)

// GetPostEngagement 讀取 v_post_engagement 的聚合列，貼文不存在時回傳 pgx.ErrNoRows
func GetPostEngagement(ctx context.Context, db database.DB, postID int) (*model.PostEngagement, error) {
	row := db.QueryRow(ctx,
		`SELECT post_id, title, comments_count, saves_count, reservations_count, active_reservations_count
		 FROM v_post_engagement WHERE post_id = $1`,
		postID,
	)
	e := &model.PostEngagement{}
	if err := row.Scan(
		&e.PostID,
		&e.Title,
		&e.CommentsCount,
		&e.SavesCount,
		&e.ReservationsCount,
		&e.ActiveReservationsCount,
	); err != nil {
		return nil, fmt.Errorf("GetPostEngagement: %w", err)
	}
	return e, nil
}
