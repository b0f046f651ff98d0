package store

import (
	"context"
	"fmt"

	"admarket/internal/database"
	"admarket/internal/model"
)

// CreateReservation 建立一筆 active 預約
// reservation_limit 不在寫入時檢查，可用量只在讀取時推導
// 同一 (post_id, client_id) 受唯一約束保護
func CreateReservation(ctx context.Context, db database.DB, postID, clientID int) (*model.Reservation, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO reservations (post_id, client_id, status)
		 VALUES ($1, $2, 'active')
		 RETURNING id, post_id, client_id, status, created_at`,
		postID, clientID,
	)
	r := &model.Reservation{}
	if err := row.Scan(&r.ID, &r.PostID, &r.ClientID, &r.Status, &r.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreateReservation: %w", err)
	}
	return r, nil
}

func CountActiveReservations(ctx context.Context, db database.DB, postID int) (int, error) {
	var total int
	if err := db.QueryRow(ctx,
		`SELECT COUNT(*) FROM reservations WHERE post_id = $1 AND status = 'active'`,
		postID,
	).Scan(&total); err != nil {
		return 0, fmt.Errorf("CountActiveReservations: %w", err)
	}
	return total, nil
}
