package model

import "time"

// 預約狀態
const (
	ReservationStatusActive    = "active"
	ReservationStatusCancelled = "cancelled"
)

type Reservation struct {
	ID        int       `db:"id" json:"id"`
	PostID    int       `db:"post_id" json:"post_id"`
	ClientID  int       `db:"client_id" json:"client_id"`
	Status    string    `db:"status" json:"status"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
