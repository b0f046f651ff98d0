package queue

import "time"

// ReservationCreatedEvent 預約建立後發布的領域事件
type ReservationCreatedEvent struct {
	ReservationID int       `json:"reservation_id"`
	PostID        int       `json:"post_id"`
	ClientID      int       `json:"client_id"`
	CreatedAt     time.Time `json:"created_at"`
}
