package model

import "time"

// 貼文型態
const (
	PostTypeReel = "reel"
	PostTypePost = "post"
)

type Post struct {
	ID               int        `db:"id" json:"id"`
	AdvertiserID     int        `db:"advertiser_id" json:"advertiser_id"`
	CategoryID       *int       `db:"category_id" json:"category_id"`
	Type             string     `db:"type" json:"type"`
	Title            string     `db:"title" json:"title"`
	Description      *string    `db:"description" json:"description"`
	Price            *float64   `db:"price" json:"price"`
	OldPrice         *float64   `db:"old_price" json:"old_price"`
	WithReservation  bool       `db:"with_reservation" json:"with_reservation"`
	ReservationTime  *time.Time `db:"reservation_time" json:"reservation_time"`
	ReservationLimit *int       `db:"reservation_limit" json:"reservation_limit"`
	SocialLink       *string    `db:"social_link" json:"social_link"`
	MediaURL         string     `db:"media_url" json:"media_url"`
	CreatedAt        time.Time  `db:"created_at" json:"created_at"`
}
