package dto

import (
	"time"

	"admarket/internal/model"
)

// PostResponse 貼文連同分類名稱與廣告主名稱
// swagger:model dto.PostResponse
type PostResponse struct {
	model.Post
	CategoryName     *string       `json:"category_name"`
	AdvertiserName   string        `json:"advertiser_name"`
	AdvertiserEmail  *string       `json:"advertiser_email,omitempty"`
	ReservationCount int           `json:"reservation_count"`
	Availability     *Availability `json:"availability,omitempty"`
}

// Availability 貼文預約可用量，由讀取當下的狀態推導
// 不接受預約時僅回傳 accepts_reservations=false
// swagger:model dto.Availability
type Availability struct {
	AcceptsReservations bool  `json:"accepts_reservations"`
	CurrentReservations *int  `json:"current_reservations,omitempty"`
	AvailableSlots      *int  `json:"available_slots,omitempty"`
	IsAvailable         *bool `json:"is_available,omitempty"`
	IsExpired           *bool `json:"is_expired,omitempty"`
}

// NewAvailability 依貼文設定與有效預約數計算可用量
// reservation_limit 未設定時 available_slots 省略且視為永遠可預約
// is_expired 僅在 reservation_time 有設定且已過期時為 true
func NewAvailability(p *model.Post, activeReservations int, now time.Time) *Availability {
	if !p.WithReservation {
		return &Availability{AcceptsReservations: false}
	}

	current := activeReservations
	var slots *int
	available := true
	if p.ReservationLimit != nil {
		n := *p.ReservationLimit - activeReservations
		slots = &n
		available = n > 0
	}
	expired := p.ReservationTime != nil && now.After(*p.ReservationTime)

	return &Availability{
		AcceptsReservations: true,
		CurrentReservations: &current,
		AvailableSlots:      slots,
		IsAvailable:         &available,
		IsExpired:           &expired,
	}
}
