package dto

import "time"

// SavedPostResponse 收藏紀錄連同貼文摘要資訊
// swagger:model dto.SavedPostResponse
type SavedPostResponse struct {
	ID             int       `json:"id"`
	ClientID       int       `json:"client_id"`
	PostID         int       `json:"post_id"`
	SavedAt        time.Time `json:"saved_at"`
	Title          string    `json:"title"`
	Description    *string   `json:"description"`
	Price          *float64  `json:"price"`
	MediaURL       string    `json:"media_url"`
	Type           string    `json:"type"`
	CategoryName   *string   `json:"category_name"`
	AdvertiserName string    `json:"advertiser_name"`
}

// SavedPostListResponse 收藏列表回應
// swagger:model dto.SavedPostListResponse
type SavedPostListResponse struct {
	SavedPosts []SavedPostResponse `json:"saved_posts"`
	Pagination SavedPagination     `json:"pagination"`
}
