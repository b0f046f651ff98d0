package model

// PostDetail 貼文連同列表與明細查詢需要的關聯欄位
// ReservationCount 的語意依查詢而定：
// 一般列表與明細只計 active 預約，廣告主列表計全部預約
type PostDetail struct {
	Post
	CategoryName     *string
	AdvertiserName   string
	AdvertiserEmail  *string
	ReservationCount int
}

// SavedPostDetail 收藏紀錄連同貼文摘要欄位
type SavedPostDetail struct {
	SavedPost
	Title          string
	Description    *string
	Price          *float64
	MediaURL       string
	Type           string
	CategoryName   *string
	AdvertiserName string
}
