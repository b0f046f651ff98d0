package dto

// TotalPages 計算總頁數 = ceil(total / limit)
func TotalPages(total, limit int) int {
	if limit <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}

// PostPagination 貼文列表的分頁資訊
// swagger:model dto.PostPagination
type PostPagination struct {
	CurrentPage  int  `json:"current_page" example:"1"`
	TotalPages   int  `json:"total_pages" example:"5"`
	TotalPosts   int  `json:"total_posts" example:"42"`
	PostsPerPage int  `json:"posts_per_page" example:"10"`
	HasNextPage  bool `json:"has_next_page" example:"true"`
	HasPrevPage  bool `json:"has_prev_page" example:"false"`
}

// NewPostPagination 依目前頁碼、每頁筆數與總筆數組裝分頁資訊
func NewPostPagination(page, limit, total int) PostPagination {
	totalPages := TotalPages(total, limit)
	return PostPagination{
		CurrentPage:  page,
		TotalPages:   totalPages,
		TotalPosts:   total,
		PostsPerPage: limit,
		HasNextPage:  page < totalPages,
		HasPrevPage:  page > 1,
	}
}

// AdvertiserPagination 廣告主貼文列表的分頁資訊，不含前後頁旗標
// swagger:model dto.AdvertiserPagination
type AdvertiserPagination struct {
	CurrentPage  int `json:"current_page" example:"1"`
	TotalPages   int `json:"total_pages" example:"3"`
	TotalPosts   int `json:"total_posts" example:"27"`
	PostsPerPage int `json:"posts_per_page" example:"10"`
}

// NewAdvertiserPagination 組裝廣告主貼文列表分頁資訊
func NewAdvertiserPagination(page, limit, total int) AdvertiserPagination {
	return AdvertiserPagination{
		CurrentPage:  page,
		TotalPages:   TotalPages(total, limit),
		TotalPosts:   total,
		PostsPerPage: limit,
	}
}

// SavedPagination 收藏列表的分頁資訊
// swagger:model dto.SavedPagination
type SavedPagination struct {
	CurrentPage  int `json:"current_page" example:"1"`
	TotalPages   int `json:"total_pages" example:"2"`
	TotalSaved   int `json:"total_saved" example:"13"`
	PostsPerPage int `json:"posts_per_page" example:"10"`
}

// NewSavedPagination 組裝收藏列表分頁資訊
func NewSavedPagination(page, limit, total int) SavedPagination {
	return SavedPagination{
		CurrentPage:  page,
		TotalPages:   TotalPages(total, limit),
		TotalSaved:   total,
		PostsPerPage: limit,
	}
}
