package dto

// PostListResponse 貼文列表回應
// swagger:model dto.PostListResponse
type PostListResponse struct {
	Posts      []PostResponse `json:"posts"`
	Pagination PostPagination `json:"pagination"`
}

// AdvertiserPostListResponse 廣告主貼文列表回應
// swagger:model dto.AdvertiserPostListResponse
type AdvertiserPostListResponse struct {
	Posts      []PostResponse       `json:"posts"`
	Pagination AdvertiserPagination `json:"pagination"`
}
