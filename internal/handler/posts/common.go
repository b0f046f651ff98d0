// File: internal/handler/posts/common.go
package posts

import (
	"strconv"

	"admarket/internal/dto"
	"admarket/internal/model"

	"github.com/labstack/echo/v4"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// parsePageLimit 解析 page/limit 查詢參數，缺漏或不合法時使用預設值
func parsePageLimit(c echo.Context) (page, limit int) {
	page = defaultPage
	limit = defaultLimit
	if v, err := strconv.Atoi(c.QueryParam("page")); err == nil && v > 0 {
		page = v
	}
	if v, err := strconv.Atoi(c.QueryParam("limit")); err == nil && v > 0 {
		limit = v
	}
	return page, limit
}

// toPostResponse 由查詢列組裝回應，availability 由呼叫端決定是否附帶
func toPostResponse(d *model.PostDetail) dto.PostResponse {
	return dto.PostResponse{
		Post:             d.Post,
		CategoryName:     d.CategoryName,
		AdvertiserName:   d.AdvertiserName,
		AdvertiserEmail:  d.AdvertiserEmail,
		ReservationCount: d.ReservationCount,
	}
}

func toPostResponses(details []model.PostDetail) []dto.PostResponse {
	out := make([]dto.PostResponse, 0, len(details))
	for i := range details {
		out = append(out, toPostResponse(&details[i]))
	}
	return out
}
