// File: internal/handler/posts/advertiser_posts.go
package posts

import (
	"net/http"
	"strconv"

	"admarket/internal/database"
	"admarket/internal/dto"
	"admarket/internal/store"

	"github.com/labstack/echo/v4"
)

// ListPostsByAdvertiserHandler 分頁列出單一廣告主的貼文，新的在前
// 預約數計全部狀態，與一般列表不同
// @Summary     List posts by advertiser
// @Tags        posts
// @Produce     json
// @Param       advertiser_id path int true "廣告主 ID"
// @Param       page  query int false "頁碼，預設 1"
// @Param       limit query int false "每頁筆數，預設 10"
// @Success     200 {object} dto.AdvertiserPostListResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Router      /posts/advertiser/{advertiser_id} [get]
func ListPostsByAdvertiserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		advertiserID, err := strconv.Atoi(c.Param("advertiser_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid advertiser id"})
		}

		page, limit := parsePageLimit(c)

		total, err := store.CountPostsByAdvertiser(c.Request().Context(), db, advertiserID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to retrieve posts"})
		}

		details, err := store.ListPostsByAdvertiser(c.Request().Context(), db, advertiserID, page, limit)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to retrieve posts"})
		}

		return c.JSON(http.StatusOK, dto.AdvertiserPostListResponse{
			Posts:      toPostResponses(details),
			Pagination: dto.NewAdvertiserPagination(page, limit, total),
		})
	}
}
