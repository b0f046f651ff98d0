// File: internal/handler/posts/list_posts.go
package posts

import (
	"net/http"
	"strconv"

	"admarket/internal/database"
	"admarket/internal/dto"
	"admarket/internal/store"

	"github.com/labstack/echo/v4"
)

// ListPostsHandler 依選擇性條件分頁列出貼文，新的在前
// 未提供的條件不會構成限制
// @Summary     List posts
// @Tags        posts
// @Produce     json
// @Param       category_id      query int    false "分類 ID"
// @Param       type             query string false "貼文型態 reel 或 post"
// @Param       with_reservation query bool   false "是否開放預約"
// @Param       page             query int    false "頁碼，預設 1"
// @Param       limit            query int    false "每頁筆數，預設 10"
// @Success     200 {object} dto.PostListResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Router      /posts [get]
func ListPostsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		f := &store.Filter{}

		if v := c.QueryParam("category_id"); v != "" {
			id, err := strconv.Atoi(v)
			if err != nil {
				return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid category_id"})
			}
			f.Eq("p.category_id", id)
		}
		if v := c.QueryParam("type"); v != "" {
			f.Eq("p.type", v)
		}
		if v := c.QueryParam("with_reservation"); v != "" {
			f.Eq("p.with_reservation", v == "true")
		}

		page, limit := parsePageLimit(c)

		// 總數與分頁資料是兩次獨立查詢，之間沒有一致性保證
		total, err := store.CountPosts(c.Request().Context(), db, f)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to retrieve posts"})
		}

		details, err := store.ListPosts(c.Request().Context(), db, f, page, limit)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to retrieve posts"})
		}

		return c.JSON(http.StatusOK, dto.PostListResponse{
			Posts:      toPostResponses(details),
			Pagination: dto.NewPostPagination(page, limit, total),
		})
	}
}
