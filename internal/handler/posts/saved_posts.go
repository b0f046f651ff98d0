// File: internal/handler/posts/saved_posts.go
package posts

import (
	"net/http"
	"strconv"

	"admarket/internal/database"
	"admarket/internal/dto"
	"admarket/internal/model"
	"admarket/internal/store"

	"github.com/labstack/echo/v4"
)

// ListSavedPostsHandler 分頁列出使用者的收藏，最近收藏的在前
// @Summary     List saved posts
// @Tags        posts
// @Produce     json
// @Param       client_id path int true "收藏者 ID"
// @Param       page  query int false "頁碼，預設 1"
// @Param       limit query int false "每頁筆數，預設 10"
// @Success     200 {object} dto.SavedPostListResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /posts/saved/{client_id} [get]
func ListSavedPostsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		clientID, err := strconv.Atoi(c.Param("client_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid client id"})
		}

		page, limit := parsePageLimit(c)

		total, err := store.CountSavedPosts(c.Request().Context(), db, clientID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to retrieve saved posts"})
		}

		details, err := store.ListSavedPosts(c.Request().Context(), db, clientID, page, limit)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to retrieve saved posts"})
		}

		return c.JSON(http.StatusOK, dto.SavedPostListResponse{
			SavedPosts: toSavedPostResponses(details),
			Pagination: dto.NewSavedPagination(page, limit, total),
		})
	}
}

func toSavedPostResponses(details []model.SavedPostDetail) []dto.SavedPostResponse {
	out := make([]dto.SavedPostResponse, 0, len(details))
	for _, d := range details {
		out = append(out, dto.SavedPostResponse{
			ID:             d.ID,
			ClientID:       d.ClientID,
			PostID:         d.PostID,
			SavedAt:        d.SavedAt,
			Title:          d.Title,
			Description:    d.Description,
			Price:          d.Price,
			MediaURL:       d.MediaURL,
			Type:           d.Type,
			CategoryName:   d.CategoryName,
			AdvertiserName: d.AdvertiserName,
		})
	}
	return out
}
