// File: internal/handler/posts/post_details.go
package posts

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"admarket/internal/database"
	"admarket/internal/dto"
	"admarket/internal/store"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

// GetPostDetailsHandler 取得貼文明細與預約可用量
// @Summary     Get post details
// @Tags        posts
// @Produce     json
// @Param       id path int true "貼文 ID"
// @Success     200 {object} dto.PostResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Router      /posts/{id} [get]
func GetPostDetailsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid post id"})
		}

		detail, err := store.GetPostDetail(c.Request().Context(), db, id)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, dto.HTTPError{Message: "post not found"})
			}
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to retrieve post details"})
		}

		resp := toPostResponse(detail)
		resp.Availability = dto.NewAvailability(&detail.Post, detail.ReservationCount, time.Now())

		return c.JSON(http.StatusOK, resp)
	}
}
