// File: internal/handler/posts/engagement.go
package posts

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"admarket/internal/cache"
	"admarket/internal/database"
	"admarket/internal/dto"
	"admarket/internal/model"
	"admarket/internal/store"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

// engagementCacheTTL 聚合數字允許些微過期
const engagementCacheTTL = 30 * time.Second

// GetPostEngagementHandler 取得貼文互動聚合，結果短暫快取於 Redis
// @Summary     Get post engagement
// @Tags        posts
// @Produce     json
// @Param       id path int true "貼文 ID"
// @Success     200 {object} model.PostEngagement
// @Failure     400 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Router      /posts/{id}/engagement [get]
func GetPostEngagementHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid post id"})
		}

		key := fmt.Sprintf("post:engagement:%d", id)
		if cached, err := rdb.Get(c.Request().Context(), key).Result(); err == nil {
			var e model.PostEngagement
			if err := json.Unmarshal([]byte(cached), &e); err == nil {
				return c.JSON(http.StatusOK, &e)
			}
		}

		engagement, err := store.GetPostEngagement(c.Request().Context(), db, id)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, dto.HTTPError{Message: "post not found"})
			}
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to retrieve post engagement"})
		}

		// 寫入快取失敗不影響回應
		if body, err := json.Marshal(engagement); err == nil {
			rdb.Set(c.Request().Context(), key, body, engagementCacheTTL)
		}

		return c.JSON(http.StatusOK, engagement)
	}
}
