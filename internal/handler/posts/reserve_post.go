// File: internal/handler/posts/reserve_post.go
package posts

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"admarket/internal/database"
	"admarket/internal/dto"
	"admarket/internal/middleware"
	"admarket/internal/model"
	"admarket/internal/queue"
	"admarket/internal/service"
	"admarket/internal/store"
	"admarket/internal/worker"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

// ReservePostResponse 預約成功的回應
// swagger:model ReservePostResponse
type ReservePostResponse struct {
	Message     string             `json:"message"`
	Reservation *model.Reservation `json:"reservation"`
}

// ReservePostHandler 以登入者身分對貼文建立預約
// reservation_limit 僅供讀取時推導可用量，這裡不做原子性檢查，
// 併發預約可能超過上限
// @Summary     Reserve a post
// @Tags        posts
// @Produce     json
// @Param       id path int true "貼文 ID"
// @Success     201 {object} ReservePostResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Failure     409 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /posts/{id}/reserve [post]
func ReservePostHandler(db database.DB, pub queue.Publisher, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		postID, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid post id"})
		}

		post, err := store.GetPostByID(c.Request().Context(), db, postID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, dto.HTTPError{Message: "post not found"})
			}
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to reserve post"})
		}

		if !post.WithReservation {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "post does not accept reservations"})
		}
		if post.ReservationTime != nil && time.Now().After(*post.ReservationTime) {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "reservation time has passed"})
		}

		claims := c.Get(middleware.ContextUserKey).(*service.CustomClaims)

		reservation, err := store.CreateReservation(c.Request().Context(), db, post.ID, claims.UserID)
		if err != nil {
			if database.IsUniqueViolation(err) {
				return c.JSON(http.StatusConflict, dto.HTTPError{Message: "post already reserved"})
			}
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to reserve post"})
		}

		// 事件發布為 best-effort，失敗只記錄
		if pub != nil {
			ev := queue.ReservationCreatedEvent{
				ReservationID: reservation.ID,
				PostID:        reservation.PostID,
				ClientID:      reservation.ClientID,
				CreatedAt:     reservation.CreatedAt,
			}
			wp.Submit(func() {
				if err := pub.PublishReservationCreated(context.Background(), ev); err != nil {
					log.Printf("failed to publish reservation event: %v", err)
				}
			})
		}

		return c.JSON(http.StatusCreated, ReservePostResponse{
			Message:     "post reserved successfully",
			Reservation: reservation,
		})
	}
}
