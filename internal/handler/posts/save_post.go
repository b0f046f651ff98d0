// File: internal/handler/posts/save_post.go
package posts

import (
	"errors"
	"net/http"

	"admarket/internal/database"
	"admarket/internal/dto"
	"admarket/internal/model"
	"admarket/internal/store"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

// SavePostRequest 收藏貼文的請求格式
// swagger:model SavePostRequest
type SavePostRequest struct {
	// 收藏者 ID
	// required: true
	ClientID int `json:"client_id" form:"client_id" validate:"required"`

	// 貼文 ID
	// required: true
	PostID int `json:"post_id" form:"post_id" validate:"required"`
}

// SavePostResponse 收藏成功的回應
// swagger:model SavePostResponse
type SavePostResponse struct {
	Message   string           `json:"message"`
	SavedPost *model.SavedPost `json:"saved_post"`
}

// SavePostHandler 收藏貼文
// 同一 (client_id, post_id) 重複收藏回傳 409，不會產生重複列
// @Summary     Save a post
// @Tags        posts
// @Accept      json
// @Produce     json
// @Param       request body SavePostRequest true "收藏資料"
// @Success     201 {object} SavePostResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Failure     409 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /posts/save [post]
func SavePostHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req SavePostRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid request data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
		}

		if _, err := store.GetPostByID(c.Request().Context(), db, req.PostID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, dto.HTTPError{Message: "post not found"})
			}
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to save post"})
		}

		if _, err := store.GetSavedPost(c.Request().Context(), db, req.ClientID, req.PostID); err == nil {
			return c.JSON(http.StatusConflict, dto.HTTPError{Message: "post already saved"})
		} else if !errors.Is(err, pgx.ErrNoRows) {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to save post"})
		}

		saved, err := store.CreateSavedPost(c.Request().Context(), db, req.ClientID, req.PostID)
		if err != nil {
			// 與先查後插的併發競爭仍可能撞到唯一約束
			if database.IsUniqueViolation(err) {
				return c.JSON(http.StatusConflict, dto.HTTPError{Message: "post already saved"})
			}
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to save post"})
		}

		return c.JSON(http.StatusCreated, SavePostResponse{
			Message:   "post saved successfully",
			SavedPost: saved,
		})
	}
}
