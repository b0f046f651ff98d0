// File: internal/handler/posts/create_post.go
package posts

import (
	"errors"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"admarket/internal/database"
	"admarket/internal/dto"
	"admarket/internal/middleware"
	"admarket/internal/model"
	"admarket/internal/service"
	"admarket/internal/store"
	"admarket/internal/worker"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

// CreatePostRequest 定義建立貼文的 multipart 表單欄位
// 媒體檔案另外由 media 欄位上傳
// swagger:model CreatePostRequest
type CreatePostRequest struct {
	// 廣告主 ID，必須是呼叫者本人或由管理員代建
	// required: true
	AdvertiserID int `form:"advertiser_id" validate:"required"`

	// 分類 ID，可省略
	CategoryID *int `form:"category_id"`

	// 貼文型態 reel 或 post
	// required: true
	Type string `form:"type" validate:"required,oneof=reel post"`

	// 標題
	// required: true
	Title string `form:"title" validate:"required"`

	Description *string  `form:"description"`
	Price       *float64 `form:"price"`
	OldPrice    *float64 `form:"old_price"`

	// 是否開放預約
	WithReservation bool `form:"with_reservation"`

	// 預約截止時間 (RFC3339)，開放預約時必須是未來時間
	ReservationTime string `form:"reservation_time"`

	// 預約上限，開放預約時必須為正整數
	ReservationLimit *int `form:"reservation_limit"`

	SocialLink *string `form:"social_link"`
}

// CreatePostResponse 建立成功的回應
// swagger:model CreatePostResponse
type CreatePostResponse struct {
	Message string           `json:"message"`
	Post    dto.PostResponse `json:"post"`
}

// CreatePostHandler 建立貼文並上傳媒體檔案
// 流程：驗證欄位 → 確認廣告主存在 → 本人或管理員檢查 →
// 暫存上傳檔 → 上傳媒體儲存 → 寫入貼文 → 背景清理暫存檔
// @Summary     Create a new post
// @Tags        posts
// @Accept      multipart/form-data
// @Produce     json
// @Param       media formData file true "媒體檔案"
// @Success     201 {object} CreatePostResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     403 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /posts [post]
func CreatePostHandler(db database.DB, up service.MediaUploader, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req CreatePostRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid form data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
		}

		file, err := c.FormFile("media")
		if err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "no file uploaded"})
		}

		advertiser, err := store.GetUserByID(c.Request().Context(), db, req.AdvertiserID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, dto.HTTPError{Message: "advertiser not found"})
			}
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to verify advertiser"})
		}

		claims := c.Get(middleware.ContextUserKey).(*service.CustomClaims)
		if !claims.IsAdmin() && claims.UserID != advertiser.ID {
			return c.JSON(http.StatusForbidden, dto.HTTPError{Message: "cannot create posts for another advertiser"})
		}

		// 解析並驗證預約設定，只在建立當下檢查
		var reservationTime *time.Time
		if req.ReservationTime != "" {
			t, err := time.Parse(time.RFC3339, req.ReservationTime)
			if err != nil {
				return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid reservation_time format"})
			}
			reservationTime = &t
		}
		if req.WithReservation {
			if reservationTime != nil && !reservationTime.After(time.Now()) {
				return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "reservation time must be in the future"})
			}
			if req.ReservationLimit != nil && *req.ReservationLimit <= 0 {
				return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "reservation limit must be greater than 0"})
			}
		}

		tmpPath, err := spoolUpload(file)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to store uploaded file"})
		}

		mediaURL, err := up.Upload(c.Request().Context(), tmpPath)
		if err != nil {
			removeTempFile(tmpPath)
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "media upload failed"})
		}

		post := &model.Post{
			AdvertiserID:     advertiser.ID,
			CategoryID:       req.CategoryID,
			Type:             req.Type,
			Title:            req.Title,
			Description:      req.Description,
			Price:            req.Price,
			OldPrice:         req.OldPrice,
			WithReservation:  req.WithReservation,
			ReservationTime:  reservationTime,
			ReservationLimit: req.ReservationLimit,
			SocialLink:       req.SocialLink,
			MediaURL:         mediaURL,
		}

		created, err := store.CreatePost(c.Request().Context(), db, post)
		if err != nil {
			removeTempFile(tmpPath)
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "post creation failed"})
		}

		// 暫存檔清理交給背景執行，失敗只記錄不影響回應
		wp.Submit(func() { removeTempFile(tmpPath) })

		detail, err := store.GetPostDetail(c.Request().Context(), db, created.ID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to load created post"})
		}

		return c.JSON(http.StatusCreated, CreatePostResponse{
			Message: "post created successfully",
			Post:    toPostResponse(detail),
		})
	}
}

// spoolUpload 把 multipart 檔案寫到暫存路徑，回傳路徑
func spoolUpload(file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	path := filepath.Join(os.TempDir(), uuid.New().String()+filepath.Ext(file.Filename))
	dst, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		removeTempFile(path)
		return "", err
	}
	return path, nil
}

func removeTempFile(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.Printf("failed to delete temporary file %s: %v", path, err)
	}
}
