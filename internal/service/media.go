// File: internal/service/media.go
package service

import (
	"context"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// MediaUploader 將本地檔案上傳到外部媒體儲存並回傳永久 URL
// 測試時可替換為 FakeUploader
type MediaUploader interface {
	Upload(ctx context.Context, path string) (string, error)
}

type cloudinaryUploader struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryUploader 以 CLOUDINARY_URL 格式的連線字串建立上傳器
func NewCloudinaryUploader(url string) (MediaUploader, error) {
	cld, err := cloudinary.NewFromURL(url)
	if err != nil {
		return nil, err
	}
	return &cloudinaryUploader{cld: cld}, nil
}

// Upload 上傳檔案並回傳 HTTPS URL，resource type 交由 Cloudinary 自動判斷
func (u *cloudinaryUploader) Upload(ctx context.Context, path string) (string, error) {
	resp, err := u.cld.Upload.Upload(ctx, path, uploader.UploadParams{
		ResourceType: "auto",
	})
	if err != nil {
		return "", err
	}
	if resp.Error.Message != "" {
		return "", fmt.Errorf("cloudinary: %s", resp.Error.Message)
	}
	return resp.SecureURL, nil
}

type FakeUploader struct {
	UploadFn func(ctx context.Context, path string) (string, error)
}

// Upload 執行 Fake 設定或 panic
func (f *FakeUploader) Upload(ctx context.Context, path string) (string, error) {
	if f.UploadFn != nil {
		return f.UploadFn(ctx, path)
	}
	panic("unexpected Upload")
}
