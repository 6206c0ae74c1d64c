package domain

import (
	"errors"
	"time"
)

var (
	ErrInvalidContentType  = errors.New("content type not allowed")
	ErrInvalidUploadFolder = errors.New("upload folder not allowed")
)

const UploadURLTTL = 15 * time.Minute

var (
	AllowedContentTypes = map[string]string{
		"image/jpeg": ".jpg",
		"image/png":  ".png",
		"image/webp": ".webp",
		"video/mp4":  ".mp4",
	}
	AllowedUploadFolders = []string{"recipes", "courses", "avatars"}
)

type (
	UploadURLRequest struct {
		FileName    string `json:"file_name" validate:"required,max=200"`
		ContentType string `json:"content_type" validate:"required"`
		Folder      string `json:"folder" validate:"required"`
	}

	UploadURL struct {
		UploadURL string    `json:"upload_url"`
		PublicURL string    `json:"public_url"`
		Key       string    `json:"key"`
		ExpiresAt time.Time `json:"expires_at"`
	}
)
