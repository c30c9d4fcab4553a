package ports

import (
	"context"
	"mime/multipart"

	"github.com/Tanvir1407/metb/internal/domain/media"
)

type MediaService interface {
	UploadMedia(ctx context.Context, files []*multipart.FileHeader) error
	FindAllMedia(ctx context.Context) (media.MediaFiles, error)
	SearchMedia(ctx context.Context, key string) (media.MediaFiles, int64, error)
	FindMediaPage(ctx context.Context, fileType string, skip, limit int) (media.MediaFiles, int64, error)
	DestroyMedia(ctx context.Context, ids []media.ID) error
	ViewMedia(ctx context.Context, id media.ID) ([]byte, string, error)
}
