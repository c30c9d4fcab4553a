package ports

import (
	"context"
	"io"
)

// BlobStorage is the key-addressed blob store media files live in.
type BlobStorage interface {
	Store(ctx context.Context, dir, fileName string, r io.Reader) (string, error)
	Exists(ctx context.Context, key string) bool
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
	MimeType(ctx context.Context, key string) (string, error)
}
