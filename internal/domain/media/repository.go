package media

import (
	"context"
)

type Repository interface {
	FetchAll(ctx context.Context) (MediaFiles, error)
	SearchByFileName(ctx context.Context, key string) (MediaFiles, int64, error)
	FetchPage(ctx context.Context, fileType string, skip, limit int) (MediaFiles, int64, error)
	FetchByID(ctx context.Context, id ID) (*MediaFile, error)
	Create(ctx context.Context, req MediaFile) (*MediaFile, error)
	Delete(ctx context.Context, id ID) error
}

// ReferenceChecker answers whether a media id is still referenced by
// another table. Checked before any destroy.
type ReferenceChecker interface {
	UsedAsProductThumbnail(ctx context.Context, id ID) (bool, error)
	UsedInGallery(ctx context.Context, id ID) (bool, error)
	UsedAsAppLogo(ctx context.Context, id ID) (bool, error)
}
