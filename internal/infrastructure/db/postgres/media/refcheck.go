package media

import (
	"context"

	domain "github.com/Tanvir1407/metb/internal/domain/media"
	"github.com/Tanvir1407/metb/internal/infrastructure/db/postgres"
)

// RefChecker answers the three "is this media id still referenced"
// lookups consulted before a destroy.
type RefChecker struct {
	db postgres.DB
}

func NewRefChecker(db postgres.DB) domain.ReferenceChecker {
	return &RefChecker{db: db}
}

func (r *RefChecker) UsedAsProductThumbnail(ctx context.Context, id domain.ID) (bool, error) {
	return r.count(ctx, CountProductThumbnailRefs, id)
}

func (r *RefChecker) UsedInGallery(ctx context.Context, id domain.ID) (bool, error) {
	return r.count(ctx, CountGalleryRefs, id)
}

func (r *RefChecker) UsedAsAppLogo(ctx context.Context, id domain.ID) (bool, error) {
	return r.count(ctx, CountAppLogoRefs, id)
}

func (r *RefChecker) count(ctx context.Context, query string, id domain.ID) (bool, error) {
	var n int64
	if err := r.db.QueryRow(ctx, query, uint64(id)).Scan(&n); err != nil {
		return false, err
	}

	return n > 0, nil
}
