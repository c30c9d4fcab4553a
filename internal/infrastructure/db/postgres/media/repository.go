package media

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domain "github.com/Tanvir1407/metb/internal/domain/media"
	"github.com/Tanvir1407/metb/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) domain.Repository {
	return &Repository{db: db}
}

func (r *Repository) FetchAll(ctx context.Context) (domain.MediaFiles, error) {
	rows, err := r.db.Query(ctx, SelectAllMedia)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanMediaRows(rows)
}

func (r *Repository) SearchByFileName(ctx context.Context, key string) (domain.MediaFiles, int64, error) {
	rows, err := r.db.Query(ctx, SelectMediaByFileName, key)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	ms, err := scanMediaRows(rows)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	if err = r.db.QueryRow(ctx, CountMediaByFileName, key).Scan(&total); err != nil {
		return nil, 0, err
	}

	return ms, total, nil
}

func (r *Repository) FetchPage(ctx context.Context, fileType string, skip, limit int) (domain.MediaFiles, int64, error) {
	rows, err := r.db.Query(ctx, SelectMediaPage, fileType, skip, limit)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	ms, err := scanMediaRows(rows)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	if err = r.db.QueryRow(ctx, CountMediaPage, fileType).Scan(&total); err != nil {
		return nil, 0, err
	}

	return ms, total, nil
}

func (r *Repository) FetchByID(ctx context.Context, id domain.ID) (*domain.MediaFile, error) {
	m := new(MediaFile)
	err := r.db.QueryRow(ctx, SelectMediaByID, uint64(id)).Scan(
		&m.ID,
		&m.FileName,
		&m.FilePath,
		&m.FileType,
		&m.FileSize,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(m), nil
}

func (r *Repository) Create(ctx context.Context, req domain.MediaFile) (*domain.MediaFile, error) {
	m := new(MediaFile)

	err := r.db.QueryRow(
		ctx,
		InsertMedia,
		req.FileName, req.FilePath, req.FileType, req.FileSize,
	).Scan(
		&m.ID,
		&m.FileName,
		&m.FilePath,
		&m.FileType,
		&m.FileSize,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return fromDBModel(m), nil
}

func (r *Repository) Delete(ctx context.Context, id domain.ID) error {
	_, err := r.db.Exec(ctx, DeleteMediaByID, uint64(id))
	return err
}

func scanMediaRows(rows pgx.Rows) (domain.MediaFiles, error) {
	var ms MediaFiles
	for rows.Next() {
		m := new(MediaFile)

		if err := rows.Scan(
			&m.ID,
			&m.FileName,
			&m.FilePath,
			&m.FileType,
			&m.FileSize,
			&m.CreatedAt,
			&m.UpdatedAt,
		); err != nil {
			return nil, err
		}

		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(&ms), nil
}
