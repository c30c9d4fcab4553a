package media

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/Tanvir1407/metb/internal/domain/media"
)

var mediaColumns = []string{"id", "fileName", "filePath", "fileType", "fileSize", "created_at", "updated_at"}

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func TestRepository_FetchByID(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name    string
		setup   func(mock pgxmock.PgxPoolIface)
		wantNil bool
		wantErr bool
	}{
		{
			name: "found",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(SelectMediaByID).
					WithArgs(uint64(7)).
					WillReturnRows(pgxmock.NewRows(mediaColumns).
						AddRow(uint64(7), "cat.png", "uploads/2026/08/30/abc.png", "image/png", int64(1024), now, now))
			},
		},
		{
			name: "missing row maps to nil, nil",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(SelectMediaByID).
					WithArgs(uint64(7)).
					WillReturnError(pgx.ErrNoRows)
			},
			wantNil: true,
		},
		{
			name: "query error",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(SelectMediaByID).
					WithArgs(uint64(7)).
					WillReturnError(errors.New("db down"))
			},
			wantNil: true,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			mock := newMock(t)
			tt.setup(mock)

			repo := NewRepository(mock)
			m, err := repo.FetchByID(context.Background(), domain.ID(7))

			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			if tt.wantNil {
				assert.Nil(t, m)
			} else {
				require.NotNil(t, m)
				assert.Equal(t, domain.ID(7), m.ID)
				assert.Equal(t, "cat.png", m.FileName)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_SearchByFileName(t *testing.T) {
	now := time.Now()
	mock := newMock(t)

	mock.ExpectQuery(SelectMediaByFileName).
		WithArgs("cat").
		WillReturnRows(pgxmock.NewRows(mediaColumns).
			AddRow(uint64(9), "cat-2.png", "uploads/2026/08/30/def.png", "image/png", int64(2048), now, now).
			AddRow(uint64(7), "cat.png", "uploads/2026/08/30/abc.png", "image/png", int64(1024), now, now))
	mock.ExpectQuery(CountMediaByFileName).
		WithArgs("cat").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(2)))

	repo := NewRepository(mock)
	ms, total, err := repo.SearchByFileName(context.Background(), "cat")
	require.NoError(t, err)

	assert.Equal(t, int64(2), total)
	require.Len(t, ms, 2)
	// newest id first
	assert.Equal(t, domain.ID(9), ms[0].ID)
	assert.Equal(t, domain.ID(7), ms[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FetchPage(t *testing.T) {
	now := time.Now()
	mock := newMock(t)

	mock.ExpectQuery(SelectMediaPage).
		WithArgs("image/png", 10, 10).
		WillReturnRows(pgxmock.NewRows(mediaColumns).
			AddRow(uint64(3), "a.png", "uploads/2026/08/30/a.png", "image/png", int64(10), now, now))
	mock.ExpectQuery(CountMediaPage).
		WithArgs("image/png").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(11)))

	repo := NewRepository(mock)
	ms, total, err := repo.FetchPage(context.Background(), "image/png", 10, 10)
	require.NoError(t, err)

	assert.Equal(t, int64(11), total)
	require.Len(t, ms, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CreateAndDelete(t *testing.T) {
	now := time.Now()
	mock := newMock(t)

	mock.ExpectQuery(InsertMedia).
		WithArgs("cat.png", "uploads/2026/08/30/abc.png", "image/png", int64(1024)).
		WillReturnRows(pgxmock.NewRows(mediaColumns).
			AddRow(uint64(1), "cat.png", "uploads/2026/08/30/abc.png", "image/png", int64(1024), now, now))
	mock.ExpectExec(DeleteMediaByID).
		WithArgs(uint64(1)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	repo := NewRepository(mock)
	m, err := repo.Create(context.Background(), domain.MediaFile{
		FileName: "cat.png",
		FilePath: "uploads/2026/08/30/abc.png",
		FileType: "image/png",
		FileSize: 1024,
	})
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Equal(t, domain.ID(1), m.ID)

	require.NoError(t, repo.Delete(context.Background(), m.ID))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRefChecker(t *testing.T) {
	tests := []struct {
		name  string
		query string
		check func(rc domain.ReferenceChecker, id domain.ID) (bool, error)
		count int64
		want  bool
	}{
		{
			name:  "product thumbnail referenced",
			query: CountProductThumbnailRefs,
			check: func(rc domain.ReferenceChecker, id domain.ID) (bool, error) {
				return rc.UsedAsProductThumbnail(context.Background(), id)
			},
			count: 1,
			want:  true,
		},
		{
			name:  "gallery not referenced",
			query: CountGalleryRefs,
			check: func(rc domain.ReferenceChecker, id domain.ID) (bool, error) {
				return rc.UsedInGallery(context.Background(), id)
			},
			count: 0,
			want:  false,
		},
		{
			name:  "app logo referenced",
			query: CountAppLogoRefs,
			check: func(rc domain.ReferenceChecker, id domain.ID) (bool, error) {
				return rc.UsedAsAppLogo(context.Background(), id)
			},
			count: 2,
			want:  true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			mock := newMock(t)
			mock.ExpectQuery(tt.query).
				WithArgs(uint64(5)).
				WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(tt.count))

			rc := NewRefChecker(mock)
			got, err := tt.check(rc, domain.ID(5))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
