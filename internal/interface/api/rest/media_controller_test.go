package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Tanvir1407/metb/internal/application/ports"
	"github.com/Tanvir1407/metb/internal/application/services"
	domain "github.com/Tanvir1407/metb/internal/domain/media"
)

type FakeMediaService struct {
	UploadMediaFunc   func(ctx context.Context, files []*multipart.FileHeader) error
	FindAllMediaFunc  func(ctx context.Context) (domain.MediaFiles, error)
	SearchMediaFunc   func(ctx context.Context, key string) (domain.MediaFiles, int64, error)
	FindMediaPageFunc func(ctx context.Context, fileType string, skip, limit int) (domain.MediaFiles, int64, error)
	DestroyMediaFunc  func(ctx context.Context, ids []domain.ID) error
	ViewMediaFunc     func(ctx context.Context, id domain.ID) ([]byte, string, error)
}

func (f *FakeMediaService) UploadMedia(ctx context.Context, files []*multipart.FileHeader) error {
	if f.UploadMediaFunc == nil {
		return errors.New("not used")
	}
	return f.UploadMediaFunc(ctx, files)
}
func (f *FakeMediaService) FindAllMedia(ctx context.Context) (domain.MediaFiles, error) {
	if f.FindAllMediaFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FindAllMediaFunc(ctx)
}
func (f *FakeMediaService) SearchMedia(ctx context.Context, key string) (domain.MediaFiles, int64, error) {
	if f.SearchMediaFunc == nil {
		return nil, 0, errors.New("not used")
	}
	return f.SearchMediaFunc(ctx, key)
}
func (f *FakeMediaService) FindMediaPage(ctx context.Context, fileType string, skip, limit int) (domain.MediaFiles, int64, error) {
	if f.FindMediaPageFunc == nil {
		return nil, 0, errors.New("not used")
	}
	return f.FindMediaPageFunc(ctx, fileType, skip, limit)
}
func (f *FakeMediaService) DestroyMedia(ctx context.Context, ids []domain.ID) error {
	if f.DestroyMediaFunc == nil {
		return errors.New("not used")
	}
	return f.DestroyMediaFunc(ctx, ids)
}
func (f *FakeMediaService) ViewMedia(ctx context.Context, id domain.ID) ([]byte, string, error) {
	if f.ViewMediaFunc == nil {
		return nil, "", errors.New("not used")
	}
	return f.ViewMediaFunc(ctx, id)
}

func setupMediaRouter(t *testing.T, msvc ports.MediaService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	mc := &MediaController{
		mediaService: msvc,
		logger:       zap.NewNop(),
	}

	r.GET("/media", mc.GetMediaHandler)
	r.GET("/media/view/:media_id", mc.ViewMediaHandler)
	r.POST("/media/upload", mc.UploadMediaHandler)
	r.POST("/media/destroy", mc.DestroyMediaHandler)

	return r
}

type uploadFile struct {
	field string
	name  string
	size  int
}

func doUpload(t *testing.T, r *gin.Engine, files []uploadFile) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, uf := range files {
		fw, err := w.CreateFormFile(uf.field, uf.name)
		require.NoError(t, err)
		_, err = fw.Write(bytes.Repeat([]byte("x"), uf.size))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req, err := http.NewRequest(http.MethodPost, "/media/upload", &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", w.FormDataContentType())

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func someMediaFile(id domain.ID) *domain.MediaFile {
	return &domain.MediaFile{
		ID:       id,
		FileName: fmt.Sprintf("file-%d.png", id),
		FilePath: fmt.Sprintf("uploads/2026/08/30/%d.png", id),
		FileType: "image/png",
		FileSize: 1024,
	}
}

func TestMediaController_UploadMediaHandler(t *testing.T) {
	manyFiles := func(n int) []uploadFile {
		fs := make([]uploadFile, n)
		for i := range fs {
			fs[i] = uploadFile{field: "files", name: fmt.Sprintf("f%d.png", i), size: 10}
		}
		return fs
	}

	tests := []struct {
		name       string
		files      []uploadFile
		mockMS     func() ports.MediaService
		wantStatus int
		wantErr    string
		wantMsg    string
	}{
		{
			name:       "400 without files",
			files:      nil,
			mockMS:     func() ports.MediaService { return &FakeMediaService{} },
			wantStatus: http.StatusBadRequest,
			wantErr:    "No files found.",
		},
		{
			name:       "400 wrong field name",
			files:      []uploadFile{{field: "attachments", name: "a.png", size: 10}},
			mockMS:     func() ports.MediaService { return &FakeMediaService{} },
			wantStatus: http.StatusBadRequest,
			wantErr:    "No files found.",
		},
		{
			name:       "400 eleven files, nothing stored",
			files:      manyFiles(11),
			mockMS:     func() ports.MediaService { return &FakeMediaService{} },
			wantStatus: http.StatusBadRequest,
			wantErr:    "may not upload more than 10 files at once",
		},
		{
			name:       "400 disallowed extension, nothing stored",
			files:      []uploadFile{{field: "files", name: "a.png", size: 10}, {field: "files", name: "b.exe", size: 10}},
			mockMS:     func() ports.MediaService { return &FakeMediaService{} },
			wantStatus: http.StatusBadRequest,
			wantErr:    "file type .exe is not allowed",
		},
		{
			name:  "400 when storing fails",
			files: []uploadFile{{field: "files", name: "a.png", size: 10}},
			mockMS: func() ports.MediaService {
				return &FakeMediaService{
					UploadMediaFunc: func(ctx context.Context, files []*multipart.FileHeader) error {
						return fmt.Errorf("%w: disk full", services.ErrStoreFailed)
					},
				}
			},
			wantStatus: http.StatusBadRequest,
			wantErr:    "Failed to store one or more files.",
		},
		{
			name:  "200 success",
			files: manyFiles(10),
			mockMS: func() ports.MediaService {
				return &FakeMediaService{
					UploadMediaFunc: func(ctx context.Context, files []*multipart.FileHeader) error {
						assert.Len(t, files, 10)
						return nil
					},
				}
			},
			wantStatus: http.StatusOK,
			wantMsg:    "Media upload successful.",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r := setupMediaRouter(t, tt.mockMS())
			rr := doUpload(t, r, tt.files)
			require.Equal(t, tt.wantStatus, rr.Code)

			var resp map[string]any
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			if tt.wantErr != "" {
				assert.Equal(t, tt.wantErr, resp["error"])
			}
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, resp["message"])
			}
		})
	}
}

func TestMediaController_GetMediaHandler(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		mockMS     func() ports.MediaService
		wantStatus int
		wantErr    string
		check      func(t *testing.T, body []byte)
	}{
		{
			name:       "400 without query params",
			query:      "",
			mockMS:     func() ports.MediaService { return &FakeMediaService{} },
			wantStatus: http.StatusBadRequest,
			wantErr:    "invalid query",
		},
		{
			name:  "query=all returns flat array",
			query: "?query=all",
			mockMS: func() ports.MediaService {
				return &FakeMediaService{
					FindAllMediaFunc: func(ctx context.Context) (domain.MediaFiles, error) {
						return domain.MediaFiles{someMediaFile(2), someMediaFile(1)}, nil
					},
				}
			},
			wantStatus: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				var resp []map[string]any
				require.NoError(t, json.Unmarshal(body, &resp), "query=all must be a bare array")
				require.Len(t, resp, 2)
				assert.Equal(t, "file-2.png", resp[0]["fileName"])
			},
		},
		{
			name:       "query=search without key",
			query:      "?query=search",
			mockMS:     func() ports.MediaService { return &FakeMediaService{} },
			wantStatus: http.StatusBadRequest,
			wantErr:    "invalid query",
		},
		{
			name:  "query=search returns matches with total",
			query: "?query=search&key=file",
			mockMS: func() ports.MediaService {
				return &FakeMediaService{
					SearchMediaFunc: func(ctx context.Context, key string) (domain.MediaFiles, int64, error) {
						assert.Equal(t, "file", key)
						return domain.MediaFiles{someMediaFile(1)}, 4, nil
					},
				}
			},
			wantStatus: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				var resp struct {
					GetAllImage []map[string]any `json:"getAllImage"`
					TotalImage  int64            `json:"totalImage"`
				}
				require.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, int64(4), resp.TotalImage)
				require.Len(t, resp.GetAllImage, 1)
			},
		},
		{
			name:  "default mode pages with fileType filter",
			query: "?page=2&count=5&fileType=image/png",
			mockMS: func() ports.MediaService {
				return &FakeMediaService{
					FindMediaPageFunc: func(ctx context.Context, fileType string, skip, limit int) (domain.MediaFiles, int64, error) {
						assert.Equal(t, "image/png", fileType)
						assert.Equal(t, 5, skip)
						assert.Equal(t, 5, limit)
						return domain.MediaFiles{someMediaFile(1)}, 9, nil
					},
				}
			},
			wantStatus: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				var resp struct {
					TotalImage int64 `json:"totalImage"`
				}
				require.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, int64(9), resp.TotalImage)
			},
		},
		{
			name:  "500 when service fails",
			query: "?query=all",
			mockMS: func() ports.MediaService {
				return &FakeMediaService{
					FindAllMediaFunc: func(ctx context.Context) (domain.MediaFiles, error) {
						return nil, errors.New("db error")
					},
				}
			},
			wantStatus: http.StatusInternalServerError,
			wantErr:    "failed to get media",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r := setupMediaRouter(t, tt.mockMS())
			rr := doReq(t, r, http.MethodGet, "/media"+tt.query, nil, nil)
			require.Equal(t, tt.wantStatus, rr.Code)

			if tt.wantErr != "" {
				assert.Equal(t, tt.wantErr, errBody(t, rr))
			}
			if tt.check != nil {
				tt.check(t, rr.Body.Bytes())
			}
		})
	}
}

func TestMediaController_DestroyMediaHandler(t *testing.T) {
	tests := []struct {
		name       string
		body       any
		mockMS     func() ports.MediaService
		wantStatus int
		wantErr    string
		wantMsg    string
	}{
		{
			name: "400 nil image list",
			body: map[string]any{},
			mockMS: func() ports.MediaService {
				return &FakeMediaService{
					DestroyMediaFunc: func(ctx context.Context, ids []domain.ID) error {
						assert.Nil(t, ids)
						return services.ErrNoFilesSelected
					},
				}
			},
			wantStatus: http.StatusBadRequest,
			wantErr:    "No file selected",
		},
		{
			name: "400 missing id",
			body: map[string]any{"images": []uint64{99}},
			mockMS: func() ports.MediaService {
				return &FakeMediaService{
					DestroyMediaFunc: func(ctx context.Context, ids []domain.ID) error {
						return services.ErrMediaNotFound
					},
				}
			},
			wantStatus: http.StatusBadRequest,
			wantErr:    "file not found",
		},
		{
			name: "400 referenced as thumbnail",
			body: map[string]any{"images": []uint64{1}},
			mockMS: func() ports.MediaService {
				return &FakeMediaService{
					DestroyMediaFunc: func(ctx context.Context, ids []domain.ID) error {
						return services.ErrUsedProductThumbnail
					},
				}
			},
			wantStatus: http.StatusBadRequest,
			wantErr:    "This image is used in product thumbnail",
		},
		{
			name: "400 referenced in gallery",
			body: map[string]any{"images": []uint64{1}},
			mockMS: func() ports.MediaService {
				return &FakeMediaService{
					DestroyMediaFunc: func(ctx context.Context, ids []domain.ID) error {
						return services.ErrUsedGallery
					},
				}
			},
			wantStatus: http.StatusBadRequest,
			wantErr:    "This image is used in gallery",
		},
		{
			name: "400 referenced in settings",
			body: map[string]any{"images": []uint64{1}},
			mockMS: func() ports.MediaService {
				return &FakeMediaService{
					DestroyMediaFunc: func(ctx context.Context, ids []domain.ID) error {
						return services.ErrUsedSettings
					},
				}
			},
			wantStatus: http.StatusBadRequest,
			wantErr:    "This image is used in settings",
		},
		{
			name: "200 success",
			body: map[string]any{"images": []uint64{1, 2}},
			mockMS: func() ports.MediaService {
				return &FakeMediaService{
					DestroyMediaFunc: func(ctx context.Context, ids []domain.ID) error {
						assert.Equal(t, []domain.ID{1, 2}, ids)
						return nil
					},
				}
			},
			wantStatus: http.StatusOK,
			wantMsg:    "file deleted successfully",
		},
		{
			name: "500 unexpected error stays generic",
			body: map[string]any{"images": []uint64{1}},
			mockMS: func() ports.MediaService {
				return &FakeMediaService{
					DestroyMediaFunc: func(ctx context.Context, ids []domain.ID) error {
						return errors.New("db error")
					},
				}
			},
			wantStatus: http.StatusInternalServerError,
			wantErr:    "failed to delete media",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r := setupMediaRouter(t, tt.mockMS())
			rr := doReq(t, r, http.MethodPost, "/media/destroy", tt.body, nil)
			require.Equal(t, tt.wantStatus, rr.Code)

			var resp map[string]any
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			if tt.wantErr != "" {
				assert.Equal(t, tt.wantErr, resp["error"])
			}
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, resp["message"])
			}
		})
	}
}

func TestMediaController_ViewMediaHandler(t *testing.T) {
	tests := []struct {
		name       string
		mediaID    string
		mockMS     func() ports.MediaService
		wantStatus int
		wantErr    string
	}{
		{
			name:       "400 invalid id",
			mediaID:    "abc",
			mockMS:     func() ports.MediaService { return &FakeMediaService{} },
			wantStatus: http.StatusBadRequest,
			wantErr:    "media_id must be a positive integer",
		},
		{
			name:    "404 missing record",
			mediaID: "42",
			mockMS: func() ports.MediaService {
				return &FakeMediaService{
					ViewMediaFunc: func(ctx context.Context, id domain.ID) ([]byte, string, error) {
						return nil, "", services.ErrMediaNotFound
					},
				}
			},
			wantStatus: http.StatusNotFound,
			wantErr:    "File not found",
		},
		{
			name:    "404 missing blob",
			mediaID: "42",
			mockMS: func() ports.MediaService {
				return &FakeMediaService{
					ViewMediaFunc: func(ctx context.Context, id domain.ID) ([]byte, string, error) {
						return nil, "", services.ErrBlobMissing
					},
				}
			},
			wantStatus: http.StatusNotFound,
			wantErr:    "File does not exist.",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r := setupMediaRouter(t, tt.mockMS())
			rr := doReq(t, r, http.MethodGet, "/media/view/"+tt.mediaID, nil, nil)
			require.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantErr, errBody(t, rr))
		})
	}

	t.Run("200 streams the blob with its content type", func(t *testing.T) {
		r := setupMediaRouter(t, &FakeMediaService{
			ViewMediaFunc: func(ctx context.Context, id domain.ID) ([]byte, string, error) {
				assert.Equal(t, domain.ID(42), id)
				return []byte("png-bytes"), "image/png", nil
			},
		})

		rr := doReq(t, r, http.MethodGet, "/media/view/42", nil, nil)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "image/png", rr.Header().Get("Content-Type"))
		assert.Equal(t, "png-bytes", rr.Body.String())
	})
}
