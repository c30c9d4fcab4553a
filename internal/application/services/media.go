package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"path"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/Tanvir1407/metb/internal/application/ports"
	domain "github.com/Tanvir1407/metb/internal/domain/media"
	"github.com/Tanvir1407/metb/internal/infrastructure/mq"
)

// Sentinel texts are the exact client-facing messages; controllers map
// them with errors.Is and must not expose anything else.
var (
	ErrNoFilesSelected      = errors.New("No file selected")
	ErrMediaNotFound        = errors.New("file not found")
	ErrUsedProductThumbnail = errors.New("This image is used in product thumbnail")
	ErrUsedGallery          = errors.New("This image is used in gallery")
	ErrUsedSettings         = errors.New("This image is used in settings")
	ErrStoreFailed          = errors.New("Failed to store one or more files.")
	ErrBlobMissing          = errors.New("File does not exist.")
)

const uploadDirRoot = "uploads"

type MediaService struct {
	mediaRepository domain.Repository
	refChecker      domain.ReferenceChecker
	storage         ports.BlobStorage
	mq              ports.RabbitMQ
	mCounter        *prometheus.CounterVec
}

func NewMediaService(
	mediaRepository domain.Repository,
	refChecker domain.ReferenceChecker,
	storage ports.BlobStorage,
	rabbitMQ ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) ports.MediaService {
	return &MediaService{
		mediaRepository: mediaRepository,
		refChecker:      refChecker,
		storage:         storage,
		mq:              rabbitMQ,
		mCounter:        mCounter,
	}
}

// UploadMedia stores every file of the batch under a date-partitioned
// directory and records one row per blob. The batch is not atomic: the
// first failure halts the rest, already stored files stay stored.
func (ms *MediaService) UploadMedia(ctx context.Context, files []*multipart.FileHeader) error {
	dir := path.Join(uploadDirRoot, time.Now().UTC().Format("2006/01/02"))

	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			return fmt.Errorf("%w: open %s: %v", ErrStoreFailed, fh.Filename, err)
		}

		key, err := ms.storage.Store(ctx, dir, sanitizeFileName(fh.Filename), f)
		f.Close()
		if err != nil {
			return fmt.Errorf("%w: %v", ErrStoreFailed, err)
		}
		if key == "" {
			return ErrStoreFailed
		}

		m, err := ms.mediaRepository.Create(ctx, domain.MediaFile{
			FileName: fh.Filename,
			FilePath: key,
			FileType: fh.Header.Get("Content-Type"),
			FileSize: fh.Size,
		})
		if err != nil {
			return err
		}

		ms.mq.GetInputChan() <- mq.Event{
			Id:       uuid.New(),
			TS:       time.Now(),
			Action:   http.MethodPost,
			Entity:   "media",
			EntityID: fmt.Sprintf("%d", m.ID),
			Payload:  m.FileName,
		}
		ms.mCounter.WithLabelValues("media_uploaded_total").Inc()
	}

	return nil
}

func (ms *MediaService) FindAllMedia(ctx context.Context) (domain.MediaFiles, error) {
	return ms.mediaRepository.FetchAll(ctx)
}

func (ms *MediaService) SearchMedia(ctx context.Context, key string) (domain.MediaFiles, int64, error) {
	return ms.mediaRepository.SearchByFileName(ctx, key)
}

func (ms *MediaService) FindMediaPage(ctx context.Context, fileType string, skip, limit int) (domain.MediaFiles, int64, error) {
	return ms.mediaRepository.FetchPage(ctx, fileType, skip, limit)
}

// DestroyMedia deletes each id in order, stopping at the first missing
// record or active reference. Earlier deletions are not undone.
func (ms *MediaService) DestroyMedia(ctx context.Context, ids []domain.ID) error {
	if ids == nil {
		return ErrNoFilesSelected
	}

	for _, id := range ids {
		m, err := ms.mediaRepository.FetchByID(ctx, id)
		if err != nil {
			return err
		}
		if m == nil {
			return ErrMediaNotFound
		}

		if err = ms.checkReferences(ctx, id); err != nil {
			return err
		}

		// blob first, then the row; neither is rolled back if the
		// other fails, matching the storage/record invariant
		_ = ms.storage.Delete(ctx, m.FilePath)
		if err = ms.mediaRepository.Delete(ctx, id); err != nil {
			return err
		}

		ms.mq.GetInputChan() <- mq.Event{
			Id:       uuid.New(),
			TS:       time.Now(),
			Action:   http.MethodDelete,
			Entity:   "media",
			EntityID: fmt.Sprintf("%d", id),
		}
		ms.mCounter.WithLabelValues("media_deleted_total").Inc()
	}

	return nil
}

// checkReferences runs the three lookups in fixed order; the first
// positive match wins.
func (ms *MediaService) checkReferences(ctx context.Context, id domain.ID) error {
	used, err := ms.refChecker.UsedAsProductThumbnail(ctx, id)
	if err != nil {
		return err
	}
	if used {
		return ErrUsedProductThumbnail
	}

	used, err = ms.refChecker.UsedInGallery(ctx, id)
	if err != nil {
		return err
	}
	if used {
		return ErrUsedGallery
	}

	used, err = ms.refChecker.UsedAsAppLogo(ctx, id)
	if err != nil {
		return err
	}
	if used {
		return ErrUsedSettings
	}

	return nil
}

// ViewMedia loads the whole blob into memory together with the
// adapter-reported MIME type.
func (ms *MediaService) ViewMedia(ctx context.Context, id domain.ID) ([]byte, string, error) {
	m, err := ms.mediaRepository.FetchByID(ctx, id)
	if err != nil {
		return nil, "", err
	}
	if m == nil {
		return nil, "", ErrMediaNotFound
	}

	if !ms.storage.Exists(ctx, m.FilePath) {
		return nil, "", ErrBlobMissing
	}

	b, err := ms.storage.Get(ctx, m.FilePath)
	if err != nil {
		return nil, "", err
	}
	mt, err := ms.storage.MimeType(ctx, m.FilePath)
	if err != nil {
		return nil, "", err
	}

	ms.mCounter.WithLabelValues("media_viewed_total").Inc()

	return b, mt, nil
}

// sanitizeFileName folds a client-supplied name down to a safe ASCII
// base so the storage adapter gets a predictable extension. The
// original name stays untouched in the record.
func sanitizeFileName(original string) string {
	if original == "" {
		return "file"
	}

	s := strings.TrimSpace(original)
	s = strings.ReplaceAll(s, "\\", "/")
	s = path.Base(s)

	if s == "." || s == ".." || s == "" {
		return "file"
	}

	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn), norm.NFC)
	s, _, _ = transform.String(t, s)

	ext := path.Ext(s)
	base := strings.TrimSuffix(s, ext)
	ext = strings.ToLower(ext)

	var b strings.Builder
	b.Grow(len(base))
	prevDash := false
	for _, r := range base {
		switch {
		case r >= '0' && r <= '9' || r >= 'a' && r <= 'z':
			b.WriteRune(r)
			prevDash = false
		case r >= 'A' && r <= 'Z':
			b.WriteRune(unicode.ToLower(r))
			prevDash = false
		case r == '-' || r == '_' || r == '.' || unicode.IsSpace(r):
			if !prevDash {
				b.WriteRune('-')
				prevDash = true
			}
		default:
		}
	}
	base = strings.Trim(b.String(), "-")

	if base == "" {
		base = "file"
	}

	return base + ext
}

func isMn(r rune) bool { return unicode.Is(unicode.Mn, r) }
