package storage

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Tanvir1407/metb/config"
)

const sniffLen = 512

// FileSystem is a key-addressed blob store on local disk. Keys are
// slash-separated relative paths ("uploads/2026/08/30/<name>").
type FileSystem struct {
	basedir string
	logger  *zap.Logger
}

func NewFileSystem(logger *zap.Logger, cfg config.Storage) (*FileSystem, error) {
	if err := os.MkdirAll(cfg.Basedir, 0o755); err != nil {
		return nil, fmt.Errorf("init storage basedir: %w", err)
	}

	logger.Info("blob storage ready", zap.String("basedir", cfg.Basedir))

	return &FileSystem{
		basedir: cfg.Basedir,
		logger:  logger,
	}, nil
}

// Store writes the blob under dir with a generated name, keeping the
// original file's extension. The write goes to a temp file first and
// is renamed into place so a partial write never becomes visible.
func (fs *FileSystem) Store(ctx context.Context, dir, fileName string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(fileName))
	key := path.Join(dir, strings.ReplaceAll(uuid.NewString(), "-", "")+ext)

	full := fs.fullPath(key)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", fmt.Errorf("create blob dir: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(full), ".upload-*")
	if err != nil {
		return "", fmt.Errorf("create temp blob: %w", err)
	}
	if _, err = io.Copy(tmp, r); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("write blob: %w", err)
	}
	if err = tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("close temp blob: %w", err)
	}
	if err = os.Rename(tmp.Name(), full); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("publish blob: %w", err)
	}

	return key, nil
}

func (fs *FileSystem) Exists(ctx context.Context, key string) bool {
	_, err := os.Stat(fs.fullPath(key))
	return err == nil
}

func (fs *FileSystem) Get(ctx context.Context, key string) ([]byte, error) {
	b, err := os.ReadFile(fs.fullPath(key))
	if err != nil {
		return nil, fmt.Errorf("read blob %s: %w", key, err)
	}

	return b, nil
}

func (fs *FileSystem) Delete(ctx context.Context, key string) error {
	if err := os.Remove(fs.fullPath(key)); err != nil {
		return fmt.Errorf("delete blob %s: %w", key, err)
	}

	return nil
}

// MimeType sniffs the blob's content and falls back to the extension
// when sniffing is inconclusive.
func (fs *FileSystem) MimeType(ctx context.Context, key string) (string, error) {
	f, err := os.Open(fs.fullPath(key))
	if err != nil {
		return "", fmt.Errorf("open blob %s: %w", key, err)
	}
	defer f.Close()

	buf := make([]byte, sniffLen)
	n, err := f.Read(buf)
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("sniff blob %s: %w", key, err)
	}

	mt := http.DetectContentType(buf[:n])
	if strings.HasPrefix(mt, "application/octet-stream") || strings.HasPrefix(mt, "text/plain") {
		if byExt := mime.TypeByExtension(filepath.Ext(key)); byExt != "" {
			mt = byExt
		}
	}

	return mt, nil
}

func (fs *FileSystem) fullPath(key string) string {
	return filepath.Join(fs.basedir, filepath.FromSlash(key))
}
