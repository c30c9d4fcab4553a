package storage

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Tanvir1407/metb/config"
)

// minimal valid PNG header, enough for content sniffing
var pngBytes = []byte("\x89PNG\r\n\x1a\n0000000000000000")

func newTestFS(t *testing.T) *FileSystem {
	t.Helper()
	fs, err := NewFileSystem(zap.NewNop(), config.Storage{Basedir: t.TempDir()})
	require.NoError(t, err)
	return fs
}

func TestFileSystem_StoreAndGet(t *testing.T) {
	ctx := context.Background()
	fs := newTestFS(t)

	key, err := fs.Store(ctx, "uploads/2026/08/30", "cat.PNG", bytes.NewReader(pngBytes))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(key, "uploads/2026/08/30/"), "key keeps the date partition")
	assert.True(t, strings.HasSuffix(key, ".png"), "extension is kept lowercase")
	assert.NotContains(t, key, "cat", "stored name is generated, not the client name")

	require.True(t, fs.Exists(ctx, key))
	got, err := fs.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, pngBytes, got)
}

func TestFileSystem_StoreGeneratesUniqueKeys(t *testing.T) {
	ctx := context.Background()
	fs := newTestFS(t)

	k1, err := fs.Store(ctx, "uploads", "a.png", bytes.NewReader(pngBytes))
	require.NoError(t, err)
	k2, err := fs.Store(ctx, "uploads", "a.png", bytes.NewReader(pngBytes))
	require.NoError(t, err)

	assert.NotEqual(t, k1, k2)
}

func TestFileSystem_StoreLeavesNoTempFiles(t *testing.T) {
	ctx := context.Background()
	base := t.TempDir()
	fs, err := NewFileSystem(zap.NewNop(), config.Storage{Basedir: base})
	require.NoError(t, err)

	key, err := fs.Store(ctx, "uploads", "a.png", bytes.NewReader(pngBytes))
	require.NoError(t, err)

	entries, err := os.ReadDir(filepath.Dir(filepath.Join(base, filepath.FromSlash(key))))
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestFileSystem_Delete(t *testing.T) {
	ctx := context.Background()
	fs := newTestFS(t)

	key, err := fs.Store(ctx, "uploads", "a.png", bytes.NewReader(pngBytes))
	require.NoError(t, err)

	require.NoError(t, fs.Delete(ctx, key))
	assert.False(t, fs.Exists(ctx, key))

	_, err = fs.Get(ctx, key)
	require.Error(t, err)
	require.Error(t, fs.Delete(ctx, key), "second delete reports the missing blob")
}

func TestFileSystem_MimeType(t *testing.T) {
	ctx := context.Background()
	fs := newTestFS(t)

	tests := []struct {
		name     string
		fileName string
		content  []byte
		want     string
	}{
		{"sniffed png", "a.png", pngBytes, "image/png"},
		{"svg falls back to extension", "a.svg", []byte("<svg xmlns=\"http://www.w3.org/2000/svg\"></svg>"), "image/svg+xml"},
		{"pdf", "a.pdf", []byte("%PDF-1.4 fake"), "application/pdf"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			key, err := fs.Store(ctx, "uploads", tt.fileName, bytes.NewReader(tt.content))
			require.NoError(t, err)

			mt, err := fs.MimeType(ctx, key)
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(mt, tt.want), "got %q, want prefix %q", mt, tt.want)
		})
	}
}
