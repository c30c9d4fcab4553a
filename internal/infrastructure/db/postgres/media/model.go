package media

import (
	"time"
)

type (
	MediaFile struct {
		ID       uint64
		FileName string
		FilePath string
		FileType string
		FileSize int64

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	MediaFiles []*MediaFile
)
