package media

import (
	"time"
)

type (
	ID        uint64
	MediaFile struct {
		ID       ID
		FileName string
		FilePath string
		FileType string
		FileSize int64

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	MediaFiles []*MediaFile
)
