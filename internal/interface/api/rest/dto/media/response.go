package media

import (
	"time"
)

type (
	MediaFile struct {
		ID        uint64    `json:"id"`
		FileName  string    `json:"fileName"`
		FilePath  string    `json:"filePath"`
		FileType  string    `json:"fileType"`
		FileSize  int64     `json:"fileSize"`
		CreatedAt time.Time `json:"createdAt"`
		UpdatedAt time.Time `json:"updatedAt"`
	}
	MediaFiles []MediaFile

	ListResponse struct {
		GetAllImage MediaFiles `json:"getAllImage"`
		TotalImage  int64      `json:"totalImage"`
	}
)
