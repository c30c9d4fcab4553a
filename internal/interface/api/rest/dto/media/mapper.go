package media

import (
	domain "github.com/Tanvir1407/metb/internal/domain/media"
)

func ToResponseMediaFile(mDomain domain.MediaFile) MediaFile {
	var m = MediaFile{
		ID:        uint64(mDomain.ID),
		FileName:  mDomain.FileName,
		FilePath:  mDomain.FilePath,
		FileType:  mDomain.FileType,
		FileSize:  mDomain.FileSize,
		CreatedAt: mDomain.CreatedAt,
		UpdatedAt: mDomain.UpdatedAt,
	}

	return m
}

func ToResponseMediaFiles(msDomain domain.MediaFiles) MediaFiles {
	ms := make(MediaFiles, len(msDomain))
	for idx, m := range msDomain {
		ms[idx] = ToResponseMediaFile(*m)
	}

	return ms
}

func ToDomainIDs(ids []uint64) []domain.ID {
	if ids == nil {
		return nil
	}
	out := make([]domain.ID, len(ids))
	for idx, id := range ids {
		out[idx] = domain.ID(id)
	}

	return out
}
