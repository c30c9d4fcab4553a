package media

import (
	domain "github.com/Tanvir1407/metb/internal/domain/media"
)

func fromDBModel(model *MediaFile) *domain.MediaFile {
	var m = &domain.MediaFile{
		ID:       domain.ID(model.ID),
		FileName: model.FileName,
		FilePath: model.FilePath,
		FileType: model.FileType,
		FileSize: model.FileSize,

		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}

	return m
}

func fromDBModels(models *MediaFiles) domain.MediaFiles {
	ms := make(domain.MediaFiles, len(*models))
	for idx, m := range *models {
		ms[idx] = fromDBModel(m)
	}

	return ms
}
