package media

const (
	SelectAllMedia = `
		SELECT id, "fileName", "filePath", "fileType", "fileSize", created_at, updated_at
		FROM media_files
		ORDER BY id DESC
	`
	SelectMediaByFileName = `
		SELECT id, "fileName", "filePath", "fileType", "fileSize", created_at, updated_at
		FROM media_files
		WHERE "fileName" LIKE '%' || $1 || '%'
		ORDER BY id DESC
	`
	CountMediaByFileName = `
		SELECT count(*) FROM media_files WHERE "fileName" LIKE '%' || $1 || '%'
	`
	SelectMediaPage = `
		SELECT id, "fileName", "filePath", "fileType", "fileSize", created_at, updated_at
		FROM media_files
		WHERE ($1 = '' OR "fileType" = $1)
		ORDER BY id DESC
		OFFSET $2 LIMIT $3
	`
	CountMediaPage = `
		SELECT count(*) FROM media_files WHERE ($1 = '' OR "fileType" = $1)
	`
	SelectMediaByID = `
		SELECT id, "fileName", "filePath", "fileType", "fileSize", created_at, updated_at
		FROM media_files
		WHERE id = $1
	`
	InsertMedia = `
		INSERT INTO media_files ("fileName", "filePath", "fileType", "fileSize")
		VALUES ($1, $2, $3, $4)
		RETURNING id, "fileName", "filePath", "fileType", "fileSize", created_at, updated_at
	`
	DeleteMediaByID = `DELETE FROM media_files WHERE id = $1`

	CountProductThumbnailRefs = `SELECT count(*) FROM product WHERE "productThumbnailImage" = $1`
	CountGalleryRefs          = `SELECT count(*) FROM images WHERE "imageName" = $1`
	CountAppLogoRefs          = `SELECT count(*) FROM app_settings WHERE logo = $1`
)
