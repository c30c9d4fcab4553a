package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Tanvir1407/metb/internal/application/ports"
	"github.com/Tanvir1407/metb/internal/application/services"
	mediaDomain "github.com/Tanvir1407/metb/internal/domain/media"
	"github.com/Tanvir1407/metb/internal/infrastructure/jwt"
	"github.com/Tanvir1407/metb/internal/interface/api/rest/dto/media"
	"github.com/Tanvir1407/metb/internal/interface/api/rest/middleware"
	"github.com/Tanvir1407/metb/internal/interface/api/rest/validator"
)

type MediaController struct {
	mediaService ports.MediaService
	logger       *zap.Logger
}

func NewMediaController(
	r *gin.Engine,
	mediaService ports.MediaService,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *MediaController {
	mc := &MediaController{
		mediaService: mediaService,
		logger:       logger,
	}

	r.GET(RouteMedia, mc.GetMediaHandler)
	r.GET(RouteMediaView, mc.ViewMediaHandler)
	r.POST(RouteMediaUpload, middleware.AuthMiddleware(jwtService), mc.UploadMediaHandler)
	r.POST(RouteMediaDestroy, middleware.AuthMiddleware(jwtService), mc.DestroyMediaHandler)

	return mc
}

func (mc *MediaController) UploadMediaHandler(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No files found."})
		return
	}

	files := form.File["files"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No files found."})
		return
	}

	if err = validator.ValidateUploadBatch(files); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err = mc.mediaService.UploadMedia(c.Request.Context(), files); err != nil {
		if errors.Is(err, services.ErrStoreFailed) {
			c.JSON(http.StatusBadRequest, gin.H{"error": services.ErrStoreFailed.Error()})
			mc.logger.Error("UploadMedia() store error", zap.Error(err))
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to upload media"},
		)
		mc.logger.Error("UploadMedia() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Media upload successful."})
}

// GetMediaHandler dispatches on the query parameter: "all" returns the
// full list, "search" filters by file name, anything else pages with an
// optional fileType filter. No parameters at all is a client error.
func (mc *MediaController) GetMediaHandler(c *gin.Context) {
	q := c.Request.URL.Query()
	if len(q) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query"})
		return
	}

	switch q.Get("query") {
	case "all":
		files, err := mc.mediaService.FindAllMedia(c.Request.Context())
		if err != nil {
			c.JSON(
				http.StatusInternalServerError,
				gin.H{"error": "failed to get media"},
			)
			mc.logger.Error("FindAllMedia() error", zap.Error(err))
			return
		}

		c.JSON(http.StatusOK, media.ToResponseMediaFiles(files))
	case "search":
		key := q.Get("key")
		if key == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query"})
			return
		}

		files, total, err := mc.mediaService.SearchMedia(c.Request.Context(), key)
		if err != nil {
			c.JSON(
				http.StatusInternalServerError,
				gin.H{"error": "failed to search media"},
			)
			mc.logger.Error("SearchMedia() error", zap.Error(err))
			return
		}

		c.JSON(http.StatusOK, media.ListResponse{
			GetAllImage: media.ToResponseMediaFiles(files),
			TotalImage:  total,
		})
	default:
		skip, limit := validator.Pagination(q)

		files, total, err := mc.mediaService.FindMediaPage(c.Request.Context(), q.Get("fileType"), skip, limit)
		if err != nil {
			c.JSON(
				http.StatusInternalServerError,
				gin.H{"error": "failed to get media"},
			)
			mc.logger.Error("FindMediaPage() error", zap.Error(err))
			return
		}

		c.JSON(http.StatusOK, media.ListResponse{
			GetAllImage: media.ToResponseMediaFiles(files),
			TotalImage:  total,
		})
	}
}

func (mc *MediaController) DestroyMediaHandler(c *gin.Context) {
	var req media.DestroyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}

	err := mc.mediaService.DestroyMedia(c.Request.Context(), media.ToDomainIDs(req.Images))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNoFilesSelected),
			errors.Is(err, services.ErrMediaNotFound),
			errors.Is(err, services.ErrUsedProductThumbnail),
			errors.Is(err, services.ErrUsedGallery),
			errors.Is(err, services.ErrUsedSettings):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(
				http.StatusInternalServerError,
				gin.H{"error": "failed to delete media"},
			)
			mc.logger.Error("DestroyMedia() error", zap.Error(err))
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "file deleted successfully"})
}

func (mc *MediaController) ViewMediaHandler(c *gin.Context) {
	id, err := validator.ParseID(c.Param("media_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "media_id must be a positive integer"})
		return
	}

	data, contentType, err := mc.mediaService.ViewMedia(c.Request.Context(), mediaDomain.ID(id))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMediaNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "File not found"})
		case errors.Is(err, services.ErrBlobMissing):
			c.JSON(http.StatusNotFound, gin.H{"error": services.ErrBlobMissing.Error()})
		default:
			c.JSON(
				http.StatusInternalServerError,
				gin.H{"error": "failed to read media"},
			)
			mc.logger.Error("ViewMedia() error", zap.Error(err))
		}
		return
	}

	c.Data(http.StatusOK, contentType, data)
}
