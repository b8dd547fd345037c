package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	galleryRepo "glowhaus/database/repository/gallery"
	"glowhaus/models"
	"glowhaus/services/media"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StorageHandler serves the gallery administration endpoints: media
// uploads into the lookbook and item removal.
type StorageHandler struct {
	MediaSvc    media.MediaService
	GalleryRepo galleryRepo.GalleryRepository
	Logger      *zap.Logger
}

// NewStorageHandler creates a new StorageHandler instance.
func NewStorageHandler(svc media.MediaService, repo galleryRepo.GalleryRepository, logger *zap.Logger) *StorageHandler {
	return &StorageHandler{MediaSvc: svc, GalleryRepo: repo, Logger: logger}
}

// UploadGalleryItemHandler handles POST /api/gallery. It uploads the
// attached image and creates the gallery record in one step.
func (h *StorageHandler) UploadGalleryItemHandler(c *gin.Context) {
	if h.MediaSvc == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "media storage not configured"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file not provided"})
		return
	}

	// The client-supplied filename is untrusted; keep only its base name.
	tempFilePath := filepath.Join(os.TempDir(), filepath.Base(fileHeader.Filename))
	if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
		h.Logger.Error("UploadGalleryItemHandler: failed to save file", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save file"})
		return
	}
	defer os.Remove(tempFilePath)

	publicID, err := h.MediaSvc.Upload(c, tempFilePath, "gallery")
	if err != nil {
		h.Logger.Error("UploadGalleryItemHandler: upload failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload file"})
		return
	}

	order := 0
	if v := c.PostForm("order"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			order = parsed
		}
	}

	item := models.GalleryItem{
		MediaType:   models.MediaImage,
		ImageRef:    publicID,
		Alt:         c.PostForm("alt"),
		Description: c.PostForm("description"),
		Category:    c.PostForm("category"),
		Order:       order,
		IsActive:    true,
	}

	id, err := h.GalleryRepo.Create(c, item)
	if err != nil {
		h.Logger.Error("UploadGalleryItemHandler: failed to create gallery item", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create gallery item"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id, "imageRef": publicID})
}

// DeleteGalleryItemHandler handles DELETE /api/gallery/:id. The stored
// cloud assets are destroyed along with the record so nothing is left
// orphaned.
func (h *StorageHandler) DeleteGalleryItemHandler(c *gin.Context) {
	id := c.Param("id")

	item, err := h.GalleryRepo.GetByID(c, id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "gallery item not found"})
		return
	}

	if err := h.GalleryRepo.DeleteByID(c, id); err != nil {
		h.Logger.Error("DeleteGalleryItemHandler: failed to delete gallery item", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete gallery item"})
		return
	}

	// Asset cleanup is best-effort: the record is already gone and a
	// leftover asset is invisible to the site.
	if h.MediaSvc != nil {
		for _, ref := range []string{item.ImageRef, item.VideoRef} {
			if ref == "" {
				continue
			}
			if err := h.MediaSvc.Delete(c, ref); err != nil {
				h.Logger.Warn("DeleteGalleryItemHandler: failed to delete media asset",
					zap.String("ref", ref), zap.Error(err))
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{"deleted": id})
}
