package handlers

import (
	"errors"
	"net/http"

	"glowhaus/services/content"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContentHandler serves the read-only content endpoints.
type ContentHandler struct {
	ContentSvc content.ContentService
	Logger     *zap.Logger
}

// NewContentHandler creates a new ContentHandler instance.
func NewContentHandler(svc content.ContentService, logger *zap.Logger) *ContentHandler {
	return &ContentHandler{ContentSvc: svc, Logger: logger}
}

// LandingHandler handles GET /api/content/landing.
func (h *ContentHandler) LandingHandler(c *gin.Context) {
	landing, err := h.ContentSvc.Landing(c.Request.Context())
	if err != nil {
		if errors.Is(err, content.ErrBusinessUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error":   "content unavailable",
				"message": "awaiting content; the business profile has not been published yet",
			})
			return
		}
		h.Logger.Error("LandingHandler: failed to assemble landing content", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed to fetch content",
			"message": "please try again later",
		})
		return
	}

	c.JSON(http.StatusOK, landing)
}

// BusinessHandler handles GET /api/business.
func (h *ContentHandler) BusinessHandler(c *gin.Context) {
	view, err := h.ContentSvc.Business(c.Request.Context())
	if err != nil {
		if errors.Is(err, content.ErrBusinessUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error":   "content unavailable",
				"message": "awaiting content; the business profile has not been published yet",
			})
			return
		}
		h.Logger.Error("BusinessHandler: failed to fetch business profile", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed to fetch business profile",
			"message": "please try again later",
		})
		return
	}

	c.JSON(http.StatusOK, view)
}

// StatusHandler handles GET /api/business/status.
func (h *ContentHandler) StatusHandler(c *gin.Context) {
	status, err := h.ContentSvc.Status(c.Request.Context())
	if err != nil {
		h.Logger.Error("StatusHandler: failed to evaluate open status", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed to evaluate status",
			"message": "please try again later",
		})
		return
	}

	c.JSON(http.StatusOK, status)
}

// ServicesHandler handles GET /api/services.
func (h *ContentHandler) ServicesHandler(c *gin.Context) {
	services, err := h.ContentSvc.Services(c.Request.Context())
	if err != nil {
		h.Logger.Error("ServicesHandler: failed to fetch services", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed to fetch services",
			"message": "please try again later",
		})
		return
	}

	c.JSON(http.StatusOK, services)
}

// ServiceBySlugHandler handles GET /api/services/:slug.
func (h *ContentHandler) ServiceBySlugHandler(c *gin.Context) {
	slug := c.Param("slug")

	view, err := h.ContentSvc.ServiceBySlug(c.Request.Context(), slug)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "service not found",
			"message": "no active service with slug " + slug,
		})
		return
	}

	c.JSON(http.StatusOK, view)
}

// GalleryHandler handles GET /api/gallery.
func (h *ContentHandler) GalleryHandler(c *gin.Context) {
	items, err := h.ContentSvc.Gallery(c.Request.Context())
	if err != nil {
		h.Logger.Error("GalleryHandler: failed to fetch gallery", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed to fetch gallery",
			"message": "please try again later",
		})
		return
	}

	c.JSON(http.StatusOK, items)
}

// TestimonialsHandler handles GET /api/testimonials.
func (h *ContentHandler) TestimonialsHandler(c *gin.Context) {
	testimonials, err := h.ContentSvc.Testimonials(c.Request.Context())
	if err != nil {
		h.Logger.Error("TestimonialsHandler: failed to fetch testimonials", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed to fetch testimonials",
			"message": "please try again later",
		})
		return
	}

	c.JSON(http.StatusOK, testimonials)
}

// FAQsHandler handles GET /api/faqs.
func (h *ContentHandler) FAQsHandler(c *gin.Context) {
	faqs, err := h.ContentSvc.FAQs(c.Request.Context())
	if err != nil {
		h.Logger.Error("FAQsHandler: failed to fetch FAQs", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed to fetch FAQs",
			"message": "please try again later",
		})
		return
	}

	c.JSON(http.StatusOK, faqs)
}
