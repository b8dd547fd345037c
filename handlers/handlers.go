package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle aggregates every endpoint handler for route registration.
type HandlerBundle struct {
	// Content endpoints.
	LandingHandler       gin.HandlerFunc
	BusinessHandler      gin.HandlerFunc
	StatusHandler        gin.HandlerFunc
	ServicesHandler      gin.HandlerFunc
	ServiceBySlugHandler gin.HandlerFunc
	GalleryHandler       gin.HandlerFunc
	TestimonialsHandler  gin.HandlerFunc
	FAQsHandler          gin.HandlerFunc

	// Review endpoints.
	SubmitReviewHandler gin.HandlerFunc
	ListReviewsHandler  gin.HandlerFunc

	// Gallery administration endpoints.
	StorageHandler *StorageHandler
}
