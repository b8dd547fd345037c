package routes

import (
	"net/http"
	"time"

	"glowhaus/handlers"
	"glowhaus/middleware"
	"glowhaus/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterContentRoutes registers the read-only content endpoints.
func RegisterContentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/content/landing", hb.LandingHandler)
		api.GET("/business", hb.BusinessHandler)
		api.GET("/business/status", hb.StatusHandler)
		api.GET("/services", hb.ServicesHandler)
		api.GET("/services/:slug", hb.ServiceBySlugHandler)
		api.GET("/gallery", hb.GalleryHandler)
		api.GET("/testimonials", hb.TestimonialsHandler)
		api.GET("/faqs", hb.FAQsHandler)
	}
}

// RegisterReviewRoutes registers the public review endpoints.
func RegisterReviewRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/reviews")
	{
		api.GET("", hb.ListReviewsHandler)
		api.POST("", hb.SubmitReviewHandler)
	}
}

// RegisterGalleryAdminRoutes registers the gallery administration endpoints.
func RegisterGalleryAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	if hb.StorageHandler == nil {
		return
	}
	adminGroup := r.Group("/api/gallery")
	{
		adminGroup.Use(middleware.AdminAuthMiddleware())
		adminGroup.POST("", hb.StorageHandler.UploadGalleryItemHandler)
		adminGroup.DELETE("/:id", hb.StorageHandler.DeleteGalleryItemHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
	})
}

// RegisterMetricsRoute exposes Prometheus metrics.
func RegisterMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterContentRoutes(r, hb)
	RegisterReviewRoutes(r, hb)
	RegisterGalleryAdminRoutes(r, hb)
	RegisterHealthRoute(r)
	RegisterMetricsRoute(r)
}
