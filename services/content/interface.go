package content

import (
	"context"
	"errors"

	businessRepo "glowhaus/database/repository/business"
	contentRepo "glowhaus/database/repository/content"
	galleryRepo "glowhaus/database/repository/gallery"
	"glowhaus/models"
	"glowhaus/services/media"
	"glowhaus/services/review"
	"glowhaus/services/schedule"

	"github.com/go-redis/redis/v8"
)

// ErrBusinessUnavailable is returned when no business record exists
// yet; the caller renders an awaiting-data state instead of partial
// content.
var ErrBusinessUnavailable = errors.New("business record unavailable")

// HoursRow is one display line of the working-hours widget.
type HoursRow struct {
	Day     string `json:"day"`
	Label   string `json:"label"`
	Display string `json:"display"` // "Closed", "9:00 AM – 5:00 PM" or "Call for hours"
}

// BusinessView is the business profile resolved for display: media refs
// become URLs, hours are canonically ordered and formatted, social
// handles become profile URLs.
type BusinessView struct {
	Name          string              `json:"name"`
	Tagline       string              `json:"tagline,omitempty"`
	AboutText     string              `json:"aboutText,omitempty"`
	Location      string              `json:"location,omitempty"`
	GoogleMapsURL string              `json:"googleMapsUrl,omitempty"`
	HeroImageURL  string              `json:"heroImageUrl"`
	HeroVideoURL  string              `json:"heroVideoUrl,omitempty"`
	Hours         []HoursRow          `json:"hours,omitempty"`
	HoursFallback string              `json:"hoursFallback,omitempty"` // shown when no hours are configured
	Status        schedule.OpenStatus `json:"status"`
	Social        models.SocialLinks  `json:"social,omitzero"` // resolved to full URLs
	WhatsAppURL   string              `json:"whatsappUrl,omitempty"`
	PhoneURL      string              `json:"phoneUrl,omitempty"`
}

// ServiceView is a service menu entry with its image resolved.
type ServiceView struct {
	models.Service
	ImageURL string `json:"imageUrl"`
}

// TestimonialView is a testimonial with its screenshot resolved.
type TestimonialView struct {
	models.Testimonial
	ScreenshotURL string `json:"screenshotUrl,omitempty"`
}

// GalleryView is a gallery item with its media resolved.
type GalleryView struct {
	models.GalleryItem
	ImageURL string `json:"imageUrl,omitempty"`
}

// LandingContent is the full landing page payload.
type LandingContent struct {
	Business      *BusinessView         `json:"business"`
	About         *models.About         `json:"about,omitempty"`
	Services      []ServiceView         `json:"services"`
	Reviews       []models.Review       `json:"reviews"`
	RatingSummary *models.RatingSummary `json:"ratingSummary,omitempty"`
	Testimonials  []TestimonialView     `json:"testimonials"`
	FAQs          []models.FAQ          `json:"faqs"`
	Gallery       []GalleryView         `json:"gallery"`
}

// ContentService assembles display-ready content from the store.
type ContentService interface {
	Landing(ctx context.Context) (*LandingContent, error)
	Business(ctx context.Context) (*BusinessView, error)
	Status(ctx context.Context) (schedule.OpenStatus, error)
	Services(ctx context.Context) ([]ServiceView, error)
	ServiceBySlug(ctx context.Context, slug string) (*ServiceView, error)
	Gallery(ctx context.Context) ([]GalleryView, error)
	Testimonials(ctx context.Context) ([]TestimonialView, error)
	FAQs(ctx context.Context) ([]models.FAQ, error)
}

// DefaultContentService is the production implementation.
type DefaultContentService struct {
	BusinessRepo businessRepo.BusinessRepository
	ContentRepo  contentRepo.ContentRepository
	GalleryRepo  galleryRepo.GalleryRepository
	ReviewSvc    review.ReviewService
	Media        media.MediaService      // optional; refs pass through when absent
	Cache        *redis.Client           // optional landing cache
	Watcher      *schedule.StatusWatcher // optional; kept in sync with schedule edits
}
