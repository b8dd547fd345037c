package content

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"glowhaus/config"
	businessRepo "glowhaus/database/repository/business"
	"glowhaus/models"
	"glowhaus/services/schedule"
	"glowhaus/utils"

	"go.uber.org/zap"
)

// Landing assembles the full landing page payload, serving from the
// Redis cache when a fresh copy exists.
func (s *DefaultContentService) Landing(ctx context.Context) (*LandingContent, error) {
	logger := utils.GetLogger()

	if cached := s.cachedLanding(ctx); cached != nil {
		return cached, nil
	}

	business, err := s.Business(ctx)
	if err != nil {
		return nil, err
	}

	about, err := s.ContentRepo.GetAbout(ctx)
	if err != nil {
		return nil, err
	}

	services, err := s.Services(ctx)
	if err != nil {
		return nil, err
	}

	reviews, summary, err := s.ReviewSvc.Approved(ctx)
	if err != nil {
		return nil, err
	}

	testimonials, err := s.Testimonials(ctx)
	if err != nil {
		return nil, err
	}

	faqs, err := s.ContentRepo.GetFAQs(ctx)
	if err != nil {
		return nil, err
	}

	gallery, err := s.Gallery(ctx)
	if err != nil {
		return nil, err
	}

	landing := &LandingContent{
		Business:      business,
		About:         about,
		Services:      services,
		Reviews:       reviews,
		RatingSummary: summary,
		Testimonials:  testimonials,
		FAQs:          faqs,
		Gallery:       gallery,
	}

	if err := s.cacheLanding(ctx, landing); err != nil {
		logger.Warn("Landing: failed to cache payload", zap.Error(err))
	}
	return landing, nil
}

// Business returns the display-ready business profile.
func (s *DefaultContentService) Business(ctx context.Context) (*BusinessView, error) {
	business, err := s.BusinessRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, businessRepo.ErrNotFound) {
			return nil, ErrBusinessUnavailable
		}
		return nil, err
	}

	week := schedule.NewWeek(business.WorkingHours)
	if s.Watcher != nil {
		s.Watcher.SetWeek(week)
	}

	view := &BusinessView{
		Name:          business.Name,
		Tagline:       business.Tagline,
		AboutText:     business.AboutText,
		Location:      business.Location,
		GoogleMapsURL: business.GoogleMapsURL,
		HeroImageURL:  s.imageURL(business.HeroImageRef),
		HeroVideoURL:  business.HeroVideoURL,
		Status:        schedule.Evaluate(week, time.Now()),
		Social:        ResolveSocialLinks(business.SocialLinks),
		WhatsAppURL:   WhatsAppURL(business.WhatsApp, config.AppConfig.WhatsAppGreeting),
		PhoneURL:      PhoneURL(business.WhatsApp),
	}

	days := week.Days()
	if len(days) == 0 {
		view.HoursFallback = config.AppConfig.FallbackHoursText
		return view, nil
	}
	view.Hours = make([]HoursRow, 0, len(days))
	for _, d := range days {
		view.Hours = append(view.Hours, HoursRow{
			Day:     d.Day,
			Label:   d.Label,
			Display: schedule.FormatDay(d),
		})
	}
	return view, nil
}

// Status evaluates the open/closed status against the live schedule.
func (s *DefaultContentService) Status(ctx context.Context) (schedule.OpenStatus, error) {
	business, err := s.BusinessRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, businessRepo.ErrNotFound) {
			return schedule.OpenStatus{IsOpen: false, Label: schedule.LabelHoursNotSet}, nil
		}
		return schedule.OpenStatus{}, err
	}

	week := schedule.NewWeek(business.WorkingHours)
	if s.Watcher != nil {
		s.Watcher.SetWeek(week)
	}
	return schedule.Evaluate(week, time.Now()), nil
}

// Services returns active services with resolved images.
func (s *DefaultContentService) Services(ctx context.Context) ([]ServiceView, error) {
	services, err := s.ContentRepo.GetActiveServices(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]ServiceView, 0, len(services))
	for _, svc := range services {
		if svc.Category == "" {
			svc.Category = config.AppConfig.DefaultCategory
		}
		views = append(views, ServiceView{
			Service:  svc,
			ImageURL: s.imageURL(svc.ImageRef),
		})
	}
	return views, nil
}

// ServiceBySlug returns one active service with its image resolved.
func (s *DefaultContentService) ServiceBySlug(ctx context.Context, slug string) (*ServiceView, error) {
	svc, err := s.ContentRepo.GetServiceBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if svc.Category == "" {
		svc.Category = config.AppConfig.DefaultCategory
	}
	return &ServiceView{
		Service:  *svc,
		ImageURL: s.imageURL(svc.ImageRef),
	}, nil
}

// Gallery returns active gallery items with resolved media.
func (s *DefaultContentService) Gallery(ctx context.Context) ([]GalleryView, error) {
	items, err := s.GalleryRepo.GetActiveItems(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]GalleryView, 0, len(items))
	for _, item := range items {
		if item.MediaType == "" {
			item.MediaType = models.MediaImage
		}
		if item.Category == "" {
			item.Category = config.AppConfig.DefaultCategory
		}
		if item.MediaType == models.MediaVideo && item.VideoURL == "" {
			item.VideoURL = s.videoURL(item.VideoRef)
		}
		view := GalleryView{GalleryItem: item}
		if item.MediaType == models.MediaImage {
			view.ImageURL = s.imageURL(item.ImageRef)
		}
		views = append(views, view)
	}
	return views, nil
}

// Testimonials returns testimonials with resolved screenshots.
func (s *DefaultContentService) Testimonials(ctx context.Context) ([]TestimonialView, error) {
	testimonials, err := s.ContentRepo.GetTestimonials(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]TestimonialView, 0, len(testimonials))
	for _, tm := range testimonials {
		view := TestimonialView{Testimonial: tm}
		if tm.ScreenshotRef != "" {
			view.ScreenshotURL = s.imageURL(tm.ScreenshotRef)
		}
		views = append(views, view)
	}
	return views, nil
}

// FAQs returns all FAQ entries.
func (s *DefaultContentService) FAQs(ctx context.Context) ([]models.FAQ, error) {
	return s.ContentRepo.GetFAQs(ctx)
}

// imageURL resolves a stored image reference to a delivery URL, falling
// back to the configured placeholder when the reference is missing or
// unresolvable.
func (s *DefaultContentService) imageURL(ref string) string {
	if ref == "" {
		return config.AppConfig.PlaceholderImageURL
	}
	if s.Media == nil {
		return ref
	}
	url, err := s.Media.ImageURL(ref)
	if err != nil {
		utils.GetLogger().Warn("imageURL: failed to resolve media reference",
			zap.String("ref", ref), zap.Error(err))
		return config.AppConfig.PlaceholderImageURL
	}
	return url
}

// videoURL resolves a stored video reference to a delivery URL. Unlike
// images there is no placeholder to fall back to; an unresolvable ref
// yields an empty URL and the client skips the item.
func (s *DefaultContentService) videoURL(ref string) string {
	if ref == "" {
		return ""
	}
	if s.Media == nil {
		return ref
	}
	url, err := s.Media.VideoURL(ref)
	if err != nil {
		utils.GetLogger().Warn("videoURL: failed to resolve media reference",
			zap.String("ref", ref), zap.Error(err))
		return ""
	}
	return url
}

func (s *DefaultContentService) cachedLanding(ctx context.Context) *LandingContent {
	if s.Cache == nil {
		return nil
	}
	raw, err := s.Cache.Get(ctx, utils.LandingCacheKey).Bytes()
	if err != nil {
		return nil
	}
	var landing LandingContent
	if err := json.Unmarshal(raw, &landing); err != nil {
		return nil
	}
	return &landing
}

func (s *DefaultContentService) cacheLanding(ctx context.Context, landing *LandingContent) error {
	if s.Cache == nil {
		return nil
	}
	raw, err := json.Marshal(landing)
	if err != nil {
		return err
	}
	ttl := time.Duration(config.AppConfig.ContentCacheTTL) * time.Second
	if ttl <= 0 {
		ttl = utils.DefaultContentCacheTTL
	}
	return s.Cache.Set(ctx, utils.LandingCacheKey, raw, ttl).Err()
}
