package content

import (
	"context"
	"testing"

	"glowhaus/config"
	businessRepo "glowhaus/database/repository/business"
	"glowhaus/models"
	"glowhaus/services/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBusinessRepo struct {
	business *models.Business
}

func (f *fakeBusinessRepo) Get(ctx context.Context) (*models.Business, error) {
	if f.business == nil {
		return nil, businessRepo.ErrNotFound
	}
	return f.business, nil
}

func (f *fakeBusinessRepo) Upsert(ctx context.Context, business models.Business) error {
	f.business = &business
	return nil
}

type fakeContentRepo struct {
	services     []models.Service
	testimonials []models.Testimonial
	faqs         []models.FAQ
	about        *models.About
}

func (f *fakeContentRepo) GetActiveServices(ctx context.Context) ([]models.Service, error) {
	return f.services, nil
}

func (f *fakeContentRepo) GetServiceBySlug(ctx context.Context, slug string) (*models.Service, error) {
	for i := range f.services {
		if f.services[i].Slug == slug {
			return &f.services[i], nil
		}
	}
	return nil, businessRepo.ErrNotFound
}

func (f *fakeContentRepo) GetTestimonials(ctx context.Context) ([]models.Testimonial, error) {
	return f.testimonials, nil
}

func (f *fakeContentRepo) GetFAQs(ctx context.Context) ([]models.FAQ, error) {
	return f.faqs, nil
}

func (f *fakeContentRepo) GetAbout(ctx context.Context) (*models.About, error) {
	return f.about, nil
}

type fakeGalleryRepo struct {
	items []models.GalleryItem
}

func (f *fakeGalleryRepo) GetActiveItems(ctx context.Context) ([]models.GalleryItem, error) {
	return f.items, nil
}

func (f *fakeGalleryRepo) GetByID(ctx context.Context, id string) (*models.GalleryItem, error) {
	for i := range f.items {
		if f.items[i].ID == id {
			return &f.items[i], nil
		}
	}
	return nil, businessRepo.ErrNotFound
}

func (f *fakeGalleryRepo) Create(ctx context.Context, item models.GalleryItem) (string, error) {
	f.items = append(f.items, item)
	return item.ID, nil
}

func (f *fakeGalleryRepo) DeleteByID(ctx context.Context, id string) error {
	return nil
}

type fakeReviewSvc struct {
	reviews []models.Review
	summary *models.RatingSummary
}

func (f *fakeReviewSvc) Submit(ctx context.Context, sub models.ReviewSubmission) (string, error) {
	return "", nil
}

func (f *fakeReviewSvc) Approved(ctx context.Context) ([]models.Review, *models.RatingSummary, error) {
	return f.reviews, f.summary, nil
}

// fakeMedia resolves refs to predictable delivery URLs.
type fakeMedia struct{}

func (fakeMedia) ImageURL(publicID string) (string, error) {
	return "https://cdn.example.com/image/" + publicID, nil
}

func (fakeMedia) VideoURL(publicID string) (string, error) {
	return "https://cdn.example.com/video/" + publicID + ".mp4", nil
}

func (fakeMedia) Upload(ctx context.Context, localFilePath, destFolder string) (string, error) {
	return destFolder + "/uploaded", nil
}

func (fakeMedia) Delete(ctx context.Context, publicID string) error {
	return nil
}

func setupConfig() {
	config.AppConfig.PlaceholderImageURL = "/static/placeholder.jpg"
	config.AppConfig.FallbackHoursText = "Mon - Sat: 9:00 AM - 7:00 PM"
	config.AppConfig.DefaultCategory = "Styling"
	config.AppConfig.WhatsAppGreeting = "Hello, I would like to book an appointment."
}

func newService(biz *models.Business) *DefaultContentService {
	setupConfig()
	return &DefaultContentService{
		BusinessRepo: &fakeBusinessRepo{business: biz},
		ContentRepo:  &fakeContentRepo{},
		GalleryRepo:  &fakeGalleryRepo{},
		ReviewSvc:    &fakeReviewSvc{},
	}
}

func TestBusinessUnavailable(t *testing.T) {
	svc := newService(nil)

	_, err := svc.Business(context.Background())
	assert.ErrorIs(t, err, ErrBusinessUnavailable)

	_, err = svc.Landing(context.Background())
	assert.ErrorIs(t, err, ErrBusinessUnavailable)
}

func TestStatusWithoutBusinessRecord(t *testing.T) {
	svc := newService(nil)

	st, err := svc.Status(context.Background())
	require.NoError(t, err)
	assert.False(t, st.IsOpen)
	assert.Equal(t, schedule.LabelHoursNotSet, st.Label)
}

func TestBusinessViewFallbacks(t *testing.T) {
	svc := newService(&models.Business{
		Name:     "Brenda Salon",
		WhatsApp: "254700000000",
		// no hero image, no working hours
	})

	view, err := svc.Business(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "/static/placeholder.jpg", view.HeroImageURL)
	assert.Empty(t, view.Hours)
	assert.Equal(t, "Mon - Sat: 9:00 AM - 7:00 PM", view.HoursFallback)
	assert.Equal(t, "https://wa.me/254700000000?text=Hello%2C+I+would+like+to+book+an+appointment.", view.WhatsAppURL)
	assert.Equal(t, "tel:+254700000000", view.PhoneURL)
}

func TestBusinessViewHoursOrderedAndFormatted(t *testing.T) {
	svc := newService(&models.Business{
		Name: "Brenda Salon",
		WorkingHours: []models.DaySchedule{
			{Day: models.Sunday, Label: "Sunday", Closed: true},
			{Day: models.Monday, Label: "Monday", Open: "09:00", Close: "17:00"},
		},
	})

	view, err := svc.Business(context.Background())
	require.NoError(t, err)

	require.Len(t, view.Hours, 2)
	assert.Equal(t, "Monday", view.Hours[0].Label)
	assert.Equal(t, "9:00 AM – 5:00 PM", view.Hours[0].Display)
	assert.Equal(t, "Sunday", view.Hours[1].Label)
	assert.Equal(t, "Closed", view.Hours[1].Display)
	assert.Empty(t, view.HoursFallback)
}

func TestGalleryDefaults(t *testing.T) {
	svc := newService(&models.Business{Name: "Brenda Salon"})
	svc.GalleryRepo = &fakeGalleryRepo{items: []models.GalleryItem{
		{ID: "g1"}, // mediaType and category unset
		{ID: "g2", MediaType: models.MediaVideo, VideoURL: "https://cdn.example.com/v.mp4", Category: "Hair"},
	}}

	views, err := svc.Gallery(context.Background())
	require.NoError(t, err)
	require.Len(t, views, 2)

	assert.Equal(t, models.MediaImage, views[0].MediaType)
	assert.Equal(t, "Styling", views[0].Category)
	assert.Equal(t, "/static/placeholder.jpg", views[0].ImageURL)

	assert.Equal(t, models.MediaVideo, views[1].MediaType)
	assert.Empty(t, views[1].ImageURL, "videos carry no image URL")
}

func TestGalleryVideoRefResolved(t *testing.T) {
	svc := newService(&models.Business{Name: "Brenda Salon"})
	svc.Media = fakeMedia{}
	svc.GalleryRepo = &fakeGalleryRepo{items: []models.GalleryItem{
		{ID: "g1", MediaType: models.MediaVideo, VideoRef: "gallery/reel"},
		{ID: "g2", MediaType: models.MediaVideo, VideoRef: "gallery/reel2", VideoURL: "https://cdn.example.com/external.mp4"},
		{ID: "g3", MediaType: models.MediaImage, ImageRef: "gallery/cut"},
	}}

	views, err := svc.Gallery(context.Background())
	require.NoError(t, err)
	require.Len(t, views, 3)

	assert.Equal(t, "https://cdn.example.com/video/gallery/reel.mp4", views[0].VideoURL)
	assert.Equal(t, "https://cdn.example.com/external.mp4", views[1].VideoURL,
		"an explicit video URL wins over the stored ref")
	assert.Equal(t, "https://cdn.example.com/image/gallery/cut", views[2].ImageURL)
}

func TestServicesDefaultCategory(t *testing.T) {
	svc := newService(&models.Business{Name: "Brenda Salon"})
	svc.ContentRepo = &fakeContentRepo{services: []models.Service{
		{Title: "Balayage"},
	}}

	views, err := svc.Services(context.Background())
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "Styling", views[0].Category)
	assert.Equal(t, "/static/placeholder.jpg", views[0].ImageURL)
}

func TestLandingAssemblesAllSections(t *testing.T) {
	svc := newService(&models.Business{Name: "Brenda Salon"})
	svc.ContentRepo = &fakeContentRepo{
		services: []models.Service{{Title: "Balayage", Category: "Hair"}},
		faqs:     []models.FAQ{{Question: "Do you take walk-ins?", Answer: "Yes."}},
		about:    &models.About{Heading: "Elegance in Every Strand"},
	}
	svc.ReviewSvc = &fakeReviewSvc{
		reviews: []models.Review{{ReviewerName: "Amina", Rating: 5}},
		summary: &models.RatingSummary{Average: 5, ReviewCount: 1},
	}

	landing, err := svc.Landing(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Brenda Salon", landing.Business.Name)
	assert.Equal(t, "Elegance in Every Strand", landing.About.Heading)
	assert.Len(t, landing.Services, 1)
	assert.Len(t, landing.Reviews, 1)
	require.NotNil(t, landing.RatingSummary)
	assert.Len(t, landing.FAQs, 1)
}
