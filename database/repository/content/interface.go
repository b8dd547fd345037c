package contentRepo

import (
	"context"

	"glowhaus/config"
	"glowhaus/database"
	"glowhaus/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ContentRepository provides read access to the editorial content
// collections: services menu, testimonials, FAQs and the about section.
type ContentRepository interface {
	GetActiveServices(ctx context.Context) ([]models.Service, error)
	GetServiceBySlug(ctx context.Context, slug string) (*models.Service, error)
	GetTestimonials(ctx context.Context) ([]models.Testimonial, error)
	GetFAQs(ctx context.Context) ([]models.FAQ, error)
	GetAbout(ctx context.Context) (*models.About, error)
}

type mongoContentRepo struct {
	services     *mongo.Collection
	testimonials *mongo.Collection
	faqs         *mongo.Collection
	about        *mongo.Collection
}

// NewMongoContentRepo returns a new ContentRepository instance using MongoDB.
func NewMongoContentRepo() ContentRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoContentRepo{
		services:     db.Collection("services"),
		testimonials: db.Collection("testimonials"),
		faqs:         db.Collection("faqs"),
		about:        db.Collection("about"),
	}
}
