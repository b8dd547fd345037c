package contentRepo

import (
	"context"
	"errors"

	"glowhaus/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetActiveServices returns active services ordered by creation time, oldest first.
func (r *mongoContentRepo) GetActiveServices(ctx context.Context) ([]models.Service, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := r.services.Find(ctx, bson.M{"isActive": true}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var services []models.Service
	if err := cursor.All(ctx, &services); err != nil {
		return nil, err
	}
	return services, nil
}

// GetServiceBySlug returns one active service by its slug.
func (r *mongoContentRepo) GetServiceBySlug(ctx context.Context, slug string) (*models.Service, error) {
	var service models.Service
	err := r.services.FindOne(ctx, bson.M{"slug": slug, "isActive": true}).Decode(&service)
	if err != nil {
		return nil, err
	}
	return &service, nil
}

// GetTestimonials returns testimonials, newest first.
func (r *mongoContentRepo) GetTestimonials(ctx context.Context) ([]models.Testimonial, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.testimonials.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var testimonials []models.Testimonial
	if err := cursor.All(ctx, &testimonials); err != nil {
		return nil, err
	}
	return testimonials, nil
}

// GetFAQs returns all FAQ entries ordered by creation time.
func (r *mongoContentRepo) GetFAQs(ctx context.Context) ([]models.FAQ, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := r.faqs.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var faqs []models.FAQ
	if err := cursor.All(ctx, &faqs); err != nil {
		return nil, err
	}
	return faqs, nil
}

// GetAbout returns the about section record, or nil when none exists.
func (r *mongoContentRepo) GetAbout(ctx context.Context) (*models.About, error) {
	var about models.About
	err := r.about.FindOne(ctx, bson.M{}).Decode(&about)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &about, nil
}
