package galleryRepo

import (
	"context"
	"errors"
	"time"

	"glowhaus/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when no gallery item exists with the given ID.
var ErrNotFound = errors.New("gallery item not found")

// GetActiveItems returns active gallery items ordered by the explicit
// order field, then creation time.
func (r *mongoGalleryRepo) GetActiveItems(ctx context.Context) ([]models.GalleryItem, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "order", Value: 1},
		{Key: "createdAt", Value: 1},
	})
	cursor, err := r.coll.Find(ctx, bson.M{"isActive": true}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []models.GalleryItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// GetByID returns a single gallery item by ID.
func (r *mongoGalleryRepo) GetByID(ctx context.Context, id string) (*models.GalleryItem, error) {
	var item models.GalleryItem
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&item)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// Create inserts a new gallery item and returns its ID.
func (r *mongoGalleryRepo) Create(ctx context.Context, item models.GalleryItem) (string, error) {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	if item.MediaType == "" {
		item.MediaType = models.MediaImage
	}
	item.CreatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, item)
	if err != nil {
		return "", err
	}
	return item.ID, nil
}

// DeleteByID removes a gallery item by ID.
func (r *mongoGalleryRepo) DeleteByID(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
