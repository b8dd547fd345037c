package galleryRepo

import (
	"context"

	"glowhaus/config"
	"glowhaus/database"
	"glowhaus/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// GalleryRepository provides access to the lookbook collection.
type GalleryRepository interface {
	GetActiveItems(ctx context.Context) ([]models.GalleryItem, error)
	GetByID(ctx context.Context, id string) (*models.GalleryItem, error)
	Create(ctx context.Context, item models.GalleryItem) (string, error)
	DeleteByID(ctx context.Context, id string) error
}

type mongoGalleryRepo struct {
	coll *mongo.Collection
}

// NewMongoGalleryRepo returns a new GalleryRepository instance using MongoDB.
func NewMongoGalleryRepo() GalleryRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoGalleryRepo{
		coll: db.Collection("gallery"),
	}
}
