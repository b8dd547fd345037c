package businessRepo

import (
	"context"

	"glowhaus/config"
	"glowhaus/database"
	"glowhaus/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BusinessRepository provides access to the salon's settings record.
// The business document is a singleton; Get returns the first (and only)
// record in the collection.
type BusinessRepository interface {
	Get(ctx context.Context) (*models.Business, error)
	Upsert(ctx context.Context, business models.Business) error
}

type mongoBusinessRepo struct {
	coll *mongo.Collection
}

// NewMongoBusinessRepo returns a new BusinessRepository instance using MongoDB.
func NewMongoBusinessRepo() BusinessRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoBusinessRepo{
		coll: db.Collection("business"),
	}
}
