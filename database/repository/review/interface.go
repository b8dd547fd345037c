package reviewRepo

import (
	"context"

	"glowhaus/config"
	"glowhaus/database"
	"glowhaus/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ReviewRepository provides access to customer reviews. Writes always
// create pending records; the public read path only ever sees approved
// ones. Moderation happens outside this service.
type ReviewRepository interface {
	Create(ctx context.Context, review models.Review) (string, error)
	GetApproved(ctx context.Context) ([]models.Review, error)
}

type mongoReviewRepo struct {
	coll *mongo.Collection
}

// NewMongoReviewRepo returns a new ReviewRepository instance using MongoDB.
func NewMongoReviewRepo() ReviewRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoReviewRepo{
		coll: db.Collection("reviews"),
	}
}
