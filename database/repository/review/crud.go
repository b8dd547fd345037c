package reviewRepo

import (
	"context"

	"glowhaus/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a new review and returns its ID.
func (r *mongoReviewRepo) Create(ctx context.Context, review models.Review) (string, error) {
	if review.ID == "" {
		review.ID = uuid.New().String()
	}

	_, err := r.coll.InsertOne(ctx, review)
	if err != nil {
		return "", err
	}
	return review.ID, nil
}

// GetApproved returns approved reviews ordered by submission date, newest first.
func (r *mongoReviewRepo) GetApproved(ctx context.Context) ([]models.Review, error) {
	opts := options.Find().SetSort(bson.D{{Key: "reviewDate", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"status": models.ReviewApproved}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var reviews []models.Review
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}
