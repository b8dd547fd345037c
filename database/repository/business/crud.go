package businessRepo

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

// ErrNotFound is returned when no business record has been created yet.
var ErrNotFound = errors.New("business record not found")

// Get returns the singleton business record.
func (r *mongoBusinessRepo) Get(ctx context.Context) (*models.Business, error) {
	var business models.Business
	err := r.coll.FindOne(ctx, bson.M{}).Decode(&business)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &business, nil
}

// Upsert creates or replaces the business record.
func (r *mongoBusinessRepo) Upsert(ctx context.Context, business models.Business) error {
	if business.ID == "" {
		business.ID = uuid.New().String()
		business.CreatedAt = time.Now()
	}
	business.UpdatedAt = time.Now()

	opts := options.Replace().SetUpsert(true)
	_, err := r.coll.ReplaceOne(ctx, bson.M{"id": business.ID}, business, opts)
	return err
}
