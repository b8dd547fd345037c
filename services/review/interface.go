package review

import (
	"context"

	reviewRepo "glowhaus/database/repository/review"
	"glowhaus/models"
)

// ReviewService handles public review submissions and the approved
// review read path.
type ReviewService interface {
	// Submit validates and persists a new review in the pending state,
	// returning the generated ID.
	Submit(ctx context.Context, sub models.ReviewSubmission) (string, error)

	// Approved returns the approved reviews, newest first, together
	// with their rating summary. The summary is nil when there are no
	// approved reviews yet.
	Approved(ctx context.Context) ([]models.Review, *models.RatingSummary, error)
}

// Notifier is told about new pending submissions so operators can
// moderate them. Delivery is fire-and-forget; failures are logged, not
// surfaced to the submitter.
type Notifier interface {
	NotifyNewReview(ctx context.Context, payload models.ReviewNotifyPayload) error
}

// DefaultReviewService is the production implementation.
type DefaultReviewService struct {
	Repo     reviewRepo.ReviewRepository
	Notifier Notifier // optional
	Metrics  *Metrics // optional
}
