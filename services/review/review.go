package review

import (
	"context"
	"errors"
	"strings"
	"time"

	"glowhaus/models"
	"glowhaus/utils"

	"go.uber.org/zap"
)

// ErrStorage is the generic failure returned when a review could not be
// saved. The underlying cause goes to the log only; callers must not
// see transport or storage detail.
var ErrStorage = errors.New("failed to save review")

// ValidationError describes a rejected submission.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func validate(sub models.ReviewSubmission) error {
	if strings.TrimSpace(sub.Name) == "" {
		return &ValidationError{Reason: "name is required"}
	}
	if sub.Rating < 1 || sub.Rating > 5 {
		return &ValidationError{Reason: "rating must be between 1 and 5"}
	}
	if strings.TrimSpace(sub.Review) == "" {
		return &ValidationError{Reason: "review text is required"}
	}
	return nil
}

// Submit validates the submission and persists it as a pending review
// with a server-assigned timestamp and source "website".
func (s *DefaultReviewService) Submit(ctx context.Context, sub models.ReviewSubmission) (string, error) {
	logger := utils.GetLogger()

	if err := validate(sub); err != nil {
		if s.Metrics != nil {
			s.Metrics.SubmissionsTotal.WithLabelValues("rejected").Inc()
		}
		return "", err
	}

	rec := models.Review{
		ReviewerName:    strings.TrimSpace(sub.Name),
		Rating:          sub.Rating,
		ReviewText:      strings.TrimSpace(sub.Review),
		ServiceReceived: strings.TrimSpace(sub.Service),
		ReviewDate:      time.Now(),
		Status:          models.ReviewPending,
		Source:          models.SourceWebsite,
	}

	id, err := s.Repo.Create(ctx, rec)
	if err != nil {
		logger.Error("Submit: failed to save review", zap.Error(err))
		if s.Metrics != nil {
			s.Metrics.SubmissionsTotal.WithLabelValues("error").Inc()
		}
		return "", ErrStorage
	}

	if s.Metrics != nil {
		s.Metrics.SubmissionsTotal.WithLabelValues("accepted").Inc()
	}

	if s.Notifier != nil {
		payload := models.ReviewNotifyPayload{
			ReviewID:     id,
			ReviewerName: rec.ReviewerName,
			Rating:       rec.Rating,
			SubmittedAt:  rec.ReviewDate.Format(time.RFC3339),
		}
		if err := s.Notifier.NotifyNewReview(ctx, payload); err != nil {
			// Notification is best-effort; the review is already saved.
			logger.Warn("Submit: failed to enqueue review notification",
				zap.String("reviewID", id), zap.Error(err))
			if s.Metrics != nil {
				s.Metrics.NotifyFailures.Inc()
			}
		}
	}

	return id, nil
}

// Approved returns the approved reviews and their rating summary.
func (s *DefaultReviewService) Approved(ctx context.Context) ([]models.Review, *models.RatingSummary, error) {
	reviews, err := s.Repo.GetApproved(ctx)
	if err != nil {
		return nil, nil, err
	}
	return reviews, Aggregate(reviews), nil
}
