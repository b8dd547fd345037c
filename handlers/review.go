package handlers

import (
	"errors"
	"net/http"

	"glowhaus/models"
	"glowhaus/services/review"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReviewHandler serves the public review endpoints.
type ReviewHandler struct {
	ReviewSvc review.ReviewService
	Logger    *zap.Logger
}

// NewReviewHandler creates a new ReviewHandler instance.
func NewReviewHandler(svc review.ReviewService, logger *zap.Logger) *ReviewHandler {
	return &ReviewHandler{ReviewSvc: svc, Logger: logger}
}

// SubmitReviewHandler handles POST /api/reviews.
func (h *ReviewHandler) SubmitReviewHandler(c *gin.Context) {
	var body models.ReviewSubmission
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"message": "name, rating and review are required",
		})
		return
	}

	id, err := h.ReviewSvc.Submit(c.Request.Context(), body)
	if err != nil {
		var verr *review.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "invalid submission",
				"message": verr.Reason,
			})
			return
		}
		// Storage detail stays in the log; the submitter sees a generic
		// retryable failure and keeps their form state.
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed to save review",
			"message": "something went wrong, please try again",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "id": id})
}

// ListReviewsHandler handles GET /api/reviews.
func (h *ReviewHandler) ListReviewsHandler(c *gin.Context) {
	reviews, summary, err := h.ReviewSvc.Approved(c.Request.Context())
	if err != nil {
		h.Logger.Error("ListReviewsHandler: failed to fetch reviews", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed to fetch reviews",
			"message": "please try again later",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reviews":       reviews,
		"ratingSummary": summary,
	})
}
