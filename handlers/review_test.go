package handlers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"glowhaus/models"
	"glowhaus/services/review"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeReviewService struct {
	submitID  string
	submitErr error
	approved  []models.Review
	summary   *models.RatingSummary
}

func (f *fakeReviewService) Submit(ctx context.Context, sub models.ReviewSubmission) (string, error) {
	if f.submitErr != nil {
		return "", f.submitErr
	}
	return f.submitID, nil
}

func (f *fakeReviewService) Approved(ctx context.Context) ([]models.Review, *models.RatingSummary, error) {
	return f.approved, f.summary, nil
}

func newReviewRouter(svc review.ReviewService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewReviewHandler(svc, zap.NewNop())
	r := gin.New()
	r.POST("/api/reviews", h.SubmitReviewHandler)
	r.GET("/api/reviews", h.ListReviewsHandler)
	return r
}

func TestSubmitReviewHandlerCreated(t *testing.T) {
	router := newReviewRouter(&fakeReviewService{submitID: "rev-1"})

	body := []byte(`{"name":"Amina","rating":5,"review":"Best balayage in town."}`)
	req := httptest.NewRequest(http.MethodPost, "/api/reviews", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"rev-1"`)
	assert.Contains(t, w.Body.String(), `"success":true`)
}

func TestSubmitReviewHandlerMissingFields(t *testing.T) {
	router := newReviewRouter(&fakeReviewService{submitID: "rev-1"})

	body := []byte(`{"rating":5}`)
	req := httptest.NewRequest(http.MethodPost, "/api/reviews", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "name, rating and review are required")
}

func TestSubmitReviewHandlerValidationError(t *testing.T) {
	router := newReviewRouter(&fakeReviewService{
		submitErr: &review.ValidationError{Reason: "rating must be between 1 and 5"},
	})

	body := []byte(`{"name":"Amina","rating":9,"review":"ok"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/reviews", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "rating must be between 1 and 5")
}

func TestSubmitReviewHandlerStorageFailureIsGeneric(t *testing.T) {
	router := newReviewRouter(&fakeReviewService{submitErr: review.ErrStorage})

	body := []byte(`{"name":"Amina","rating":5,"review":"Best balayage in town."}`)
	req := httptest.NewRequest(http.MethodPost, "/api/reviews", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "something went wrong, please try again")
	assert.NotContains(t, w.Body.String(), "mongo")
}

func TestListReviewsHandler(t *testing.T) {
	router := newReviewRouter(&fakeReviewService{
		approved: []models.Review{{ID: "rev-1", ReviewerName: "Amina", Rating: 5, Status: models.ReviewApproved}},
		summary:  &models.RatingSummary{Average: 5, ReviewCount: 1},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/reviews", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"reviews"`)
	assert.Contains(t, w.Body.String(), `"ratingSummary"`)
	assert.Contains(t, w.Body.String(), `"Amina"`)
}
