package models

import "time"

// Review moderation states. A review is created pending and only ever
// read back into the public view once approved.
const (
	ReviewPending  = "pending"
	ReviewApproved = "approved"
	ReviewRejected = "rejected"
)

// Review submission sources.
const (
	SourceWebsite  = "website"
	SourceInPerson = "inperson"
	SourceWhatsApp = "whatsapp"
)

// Review is a customer review record.
type Review struct {
	ID              string    `bson:"id" json:"id,omitempty"`
	ReviewerName    string    `bson:"reviewerName" json:"reviewerName"`
	Rating          int       `bson:"rating" json:"rating"` // 1 to 5
	ReviewText      string    `bson:"reviewText" json:"reviewText"`
	ServiceReceived string    `bson:"serviceReceived,omitempty" json:"serviceReceived,omitempty"`
	ReviewDate      time.Time `bson:"reviewDate" json:"reviewDate"` // server-assigned on submission
	Status          string    `bson:"status" json:"status"`
	Source          string    `bson:"source" json:"source"`
}

// ReviewSubmission is the payload accepted from the public form.
type ReviewSubmission struct {
	Name    string `json:"name" binding:"required"`
	Rating  int    `json:"rating" binding:"required"`
	Review  string `json:"review" binding:"required"`
	Service string `json:"service,omitempty"`
}

// StarCount is one row of the per-star rating histogram.
type StarCount struct {
	Stars      int     `json:"stars"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// RatingSummary is the aggregate view over a set of reviews.
type RatingSummary struct {
	Average     float64     `json:"average"` // rounded to one decimal place
	ReviewCount int         `json:"reviewCount"`
	Histogram   []StarCount `json:"histogram"` // ordered 5 stars down to 1
}

// ReviewNotifyPayload is the asynq task payload enqueued after a
// successful public submission.
type ReviewNotifyPayload struct {
	ReviewID     string `json:"reviewId"`
	ReviewerName string `json:"reviewerName"`
	Rating       int    `json:"rating"`
	SubmittedAt  string `json:"submittedAt"`
}
