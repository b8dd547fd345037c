package models

import "time"

// Service is one entry of the services menu.
type Service struct {
	ID               string    `bson:"id" json:"id,omitempty"`
	Title            string    `bson:"title" json:"title"`
	Slug             string    `bson:"slug,omitempty" json:"slug,omitempty"`
	Category         string    `bson:"category,omitempty" json:"category,omitempty"` // Hair, Nails, Spa, Treatments
	ShortDescription string    `bson:"shortDescription,omitempty" json:"shortDescription,omitempty"`
	Price            string    `bson:"price,omitempty" json:"price,omitempty"`       // display string, e.g. "KES 3,500"
	Duration         string    `bson:"duration,omitempty" json:"duration,omitempty"` // display string, e.g. "2 Hours"
	ImageRef         string    `bson:"imageRef,omitempty" json:"imageRef,omitempty"`
	IsActive         bool      `bson:"isActive" json:"isActive"`
	CreatedAt        time.Time `bson:"createdAt" json:"createdAt,omitzero"`
}

// Testimonial is a curated client quote, optionally with a screenshot.
type Testimonial struct {
	ID            string    `bson:"id" json:"id,omitempty"`
	ClientName    string    `bson:"clientName" json:"clientName"`
	Quote         string    `bson:"quote" json:"quote"`
	ServiceTaken  string    `bson:"serviceTaken,omitempty" json:"serviceTaken,omitempty"`
	ScreenshotRef string    `bson:"screenshotRef,omitempty" json:"screenshotRef,omitempty"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt,omitzero"`
}

// FAQ is a single question/answer pair.
type FAQ struct {
	ID        string    `bson:"id" json:"id,omitempty"`
	Question  string    `bson:"question" json:"question"`
	Answer    string    `bson:"answer" json:"answer"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt,omitzero"`
}

// About holds the "about us" section content.
type About struct {
	ID             string `bson:"id" json:"id,omitempty"`
	Title          string `bson:"title,omitempty" json:"title,omitempty"`
	Heading        string `bson:"heading,omitempty" json:"heading,omitempty"`
	HighlightWord  string `bson:"highlightWord,omitempty" json:"highlightWord,omitempty"`
	MainText       string `bson:"mainText,omitempty" json:"mainText,omitempty"`
	SecondaryText  string `bson:"secondaryText,omitempty" json:"secondaryText,omitempty"`
	FounderName    string `bson:"founderName,omitempty" json:"founderName,omitempty"`
	FounderTitle   string `bson:"founderTitle,omitempty" json:"founderTitle,omitempty"`
	FounderInitial string `bson:"founderInitial,omitempty" json:"founderInitial,omitempty"`
	MediaType      string `bson:"mediaType,omitempty" json:"mediaType,omitempty"` // image or video
	ImageRef       string `bson:"imageRef,omitempty" json:"imageRef,omitempty"`
	VideoURL       string `bson:"videoUrl,omitempty" json:"videoUrl,omitempty"`
}
