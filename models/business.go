package models

import "time"

// Weekday names as stored in the business record's working hours.
const (
	Monday    = "monday"
	Tuesday   = "tuesday"
	Wednesday = "wednesday"
	Thursday  = "thursday"
	Friday    = "friday"
	Saturday  = "saturday"
	Sunday    = "sunday"
)

// DaySchedule is one weekday's open/close configuration. Times are
// zero-padded 24-hour "HH:MM" strings interpreted as local wall-clock
// time; no timezone conversion is applied anywhere.
type DaySchedule struct {
	Day    string `bson:"day" json:"day"`                       // monday..sunday
	Label  string `bson:"label" json:"label"`                   // Display label, e.g. "Monday"
	Closed bool   `bson:"closed" json:"closed"`                 // Closed all day
	Open   string `bson:"open,omitempty" json:"open,omitempty"` // "HH:MM", absent when unknown
	Close  string `bson:"close,omitempty" json:"close,omitempty"`
}

// SocialLinks stores either bare handles or full profile URLs.
type SocialLinks struct {
	Instagram string `bson:"instagram,omitempty" json:"instagram,omitempty"`
	TikTok    string `bson:"tiktok,omitempty" json:"tiktok,omitempty"`
	YouTube   string `bson:"youtube,omitempty" json:"youtube,omitempty"`
	Facebook  string `bson:"facebook,omitempty" json:"facebook,omitempty"`
}

// Business is the salon's singleton settings record.
type Business struct {
	ID            string        `bson:"id" json:"id,omitempty"`
	Name          string        `bson:"name" json:"name"`
	Tagline       string        `bson:"tagline,omitempty" json:"tagline,omitempty"`
	AboutText     string        `bson:"aboutText,omitempty" json:"aboutText,omitempty"`
	WhatsApp      string        `bson:"whatsapp,omitempty" json:"whatsapp,omitempty"` // digits only, no leading +
	Location      string        `bson:"location,omitempty" json:"location,omitempty"`
	GoogleMapsURL string        `bson:"googleMapsUrl,omitempty" json:"googleMapsUrl,omitempty"`
	HeroImageRef  string        `bson:"heroImageRef,omitempty" json:"heroImageRef,omitempty"` // Cloudinary public ID
	HeroVideoURL  string        `bson:"heroVideoUrl,omitempty" json:"heroVideoUrl,omitempty"`
	WorkingHours  []DaySchedule `bson:"workingHours,omitempty" json:"workingHours,omitempty"`
	SocialLinks   SocialLinks   `bson:"socialLinks,omitempty" json:"socialLinks,omitzero"`
	CreatedAt     time.Time     `bson:"createdAt" json:"createdAt,omitzero"`
	UpdatedAt     time.Time     `bson:"updatedAt" json:"updatedAt,omitzero"`
}
