package models

import "time"

// Media kinds for gallery items.
const (
	MediaImage = "image"
	MediaVideo = "video"
)

// GalleryItem is one lookbook entry, either an image or a looping video.
type GalleryItem struct {
	ID          string    `bson:"id" json:"id,omitempty"`
	MediaType   string    `bson:"mediaType" json:"mediaType"` // image or video
	ImageRef    string    `bson:"imageRef,omitempty" json:"imageRef,omitempty"` // Cloudinary public ID
	Alt         string    `bson:"alt,omitempty" json:"alt,omitempty"`
	VideoRef    string    `bson:"videoRef,omitempty" json:"videoRef,omitempty"` // Cloudinary public ID
	VideoURL    string    `bson:"videoUrl,omitempty" json:"videoUrl,omitempty"` // external URL, takes precedence over videoRef
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	Category    string    `bson:"category,omitempty" json:"category,omitempty"`
	Order       int       `bson:"order" json:"order"` // lower numbers appear first
	IsActive    bool      `bson:"isActive" json:"isActive"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt,omitzero"`
}
