package media

import "context"

// MediaService resolves stored asset references to delivery URLs and
// manages uploads for gallery administration.
type MediaService interface {
	// ImageURL returns the delivery URL for a stored image reference.
	ImageURL(publicID string) (string, error)
	// VideoURL returns the delivery URL for a stored video reference.
	VideoURL(publicID string) (string, error)
	// Upload stores a local file under the destination folder and
	// returns the permanent public ID.
	Upload(ctx context.Context, localFilePath, destFolder string) (string, error)
	// Delete removes an asset by its public ID.
	Delete(ctx context.Context, publicID string) error
}
