package media

import (
	"context"
	"fmt"

	"glowhaus/config"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryMediaService implements MediaService backed by Cloudinary.
type CloudinaryMediaService struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryMediaService initializes the Cloudinary client from the
// application configuration.
func NewCloudinaryMediaService() (*CloudinaryMediaService, error) {
	cfg := config.AppConfig
	if cfg.CloudinaryCloudName == "" || cfg.CloudinaryAPIKey == "" || cfg.CloudinaryAPISecret == "" {
		return nil, fmt.Errorf("media: cloudinary credentials are not configured")
	}
	cld, err := cloudinary.NewFromParams(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
	if err != nil {
		return nil, fmt.Errorf("media: failed to initialize cloudinary: %w", err)
	}
	return &CloudinaryMediaService{cld: cld}, nil
}

// ImageURL returns the delivery URL for a stored image reference.
func (m *CloudinaryMediaService) ImageURL(publicID string) (string, error) {
	img, err := m.cld.Image(publicID)
	if err != nil {
		return "", fmt.Errorf("media: failed to build image asset for %q: %w", publicID, err)
	}
	url, err := img.String()
	if err != nil {
		return "", fmt.Errorf("media: failed to render image URL for %q: %w", publicID, err)
	}
	return url, nil
}

// VideoURL returns the delivery URL for a stored video reference.
func (m *CloudinaryMediaService) VideoURL(publicID string) (string, error) {
	vid, err := m.cld.Video(publicID)
	if err != nil {
		return "", fmt.Errorf("media: failed to build video asset for %q: %w", publicID, err)
	}
	url, err := vid.String()
	if err != nil {
		return "", fmt.Errorf("media: failed to render video URL for %q: %w", publicID, err)
	}
	return url, nil
}

// Upload stores a local file and returns its permanent public ID.
func (m *CloudinaryMediaService) Upload(ctx context.Context, localFilePath, destFolder string) (string, error) {
	result, err := m.cld.Upload.Upload(ctx, localFilePath, uploader.UploadParams{
		Folder: destFolder,
	})
	if err != nil {
		return "", fmt.Errorf("media: failed to upload file: %w", err)
	}
	if result.PublicID == "" {
		return "", fmt.Errorf("media: no public ID returned")
	}
	return result.PublicID, nil
}

// Delete removes an asset by its public ID.
func (m *CloudinaryMediaService) Delete(ctx context.Context, publicID string) error {
	_, err := m.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("media: failed to delete asset %q: %w", publicID, err)
	}
	return nil
}
