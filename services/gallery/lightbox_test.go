package gallery

import (
	"testing"

	"glowhaus/models"

	"github.com/stretchr/testify/assert"
)

func threeItems() []models.GalleryItem {
	return []models.GalleryItem{
		{ID: "a", MediaType: models.MediaImage, ImageRef: "gallery/a"},
		{ID: "b", MediaType: models.MediaVideo, VideoURL: "https://cdn.example.com/b.mp4"},
		{ID: "c", MediaType: models.MediaImage, ImageRef: "gallery/c"},
	}
}

func TestLightboxWraparound(t *testing.T) {
	lb := NewLightbox(threeItems())
	lb.Open(0)

	lb.Prev()
	assert.Equal(t, 2, lb.Cursor(), "prev from first item wraps to last")

	lb.Next()
	assert.Equal(t, 0, lb.Cursor(), "next from last item wraps to first")

	lb.Next()
	lb.Next()
	assert.Equal(t, 2, lb.Cursor())
	assert.Equal(t, "c", lb.Current().ID)
}

func TestLightboxCursorRetainedAcrossClose(t *testing.T) {
	lb := NewLightbox(threeItems())

	lb.Open(1)
	assert.True(t, lb.IsOpen())

	lb.Close()
	assert.False(t, lb.IsOpen())
	assert.Equal(t, 1, lb.Cursor(), "cursor survives close")

	lb.Reopen()
	assert.True(t, lb.IsOpen())
	assert.Equal(t, 1, lb.Cursor(), "reopening resumes at the retained item")
}

func TestLightboxKeyHandling(t *testing.T) {
	lb := NewLightbox(threeItems())

	// Keys are dropped while closed.
	assert.False(t, lb.HandleKey(KeyArrowRight))
	assert.Equal(t, 0, lb.Cursor())

	lb.Open(0)
	assert.True(t, lb.HandleKey(KeyArrowRight))
	assert.Equal(t, 1, lb.Cursor())

	assert.True(t, lb.HandleKey(KeyArrowLeft))
	assert.Equal(t, 0, lb.Cursor())

	// Unbound keys are ignored.
	assert.False(t, lb.HandleKey("Enter"))

	assert.True(t, lb.HandleKey(KeyEscape))
	assert.False(t, lb.IsOpen())

	// After escape, the listener is gone again.
	assert.False(t, lb.HandleKey(KeyArrowRight))
}

func TestLightboxSingleItemNav(t *testing.T) {
	lb := NewLightbox(threeItems()[:1])
	lb.Open(0)

	assert.False(t, lb.HasNav())
	lb.Next()
	lb.Prev()
	assert.Equal(t, 0, lb.Cursor(), "navigation is a no-op for a single item")
}

func TestLightboxEmptySequence(t *testing.T) {
	lb := NewLightbox(nil)

	assert.Equal(t, 0, lb.Len())
	assert.False(t, lb.HasNav())
	lb.Next()
	lb.Prev()
	assert.Equal(t, 0, lb.Cursor())
}

func TestLightboxOverlayClickCloses(t *testing.T) {
	lb := NewLightbox(threeItems())
	lb.Open(2)

	lb.ClickOverlay()
	assert.False(t, lb.IsOpen())
	assert.Equal(t, 2, lb.Cursor())
}
