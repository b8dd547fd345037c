// Package gallery implements the lookbook view logic. The lightbox
// navigator here is the single owner of the cursor and the open/closed
// modal flag; rendering clients embed it and feed it key and click
// events.
package gallery

import "glowhaus/models"

// Keys the lightbox reacts to while open.
const (
	KeyEscape     = "Escape"
	KeyArrowRight = "ArrowRight"
	KeyArrowLeft  = "ArrowLeft"
)

// Lightbox is a cursor over an ordered, finite media sequence with a
// modal open/closed flag. Next and Prev wrap around; closing retains
// the cursor so reopening resumes where the viewer left off. Key events
// are only honored while the modal is open, mirroring a listener that
// is attached on open and detached on close.
type Lightbox struct {
	items  []models.GalleryItem
	cursor int
	open   bool
}

// NewLightbox creates a navigator over the given items. The sequence is
// fixed for the lifetime of the navigator; all data is pre-fetched.
func NewLightbox(items []models.GalleryItem) *Lightbox {
	return &Lightbox{items: items}
}

// Open shows the modal at the given index. The caller guarantees
// 0 <= index < Len; an out-of-range index is a programming error and
// panics via the slice access on Current.
func (l *Lightbox) Open(index int) {
	l.cursor = index
	l.open = true
}

// Reopen shows the modal at the retained cursor position.
func (l *Lightbox) Reopen() {
	l.open = true
}

// Close hides the modal. The cursor is deliberately kept so that
// reopening resumes at the same item.
func (l *Lightbox) Close() {
	l.open = false
}

// Next advances the cursor with wraparound. No-op with fewer than two items.
func (l *Lightbox) Next() {
	if len(l.items) < 2 {
		return
	}
	l.cursor = (l.cursor + 1) % len(l.items)
}

// Prev retreats the cursor with wraparound. No-op with fewer than two items.
func (l *Lightbox) Prev() {
	if len(l.items) < 2 {
		return
	}
	l.cursor = (l.cursor - 1 + len(l.items)) % len(l.items)
}

// HandleKey dispatches a keyboard event. Events arriving while the
// modal is closed are dropped. Returns true when the event was handled.
func (l *Lightbox) HandleKey(key string) bool {
	if !l.open {
		return false
	}
	switch key {
	case KeyEscape:
		l.Close()
	case KeyArrowRight:
		l.Next()
	case KeyArrowLeft:
		l.Prev()
	default:
		return false
	}
	return true
}

// ClickOverlay closes the modal. Clicks on the media itself must be
// stopped by the caller before they reach the overlay.
func (l *Lightbox) ClickOverlay() {
	l.Close()
}

// IsOpen reports whether the modal is visible.
func (l *Lightbox) IsOpen() bool {
	return l.open
}

// Cursor returns the current index.
func (l *Lightbox) Cursor() int {
	return l.cursor
}

// Len returns the number of items in the sequence.
func (l *Lightbox) Len() int {
	return len(l.items)
}

// Current returns the item under the cursor.
func (l *Lightbox) Current() models.GalleryItem {
	return l.items[l.cursor]
}

// HasNav reports whether navigation controls should be shown at all.
func (l *Lightbox) HasNav() bool {
	return len(l.items) > 1
}
