package selection

import (
	"github.com/coverstrip/coverstrip/internal/model"
	"github.com/coverstrip/coverstrip/internal/store"
)

// None is the selected index reported while the album list is empty.
const None = -1

// DetailLabels is the fixed label order of the detail pane.
var DetailLabels = []string{"Artist", "Album", "Genre", "Year"}

// Provider supplies a strip widget with its items and receives taps
// back. Whatever owns the selection state implements it; the widget
// needs nothing else.
type Provider interface {
	// Count returns the number of strip items.
	Count() int
	// ItemAt returns the album backing item i, or the zero Album for
	// an out-of-bounds index.
	ItemAt(i int) model.Album
	// OnTap reports a tap on item i. Taps on invalid indices are
	// ignored.
	OnTap(i int)
}

// Coordinator owns the single "currently chosen album index" and
// reconciles it across the strip and the detail pane.
//
// The index is always within [0, count-1] while albums are present and
// None while the list is empty. SetAlbums re-clamps after every list
// change and must run before the selection is rendered or queried.
type Coordinator struct {
	albums   []model.Album
	selected int

	// onSelect is the detail-refresh hook, fired after every
	// successful Select. May be nil.
	onSelect func(index int)
}

// Verify Coordinator satisfies the strip contract at compile time.
var _ Provider = (*Coordinator)(nil)

// New creates a Coordinator with no albums loaded. onSelect may be
// nil.
func New(onSelect func(index int)) *Coordinator {
	return &Coordinator{
		selected: None,
		onSelect: onSelect,
	}
}

// SetAlbums replaces the album sequence the selection refers to and
// re-clamps the selected index: an index past the new end becomes
// count-1, an empty sequence clears the selection to None, and the
// first non-empty load selects index 0. Idempotent.
func (c *Coordinator) SetAlbums(seq []model.Album) {
	c.albums = make([]model.Album, len(seq))
	copy(c.albums, seq)

	switch {
	case len(c.albums) == 0:
		c.selected = None
	case c.selected < 0:
		c.selected = 0
	case c.selected >= len(c.albums):
		c.selected = len(c.albums) - 1
	}
}

// Select sets the chosen index and fires the detail-refresh hook.
// Returns store.ErrIndexOutOfRange if index is not in [0, count-1];
// the current selection is left unchanged in that case.
func (c *Coordinator) Select(index int) error {
	if index < 0 || index >= len(c.albums) {
		return store.ErrIndexOutOfRange
	}
	c.selected = index
	if c.onSelect != nil {
		c.onSelect(index)
	}
	return nil
}

// InitialIndex returns the current selection: 0 after the first
// non-empty SetAlbums unless a selection was made, None while the list
// is empty. Never negative with albums present, never beyond bounds.
func (c *Coordinator) InitialIndex() int {
	return c.selected
}

// DetailFields returns the detail pane rows for an album index as
// parallel label/value sequences in the fixed order
// [Artist, Album, Genre, Year]. An invalid index yields two empty
// sequences, not an error.
func (c *Coordinator) DetailFields(index int) (labels, values []string) {
	if index < 0 || index >= len(c.albums) {
		return []string{}, []string{}
	}
	a := c.albums[index]
	labels = append(labels, DetailLabels...)
	values = []string{a.Artist, a.Title, a.Genre, a.Year}
	return labels, values
}

// Count implements Provider.
func (c *Coordinator) Count() int {
	return len(c.albums)
}

// ItemAt implements Provider.
func (c *Coordinator) ItemAt(i int) model.Album {
	if i < 0 || i >= len(c.albums) {
		return model.Album{}
	}
	return c.albums[i]
}

// OnTap implements Provider.
func (c *Coordinator) OnTap(i int) {
	_ = c.Select(i)
}
