package store

import (
	"errors"
	"sync"

	"github.com/coverstrip/coverstrip/internal/model"
)

// ErrIndexOutOfRange is returned when an album index falls outside the
// current sequence bounds. It indicates a programming mistake by the
// caller; the store's state is left unchanged.
var ErrIndexOutOfRange = errors.New("album index out of range")

// Store holds the in-memory album sequence and the cover byte-cache.
//
// The album sequence is ordered: insertion order is display order, and
// it is mutated only through Insert and Remove. The image cache is an
// unordered mapping from cover reference to raw image bytes.
//
// All methods are safe for concurrent use. Note that a caller doing
// CachedImage-then-fetch-then-PutImage is not atomic: two concurrent
// resolutions of the same uncached reference may both fetch, and the
// last PutImage wins. That race is benign and accepted.
type Store struct {
	mu     sync.RWMutex
	albums []model.Album
	images map[string][]byte
}

// New creates a Store holding the given albums in order. The seed
// slice is copied; the caller keeps ownership of its argument.
func New(seed []model.Album) *Store {
	albums := make([]model.Album, len(seed))
	copy(albums, seed)
	return &Store{
		albums: albums,
		images: make(map[string][]byte),
	}
}

// Albums returns a snapshot of the current album sequence in display
// order. Mutating the returned slice does not affect the store.
func (s *Store) Albums() []model.Album {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Album, len(s.albums))
	copy(out, s.albums)
	return out
}

// Count returns the number of albums currently in the sequence.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.albums)
}

// Insert places album at the given index, shifting later albums right.
// An index outside [0, count] is not an error: the album is appended
// at the end instead.
func (s *Store) Insert(album model.Album, at int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if at < 0 || at > len(s.albums) {
		at = len(s.albums)
	}
	s.albums = append(s.albums, model.Album{})
	copy(s.albums[at+1:], s.albums[at:])
	s.albums[at] = album
}

// Remove deletes the album at the given index, shifting later albums
// left. Returns ErrIndexOutOfRange if the index is not in
// [0, count-1].
func (s *Store) Remove(at int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if at < 0 || at >= len(s.albums) {
		return ErrIndexOutOfRange
	}
	s.albums = append(s.albums[:at], s.albums[at+1:]...)
	return nil
}

// CachedImage returns the cached bytes for a cover reference, or
// (nil, false) if the reference has not been cached. It never fetches.
func (s *Store) CachedImage(ref string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.images[ref]
	return data, ok
}

// PutImage stores image bytes for a cover reference, overwriting any
// prior entry.
func (s *Store) PutImage(ref string, data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.images[ref] = data
}
