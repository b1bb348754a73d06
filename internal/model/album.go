package model

// Album is a value record describing one music release.
//
// Album carries only display metadata plus an opaque cover reference:
//   - Artist, Title, Genre and Year are shown in the detail pane
//   - CoverRef identifies the cover image, both as the cache key and
//     as the argument passed to the remote client when fetching
//
// Albums are immutable once constructed. Identity is positional: an
// album is identified by its index in the owning sequence, so an
// insert or remove shifts every later index. There is no durable id.
type Album struct {
	// Title is the album title.
	Title string

	// Artist is the album artist name.
	Artist string

	// Genre is a free-form genre label.
	Genre string

	// Year is the release year as displayed, e.g. "1999".
	Year string

	// CoverRef is the opaque cover image reference.
	// Empty string means no cover is available.
	CoverRef string
}

// HasCover returns true if the album has a cover image reference.
func (a Album) HasCover() bool {
	return a.CoverRef != ""
}

// SeedAlbums returns the fixed starter library the browser opens with.
// The order is display order.
func SeedAlbums() []Album {
	return []Album{
		{Title: "Best of Bowie", Artist: "David Bowie", Genre: "Pop", Year: "1992", CoverRef: "covers/best-of-bowie.jpg"},
		{Title: "It's My Life", Artist: "No Doubt", Genre: "Pop", Year: "2003", CoverRef: "covers/its-my-life.jpg"},
		{Title: "Nothing Like The Sun", Artist: "Sting", Genre: "Pop", Year: "1999", CoverRef: "covers/nothing-like-the-sun.jpg"},
		{Title: "Staring at the Sun", Artist: "U2", Genre: "Pop", Year: "2000", CoverRef: "covers/staring-at-the-sun.jpg"},
		{Title: "American Pie", Artist: "Madonna", Genre: "Pop", Year: "2000", CoverRef: "covers/american-pie.jpg"},
	}
}
