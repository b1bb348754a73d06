// Package model defines the core data structures used throughout
// coverstrip.
//
// # Album
//
// Album represents one music release with its display metadata and an
// opaque cover reference:
//
//	album := model.Album{
//	    Title:    "Nothing Like The Sun",
//	    Artist:   "Sting",
//	    Genre:    "Pop",
//	    Year:     "1999",
//	    CoverRef: "covers/nothing-like-the-sun.jpg",
//	}
//
// CoverRef is treated as an opaque string by everything except the
// remote client: the store keys its byte-cache on it, the blob cache
// hashes it into a file name, and the remote client resolves it into
// a fetchable URL.
//
// # Seed library
//
// SeedAlbums returns the five albums the browser opens with. There is
// no persistence for album metadata; the seed is rebuilt on every
// start and only cover images survive between runs.
package model
