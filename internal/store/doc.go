// Package store holds the in-memory state of the music library: the
// ordered album sequence and the cover image byte-cache.
//
// # Album sequence
//
// The sequence is display order. Albums have no durable id; they are
// identified by index, so Insert and Remove shift every later index.
//
//	st := store.New(model.SeedAlbums())
//	st.Insert(album, 2)       // insert at index 2
//	st.Insert(album, 99)      // out of bounds: appends instead
//	err := st.Remove(99)      // out of bounds: ErrIndexOutOfRange
//
// # Image cache
//
// The cache maps cover references to raw image bytes. It is a plain
// get/put surface: resolution logic (disk cache, remote fetch) lives
// in the library package.
//
//	if data, ok := st.CachedImage(ref); ok {
//	    // cache hit
//	}
//	st.PutImage(ref, data)
package store
