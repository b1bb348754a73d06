// Package blobcache persists cover image bytes between runs as an
// opaque key-value store on disk.
//
// Album metadata is never persisted; only resolved cover images are,
// keyed by their cover reference. The cache is strictly best-effort:
// a failed read is a miss, and callers are expected to swallow failed
// writes.
//
//	cache, err := blobcache.New(dir)
//	if data, ok := cache.Load(ref); ok {
//	    // disk hit, no network needed
//	}
//	_ = cache.Save(ref, data)
package blobcache
