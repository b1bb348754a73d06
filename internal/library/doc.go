// Package library provides the facade the UI talks to: album CRUD
// plus cover image resolution over the store, the remote client, and
// the disk blob cache.
//
// # Basic usage
//
//	st := store.New(model.SeedAlbums())
//	disk, _ := blobcache.New(cacheDir)
//	lib := library.New(st, remote.NewHTTPClient(cfg.RemoteURL), disk, library.Options{
//	    Online:        cfg.Online,
//	    MaxCoverEdge:  cfg.MaxCoverEdge,
//	    PrefetchLimit: cfg.PrefetchLimit,
//	    OnEvent: func(e library.Event) {
//	        // progress / warnings
//	    },
//	})
//
//	data, ok := lib.ResolveImage(ctx, album.CoverRef)
//
// # Cover resolution
//
// ResolveImage checks the in-memory cache, then the disk cache, then
// fetches from the remote. A successful fetch is written to both
// caches before the bytes are returned, so the next call for the same
// reference hits the cache. A failed fetch yields absence, never an
// error, and is not remembered: there is no negative caching, a later
// call simply retries.
//
// # Mirroring
//
// When configured online, AddAlbum and DeleteAlbum notify the remote
// of the mutation on a background goroutine. This is at-most-once,
// best-effort replication: not retried, not surfaced, only reported
// through the event callback. It is explicitly not a sync protocol.
package library
