package library

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/coverstrip/coverstrip/internal/blobcache"
	"github.com/coverstrip/coverstrip/internal/imaging"
	"github.com/coverstrip/coverstrip/internal/model"
	"github.com/coverstrip/coverstrip/internal/remote"
	"github.com/coverstrip/coverstrip/internal/store"
	"golang.org/x/sync/errgroup"
)

// EventLevel indicates the severity/type of a library event.
type EventLevel int

const (
	LevelInfo EventLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
)

// Event represents a library progress or failure report. Failures in
// best-effort paths (mirroring, cover fetch, disk cache writes) are
// reported here and nowhere else.
type Event struct {
	Message string
	Level   EventLevel
}

const mirrorTimeout = 10 * time.Second

// Options configures a Library.
type Options struct {
	// Online enables best-effort mirroring of album mutations to the
	// remote client. Default off.
	Online bool

	// MaxCoverEdge is the longest edge covers are scaled to before
	// caching. 0 keeps covers at their fetched size.
	MaxCoverEdge int

	// PrefetchLimit bounds concurrent fetches in PrefetchImages.
	// Values below 1 are treated as 1.
	PrefetchLimit int

	// OnEvent receives progress and failure reports. May be nil.
	OnEvent func(Event)
}

// Library is the facade the rest of the application talks to. It
// combines the in-memory store, the remote client, and the disk blob
// cache behind a small album-and-cover API.
type Library struct {
	store  *store.Store
	remote remote.Client
	disk   *blobcache.Cache // nil disables disk persistence

	online        bool
	maxCoverEdge  int
	prefetchLimit int
	onEvent       func(Event)
}

// New creates a Library over the given collaborators. The disk cache
// may be nil, in which case covers live only in memory.
func New(st *store.Store, rc remote.Client, disk *blobcache.Cache, opts Options) *Library {
	limit := opts.PrefetchLimit
	if limit < 1 {
		limit = 1
	}
	return &Library{
		store:         st,
		remote:        rc,
		disk:          disk,
		online:        opts.Online,
		maxCoverEdge:  opts.MaxCoverEdge,
		prefetchLimit: limit,
		onEvent:       opts.OnEvent,
	}
}

// Albums returns the current album sequence in display order.
func (l *Library) Albums() []model.Album {
	return l.store.Albums()
}

// Count returns the number of albums in the library.
func (l *Library) Count() int {
	return l.store.Count()
}

// AddAlbum inserts an album at the given index; an out-of-bounds index
// appends instead. When the library is online the mutation is mirrored
// to the remote as a fire-and-forget notification.
func (l *Library) AddAlbum(album model.Album, index int) {
	l.store.Insert(album, index)
	l.mirror("albums/add", mutationBody{Album: &album, Index: index})
}

// DeleteAlbum removes the album at the given index. Returns
// store.ErrIndexOutOfRange for an invalid index; nothing is mirrored
// in that case.
func (l *Library) DeleteAlbum(index int) error {
	if err := l.store.Remove(index); err != nil {
		return err
	}
	l.mirror("albums/delete", mutationBody{Index: index})
	return nil
}

// ResolveImage returns the cover bytes for a reference, or
// (nil, false) if no image could be produced.
//
// Resolution order: in-memory cache, disk cache (promoting the entry
// to memory), remote fetch. A fetched cover is normalized, written to
// both caches, and only then returned, so a subsequent call for the
// same reference is a cache hit. Fetch and disk failures are reported
// via the event callback and converted to absence; they never reach
// the caller, and nothing is cached on failure so a later call
// retries.
func (l *Library) ResolveImage(ctx context.Context, ref string) ([]byte, bool) {
	if ref == "" {
		return nil, false
	}

	if data, ok := l.store.CachedImage(ref); ok {
		return data, true
	}

	if data, ok := l.disk.Load(ref); ok {
		l.store.PutImage(ref, data)
		return data, true
	}

	data, err := l.remote.FetchImage(ctx, ref)
	if err != nil {
		l.event(Event{Message: fmt.Sprintf("Fetching cover %s failed: %v", ref, err), Level: LevelWarning})
		return nil, false
	}

	if normalized, err := imaging.Normalize(data, l.maxCoverEdge); err == nil {
		data = normalized
	} else {
		// Cache the raw bytes; the renderer may still cope
		l.event(Event{Message: fmt.Sprintf("Normalizing cover %s failed: %v", ref, err), Level: LevelVerbose})
	}

	l.store.PutImage(ref, data)
	if err := l.disk.Save(ref, data); err != nil {
		l.event(Event{Message: fmt.Sprintf("Persisting cover %s failed: %v", ref, err), Level: LevelWarning})
	}

	l.event(Event{Message: fmt.Sprintf("Fetched cover %s", ref), Level: LevelVerbose})
	return data, true
}

// CoverCached reports whether a cover is already present in the
// in-memory cache. It never fetches.
func (l *Library) CoverCached(ref string) bool {
	_, ok := l.store.CachedImage(ref)
	return ok
}

// PrefetchImages warms the cover cache for every album currently in
// the library. Individual failures are reported via the event callback
// and do not stop the prefetch; the returned error is non-nil only
// when the context is cancelled.
func (l *Library) PrefetchImages(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(l.prefetchLimit)

	for _, album := range l.Albums() {
		if !album.HasCover() {
			continue
		}
		ref := album.CoverRef
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			l.ResolveImage(ctx, ref)
			return nil
		})
	}

	return g.Wait()
}

type mutationBody struct {
	Album *model.Album `json:"album,omitempty"`
	Index int          `json:"index"`
}

// mirror sends a best-effort mutation notification to the remote when
// the library is online. It never blocks the caller and never fails:
// errors are downgraded to warning events.
func (l *Library) mirror(path string, body mutationBody) {
	if !l.online {
		return
	}

	payload, err := json.Marshal(body)
	if err != nil {
		l.event(Event{Message: fmt.Sprintf("Encoding mirror payload failed: %v", err), Level: LevelWarning})
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), mirrorTimeout)
		defer cancel()

		if err := l.remote.PostMutation(ctx, path, string(payload)); err != nil {
			l.event(Event{Message: fmt.Sprintf("Mirroring %s failed: %v", path, err), Level: LevelWarning})
			return
		}
		l.event(Event{Message: fmt.Sprintf("Mirrored %s", path), Level: LevelVerbose})
	}()
}

func (l *Library) event(e Event) {
	if l.onEvent != nil {
		l.onEvent(e)
	}
}
