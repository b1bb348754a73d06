package blobcache

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"time"
)

const (
	blobExt       = ".img"
	entryMaxAge   = 90 * 24 * time.Hour
	pruneInterval = 24 * time.Hour
)

// Cache is a disk-backed key-value store for cover image bytes.
//
// Keys are opaque cover references; each entry is one file named after
// the sha256 of its key. Load treats any read error as absent, so a
// corrupt or missing cache never interrupts browsing.
type Cache struct {
	dir        string
	lastPruned time.Time
}

// New creates a blob cache rooted at dir, creating the directory if
// needed.
func New(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	c := &Cache{dir: dir}

	// Prune stale entries in background
	go c.pruneOldEntries()

	return c, nil
}

// Load retrieves the bytes stored under key. Returns (nil, false) if
// the key is absent or the entry cannot be read.
func (c *Cache) Load(key string) ([]byte, bool) {
	if c == nil {
		return nil, false
	}

	path := c.entryPath(key)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}

	// Touch the file so frequently used entries stay fresh
	now := time.Now()
	_ = os.Chtimes(path, now, now)

	return data, true
}

// Save stores bytes under key, overwriting any prior entry.
func (c *Cache) Save(key string, data []byte) error {
	if c == nil {
		return nil
	}
	return os.WriteFile(c.entryPath(key), data, 0o600)
}

func (c *Cache) entryPath(key string) string {
	hash := sha256.Sum256([]byte(key))
	return filepath.Join(c.dir, hex.EncodeToString(hash[:])+blobExt)
}

// pruneOldEntries removes entries older than entryMaxAge.
func (c *Cache) pruneOldEntries() {
	if c == nil {
		return
	}

	if time.Since(c.lastPruned) < pruneInterval {
		return
	}
	c.lastPruned = time.Now()

	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return
	}

	cutoff := time.Now().Add(-entryMaxAge)

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != blobExt {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		if info.ModTime().Before(cutoff) {
			_ = os.Remove(filepath.Join(c.dir, entry.Name()))
		}
	}
}
