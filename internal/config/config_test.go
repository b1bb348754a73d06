package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Online {
		t.Error("Online defaults to true, want false")
	}
	if cfg.RemoteURL == "" {
		t.Error("RemoteURL default is empty")
	}
	if cfg.CacheDir == "" {
		t.Error("CacheDir default is empty")
	}
	if cfg.PrefetchLimit <= 0 {
		t.Errorf("PrefetchLimit = %d, want > 0", cfg.PrefetchLimit)
	}
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
online = true
remote_url = "https://covers.example.com/"
cache_dir = "/tmp/coverstrip-test"
max_cover_edge = 300
prefetch_limit = 2
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if !cfg.Online {
		t.Error("Online = false, want true")
	}
	// Trailing slash is normalized away.
	if cfg.RemoteURL != "https://covers.example.com" {
		t.Errorf("RemoteURL = %q, want %q", cfg.RemoteURL, "https://covers.example.com")
	}
	if cfg.CacheDir != "/tmp/coverstrip-test" {
		t.Errorf("CacheDir = %q, want %q", cfg.CacheDir, "/tmp/coverstrip-test")
	}
	if cfg.MaxCoverEdge != 300 {
		t.Errorf("MaxCoverEdge = %d, want 300", cfg.MaxCoverEdge)
	}
	if cfg.PrefetchLimit != 2 {
		t.Errorf("PrefetchLimit = %d, want 2", cfg.PrefetchLimit)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("online = true\n"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if !cfg.Online {
		t.Error("Online = false, want true")
	}
	if cfg.RemoteURL != Default().RemoteURL {
		t.Errorf("RemoteURL = %q, want default %q", cfg.RemoteURL, Default().RemoteURL)
	}
	if cfg.PrefetchLimit != Default().PrefetchLimit {
		t.Errorf("PrefetchLimit = %d, want default %d", cfg.PrefetchLimit, Default().PrefetchLimit)
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Online != Default().Online || cfg.RemoteURL != Default().RemoteURL {
		t.Errorf("Load on missing file = %+v, want defaults", cfg)
	}
}

func TestLoad_BadValuesClamped(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("prefetch_limit = -3\nmax_cover_edge = -1\n"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.PrefetchLimit != Default().PrefetchLimit {
		t.Errorf("PrefetchLimit = %d, want default %d", cfg.PrefetchLimit, Default().PrefetchLimit)
	}
	if cfg.MaxCoverEdge != 0 {
		t.Errorf("MaxCoverEdge = %d, want 0", cfg.MaxCoverEdge)
	}
}
