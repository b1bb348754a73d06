// Package config loads coverstrip settings from TOML config files.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const appName = "coverstrip"

// Config holds all settings.
type Config struct {
	// Online enables best-effort mirroring of album mutations to the
	// remote service. Mirroring is fire-and-forget; failures are
	// logged and swallowed. Default off.
	Online bool `koanf:"online"`

	// RemoteURL is the base URL covers are fetched from and mutations
	// are mirrored to.
	RemoteURL string `koanf:"remote_url"`

	// CacheDir overrides the on-disk cover cache location. Empty means
	// the user cache directory.
	CacheDir string `koanf:"cache_dir"`

	// MaxCoverEdge is the longest edge covers are scaled down to
	// before caching. 0 disables scaling.
	MaxCoverEdge int `koanf:"max_cover_edge"`

	// PrefetchLimit bounds how many covers are fetched concurrently
	// when warming the cache.
	PrefetchLimit int `koanf:"prefetch_limit"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		Online:        false,
		RemoteURL:     "https://covers.coverstrip.dev",
		CacheDir:      filepath.Join(xdg.CacheHome, appName, "covers"),
		MaxCoverEdge:  600,
		PrefetchLimit: 4,
	}
}

// Load reads configuration, layering config files over the defaults.
//
// When path is empty the standard locations are tried in order of
// priority (last wins):
//
//  1. $XDG_CONFIG_HOME/coverstrip/config.toml
//  2. ./config.toml
//
// A missing file is not an error; defaults apply.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	paths := []string{path}
	if path == "" {
		paths = defaultConfigPaths()
	}

	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			if err := k.Load(file.Provider(p), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.RemoteURL = strings.TrimSuffix(cfg.RemoteURL, "/")
	if cfg.CacheDir != "" {
		cfg.CacheDir = expandPath(cfg.CacheDir)
	}
	if cfg.PrefetchLimit <= 0 {
		cfg.PrefetchLimit = Default().PrefetchLimit
	}
	if cfg.MaxCoverEdge < 0 {
		cfg.MaxCoverEdge = 0
	}

	return cfg, nil
}

func defaultConfigPaths() []string {
	return []string{
		filepath.Join(xdg.ConfigHome, appName, "config.toml"),
		"config.toml",
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
