package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/coverstrip/coverstrip/internal/blobcache"
	"github.com/coverstrip/coverstrip/internal/config"
	"github.com/coverstrip/coverstrip/internal/library"
	"github.com/coverstrip/coverstrip/internal/model"
	"github.com/coverstrip/coverstrip/internal/remote"
	"github.com/coverstrip/coverstrip/internal/store"
	"github.com/coverstrip/coverstrip/internal/tui"
)

func main() {
	configFlag := flag.String("config", "", "Path to config file")
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	st := store.New(model.SeedAlbums())

	disk, err := blobcache.New(cfg.CacheDir)
	if err != nil {
		// Browsing works without persistence, covers just won't
		// survive a restart.
		fmt.Fprintf(os.Stderr, "Warning: cover cache disabled: %v\n", err)
		disk = nil
	}

	events := make(chan library.Event, 32)
	lib := library.New(st, remote.NewHTTPClient(cfg.RemoteURL), disk, library.Options{
		Online:        cfg.Online,
		MaxCoverEdge:  cfg.MaxCoverEdge,
		PrefetchLimit: cfg.PrefetchLimit,
		OnEvent: func(e library.Event) {
			// Never block library goroutines on a slow UI.
			select {
			case events <- e:
			default:
			}
		},
	})

	if err := tui.Run(lib, events); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
