package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/coverstrip/coverstrip/internal/blobcache"
	"github.com/coverstrip/coverstrip/internal/config"
	"github.com/coverstrip/coverstrip/internal/library"
	"github.com/coverstrip/coverstrip/internal/model"
	"github.com/coverstrip/coverstrip/internal/remote"
	"github.com/coverstrip/coverstrip/internal/store"
)

func main() {
	var (
		configFlag  = flag.String("config", "", "Path to config file")
		remoteFlag  = flag.String("remote", "", "Remote base URL (overrides config)")
		listFlag    = flag.Bool("list", false, "List the library without fetching covers")
		verboseFlag = flag.Bool("verbose", false, "Show verbose output")
	)

	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *remoteFlag != "" {
		cfg.RemoteURL = *remoteFlag
	}

	st := store.New(model.SeedAlbums())

	disk, err := blobcache.New(cfg.CacheDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: cover cache disabled: %v\n", err)
		disk = nil
	}

	lib := library.New(st, remote.NewHTTPClient(cfg.RemoteURL), disk, library.Options{
		MaxCoverEdge:  cfg.MaxCoverEdge,
		PrefetchLimit: cfg.PrefetchLimit,
		OnEvent: func(e library.Event) {
			if e.Level == library.LevelVerbose && !*verboseFlag {
				return
			}
			prefix := "   "
			switch e.Level {
			case library.LevelError:
				prefix = " x "
			case library.LevelWarning:
				prefix = " ! "
			case library.LevelInfo:
				prefix = " > "
			}
			fmt.Println(prefix + e.Message)
		},
	})

	fmt.Println("coverstrip library")
	fmt.Println("------------------")
	for i, album := range lib.Albums() {
		fmt.Printf("%d. %s - %s (%s, %s)\n", i+1, album.Artist, album.Title, album.Genre, album.Year)
	}

	if *listFlag {
		return
	}

	// Handle interrupts
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\nInterrupted, cancelling...")
		cancel()
	}()

	fmt.Println()
	fmt.Println("Prefetching covers...")

	if err := lib.PrefetchImages(ctx); err != nil {
		if ctx.Err() != nil {
			fmt.Println("Prefetch cancelled.")
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "Error during prefetch: %v\n", err)
		os.Exit(1)
	}

	cached := 0
	for _, album := range lib.Albums() {
		if lib.CoverCached(album.CoverRef) {
			cached++
		}
	}
	fmt.Printf("Done. %d/%d covers cached under %s\n", cached, lib.Count(), cfg.CacheDir)
}
