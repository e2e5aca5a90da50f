// cmd/veracity/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
)

func main() {
	// Optional .env for local development; absence is fine.
	godotenv.Load()

	config, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := InitLogger(config.LogPath, ParseLogLevel(config.LogLevel)); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	Log().Info("Starting Veracity v%s", VERSION)

	InitErrorBuffer(100)

	if _, err := LoadState(); err != nil {
		Log().Error("Failed to load state: %v", err)
		os.Exit(1)
	}

	if err := InitDatabase(config); err != nil {
		Log().Error("Failed to initialize database: %v", err)
		os.Exit(1)
	}
	defer CloseDatabase()

	resolver, err := NewSourceResolver(reputationFilePath)
	if err != nil {
		Log().Error("Failed to load source reputation: %v", err)
		os.Exit(1)
	}

	analyzer := NewAnalyzer(resolver, DefaultLexicons(), NewSocialSynthesizer(nil))
	extractor := NewExtractor(config)
	history := NewHistoryStore(maxAnalysisHistory)

	// Warm the history ring from the database so the API has results
	// immediately after a restart.
	if persisted, err := LoadRecentAnalyses(maxAnalysisHistory); err != nil {
		RecordError("database", SeverityWarning, err)
	} else {
		for i := len(persisted) - 1; i >= 0; i-- {
			history.Add(persisted[i])
		}
	}

	var notifier *Notifier
	if config.EnableDiscordAlerts {
		notifier, err = NewNotifier(config)
		if err != nil {
			Log().Error("Failed to start Discord notifier: %v", err)
			os.Exit(1)
		}
		defer notifier.Close()
	}

	var reviewer *Reviewer
	if config.EnableAIReview {
		reviewer, err = NewReviewer(config)
		if err != nil {
			Log().Error("Failed to start AI reviewer: %v", err)
			os.Exit(1)
		}
	}

	server := NewServer(config, analyzer, extractor, history, notifier, reviewer)

	if config.EnableWatchlist && len(config.WatchlistFeeds) > 0 {
		scheduler, err := StartScheduler(config, NewWatchlist(config, server))
		if err != nil {
			Log().Error("Failed to start watchlist scheduler: %v", err)
			os.Exit(1)
		}
		defer scheduler.Stop()
	}

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		if err != nil {
			Log().Error("HTTP server failed: %v", err)
		}
	case sig := <-shutdown:
		Log().Info("Received signal %v, shutting down", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		Log().Error("Shutdown error: %v", err)
	}

	if err := SaveState(); err != nil {
		Log().Error("Failed to save state: %v", err)
	}
	Log().Info("Shutdown complete")
}
