// cmd/veracity/scheduler.go
package main

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
)

// StartScheduler runs watchlist scans on the configured cron expression and
// kicks off an immediate first scan in the background.
func StartScheduler(config *Config, watchlist *Watchlist) (*cron.Cron, error) {
	scheduler := cron.New()

	_, err := scheduler.AddFunc(config.WatchlistCron, func() {
		watchlist.Scan(context.Background())
	})
	if err != nil {
		return nil, fmt.Errorf("invalid watchlist cron expression %q: %v", config.WatchlistCron, err)
	}

	// Periodic state flush so counters survive an unclean exit.
	if _, err := scheduler.AddFunc("@every 5m", func() {
		if err := SaveState(); err != nil {
			RecordError("state", SeverityWarning, err)
		}
	}); err != nil {
		return nil, err
	}

	scheduler.Start()
	Log().Info("Watchlist scheduler started: %s", config.WatchlistCron)

	go watchlist.Scan(context.Background())
	return scheduler, nil
}
