// tools/validate_feeds.go
//
// Standalone checker for the watchlist feed list. Reads config/config.json
// and confirms every configured feed parses as RSS/Atom before it goes live.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/mmcdole/gofeed"
)

type watchlistConfig struct {
	WatchlistFeeds []string `json:"watchlistFeeds"`
}

func main() {
	fmt.Println("Watchlist Feed Validator")
	fmt.Println("========================")

	data, err := os.ReadFile("config/config.json")
	if err != nil {
		fmt.Printf("Error reading config: %v\n", err)
		os.Exit(1)
	}

	var config watchlistConfig
	if err := json.Unmarshal(data, &config); err != nil {
		fmt.Printf("Error parsing config: %v\n", err)
		os.Exit(1)
	}
	if len(config.WatchlistFeeds) == 0 {
		fmt.Println("No watchlist feeds configured")
		return
	}
	fmt.Printf("Found %d feeds to validate\n\n", len(config.WatchlistFeeds))

	type result struct {
		url     string
		items   int
		elapsed time.Duration
		err     error
	}

	results := make(chan result, len(config.WatchlistFeeds))
	var wg sync.WaitGroup

	for _, url := range config.WatchlistFeeds {
		wg.Add(1)
		go func(url string) {
			defer wg.Done()

			parser := gofeed.NewParser()
			ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()

			start := time.Now()
			feed, err := parser.ParseURLWithContext(url, ctx)
			r := result{url: url, elapsed: time.Since(start), err: err}
			if err == nil {
				r.items = len(feed.Items)
			}
			results <- r
		}(url)
	}

	wg.Wait()
	close(results)

	failed := 0
	for r := range results {
		if r.err != nil {
			fmt.Printf("FAIL  %s (%v): %v\n", r.url, r.elapsed.Round(time.Millisecond), r.err)
			failed++
			continue
		}
		fmt.Printf("OK    %s (%v, %d items)\n", r.url, r.elapsed.Round(time.Millisecond), r.items)
	}

	fmt.Printf("\n%d/%d feeds valid\n", len(config.WatchlistFeeds)-failed, len(config.WatchlistFeeds))
	if failed > 0 {
		os.Exit(1)
	}
}
