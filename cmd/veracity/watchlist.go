// cmd/veracity/watchlist.go
package main

import (
	"context"
	"sync"
	"time"

	"github.com/mmcdole/gofeed"
)

// maxItemsPerFeed bounds work per scan so one busy feed cannot starve the rest.
const maxItemsPerFeed = 10

// Watchlist periodically pulls configured RSS feeds and runs every new item
// through the analysis pipeline. Results land in history, the database and
// the websocket stream just like API submissions.
type Watchlist struct {
	server *Server
	parser *gofeed.Parser
	feeds  []string

	seenMutex sync.Mutex
	seen      map[string]bool
}

// NewWatchlist builds the feed monitor.
func NewWatchlist(config *Config, server *Server) *Watchlist {
	parser := gofeed.NewParser()
	parser.UserAgent = config.UserAgent

	return &Watchlist{
		server: server,
		parser: parser,
		feeds:  config.WatchlistFeeds,
		seen:   make(map[string]bool),
	}
}

// Scan fetches every feed once and analyzes items not seen before.
func (wl *Watchlist) Scan(ctx context.Context) {
	defer RecoverFromPanic("watchlist")

	Log().Debug("Watchlist scan starting, %d feeds", len(wl.feeds))
	analyzed := 0

	for _, feedURL := range wl.feeds {
		feedCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		feed, err := wl.parser.ParseURLWithContext(feedURL, feedCtx)
		cancel()
		if err != nil {
			RecordError("watchlist", SeverityWarning, err)
			continue
		}

		count := 0
		for _, item := range feed.Items {
			if count >= maxItemsPerFeed {
				break
			}
			if !wl.markSeen(itemKey(item)) {
				continue
			}

			content := item.Content
			if content == "" {
				content = item.Description
			}
			wl.server.runAnalysis(ctx, AnalysisInput{
				Title:     item.Title,
				Content:   content,
				SourceURL: item.Link,
			})
			count++
			analyzed++
		}
	}

	IncrementWatchlistScans()
	if analyzed > 0 {
		Log().Info("Watchlist scan analyzed %d new items", analyzed)
	}
}

// markSeen records an item key, returning true if it was new.
func (wl *Watchlist) markSeen(key string) bool {
	if key == "" {
		return false
	}

	wl.seenMutex.Lock()
	defer wl.seenMutex.Unlock()

	if wl.seen[key] {
		return false
	}
	wl.seen[key] = true
	return true
}

// itemKey picks the most stable identifier a feed item offers.
func itemKey(item *gofeed.Item) string {
	if item.GUID != "" {
		return item.GUID
	}
	if item.Link != "" {
		return item.Link
	}
	return item.Title
}
