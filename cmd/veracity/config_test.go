// cmd/veracity/config_test.go
package main

import (
	"reflect"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	config := defaultConfig()

	if config.ListenPort != 8080 {
		t.Errorf("listenPort = %d, want 8080", config.ListenPort)
	}
	if config.UserAgent != "VeracityBot/"+VERSION {
		t.Errorf("userAgent = %q", config.UserAgent)
	}
	if config.FetchTimeoutSeconds <= 0 || config.FetchRatePerSecond <= 0 {
		t.Errorf("fetch defaults not set: %+v", config)
	}
	if config.WatchlistCron == "" {
		t.Error("watchlist cron default missing")
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("LISTEN_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("ENABLE_WATCHLIST", "true")
	t.Setenv("WATCHLIST_FEEDS", "https://a.example/rss,https://b.example/rss")

	config := defaultConfig()
	applyEnvOverrides(config)

	if config.ListenPort != 9090 {
		t.Errorf("listenPort = %d, want 9090", config.ListenPort)
	}
	if config.LogLevel != "debug" {
		t.Errorf("logLevel = %q, want debug", config.LogLevel)
	}
	if !config.EnableWatchlist {
		t.Error("enableWatchlist should be true")
	}
	want := []string{"https://a.example/rss", "https://b.example/rss"}
	if !reflect.DeepEqual(config.WatchlistFeeds, want) {
		t.Errorf("watchlistFeeds = %v, want %v", config.WatchlistFeeds, want)
	}
}

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("TEST_STR", "value")
	t.Setenv("TEST_INT", "42")
	t.Setenv("TEST_BOOL", "true")
	t.Setenv("TEST_FLOAT", "1.5")
	t.Setenv("TEST_BAD_INT", "nope")

	if got := GetEnvString("TEST_STR", "fallback"); got != "value" {
		t.Errorf("GetEnvString = %q", got)
	}
	if got := GetEnvString("TEST_MISSING", "fallback"); got != "fallback" {
		t.Errorf("GetEnvString missing = %q", got)
	}
	if got := GetEnvInt("TEST_INT", 0); got != 42 {
		t.Errorf("GetEnvInt = %d", got)
	}
	if got := GetEnvInt("TEST_BAD_INT", 7); got != 7 {
		t.Errorf("GetEnvInt bad value = %d, want fallback", got)
	}
	if got := GetEnvBool("TEST_BOOL", false); !got {
		t.Error("GetEnvBool = false, want true")
	}
	if got := GetEnvFloat("TEST_FLOAT", 0); got != 1.5 {
		t.Errorf("GetEnvFloat = %v", got)
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want LogLevel
	}{
		{"debug", LogDebug},
		{"info", LogInfo},
		{"warn", LogWarning},
		{"warning", LogWarning},
		{"error", LogError},
		{"bogus", LogInfo},
	}
	for _, tt := range tests {
		if got := ParseLogLevel(tt.in); got != tt.want {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
