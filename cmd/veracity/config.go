// cmd/veracity/config.go
package main

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config holds application configuration. Values from config/config.json are
// overridable through environment variables; secrets normally arrive via the
// environment only.
type Config struct {
	Version    string `json:"version"`
	ListenPort int    `json:"listenPort"`
	LogPath    string `json:"logPath"`
	LogLevel   string `json:"logLevel"`

	// Fetching
	UserAgent           string  `json:"userAgent"`
	FetchTimeoutSeconds int     `json:"fetchTimeoutSeconds"`
	FetchRatePerSecond  float64 `json:"fetchRatePerSecond"`

	// Persistence
	EnableDatabase bool   `json:"enableDatabase"`
	DatabaseURL    string `json:"databaseUrl"`

	// RSS watchlist
	EnableWatchlist bool     `json:"enableWatchlist"`
	WatchlistFeeds  []string `json:"watchlistFeeds"`
	WatchlistCron   string   `json:"watchlistCron"`

	// Optional integrations
	EnableAIReview        bool   `json:"enableAiReview"`
	OpenAIAPIKey          string `json:"-"`
	EnableDiscordAlerts   bool   `json:"enableDiscordAlerts"`
	DiscordBotToken       string `json:"-"`
	DiscordAlertChannelID string `json:"discordAlertChannelId"`
}

// defaultConfig returns the built-in defaults.
func defaultConfig() *Config {
	return &Config{
		Version:             VERSION,
		ListenPort:          8080,
		LogPath:             defaultLogPath,
		LogLevel:            "info",
		UserAgent:           "VeracityBot/" + VERSION,
		FetchTimeoutSeconds: 20,
		FetchRatePerSecond:  2,
		WatchlistCron:       "*/30 * * * *",
	}
}

// LoadConfig reads config/config.json when present, then applies environment
// overrides. A missing config file is not an error; the defaults stand.
func LoadConfig() (*Config, error) {
	config := defaultConfig()

	data, err := os.ReadFile(configFilePath)
	if err == nil {
		if err := json.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %v", configFilePath, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read %s: %v", configFilePath, err)
	}

	applyEnvOverrides(config)

	if config.ListenPort <= 0 {
		return nil, fmt.Errorf("invalid listen port: %d", config.ListenPort)
	}
	return config, nil
}

// applyEnvOverrides layers environment variables over the loaded config.
func applyEnvOverrides(config *Config) {
	config.ListenPort = GetEnvInt("LISTEN_PORT", config.ListenPort)
	config.LogPath = GetEnvString("LOG_PATH", config.LogPath)
	config.LogLevel = GetEnvString("LOG_LEVEL", config.LogLevel)
	config.UserAgent = GetEnvString("USER_AGENT", config.UserAgent)
	config.FetchTimeoutSeconds = GetEnvInt("FETCH_TIMEOUT_SECONDS", config.FetchTimeoutSeconds)
	config.FetchRatePerSecond = GetEnvFloat("FETCH_RATE_PER_SECOND", config.FetchRatePerSecond)
	config.EnableDatabase = GetEnvBool("ENABLE_DATABASE", config.EnableDatabase)
	config.DatabaseURL = GetEnvString("DATABASE_URL", config.DatabaseURL)
	config.EnableWatchlist = GetEnvBool("ENABLE_WATCHLIST", config.EnableWatchlist)
	config.WatchlistFeeds = GetEnvStringSlice("WATCHLIST_FEEDS", config.WatchlistFeeds)
	config.WatchlistCron = GetEnvString("WATCHLIST_CRON", config.WatchlistCron)
	config.EnableAIReview = GetEnvBool("ENABLE_AI_REVIEW", config.EnableAIReview)
	config.OpenAIAPIKey = GetEnvString("OPENAI_API_KEY", config.OpenAIAPIKey)
	config.EnableDiscordAlerts = GetEnvBool("ENABLE_DISCORD_ALERTS", config.EnableDiscordAlerts)
	config.DiscordBotToken = GetEnvString("DISCORD_BOT_TOKEN", config.DiscordBotToken)
	config.DiscordAlertChannelID = GetEnvString("DISCORD_ALERT_CHANNEL_ID", config.DiscordAlertChannelID)
}
