// cmd/veracity/state.go
package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// State represents the application runtime state, persisted across restarts.
type State struct {
	StartupTime    time.Time `json:"startupTime"`
	Version        string    `json:"version"`
	AnalysisCount  int       `json:"analysisCount"`
	WatchlistScans int       `json:"watchlistScans"`
	ErrorCount     int       `json:"errorCount"`
	LastAnalysis   time.Time `json:"lastAnalysis"`
	LastScan       time.Time `json:"lastScan"`
	UptimeSeconds  int64     `json:"uptimeSeconds"`
}

var (
	state = &State{
		StartupTime: time.Now(),
		Version:     VERSION,
	}
	stateMutex sync.Mutex
)

// LoadState loads the application state from file, creating it on first run.
func LoadState() (*State, error) {
	stateMutex.Lock()
	defer stateMutex.Unlock()

	if err := os.MkdirAll(filepath.Dir(stateFilePath), 0755); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(stateFilePath)
	if os.IsNotExist(err) || (err == nil && len(data) == 0) {
		return state, saveStateLocked()
	}
	if err != nil {
		return nil, err
	}

	var loaded State
	if err := json.Unmarshal(data, &loaded); err != nil {
		return nil, err
	}
	loaded.StartupTime = time.Now()
	loaded.Version = VERSION
	state = &loaded

	return state, nil
}

// SaveState persists the current state atomically (tmp file + rename).
func SaveState() error {
	stateMutex.Lock()
	defer stateMutex.Unlock()
	return saveStateLocked()
}

func saveStateLocked() error {
	state.UptimeSeconds = int64(time.Since(state.StartupTime).Seconds())

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(stateFilePath), 0755); err != nil {
		return err
	}

	tempFile := stateFilePath + ".tmp"
	if err := os.WriteFile(tempFile, data, 0644); err != nil {
		return err
	}
	return os.Rename(tempFile, stateFilePath)
}

// IncrementAnalysisCount bumps the analysis counter.
func IncrementAnalysisCount() {
	stateMutex.Lock()
	defer stateMutex.Unlock()

	state.AnalysisCount++
	state.LastAnalysis = time.Now().UTC()
}

// IncrementWatchlistScans bumps the scan counter.
func IncrementWatchlistScans() {
	stateMutex.Lock()
	defer stateMutex.Unlock()

	state.WatchlistScans++
	state.LastScan = time.Now().UTC()
}

// IncrementErrorCount bumps the error counter.
func IncrementErrorCount() {
	stateMutex.Lock()
	defer stateMutex.Unlock()

	state.ErrorCount++
}

// SnapshotState returns a copy of the current state for the API.
func SnapshotState() State {
	stateMutex.Lock()
	defer stateMutex.Unlock()

	snapshot := *state
	snapshot.UptimeSeconds = int64(time.Since(state.StartupTime).Seconds())
	return snapshot
}
