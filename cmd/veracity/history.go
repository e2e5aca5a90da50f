// cmd/veracity/history.go
package main

import (
	"sync"
)

// HistoryStore keeps the most recent analysis results in memory for the API.
// It is always on; the Postgres store, when enabled, persists alongside it.
type HistoryStore struct {
	mu      sync.RWMutex
	results []*AnalysisResult
	byID    map[string]*AnalysisResult
	size    int
}

// NewHistoryStore builds a bounded history ring.
func NewHistoryStore(size int) *HistoryStore {
	return &HistoryStore{
		byID: make(map[string]*AnalysisResult),
		size: size,
	}
}

// Add appends a result, evicting the oldest entry when the ring is full.
func (h *HistoryStore) Add(result *AnalysisResult) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.results = append(h.results, result)
	h.byID[result.ID] = result
	if len(h.results) > h.size {
		evicted := h.results[0]
		h.results = h.results[1:]
		delete(h.byID, evicted.ID)
	}
}

// Recent returns up to limit results, newest first.
func (h *HistoryStore) Recent(limit int) []*AnalysisResult {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if limit <= 0 || limit > len(h.results) {
		limit = len(h.results)
	}
	recent := make([]*AnalysisResult, limit)
	for i := 0; i < limit; i++ {
		recent[i] = h.results[len(h.results)-1-i]
	}
	return recent
}

// Get looks up a result by id.
func (h *HistoryStore) Get(id string) (*AnalysisResult, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	result, ok := h.byID[id]
	return result, ok
}

// Len reports the number of stored results.
func (h *HistoryStore) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.results)
}
