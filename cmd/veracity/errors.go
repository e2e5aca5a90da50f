// cmd/veracity/errors.go
package main

import (
	"fmt"
	"sync"
	"time"
)

// Error severities recorded on events.
const (
	SeverityWarning = "WARNING"
	SeverityError   = "ERROR"
	SeverityFatal   = "FATAL"
)

// ErrorBuffer is a bounded in-memory ring of recent error events, surfaced
// on the API for operators.
type ErrorBuffer struct {
	mu     sync.RWMutex
	events []*ErrorEvent
	size   int
}

var errorBuffer *ErrorBuffer

// InitErrorBuffer initializes the global error buffer.
func InitErrorBuffer(size int) {
	errorBuffer = &ErrorBuffer{size: size}
}

// Add records an event, evicting the oldest when full.
func (b *ErrorBuffer) Add(event *ErrorEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.events = append(b.events, event)
	if len(b.events) > b.size {
		b.events = b.events[len(b.events)-b.size:]
	}
}

// GetRecent returns up to count events, newest first.
func (b *ErrorBuffer) GetRecent(count int) []*ErrorEvent {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if count > len(b.events) {
		count = len(b.events)
	}
	recent := make([]*ErrorEvent, count)
	for i := 0; i < count; i++ {
		recent[i] = b.events[len(b.events)-1-i]
	}
	return recent
}

// RecordError logs an error and stores it in the ring buffer.
func RecordError(component, severity string, err error) {
	if err == nil {
		return
	}

	Log().Error("%s: %v", component, err)
	IncrementErrorCount()

	if errorBuffer != nil {
		errorBuffer.Add(&ErrorEvent{
			Component: component,
			Message:   err.Error(),
			Severity:  severity,
			Time:      time.Now().UTC(),
		})
	}
}

// RecoverFromPanic converts a panic on a long-lived goroutine into a
// recorded error instead of a crash.
func RecoverFromPanic(component string) {
	if r := recover(); r != nil {
		RecordError(component, SeverityError, fmt.Errorf("panic recovered: %v", r))
	}
}
