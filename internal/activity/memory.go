package activity

import (
	"sync"
	"time"
)

// DefaultCapacity bounds the in-memory log when no capacity is configured.
const DefaultCapacity = 1000

// MemoryLog keeps the most recent entries in a fixed-capacity ring,
// evicting the oldest once full.
type MemoryLog struct {
	mu      sync.Mutex
	entries []string
	cap     int
	now     func() time.Time
}

func NewMemoryLog(capacity int) *MemoryLog {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &MemoryLog{cap: capacity, now: time.Now}
}

func (l *MemoryLog) Record(message string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append(l.entries, stamp(l.now(), message))
	if len(l.entries) > l.cap {
		l.entries = l.entries[len(l.entries)-l.cap:]
	}
}

// Recent returns up to limit entries, oldest of the window first.
func (l *MemoryLog) Recent(limit int) []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	if limit <= 0 || limit > len(l.entries) {
		limit = len(l.entries)
	}
	out := make([]string, limit)
	copy(out, l.entries[len(l.entries)-limit:])
	return out
}
