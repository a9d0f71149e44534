// Package history keeps a bounded, persisted log of past breakthrough plays.
//
// The log is advisory: it only feeds selection weighting. A corrupt or
// unavailable backend degrades to an empty history and is never fatal.
package history

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/lumenpath/breakthrough/catalog"
	"github.com/lumenpath/breakthrough/parameter"
)

// Entry records one playback attempt, successful or not
type Entry struct {
	VariantID   string              `json:"variantId"`
	Seed        uint32              `json:"seed"`
	Intensity   catalog.Intensity   `json:"intensity"`
	QualityTier catalog.QualityTier `json:"qualityTier"`
	Completed   bool                `json:"completed"`
	WasSafeMode bool                `json:"wasSafeMode"`
	Timestamp   time.Time           `json:"timestamp"`
}

// Store persists the full entry list under a single namespaced key
// Writes replace the whole list; concurrent writers are last-write-wins
type Store interface {
	Load() ([]Entry, error)
	Save(entries []Entry) error
}

// Log is the bounded in-process view over a Store
// Reads are most-recent-first; entries beyond the cap are evicted oldest-first
type Log struct {
	mu      sync.Mutex
	store   Store
	entries []Entry // oldest first internally
	logger  *zap.Logger
}

// NewLog loads existing entries from the store
// Load failures are logged and treated as an empty history
func NewLog(store Store, logger *zap.Logger) *Log {
	if logger == nil {
		logger = zap.NewNop()
	}
	l := &Log{store: store, logger: logger}
	if store != nil {
		entries, err := store.Load()
		if err != nil {
			logger.Warn("history load failed, starting empty", zap.Error(err))
		} else {
			if len(entries) > parameter.HistoryCap {
				entries = entries[len(entries)-parameter.HistoryCap:]
			}
			l.entries = entries
		}
	}
	return l
}

// Record appends an entry, evicting the oldest beyond the cap
// Persistence is best-effort; a failed save keeps the in-memory log intact
func (l *Log) Record(e Entry) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append(l.entries, e)
	if len(l.entries) > parameter.HistoryCap {
		l.entries = l.entries[len(l.entries)-parameter.HistoryCap:]
	}
	l.persistLocked()
}

// Clear drops all entries, in memory and in the store
func (l *Log) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = nil
	l.persistLocked()
}

// Entries returns a most-recent-first copy of the log
func (l *Log) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]Entry, len(l.entries))
	for i, e := range l.entries {
		out[len(l.entries)-1-i] = e
	}
	return out
}

// RecentIDs returns up to n variant IDs, most recent first
func (l *Log) RecentIDs(n int) []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	if n > len(l.entries) {
		n = len(l.entries)
	}
	out := make([]string, 0, n)
	for i := len(l.entries) - 1; i >= len(l.entries)-n; i-- {
		out = append(out, l.entries[i].VariantID)
	}
	return out
}

// Len returns the current entry count
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

func (l *Log) persistLocked() {
	if l.store == nil {
		return
	}
	if err := l.store.Save(l.entries); err != nil {
		l.logger.Warn("history save failed", zap.Error(err))
	}
}
