package cache

import (
	"encoding/json"
	"time"
)

// DefaultExpiry is the expiry window applied when neither the caller nor the
// stored entry carries one.
const DefaultExpiry = 5 * time.Minute

// Entry is the stored form of one cached result set. The payload is opaque to
// the cache; the filters and sort active at write time travel with it so a
// later read under the same key can detect a query that no longer matches.
type Entry struct {
	Data      json.RawMessage `json:"data"`
	Timestamp int64           `json:"timestamp"` // epoch milliseconds
	Filters   []string        `json:"filters"`
	Sort      string          `json:"sort"`
	ExpiryMS  int64           `json:"expiryTimeMs"`
}

// expired reports whether the entry is too old at now. A positive override
// takes precedence over the entry's own window; both fall back to
// DefaultExpiry.
func (e *Entry) expired(now time.Time, override time.Duration) bool {
	window := override
	if window <= 0 {
		window = time.Duration(e.ExpiryMS) * time.Millisecond
	}
	if window <= 0 {
		window = DefaultExpiry
	}
	age := now.UnixMilli() - e.Timestamp
	return age > window.Milliseconds()
}

// matches reports whether the entry was written under the same filter set
// (order-insensitive) and sort as the current query.
func (e *Entry) matches(filters []string, sortOpt string) bool {
	if sortOpt == "" {
		sortOpt = DefaultSort
	}
	if e.Sort != sortOpt {
		return false
	}
	stored := sortedCopy(e.Filters)
	asked := sortedCopy(filters)
	if len(stored) != len(asked) {
		return false
	}
	for i := range stored {
		if stored[i] != asked[i] {
			return false
		}
	}
	return true
}
