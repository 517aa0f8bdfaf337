package cache

import (
	"encoding/json"
	"net/url"
	"time"
)

// Entry is a cached value together with the instant it was stored.
// Staleness never invalidates an entry; it only decides whether a read counts
// as a hit or triggers a refresh.
type Entry struct {
	Value    json.RawMessage `json:"value"`
	StoredAt time.Time       `json:"stored_at"`
}

// Age returns how old the entry is at the given instant.
func (e Entry) Age(now time.Time) time.Duration {
	return now.Sub(e.StoredAt)
}

// Key derives a cache key from a resource class and its parameterization.
// Params are encoded in sorted order so equivalent requests share a key.
func Key(class string, params map[string]string) string {
	if len(params) == 0 {
		return class
	}
	values := url.Values{}
	for k, v := range params {
		values.Set(k, v)
	}
	return class + "?" + values.Encode()
}
