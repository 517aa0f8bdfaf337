package cache

import "sync"

// MemoryTier is the process-lifetime cache tier. It is unbounded by design:
// the entry count is limited by distinct resource keys times distinct
// parameterizations, which stays small.
type MemoryTier struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

// NewMemoryTier creates an empty memory tier.
func NewMemoryTier() *MemoryTier {
	return &MemoryTier{entries: make(map[string]Entry)}
}

// Get returns the entry for a key, if present. Freshness is the caller's
// concern; a stale entry is still returned.
func (t *MemoryTier) Get(key string) (Entry, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	e, ok := t.entries[key]
	return e, ok
}

// Set stores an entry under a key, replacing any previous one.
func (t *MemoryTier) Set(key string, e Entry) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.entries[key] = e
}

// Clear empties the tier.
func (t *MemoryTier) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.entries = make(map[string]Entry)
}
