package cache

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemoryTier(t *testing.T) {
	tier := NewMemoryTier()

	_, ok := tier.Get("leaderboard")
	assert.False(t, ok)

	stored := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	tier.Set("leaderboard", Entry{Value: json.RawMessage(`[1,2]`), StoredAt: stored})

	e, ok := tier.Get("leaderboard")
	assert.True(t, ok)
	assert.Equal(t, json.RawMessage(`[1,2]`), e.Value)
	assert.Equal(t, stored, e.StoredAt)

	// Entries are returned regardless of age; freshness is the caller's call.
	assert.Equal(t, 2*time.Minute, e.Age(stored.Add(2*time.Minute)))

	tier.Clear()
	_, ok = tier.Get("leaderboard")
	assert.False(t, ok)
}

func TestKey(t *testing.T) {
	assert.Equal(t, "leaderboard", Key(ClassLeaderboard, nil))
	// Params encode in sorted order so equivalent requests share a key.
	a := Key(ClassCollectorDetail, map[string]string{"collector": "Ana", "period": "week"})
	b := Key(ClassCollectorDetail, map[string]string{"period": "week", "collector": "Ana"})
	assert.Equal(t, a, b)
	assert.Equal(t, "collector_detail?collector=Ana&period=week", a)
}

func TestPolicy(t *testing.T) {
	p := DefaultPolicy()

	assert.Equal(t, 2*time.Minute, p.For(ClassLeaderboard).Memory)
	assert.Equal(t, 10*time.Minute, p.For(ClassLeaderboard).Durable)

	// Unlisted classes use the short fallback pair.
	fallback := p.For("something_new")
	assert.Equal(t, 30*time.Second, fallback.Memory)
	assert.Equal(t, 2*time.Minute, fallback.Durable)

	// Memory TTL never exceeds durable TTL for any class.
	for _, class := range []string{
		ClassRoster, ClassTaskCatalog, ClassLeaderboard,
		ClassDashboard, ClassCollectorDetail, ClassTaskRequirements, "unlisted",
	} {
		ttl := p.For(class)
		assert.LessOrEqual(t, ttl.Memory, ttl.Durable, class)
	}
}
