package cache

import "time"

// Resource classes with their own freshness policy. Volatile aggregates get
// short TTLs; near-static reference data keeps longer ones.
const (
	ClassRoster           = "roster"
	ClassTaskCatalog      = "task_catalog"
	ClassLeaderboard      = "leaderboard"
	ClassDashboard        = "dashboard"
	ClassCollectorDetail  = "collector_detail"
	ClassTaskRequirements = "task_requirements"
)

// TTL is the freshness pair for one resource class. Memory must not exceed
// Durable for any class.
type TTL struct {
	Memory  time.Duration
	Durable time.Duration
}

// Policy maps resource classes to their TTL pair. Classes not explicitly
// listed fall back to a short default.
type Policy struct {
	classes  map[string]TTL
	fallback TTL
}

// DefaultPolicy returns the standard freshness table.
func DefaultPolicy() *Policy {
	return &Policy{
		classes: map[string]TTL{
			ClassRoster:           {Memory: 5 * time.Minute, Durable: 30 * time.Minute},
			ClassTaskCatalog:      {Memory: 5 * time.Minute, Durable: 30 * time.Minute},
			ClassLeaderboard:      {Memory: 2 * time.Minute, Durable: 10 * time.Minute},
			ClassDashboard:        {Memory: 1 * time.Minute, Durable: 5 * time.Minute},
			ClassCollectorDetail:  {Memory: 2 * time.Minute, Durable: 10 * time.Minute},
			ClassTaskRequirements: {Memory: 2 * time.Minute, Durable: 10 * time.Minute},
		},
		fallback: TTL{Memory: 30 * time.Second, Durable: 2 * time.Minute},
	}
}

// For returns the TTL pair for a resource class, falling back to the default
// pair for unlisted classes.
func (p *Policy) For(class string) TTL {
	if ttl, ok := p.classes[class]; ok {
		return ttl
	}
	return p.fallback
}
