package roster

import (
	"context"
	"errors"
	"strings"

	"collector-stats/core/cache"
	"collector-stats/core/reconcile"
	"collector-stats/core/rowstore"

	"go.uber.org/zap"
)

// Entry is one roster row: a canonical collector name and the rig assigned
// to them.
type Entry struct {
	Name  string `json:"name"`
	RigID string `json:"rig_id,omitempty"`
}

// CollectorDetail joins a collector's roster profile with their reconciled
// stats. Stats is nil when the collector has no recorded work.
type CollectorDetail struct {
	Name  string                      `json:"name"`
	RigID string                      `json:"rig_id,omitempty"`
	Stats *reconcile.LeaderboardEntry `json:"stats,omitempty"`
}

// StatsProvider supplies the reconciled ranking the detail view joins against.
type StatsProvider interface {
	Leaderboard(ctx context.Context) ([]reconcile.LeaderboardEntry, error)
}

// ErrNotFound is returned when a collector is on neither the roster nor the
// leaderboard.
var ErrNotFound = errors.New("collector not found")

// Service handles roster reads through the cache orchestrator.
type Service struct {
	client rowstore.Client
	cache  *cache.Service
	stats  StatsProvider
	logger *zap.Logger
}

// NewService creates a new roster service.
func NewService(client rowstore.Client, cacheSvc *cache.Service, stats StatsProvider, logger *zap.Logger) *Service {
	return &Service{
		client: client,
		cache:  cacheSvc,
		stats:  stats,
		logger: logger,
	}
}

// Roster returns all roster entries, served from cache when available.
func (s *Service) Roster(ctx context.Context) ([]Entry, error) {
	key := cache.Key(cache.ClassRoster, nil)
	return cache.GetOrFetchAs(ctx, s.cache, cache.ClassRoster, key,
		func(ctx context.Context) ([]Entry, error) {
			result, err := s.client.Fetch(ctx, rowstore.Request{Action: rowstore.ActionRoster})
			if err != nil {
				return nil, err
			}
			rows, err := rowstore.DecodeRows(result.Data)
			if err != nil {
				return nil, err
			}
			entries := make([]Entry, 0, len(rows))
			for _, row := range rows {
				name := row.String("name", "collector", "canonical_name")
				if name == "" {
					continue
				}
				entries = append(entries, Entry{
					Name:  name,
					RigID: row.String("rig", "rig_id", "identifier", "id"),
				})
			}
			return entries, nil
		})
}

// Collector returns one collector's profile joined with their reconciled
// stats. The join is cached per collector name.
func (s *Service) Collector(ctx context.Context, name string) (*CollectorDetail, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNotFound
	}

	params := map[string]string{"name": name}
	key := cache.Key(cache.ClassCollectorDetail, params)
	return cache.GetOrFetchAs(ctx, s.cache, cache.ClassCollectorDetail, key,
		func(ctx context.Context) (*CollectorDetail, error) {
			return s.buildDetail(ctx, name)
		})
}

// buildDetail resolves the profile upstream and joins in the ranked stats.
func (s *Service) buildDetail(ctx context.Context, name string) (*CollectorDetail, error) {
	detail := &CollectorDetail{Name: name}

	result, err := s.client.Fetch(ctx, rowstore.Request{
		Action: rowstore.ActionCollector,
		Params: map[string]string{"name": name},
	})
	if err != nil {
		return nil, err
	}
	rows, err := rowstore.DecodeRows(result.Data)
	if err != nil {
		return nil, err
	}
	if len(rows) > 0 {
		detail.Name = rows[0].String("name", "collector", "canonical_name")
		detail.RigID = rows[0].String("rig", "rig_id", "identifier", "id")
	}

	entries, err := s.stats.Leaderboard(ctx)
	if err != nil {
		return nil, err
	}
	for i := range entries {
		if strings.EqualFold(entries[i].CollectorName, name) {
			detail.Stats = &entries[i]
			break
		}
	}

	if len(rows) == 0 && detail.Stats == nil {
		return nil, ErrNotFound
	}
	return detail, nil
}
