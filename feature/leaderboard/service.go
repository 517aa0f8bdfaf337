package leaderboard

import (
	"context"

	"collector-stats/core/archive"
	"collector-stats/core/cache"
	"collector-stats/core/reconcile"
	"collector-stats/core/rowstore"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DashboardSummary is the aggregate totals view across all collectors.
type DashboardSummary struct {
	TotalHours       float64 `json:"total_hours"`
	TotalCompleted   int     `json:"total_completed"`
	TotalAssigned    int     `json:"total_assigned"`
	ActiveCollectors int     `json:"active_collectors"`
	SFCollectors     int     `json:"sf_collectors"`
	MXCollectors     int     `json:"mx_collectors"`
	TopCollector     string  `json:"top_collector,omitempty"`
}

// Service builds ranked collector analytics through the cache orchestrator.
type Service struct {
	client   rowstore.Client
	cache    *cache.Service
	archiver *archive.Archiver
	logger   *zap.Logger
}

// NewService creates a new leaderboard service. The archiver may be nil when
// snapshot archiving is disabled.
func NewService(client rowstore.Client, cacheSvc *cache.Service, archiver *archive.Archiver, logger *zap.Logger) *Service {
	return &Service{
		client:   client,
		cache:    cacheSvc,
		archiver: archiver,
		logger:   logger,
	}
}

// Leaderboard returns the ranked collector entries, served from cache when
// available. A fresh build loads the three source tables concurrently,
// reconciles them, ranks the result, and archives one snapshot.
func (s *Service) Leaderboard(ctx context.Context) ([]reconcile.LeaderboardEntry, error) {
	key := cache.Key(cache.ClassLeaderboard, nil)
	return cache.GetOrFetchAs(ctx, s.cache, cache.ClassLeaderboard, key, s.buildFresh)
}

// Dashboard returns the aggregate totals, derived from the leaderboard under
// its own shorter freshness window.
func (s *Service) Dashboard(ctx context.Context) (*DashboardSummary, error) {
	key := cache.Key(cache.ClassDashboard, nil)
	return cache.GetOrFetchAs(ctx, s.cache, cache.ClassDashboard, key,
		func(ctx context.Context) (*DashboardSummary, error) {
			entries, err := s.Leaderboard(ctx)
			if err != nil {
				return nil, err
			}
			return summarize(entries), nil
		})
}

// ClearCache wipes both cache tiers, forcing the next read of every resource
// to go upstream.
func (s *Service) ClearCache(ctx context.Context) {
	s.cache.ClearAll(ctx)
}

// Snapshots lists the archived leaderboard snapshot object names.
func (s *Service) Snapshots(ctx context.Context) ([]string, error) {
	if s.archiver == nil {
		return []string{}, nil
	}
	return s.archiver.ListSnapshots(ctx)
}

// buildFresh performs one full reconciliation pass against the row store.
func (s *Service) buildFresh(ctx context.Context) ([]reconcile.LeaderboardEntry, error) {
	var workLogs, fieldReports []reconcile.SourceRow
	var roster []reconcile.RosterPair

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := fetchRows(gctx, s.client, rowstore.ActionWorkLogs)
		if err != nil {
			return err
		}
		workLogs = mapWorkLogs(rows)
		return nil
	})
	g.Go(func() error {
		rows, err := fetchRows(gctx, s.client, rowstore.ActionFieldReports)
		if err != nil {
			return err
		}
		fieldReports = mapFieldReports(rows)
		return nil
	})
	g.Go(func() error {
		rows, err := fetchRows(gctx, s.client, rowstore.ActionRoster)
		if err != nil {
			return err
		}
		roster = mapRoster(rows)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	rigs := reconcile.BuildRigMap(roster)
	entries := reconcile.BuildLeaderboard(reconcile.Reconcile(workLogs, fieldReports, rigs))

	if s.archiver != nil {
		if name, err := s.archiver.StoreSnapshot(ctx, entries); err != nil {
			s.logger.Warn("Snapshot archive failed", zap.Error(err))
		} else {
			s.logger.Debug("Archived leaderboard snapshot", zap.String("object", name))
		}
	}

	return entries, nil
}

// summarize folds ranked entries into the dashboard totals.
func summarize(entries []reconcile.LeaderboardEntry) *DashboardSummary {
	summary := &DashboardSummary{ActiveCollectors: len(entries)}
	for _, e := range entries {
		summary.TotalHours += e.HoursLogged
		summary.TotalCompleted += e.TasksCompleted
		summary.TotalAssigned += e.TasksAssigned
		if e.Region == reconcile.RegionSF {
			summary.SFCollectors++
		} else {
			summary.MXCollectors++
		}
	}
	if len(entries) > 0 {
		summary.TopCollector = entries[0].CollectorName
	}
	return summary
}
