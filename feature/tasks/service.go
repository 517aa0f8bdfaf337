package tasks

import (
	"context"

	"collector-stats/core/cache"
	"collector-stats/core/rowstore"

	"go.uber.org/zap"
)

// Task is one catalog row describing a unit of field work.
type Task struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Site        string `json:"site,omitempty"`
}

// Requirement is one per-task quota row.
type Requirement struct {
	TaskID   string  `json:"task_id"`
	MinHours float64 `json:"min_hours"`
	Quota    int     `json:"quota"`
}

// Service handles task reference data reads through the cache orchestrator.
type Service struct {
	client rowstore.Client
	cache  *cache.Service
	logger *zap.Logger
}

// NewService creates a new tasks service.
func NewService(client rowstore.Client, cacheSvc *cache.Service, logger *zap.Logger) *Service {
	return &Service{client: client, cache: cacheSvc, logger: logger}
}

// Catalog returns the task catalog, served from cache when available.
func (s *Service) Catalog(ctx context.Context) ([]Task, error) {
	key := cache.Key(cache.ClassTaskCatalog, nil)
	return cache.GetOrFetchAs(ctx, s.cache, cache.ClassTaskCatalog, key,
		func(ctx context.Context) ([]Task, error) {
			rows, err := s.fetchRows(ctx, rowstore.ActionTaskCatalog)
			if err != nil {
				return nil, err
			}
			tasks := make([]Task, 0, len(rows))
			for _, row := range rows {
				tasks = append(tasks, Task{
					ID:          row.String("id", "task_id"),
					Name:        row.String("name", "task", "title"),
					Description: row.String("description", "desc"),
					Site:        row.String("site", "location"),
				})
			}
			return tasks, nil
		})
}

// Requirements returns the per-task quota rows, served from cache when
// available.
func (s *Service) Requirements(ctx context.Context) ([]Requirement, error) {
	key := cache.Key(cache.ClassTaskRequirements, nil)
	return cache.GetOrFetchAs(ctx, s.cache, cache.ClassTaskRequirements, key,
		func(ctx context.Context) ([]Requirement, error) {
			rows, err := s.fetchRows(ctx, rowstore.ActionTaskRequirements)
			if err != nil {
				return nil, err
			}
			reqs := make([]Requirement, 0, len(rows))
			for _, row := range rows {
				reqs = append(reqs, Requirement{
					TaskID:   row.String("task_id", "id", "task"),
					MinHours: row.Float("min_hours", "hours"),
					Quota:    row.Int("quota", "count"),
				})
			}
			return reqs, nil
		})
}

func (s *Service) fetchRows(ctx context.Context, action string) ([]rowstore.Row, error) {
	result, err := s.client.Fetch(ctx, rowstore.Request{Action: action})
	if err != nil {
		return nil, err
	}
	return rowstore.DecodeRows(result.Data)
}
