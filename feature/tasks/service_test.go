package tasks_test

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"collector-stats/core/cache"
	"collector-stats/core/rowstore"
	"collector-stats/core/rowstore/mocks"
	"collector-stats/feature/tasks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memoryDurable struct {
	mu      sync.Mutex
	entries map[string]cache.Entry
}

func newMemoryDurable() *memoryDurable {
	return &memoryDurable{entries: map[string]cache.Entry{}}
}

func (d *memoryDurable) Get(_ context.Context, key string) (cache.Entry, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	e, ok := d.entries[key]
	return e, ok
}

func (d *memoryDurable) Set(_ context.Context, key string, e cache.Entry) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.entries[key] = e
	return nil
}

func (d *memoryDurable) Clear(_ context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.entries = map[string]cache.Entry{}
	return nil
}

func result(v any) *rowstore.Result {
	data, _ := json.Marshal(v)
	return &rowstore.Result{Data: data}
}

func matchAction(action string) any {
	return mock.MatchedBy(func(req rowstore.Request) bool {
		return req.Action == action
	})
}

func newService(t *testing.T, client rowstore.Client) *tasks.Service {
	t.Helper()
	cacheSvc := cache.NewService(newMemoryDurable(), cache.DefaultPolicy(), zap.NewNop())
	return tasks.NewService(client, cacheSvc, zap.NewNop())
}

func TestCatalog(t *testing.T) {
	client := new(mocks.Client)
	client.On("Fetch", mock.Anything, matchAction(rowstore.ActionTaskCatalog)).Return(result([]map[string]any{
		{"id": "T1", "name": "Sensor sweep", "site": "SF Pier 3"},
		{"task_id": "T2", "title": "Sample haul", "desc": "Two crates minimum"},
	}), nil)

	svc := newService(t, client)

	catalog, err := svc.Catalog(context.Background())
	require.NoError(t, err)
	require.Len(t, catalog, 2)
	assert.Equal(t, tasks.Task{ID: "T1", Name: "Sensor sweep", Site: "SF Pier 3"}, catalog[0])
	assert.Equal(t, tasks.Task{ID: "T2", Name: "Sample haul", Description: "Two crates minimum"}, catalog[1])
}

func TestCatalogSecondReadServedFromCache(t *testing.T) {
	client := new(mocks.Client)
	client.On("Fetch", mock.Anything, mock.Anything).Return(result([]map[string]any{}), nil)

	svc := newService(t, client)
	ctx := context.Background()

	_, err := svc.Catalog(ctx)
	require.NoError(t, err)
	_, err = svc.Catalog(ctx)
	require.NoError(t, err)

	client.AssertNumberOfCalls(t, "Fetch", 1)
}

func TestRequirements(t *testing.T) {
	client := new(mocks.Client)
	client.On("Fetch", mock.Anything, matchAction(rowstore.ActionTaskRequirements)).Return(result([]map[string]any{
		{"task_id": "T1", "min_hours": 2.5, "quota": 3},
		{"task_id": "T2", "min_hours": "4", "quota": "1"}, // string cells coerce
	}), nil)

	svc := newService(t, client)

	reqs, err := svc.Requirements(context.Background())
	require.NoError(t, err)
	require.Len(t, reqs, 2)
	assert.Equal(t, tasks.Requirement{TaskID: "T1", MinHours: 2.5, Quota: 3}, reqs[0])
	assert.Equal(t, tasks.Requirement{TaskID: "T2", MinHours: 4, Quota: 1}, reqs[1])
}

func TestRequirementsUpstreamFailure(t *testing.T) {
	client := new(mocks.Client)
	client.On("Fetch", mock.Anything, mock.Anything).
		Return(nil, &rowstore.StatusError{StatusCode: 503})

	svc := newService(t, client)

	_, err := svc.Requirements(context.Background())
	assert.Error(t, err)
}
