package cache

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"go.uber.org/zap"
)

// FetchFunc is the fallback that reaches the remote row store plus domain
// mapping. It produces the already-mapped value to cache.
type FetchFunc func(ctx context.Context) (json.RawMessage, error)

// backgroundTimeout bounds a refresh that outlives its originating request.
const backgroundTimeout = time.Minute

// Service composes the two cache tiers and a fetch fallback into a single
// get-with-policy operation with stale-while-revalidate semantics.
//
// Concurrent cold misses for the same key will each invoke their fetch; reads
// against the row store are idempotent, so the duplicate work is accepted
// rather than de-duplicated.
type Service struct {
	memory  *MemoryTier
	durable DurableStore
	policy  *Policy
	logger  *zap.Logger
	now     func() time.Time

	refreshes sync.WaitGroup
}

// Option customizes a Service.
type Option func(*Service)

// WithClock injects the time source, for deterministic freshness tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService creates the cache orchestrator.
func NewService(durable DurableStore, policy *Policy, logger *zap.Logger, opts ...Option) *Service {
	s := &Service{
		memory:  NewMemoryTier(),
		durable: durable,
		policy:  policy,
		logger:  logger,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetOrFetch resolves a key through the tiers in priority order:
//
//  1. A fresh memory entry returns immediately.
//  2. Any durable entry is served to the caller right away, backfills the
//     memory tier, and schedules a background refresh whose failure is
//     swallowed (stale-while-revalidate).
//  3. Otherwise fetch runs in the foreground; its failure propagates and
//     nothing is cached. On success both tiers are written.
func (s *Service) GetOrFetch(ctx context.Context, class, key string, fetch FetchFunc) (json.RawMessage, error) {
	ttl := s.policy.For(class)

	if e, ok := s.memory.Get(key); ok && e.Age(s.now()) <= ttl.Memory {
		return e.Value, nil
	}

	if e, ok := s.durable.Get(ctx, key); ok {
		// Backfill keeps the original StoredAt so memory freshness still
		// reflects the entry's true age.
		s.memory.Set(key, e)
		s.refreshInBackground(class, key, fetch)
		return e.Value, nil
	}

	value, err := fetch(ctx)
	if err != nil {
		return nil, err
	}
	s.store(ctx, key, value)
	return value, nil
}

// ClearAll empties the memory tier and removes every durable key under this
// cache's namespace. Durable failures are swallowed; the operation always
// succeeds locally. A background refresh that settles afterwards repopulates
// the cache (eventual consistency).
func (s *Service) ClearAll(ctx context.Context) {
	s.memory.Clear()
	if err := s.durable.Clear(ctx); err != nil {
		s.logger.Warn("Durable cache clear failed", zap.Error(err))
	}
}

// WaitForRefresh blocks until all in-flight background refreshes settle.
// Intended for tests and orderly shutdown.
func (s *Service) WaitForRefresh() {
	s.refreshes.Wait()
}

// refreshInBackground revalidates a key without blocking the caller. The
// refresh is detached from the request context so a finished request does not
// cancel it.
func (s *Service) refreshInBackground(class, key string, fetch FetchFunc) {
	s.refreshes.Add(1)
	go func() {
		defer s.refreshes.Done()

		ctx, cancel := context.WithTimeout(context.Background(), backgroundTimeout)
		defer cancel()

		value, err := fetch(ctx)
		if err != nil {
			s.logger.Warn("Background refresh failed",
				zap.String("class", class),
				zap.String("key", key),
				zap.Error(err),
			)
			return
		}
		s.store(ctx, key, value)
	}()
}

// store writes a freshly fetched value into both tiers with the current
// timestamp. Durable write failures degrade to memory-only caching.
func (s *Service) store(ctx context.Context, key string, value json.RawMessage) {
	e := Entry{Value: value, StoredAt: s.now()}
	s.memory.Set(key, e)
	if err := s.durable.Set(ctx, key, e); err != nil {
		s.logger.Warn("Durable cache write failed", zap.String("key", key), zap.Error(err))
	}
}

// GetOrFetchAs is a typed convenience wrapper around Service.GetOrFetch that
// handles the JSON round-trip for the cached value.
func GetOrFetchAs[T any](ctx context.Context, s *Service, class, key string, fetch func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	raw, err := s.GetOrFetch(ctx, class, key, func(ctx context.Context) (json.RawMessage, error) {
		v, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		return json.Marshal(v)
	})
	if err != nil {
		return zero, err
	}

	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return zero, err
	}
	return out, nil
}
