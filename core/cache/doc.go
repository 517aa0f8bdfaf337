// Package cache implements the multi-tier read cache for row-store resources.
//
// # Tiers
//
// Two tiers sit in front of the remote row store:
//
//   - MemoryTier: process-lifetime map, lost on restart.
//   - DurableTier: GORM-backed table (sqlite by default) that survives
//     restarts. Corrupt entries are treated as absent, never surfaced.
//
// Each resource class (leaderboard, roster, ...) carries its own TTL pair via
// Policy; the memory TTL is always at most the durable TTL.
//
// # Read path
//
// Service.GetOrFetch consults memory first, then durable, then the fetch
// fallback. A durable hit is served immediately even when past its durable
// TTL; a background refresh then overwrites both tiers, and its failure is
// logged and discarded so a caller who already received a value is never
// surprised (stale-while-revalidate). A cold miss fetches in the foreground
// and propagates failure without caching anything.
//
// There is no single-flight de-duplication: two concurrent cold misses for
// the same key both fetch. Row-store reads are idempotent, so this costs one
// extra call, not correctness.
//
// The clock and the durable store are injected, keeping freshness behavior
// deterministic under test.
package cache
