// Package leaderboard implements the ranked collector analytics feature.
//
// It builds the "who did how much work" view by reconciling two independent
// source tables (work logs and field reports) against the roster, then ranking
// the resulting aggregates. Builds are served through the cache orchestrator,
// so a stale leaderboard is returned instantly while a refresh runs behind it.
//
// # Components
//
//   - Service: loads the three source tables concurrently, reconciles them and
//     ranks the result; also derives the dashboard summary and archives
//     snapshots of fresh builds.
//   - Handler: exposes the HTTP endpoints.
//   - Feature: registers the feature with the application loader.
//
// # HTTP Endpoints
//
//   - GET  /leaderboard           : ranked collector entries.
//   - GET  /leaderboard/snapshots : archived snapshot object names.
//   - GET  /dashboard             : aggregate totals across all collectors.
//   - POST /cache/clear           : force-refresh by wiping both cache tiers.
package leaderboard
