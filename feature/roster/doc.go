// Package roster exposes the collector roster and per-collector detail views.
//
// The roster listing is near-static reference data and is cached under a long
// freshness window. The per-collector detail joins the collector's roster
// profile with their reconciled stats from the ranked analytics pass.
//
// # HTTP Endpoints
//
//   - GET /roster        : all roster entries.
//   - GET /roster/:name  : one collector's profile plus reconciled stats.
package roster
