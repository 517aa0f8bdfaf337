// Package reconcile turns raw, inconsistently-keyed rows from two independent
// source tables into one canonical, ranked aggregate per collector.
//
// # Pipeline
//
//  1. Identity resolution: explicit name, else rig lookup, else the raw
//     identifier verbatim. Rows with no resolvable identity are skipped.
//  2. Region classification: case-insensitive "SF" substring in the site
//     text, MX otherwise. Once an aggregate is SF it never downgrades within
//     a pass (sticky SF).
//  3. Two-pass merge: the primary source folds additively; the secondary
//     source is a possibly-more-authoritative measurement of the same totals,
//     so overlapping hours take the max of the two, never the sum.
//  4. Ranking: stable sort by hours descending, dense 1-based ranks, integer
//     completion rates.
//
// All functions here are pure; aggregates live only for the duration of a
// reconciliation pass.
package reconcile
