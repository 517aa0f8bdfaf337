// Package archive persists leaderboard snapshots to S3-compatible object
// storage via Minio.
//
// Every foreground leaderboard build can drop a timestamped JSON snapshot
// into the configured bucket, giving operators a history of ranked results
// to diff when the source tables are edited by hand. Archiving is optional
// and strictly best-effort: a failed upload is logged and never surfaces to
// the caller requesting the leaderboard.
package archive
