// Package rowstore provides the resilient client for the authoritative remote
// row store.
//
// The row store is a slow, loosely-keyed tabular web API. Every call goes
// through a single logical Fetch with:
//
//   - a fixed wall-clock timeout per attempt (not cumulative across retries)
//   - bounded retry (2 retries, 3 total attempts) on transport-class errors
//     and the retryable HTTP status subset (408, 429, 500, 502, 503, 504)
//   - an increasing fixed delay schedule (400ms, then 1200ms) between attempts
//
// Responses are wrapped in a {success, data?, error?, message?} envelope.
// Bodies served with a non-JSON content type may carry the `)]}'`
// anti-hijacking prefix, which is stripped before parsing.
//
// # Error taxonomy
//
// Failures surface as exactly one of TimeoutError, NetworkError, StatusError,
// APIError (envelope success=false) or MalformedError. Semantic and malformed
// failures are never retried and propagate immediately.
//
// The client is purely functional from the caller's perspective: no state is
// kept beyond the HTTP connection pool, and reads against the row store are
// idempotent.
package rowstore
