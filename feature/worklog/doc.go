// Package worklog implements the work-log append path.
//
// Appends go straight to the authoritative row store with no caching layer in
// between. The row store applies writes last-writer-wins; this service only
// relays the envelope outcome.
//
// # HTTP Endpoints
//
//   - POST /worklogs : append one work-log row.
package worklog
