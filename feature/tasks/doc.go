// Package tasks exposes the task catalog and task requirement reference data.
//
// Both resources are cached read-throughs against the row store: the catalog
// under a long freshness window, the requirements under a shorter one since
// coordinators adjust quotas during a field campaign.
//
// # HTTP Endpoints
//
//   - GET /tasks              : the task catalog.
//   - GET /tasks/requirements : per-task requirement rows.
package tasks
