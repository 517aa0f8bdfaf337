package rowstore

import "encoding/json"

// Actions understood by the row-store API. Each read action maps to one
// resource class on the caching side.
const (
	ActionWorkLogs         = "getWorkLogs"
	ActionFieldReports     = "getFieldReports"
	ActionRoster           = "getRoster"
	ActionTaskCatalog      = "getTaskCatalog"
	ActionTaskRequirements = "getTaskRequirements"
	ActionCollector        = "getCollector"
	ActionAppendWorkLog    = "appendWorkLog"
)

// Request describes a single logical call against the row store.
type Request struct {
	// Action is the row-store operation name (see Action* constants).
	Action string

	// Params are optional string key-value filters appended to the query.
	Params map[string]string

	// Body is an optional payload. When set the request is sent as a POST
	// with a JSON body (write path); otherwise a GET is issued.
	Body any
}

// envelope is the wire format every row-store response is wrapped in.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
	Message string          `json:"message,omitempty"`
}

// Result is the payload of a successful row-store call.
type Result struct {
	// Data is the raw array or object payload. May be nil for write actions.
	Data json.RawMessage

	// Message is an optional human-readable status (mostly on writes).
	Message string
}
