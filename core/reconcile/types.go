package reconcile

// Region is the coarse region tag derived from a row's site text.
type Region string

const (
	// RegionSF is matched positively from the site text.
	RegionSF Region = "SF"
	// RegionMX is the default when no positive match is found.
	RegionMX Region = "MX"
)

// SourceRow is a single record from either source table. Rows are read-only
// inputs; the row-store collaborator owns them.
type SourceRow struct {
	// Collector is the explicit collector name, when the row carries one.
	Collector string `json:"collector"`

	// Identifier is the raw row identifier: an explicit name or a rig id.
	Identifier string `json:"identifier"`

	// Site is the free-text site field (primary source) or a date string
	// (secondary source, which carries no site information).
	Site string `json:"site"`

	// Hours is the measured hours value for this row.
	Hours float64 `json:"hours"`
}

// RigMap maps a rig id to the canonical collector name operating it. It is
// built fresh per reconciliation pass and used only as a fallback when a row
// lacks an explicit name.
type RigMap map[string]string

// RosterPair is one (canonicalName, rigId) association from the roster.
type RosterPair struct {
	CanonicalName string
	RigID         string
}

// Aggregate accumulates one collector's reconciled totals during a pass.
// Hours and counts only increase while folding; the region can move MX to SF
// but never back (sticky SF).
type Aggregate struct {
	Name           string  `json:"name"`
	Region         Region  `json:"region"`
	HoursLogged    float64 `json:"hours_logged"`
	TasksCompleted int     `json:"tasks_completed"`
	TasksAssigned  int     `json:"tasks_assigned"`
}

// LeaderboardEntry is one ranked row of the final result. Rank is 1-based and
// dense; CompletionRate is an integer percentage.
type LeaderboardEntry struct {
	Rank           int     `json:"rank"`
	CollectorName  string  `json:"collector_name"`
	HoursLogged    float64 `json:"hours_logged"`
	TasksCompleted int     `json:"tasks_completed"`
	TasksAssigned  int     `json:"tasks_assigned"`
	CompletionRate int     `json:"completion_rate"`
	Region         Region  `json:"region"`
}
