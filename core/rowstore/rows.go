package rowstore

import (
	"encoding/json"
	"fmt"
	"strings"

	"collector-stats/core/utils"
)

// Row is a single loosely-keyed record from a source table. Column names vary
// between deployments ("collector" vs "name", "hours" vs "hrs"), so callers
// read cells through the accessor helpers with a list of accepted keys.
type Row map[string]any

// DecodeRows decodes a row-store data payload into a slice of rows.
// A nil payload decodes to an empty slice.
func DecodeRows(data json.RawMessage) ([]Row, error) {
	if len(data) == 0 {
		return []Row{}, nil
	}
	var rows []Row
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, &MalformedError{Err: fmt.Errorf("decoding rows: %w", err)}
	}
	return rows, nil
}

// cell returns the first present cell among the accepted keys.
// Key matching is case-insensitive because sheet headers are hand-typed.
func (r Row) cell(keys ...string) (any, bool) {
	for _, key := range keys {
		if v, ok := r[key]; ok {
			return v, true
		}
	}
	for _, key := range keys {
		for k, v := range r {
			if strings.EqualFold(k, key) {
				return v, true
			}
		}
	}
	return nil, false
}

// String returns the first non-empty string cell among the accepted keys.
func (r Row) String(keys ...string) string {
	if v, ok := r.cell(keys...); ok {
		return strings.TrimSpace(utils.ToString(v))
	}
	return ""
}

// Float returns the first present cell among the accepted keys as a float64.
func (r Row) Float(keys ...string) float64 {
	if v, ok := r.cell(keys...); ok {
		return utils.ToFloat64(v)
	}
	return 0
}

// Int returns the first present cell among the accepted keys as an int.
func (r Row) Int(keys ...string) int {
	if v, ok := r.cell(keys...); ok {
		return utils.ToInt(v)
	}
	return 0
}

// Bool returns the first present cell among the accepted keys as a bool.
func (r Row) Bool(keys ...string) bool {
	if v, ok := r.cell(keys...); ok {
		return utils.ToBool(v)
	}
	return false
}
