package leaderboard

import (
	"context"

	"collector-stats/core/reconcile"
	"collector-stats/core/rowstore"
)

// fetchRows issues one read action and decodes the payload into loose rows.
func fetchRows(ctx context.Context, client rowstore.Client, action string) ([]rowstore.Row, error) {
	result, err := client.Fetch(ctx, rowstore.Request{Action: action})
	if err != nil {
		return nil, err
	}
	return rowstore.DecodeRows(result.Data)
}

// mapWorkLogs converts primary-source rows. The primary table carries an
// explicit collector column on some rows, a bare rig id on others, and a
// free-text site column.
func mapWorkLogs(rows []rowstore.Row) []reconcile.SourceRow {
	out := make([]reconcile.SourceRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, reconcile.SourceRow{
			Collector:  row.String("collector", "name"),
			Identifier: row.String("identifier", "rig", "rig_id", "id"),
			Site:       row.String("site", "location"),
			Hours:      row.Float("hours", "hrs"),
		})
	}
	return out
}

// mapFieldReports converts secondary-source rows. Field reports carry no site
// column; the date cell occupies its position and is ignored for regions.
func mapFieldReports(rows []rowstore.Row) []reconcile.SourceRow {
	out := make([]reconcile.SourceRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, reconcile.SourceRow{
			Collector:  row.String("collector", "name"),
			Identifier: row.String("identifier", "rig", "rig_id", "id"),
			Hours:      row.Float("hours", "total_hours", "hrs"),
		})
	}
	return out
}

// mapRoster converts roster rows into (canonical name, rig id) pairs.
func mapRoster(rows []rowstore.Row) []reconcile.RosterPair {
	out := make([]reconcile.RosterPair, 0, len(rows))
	for _, row := range rows {
		out = append(out, reconcile.RosterPair{
			CanonicalName: row.String("name", "collector", "canonical_name"),
			RigID:         row.String("rig", "rig_id", "identifier", "id"),
		})
	}
	return out
}
