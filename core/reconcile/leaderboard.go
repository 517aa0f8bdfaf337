package reconcile

import (
	"math"
	"sort"
)

// BuildLeaderboard sorts, ranks, and derives rates from reconciled
// aggregates. The sort is stable on purpose: entries with equal hours keep
// the order the reconciliation pass produced, which preserves source order
// for debugging. Rank is dense and 1-based with no ties collapsed.
func BuildLeaderboard(aggregates []Aggregate) []LeaderboardEntry {
	sorted := make([]Aggregate, len(aggregates))
	copy(sorted, aggregates)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].HoursLogged > sorted[j].HoursLogged
	})

	entries := make([]LeaderboardEntry, 0, len(sorted))
	for i, agg := range sorted {
		entries = append(entries, LeaderboardEntry{
			Rank:           i + 1,
			CollectorName:  agg.Name,
			HoursLogged:    agg.HoursLogged,
			TasksCompleted: agg.TasksCompleted,
			TasksAssigned:  agg.TasksAssigned,
			CompletionRate: completionRate(agg.TasksCompleted, agg.TasksAssigned),
			Region:         agg.Region,
		})
	}
	return entries
}

// completionRate returns the rounded integer percentage of completed over
// assigned tasks, or 0 when nothing was assigned.
func completionRate(completed, assigned int) int {
	if assigned <= 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(assigned) * 100))
}
