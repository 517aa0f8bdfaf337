package reconcile

// Reconcile merges rows from the two independent source tables into one
// aggregate per canonical identity.
//
// Pass 1 folds the primary source additively: hours accumulate and every row
// counts one completed and one assigned task. The region is set on first
// sighting and can only upgrade MX to SF afterwards.
//
// Pass 2 treats the secondary source as an alternative measurement of the
// same totals, not extra work: for a collector already seen, hours become
// max(existing, secondary) rather than the sum, which would double-count
// overlapping measurements. Unseen collectors are seeded entirely from the
// secondary row; the secondary source carries no site field, so they default
// to MX.
//
// Aggregates are returned in first-sighting order, which downstream ranking
// relies on for stable tie-breaks.
func Reconcile(primary, secondary []SourceRow, rigs RigMap) []Aggregate {
	byName := make(map[string]*Aggregate)
	order := make([]string, 0, len(primary))

	for _, row := range primary {
		name, ok := ResolveIdentity(row, rigs)
		if !ok {
			continue
		}
		region := ClassifyRegion(row.Site)

		agg, seen := byName[name]
		if !seen {
			agg = &Aggregate{Name: name, Region: region}
			byName[name] = agg
			order = append(order, name)
		} else if agg.Region != RegionSF && region == RegionSF {
			agg.Region = RegionSF
		}

		agg.HoursLogged += row.Hours
		agg.TasksCompleted++
		agg.TasksAssigned++
	}

	for _, row := range secondary {
		name, ok := ResolveIdentity(row, rigs)
		if !ok {
			continue
		}

		if agg, seen := byName[name]; seen {
			if row.Hours > agg.HoursLogged {
				agg.HoursLogged = row.Hours
			}
			continue
		}

		byName[name] = &Aggregate{
			Name:           name,
			Region:         RegionMX,
			HoursLogged:    row.Hours,
			TasksCompleted: 1,
			TasksAssigned:  1,
		}
		order = append(order, name)
	}

	aggregates := make([]Aggregate, 0, len(order))
	for _, name := range order {
		aggregates = append(aggregates, *byName[name])
	}
	return aggregates
}
