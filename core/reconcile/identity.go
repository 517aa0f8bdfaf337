package reconcile

import "strings"

// BuildRigMap scans roster pairs into a rig-to-name lookup. On duplicate rig
// ids the last-seen mapping wins, matching how the roster sheet is maintained
// (newer rows are appended below older ones).
func BuildRigMap(pairs []RosterPair) RigMap {
	rigs := make(RigMap, len(pairs))
	for _, p := range pairs {
		rig := strings.TrimSpace(p.RigID)
		name := strings.TrimSpace(p.CanonicalName)
		if rig == "" || name == "" {
			continue
		}
		rigs[rig] = name
	}
	return rigs
}

// ResolveIdentity maps a raw row to its canonical collector name.
//
// Precedence: the explicit name on the row, then the rig lookup for the raw
// identifier, then the raw identifier itself verbatim. The second return is
// false only when all three are empty; such rows are skipped, not fatal.
func ResolveIdentity(row SourceRow, rigs RigMap) (string, bool) {
	if name := strings.TrimSpace(row.Collector); name != "" {
		return name, true
	}

	identifier := strings.TrimSpace(row.Identifier)
	if identifier == "" {
		return "", false
	}
	if name, ok := rigs[identifier]; ok {
		return name, true
	}
	return identifier, true
}
