package reconcile

import "strings"

// ClassifyRegion derives the coarse region tag from free-text site fields.
// The match is a case-insensitive substring check for "SF"; anything else is
// MX by default, not by positive match.
func ClassifyRegion(siteText string) Region {
	if strings.Contains(strings.ToUpper(siteText), string(RegionSF)) {
		return RegionSF
	}
	return RegionMX
}
