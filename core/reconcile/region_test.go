package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyRegion(t *testing.T) {
	tests := []struct {
		site     string
		expected Region
	}{
		{"SF-Lab", RegionSF},
		{"sf west yard", RegionSF},
		{"Transfer Station SF", RegionSF},
		{"Site C-12", RegionMX},
		{"MX-1", RegionMX},
		{"", RegionMX},
		// MX is the default, not a positive match on any token.
		{"somewhere else entirely", RegionMX},
	}

	for _, tt := range tests {
		t.Run(tt.site, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyRegion(tt.site))
		})
	}
}
