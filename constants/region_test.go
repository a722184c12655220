package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeRegion(t *testing.T) {
	tests := []struct {
		input string
		want  Region
		ok    bool
	}{
		{"US", RegionUS, true},
		{"us", RegionUS, true},
		{"United States", RegionUS, true},
		{"ca", RegionCA, true},
		{"uk", RegionUK, true},
		{"gb", RegionUK, true},
		{"Australia", RegionAU, true},
		{"", RegionUS, false},
		{"FR", RegionUS, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := CanonicalizeRegion(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.ok, ok)
		})
	}
}
