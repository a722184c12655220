package constants

import (
	"strings"
)

type Region string

const (
	RegionUS Region = "US"
	RegionCA Region = "CA"
	RegionUK Region = "UK"
	RegionAU Region = "AU"
)

var allRegions = []Region{
	RegionUS,
	RegionCA,
	RegionUK,
	RegionAU,
}

func RegionsAsStringSlice() []string {
	result := make([]string, len(allRegions))
	for i, r := range allRegions {
		result[i] = string(r)
	}
	return result
}

// CanonicalizeRegion resolves a region code or country name to a supported
// region. Unrecognized input falls back to RegionUS.
func CanonicalizeRegion(input string) (Region, bool) {
	if input == "" {
		return RegionUS, false
	}

	normalized := strings.ToLower(strings.TrimSpace(input))

	// synonyms map
	synonyms := map[string]Region{
		"usa":            RegionUS,
		"united states":  RegionUS,
		"canada":         RegionCA,
		"gb":             RegionUK,
		"united kingdom": RegionUK,
		"australia":      RegionAU,
	}

	if r, ok := synonyms[normalized]; ok {
		return r, true
	}

	upper := strings.ToUpper(normalized)
	for _, r := range allRegions {
		if upper == string(r) {
			return r, true
		}
	}

	return RegionUS, false
}
