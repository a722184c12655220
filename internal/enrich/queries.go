package enrich

import (
	"regexp"
	"strings"
)

var reZipCode = regexp.MustCompile(`\b(\d{5})(?:-\d{4})?\b`)

// BuildAmenitiesQuery is the first of the two searches: one combined query
// covering every amenity category, built from the address alone.
func BuildAmenitiesQuery(address string) string {
	return strings.TrimSpace(address + " schools shopping amenities supermarkets parks subway transportation near")
}

// BuildQualityQuery is the second search: crime, safety, and
// quality-of-life statistics, built from the address alone.
func BuildQualityQuery(address string) string {
	return strings.TrimSpace(address + " crime rates quality of life safety neighborhood statistics")
}

// ParseZipCode pulls a US ZIP code out of the address itself; it is never
// searched for. The last match wins: leading house numbers can look like
// ZIPs, the trailing one is the real code.
func ParseZipCode(address string) string {
	matches := reZipCode.FindAllStringSubmatch(address, -1)
	if len(matches) == 0 {
		return ""
	}
	return matches[len(matches)-1][1]
}
