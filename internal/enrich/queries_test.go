package enrich

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildQueries(t *testing.T) {
	address := "350 5th Ave, New York, NY 10118"

	assert.Equal(t,
		"350 5th Ave, New York, NY 10118 schools shopping amenities supermarkets parks subway transportation near",
		BuildAmenitiesQuery(address))
	assert.Equal(t,
		"350 5th Ave, New York, NY 10118 crime rates quality of life safety neighborhood statistics",
		BuildQualityQuery(address))
}

func TestParseZipCode(t *testing.T) {
	tests := []struct {
		name    string
		address string
		want    string
	}{
		{"plain zip", "123 Main St, New York, NY 10001", "10001"},
		{"zip plus four keeps five digits", "123 Main St, New York, NY 10001-4356", "10001"},
		{"last match wins", "90210 Quincy St, Brooklyn, NY 11238", "11238"},
		{"no zip", "10 Downing Street, London", ""},
		{"four digits ignored", "Unit 4521, Sydney NSW", ""},
		{"six digit run ignored", "Plot 100013, Long Road", ""},
		{"empty address", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseZipCode(tt.address))
		})
	}
}
