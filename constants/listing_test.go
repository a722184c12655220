package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeListingType(t *testing.T) {
	tests := []struct {
		input string
		want  ListingType
		ok    bool
	}{
		{"sale", ListingTypeSale, true},
		{"SALE", ListingTypeSale, true},
		{"  Rent ", ListingTypeRent, true},
		{"rental", ListingTypeRent, true},
		{"for sale", ListingTypeSale, true},
		{"lease", ListingTypeRent, true},
		{"", "", false},
		{"auction", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := CanonicalizeListingType(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestListingTypesAsStringSlice(t *testing.T) {
	assert.Equal(t, []string{"sale", "rent"}, ListingTypesAsStringSlice())
}
