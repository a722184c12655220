package constants

import (
	"strings"
)

type ListingType string

const (
	ListingTypeSale ListingType = "sale"
	ListingTypeRent ListingType = "rent"
)

var allListingTypes = []ListingType{
	ListingTypeSale,
	ListingTypeRent,
}

func ListingTypesAsStringSlice() []string {
	result := make([]string, len(allListingTypes))
	for i, lt := range allListingTypes {
		result[i] = string(lt)
	}
	return result
}

func CanonicalizeListingType(input string) (ListingType, bool) {
	if input == "" {
		return "", false
	}

	normalized := strings.ToLower(strings.TrimSpace(input))

	// synonyms map
	synonyms := map[string]ListingType{
		"sell":      ListingTypeSale,
		"selling":   ListingTypeSale,
		"for sale":  ListingTypeSale,
		"rental":    ListingTypeRent,
		"for rent":  ListingTypeRent,
		"lease":     ListingTypeRent,
		"letting":   ListingTypeRent,
	}

	if lt, ok := synonyms[normalized]; ok {
		return lt, true
	}

	for _, lt := range allListingTypes {
		if normalized == string(lt) {
			return lt, true
		}
	}

	return "", false
}
