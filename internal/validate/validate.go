// Package validate implements the business-rule checks on a listing request:
// required fields, value ranges, and region applicability of the money
// fields. Safety checks (injection, moderation) live in the guardrails
// package, not here.
package validate

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/homescribe/listinggen/constants"
	"github.com/homescribe/listinggen/internal/entity"
	"github.com/homescribe/listinggen/internal/regions"
)

// Asking-price bounds, in major currency units.
const (
	minPrice = 0.01
	maxPrice = 999_999_999.99
)

// maxPriceDisplay must stay in sync with maxPrice.
const maxPriceDisplay = "999,999,999.99"

// Fields checks every business rule over the request and returns the
// violations in a stable order. An empty result means the request passed.
func Fields(req *entity.PropertyInput) []string {
	var violations []string

	if msg := checkAddress(req.Address); msg != "" {
		violations = append(violations, msg)
	}
	if msg := checkListingType(req.ListingType); msg != "" {
		violations = append(violations, msg)
	}
	if msg := checkPrice(req.Price); msg != "" {
		violations = append(violations, msg)
	}
	if msg := checkNotes(req.Notes); msg != "" {
		violations = append(violations, msg)
	}

	return append(violations, checkRegionFields(req)...)
}

// checkAddress accepts addresses with or without street numbers; building
// names like "Mayfair Residency, Business Bay" are valid. A single token is
// rejected because it is almost never a resolvable address.
func checkAddress(address string) string {
	if address == "" {
		return "address is required"
	}

	trimmed := strings.TrimSpace(address)
	if trimmed == "" {
		return "address cannot be empty"
	}
	if utf8.RuneCountInString(trimmed) < 5 {
		return "address is too short (minimum 5 characters)"
	}

	hasAlphanumeric := strings.ContainsFunc(trimmed, func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsDigit(r)
	})
	if !hasAlphanumeric {
		return "address must contain letters or numbers"
	}

	if len(strings.Fields(trimmed)) < 2 {
		return "address must contain at least 2 words"
	}

	return ""
}

// checkListingType requires an exact (case-insensitive) listing type.
// Synonym mapping ("rental", "for sale") is a caller-surface concern and
// happens before the pipeline sees the request.
func checkListingType(listingType string) string {
	if listingType == "" {
		return "listing_type is required"
	}

	normalized := strings.ToLower(strings.TrimSpace(listingType))
	for _, valid := range constants.ListingTypesAsStringSlice() {
		if normalized == valid {
			return ""
		}
	}
	return fmt.Sprintf("listing_type must be one of %v, got '%s'", constants.ListingTypesAsStringSlice(), listingType)
}

func checkPrice(price *float64) string {
	if price == nil {
		return "price is required"
	}
	if *price < minPrice {
		return fmt.Sprintf("price must be at least $%.2f", minPrice)
	}
	if *price > maxPrice {
		return "price exceeds maximum value of $" + maxPriceDisplay
	}
	return ""
}

func checkNotes(notes string) string {
	if notes != "" && strings.TrimSpace(notes) == "" {
		return "notes cannot be empty if provided"
	}
	return ""
}

// checkRegionFields validates the optional money fields, but only the ones
// applicable to the request's (region, listing_type) pair; non-applicable
// fields are ignored entirely. Zero is permitted, negative is not.
func checkRegionFields(req *entity.PropertyInput) []string {
	listingType, ok := constants.CanonicalizeListingType(req.ListingType)
	if !ok {
		return nil
	}

	values := map[string]*float64{
		regions.FieldSecurityDeposit: req.SecurityDeposit,
		regions.FieldHOAFees:         req.HOAFees,
		regions.FieldPropertyTaxes:   req.PropertyTaxes,
		regions.FieldCouncilTax:      req.CouncilTax,
		regions.FieldRates:           req.Rates,
		regions.FieldStrataFees:      req.StrataFees,
	}

	var violations []string
	for _, field := range regions.ApplicableFields(req.Region, listingType) {
		value, isNumeric := values[field]
		if !isNumeric || value == nil {
			continue
		}
		if *value < 0 {
			violations = append(violations, fmt.Sprintf("%s cannot be negative", field))
		}
	}
	return violations
}
