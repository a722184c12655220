package llm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homescribe/listinggen/internal/entity"
)

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func saleState() *entity.ListingState {
	return &entity.ListingState{
		Request: entity.PropertyInput{
			Address:       "123  main st,new york, NY 10001",
			ListingType:   "sale",
			Region:        "US",
			PropertyType:  "Apartment",
			Bedrooms:      intPtr(2),
			Bathrooms:     floatPtr(1.0),
			Sqft:          intPtr(1200),
			Price:         floatPtr(450000),
			Notes:         "beautiful apartment  with modern kitchen",
			HOAFees:       floatPtr(350),
			PropertyTaxes: floatPtr(8000),
		},
		Normalized: &entity.NormalizedInput{
			Address: "123 main st, new york, NY 10001",
			Notes:   "beautiful apartment with modern kitchen",
		},
		Enrichment: &entity.EnrichmentData{
			ZipCode:      "10001",
			Neighborhood: "Chelsea",
			Landmarks:    []string{"Madison Square Park"},
			KeyAmenities: map[string][]string{
				"schools":        {"PS 11"},
				"transportation": {"A Line", "C Line"},
			},
			Quality: &entity.NeighborhoodQuality{
				CrimeInfo: "low crime area according to recent reports",
			},
		},
	}
}

func TestBuildListingPromptSale(t *testing.T) {
	prompt := BuildListingPrompt(saleState())

	wantLines := []string{
		"=== PROPERTY INFORMATION ===",
		"Address: 123 main st, new york, NY 10001",
		"Listing Type: SALE",
		"Property Type: Apartment",
		"Bedrooms: 2",
		"Bathrooms: 1",
		"Square Footage: 1,200 sqft",
		"Region: United States",
		"Asking Price: $450,000.00",
		"HOA Fees: $350.00",
		"Property Taxes: $8,000.00",
		"=== PROPERTY FEATURES ===",
		"beautiful apartment with modern kitchen",
		"=== LOCATION & NEIGHBORHOOD ===",
		"ZIP Code: 10001",
		"Neighborhood: Chelsea",
		"=== NEARBY LANDMARKS ===",
		"- Madison Square Park",
		"=== KEY AMENITIES ===",
		"Schools:",
		"  - PS 11",
		"Transportation:",
		"  - A Line",
		"=== NEIGHBORHOOD QUALITY ===",
		"Crime & Safety: low crime area according to recent reports",
		"=== INSTRUCTIONS ===",
		"   - DO NOT include price information in the description",
		"   - Format as: '$X,XXX,XXX'",
		"   - Include HOA Fees if provided: 'HOA Fees: $350.00/month'",
		"   - Include Property Taxes if provided: 'Property Taxes: $8,000.00/year'",
		"=== OUTPUT FORMAT ===",
		`  "price_block": "Your formatted price block here"`,
	}
	for _, line := range wantLines {
		assert.Contains(t, prompt, line)
	}

	// raw (unnormalized) input must not leak into the prompt
	assert.NotContains(t, prompt, "123  main st")
}

func TestBuildListingPromptRentUK(t *testing.T) {
	state := &entity.ListingState{
		Request: entity.PropertyInput{
			Address:         "10 Downing Street, London",
			ListingType:     "rent",
			Region:          "UK",
			Price:           floatPtr(2400),
			BillingCycle:    "monthly",
			LeaseTerm:       "12 months",
			SecurityDeposit: floatPtr(2000),
			CouncilTax:      floatPtr(1800),
		},
	}

	prompt := BuildListingPrompt(state)

	wantLines := []string{
		"Listing Type: RENT",
		"Region: United Kingdom",
		"Asking Price: £2,400.00",
		"Council Tax: £1,800.00",
		"Security Deposit: £2,000.00",
		"Billing Cycle: monthly",
		"Lease Term: 12 months",
		"   - Format as: '£X,XXX/month' or '£X,XXX/week' (based on billing_cycle)",
		"   - Include Security Deposit if provided: 'Security Deposit: £2,000.00'",
	}
	for _, line := range wantLines {
		assert.Contains(t, prompt, line)
	}

	// sale-only guidance must not appear on a rental
	assert.NotContains(t, prompt, "Format as: '£X,XXX,XXX'")
}

func TestBuildListingPromptAmenityOrder(t *testing.T) {
	state := saleState()
	state.Enrichment.KeyAmenities = map[string][]string{
		"transportation": {"M Line"},
		"parks":          {"Hudson River Park"},
		"supermarkets":   {"Trader Joe's"},
		"schools":        {"PS 11"},
	}

	prompt := BuildListingPrompt(state)

	idxSchools := strings.Index(prompt, "Schools:")
	idxSupermarkets := strings.Index(prompt, "Supermarkets:")
	idxParks := strings.Index(prompt, "Parks:")
	idxTransportation := strings.Index(prompt, "Transportation:")

	require.True(t, idxSchools > 0)
	assert.Less(t, idxSchools, idxSupermarkets)
	assert.Less(t, idxSupermarkets, idxParks)
	assert.Less(t, idxParks, idxTransportation)
}

func TestBuildListingPromptWithoutEnrichment(t *testing.T) {
	state := saleState()
	state.Enrichment = nil

	prompt := BuildListingPrompt(state)

	assert.NotContains(t, prompt, "=== LOCATION & NEIGHBORHOOD ===")
	assert.NotContains(t, prompt, "=== KEY AMENITIES ===")
	assert.NotContains(t, prompt, "=== NEIGHBORHOOD QUALITY ===")
	assert.Contains(t, prompt, "=== PROPERTY INFORMATION ===")
	assert.Contains(t, prompt, "=== OUTPUT FORMAT ===")
}
