package price

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/homescribe/listinggen/internal/entity"
)

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func saleState() *entity.ListingState {
	return &entity.ListingState{
		Request: entity.PropertyInput{
			Address:      "456 Oak Avenue, Austin, TX 78701",
			ListingType:  "sale",
			Region:       "US",
			PropertyType: "House",
			Bedrooms:     intPtr(3),
			Bathrooms:    floatPtr(2.5),
			Sqft:         intPtr(1800),
			Price:        floatPtr(650000),
		},
		Normalized: &entity.NormalizedInput{
			Address: "456 oak avenue, austin, tx 78701",
		},
		Enrichment: &entity.EnrichmentData{
			ZipCode:      "78701",
			Neighborhood: "Downtown Austin",
			Landmarks:    []string{"Zilker Park", "Texas State Capitol"},
			KeyAmenities: map[string][]string{
				"schools": {"Austin High School"},
				"parks":   {"Zilker Park"},
			},
			Quality: &entity.NeighborhoodQuality{
				CrimeInfo: "Crime rates below the city average.",
			},
		},
	}
}

func TestBuildPromptSale(t *testing.T) {
	prompt := BuildPrompt(saleState())

	wantLines := []string{
		"You are a real estate price estimation expert. Predict the market price for this property.",
		"=== PROPERTY DETAILS ===",
		"Address: 456 Oak Avenue, Austin, TX 78701",
		"Property Type: House",
		"Bedrooms: 3",
		"Bathrooms: 2.5",
		"Square Footage: 1,800 sqft",
		"Listing Type: SALE",
		"Region: US",
		"=== LOCATION CONTEXT ===",
		"ZIP Code: 78701",
		"Neighborhood: Downtown Austin",
		"=== NEARBY LANDMARKS ===",
		"- Zilker Park",
		"- Texas State Capitol",
		"=== AMENITIES ===",
		"Schools:",
		"  - Austin High School",
		"=== NEIGHBORHOOD QUALITY ===",
		"Crime & Safety: Crime rates below the city average.",
		"=== INSTRUCTIONS ===",
		"Analyze all provided information and predict the market price for this property.",
		"  • Property size and features (bedrooms, bathrooms, square footage)",
		"  • Market trends for the region",
		"For SALE properties:",
		"  • Predict total sale price in USD",
		"=== OUTPUT FORMAT ===",
		"Return ONLY valid JSON (no markdown, no code blocks, no extra text):",
		`  "predicted_price": 500000.0,`,
		`  "reasoning": "Brief 1-2 sentence explanation of the price prediction"`,
		"  • predicted_price: Numeric value in USD (float)",
		"  • Return ONLY the JSON object, no other text",
	}
	for _, line := range wantLines {
		assert.Contains(t, prompt, line)
	}

	assert.NotContains(t, prompt, "For RENTAL properties:")
	// Estimation sees the address as submitted, not the normalized form.
	assert.NotContains(t, prompt, "456 oak avenue")
}

func TestBuildPromptRentUK(t *testing.T) {
	state := saleState()
	state.Request.ListingType = "rent"
	state.Request.Region = "UK"

	prompt := BuildPrompt(state)

	assert.Contains(t, prompt, "Listing Type: RENT")
	assert.Contains(t, prompt, "Region: UK")
	assert.Contains(t, prompt, "For RENTAL properties:")
	assert.Contains(t, prompt, "  • Predict monthly rental price in GBP")
	assert.Contains(t, prompt, "  • predicted_price: Numeric value in GBP (float)")
	assert.NotContains(t, prompt, "For SALE properties:")
}

func TestBuildPromptWholeBathrooms(t *testing.T) {
	state := saleState()
	state.Request.Bathrooms = floatPtr(2)

	assert.Contains(t, BuildPrompt(state), "Bathrooms: 2\n")
}

func TestBuildPromptWithoutEnrichment(t *testing.T) {
	state := saleState()
	state.Enrichment = nil

	prompt := BuildPrompt(state)

	assert.NotContains(t, prompt, "=== LOCATION CONTEXT ===")
	assert.NotContains(t, prompt, "=== NEARBY LANDMARKS ===")
	assert.NotContains(t, prompt, "=== AMENITIES ===")
	assert.NotContains(t, prompt, "=== NEIGHBORHOOD QUALITY ===")
	assert.Contains(t, prompt, "=== INSTRUCTIONS ===")
}

func TestBuildPromptSectionOrder(t *testing.T) {
	prompt := BuildPrompt(saleState())

	details := strings.Index(prompt, "=== PROPERTY DETAILS ===")
	location := strings.Index(prompt, "=== LOCATION CONTEXT ===")
	landmarks := strings.Index(prompt, "=== NEARBY LANDMARKS ===")
	amenities := strings.Index(prompt, "=== AMENITIES ===")
	quality := strings.Index(prompt, "=== NEIGHBORHOOD QUALITY ===")
	instructions := strings.Index(prompt, "=== INSTRUCTIONS ===")
	output := strings.Index(prompt, "=== OUTPUT FORMAT ===")

	assert.True(t, details < location)
	assert.True(t, location < landmarks)
	assert.True(t, landmarks < amenities)
	assert.True(t, amenities < quality)
	assert.True(t, quality < instructions)
	assert.True(t, instructions < output)
}
