// Package price implements LLM-backed market price estimation: a structured
// prompt over all known property facts, tolerant JSON parsing of the
// response, and per-listing-type sanity bounds on the returned figure.
package price

import (
	"strconv"
	"strings"

	"github.com/homescribe/listinggen/constants"
	"github.com/homescribe/listinggen/internal/entity"
	"github.com/homescribe/listinggen/internal/llm"
	"github.com/homescribe/listinggen/internal/regions"
)

// Default sampling temperature. Lower than content generation: estimates
// should be data-driven and repeatable, not creative.
const Temperature float32 = 0.4

// BuildPrompt lays out every known fact about the property and asks for a
// numeric market-price estimate with a short rationale. The caller must have
// checked that the structured facts (property type, bedrooms, bathrooms,
// sqft) are present.
func BuildPrompt(state *entity.ListingState) string {
	req := state.Request
	listingType, ok := constants.CanonicalizeListingType(req.ListingType)
	region, _ := constants.CanonicalizeRegion(req.Region)
	cfg := regions.ConfigFor(req.Region)

	displayType := strings.ToUpper(strings.TrimSpace(req.ListingType))
	if ok {
		displayType = strings.ToUpper(string(listingType))
	}

	parts := make([]string, 0, 48)
	parts = append(parts,
		"You are a real estate price estimation expert. Predict the market price for this property.",
		"",
		"=== PROPERTY DETAILS ===",
		"Address: "+req.Address,
		"Property Type: "+req.PropertyType,
	)
	if req.Bedrooms != nil {
		parts = append(parts, "Bedrooms: "+strconv.Itoa(*req.Bedrooms))
	}
	if req.Bathrooms != nil {
		parts = append(parts, "Bathrooms: "+llm.FormatBathrooms(*req.Bathrooms))
	}
	if req.Sqft != nil {
		parts = append(parts, "Square Footage: "+llm.FormatCount(*req.Sqft)+" sqft")
	}
	parts = append(parts,
		"Listing Type: "+displayType,
		"Region: "+string(region),
		"",
	)

	if state.Enrichment != nil {
		var location []string
		if state.Enrichment.ZipCode != "" {
			location = append(location, "ZIP Code: "+state.Enrichment.ZipCode)
		}
		if state.Enrichment.Neighborhood != "" {
			location = append(location, "Neighborhood: "+state.Enrichment.Neighborhood)
		}
		if len(location) > 0 {
			parts = append(parts, "=== LOCATION CONTEXT ===")
			parts = append(parts, location...)
			parts = append(parts, "")
		}

		if len(state.Enrichment.Landmarks) > 0 {
			parts = append(parts, "=== NEARBY LANDMARKS ===")
			for _, landmark := range state.Enrichment.Landmarks {
				parts = append(parts, "- "+landmark)
			}
			parts = append(parts, "")
		}
	}

	parts = append(parts, llm.AmenitySection(state.Enrichment, "=== AMENITIES ===")...)
	parts = append(parts, llm.QualitySection(state.Enrichment, "=== NEIGHBORHOOD QUALITY ===")...)

	parts = append(parts,
		"=== INSTRUCTIONS ===",
		"Analyze all provided information and predict the market price for this property.",
		"",
		"Consider:",
		"  • Property size and features (bedrooms, bathrooms, square footage)",
		"  • Location desirability (neighborhood, ZIP code, landmarks)",
		"  • Nearby amenities (schools, parks, transportation, shopping)",
		"  • Neighborhood quality (safety, crime rates, quality of life)",
		"  • Comparable properties in the area",
		"  • Market trends for the region",
		"",
	)

	if listingType == constants.ListingTypeRent {
		parts = append(parts,
			"For RENTAL properties:",
			"  • Predict monthly rental price in "+cfg.Currency,
			"  • Consider rental market rates for similar properties",
			"  • Factor in location convenience and amenities",
		)
	} else {
		parts = append(parts,
			"For SALE properties:",
			"  • Predict total sale price in "+cfg.Currency,
			"  • Consider recent sales of comparable properties",
			"  • Factor in property value and investment potential",
		)
	}

	parts = append(parts,
		"",
		"=== OUTPUT FORMAT ===",
		"Return ONLY valid JSON (no markdown, no code blocks, no extra text):",
		"",
		"{",
		`  "predicted_price": 500000.0,`,
		`  "reasoning": "Brief 1-2 sentence explanation of the price prediction"`,
		"}",
		"",
		"IMPORTANT:",
		"  • predicted_price: Numeric value in "+cfg.Currency+" (float)",
		"  • reasoning: 1-2 sentences explaining the prediction",
		"  • Return ONLY the JSON object, no other text",
	)

	return strings.Join(parts, "\n")
}
