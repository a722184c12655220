package llm

import (
	"strconv"
	"strings"

	"github.com/homescribe/listinggen/constants"
	"github.com/homescribe/listinggen/internal/entity"
	"github.com/homescribe/listinggen/internal/regions"
)

// BuildListingPrompt merges everything known about the property (request
// fields, normalized text, enrichment facts) into one structured prompt
// asking for {title, description, price_block} as JSON. Normalized text wins
// over raw input when present; money lines carry the region's currency
// symbol.
func BuildListingPrompt(state *entity.ListingState) string {
	req := state.Request
	listingType, ok := constants.CanonicalizeListingType(req.ListingType)
	cfg := regions.ConfigFor(req.Region)

	displayType := strings.ToUpper(strings.TrimSpace(req.ListingType))
	if ok {
		displayType = strings.ToUpper(string(listingType))
	}

	address := req.Address
	notes := req.Notes
	if state.Normalized != nil {
		if state.Normalized.Address != "" {
			address = state.Normalized.Address
		}
		if state.Normalized.Notes != "" {
			notes = state.Normalized.Notes
		}
	}

	parts := make([]string, 0, 64)
	parts = append(parts,
		"You are a professional real estate listing writer. Generate a property listing based on the following information.",
		"",
		"=== PROPERTY INFORMATION ===",
		"Address: "+address,
		"Listing Type: "+displayType,
	)
	if req.PropertyType != "" {
		parts = append(parts, "Property Type: "+req.PropertyType)
	}
	if req.Bedrooms != nil {
		parts = append(parts, "Bedrooms: "+strconv.Itoa(*req.Bedrooms))
	}
	if req.Bathrooms != nil {
		parts = append(parts, "Bathrooms: "+FormatBathrooms(*req.Bathrooms))
	}
	if req.Sqft != nil {
		parts = append(parts, "Square Footage: "+FormatCount(*req.Sqft)+" sqft")
	}
	parts = append(parts, "Region: "+cfg.Name)
	if req.Price != nil {
		parts = append(parts, "Asking Price: "+FormatMoney(cfg.Symbol, *req.Price))
	}
	parts = append(parts, applicableFieldLines(&req, cfg, listingType)...)
	parts = append(parts, "")

	if notes != "" {
		parts = append(parts,
			"=== PROPERTY FEATURES ===",
			notes,
			"",
		)
	}

	parts = append(parts, locationSection(state.Enrichment)...)
	parts = append(parts, landmarkSection(&req, state.Enrichment)...)
	parts = append(parts, AmenitySection(state.Enrichment, "=== KEY AMENITIES ===")...)
	parts = append(parts, QualitySection(state.Enrichment, "=== NEIGHBORHOOD QUALITY ===")...)

	parts = append(parts,
		"=== INSTRUCTIONS ===",
		"Generate a professional property listing with the following requirements:",
		"",
		"1. TITLE:",
		"   - Create a compelling, SEO-friendly title (max 100 characters)",
		"   - Include key features (bedrooms, bathrooms, square footage if mentioned)",
		"   - Mention location/neighborhood if available",
		"   - Example: 'Beautiful 3BR/2BA Home in Downtown Manhattan'",
		"",
		"2. DESCRIPTION:",
		"   - Write professional, engaging prose (2-4 paragraphs)",
		"   - Highlight key features from the property information",
		"   - Mention location benefits (neighborhood, landmarks, amenities)",
		"   - Use descriptive, appealing language",
		"   - DO NOT include price information in the description",
		"   - Make it SEO-friendly and suitable for real estate websites",
		"",
		"3. PRICE_BLOCK:",
	)
	parts = append(parts, priceBlockInstructions(&req, cfg, listingType)...)
	parts = append(parts,
		"",
		"=== IMPORTANT GUIDELINES ===",
		"- Be factual and accurate - only use information provided",
		"- Do NOT invent or make up any details",
		"- Do NOT include price in the description (only in price_block)",
		"- Keep content professional and suitable for real estate websites",
		"- Ensure content is property listing-related only",
		"",
		"=== OUTPUT FORMAT ===",
		"Return ONLY valid JSON with the following structure:",
		"{",
		`  "title": "Your generated title here",`,
		`  "description": "Your generated description here",`,
		`  "price_block": "Your formatted price block here"`,
		"}",
		"",
		"Do not include any text before or after the JSON. Return only the JSON object.",
	)

	return strings.Join(parts, "\n")
}

// applicableFieldLines renders the (region, listing_type)-applicable request
// fields that carry a value, labeled per the region table.
func applicableFieldLines(req *entity.PropertyInput, cfg regions.Config, listingType constants.ListingType) []string {
	money := map[string]*float64{
		regions.FieldSecurityDeposit: req.SecurityDeposit,
		regions.FieldHOAFees:         req.HOAFees,
		regions.FieldPropertyTaxes:   req.PropertyTaxes,
		regions.FieldCouncilTax:      req.CouncilTax,
		regions.FieldRates:           req.Rates,
		regions.FieldStrataFees:      req.StrataFees,
	}

	var lines []string
	for _, field := range regions.ApplicableFields(req.Region, listingType) {
		fc, ok := regions.FieldFor(req.Region, field, listingType)
		if !ok {
			continue
		}
		switch field {
		case regions.FieldBillingCycle:
			if req.BillingCycle != "" {
				lines = append(lines, fc.Label+": "+req.BillingCycle)
			}
		case regions.FieldLeaseTerm:
			if req.LeaseTerm != "" {
				lines = append(lines, fc.Label+": "+req.LeaseTerm)
			}
		default:
			if v := money[field]; v != nil {
				lines = append(lines, fc.Label+": "+FormatMoney(cfg.Symbol, *v))
			}
		}
	}
	return lines
}

func locationSection(enrichment *entity.EnrichmentData) []string {
	if enrichment == nil {
		return nil
	}
	var info []string
	if enrichment.ZipCode != "" {
		info = append(info, "ZIP Code: "+enrichment.ZipCode)
	}
	if enrichment.Neighborhood != "" {
		info = append(info, "Neighborhood: "+enrichment.Neighborhood)
	}
	if len(info) == 0 {
		return nil
	}
	return append([]string{"=== LOCATION & NEIGHBORHOOD ==="}, append(info, "")...)
}

func landmarkSection(req *entity.PropertyInput, enrichment *entity.EnrichmentData) []string {
	landmarks := req.Landmarks
	if enrichment != nil && len(enrichment.Landmarks) > 0 {
		landmarks = enrichment.Landmarks
	}
	if len(landmarks) == 0 {
		return nil
	}
	lines := []string{"=== NEARBY LANDMARKS ==="}
	for _, landmark := range landmarks {
		lines = append(lines, "- "+landmark)
	}
	return append(lines, "")
}

// AmenitySection renders KeyAmenities in the canonical category order so the
// prompt is deterministic.
func AmenitySection(enrichment *entity.EnrichmentData, header string) []string {
	if enrichment == nil || len(enrichment.KeyAmenities) == 0 {
		return nil
	}
	lines := []string{header}
	added := false
	for _, category := range entity.AmenityCategories {
		items := enrichment.KeyAmenities[category]
		if len(items) == 0 {
			continue
		}
		lines = append(lines, capitalizeFirst(category)+":")
		for _, item := range items {
			lines = append(lines, "  - "+item)
		}
		added = true
	}
	if !added {
		return nil
	}
	return append(lines, "")
}

func QualitySection(enrichment *entity.EnrichmentData, header string) []string {
	if enrichment == nil || enrichment.Quality == nil {
		return nil
	}
	var info []string
	if enrichment.Quality.CrimeInfo != "" {
		info = append(info, "Crime & Safety: "+enrichment.Quality.CrimeInfo)
	}
	if enrichment.Quality.QualityOfLife != "" {
		info = append(info, "Quality of Life: "+enrichment.Quality.QualityOfLife)
	}
	if enrichment.Quality.SafetyInfo != "" {
		info = append(info, "Safety Information: "+enrichment.Quality.SafetyInfo)
	}
	if len(info) == 0 {
		return nil
	}
	return append([]string{header}, append(info, "")...)
}

func priceBlockInstructions(req *entity.PropertyInput, cfg regions.Config, listingType constants.ListingType) []string {
	var lines []string
	if listingType == constants.ListingTypeRent {
		lines = append(lines, "   - Format as: '"+cfg.Symbol+"X,XXX/month' or '"+cfg.Symbol+"X,XXX/week' (based on billing_cycle)")
		if req.SecurityDeposit != nil {
			if fc, ok := regions.FieldFor(req.Region, regions.FieldSecurityDeposit, listingType); ok {
				lines = append(lines, "   - Include "+fc.Label+" if provided: '"+fc.Label+": "+FormatMoney(cfg.Symbol, *req.SecurityDeposit)+"'")
			}
		}
		return lines
	}

	lines = append(lines, "   - Format as: '"+cfg.Symbol+"X,XXX,XXX'")
	money := map[string]*float64{
		regions.FieldHOAFees:       req.HOAFees,
		regions.FieldPropertyTaxes: req.PropertyTaxes,
		regions.FieldCouncilTax:    req.CouncilTax,
		regions.FieldRates:         req.Rates,
		regions.FieldStrataFees:    req.StrataFees,
	}
	for _, field := range regions.ApplicableFields(req.Region, listingType) {
		v := money[field]
		if v == nil {
			continue
		}
		fc, ok := regions.FieldFor(req.Region, field, listingType)
		if !ok {
			continue
		}
		lines = append(lines, "   - Include "+fc.Label+" if provided: '"+fc.Label+": "+FormatMoney(cfg.Symbol, *v)+unitSuffix(fc.Unit)+"'")
	}
	return lines
}

// unitSuffix extracts the cadence from a unit like "USD/month" -> "/month".
func unitSuffix(unit string) string {
	if _, suffix, ok := strings.Cut(unit, "/"); ok {
		return "/" + suffix
	}
	return ""
}

func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
