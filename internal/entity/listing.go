package entity

import (
	"github.com/google/uuid"
)

// PropertyInput is the caller-supplied listing request, immutable once
// accepted. Optional fields are pointers; applicability of the money fields
// depends on (region, listing_type).
type PropertyInput struct {
	Address         string   `json:"address"`
	ListingType     string   `json:"listing_type"`
	Region          string   `json:"region,omitempty"`
	PropertyType    string   `json:"property_type,omitempty"`
	Bedrooms        *int     `json:"bedrooms,omitempty"`
	Bathrooms       *float64 `json:"bathrooms,omitempty"`
	Sqft            *int     `json:"sqft,omitempty"`
	Price           *float64 `json:"price,omitempty"`
	Notes           string   `json:"notes,omitempty"`
	BillingCycle    string   `json:"billing_cycle,omitempty"`
	LeaseTerm       string   `json:"lease_term,omitempty"`
	SecurityDeposit *float64 `json:"security_deposit,omitempty"`
	HOAFees         *float64 `json:"hoa_fees,omitempty"`
	PropertyTaxes   *float64 `json:"property_taxes,omitempty"`
	CouncilTax      *float64 `json:"council_tax,omitempty"`
	Rates           *float64 `json:"rates,omitempty"`
	StrataFees      *float64 `json:"strata_fees,omitempty"`
	Landmarks       []string `json:"landmarks,omitempty"`
}

// NormalizedInput holds the cleaned text fields produced by normalization.
type NormalizedInput struct {
	Address string `json:"address"`
	Notes   string `json:"notes,omitempty"`
}

// NeighborhoodQuality carries the quality-of-life snippets extracted from
// search results. All fields optional.
type NeighborhoodQuality struct {
	CrimeInfo     string `json:"crime_info,omitempty"`
	QualityOfLife string `json:"quality_of_life,omitempty"`
	SafetyInfo    string `json:"safety_info,omitempty"`
}

// AmenityCategories is the canonical order of the KeyAmenities keys, used
// wherever the map has to be rendered deterministically.
var AmenityCategories = []string{"schools", "supermarkets", "parks", "transportation"}

// EnrichmentData is the enrichment result folded into the pipeline state.
// Constructed fresh per request; any field may be absent.
type EnrichmentData struct {
	ZipCode      string               `json:"zip_code,omitempty"`
	Neighborhood string               `json:"neighborhood,omitempty"`
	Landmarks    []string             `json:"landmarks,omitempty"`
	KeyAmenities map[string][]string  `json:"key_amenities,omitempty"`
	Quality      *NeighborhoodQuality `json:"neighborhood_quality,omitempty"`
}

// PricePrediction is the LLM price estimate with its one-line rationale.
type PricePrediction struct {
	Price     float64 `json:"predicted_price"`
	Reasoning string  `json:"reasoning"`
}

// ListingContent is the parsed LLM payload for a generated listing.
type ListingContent struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	PriceBlock  string `json:"price_block"`
}

// GeneratedContent pairs the raw LLM response with its parsed payload.
type GeneratedContent struct {
	Raw    string          `json:"raw"`
	Parsed *ListingContent `json:"parsed,omitempty"`
}

// FormattedOutput is the final formatted listing.
type FormattedOutput struct {
	Title            string `json:"title"`
	Description      string `json:"description"`
	PriceBlock       string `json:"price_block"`
	FormattedListing string `json:"formatted_listing"`
}

// ListingState is the central record threaded through one pipeline run.
// Each sub-struct stays nil until its stage has run; Errors only grows.
type ListingState struct {
	Request    PropertyInput     `json:"request"`
	Normalized *NormalizedInput  `json:"normalized,omitempty"`
	Enrichment *EnrichmentData   `json:"enrichment,omitempty"`
	Prediction *PricePrediction  `json:"prediction,omitempty"`
	Generation *GeneratedContent `json:"generation,omitempty"`
	Output     *FormattedOutput  `json:"output,omitempty"`
	Errors     []string          `json:"errors"`
}

// AppendErrors adds error strings to the state in order.
func (s *ListingState) AppendErrors(errs ...string) {
	s.Errors = append(s.Errors, errs...)
}

// ListingResult is the response record returned to the caller.
// Success is true iff Listing is present; Errors may be non-empty on
// success (informational degradations). Enrichment carries whatever facts
// the run gathered, success or not.
type ListingResult struct {
	RequestID  uuid.UUID        `json:"request_id"`
	Success    bool             `json:"success"`
	Listing    *FormattedOutput `json:"listing,omitempty"`
	Errors     []string         `json:"errors"`
	Enrichment *EnrichmentData  `json:"enrichment,omitempty"`

	PredictedPrice          *float64 `json:"predicted_price,omitempty"`
	PredictedPriceReasoning string   `json:"predicted_price_reasoning,omitempty"`
}
