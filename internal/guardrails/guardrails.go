// Package guardrails implements the rule-based input and output content
// checks that gate the listing pipeline. Checks are pure: they return
// ordered violation strings and never mutate content.
package guardrails

import (
	"github.com/homescribe/listinggen/constants"
	"github.com/homescribe/listinggen/internal/entity"
)

// Violation messages shared by input and output checks.
const (
	msgInjection          = "Potential injection attack detected in input"
	msgInappropriate      = "Inappropriate content detected in input"
	msgNotPropertyRelated = "Input does not appear to be property-related. Please provide property listing information."
)

// Config carries the tunable limits and tolerances. The tolerance bands and
// length caps default to the product-approved values; change them only with
// product input.
type Config struct {
	MaxAddressLength     int
	MaxNotesLength       int
	MaxTitleLength       int
	MaxDescriptionLength int
	MaxPriceBlockLength  int

	// allowed relative deviation of the price found in price_block from
	// the original asking price
	SalePriceTolerance float64
	RentPriceTolerance float64
}

// DefaultConfig returns the standard limits.
func DefaultConfig() Config {
	return Config{
		MaxAddressLength:     500,
		MaxNotesLength:       2000,
		MaxTitleLength:       200,
		MaxDescriptionLength: 2000,
		MaxPriceBlockLength:  100,
		SalePriceTolerance:   0.10,
		RentPriceTolerance:   0.20,
	}
}

// ContentPolicy gates pipeline input and output. The default implementation
// is the keyword/regex rule edition; a future model-based policy plugs in
// here without touching the orchestrator.
type ContentPolicy interface {
	CheckInput(address, notes string) []string
	CheckOutput(content *entity.ListingContent, originalPrice *float64, listingType constants.ListingType) []string
}

// RulePolicy is the keyword/regex ContentPolicy.
type RulePolicy struct {
	cfg Config
}

// NewRulePolicy builds a RulePolicy with the given config.
func NewRulePolicy(cfg Config) *RulePolicy {
	return &RulePolicy{cfg: cfg}
}

var _ ContentPolicy = (*RulePolicy)(nil)
