// Package regions holds the static per-region tables: currency, address
// format hints, and which optional listing fields apply for each region and
// listing type. The tables are pure data; behavior lives in the accessors.
package regions

import (
	"github.com/homescribe/listinggen/constants"
)

// Canonical keys for the optional money/term fields on a listing request.
const (
	FieldHOAFees         = "hoa_fees"
	FieldPropertyTaxes   = "property_taxes"
	FieldCouncilTax      = "council_tax"
	FieldRates           = "rates"
	FieldStrataFees      = "strata_fees"
	FieldSecurityDeposit = "security_deposit"
	FieldBillingCycle    = "billing_cycle"
	FieldLeaseTerm       = "lease_term"
)

// fieldOrder fixes iteration order for prompts, validation, and exports.
var fieldOrder = []string{
	FieldHOAFees,
	FieldPropertyTaxes,
	FieldCouncilTax,
	FieldRates,
	FieldStrataFees,
	FieldSecurityDeposit,
	FieldBillingCycle,
	FieldLeaseTerm,
}

// FieldConfig describes how one optional field is labeled and when it applies.
type FieldConfig struct {
	Label       string
	Description string
	Unit        string
	ShowForSale bool
	ShowForRent bool
}

// Config is the full static table for one region.
type Config struct {
	Name              string
	Currency          string
	Symbol            string
	AddressFormatHint string
	Fields            map[string]FieldConfig
}

var configs = map[constants.Region]Config{
	constants.RegionUS: {
		Name:              "United States",
		Currency:          "USD",
		Symbol:            "$",
		AddressFormatHint: "Street, City, State ZIP",
		Fields: map[string]FieldConfig{
			FieldHOAFees: {
				Label:       "HOA Fees",
				Description: "Monthly homeowners association fees",
				Unit:        "USD/month",
				ShowForSale: true,
			},
			FieldPropertyTaxes: {
				Label:       "Property Taxes",
				Description: "Annual property taxes",
				Unit:        "USD/year",
				ShowForSale: true,
			},
			FieldSecurityDeposit: {
				Label:       "Security Deposit",
				Description: "Security deposit amount",
				Unit:        "USD",
				ShowForRent: true,
			},
			FieldBillingCycle: {
				Label:       "Billing Cycle",
				Description: "How often rent is paid (e.g., monthly, weekly)",
				ShowForRent: true,
			},
			FieldLeaseTerm: {
				Label:       "Lease Term",
				Description: "Lease duration (e.g., 12 months, 6 months)",
				ShowForRent: true,
			},
		},
	},
	constants.RegionCA: {
		Name:              "Canada",
		Currency:          "CAD",
		Symbol:            "$",
		AddressFormatHint: "Street, City, Province Postal Code",
		Fields: map[string]FieldConfig{
			FieldHOAFees: {
				Label:       "Condo Fees / Strata Fees",
				Description: "Monthly condominium or strata fees",
				Unit:        "CAD/month",
				ShowForSale: true,
			},
			FieldPropertyTaxes: {
				Label:       "Property Taxes",
				Description: "Annual property taxes",
				Unit:        "CAD/year",
				ShowForSale: true,
			},
			FieldSecurityDeposit: {
				Label:       "Security Deposit",
				Description: "Security deposit amount",
				Unit:        "CAD",
				ShowForRent: true,
			},
			FieldBillingCycle: {
				Label:       "Billing Cycle",
				Description: "How often rent is paid (e.g., monthly, weekly)",
				ShowForRent: true,
			},
			FieldLeaseTerm: {
				Label:       "Lease Term",
				Description: "Lease duration (e.g., 12 months, 6 months)",
				ShowForRent: true,
			},
		},
	},
	constants.RegionUK: {
		Name:              "United Kingdom",
		Currency:          "GBP",
		Symbol:            "£",
		AddressFormatHint: "Street, City, Postcode",
		Fields: map[string]FieldConfig{
			// No HOA in the UK; flats carry a service charge instead.
			FieldHOAFees: {
				Label:       "Service Charge",
				Description: "Annual service charge (for flats/apartments)",
				Unit:        "GBP/year",
				ShowForSale: true,
			},
			FieldCouncilTax: {
				Label:       "Council Tax",
				Description: "Annual council tax (band A-H)",
				Unit:        "GBP/year",
				ShowForSale: true,
				ShowForRent: true, // renters pay council tax
			},
			FieldSecurityDeposit: {
				Label:       "Security Deposit",
				Description: "Security deposit amount (typically 5 weeks rent)",
				Unit:        "GBP",
				ShowForRent: true,
			},
			FieldBillingCycle: {
				Label:       "Billing Cycle",
				Description: "How often rent is paid (e.g., monthly, weekly)",
				ShowForRent: true,
			},
			FieldLeaseTerm: {
				Label:       "Lease Term",
				Description: "Lease duration (e.g., 12 months, 6 months)",
				ShowForRent: true,
			},
		},
	},
	constants.RegionAU: {
		Name:              "Australia",
		Currency:          "AUD",
		Symbol:            "$",
		AddressFormatHint: "Street, Suburb, State Postcode",
		Fields: map[string]FieldConfig{
			FieldStrataFees: {
				Label:       "Strata Fees / Body Corporate",
				Description: "Quarterly strata or body corporate fees",
				Unit:        "AUD/quarter",
				ShowForSale: true,
			},
			FieldRates: {
				Label:       "Council Rates",
				Description: "Annual council rates",
				Unit:        "AUD/year",
				ShowForSale: true,
			},
			FieldSecurityDeposit: {
				Label:       "Bond / Security Deposit",
				Description: "Bond or security deposit amount",
				Unit:        "AUD",
				ShowForRent: true,
			},
			FieldBillingCycle: {
				Label:       "Billing Cycle",
				Description: "How often rent is paid (e.g., monthly, weekly, fortnightly)",
				ShowForRent: true,
			},
			FieldLeaseTerm: {
				Label:       "Lease Term",
				Description: "Lease duration (e.g., 12 months, 6 months)",
				ShowForRent: true,
			},
		},
	},
}

// ConfigFor resolves a region code or country name to its table. Unknown
// input falls back to the US table.
func ConfigFor(region string) Config {
	r, _ := constants.CanonicalizeRegion(region)
	return configs[r]
}

// FieldFor returns the config for one field if it applies to the given
// listing type in the given region.
func FieldFor(region, field string, listingType constants.ListingType) (FieldConfig, bool) {
	cfg := ConfigFor(region)
	fc, ok := cfg.Fields[field]
	if !ok {
		return FieldConfig{}, false
	}
	if listingType == constants.ListingTypeSale && !fc.ShowForSale {
		return FieldConfig{}, false
	}
	if listingType == constants.ListingTypeRent && !fc.ShowForRent {
		return FieldConfig{}, false
	}
	return fc, true
}

// ApplicableFields returns, in canonical order, the field keys that apply to
// the given (region, listing type) pair.
func ApplicableFields(region string, listingType constants.ListingType) []string {
	var result []string
	for _, field := range fieldOrder {
		if _, ok := FieldFor(region, field, listingType); ok {
			result = append(result, field)
		}
	}
	return result
}

// CurrencySymbol returns the display symbol for a region.
func CurrencySymbol(region string) string {
	return ConfigFor(region).Symbol
}

// Currency returns the ISO currency code for a region.
func Currency(region string) string {
	return ConfigFor(region).Currency
}

// Name returns the human-readable region name.
func Name(region string) string {
	return ConfigFor(region).Name
}

// Supported returns the supported region codes.
func Supported() []constants.Region {
	return []constants.Region{
		constants.RegionUS,
		constants.RegionCA,
		constants.RegionUK,
		constants.RegionAU,
	}
}
