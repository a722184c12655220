package regions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homescribe/listinggen/constants"
)

func TestApplicableFields(t *testing.T) {
	tests := []struct {
		region      string
		listingType constants.ListingType
		want        []string
	}{
		{"US", constants.ListingTypeSale, []string{FieldHOAFees, FieldPropertyTaxes}},
		{"US", constants.ListingTypeRent, []string{FieldSecurityDeposit, FieldBillingCycle, FieldLeaseTerm}},
		{"CA", constants.ListingTypeSale, []string{FieldHOAFees, FieldPropertyTaxes}},
		{"CA", constants.ListingTypeRent, []string{FieldSecurityDeposit, FieldBillingCycle, FieldLeaseTerm}},
		{"UK", constants.ListingTypeSale, []string{FieldHOAFees, FieldCouncilTax}},
		{"UK", constants.ListingTypeRent, []string{FieldCouncilTax, FieldSecurityDeposit, FieldBillingCycle, FieldLeaseTerm}},
		{"AU", constants.ListingTypeSale, []string{FieldRates, FieldStrataFees}},
		{"AU", constants.ListingTypeRent, []string{FieldSecurityDeposit, FieldBillingCycle, FieldLeaseTerm}},
	}

	for _, tt := range tests {
		t.Run(tt.region+"/"+string(tt.listingType), func(t *testing.T) {
			assert.Equal(t, tt.want, ApplicableFields(tt.region, tt.listingType))
		})
	}
}

func TestFieldFor(t *testing.T) {
	t.Run("uk service charge label", func(t *testing.T) {
		fc, ok := FieldFor("UK", FieldHOAFees, constants.ListingTypeSale)
		require.True(t, ok)
		assert.Equal(t, "Service Charge", fc.Label)
		assert.Equal(t, "GBP/year", fc.Unit)
	})

	t.Run("council tax applies to uk rentals", func(t *testing.T) {
		_, ok := FieldFor("UK", FieldCouncilTax, constants.ListingTypeRent)
		assert.True(t, ok)
	})

	t.Run("rates do not apply to au rentals", func(t *testing.T) {
		_, ok := FieldFor("AU", FieldRates, constants.ListingTypeRent)
		assert.False(t, ok)
	})

	t.Run("au bond label", func(t *testing.T) {
		fc, ok := FieldFor("AU", FieldSecurityDeposit, constants.ListingTypeRent)
		require.True(t, ok)
		assert.Equal(t, "Bond / Security Deposit", fc.Label)
	})

	t.Run("unknown field", func(t *testing.T) {
		_, ok := FieldFor("US", "parking_fees", constants.ListingTypeSale)
		assert.False(t, ok)
	})
}

func TestConfigFor(t *testing.T) {
	tests := []struct {
		region       string
		wantName     string
		wantCurrency string
		wantSymbol   string
	}{
		{"US", "United States", "USD", "$"},
		{"ca", "Canada", "CAD", "$"},
		{"UK", "United Kingdom", "GBP", "£"},
		{"Australia", "Australia", "AUD", "$"},
		{"ZZ", "United States", "USD", "$"}, // unknown falls back to US
	}

	for _, tt := range tests {
		t.Run(tt.region, func(t *testing.T) {
			cfg := ConfigFor(tt.region)
			assert.Equal(t, tt.wantName, cfg.Name)
			assert.Equal(t, tt.wantCurrency, cfg.Currency)
			assert.Equal(t, tt.wantSymbol, cfg.Symbol)
		})
	}
}
