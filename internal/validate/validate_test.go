package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/homescribe/listinggen/internal/entity"
)

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func saleRequest() entity.PropertyInput {
	return entity.PropertyInput{
		Address:      "123 Main St, New York, NY 10001",
		ListingType:  "sale",
		Region:       "US",
		PropertyType: "Apartment",
		Bedrooms:     intPtr(2),
		Bathrooms:    floatPtr(1.0),
		Sqft:         intPtr(1200),
		Price:        floatPtr(450000),
		Notes:        "Beautiful apartment with modern kitchen",
	}
}

func TestFieldsValidRequest(t *testing.T) {
	req := saleRequest()
	assert.Empty(t, Fields(&req))
}

func TestFieldsAddress(t *testing.T) {
	tests := []struct {
		name    string
		address string
		want    string
	}{
		{"missing", "", "address is required"},
		{"whitespace only", "   ", "address cannot be empty"},
		{"too short", "1234", "address is too short (minimum 5 characters)"},
		{"no alphanumeric", "!!! ???", "address must contain letters or numbers"},
		{"single word", "Mayfair", "address must contain at least 2 words"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := saleRequest()
			req.Address = tt.address

			violations := Fields(&req)
			assert.Contains(t, violations, tt.want)
		})
	}
}

func TestFieldsAddressWithoutStreetNumber(t *testing.T) {
	req := saleRequest()
	req.Address = "Mayfair Residency, Business Bay, Dubai"
	assert.Empty(t, Fields(&req))
}

func TestFieldsListingType(t *testing.T) {
	tests := []struct {
		name        string
		listingType string
		want        string
	}{
		{"missing", "", "listing_type is required"},
		{"unknown", "auction", "listing_type must be one of [sale rent], got 'auction'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := saleRequest()
			req.ListingType = tt.listingType

			violations := Fields(&req)
			assert.Contains(t, violations, tt.want)
		})
	}

	t.Run("case insensitive", func(t *testing.T) {
		req := saleRequest()
		req.ListingType = "SALE"
		assert.Empty(t, Fields(&req))
	})
}

func TestFieldsPrice(t *testing.T) {
	tests := []struct {
		name  string
		price *float64
		want  string
	}{
		{"missing", nil, "price is required"},
		{"zero", floatPtr(0), "price must be at least $0.01"},
		{"negative", floatPtr(-5), "price must be at least $0.01"},
		{"too large", floatPtr(1e12), "price exceeds maximum value of $999,999,999.99"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := saleRequest()
			req.Price = tt.price

			violations := Fields(&req)
			assert.Equal(t, []string{tt.want}, violations)
		})
	}

	t.Run("one cent is valid", func(t *testing.T) {
		req := saleRequest()
		req.Price = floatPtr(0.01)
		assert.Empty(t, Fields(&req))
	})
}

func TestFieldsNotes(t *testing.T) {
	req := saleRequest()
	req.Notes = "   "

	assert.Equal(t, []string{"notes cannot be empty if provided"}, Fields(&req))

	req.Notes = ""
	assert.Empty(t, Fields(&req))
}

func TestFieldsRegionApplicability(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*entity.PropertyInput)
		want   []string
	}{
		{
			name: "negative hoa_fees on US sale",
			mutate: func(req *entity.PropertyInput) {
				req.HOAFees = floatPtr(-50)
			},
			want: []string{"hoa_fees cannot be negative"},
		},
		{
			name: "zero hoa_fees is valid",
			mutate: func(req *entity.PropertyInput) {
				req.HOAFees = floatPtr(0)
			},
			want: nil,
		},
		{
			name: "negative security_deposit ignored on US sale",
			mutate: func(req *entity.PropertyInput) {
				req.SecurityDeposit = floatPtr(-1)
			},
			want: nil,
		},
		{
			name: "negative security_deposit on US rent",
			mutate: func(req *entity.PropertyInput) {
				req.ListingType = "rent"
				req.Price = floatPtr(2500)
				req.SecurityDeposit = floatPtr(-1)
			},
			want: []string{"security_deposit cannot be negative"},
		},
		{
			name: "negative rates on AU sale",
			mutate: func(req *entity.PropertyInput) {
				req.Region = "AU"
				req.Rates = floatPtr(-10)
			},
			want: []string{"rates cannot be negative"},
		},
		{
			name: "negative rates ignored on AU rent",
			mutate: func(req *entity.PropertyInput) {
				req.Region = "AU"
				req.ListingType = "rent"
				req.Rates = floatPtr(-10)
			},
			want: nil,
		},
		{
			name: "negative council_tax on UK rent",
			mutate: func(req *entity.PropertyInput) {
				req.Region = "UK"
				req.ListingType = "rent"
				req.CouncilTax = floatPtr(-5)
			},
			want: []string{"council_tax cannot be negative"},
		},
		{
			name: "negative council_tax ignored on US sale",
			mutate: func(req *entity.PropertyInput) {
				req.CouncilTax = floatPtr(-5)
			},
			want: nil,
		},
		{
			name: "negative property_taxes on CA sale",
			mutate: func(req *entity.PropertyInput) {
				req.Region = "CA"
				req.PropertyTaxes = floatPtr(-100)
			},
			want: []string{"property_taxes cannot be negative"},
		},
		{
			name: "negative strata_fees on AU sale",
			mutate: func(req *entity.PropertyInput) {
				req.Region = "AU"
				req.StrataFees = floatPtr(-100)
			},
			want: []string{"strata_fees cannot be negative"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := saleRequest()
			tt.mutate(&req)

			violations := Fields(&req)
			if tt.want == nil {
				assert.Empty(t, violations)
			} else {
				assert.Equal(t, tt.want, violations)
			}
		})
	}
}

func TestFieldsAccumulates(t *testing.T) {
	req := entity.PropertyInput{}

	violations := Fields(&req)
	assert.Equal(t, []string{
		"address is required",
		"listing_type is required",
		"price is required",
	}, violations)
}
