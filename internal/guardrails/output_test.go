package guardrails

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homescribe/listinggen/constants"
	"github.com/homescribe/listinggen/internal/entity"
)

func validContent() *entity.ListingContent {
	return &entity.ListingContent{
		Title:       "Beautiful 2BR Apartment in Chelsea",
		Description: "Bright two-bedroom home with a modern kitchen and easy access to the park. Close to schools and transit.",
		PriceBlock:  "$450,000",
	}
}

func floatPtr(v float64) *float64 { return &v }

func TestCheckOutputValid(t *testing.T) {
	p := NewRulePolicy(DefaultConfig())

	violations := p.CheckOutput(validContent(), floatPtr(450000), constants.ListingTypeSale)
	assert.Empty(t, violations)
}

func TestCheckOutputMissing(t *testing.T) {
	p := NewRulePolicy(DefaultConfig())

	violations := p.CheckOutput(nil, nil, constants.ListingTypeSale)
	assert.Equal(t, []string{"Output guardrail: No LLM output to validate"}, violations)
}

func TestCheckOutputStructureShortCircuits(t *testing.T) {
	p := NewRulePolicy(DefaultConfig())

	content := validContent()
	content.Title = "   "
	// description also leaks a price; the structure failure must be the
	// only violation reported
	content.Description = "costs $500,000"

	violations := p.CheckOutput(content, nil, constants.ListingTypeSale)
	assert.Equal(t, []string{"Output structure: LLM output 'title' cannot be empty"}, violations)
}

func TestCheckOutputLengths(t *testing.T) {
	p := NewRulePolicy(DefaultConfig())

	content := validContent()
	content.Title = "Beautiful home " + strings.Repeat("y", 200)

	violations := p.CheckOutput(content, nil, constants.ListingTypeSale)
	require.NotEmpty(t, violations)
	assert.Contains(t, violations[0], "Title exceeds maximum length of 200 characters")
}

func TestCheckOutputPriceLeak(t *testing.T) {
	p := NewRulePolicy(DefaultConfig())

	tests := []struct {
		name        string
		description string
		leak        bool
	}{
		{"dollar amount", "Lovely apartment near the park, yours for $500,000 today.", true},
		{"per month", "Spacious apartment with garage, 2500 per month.", true},
		{"slash month", "Bright apartment with garden, 2500/month.", true},
		{"labeled rent", "Beautiful apartment, rent: 800 with parking.", true},
		{"clean", "Lovely apartment near the park with a renovated kitchen.", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := validContent()
			content.Description = tt.description

			violations := p.CheckOutput(content, nil, constants.ListingTypeSale)
			leakMsg := "Compliance: Price information should not appear in description (it should only be in price_block)"
			if tt.leak {
				assert.Contains(t, violations, leakMsg)
			} else {
				assert.NotContains(t, violations, leakMsg)
			}
		})
	}
}

func TestCheckOutputInjectionInPayload(t *testing.T) {
	p := NewRulePolicy(DefaultConfig())

	content := validContent()
	content.PriceBlock = "$450,000 eval(payload)"

	violations := p.CheckOutput(content, nil, constants.ListingTypeSale)
	assert.Contains(t, violations, "Price_block: "+msgInjection)
}

func TestCheckOutputPriceCompliance(t *testing.T) {
	p := NewRulePolicy(DefaultConfig())

	tests := []struct {
		name        string
		priceBlock  string
		original    float64
		listingType constants.ListingType
		want        string
	}{
		{"sale within 10%", "$540,000", 500000, constants.ListingTypeSale, ""},
		{"sale beyond 10%", "$560,000", 500000, constants.ListingTypeSale, "Price in price_block does not match original price (sale)"},
		{"rent within 20%", "$2,300/month", 2000, constants.ListingTypeRent, ""},
		{"rent beyond 20%", "$2,500/month", 2000, constants.ListingTypeRent, "Price in price_block does not match original price (rental)"},
		{"bare number", "450000", 500000, constants.ListingTypeSale, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := validContent()
			content.PriceBlock = tt.priceBlock

			violations := p.CheckOutput(content, floatPtr(tt.original), tt.listingType)
			if tt.want == "" {
				assert.Empty(t, violations)
			} else {
				assert.Equal(t, []string{tt.want}, violations)
			}
		})
	}
}

func TestCheckOutputNoOriginalPriceSkipsCompliance(t *testing.T) {
	p := NewRulePolicy(DefaultConfig())

	content := validContent()
	content.PriceBlock = "$9,999,999"

	violations := p.CheckOutput(content, nil, constants.ListingTypeSale)
	assert.Empty(t, violations)
}

func TestContainsPrice(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"$500,000", true},
		{"500 dollars", true},
		{"2500 per month", true},
		{"price: 400", true},
		{"asking: $1,200", true},
		{"spacious sunlit rooms", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, ContainsPrice(tt.text))
		})
	}
}
