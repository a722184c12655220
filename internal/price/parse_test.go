package price

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homescribe/listinggen/constants"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{"plain json", `{"predicted_price": 525000.5, "reasoning": "Strong comparables nearby."}`},
		{"json code fence", "```json\n{\"predicted_price\": 525000.5, \"reasoning\": \"Strong comparables nearby.\"}\n```"},
		{"prose around json", "Sure, here is the estimate:\n{\"predicted_price\": 525000.5, \"reasoning\": \"Strong comparables nearby.\"}\nHope that helps."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prediction, err := Parse(tt.response)
			require.NoError(t, err)
			assert.Equal(t, 525000.5, prediction.Price)
			assert.Equal(t, "Strong comparables nearby.", prediction.Reasoning)
		})
	}
}

func TestParseTrimsReasoning(t *testing.T) {
	prediction, err := Parse(`{"predicted_price": 2400, "reasoning": "  Typical rent for the block.  "}`)
	require.NoError(t, err)
	assert.Equal(t, "Typical rent for the block.", prediction.Reasoning)
}

func TestParseIntegerPrice(t *testing.T) {
	prediction, err := Parse(`{"predicted_price": 450000, "reasoning": "Median sale price for the zip."}`)
	require.NoError(t, err)
	assert.Equal(t, 450000.0, prediction.Price)
}

func TestParseBoundaryPrices(t *testing.T) {
	prediction, err := Parse(`{"predicted_price": 0, "reasoning": "Teardown with no land value."}`)
	require.NoError(t, err)
	assert.Equal(t, 0.0, prediction.Price)

	prediction, err = Parse(`{"predicted_price": 1000000000, "reasoning": "Trophy asset."}`)
	require.NoError(t, err)
	assert.Equal(t, 1000000000.0, prediction.Price)
}

func TestParseExtraKeysTolerated(t *testing.T) {
	prediction, err := Parse(`{"predicted_price": 1800, "reasoning": "Going rate.", "confidence": 0.9}`)
	require.NoError(t, err)
	assert.Equal(t, 1800.0, prediction.Price)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name     string
		response string
		want     string
	}{
		{"empty", "", "Empty response from LLM"},
		{"whitespace only", "   \n\t", "Empty response from LLM"},
		{"not json", "I cannot estimate this.", "Failed to parse JSON from LLM response"},
		{"missing reasoning", `{"predicted_price": 500000}`, "Missing required keys in LLM response: [reasoning]"},
		{"missing both keys", `{"note": "hello"}`, "Missing required keys in LLM response: [predicted_price reasoning]"},
		{"string price", `{"predicted_price": "a lot", "reasoning": "x"}`, "Invalid predicted_price type: must be numeric, got string"},
		{"null price", `{"predicted_price": null, "reasoning": "x"}`, "Invalid predicted_price type: must be numeric, got <nil>"},
		{"numeric reasoning", `{"predicted_price": 100000, "reasoning": 42}`, "Invalid reasoning type: must be string, got float64"},
		{"negative price", `{"predicted_price": -5, "reasoning": "x"}`, "Invalid predicted_price: must be positive, got -5"},
		{"absurdly high price", `{"predicted_price": 2000000000, "reasoning": "x"}`, "Invalid predicted_price: seems unreasonably high, got 2000000000"},
		{"blank reasoning", `{"predicted_price": 100000, "reasoning": "   "}`, "Invalid reasoning: must be non-empty string"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prediction, err := Parse(tt.response)
			require.Error(t, err)
			assert.Nil(t, prediction)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidateRange(t *testing.T) {
	tests := []struct {
		name        string
		predicted   float64
		listingType constants.ListingType
		want        bool
	}{
		{"negative rent", -1, constants.ListingTypeRent, false},
		{"rent below floor", 99.99, constants.ListingTypeRent, false},
		{"rent at floor", 100, constants.ListingTypeRent, true},
		{"typical rent", 2400, constants.ListingTypeRent, true},
		{"rent at ceiling", 50_000, constants.ListingTypeRent, true},
		{"rent above ceiling", 50_000.01, constants.ListingTypeRent, false},
		{"negative sale", -1, constants.ListingTypeSale, false},
		{"zero sale", 0, constants.ListingTypeSale, false},
		{"sale below floor", 9_999.99, constants.ListingTypeSale, false},
		{"sale at floor", 10_000, constants.ListingTypeSale, true},
		{"typical sale", 450_000, constants.ListingTypeSale, true},
		{"sale at ceiling", 100_000_000, constants.ListingTypeSale, true},
		{"sale above ceiling", 100_000_000.01, constants.ListingTypeSale, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateRange(tt.predicted, tt.listingType))
		})
	}
}
