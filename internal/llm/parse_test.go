package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validPayload = `{"title": "Sunny 2BR Apartment", "description": "Bright corner apartment near the park.", "price_block": "$450,000"}`

func TestParseListingResponse(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{"plain json", validPayload},
		{"json code fence", "```json\n" + validPayload + "\n```"},
		{"bare code fence", "```\n" + validPayload + "\n```"},
		{"unclosed code fence", "```json\n" + validPayload},
		{"prose around json", "Here is your listing:\n" + validPayload + "\nLet me know if you need changes."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content, err := ParseListingResponse(tt.response)
			require.NoError(t, err)
			assert.Equal(t, "Sunny 2BR Apartment", content.Title)
			assert.Equal(t, "Bright corner apartment near the park.", content.Description)
			assert.Equal(t, "$450,000", content.PriceBlock)
		})
	}
}

func TestParseListingResponseExtraKeysTolerated(t *testing.T) {
	content, err := ParseListingResponse(`{"title": "T2B Flat", "description": "Nice flat", "price_block": "$1", "model": "whatever"}`)
	require.NoError(t, err)
	assert.Equal(t, "T2B Flat", content.Title)
}

func TestParseListingResponseErrors(t *testing.T) {
	tests := []struct {
		name     string
		response string
		want     string
	}{
		{"empty", "", "Empty response from LLM"},
		{"whitespace only", "   \n\t", "Empty response from LLM"},
		{"not json", "not json", "Failed to parse JSON from LLM response"},
		{"truncated object", `{"title": "Sunny`, "Failed to parse JSON from LLM response"},
		{"missing one key", `{"title": "a", "description": "b"}`, "Missing required keys in LLM response: [price_block]"},
		{"missing two keys", `{"title": "a"}`, "Missing required keys in LLM response: [description price_block]"},
		{"blank title", `{"title": "  ", "description": "b", "price_block": "c"}`, "Invalid value for 'title': must be non-empty string"},
		{"numeric title", `{"title": 42, "description": "b", "price_block": "c"}`, "Invalid value for 'title': must be non-empty string"},
		{"null price_block", `{"title": "a", "description": "b", "price_block": null}`, "Invalid value for 'price_block': must be non-empty string"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content, err := ParseListingResponse(tt.response)
			require.Error(t, err)
			assert.Nil(t, content)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestExtractJSON(t *testing.T) {
	got, err := ExtractJSON(`The answer: {"a": 1} and nothing else.`)
	require.NoError(t, err)
	assert.Equal(t, `{"a": 1}`, got)

	// no braces at all: the cleaned text passes through for the JSON
	// decoder to reject
	got, err = ExtractJSON("no object here")
	require.NoError(t, err)
	assert.Equal(t, "no object here", got)
}
