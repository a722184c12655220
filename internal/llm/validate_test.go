package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePayload(t *testing.T) {
	tests := []struct {
		name    string
		schema  map[string]any
		payload string
		wantErr bool
	}{
		{
			name:    "valid listing payload",
			schema:  BuildListingJSONSchema(),
			payload: `{"title": "Sunny 2BR", "description": "Bright and airy.", "price_block": "Asking Price: $450,000"}`,
		},
		{
			name:    "extra keys tolerated",
			schema:  BuildListingJSONSchema(),
			payload: `{"title": "Sunny 2BR", "description": "Bright and airy.", "price_block": "Asking Price: $450,000", "mood": "upbeat"}`,
		},
		{
			name:    "missing required key",
			schema:  BuildListingJSONSchema(),
			payload: `{"title": "Sunny 2BR", "description": "Bright and airy."}`,
			wantErr: true,
		},
		{
			name:    "empty string rejected",
			schema:  BuildListingJSONSchema(),
			payload: `{"title": "", "description": "Bright and airy.", "price_block": "Asking Price: $450,000"}`,
			wantErr: true,
		},
		{
			name:    "prediction out of bounds",
			schema:  BuildPricePredictionJSONSchema(),
			payload: `{"predicted_price": -5, "reasoning": "nonsense"}`,
			wantErr: true,
		},
		{
			name:    "payload not json",
			schema:  BuildListingJSONSchema(),
			payload: `not json`,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePayload(tt.schema, []byte(tt.payload))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}
