package llm

// BuildListingJSONSchema returns the JSON-Schema (draft 2020-12 subset) for
// generated listing content, as a generic map. Extra keys from the model are
// tolerated; the three content fields are not.
func BuildListingJSONSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title":       map[string]any{"type": "string", "minLength": 1},
			"description": map[string]any{"type": "string", "minLength": 1},
			"price_block": map[string]any{"type": "string", "minLength": 1},
		},
		"required": []string{"title", "description", "price_block"},
	}
}

// BuildPricePredictionJSONSchema returns the schema for a price-prediction
// response: a bounded numeric estimate plus a short rationale.
func BuildPricePredictionJSONSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"predicted_price": map[string]any{"type": "number", "minimum": 0.0, "maximum": 1_000_000_000.0},
			"reasoning":       map[string]any{"type": "string", "minLength": 1},
		},
		"required": []string{"predicted_price", "reasoning"},
	}
}
