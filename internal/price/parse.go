package price

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/homescribe/listinggen/constants"
	"github.com/homescribe/listinggen/internal/entity"
	"github.com/homescribe/listinggen/internal/llm"
)

// Ceiling above which a parsed estimate is rejected outright, regardless of
// listing type.
const maxBelievablePrice = 1_000_000_000

// predictionKeys are the keys the model must return, in report order.
var predictionKeys = []string{"predicted_price", "reasoning"}

// Parse parses a price-prediction response into a typed estimate, with the
// same tolerance for code fences and surrounding prose as the content
// parser. The error strings are user-visible pipeline messages.
func Parse(response string) (*entity.PricePrediction, error) {
	payload, err := llm.ExtractJSON(response)
	if err != nil {
		return nil, err
	}

	var parsed map[string]any
	if err := json.Unmarshal([]byte(payload), &parsed); err != nil {
		return nil, fmt.Errorf("Failed to parse JSON from LLM response: %s", err)
	}

	var missing []string
	for _, key := range predictionKeys {
		if _, ok := parsed[key]; !ok {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("Missing required keys in LLM response: %v", missing)
	}

	predicted, ok := parsed["predicted_price"].(float64)
	if !ok {
		return nil, fmt.Errorf("Invalid predicted_price type: must be numeric, got %T", parsed["predicted_price"])
	}
	reasoning, ok := parsed["reasoning"].(string)
	if !ok {
		return nil, fmt.Errorf("Invalid reasoning type: must be string, got %T", parsed["reasoning"])
	}

	if predicted < 0 {
		return nil, fmt.Errorf("Invalid predicted_price: must be positive, got %s", formatPrice(predicted))
	}
	if predicted > maxBelievablePrice {
		return nil, fmt.Errorf("Invalid predicted_price: seems unreasonably high, got %s", formatPrice(predicted))
	}

	reasoning = strings.TrimSpace(reasoning)
	if reasoning == "" {
		return nil, errors.New("Invalid reasoning: must be non-empty string")
	}

	// Structural backstop; the checks above already produced the
	// user-facing message for every known failure mode.
	if err := llm.ValidatePayload(llm.BuildPricePredictionJSONSchema(), []byte(payload)); err != nil {
		return nil, err
	}

	return &entity.PricePrediction{
		Price:     predicted,
		Reasoning: reasoning,
	}, nil
}

func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ValidateRange reports whether an estimate is believable for the listing
// type: monthly rents within [100, 50000], sale prices within
// [10000, 100000000].
func ValidateRange(predicted float64, listingType constants.ListingType) bool {
	if predicted < 0 {
		return false
	}
	if listingType == constants.ListingTypeRent {
		return predicted >= 100 && predicted <= 50_000
	}
	return predicted >= 10_000 && predicted <= 100_000_000
}
