package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/homescribe/listinggen/internal/entity"
)

// listingResponseKeys are the keys the model must return, in report order.
var listingResponseKeys = []string{"title", "description", "price_block"}

// ExtractJSON pulls the JSON object out of a model response, tolerating
// markdown code fences and prose before/after the object: the substring from
// the first '{' to the last '}' wins. The error strings here are
// user-visible pipeline messages, hence the sentence casing.
func ExtractJSON(response string) (string, error) {
	cleaned := strings.TrimSpace(response)
	if cleaned == "" {
		return "", errors.New("Empty response from LLM")
	}

	if strings.HasPrefix(cleaned, "```") {
		lines := strings.Split(cleaned, "\n")
		start, end := -1, -1
		for i, line := range lines {
			if strings.HasPrefix(strings.TrimSpace(line), "```") {
				if start == -1 {
					start = i + 1
				} else {
					end = i
					break
				}
			}
		}
		switch {
		case start != -1 && end != -1:
			cleaned = strings.Join(lines[start:end], "\n")
		case start != -1:
			// no closing fence, take everything after the opening one
			cleaned = strings.Join(lines[start:], "\n")
		}
	}

	first := strings.Index(cleaned, "{")
	last := strings.LastIndex(cleaned, "}")
	if first != -1 && last > first {
		cleaned = cleaned[first : last+1]
	}
	return cleaned, nil
}

// ParseListingResponse parses a content-generation response into typed
// listing content. Parse failure or a missing/empty required key is a hard
// error for the generation stage.
func ParseListingResponse(response string) (*entity.ListingContent, error) {
	payload, err := ExtractJSON(response)
	if err != nil {
		return nil, err
	}

	var parsed map[string]any
	if err := json.Unmarshal([]byte(payload), &parsed); err != nil {
		return nil, fmt.Errorf("Failed to parse JSON from LLM response: %s", err)
	}

	var missing []string
	for _, key := range listingResponseKeys {
		if _, ok := parsed[key]; !ok {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("Missing required keys in LLM response: %v", missing)
	}

	values := make(map[string]string, len(listingResponseKeys))
	for _, key := range listingResponseKeys {
		s, ok := parsed[key].(string)
		if !ok || strings.TrimSpace(s) == "" {
			return nil, fmt.Errorf("Invalid value for '%s': must be non-empty string", key)
		}
		values[key] = s
	}

	// Structural backstop; the checks above already produced the
	// user-facing message for every known failure mode.
	if err := ValidatePayload(BuildListingJSONSchema(), []byte(payload)); err != nil {
		return nil, err
	}

	return &entity.ListingContent{
		Title:       values["title"],
		Description: values["description"],
		PriceBlock:  values["price_block"],
	}, nil
}
