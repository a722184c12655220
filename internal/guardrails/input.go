package guardrails

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// CheckInput runs all input rules on the raw address and notes, in order:
// length limits, injection detection, content moderation, topic relevance.
// Returns ordered violation strings, empty on pass.
func (p *RulePolicy) CheckInput(address, notes string) []string {
	var violations []string

	if msg := checkLength(address, p.cfg.MaxAddressLength, "Address"); msg != "" {
		violations = append(violations, msg)
	}
	if msg := checkLength(notes, p.cfg.MaxNotesLength, "Notes"); msg != "" {
		violations = append(violations, msg)
	}

	if detectInjection(address) {
		violations = append(violations, "Address: "+msgInjection)
	}
	if detectInjection(notes) {
		violations = append(violations, "Notes: "+msgInjection)
	}

	if detectInappropriate(address) {
		violations = append(violations, "Address: "+msgInappropriate)
	}
	if detectInappropriate(notes) {
		violations = append(violations, "Notes: "+msgInappropriate)
	}

	if !propertyRelated(address+" "+notes, 1) {
		violations = append(violations, msgNotPropertyRelated)
	}

	return violations
}

func checkLength(text string, max int, field string) string {
	if text == "" {
		return ""
	}
	if n := utf8.RuneCountInString(text); n > max {
		return fmt.Sprintf("%s exceeds maximum length of %d characters (got %d)", field, max, n)
	}
	return ""
}

func detectInjection(text string) bool {
	if text == "" {
		return false
	}
	lower := strings.ToLower(text)
	for _, re := range injectionPatterns {
		if re.MatchString(lower) {
			return true
		}
	}
	return false
}

func detectInappropriate(text string) bool {
	if text == "" {
		return false
	}
	lower := strings.ToLower(text)
	for _, kw := range inappropriateKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// propertyRelated requires minKeywords distinct property-domain keyword
// hits, with the address-shape fallback forgiving a zero count.
// Empty or whitespace-only text always fails.
func propertyRelated(text string, minKeywords int) bool {
	if strings.TrimSpace(text) == "" {
		return false
	}

	lower := strings.ToLower(text)
	count := countPropertyKeywords(lower)

	if count == 0 && looksLikeAddress(text, lower) {
		count = 1
	}

	return count >= minKeywords
}
