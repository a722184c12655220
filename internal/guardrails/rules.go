package guardrails

import (
	"regexp"
	"strings"
)

// Rule tables. These are data, acknowledged as a first-iteration heuristic
// rather than a classifier; swapping them out means providing another
// ContentPolicy, not editing the orchestrator.

// propertyKeywords marks text as property-domain. Keywords of one or two
// characters only count with a numeric prefix ("3br", "2ba"); "$" counts as
// a bare substring.
var propertyKeywords = []string{
	"address", "property", "house", "home", "apartment", "condo", "rent", "rental",
	"sale", "sell", "buy", "bedroom", "bathroom", "bed", "bath", "sqft", "square feet",
	"price", "cost", "listing", "real estate", "agent", "landlord", "tenant",
	"lease", "deposit", "security", "hoa", "tax", "amenities", "parking", "garage",
	"kitchen", "living room", "yard", "garden", "pool",
	"furnished", "unfurnished", "pet", "dog", "cat", "utilities", "included",
	// property types and building terms
	"residency", "residence", "tower", "building", "complex", "villa", "townhouse",
	"studio", "loft", "penthouse", "duplex", "mansion", "estate", "flat", "unit",
	// location indicators (common in property addresses)
	"street", "st", "avenue", "ave", "road", "rd", "boulevard", "blvd", "drive", "dr",
	"lane", "ln", "way", "court", "ct", "place", "pl", "circle", "cir",
	"bay", "beach", "park", "hills", "valley", "creek", "river", "lake",
	// common abbreviations
	"br", "ba", "bd", "sq", "ft", "$",
}

// locationTerms back the address-shape fallback: zero keyword matches are
// forgiven when the text has commas or one of these substrings plus at
// least two words.
var locationTerms = []string{
	"street", "st", "avenue", "ave", "road", "rd", "boulevard", "blvd",
	"drive", "dr", "lane", "ln", "way", "court", "ct", "place", "pl",
	"bay", "beach", "park", "hills", "valley", "creek", "residency",
	"residence", "tower", "building", "complex", "villa",
}

// inappropriateKeywords is a basic denylist; substring match is a violation.
var inappropriateKeywords = []string{
	// explicit content
	"explicit", "porn", "xxx", "nsfw",
	// hate speech indicators
	"hate", "racist", "discrimination",
	// dangerous/violent content
	"violence", "threat", "kill", "harm", "attack",
	// spam/scam indicators
	"scam", "fraud", "phishing", "spam",
}

var injectionPatterns = []*regexp.Regexp{
	// SQL injection
	regexp.MustCompile(`(?i)(union\s+select|drop\s+table|insert\s+into|delete\s+from|update\s+set)`),
	regexp.MustCompile(`(?i)(or\s+1\s*=\s*1|or\s+'1'\s*=\s*'1')`),
	regexp.MustCompile(`(?i)(;.*--|;.*#|/\*.*\*/)`),
	// script injection
	regexp.MustCompile(`(?i)(<script|</script>|javascript:|onerror=|onclick=)`),
	regexp.MustCompile(`(?i)(eval\(|exec\(|system\(|shell_exec\()`),
	// command injection
	regexp.MustCompile(`(?i)(\|\s*cat|\|\s*ls|\|\s*rm|\|\s*sh|\|\s*bash)`),
	regexp.MustCompile(`(?i)(&&\s*cat|&&\s*ls|&&\s*rm|&&\s*sh|&&\s*bash)`),
}

// priceLeakPatterns detect price figures in free text; the description must
// never carry one.
var priceLeakPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\$\d+`),
	regexp.MustCompile(`(?i)\d+\s*dollars?`),
	regexp.MustCompile(`(?i)\d+\s*usd`),
	regexp.MustCompile(`(?i)price[:\s]+\$?\d+`),
	regexp.MustCompile(`(?i)cost[:\s]+\$?\d+`),
	regexp.MustCompile(`(?i)asking[:\s]+\$?\d+`),
	regexp.MustCompile(`(?i)rent[:\s]+\$?\d+`),
	regexp.MustCompile(`(?i)\d+\s*per\s*month`),
	regexp.MustCompile(`(?i)\d+\s*per\s*week`),
	regexp.MustCompile(`(?i)\d+\s*/\s*month`),
	regexp.MustCompile(`(?i)\d+\s*/\s*week`),
}

// keywordMatcher precompiles the per-keyword pattern; re is nil for the
// bare-substring "$" case.
type keywordMatcher struct {
	keyword string
	re      *regexp.Regexp
}

var propertyKeywordMatchers = buildKeywordMatchers(propertyKeywords)

func buildKeywordMatchers(keywords []string) []keywordMatcher {
	matchers := make([]keywordMatcher, 0, len(keywords))
	for _, kw := range keywords {
		if kw == "$" {
			matchers = append(matchers, keywordMatcher{keyword: kw})
			continue
		}
		var pattern string
		if len(kw) <= 2 {
			// abbreviations only count with a numeric prefix ("3br")
			pattern = `\d+` + regexp.QuoteMeta(kw) + `\b`
		} else {
			pattern = `\b` + regexp.QuoteMeta(kw) + `\b`
		}
		matchers = append(matchers, keywordMatcher{keyword: kw, re: regexp.MustCompile(pattern)})
	}
	return matchers
}

// countPropertyKeywords counts distinct keyword hits in lowercased text.
func countPropertyKeywords(textLower string) int {
	count := 0
	for _, m := range propertyKeywordMatchers {
		if m.re == nil {
			if strings.Contains(textLower, m.keyword) {
				count++
			}
			continue
		}
		if m.re.MatchString(textLower) {
			count++
		}
	}
	return count
}

// looksLikeAddress is the zero-keyword fallback: commas or a location term
// plus some multi-word structure.
func looksLikeAddress(text, textLower string) bool {
	hasCommas := strings.Contains(text, ",")
	hasLocationTerm := false
	for _, term := range locationTerms {
		if strings.Contains(textLower, term) {
			hasLocationTerm = true
			break
		}
	}
	hasMultipleWords := len(strings.Fields(text)) >= 2
	return (hasCommas || hasLocationTerm) && hasMultipleWords
}

// ContainsPrice reports whether text matches any price-detection pattern.
func ContainsPrice(text string) bool {
	if text == "" {
		return false
	}
	for _, re := range priceLeakPatterns {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}
