package format

import (
	"regexp"
	"strings"
)

// Phrases that carry a price together with their lead-in word. Removed
// whole, so "priced at $500,000" does not leave "priced at" behind.
var contextualPricePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bcosts?\s+\$?\d+(?:,\d+)*`),
	regexp.MustCompile(`(?i)\bpriced?\s+at\s+\$?\d+(?:,\d+)*`),
	regexp.MustCompile(`(?i)\basking\s+\$?\d+(?:,\d+)*`),
	regexp.MustCompile(`(?i)\brent\s+is\s+\$?\d+(?:,\d+)*`),
	regexp.MustCompile(`(?i)\bfor\s+\$?\d+(?:,\d+)*`),
	regexp.MustCompile(`(?i)\bonly\s+\$?\d+(?:,\d+)*`),
}

// Standalone price mentions, removed after the contextual pass.
var priceRemovalPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\$\d+(?:,\d+)*`),
	regexp.MustCompile(`(?i)\d+(?:,\d+)*\s*dollars?`),
	regexp.MustCompile(`(?i)\d+(?:,\d+)*\s*usd`),
	regexp.MustCompile(`(?i)price[:\s]+\$?\d+(?:,\d+)*`),
	regexp.MustCompile(`(?i)cost[:\s]+\$?\d+(?:,\d+)*`),
	regexp.MustCompile(`(?i)asking[:\s]+\$?\d+(?:,\d+)*`),
	regexp.MustCompile(`(?i)rent[:\s]+\$?\d+(?:,\d+)*`),
	regexp.MustCompile(`(?i)\d+(?:,\d+)*\s*per\s*month`),
	regexp.MustCompile(`(?i)\d+(?:,\d+)*\s*per\s*week`),
	regexp.MustCompile(`(?i)\d+(?:,\d+)*\s*/\s*month`),
	regexp.MustCompile(`(?i)\d+(?:,\d+)*\s*/\s*week`),
	regexp.MustCompile(`(?i)\$?\d+(?:,\d+)*\s*monthly`),
	regexp.MustCompile(`(?i)\$?\d+(?:,\d+)*\s*weekly`),
}

// Splice repairs key on the doubled (or leading) whitespace a removal
// leaves at the cut, which is what separates a conjunction or unit phrase
// orphaned by the removal from one the text always had.
var (
	reSpliceConjunction = regexp.MustCompile(`(?i)(^|\s)\s+(?:and|or)\s+([a-z])`)
	reSpliceKeyword     = regexp.MustCompile(`(?i)(^|\s)(?:costs?|priced?|asking|rent|for|only)\s+([.,;:])`)
	reSplicePerUnit     = regexp.MustCompile(`(?i)(^|\s)\s+per\s+(?:month|week)`)
)

// Punctuation repairs are safe unconditionally: prose never carries a space
// before punctuation or doubled periods on its own.
var (
	reCollapseSpaces   = regexp.MustCompile(`\s+`)
	reSpaceBeforePunct = regexp.MustCompile(`\s+([.,;:])`)
	reRepeatedDots     = regexp.MustCompile(`\.{2,}`)
	reDanglingConjunct = regexp.MustCompile(`(?i)\s+(?:and|or)\s*([.,;:])`)
)

// RemovePrice strips price mentions from free text and repairs the grammar
// artifacts the removal leaves behind. It is idempotent: running it on its
// own output changes nothing, so a formatted description is a fixed point
// of it. Line breaks collapse to single spaces as a side effect.
func RemovePrice(text string) string {
	if text == "" {
		return text
	}

	for _, pattern := range contextualPricePatterns {
		text = pattern.ReplaceAllString(text, "")
	}
	for _, pattern := range priceRemovalPatterns {
		text = pattern.ReplaceAllString(text, "")
	}

	// Splice repairs must run before the whitespace collapse erases the
	// cut marks.
	text = reSpliceConjunction.ReplaceAllString(text, "${1}${2}")
	text = reSpliceKeyword.ReplaceAllString(text, "${1}${2}")
	text = reSplicePerUnit.ReplaceAllString(text, "${1}")

	// The dangling-conjunction repair can butt two periods together, so it
	// has to run before the punctuation repairs collapse them.
	text = strings.TrimSpace(reCollapseSpaces.ReplaceAllString(text, " "))
	text = reDanglingConjunct.ReplaceAllString(text, "${1}")
	text = reSpaceBeforePunct.ReplaceAllString(text, "${1}")
	text = reRepeatedDots.ReplaceAllString(text, ".")
	return strings.TrimSpace(reCollapseSpaces.ReplaceAllString(text, " "))
}
