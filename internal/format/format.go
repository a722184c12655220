// Package format produces the final listing text: whitespace cleanup,
// price removal from the description, currency-symbol localization of the
// price block, and assembly of the display string. Deterministic, no
// network. The price removal runs even though the output guardrail already
// checks descriptions, so a leaked figure never survives both layers.
package format

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/homescribe/listinggen/internal/entity"
	"github.com/homescribe/listinggen/internal/regions"
)

var (
	reLineBreaks    = regexp.MustCompile(`\r\n|\r`)
	reExtraNewlines = regexp.MustCompile(`\n{3,}`)
)

// Clean normalizes a text field for display: CRLF/CR become LF, runs of
// blank lines collapse to one, trailing whitespace drops from every line,
// and the whole string is trimmed.
func Clean(text string) string {
	if text == "" {
		return text
	}
	text = reLineBreaks.ReplaceAllString(text, "\n")
	text = reExtraNewlines.ReplaceAllString(text, "\n\n")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRightFunc(line, unicode.IsSpace)
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// LocalizeCurrency rewrites dollar signs to the region's currency symbol.
// Generated price blocks render amounts with "$" regardless of region; for
// regions with another symbol the block is rewritten here.
func LocalizeCurrency(text, region string) string {
	symbol := regions.CurrencySymbol(region)
	if symbol == "" || symbol == "$" {
		return text
	}
	return strings.ReplaceAll(text, "$", symbol)
}

// FormatContent cleans the parsed generation fields and strips price
// mentions from the description. A nil parse yields empty fields.
func FormatContent(parsed *entity.ListingContent) entity.ListingContent {
	if parsed == nil {
		return entity.ListingContent{}
	}
	return entity.ListingContent{
		Title:       Clean(parsed.Title),
		Description: Clean(RemovePrice(parsed.Description)),
		PriceBlock:  Clean(parsed.PriceBlock),
	}
}

// AssembleListing builds the final display string: title, description, and
// localized price block separated by blank lines, with empty sections
// skipped. The description passes through price removal once more here, so
// the assembled listing holds a clean description even when the caller
// skipped FormatContent.
func AssembleListing(content entity.ListingContent, region string) string {
	title := Clean(content.Title)
	description := Clean(RemovePrice(Clean(content.Description)))
	priceBlock := LocalizeCurrency(Clean(content.PriceBlock), region)

	parts := make([]string, 0, 5)
	if title != "" {
		parts = append(parts, title, "")
	}
	if description != "" {
		parts = append(parts, description, "")
	}
	if priceBlock != "" {
		parts = append(parts, priceBlock)
	}
	return Clean(strings.Join(parts, "\n"))
}
