package guardrails

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/homescribe/listinggen/constants"
	"github.com/homescribe/listinggen/internal/entity"
)

var (
	reDollarAmount = regexp.MustCompile(`\$[\d,]+`)
	reBareAmount   = regexp.MustCompile(`\d+[\d,]*`)
)

// CheckOutput runs all output rules on the parsed LLM payload: structure,
// lengths, moderation, injection, topic relevance, price-leak, and numeric
// price compliance against the original asking price. A structure failure
// short-circuits the remaining checks.
func (p *RulePolicy) CheckOutput(content *entity.ListingContent, originalPrice *float64, listingType constants.ListingType) []string {
	var violations []string

	if content == nil {
		return []string{"Output guardrail: No LLM output to validate"}
	}

	if msg := checkOutputStructure(content); msg != "" {
		return []string{"Output structure: " + msg}
	}

	violations = append(violations, p.checkOutputLengths(content)...)

	if detectInappropriate(content.Title) {
		violations = append(violations, "Title: "+msgInappropriate)
	}
	if detectInappropriate(content.Description) {
		violations = append(violations, "Description: "+msgInappropriate)
	}

	for _, f := range []struct{ name, value string }{
		{"title", content.Title},
		{"description", content.Description},
		{"price_block", content.PriceBlock},
	} {
		if detectInjection(f.value) {
			violations = append(violations, capitalize(f.name)+": "+msgInjection)
		}
	}

	if !propertyRelated(content.Title, 1) {
		violations = append(violations, "Title: "+msgNotPropertyRelated)
	}
	// longer text, require a little more evidence
	if !propertyRelated(content.Description, 2) {
		violations = append(violations, "Description: "+msgNotPropertyRelated)
	}

	if ContainsPrice(content.Description) {
		violations = append(violations, "Compliance: Price information should not appear in description (it should only be in price_block)")
	}

	violations = append(violations, p.checkPriceCompliance(content.PriceBlock, originalPrice, listingType)...)

	return violations
}

func checkOutputStructure(content *entity.ListingContent) string {
	if strings.TrimSpace(content.Title) == "" {
		return "LLM output 'title' cannot be empty"
	}
	if strings.TrimSpace(content.Description) == "" {
		return "LLM output 'description' cannot be empty"
	}
	if strings.TrimSpace(content.PriceBlock) == "" {
		return "LLM output 'price_block' cannot be empty"
	}
	return ""
}

func (p *RulePolicy) checkOutputLengths(content *entity.ListingContent) []string {
	var violations []string
	if n := utf8.RuneCountInString(content.Title); n > p.cfg.MaxTitleLength {
		violations = append(violations, fmt.Sprintf("Title exceeds maximum length of %d characters (got %d)", p.cfg.MaxTitleLength, n))
	}
	if n := utf8.RuneCountInString(content.Description); n > p.cfg.MaxDescriptionLength {
		violations = append(violations, fmt.Sprintf("Description exceeds maximum length of %d characters (got %d)", p.cfg.MaxDescriptionLength, n))
	}
	if n := utf8.RuneCountInString(content.PriceBlock); n > p.cfg.MaxPriceBlockLength {
		violations = append(violations, fmt.Sprintf("Price block exceeds maximum length of %d characters (got %d)", p.cfg.MaxPriceBlockLength, n))
	}
	return violations
}

// checkPriceCompliance extracts the first numeric token from price_block and
// requires it within the tolerance band of the original price: rent display
// may legitimately differ by billing cycle, so it gets the wider band.
func (p *RulePolicy) checkPriceCompliance(priceBlock string, originalPrice *float64, listingType constants.ListingType) []string {
	if originalPrice == nil || priceBlock == "" {
		return nil
	}

	found, ok := extractPrice(priceBlock)
	if !ok {
		return nil
	}

	deviation := math.Abs(found-*originalPrice) / *originalPrice
	if listingType == constants.ListingTypeRent {
		if deviation > p.cfg.RentPriceTolerance {
			return []string{"Price in price_block does not match original price (rental)"}
		}
		return nil
	}
	if deviation > p.cfg.SalePriceTolerance {
		return []string{"Price in price_block does not match original price (sale)"}
	}
	return nil
}

func extractPrice(s string) (float64, bool) {
	for _, re := range []*regexp.Regexp{reDollarAmount, reBareAmount} {
		match := re.FindString(s)
		if match == "" {
			continue
		}
		cleaned := strings.NewReplacer("$", "", ",", "").Replace(match)
		if v, err := strconv.ParseFloat(cleaned, 64); err == nil {
			return v, true
		}
	}
	return 0, false
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
