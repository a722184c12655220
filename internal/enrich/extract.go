package enrich

import (
	"regexp"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/homescribe/listinggen/internal/entity"
)

const (
	snippetMaxLen  = 200 // per quality category, after joining
	sentenceMaxLen = 150 // per safety sentence, before joining
)

var reSpaces = regexp.MustCompile(`\s+`)

// Words that disqualify a neighborhood candidate, matched against the whole
// name and against each of its words.
var neighborhoodDenylist = map[string]struct{}{
	"what": {}, "where": {}, "when": {}, "who": {}, "why": {}, "how": {},
	"which": {}, "this": {}, "that": {},
	"the": {}, "and": {}, "or": {}, "for": {}, "with": {}, "from": {},
	"about": {}, "into": {}, "onto": {},
	"area": {}, "neighborhood": {}, "location": {}, "place": {}, "city": {},
	"state": {}, "zip": {}, "code": {}, "street": {}, "avenue": {},
	"road": {}, "drive": {}, "lane": {}, "boulevard": {},
}

// Lead-in phrases match case-insensitively; the captured name must start
// with a capital so prose words do not qualify.
var neighborhoodPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i:in|located in|neighborhood of|area of)\s+([A-Z][a-zA-Z\s]+?)(?:,|\.|$)`),
	regexp.MustCompile(`([A-Z][a-zA-Z\s]+?)\s+(?i:neighborhood)`),
	regexp.MustCompile(`(?i:neighborhood:)\s*([A-Z][a-zA-Z\s]+?)(?:,|\.|$)`),
}

// ExtractNeighborhood pulls a neighborhood name out of search results from
// phrases like "located in X" or "X neighborhood". Candidates carrying
// generic or interrogative words are rejected, as is anything outside 4-49
// characters; the first survivor is returned title-cased.
func ExtractNeighborhood(results []SearchResult) string {
	for _, result := range results {
		combined := result.Title + " " + result.Content
		for _, pattern := range neighborhoodPatterns {
			for _, m := range pattern.FindAllStringSubmatch(combined, -1) {
				candidate := strings.TrimSpace(reSpaces.ReplaceAllString(m[1], " "))
				if validNeighborhood(candidate) {
					return titleCase(candidate)
				}
			}
		}
	}
	return ""
}

func validNeighborhood(name string) bool {
	lower := strings.ToLower(name)
	if _, bad := neighborhoodDenylist[lower]; bad {
		return false
	}
	for _, word := range strings.Fields(lower) {
		if _, bad := neighborhoodDenylist[word]; bad {
			return false
		}
	}
	n := utf8.RuneCountInString(name)
	return n > 3 && n < 50
}

// titleCase uppercases the first letter of each space-separated word and
// lowercases the rest.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		r, size := utf8.DecodeRuneInString(word)
		words[i] = string(unicode.ToUpper(r)) + strings.ToLower(word[size:])
	}
	return strings.Join(words, " ")
}

// amenityPatterns capture place names per category. Matching is
// case-insensitive; captures keep the casing of the source text.
var amenityPatterns = map[string][]*regexp.Regexp{
	"schools": {
		regexp.MustCompile(`(?i)([A-Z][a-zA-Z0-9\s&'-]+?)\s+(?:School|Elementary|High School|Academy|Middle School)`),
		regexp.MustCompile(`(?i)(?:PS|Public School|P\.S\.)\s+(\d+)`),
		regexp.MustCompile(`(?i)([A-Z][a-zA-Z\s]+?)\s+Elementary`),
		regexp.MustCompile(`(?i)([A-Z][a-zA-Z\s]+?)\s+High`),
	},
	"supermarkets": {
		regexp.MustCompile(`(?i)([A-Z][a-zA-Z0-9\s&'-]+?)\s+(?:Supermarket|Grocery|Market|Whole Foods|Trader Joe|Walmart|Target|Kroger|Safeway)`),
		regexp.MustCompile(`(?i)(?:Whole Foods|Trader Joe's?|Walmart|Target|Kroger|Safeway|Stop & Shop)`),
	},
	"parks": {
		regexp.MustCompile(`(?i)([A-Z][a-zA-Z0-9\s&'-]+?)\s+Park`),
		regexp.MustCompile(`(?i)([A-Z][a-zA-Z\s]+?)\s+Playground`),
		regexp.MustCompile(`(?i)([A-Z][a-zA-Z\s]+?)\s+Recreation\s+Area`),
	},
	"transportation": {
		regexp.MustCompile(`(?i)(?:Subway|Metro|Bus)\s+(?:Line|Station):\s*([A-Z0-9\s,]+)`),
		regexp.MustCompile(`(?i)([A-Z0-9]+)\s+(?:line|station)`),
		regexp.MustCompile(`(?i)(?:near|at)\s+([A-Z][a-zA-Z\s]+?)\s+(?:Subway|Metro|Bus)\s+Station`),
	},
}

// amenityFilterWords reject navigation artifacts and generic page text, by
// substring, case-insensitive.
var amenityFilterWords = []string{
	"overview", "website", "contacts", "information", "school website",
	"click", "here", "more", "details", "page", "home", "about",
	"contact", "menu", "navigation", "search", "login", "sign up",
	"what", "where", "when", "who", "why", "how", "which", "this", "that",
}

// ExtractAmenities scans search results for named places in each amenity
// category, up to maxItems per category, deduplicated in scan order.
// Single-word matches only survive in the schools category, where school
// numbers are legitimate single tokens.
func ExtractAmenities(results []SearchResult, maxItems int) map[string][]string {
	amenities := make(map[string][]string, len(entity.AmenityCategories))
	for _, category := range entity.AmenityCategories {
		amenities[category] = []string{}
	}

	for _, result := range results {
		combined := result.Title + " " + result.Content
		for _, category := range entity.AmenityCategories {
			if len(amenities[category]) >= maxItems {
				continue
			}
			for _, pattern := range amenityPatterns[category] {
				for _, m := range pattern.FindAllStringSubmatch(combined, -1) {
					candidate := m[0]
					if len(m) > 1 {
						candidate = m[1]
					}
					candidate = strings.TrimSpace(candidate)
					if !validAmenity(candidate, category) {
						continue
					}
					candidate = strings.TrimSpace(reSpaces.ReplaceAllString(candidate, " "))
					if candidate == "" || slices.Contains(amenities[category], candidate) {
						continue
					}
					amenities[category] = append(amenities[category], candidate)
					if len(amenities[category]) >= maxItems {
						break
					}
				}
				if len(amenities[category]) >= maxItems {
					break
				}
			}
		}
	}
	return amenities
}

func validAmenity(candidate, category string) bool {
	n := utf8.RuneCountInString(candidate)
	if n < 3 || n > 100 {
		return false
	}
	lower := strings.ToLower(candidate)
	for _, word := range amenityFilterWords {
		if strings.Contains(lower, word) {
			return false
		}
	}
	if category != "schools" && len(strings.Fields(candidate)) < 2 {
		return false
	}
	return true
}

var (
	crimePatterns = []*regexp.Regexp{
		regexp.MustCompile(`crime rate[:\s]+([^.]+)`),
		regexp.MustCompile(`safety[:\s]+([^.]+)`),
		regexp.MustCompile(`crime statistics[:\s]+([^.]+)`),
	}
	qualityOfLifePatterns = []*regexp.Regexp{
		regexp.MustCompile(`quality of life[:\s]+([^.]+)`),
		regexp.MustCompile(`livability[:\s]+([^.]+)`),
		regexp.MustCompile(`neighborhood rating[:\s]+([^.]+)`),
	}
	safetyKeywords = []string{"safe", "safety", "secure", "low crime", "well-maintained"}
)

// ExtractQuality collects crime, quality-of-life, and safety snippets from
// the combined result text. Extraction runs over a lower-cased copy, so the
// snippets come back lower-cased.
func ExtractQuality(results []SearchResult) *entity.NeighborhoodQuality {
	var b strings.Builder
	for _, result := range results {
		b.WriteString(result.Title)
		b.WriteString(" ")
		b.WriteString(result.Content)
		b.WriteString(" ")
	}
	combined := strings.ToLower(b.String())

	return &entity.NeighborhoodQuality{
		CrimeInfo:     joinSnippets(combined, crimePatterns),
		QualityOfLife: joinSnippets(combined, qualityOfLifePatterns),
		SafetyInfo:    safetySentences(combined),
	}
}

// joinSnippets keeps up to two matches per pattern and three overall.
func joinSnippets(text string, patterns []*regexp.Regexp) string {
	var snippets []string
	for _, pattern := range patterns {
		for i, m := range pattern.FindAllStringSubmatch(text, -1) {
			if i >= 2 {
				break
			}
			snippets = append(snippets, m[1])
		}
	}
	if len(snippets) == 0 {
		return ""
	}
	if len(snippets) > 3 {
		snippets = snippets[:3]
	}
	return truncateRunes(strings.Join(snippets, ". "), snippetMaxLen)
}

// safetySentences keeps up to two sentences that mention a safety keyword
// and are long enough to carry meaning.
func safetySentences(text string) string {
	var snippets []string
	for _, sentence := range strings.Split(text, ".") {
		if !containsAny(sentence, safetyKeywords) {
			continue
		}
		sentence = strings.TrimSpace(sentence)
		if utf8.RuneCountInString(sentence) <= 20 {
			continue
		}
		snippets = append(snippets, truncateRunes(sentence, sentenceMaxLen))
		if len(snippets) >= 2 {
			break
		}
	}
	return strings.Join(snippets, ". ")
}

func containsAny(s string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}

func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
