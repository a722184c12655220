package normalize

import (
	"regexp"
	"strings"
)

var (
	reBreaks     = regexp.MustCompile(`[\r\n]+`)
	reWhitespace = regexp.MustCompile(`\s+`)
	reCRLF       = regexp.MustCompile(`\r\n?`)
	reMultiBlank = regexp.MustCompile(`\n{3,}`)

	reComma       = regexp.MustCompile(`,(\s*)`)
	reCommaSpace  = regexp.MustCompile(`,\s+`)
	rePeriod      = regexp.MustCompile(`\.(\s*)`)
	rePeriodSpace = regexp.MustCompile(`\.\s+`)
	rePeriodEnd   = regexp.MustCompile(`\.\s*$`)
	reNumComma    = regexp.MustCompile(`(\d+),\s+(\d+)`) // "500, 000" -> "500,000"
	reSlash       = regexp.MustCompile(`\s*/\s*`)
)

// Whitespace collapses all whitespace runs to single spaces and trims.
func Whitespace(s string) string {
	if s == "" {
		return ""
	}
	return strings.TrimSpace(reWhitespace.ReplaceAllString(s, " "))
}

// LineBreaks converts any line break run to a single space.
func LineBreaks(s string) string {
	if s == "" {
		return ""
	}
	return reBreaks.ReplaceAllString(s, " ")
}

// Address flattens an address to one line and fixes punctuation spacing.
// Commas and periods get a trailing space; commas inside numbers keep none.
// Idempotent: a second pass is a no-op.
func Address(s string) string {
	if s == "" {
		return ""
	}
	s = LineBreaks(s)
	s = Whitespace(s)
	s = reComma.ReplaceAllString(s, ", $1")
	s = reCommaSpace.ReplaceAllString(s, ", ")
	s = rePeriod.ReplaceAllString(s, ". $1")
	s = rePeriodSpace.ReplaceAllString(s, ". ")
	s = rePeriodEnd.ReplaceAllString(s, ".")
	s = reNumComma.ReplaceAllString(s, "$1,$2")
	return strings.TrimSpace(s)
}

// Notes flattens free-text notes to one line, fixes comma spacing, and
// tightens slash-separated shorthand ("2BR / 1BA" -> "2BR/1BA").
// Idempotent: a second pass is a no-op.
func Notes(s string) string {
	if s == "" {
		return ""
	}
	s = LineBreaks(s)
	s = Whitespace(s)
	s = reComma.ReplaceAllString(s, ", $1")
	s = reCommaSpace.ReplaceAllString(s, ", ")
	s = reNumComma.ReplaceAllString(s, "$1,$2")
	s = reSlash.ReplaceAllString(s, "/")
	return strings.TrimSpace(s)
}

// Block cleans multi-line display text while keeping its line structure.
// Conservative: collapses >2 newlines into a single blank line and trims
// trailing spaces on lines.
func Block(s string) string {
	if s == "" {
		return ""
	}
	s = reCRLF.ReplaceAllString(s, "\n")
	s = reMultiBlank.ReplaceAllString(s, "\n\n")
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " \t")
	}
	s = strings.Join(lines, "\n")
	return strings.TrimSpace(s)
}
