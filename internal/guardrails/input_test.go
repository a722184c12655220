package guardrails

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckInputCleanRequest(t *testing.T) {
	p := NewRulePolicy(DefaultConfig())

	violations := p.CheckInput(
		"123 Main St, New York, NY 10001",
		"Beautiful apartment with modern kitchen",
	)
	assert.Empty(t, violations)
}

func TestCheckInputInjection(t *testing.T) {
	p := NewRulePolicy(DefaultConfig())

	tests := []struct {
		name    string
		address string
		notes   string
		want    string
	}{
		{
			"sql injection in notes",
			"123 Main St, New York",
			"great home '; DROP TABLE listings;--",
			"Notes: " + msgInjection,
		},
		{
			"union select in address",
			"1 UNION SELECT * FROM users",
			"",
			"Address: " + msgInjection,
		},
		{
			"script tag in notes",
			"123 Main St, New York",
			"nice house <script>alert(1)</script>",
			"Notes: " + msgInjection,
		},
		{
			"shell chain in notes",
			"123 Main St, New York",
			"spacious | rm -rf /",
			"Notes: " + msgInjection,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			violations := p.CheckInput(tt.address, tt.notes)
			assert.Contains(t, violations, tt.want)
		})
	}
}

// Violations only accumulate: adding more hostile text to an input that
// already trips a rule never masks the earlier detection.
func TestCheckInputMonotonicity(t *testing.T) {
	p := NewRulePolicy(DefaultConfig())

	address := "123 Main St, New York '; DROP TABLE users;--"
	first := p.CheckInput(address, "")
	require.Contains(t, first, "Address: "+msgInjection)

	extended := address + " <script>alert(1)</script> && rm -rf"
	second := p.CheckInput(extended, "")
	assert.Contains(t, second, "Address: "+msgInjection)
	assert.GreaterOrEqual(t, len(second), len(first))
}

func TestCheckInputLengthLimits(t *testing.T) {
	p := NewRulePolicy(DefaultConfig())

	longAddress := "123 Main St, " + strings.Repeat("a", 500)
	violations := p.CheckInput(longAddress, "")
	require.NotEmpty(t, violations)
	assert.Contains(t, violations[0], "Address exceeds maximum length of 500 characters")

	longNotes := "cozy home " + strings.Repeat("b", 2001)
	violations = p.CheckInput("123 Main St, New York", longNotes)
	require.NotEmpty(t, violations)
	assert.Contains(t, violations[0], "Notes exceeds maximum length of 2000 characters")
}

func TestCheckInputModeration(t *testing.T) {
	p := NewRulePolicy(DefaultConfig())

	violations := p.CheckInput("123 Main St, New York", "great house, definitely not a scam")
	assert.Contains(t, violations, "Notes: "+msgInappropriate)
}

func TestCheckInputTopicRelevance(t *testing.T) {
	p := NewRulePolicy(DefaultConfig())

	t.Run("empty input fails", func(t *testing.T) {
		violations := p.CheckInput("", "")
		assert.Contains(t, violations, msgNotPropertyRelated)
	})

	t.Run("off-topic input fails", func(t *testing.T) {
		violations := p.CheckInput("tell me a joke", "")
		assert.Contains(t, violations, msgNotPropertyRelated)
	})

	t.Run("comma plus structure passes as address", func(t *testing.T) {
		violations := p.CheckInput("14 Rue Cler, Paris", "")
		assert.Empty(t, violations)
	})

	t.Run("abbreviations count with numeric prefix", func(t *testing.T) {
		violations := p.CheckInput("sunny place with 3br and 2ba upstairs", "")
		assert.Empty(t, violations)
	})
}

func TestPropertyRelated(t *testing.T) {
	tests := []struct {
		name string
		text string
		min  int
		want bool
	}{
		{"keyword match", "lovely apartment downtown", 1, true},
		{"two keywords", "apartment with garage parking", 2, true},
		{"one keyword below threshold", "big apartment", 2, false},
		{"dollar sign counts", "going for $500,000 total", 1, true},
		{"whitespace only", "   ", 1, false},
		{"location term fallback", "45 Ocean Bay Unit", 1, true},
		{"no structure no fallback", "gibberish", 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, propertyRelated(tt.text, tt.min))
		})
	}
}
