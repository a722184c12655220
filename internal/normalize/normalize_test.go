package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddress(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"comma spacing", "123 Main St,New York", "123 Main St, New York"},
		{"collapse spaces", "  123   Main  St  ", "123 Main St"},
		{"line breaks to spaces", "123 Main St\nNew York, NY", "123 Main St New York, NY"},
		{"crlf", "123 Main St\r\nNew York", "123 Main St New York"},
		{"number comma survives", "worth $500,000 nearby", "worth $500,000 nearby"},
		{"abbreviation period", "123 Main St.New York", "123 Main St. New York"},
		{"trailing period keeps no space", "123 Main St.", "123 Main St."},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Address(tt.in))
		})
	}
}

func TestNotes(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"slash shorthand", "2BR / 1BA, hardwood floors", "2BR/1BA, hardwood floors"},
		{"comma spacing", "2BR/1BA,1000 sqft", "2BR/1BA, 1000 sqft"},
		{"multiline", "bright rooms\n\ngarden access", "bright rooms garden access"},
		{"number comma survives", "asking $1,250 monthly", "asking $1,250 monthly"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Notes(tt.in))
		})
	}
}

// One cleaning pass must be a fixed point; downstream code renormalizes
// opportunistically and the result has to be stable.
func TestIdempotence(t *testing.T) {
	inputs := []string{
		"123 Main St,New York, NY 10001",
		"  spaced\tout\r\ntext  ",
		"2BR / 1BA,  1000 sqft\nquiet street",
		"worth $500, 000 at 12. 5 Main St.",
		"",
		"   ",
	}

	for _, in := range inputs {
		once := Address(in)
		assert.Equal(t, once, Address(once), "Address not idempotent for %q", in)

		once = Notes(in)
		assert.Equal(t, once, Notes(once), "Notes not idempotent for %q", in)

		once = Block(in)
		assert.Equal(t, once, Block(once), "Block not idempotent for %q", in)
	}
}

func TestBlock(t *testing.T) {
	assert.Equal(t, "title\n\nbody", Block("title\r\n\r\n\r\n\r\nbody  "))
	assert.Equal(t, "a\nb", Block("a   \nb"))
}
