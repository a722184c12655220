package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		symbol string
		amount float64
		want   string
	}{
		{"$", 450000, "$450,000.00"},
		{"$", 0, "$0.00"},
		{"$", 999.5, "$999.50"},
		{"$", 1234567.891, "$1,234,567.89"},
		{"£", 1800, "£1,800.00"},
		{"$", -2500, "-$2,500.00"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatMoney(tt.symbol, tt.amount))
		})
	}
}

func TestFormatCount(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1200, "1,200"},
		{1234567, "1,234,567"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatCount(tt.n))
	}
}

func TestFormatBathrooms(t *testing.T) {
	assert.Equal(t, "1", FormatBathrooms(1.0))
	assert.Equal(t, "1.5", FormatBathrooms(1.5))
	assert.Equal(t, "3", FormatBathrooms(3))
}
