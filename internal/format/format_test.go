package format

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/homescribe/listinggen/internal/entity"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "line break normalization",
			text: "Line one\r\nLine two\rLine three",
			want: "Line one\nLine two\nLine three",
		},
		{
			name: "blank line runs collapse to one",
			text: "Title\n\n\n\nBody",
			want: "Title\n\nBody",
		},
		{
			name: "trailing whitespace per line",
			text: "Header   \nBody\t\nEnd",
			want: "Header\nBody\nEnd",
		},
		{
			name: "outer trim",
			text: "\n\n  Text  \n\n",
			want: "Text",
		},
		{
			name: "empty",
			text: "",
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Clean(tt.text))
		})
	}
}

func TestLocalizeCurrency(t *testing.T) {
	assert.Equal(t, "Asking Price: $450,000", LocalizeCurrency("Asking Price: $450,000", "US"))
	assert.Equal(t, "Rent: £2,400/month", LocalizeCurrency("Rent: $2,400/month", "UK"))
	assert.Equal(t, "Price: $725,000", LocalizeCurrency("Price: $725,000", "CA"))

	// unknown regions fall back to the US table
	assert.Equal(t, "$100", LocalizeCurrency("$100", "XX"))
}

func TestFormatContent(t *testing.T) {
	got := FormatContent(&entity.ListingContent{
		Title:       "  Sunny Retreat in Maple Grove  ",
		Description: "Bright corner unit for $725,000 with a renovated kitchen.",
		PriceBlock:  "Asking Price: $725,000\n",
	})

	assert.Equal(t, "Sunny Retreat in Maple Grove", got.Title)
	assert.Equal(t, "Bright corner unit with a renovated kitchen.", got.Description)
	assert.Equal(t, "Asking Price: $725,000", got.PriceBlock)
}

func TestFormatContentNil(t *testing.T) {
	assert.Equal(t, entity.ListingContent{}, FormatContent(nil))
}

func TestAssembleListing(t *testing.T) {
	got := AssembleListing(entity.ListingContent{
		Title:       "Sunny Retreat in Maple Grove",
		Description: "Bright corner unit with a renovated kitchen.",
		PriceBlock:  "Asking Price: $725,000",
	}, "US")

	want := "Sunny Retreat in Maple Grove\n\n" +
		"Bright corner unit with a renovated kitchen.\n\n" +
		"Asking Price: $725,000"
	assert.Equal(t, want, got)
}

func TestAssembleListingLocalizesPriceBlock(t *testing.T) {
	got := AssembleListing(entity.ListingContent{
		Title:       "Garden Flat in Camden",
		Description: "Lovely garden flat with southern light.",
		PriceBlock:  "Rent: $2,400/month",
	}, "UK")

	assert.Contains(t, got, "Rent: £2,400/month")
	assert.NotContains(t, got, "$")
}

func TestAssembleListingStripsPriceFromDescription(t *testing.T) {
	got := AssembleListing(entity.ListingContent{
		Title:       "Garden Flat",
		Description: "Lovely garden flat priced at $310,000 with southern light.",
	}, "US")

	assert.Equal(t, "Garden Flat\n\nLovely garden flat with southern light.", got)
}

func TestAssembleListingSkipsEmptySections(t *testing.T) {
	got := AssembleListing(entity.ListingContent{
		Description: "A quiet home.",
		PriceBlock:  "Price: $310,000",
	}, "US")
	assert.Equal(t, "A quiet home.\n\nPrice: $310,000", got)

	assert.Equal(t, "", AssembleListing(entity.ListingContent{}, "US"))
}

func TestAssembleListingFlattensDescriptionParagraphs(t *testing.T) {
	got := AssembleListing(entity.ListingContent{
		Title:       "Loft",
		Description: "Para one.\n\nPara two.",
	}, "US")
	assert.Equal(t, "Loft\n\nPara one. Para two.", got)
}
