package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemovePrice(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "priced at phrase",
			text: "This beautiful home is priced at $450,000 and move-in ready.",
			want: "This beautiful home is move-in ready.",
		},
		{
			name: "costs phrase",
			text: "This home costs $499,000 and includes a new roof.",
			want: "This home includes a new roof.",
		},
		{
			name: "only phrase",
			text: "Yours today only $315,000, schedule a tour.",
			want: "Yours today, schedule a tour.",
		},
		{
			name: "for phrase",
			text: "Offered for $925,000. Contact us today.",
			want: "Offered. Contact us today.",
		},
		{
			name: "rent is phrase with unit",
			text: "A sunny two bedroom apartment. Rent is $2,400 per month.",
			want: "A sunny two bedroom apartment.",
		},
		{
			name: "rent with alternative weekly clause",
			text: "A rare gem. Rent is $2,400 per month or 550 per week.",
			want: "A rare gem.",
		},
		{
			name: "dollars suffix",
			text: "It rents quickly at 1500 dollars.",
			want: "It rents quickly at.",
		},
		{
			name: "usd suffix",
			text: "Valued near 900000 USD on recent comps.",
			want: "Valued near on recent comps.",
		},
		{
			name: "labeled rent",
			text: "Monthly rent: 3200, utilities included.",
			want: "Monthly, utilities included.",
		},
		{
			name: "slash month",
			text: "Listed at 2,850/month near the park.",
			want: "Listed at near the park.",
		},
		{
			name: "weekly suffix",
			text: "Currently 750 weekly with utilities.",
			want: "Currently with utilities.",
		},
		{
			name: "bare dollar amount between sentences",
			text: "New windows. $725,000. Motivated seller.",
			want: "New windows. Motivated seller.",
		},
		{
			name: "conjunctions in clean text survive",
			text: "Quiet street near parks and schools.",
			want: "Quiet street near parks and schools.",
		},
		{
			name: "genuine per month phrase survives",
			text: "Cleaning service twice per month included.",
			want: "Cleaning service twice per month included.",
		},
		{
			name: "clean text untouched",
			text: "Spacious and bright, close to transit.",
			want: "Spacious and bright, close to transit.",
		},
		{
			name: "empty",
			text: "",
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RemovePrice(tt.text))
		})
	}
}

func TestRemovePriceFixedPoint(t *testing.T) {
	texts := []string{
		"This beautiful home is priced at $450,000 and move-in ready.",
		"A sunny two bedroom apartment. Rent is $2,400 per month.",
		"Asking $500,000 or best offer, priced at $499,900, rent is $2,100 per month.",
		"New windows. $725,000. Motivated seller.",
		"Valued near 900000 USD on recent comps, only $99 weekly.",
		"A rare gem. Rent is $2,400 per month or 550 per week.",
		"Move-in ready and priced at $450,000.",
		"Quiet street near parks and schools.",
	}
	for _, text := range texts {
		once := RemovePrice(text)
		assert.Equal(t, once, RemovePrice(once), "not a fixed point for %q", text)
		assert.NotRegexp(t, `\$\d`, once)
		assert.NotRegexp(t, `(?i)\d\s*(dollars|usd|per\s*month|per\s*week|monthly|weekly)`, once)
	}
}
