package enrich

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractNeighborhood(t *testing.T) {
	tests := []struct {
		name    string
		results []SearchResult
		want    string
	}{
		{
			name:    "located in phrase",
			results: []SearchResult{{Content: "The property is located in Greenwich Village, steps from the subway."}},
			want:    "Greenwich Village",
		},
		{
			name:    "name before neighborhood keyword",
			results: []SearchResult{{Content: "Top-rated galleries, Chelsea neighborhood guide."}},
			want:    "Chelsea",
		},
		{
			name:    "labeled neighborhood",
			results: []SearchResult{{Content: "Neighborhood: Lenox Hill, part of the east side."}},
			want:    "Lenox Hill",
		},
		{
			name:    "name found in title",
			results: []SearchResult{{Title: "Living in Park Slope, Brooklyn", Content: "A quiet block."}},
			want:    "Park Slope",
		},
		{
			name:    "denylist words rejected",
			results: []SearchResult{{Content: "Homes located in This Area, with quiet streets."}},
			want:    "",
		},
		{
			name:    "too short rejected",
			results: []SearchResult{{Content: "A cottage located in Rye, New York."}},
			want:    "",
		},
		{
			name:    "uppercase source is title-cased",
			results: []SearchResult{{Content: "LOCATED IN SOHO, artist lofts abound."}},
			want:    "Soho",
		},
		{
			name:    "nothing to find",
			results: []SearchResult{{Content: "A lovely home with a sunny kitchen."}},
			want:    "",
		},
		{
			name:    "no results",
			results: nil,
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractNeighborhood(tt.results))
		})
	}
}

func TestExtractAmenities(t *testing.T) {
	results := []SearchResult{
		{Content: "Lincoln Elementary is top rated. PS 12 serves the area."},
		{Content: "Madison Square Park is steps away. Trader Joe's opened nearby."},
		{Content: "Subway Line: A, C, E."},
	}

	got := ExtractAmenities(results, 3)

	assert.Equal(t, []string{"Lincoln"}, got["schools"])
	assert.Equal(t, []string{"Trader Joe's"}, got["supermarkets"])
	assert.Equal(t, []string{"Madison Square"}, got["parks"])
	assert.Equal(t, []string{"A, C, E"}, got["transportation"])
}

func TestExtractAmenitiesFilters(t *testing.T) {
	t.Run("navigation artifacts rejected", func(t *testing.T) {
		got := ExtractAmenities([]SearchResult{{Content: "Click here for School directory."}}, 3)
		assert.Empty(t, got["schools"])
	})

	t.Run("short school numbers rejected", func(t *testing.T) {
		got := ExtractAmenities([]SearchResult{{Content: "PS 12 serves kindergarten."}}, 3)
		assert.Empty(t, got["schools"])
	})

	t.Run("single word non-school rejected", func(t *testing.T) {
		got := ExtractAmenities([]SearchResult{{Content: "Largest Supermarket chains compared."}}, 3)
		assert.Empty(t, got["supermarkets"])
	})
}

func TestExtractAmenitiesCapAndDedupe(t *testing.T) {
	t.Run("cap per category", func(t *testing.T) {
		got := ExtractAmenities([]SearchResult{
			{Content: "Hudson River Park, Fort Greene Park, Morningside Heights Park, Battery City Park."},
		}, 3)
		assert.Equal(t, []string{"Hudson River", "Fort Greene", "Morningside Heights"}, got["parks"])
	})

	t.Run("duplicates collapse", func(t *testing.T) {
		got := ExtractAmenities([]SearchResult{
			{Content: "Madison Square Park, Madison Square Park."},
		}, 3)
		assert.Equal(t, []string{"Madison Square"}, got["parks"])
	})
}

func TestExtractAmenitiesAlwaysHasCategories(t *testing.T) {
	got := ExtractAmenities(nil, 3)

	require.Len(t, got, 4)
	for _, category := range []string{"schools", "supermarkets", "parks", "transportation"} {
		items, ok := got[category]
		assert.True(t, ok)
		assert.Empty(t, items)
	}
}

func TestExtractQuality(t *testing.T) {
	results := []SearchResult{
		{Content: "Crime rate: well below the city average. Safety: considered very good for families. Quality of life: residents rate it highly."},
	}

	q := ExtractQuality(results)

	require.NotNil(t, q)
	assert.Equal(t, "well below the city average. considered very good for families", q.CrimeInfo)
	assert.Equal(t, "residents rate it highly", q.QualityOfLife)
	assert.Equal(t, "safety: considered very good for families", q.SafetyInfo)
}

func TestExtractQualitySafetySentenceCap(t *testing.T) {
	results := []SearchResult{
		{Content: "Residents feel safe walking at night. The area is secure and well patrolled. Crime is low and streets feel safe overall."},
	}

	q := ExtractQuality(results)

	assert.Equal(t, "residents feel safe walking at night. the area is secure and well patrolled", q.SafetyInfo)
}

func TestExtractQualityTruncation(t *testing.T) {
	results := []SearchResult{
		{Content: "Crime rate: " + strings.Repeat("x", 300) + "."},
	}

	q := ExtractQuality(results)

	assert.Len(t, q.CrimeInfo, 200)
}

func TestExtractQualityEmpty(t *testing.T) {
	q := ExtractQuality(nil)

	require.NotNil(t, q)
	assert.Empty(t, q.CrimeInfo)
	assert.Empty(t, q.QualityOfLife)
	assert.Empty(t, q.SafetyInfo)
}
