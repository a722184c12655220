package enrich

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAddress = "123 Main St, New York, NY 10001"

type fakeProvider struct {
	mu      sync.Mutex
	calls   []string
	results map[string][]SearchResult
	errs    map[string]error
	delay   time.Duration
}

func (f *fakeProvider) Search(ctx context.Context, query string) ([]SearchResult, error) {
	f.mu.Lock()
	f.calls = append(f.calls, query)
	f.mu.Unlock()

	if f.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(f.delay):
		}
	}
	if err := f.errs[query]; err != nil {
		return nil, err
	}
	return f.results[query], nil
}

func (f *fakeProvider) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func TestEnrich(t *testing.T) {
	provider := &fakeProvider{
		results: map[string][]SearchResult{
			BuildAmenitiesQuery(testAddress): {
				{Content: "Lincoln Elementary is top rated. Madison Square Park, Fort Greene Park."},
			},
			BuildQualityQuery(testAddress): {
				{Content: "The property is located in Chelsea, Manhattan. Crime rate: below average. Residents feel safe walking at night."},
			},
		},
	}
	engine, err := NewEngine(Config{}, provider, nil)
	require.NoError(t, err)

	data, err := engine.Enrich(context.Background(), testAddress, []string{"Empire State Building"})
	require.NoError(t, err)
	require.NotNil(t, data)

	assert.Equal(t, "10001", data.ZipCode)
	assert.Equal(t, "Chelsea", data.Neighborhood)
	assert.Equal(t, []string{"Empire State Building"}, data.Landmarks)
	assert.Equal(t, []string{"Lincoln"}, data.KeyAmenities["schools"])
	assert.Equal(t, []string{"Madison Square", "Fort Greene"}, data.KeyAmenities["parks"])
	assert.Empty(t, data.KeyAmenities["supermarkets"])
	assert.Empty(t, data.KeyAmenities["transportation"])

	require.NotNil(t, data.Quality)
	assert.Equal(t, "below average", data.Quality.CrimeInfo)
	assert.Contains(t, data.Quality.SafetyInfo, "residents feel safe")

	assert.ElementsMatch(t,
		[]string{BuildAmenitiesQuery(testAddress), BuildQualityQuery(testAddress)},
		provider.calls)
}

func TestEnrichSearchErrorDegrades(t *testing.T) {
	provider := &fakeProvider{
		errs: map[string]error{
			BuildAmenitiesQuery(testAddress): errors.New("rate limited"),
		},
		results: map[string][]SearchResult{
			BuildQualityQuery(testAddress): {{Content: "Crime rate: low."}},
		},
	}
	engine, err := NewEngine(Config{}, provider, nil)
	require.NoError(t, err)

	data, err := engine.Enrich(context.Background(), testAddress, nil)
	require.NoError(t, err)
	require.NotNil(t, data)

	for _, items := range data.KeyAmenities {
		assert.Empty(t, items)
	}
	require.NotNil(t, data.Quality)
	assert.Equal(t, "low", data.Quality.CrimeInfo)
	assert.Nil(t, data.Landmarks)
}

func TestEnrichTimeoutDegrades(t *testing.T) {
	provider := &fakeProvider{delay: 200 * time.Millisecond}
	engine, err := NewEngine(Config{SearchTimeout: 10 * time.Millisecond}, provider, nil)
	require.NoError(t, err)

	data, err := engine.Enrich(context.Background(), testAddress, nil)
	require.NoError(t, err)
	require.NotNil(t, data)

	assert.Equal(t, "10001", data.ZipCode)
	assert.Empty(t, data.Neighborhood)
	for _, items := range data.KeyAmenities {
		assert.Empty(t, items)
	}
	assert.Equal(t, 2, provider.callCount())
}

func TestEnrichNotConfigured(t *testing.T) {
	engine, err := NewEngine(Config{}, nil, nil)
	require.NoError(t, err)

	data, err := engine.Enrich(context.Background(), testAddress, nil)
	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.Nil(t, data)
}

func TestEnrichBlankAddress(t *testing.T) {
	provider := &fakeProvider{}
	engine, err := NewEngine(Config{}, provider, nil)
	require.NoError(t, err)

	data, err := engine.Enrich(context.Background(), "   ", nil)
	require.NoError(t, err)
	assert.Nil(t, data)
	assert.Equal(t, 0, provider.callCount())
}

func TestEnrichCachesResults(t *testing.T) {
	provider := &fakeProvider{
		results: map[string][]SearchResult{
			BuildAmenitiesQuery(testAddress): {{Content: "Madison Square Park nearby."}},
			BuildQualityQuery(testAddress):   {{Content: "Located in Chelsea, Manhattan."}},
		},
	}
	engine, err := NewEngine(Config{}, provider, nil)
	require.NoError(t, err)

	first, err := engine.Enrich(context.Background(), testAddress, nil)
	require.NoError(t, err)
	second, err := engine.Enrich(context.Background(), testAddress, nil)
	require.NoError(t, err)

	assert.Equal(t, 2, provider.callCount())
	assert.Equal(t, first.Neighborhood, second.Neighborhood)
	assert.Equal(t, first.KeyAmenities, second.KeyAmenities)
}

func TestEnrichErrorsNotCached(t *testing.T) {
	provider := &fakeProvider{
		errs: map[string]error{
			BuildAmenitiesQuery(testAddress): errors.New("rate limited"),
		},
		results: map[string][]SearchResult{
			BuildQualityQuery(testAddress): {{Content: "Located in Chelsea, Manhattan."}},
		},
	}
	engine, err := NewEngine(Config{}, provider, nil)
	require.NoError(t, err)

	_, err = engine.Enrich(context.Background(), testAddress, nil)
	require.NoError(t, err)
	_, err = engine.Enrich(context.Background(), testAddress, nil)
	require.NoError(t, err)

	// the amenities query failed both times, only the quality query is cached
	assert.Equal(t, 3, provider.callCount())
}
