package pipeline

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homescribe/listinggen/internal/entity"
	"github.com/homescribe/listinggen/internal/guardrails"
	"github.com/homescribe/listinggen/internal/llm"
	"github.com/homescribe/listinggen/internal/price"
)

// fakeGenerator answers price prompts and content prompts separately,
// telling them apart by sampling temperature.
type fakeGenerator struct {
	mu    sync.Mutex
	calls []float32

	priceResponse   string
	priceErr        error
	contentResponse string
	contentErr      error
}

func (f *fakeGenerator) Complete(_ context.Context, _ string, temperature float32) (string, error) {
	f.mu.Lock()
	f.calls = append(f.calls, temperature)
	f.mu.Unlock()
	if temperature == price.Temperature {
		return f.priceResponse, f.priceErr
	}
	return f.contentResponse, f.contentErr
}

func (f *fakeGenerator) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func (f *fakeGenerator) temperatures() []float32 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]float32(nil), f.calls...)
}

type fakeEnricher struct {
	mu           sync.Mutex
	calls        int
	gotAddress   string
	gotLandmarks []string

	data *entity.EnrichmentData
	err  error
}

func (f *fakeEnricher) Enrich(_ context.Context, address string, landmarks []string) (*entity.EnrichmentData, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.gotAddress = address
	f.gotLandmarks = landmarks
	return f.data, f.err
}

func (f *fakeEnricher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func validRequest() entity.PropertyInput {
	bedrooms := 2
	bathrooms := 1.0
	sqft := 1200
	askingPrice := 450000.0
	return entity.PropertyInput{
		Address:      "123  Main St, New York, NY 10001",
		ListingType:  "sale",
		Region:       "US",
		PropertyType: "Apartment",
		Bedrooms:     &bedrooms,
		Bathrooms:    &bathrooms,
		Sqft:         &sqft,
		Price:        &askingPrice,
		Notes:        "Beautiful apartment with modern kitchen",
		Landmarks:    []string{"Empire State Building"},
	}
}

func workingGenerator() *fakeGenerator {
	return &fakeGenerator{
		priceResponse:   `{"predicted_price": 475000, "reasoning": "Comparable sales nearby."}`,
		contentResponse: `{"title": "Sunny 2BR in Chelsea", "description": "A bright two bedroom apartment with a modern kitchen near Madison Square Park.", "price_block": "Asking Price: $450,000"}`,
	}
}

func newOrchestrator(enricher Enricher, gen llm.Generator) *Orchestrator {
	return New(guardrails.NewRulePolicy(guardrails.DefaultConfig()), enricher, gen, nil)
}

func stageSequence(tr *Trace) []Stage {
	records := tr.Records()
	stages := make([]Stage, 0, len(records))
	for _, r := range records {
		stages = append(stages, r.Stage)
	}
	return stages
}

func TestRunSuccess(t *testing.T) {
	gen := workingGenerator()
	enricher := &fakeEnricher{data: &entity.EnrichmentData{ZipCode: "10001", Neighborhood: "Chelsea"}}
	orch := newOrchestrator(enricher, gen)

	res, tr := orch.Run(context.Background(), validRequest())

	require.True(t, res.Success)
	assert.Empty(t, res.Errors)
	assert.Equal(t, tr.RequestID, res.RequestID)

	require.NotNil(t, res.Listing)
	assert.Equal(t, "Sunny 2BR in Chelsea", res.Listing.Title)
	assert.Equal(t, "Asking Price: $450,000", res.Listing.PriceBlock)
	assert.NotRegexp(t, `\$\d`, res.Listing.Description)
	assert.Equal(t,
		"Sunny 2BR in Chelsea\n\nA bright two bedroom apartment with a modern kitchen near Madison Square Park.\n\nAsking Price: $450,000",
		res.Listing.FormattedListing)

	require.NotNil(t, res.PredictedPrice)
	assert.Equal(t, 475000.0, *res.PredictedPrice)
	assert.Equal(t, "Comparable sales nearby.", res.PredictedPriceReasoning)

	require.NotNil(t, res.Enrichment)
	assert.Equal(t, "10001", res.Enrichment.ZipCode)
	assert.Equal(t, "Chelsea", res.Enrichment.Neighborhood)

	// enrichment sees the normalized address, not the raw doubled-space one
	assert.Equal(t, 1, enricher.callCount())
	assert.Equal(t, "123 Main St, New York, NY 10001", enricher.gotAddress)
	assert.Equal(t, []string{"Empire State Building"}, enricher.gotLandmarks)

	assert.Equal(t, 2, gen.callCount())
	assert.ElementsMatch(t, []float32{price.Temperature, llm.ContentTemperature}, gen.temperatures())

	assert.Equal(t, []Stage{
		StageInputGuardrail,
		StageValidate,
		StageNormalize,
		StageEnrich,
		StagePredictPrice,
		StageGenerateContent,
		StageOutputGuardrail,
		StageFormat,
	}, stageSequence(tr))
	for _, r := range tr.Records() {
		assert.Zero(t, r.NewErrors, "stage %s", r.Stage)
	}
}

func TestRunStopsAtInputGuardrail(t *testing.T) {
	gen := workingGenerator()
	enricher := &fakeEnricher{}
	orch := newOrchestrator(enricher, gen)

	req := validRequest()
	req.Notes = "Nice place'; DROP TABLE listings;--"

	res, tr := orch.Run(context.Background(), req)

	assert.False(t, res.Success)
	assert.Nil(t, res.Listing)
	assert.Equal(t, []string{"Notes: Potential injection attack detected in input"}, res.Errors)

	assert.Equal(t, []Stage{StageInputGuardrail}, stageSequence(tr))
	assert.Zero(t, enricher.callCount())
	assert.Zero(t, gen.callCount())
}

func TestRunStopsAtValidation(t *testing.T) {
	gen := workingGenerator()
	enricher := &fakeEnricher{}
	orch := newOrchestrator(enricher, gen)

	req := validRequest()
	req.Address = ""

	res, tr := orch.Run(context.Background(), req)

	assert.False(t, res.Success)
	assert.Nil(t, res.Listing)
	assert.Equal(t, []string{"address is required"}, res.Errors)

	assert.Equal(t, []Stage{StageInputGuardrail, StageValidate}, stageSequence(tr))
	assert.Zero(t, enricher.callCount())
	assert.Zero(t, gen.callCount())
}

func TestRunContentParseFailure(t *testing.T) {
	gen := workingGenerator()
	gen.contentResponse = "Sorry, I cannot help with that."
	orch := newOrchestrator(&fakeEnricher{}, gen)

	res, _ := orch.Run(context.Background(), validRequest())

	assert.False(t, res.Success)
	assert.Nil(t, res.Listing)

	require.Len(t, res.Errors, 3)
	assert.True(t, strings.HasPrefix(res.Errors[0], "Content generation failed: Failed to parse JSON from LLM response"), res.Errors[0])
	assert.Equal(t, "Output guardrail: No LLM output to validate", res.Errors[1])
	assert.Equal(t, "Format output: No LLM output to format", res.Errors[2])

	// the prediction still came through
	require.NotNil(t, res.PredictedPrice)
	assert.Equal(t, 475000.0, *res.PredictedPrice)
}

func TestRunLLMTransportError(t *testing.T) {
	gen := &fakeGenerator{
		priceErr:   errors.New("rate limited"),
		contentErr: errors.New("rate limited"),
	}
	orch := newOrchestrator(&fakeEnricher{}, gen)

	res, tr := orch.Run(context.Background(), validRequest())

	assert.False(t, res.Success)
	assert.Nil(t, res.Listing)
	assert.Nil(t, res.PredictedPrice)

	// prediction errors land before generation errors, then the two
	// downstream stages report the missing output
	assert.Equal(t, []string{
		"Price prediction failed: rate limited",
		"Content generation failed: rate limited",
		"Output guardrail: No LLM output to validate",
		"Format output: No LLM output to format",
	}, res.Errors)

	assert.Len(t, tr.Records(), 8)
}

func TestRunEnrichmentDegrades(t *testing.T) {
	gen := workingGenerator()
	enricher := &fakeEnricher{err: errors.New("search provider unreachable")}
	orch := newOrchestrator(enricher, gen)

	res, _ := orch.Run(context.Background(), validRequest())

	assert.True(t, res.Success)
	require.NotNil(t, res.Listing)
	assert.Equal(t, []string{"Enrichment failed: search provider unreachable"}, res.Errors)
}

func TestRunEnrichmentNotConfigured(t *testing.T) {
	gen := workingGenerator()
	orch := newOrchestrator(nil, gen)

	res, _ := orch.Run(context.Background(), validRequest())

	assert.True(t, res.Success)
	require.NotNil(t, res.Listing)
	require.Len(t, res.Errors, 1)
	assert.True(t, strings.HasPrefix(res.Errors[0], "Enrichment configuration error: TAVILY_API_KEY"), res.Errors[0])
}

func TestRunDiscardsOutOfRangePrediction(t *testing.T) {
	gen := workingGenerator()
	gen.priceResponse = `{"predicted_price": 50, "reasoning": "Too low."}`
	orch := newOrchestrator(&fakeEnricher{}, gen)

	res, _ := orch.Run(context.Background(), validRequest())

	assert.True(t, res.Success)
	assert.Nil(t, res.PredictedPrice)
	assert.Empty(t, res.PredictedPriceReasoning)
	assert.Equal(t, []string{"Predicted price validation failed: 50"}, res.Errors)
}

func TestRunOutputGuardrailViolation(t *testing.T) {
	gen := workingGenerator()
	gen.contentResponse = `{"title": "Sunny 2BR in Chelsea", "description": "Priced at $450,000, this apartment has a modern kitchen near the park.", "price_block": "Asking Price: $450,000"}`
	orch := newOrchestrator(&fakeEnricher{}, gen)

	res, tr := orch.Run(context.Background(), validRequest())

	assert.False(t, res.Success)
	assert.Nil(t, res.Listing)
	assert.Equal(t, []string{"Compliance: Price information should not appear in description (it should only be in price_block)"}, res.Errors)

	// every stage still ran; only the verdict changed
	assert.Len(t, tr.Records(), 8)
	require.NotNil(t, res.PredictedPrice)
}

func TestRunMissingNumericFields(t *testing.T) {
	gen := workingGenerator()
	orch := newOrchestrator(&fakeEnricher{}, gen)

	req := validRequest()
	req.Bedrooms = nil
	req.Bathrooms = nil
	req.Sqft = nil

	res, _ := orch.Run(context.Background(), req)

	assert.False(t, res.Success)
	assert.Zero(t, gen.callCount())
	assert.Equal(t, []string{
		"Price prediction requires bedrooms, bathrooms, and sqft",
		"Cannot generate content: missing required fields (address, listing_type, property_type, bedrooms, bathrooms, or sqft)",
		"Output guardrail: No LLM output to validate",
		"Format output: No LLM output to format",
	}, res.Errors)
}

func TestRunLocalizesAssembledListing(t *testing.T) {
	bedrooms := 1
	bathrooms := 1.0
	sqft := 600
	rent := 2400.0
	req := entity.PropertyInput{
		Address:      "45 Camden Rd, London NW1 9LQ",
		ListingType:  "rent",
		Region:       "UK",
		PropertyType: "Flat",
		Bedrooms:     &bedrooms,
		Bathrooms:    &bathrooms,
		Sqft:         &sqft,
		Price:        &rent,
		Notes:        "Bright flat with a shared garden",
	}

	gen := &fakeGenerator{
		priceResponse:   `{"predicted_price": 2600, "reasoning": "Comparable lets nearby."}`,
		contentResponse: `{"title": "Bright Flat in Camden", "description": "A bright one bedroom flat with a shared garden near the station.", "price_block": "Rent: $2,400/month"}`,
	}
	orch := newOrchestrator(&fakeEnricher{}, gen)

	res, _ := orch.Run(context.Background(), req)

	require.True(t, res.Success)
	require.NotNil(t, res.Listing)

	// the standalone block keeps the model's symbol; the assembled
	// listing is localized
	assert.Equal(t, "Rent: $2,400/month", res.Listing.PriceBlock)
	assert.Contains(t, res.Listing.FormattedListing, "Rent: £2,400/month")
	assert.NotContains(t, res.Listing.FormattedListing, "$")
}
