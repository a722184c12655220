// Package pipeline runs one listing request through the staged generation
// flow: input guardrail, field validation, normalization, enrichment, the
// parallel price-prediction and content-generation pair, output guardrail,
// and formatting. Only the two gates (input guardrail, validation) stop a
// run early; every later stage degrades the run by appending errors and
// leaving its state contribution absent.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/homescribe/listinggen/constants"
	"github.com/homescribe/listinggen/internal/enrich"
	"github.com/homescribe/listinggen/internal/entity"
	"github.com/homescribe/listinggen/internal/format"
	"github.com/homescribe/listinggen/internal/guardrails"
	"github.com/homescribe/listinggen/internal/llm"
	"github.com/homescribe/listinggen/internal/normalize"
	"github.com/homescribe/listinggen/internal/price"
	"github.com/homescribe/listinggen/internal/validate"
)

// Stage identifies a pipeline stage in traces and logs.
type Stage string

const (
	StageInputGuardrail  Stage = "input_guardrail"
	StageValidate        Stage = "validate"
	StageNormalize       Stage = "normalize"
	StageEnrich          Stage = "enrich"
	StagePredictPrice    Stage = "predict_price"
	StageGenerateContent Stage = "generate_content"
	StageOutputGuardrail Stage = "output_guardrail"
	StageFormat          Stage = "format"
)

// Enricher supplies neighborhood facts for an address. Implementations
// wrap enrich.ErrNotConfigured when no search provider is available; any
// other error is a lookup failure. Both degrade the run.
type Enricher interface {
	Enrich(ctx context.Context, address string, landmarks []string) (*entity.EnrichmentData, error)
}

// Orchestrator sequences the stages over one shared state record per run.
// Construct with New; the zero value is not usable.
type Orchestrator struct {
	policy    guardrails.ContentPolicy
	enricher  Enricher
	generator llm.Generator
	logger    *slog.Logger
}

// New builds an Orchestrator. A nil enricher disables enrichment the same
// way an unconfigured provider does; a nil logger falls back to
// slog.Default().
func New(policy guardrails.ContentPolicy, enricher Enricher, generator llm.Generator, logger *slog.Logger) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Orchestrator{
		policy:    policy,
		enricher:  enricher,
		generator: generator,
		logger:    logger,
	}
}

// Run executes the pipeline for one request and returns the result with
// the run's trace. Run never returns a Go error: every failure mode is
// reported through the result's Errors list, and a gated stop or a failed
// generation still produces a complete result.
func (o *Orchestrator) Run(ctx context.Context, req entity.PropertyInput) (*entity.ListingResult, *Trace) {
	tr := NewTrace()
	logger := o.logger.With("req_id", tr.RequestID)

	st := &entity.ListingState{Request: req, Errors: []string{}}

	logger.Info("pipeline.run.start",
		"listing_type", req.ListingType,
		"region", req.Region,
		"address_len", len(req.Address),
	)

	o.runStage(st, tr, logger, StageInputGuardrail, func() []string {
		return o.policy.CheckInput(req.Address, req.Notes)
	})
	if len(st.Errors) > 0 {
		return o.finish(st, tr, logger, false)
	}

	o.runStage(st, tr, logger, StageValidate, func() []string {
		return validate.Fields(&st.Request)
	})
	if len(st.Errors) > 0 {
		return o.finish(st, tr, logger, false)
	}

	o.runStage(st, tr, logger, StageNormalize, func() []string {
		st.Normalized = &entity.NormalizedInput{
			Address: normalize.Address(req.Address),
			Notes:   normalize.Notes(req.Notes),
		}
		return nil
	})

	o.runStage(st, tr, logger, StageEnrich, func() []string {
		return o.enrichStage(ctx, st)
	})

	// Prediction and generation read the same post-enrichment state and
	// write disjoint fields; errors are collected locally and appended
	// after the join so the error list stays deterministic.
	var (
		predictErrs, generateErrs       []string
		predictElapsed, generateElapsed time.Duration
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		start := time.Now()
		predictErrs = o.predictPrice(gctx, st)
		predictElapsed = time.Since(start)
		return nil
	})
	g.Go(func() error {
		start := time.Now()
		generateErrs = o.generateContent(gctx, st)
		generateElapsed = time.Since(start)
		return nil
	})
	// both tasks swallow their own failures
	_ = g.Wait()

	st.AppendErrors(predictErrs...)
	o.recordStage(tr, logger, StagePredictPrice, predictElapsed, len(predictErrs))
	st.AppendErrors(generateErrs...)
	o.recordStage(tr, logger, StageGenerateContent, generateElapsed, len(generateErrs))

	outputViolations := o.runStage(st, tr, logger, StageOutputGuardrail, func() []string {
		return o.outputGuardrail(st)
	})

	o.runStage(st, tr, logger, StageFormat, func() []string {
		return o.formatOutput(st)
	})

	success := st.Generation != nil && st.Generation.Parsed != nil &&
		outputViolations == 0 &&
		st.Output != nil && st.Output.FormattedListing != ""

	return o.finish(st, tr, logger, success)
}

// runStage times fn, folds its errors into the state, and records the
// stage. Returns the number of errors the stage added.
func (o *Orchestrator) runStage(st *entity.ListingState, tr *Trace, logger *slog.Logger, stage Stage, fn func() []string) int {
	start := time.Now()
	errs := fn()
	st.AppendErrors(errs...)
	o.recordStage(tr, logger, stage, time.Since(start), len(errs))
	return len(errs)
}

func (o *Orchestrator) recordStage(tr *Trace, logger *slog.Logger, stage Stage, elapsed time.Duration, newErrors int) {
	tr.Record(stage, elapsed, newErrors)
	logger.Debug("pipeline.stage.done",
		"stage", string(stage),
		"elapsed_ms", elapsed.Milliseconds(),
		"errors_added", newErrors,
	)
}

// enrichStage prefers the normalized address and falls back to the raw one.
func (o *Orchestrator) enrichStage(ctx context.Context, st *entity.ListingState) []string {
	address := st.Request.Address
	if st.Normalized != nil && st.Normalized.Address != "" {
		address = st.Normalized.Address
	}

	var (
		data *entity.EnrichmentData
		err  error
	)
	if o.enricher == nil {
		err = enrich.ErrNotConfigured
	} else {
		data, err = o.enricher.Enrich(ctx, address, st.Request.Landmarks)
	}

	switch {
	case err == nil:
		st.Enrichment = data
		return nil
	case errors.Is(err, enrich.ErrNotConfigured):
		return []string{fmt.Sprintf("Enrichment configuration error: %s", err)}
	default:
		return []string{fmt.Sprintf("Enrichment failed: %s", err)}
	}
}

// predictPrice asks the model for a price estimate and keeps it only when
// it passes the per-listing-type sanity range. An out-of-range estimate is
// discarded, never exposed.
func (o *Orchestrator) predictPrice(ctx context.Context, st *entity.ListingState) []string {
	req := &st.Request
	if req.Address == "" || req.ListingType == "" || req.PropertyType == "" {
		return []string{"Price prediction requires address, listing_type, and property_type"}
	}
	if req.Bedrooms == nil || req.Bathrooms == nil || req.Sqft == nil {
		return []string{"Price prediction requires bedrooms, bathrooms, and sqft"}
	}

	response, err := o.generator.Complete(ctx, price.BuildPrompt(st), price.Temperature)
	if err != nil {
		return []string{fmt.Sprintf("Price prediction failed: %s", err)}
	}
	prediction, err := price.Parse(response)
	if err != nil {
		return []string{fmt.Sprintf("Price prediction failed: %s", err)}
	}

	listingType, _ := constants.CanonicalizeListingType(req.ListingType)
	if !price.ValidateRange(prediction.Price, listingType) {
		return []string{"Predicted price validation failed: " + strconv.FormatFloat(prediction.Price, 'f', -1, 64)}
	}

	st.Prediction = prediction
	return nil
}

// generateContent stores the raw model response before parsing so a parse
// failure still leaves the raw text on the state for inspection.
func (o *Orchestrator) generateContent(ctx context.Context, st *entity.ListingState) []string {
	req := &st.Request
	if req.Address == "" || req.ListingType == "" || req.PropertyType == "" ||
		req.Bedrooms == nil || req.Bathrooms == nil || req.Sqft == nil {
		return []string{"Cannot generate content: missing required fields (address, listing_type, property_type, bedrooms, bathrooms, or sqft)"}
	}

	response, err := o.generator.Complete(ctx, llm.BuildListingPrompt(st), llm.ContentTemperature)
	if err != nil {
		return []string{fmt.Sprintf("Content generation failed: %s", err)}
	}

	st.Generation = &entity.GeneratedContent{Raw: response}

	parsed, err := llm.ParseListingResponse(response)
	if err != nil {
		return []string{fmt.Sprintf("Content generation failed: %s", err)}
	}
	st.Generation.Parsed = parsed
	return nil
}

func (o *Orchestrator) outputGuardrail(st *entity.ListingState) []string {
	var parsed *entity.ListingContent
	if st.Generation != nil {
		parsed = st.Generation.Parsed
	}
	listingType, _ := constants.CanonicalizeListingType(st.Request.ListingType)
	return o.policy.CheckOutput(parsed, st.Request.Price, listingType)
}

// formatOutput derives the display fields from the parsed generation. The
// standalone price block keeps the model's currency symbol; localization
// applies to the assembled listing.
func (o *Orchestrator) formatOutput(st *entity.ListingState) []string {
	if st.Generation == nil || st.Generation.Parsed == nil {
		return []string{"Format output: No LLM output to format"}
	}

	content := format.FormatContent(st.Generation.Parsed)
	st.Output = &entity.FormattedOutput{
		Title:            content.Title,
		Description:      content.Description,
		PriceBlock:       content.PriceBlock,
		FormattedListing: format.AssembleListing(content, st.Request.Region),
	}
	return nil
}

// finish assembles the caller-facing result. The listing is attached only
// on success; a valid price prediction is reported even when the listing
// itself failed.
func (o *Orchestrator) finish(st *entity.ListingState, tr *Trace, logger *slog.Logger, success bool) (*entity.ListingResult, *Trace) {
	result := &entity.ListingResult{
		RequestID:  tr.RequestID,
		Success:    success,
		Errors:     st.Errors,
		Enrichment: st.Enrichment,
	}
	if success {
		result.Listing = st.Output
	}
	if st.Prediction != nil {
		result.PredictedPrice = &st.Prediction.Price
		result.PredictedPriceReasoning = st.Prediction.Reasoning
	}

	logger.Info("pipeline.run.done",
		"success", success,
		"errors", len(st.Errors),
		"stages", len(tr.Records()),
		"elapsed_ms", tr.Elapsed().Milliseconds(),
	)
	return result, tr
}
