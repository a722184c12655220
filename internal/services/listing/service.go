package listing

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/homescribe/listinggen/constants"
	"github.com/homescribe/listinggen/internal/entity"
	"github.com/homescribe/listinggen/internal/pipeline"
	"github.com/homescribe/listinggen/internal/repository"
)

// Runner runs one listing request through the generation pipeline.
type Runner interface {
	Run(ctx context.Context, req entity.PropertyInput) (*entity.ListingResult, *pipeline.Trace)
}

// Service handles listing generation business logic: input coercion, the
// pipeline run, and best-effort persistence of the run and its draft.
type Service struct {
	runner Runner
	repo   repository.ListingRepository
	logger *slog.Logger
}

// NewService creates a new listing service.
func NewService(runner Runner, repo repository.ListingRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		runner: runner,
		repo:   repo,
		logger: logger,
	}
}

// CoerceInput cleans a raw request before validation: text fields are
// trimmed, listing_type lowercased, region uppercased and defaulted to US,
// and negative or zero numeric facts dropped rather than rejected. Money
// fields pass through untouched for the validator to judge.
func CoerceInput(req entity.PropertyInput) entity.PropertyInput {
	req.Address = strings.TrimSpace(req.Address)
	req.ListingType = strings.ToLower(strings.TrimSpace(req.ListingType))
	req.PropertyType = strings.TrimSpace(req.PropertyType)
	req.Region = strings.ToUpper(strings.TrimSpace(req.Region))
	if req.Region == "" {
		req.Region = "US"
	}
	req.Notes = strings.TrimSpace(req.Notes)
	if req.Bedrooms != nil && *req.Bedrooms < 0 {
		req.Bedrooms = nil
	}
	if req.Bathrooms != nil && *req.Bathrooms < 0 {
		req.Bathrooms = nil
	}
	if req.Sqft != nil && *req.Sqft <= 0 {
		req.Sqft = nil
	}
	return req
}

// Generate coerces the request, runs the pipeline, and records the attempt.
// Persistence failures are logged and never turn a finished generation into
// an error; the returned record is nil when the run row could not be
// created, and otherwise carries the stored row's ID.
func (s *Service) Generate(ctx context.Context, raw entity.PropertyInput) (*entity.ListingResult, *entity.RunRecord) {
	req := CoerceInput(raw)

	run, err := s.repo.CreateRun(ctx, &req, constants.RunStatusRunning)
	if err != nil {
		s.logger.Error("run row create failed, generating without history", "error", err)
		run = nil
	}

	res, tr := s.runner.Run(ctx, req)

	if run != nil {
		s.finishRun(ctx, run.ID, res, tr)
	}
	return res, run
}

// GenerateQueued runs a request whose run row was inserted ahead of time by
// the batch front end. The row flips to RUNNING first so queued work can be
// told apart from in-flight work.
func (s *Service) GenerateQueued(ctx context.Context, runID uuid.UUID, req entity.PropertyInput) *entity.ListingResult {
	if err := s.repo.MarkRunning(ctx, runID); err != nil {
		s.logger.Error("run row mark running failed", "run_id", runID, "error", err)
	}

	res, tr := s.runner.Run(ctx, req)

	s.finishRun(ctx, runID, res, tr)
	return res
}

func (s *Service) finishRun(ctx context.Context, runID uuid.UUID, res *entity.ListingResult, tr *pipeline.Trace) {
	status := constants.RunStatusFailed
	if res.Success {
		status = constants.RunStatusSucceeded
	}
	if err := s.repo.FinishRun(ctx, runID, res.RequestID, status, res.Errors, tr.Elapsed()); err != nil {
		s.logger.Error("run row finish failed", "run_id", runID, "error", err)
	}
	if res.Success {
		if _, err := s.repo.SaveDraft(ctx, runID, res); err != nil {
			s.logger.Error("draft save failed", "run_id", runID, "error", err)
		}
	}
}
