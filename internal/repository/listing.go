package repository

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/homescribe/listinggen/constants"
	"github.com/homescribe/listinggen/gen/ent"
	"github.com/homescribe/listinggen/gen/ent/listingrun"
	"github.com/homescribe/listinggen/internal/common"
	"github.com/homescribe/listinggen/internal/entity"
	"github.com/homescribe/listinggen/internal/utils"
)

// DefaultListLimit caps ListRuns when the filter asks for no explicit limit.
const DefaultListLimit = 100

// ErrNoListing reports a SaveDraft call for a result without a listing.
var ErrNoListing = errors.New("result carries no listing")

// ListRunsFilter narrows ListRuns. Zero values mean no constraint.
type ListRunsFilter struct {
	Status      string
	Region      string
	ListingType string
	Limit       int
}

type ListingRepository interface {
	CreateRun(ctx context.Context, req *entity.PropertyInput, status constants.RunStatus) (*entity.RunRecord, error)
	MarkRunning(ctx context.Context, runID uuid.UUID) error
	FinishRun(ctx context.Context, runID, requestID uuid.UUID, status constants.RunStatus, errs []string, duration time.Duration) error
	SaveDraft(ctx context.Context, runID uuid.UUID, res *entity.ListingResult) (*entity.DraftRecord, error)
	GetRun(ctx context.Context, id uuid.UUID) (*entity.RunRecord, error)
	ListRuns(ctx context.Context, filter ListRunsFilter) ([]*entity.RunRecord, error)
}

type listingRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewListingRepository(client *ent.Client, logger *slog.Logger) ListingRepository {
	return &listingRepository{
		client: client,
		logger: logger,
	}
}

// CreateRun inserts the request snapshot. The caller picks the initial
// status: RUNNING for a synchronous run, QUEUED for batch pre-insertion.
func (r *listingRepository) CreateRun(ctx context.Context, req *entity.PropertyInput, status constants.RunStatus) (*entity.RunRecord, error) {
	run, err := r.client.ListingRun.Create().
		SetAddress(req.Address).
		SetListingType(req.ListingType).
		SetRegion(req.Region).
		SetStatus(string(status)).
		SetNillablePropertyType(nilIfEmpty(req.PropertyType)).
		SetNillableBedrooms(req.Bedrooms).
		SetNillableBathrooms(req.Bathrooms).
		SetNillableSqft(req.Sqft).
		SetNillablePrice(req.Price).
		SetNillableNotes(nilIfEmpty(req.Notes)).
		Save(ctx)
	if err != nil {
		r.logger.Error("listing_run create failed", "error", err)
		return nil, err
	}
	r.logger.Info("listing_run created", "run_id", run.ID, "status", status)
	return utils.ToRunRecord(run), nil
}

func (r *listingRepository) MarkRunning(ctx context.Context, runID uuid.UUID) error {
	_, err := r.client.ListingRun.
		UpdateOneID(runID).
		SetStatus(string(constants.RunStatusRunning)).
		Save(ctx)
	if err != nil {
		r.logger.Error("listing_run mark running failed", "run_id", runID, "error", err)
		return err
	}
	return nil
}

// FinishRun records the terminal status, the pipeline request ID, and the
// error summary for a run.
func (r *listingRepository) FinishRun(ctx context.Context, runID, requestID uuid.UUID, status constants.RunStatus, errs []string, duration time.Duration) error {
	update := r.client.ListingRun.
		UpdateOneID(runID).
		SetRequestID(requestID).
		SetStatus(string(status)).
		SetErrorCount(len(errs)).
		SetDurationMs(duration.Milliseconds())
	if len(errs) > 0 {
		update = update.SetErrors(strings.Join(errs, "\n"))
	}
	if _, err := update.Save(ctx); err != nil {
		r.logger.Error("listing_run finish failed", "run_id", runID, "error", err)
		return err
	}
	r.logger.Info("listing_run finished", "run_id", runID, "status", status, "errors", len(errs))
	return nil
}

// SaveDraft persists the generated text of a successful run.
func (r *listingRepository) SaveDraft(ctx context.Context, runID uuid.UUID, res *entity.ListingResult) (*entity.DraftRecord, error) {
	if res == nil || res.Listing == nil {
		return nil, ErrNoListing
	}

	create := r.client.ListingDraft.Create().
		SetRunID(runID).
		SetTitle(res.Listing.Title).
		SetDescription(res.Listing.Description).
		SetPriceBlock(res.Listing.PriceBlock).
		SetFormattedListing(res.Listing.FormattedListing).
		SetNillablePredictedPrice(res.PredictedPrice).
		SetNillablePredictedPriceReasoning(nilIfEmpty(res.PredictedPriceReasoning))
	if res.Enrichment != nil {
		create = create.
			SetNillableZipCode(nilIfEmpty(res.Enrichment.ZipCode)).
			SetNillableNeighborhood(nilIfEmpty(res.Enrichment.Neighborhood))
	}

	draft, err := create.Save(ctx)
	if err != nil {
		r.logger.Error("listing_draft save failed", "run_id", runID, "error", err)
		return nil, err
	}
	r.logger.Info("listing_draft saved", "run_id", runID, "draft_id", draft.ID)
	return utils.ToDraftRecord(draft), nil
}

// GetRun loads one run with its draft. Not-found comes back as
// common.ErrNotFound so callers stay free of the ent error types.
func (r *listingRepository) GetRun(ctx context.Context, id uuid.UUID) (*entity.RunRecord, error) {
	run, err := r.client.ListingRun.Query().
		Where(listingrun.ID(id)).
		WithDraft().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		r.logger.Error("listing_run get failed", "run_id", id, "error", err)
		return nil, err
	}
	return utils.ToRunRecord(run), nil
}

// ListRuns returns runs with drafts, newest first.
func (r *listingRepository) ListRuns(ctx context.Context, filter ListRunsFilter) ([]*entity.RunRecord, error) {
	q := r.client.ListingRun.Query().WithDraft()
	if filter.Status != "" {
		q = q.Where(listingrun.Status(filter.Status))
	}
	if filter.Region != "" {
		q = q.Where(listingrun.Region(filter.Region))
	}
	if filter.ListingType != "" {
		q = q.Where(listingrun.ListingType(filter.ListingType))
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}

	runs, err := q.
		Order(listingrun.ByCreatedAt(entsql.OrderDesc())).
		Limit(limit).
		All(ctx)
	if err != nil {
		r.logger.Error("listing_run list failed", "error", err)
		return nil, err
	}

	result := make([]*entity.RunRecord, len(runs))
	for i, run := range runs {
		result[i] = utils.ToRunRecord(run)
	}
	return result, nil
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
