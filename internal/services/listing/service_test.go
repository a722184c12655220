package listing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homescribe/listinggen/constants"
	"github.com/homescribe/listinggen/internal/entity"
	"github.com/homescribe/listinggen/internal/pipeline"
	"github.com/homescribe/listinggen/internal/repository"
)

type fakeRunner struct {
	got entity.PropertyInput
	res *entity.ListingResult
}

func (r *fakeRunner) Run(_ context.Context, req entity.PropertyInput) (*entity.ListingResult, *pipeline.Trace) {
	r.got = req
	return r.res, pipeline.NewTrace()
}

type finishCall struct {
	runID     uuid.UUID
	requestID uuid.UUID
	status    constants.RunStatus
	errs      []string
	duration  time.Duration
}

type fakeRepo struct {
	runID     uuid.UUID
	createErr error
	markErr   error
	finishErr error
	draftErr  error

	created       []entity.PropertyInput
	createdStatus []constants.RunStatus
	marked        []uuid.UUID
	finished      []finishCall
	draftRunIDs   []uuid.UUID
}

func (f *fakeRepo) CreateRun(_ context.Context, req *entity.PropertyInput, status constants.RunStatus) (*entity.RunRecord, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, *req)
	f.createdStatus = append(f.createdStatus, status)
	return &entity.RunRecord{ID: f.runID, Request: *req, Status: string(status)}, nil
}

func (f *fakeRepo) MarkRunning(_ context.Context, runID uuid.UUID) error {
	f.marked = append(f.marked, runID)
	return f.markErr
}

func (f *fakeRepo) FinishRun(_ context.Context, runID, requestID uuid.UUID, status constants.RunStatus, errs []string, duration time.Duration) error {
	f.finished = append(f.finished, finishCall{
		runID:     runID,
		requestID: requestID,
		status:    status,
		errs:      errs,
		duration:  duration,
	})
	return f.finishErr
}

func (f *fakeRepo) SaveDraft(_ context.Context, runID uuid.UUID, _ *entity.ListingResult) (*entity.DraftRecord, error) {
	if f.draftErr != nil {
		return nil, f.draftErr
	}
	f.draftRunIDs = append(f.draftRunIDs, runID)
	return &entity.DraftRecord{ID: uuid.New(), RunID: runID}, nil
}

func (f *fakeRepo) GetRun(context.Context, uuid.UUID) (*entity.RunRecord, error) {
	return nil, nil
}

func (f *fakeRepo) ListRuns(context.Context, repository.ListRunsFilter) ([]*entity.RunRecord, error) {
	return nil, nil
}

func successResult() *entity.ListingResult {
	predicted := 475000.0
	return &entity.ListingResult{
		RequestID: uuid.New(),
		Success:   true,
		Listing: &entity.FormattedOutput{
			Title:            "Sunny 2BR in Chelsea",
			Description:      "A bright two bedroom apartment.",
			PriceBlock:       "Asking Price: $450,000",
			FormattedListing: "Sunny 2BR in Chelsea\n\nA bright two bedroom apartment.\n\nAsking Price: $450,000",
		},
		Errors:         []string{},
		PredictedPrice: &predicted,
	}
}

func failedResult() *entity.ListingResult {
	return &entity.ListingResult{
		RequestID: uuid.New(),
		Success:   false,
		Errors:    []string{"address is required"},
	}
}

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func TestCoerceInput(t *testing.T) {
	req := CoerceInput(entity.PropertyInput{
		Address:      "  123 Main St  ",
		ListingType:  " SALE ",
		PropertyType: " Apartment ",
		Region:       " uk ",
		Notes:        "   ",
		Bedrooms:     intPtr(-1),
		Bathrooms:    floatPtr(-0.5),
		Sqft:         intPtr(0),
		Price:        floatPtr(-5),
	})

	assert.Equal(t, "123 Main St", req.Address)
	assert.Equal(t, "sale", req.ListingType)
	assert.Equal(t, "Apartment", req.PropertyType)
	assert.Equal(t, "UK", req.Region)
	assert.Equal(t, "", req.Notes)
	assert.Nil(t, req.Bedrooms)
	assert.Nil(t, req.Bathrooms)
	assert.Nil(t, req.Sqft)
	// money fields are the validator's to reject, not ours to fix
	require.NotNil(t, req.Price)
	assert.Equal(t, -5.0, *req.Price)
}

func TestCoerceInputDefaultsRegion(t *testing.T) {
	req := CoerceInput(entity.PropertyInput{Address: "123 Main St", ListingType: "sale"})
	assert.Equal(t, "US", req.Region)
}

func TestCoerceInputKeepsValidNumbers(t *testing.T) {
	req := CoerceInput(entity.PropertyInput{
		Bedrooms:  intPtr(0),
		Bathrooms: floatPtr(0),
		Sqft:      intPtr(1),
	})

	require.NotNil(t, req.Bedrooms)
	assert.Equal(t, 0, *req.Bedrooms)
	require.NotNil(t, req.Bathrooms)
	assert.Equal(t, 0.0, *req.Bathrooms)
	require.NotNil(t, req.Sqft)
	assert.Equal(t, 1, *req.Sqft)
}

func TestGeneratePersistsSuccessfulRun(t *testing.T) {
	runner := &fakeRunner{res: successResult()}
	repo := &fakeRepo{runID: uuid.New()}
	svc := NewService(runner, repo, nil)

	res, run := svc.Generate(context.Background(), entity.PropertyInput{
		Address:     " 123 Main St ",
		ListingType: "Sale",
	})

	require.NotNil(t, res)
	assert.True(t, res.Success)
	require.NotNil(t, run)
	assert.Equal(t, repo.runID, run.ID)

	// coerced request reached both the run row and the pipeline
	require.Len(t, repo.created, 1)
	assert.Equal(t, "123 Main St", repo.created[0].Address)
	assert.Equal(t, "sale", repo.created[0].ListingType)
	assert.Equal(t, "US", repo.created[0].Region)
	assert.Equal(t, repo.created[0], runner.got)
	assert.Equal(t, []constants.RunStatus{constants.RunStatusRunning}, repo.createdStatus)

	require.Len(t, repo.finished, 1)
	assert.Equal(t, repo.runID, repo.finished[0].runID)
	assert.Equal(t, res.RequestID, repo.finished[0].requestID)
	assert.Equal(t, constants.RunStatusSucceeded, repo.finished[0].status)
	assert.Empty(t, repo.finished[0].errs)

	assert.Equal(t, []uuid.UUID{repo.runID}, repo.draftRunIDs)
}

func TestGenerateFailedRunSkipsDraft(t *testing.T) {
	runner := &fakeRunner{res: failedResult()}
	repo := &fakeRepo{runID: uuid.New()}
	svc := NewService(runner, repo, nil)

	res, run := svc.Generate(context.Background(), entity.PropertyInput{})

	require.NotNil(t, res)
	assert.False(t, res.Success)
	require.NotNil(t, run)

	require.Len(t, repo.finished, 1)
	assert.Equal(t, constants.RunStatusFailed, repo.finished[0].status)
	assert.Equal(t, []string{"address is required"}, repo.finished[0].errs)
	assert.Empty(t, repo.draftRunIDs)
}

func TestGenerateSurvivesCreateRunFailure(t *testing.T) {
	runner := &fakeRunner{res: successResult()}
	repo := &fakeRepo{createErr: errors.New("connection refused")}
	svc := NewService(runner, repo, nil)

	res, run := svc.Generate(context.Background(), entity.PropertyInput{
		Address:     "123 Main St",
		ListingType: "sale",
	})

	require.NotNil(t, res)
	assert.True(t, res.Success)
	assert.Nil(t, run)
	assert.Empty(t, repo.finished)
	assert.Empty(t, repo.draftRunIDs)
}

func TestGenerateSurvivesFinishAndDraftFailures(t *testing.T) {
	runner := &fakeRunner{res: successResult()}
	repo := &fakeRepo{
		runID:     uuid.New(),
		finishErr: errors.New("write timeout"),
		draftErr:  errors.New("write timeout"),
	}
	svc := NewService(runner, repo, nil)

	res, run := svc.Generate(context.Background(), entity.PropertyInput{
		Address:     "123 Main St",
		ListingType: "sale",
	})

	require.NotNil(t, res)
	assert.True(t, res.Success)
	require.NotNil(t, run)
	assert.Equal(t, repo.runID, run.ID)
}

func TestGenerateQueuedMarksRunning(t *testing.T) {
	runner := &fakeRunner{res: successResult()}
	repo := &fakeRepo{}
	svc := NewService(runner, repo, nil)

	runID := uuid.New()
	req := entity.PropertyInput{Address: "123 Main St", ListingType: "sale", Region: "US"}
	res := svc.GenerateQueued(context.Background(), runID, req)

	require.NotNil(t, res)
	assert.True(t, res.Success)
	assert.Equal(t, []uuid.UUID{runID}, repo.marked)
	assert.Equal(t, req, runner.got)

	require.Len(t, repo.finished, 1)
	assert.Equal(t, runID, repo.finished[0].runID)
	assert.Equal(t, constants.RunStatusSucceeded, repo.finished[0].status)
	assert.Equal(t, []uuid.UUID{runID}, repo.draftRunIDs)
}
