package export

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/homescribe/listinggen/constants"
	"github.com/homescribe/listinggen/internal/entity"
	"github.com/homescribe/listinggen/internal/repository"
)

type stubRepo struct {
	runs   []*entity.RunRecord
	err    error
	filter repository.ListRunsFilter
}

func (s *stubRepo) CreateRun(context.Context, *entity.PropertyInput, constants.RunStatus) (*entity.RunRecord, error) {
	return nil, nil
}

func (s *stubRepo) MarkRunning(context.Context, uuid.UUID) error { return nil }

func (s *stubRepo) FinishRun(context.Context, uuid.UUID, uuid.UUID, constants.RunStatus, []string, time.Duration) error {
	return nil
}

func (s *stubRepo) SaveDraft(context.Context, uuid.UUID, *entity.ListingResult) (*entity.DraftRecord, error) {
	return nil, nil
}

func (s *stubRepo) GetRun(context.Context, uuid.UUID) (*entity.RunRecord, error) {
	return nil, nil
}

func (s *stubRepo) ListRuns(_ context.Context, filter repository.ListRunsFilter) ([]*entity.RunRecord, error) {
	s.filter = filter
	if s.err != nil {
		return nil, s.err
	}
	return s.runs, nil
}

func TestExportRunsXLSX(t *testing.T) {
	price := 450000.0
	predicted := 475000.0
	succeeded := &entity.RunRecord{
		ID: uuid.New(),
		Request: entity.PropertyInput{
			Address:     "123 Main St, New York, NY 10001",
			ListingType: "sale",
			Region:      "US",
			Price:       &price,
		},
		Status: string(constants.RunStatusSucceeded),
		Draft: &entity.DraftRecord{
			Title:          "Sunny 2BR in Chelsea",
			PredictedPrice: &predicted,
		},
		CreatedAt: time.Date(2025, 7, 14, 9, 30, 0, 0, time.UTC),
	}
	failed := &entity.RunRecord{
		ID: uuid.New(),
		Request: entity.PropertyInput{
			Address:     "45 Camden Rd, London NW1 9LQ",
			ListingType: "rent",
			Region:      "UK",
		},
		Status:    string(constants.RunStatusFailed),
		CreatedAt: time.Date(2025, 7, 13, 18, 5, 0, 0, time.UTC),
	}

	repo := &stubRepo{runs: []*entity.RunRecord{succeeded, failed}}
	svc := NewService(repo, nil)

	b, err := svc.ExportRunsXLSX(context.Background(), repository.ListRunsFilter{Status: "SUCCEEDED"})
	require.NoError(t, err)
	require.NotEmpty(t, b)
	assert.Equal(t, "SUCCEEDED", repo.filter.Status)

	f, err := excelize.OpenReader(bytes.NewReader(b))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	const sheet = "Listings"
	cell := func(ref string) string {
		v, err := f.GetCellValue(sheet, ref)
		require.NoError(t, err)
		return v
	}

	assert.Equal(t, "Run ID", cell("A1"))
	assert.Equal(t, "Created", cell("B1"))
	assert.Equal(t, "Address", cell("C1"))
	assert.Equal(t, "Type", cell("D1"))
	assert.Equal(t, "Region", cell("E1"))
	assert.Equal(t, "Status", cell("F1"))
	assert.Equal(t, "Price", cell("G1"))
	assert.Equal(t, "Predicted", cell("H1"))
	assert.Equal(t, "Title", cell("I1"))

	assert.Equal(t, succeeded.ID.String(), cell("A2"))
	assert.Equal(t, "2025-07-14 09:30", cell("B2"))
	assert.Equal(t, "123 Main St, New York, NY 10001", cell("C2"))
	assert.Equal(t, "sale", cell("D2"))
	assert.Equal(t, "US", cell("E2"))
	assert.Equal(t, "SUCCEEDED", cell("F2"))
	assert.Equal(t, "450000", cell("G2"))
	assert.Equal(t, "475000", cell("H2"))
	assert.Equal(t, "Sunny 2BR in Chelsea", cell("I2"))

	assert.Equal(t, failed.ID.String(), cell("A3"))
	assert.Equal(t, "FAILED", cell("F3"))
	assert.Equal(t, "", cell("G3"))
	assert.Equal(t, "", cell("H3"))
	assert.Equal(t, "", cell("I3"))
}

func TestExportRunsXLSXPropagatesQueryError(t *testing.T) {
	repo := &stubRepo{err: errors.New("connection refused")}
	svc := NewService(repo, nil)

	_, err := svc.ExportRunsXLSX(context.Background(), repository.ListRunsFilter{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "query runs")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefghi…", truncate("abcdefghijkl", 10))
	assert.Equal(t, "anything", truncate("anything", 0))
}
