package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/homescribe/listinggen/internal/repository"
)

// Service is a tiny façade over the run repository that produces XLSX bytes for exports.
type Service struct {
	runsRepo repository.ListingRepository
	logger   *slog.Logger
}

func NewService(runsRepo repository.ListingRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{runsRepo: runsRepo, logger: logger}
}

// ExportRunsXLSX returns an XLSX workbook (as bytes) for the runs matching
// the filter, newest first. Draft columns stay blank for runs that never
// produced a listing.
func (s *Service) ExportRunsXLSX(ctx context.Context, filter repository.ListRunsFilter) ([]byte, error) {
	start := time.Now()

	runs, err := s.runsRepo.ListRuns(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Listings"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Run ID",
		"Created",
		"Address",
		"Type",
		"Region",
		"Status",
		"Price",
		"Predicted",
		"Title",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, r := range runs {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		// 1) Run ID
		write(1, r.ID.String())

		// 2) Created
		write(2, r.CreatedAt.UTC().Format("2006-01-02 15:04"))

		// 3) Address
		write(3, truncate(r.Request.Address, 60))

		// 4) Type / 5) Region / 6) Status
		write(4, r.Request.ListingType)
		write(5, r.Request.Region)
		write(6, r.Status)

		// 7) Price (as requested)
		if r.Request.Price != nil {
			write(7, *r.Request.Price)
		} else {
			write(7, "")
		}

		// 8) Predicted / 9) Title come from the draft when one exists
		if r.Draft != nil && r.Draft.PredictedPrice != nil {
			write(8, *r.Draft.PredictedPrice)
		} else {
			write(8, "")
		}
		if r.Draft != nil {
			write(9, truncate(r.Draft.Title, 80))
		} else {
			write(9, "")
		}

		row++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 38) // run id
	_ = f.SetColWidth(sheet, "B", "B", 17) // created
	_ = f.SetColWidth(sheet, "C", "C", 42) // address
	_ = f.SetColWidth(sheet, "D", "F", 12) // type/region/status
	_ = f.SetColWidth(sheet, "G", "H", 14) // prices
	_ = f.SetColWidth(sheet, "I", "I", 48) // title

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(runs),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
