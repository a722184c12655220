package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	listingpb "github.com/homescribe/listinggen/gen/proto/listing/v1"

	"github.com/homescribe/listinggen/constants"
	"github.com/homescribe/listinggen/internal/common"
	"github.com/homescribe/listinggen/internal/entity"
	"github.com/homescribe/listinggen/internal/export"
	"github.com/homescribe/listinggen/internal/repository"
	"github.com/homescribe/listinggen/internal/services/listing"
	"github.com/homescribe/listinggen/internal/utils"
)

// ListingServer serves the generation and history APIs. Malformed requests
// map to InvalidArgument; everything a run itself gets wrong comes back in
// the response errors with success=false, never as a gRPC error.
type ListingServer struct {
	listingpb.UnimplementedListingServiceServer
	svc      *listing.Service
	runsRepo repository.ListingRepository
	exporter *export.Service
	logger   *slog.Logger
}

func NewListingServer(svc *listing.Service, runsRepo repository.ListingRepository, exporter *export.Service, logger *slog.Logger) *ListingServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ListingServer{
		svc:      svc,
		runsRepo: runsRepo,
		exporter: exporter,
		logger:   logger,
	}
}

func (s *ListingServer) GenerateListing(ctx context.Context, req *listingpb.GenerateListingRequest) (*listingpb.GenerateListingResponse, error) {
	s.logger.Info("grpc.generate_listing", "listing_type", req.GetListingType(), "region", req.GetRegion())

	res, run := s.svc.Generate(ctx, requestFromPB(req))

	out := &listingpb.GenerateListingResponse{
		RequestId:               res.RequestID.String(),
		Success:                 res.Success,
		Errors:                  res.Errors,
		PredictedPrice:          res.PredictedPrice,
		PredictedPriceReasoning: res.PredictedPriceReasoning,
	}
	if res.Listing != nil {
		out.Listing = &listingpb.GeneratedListing{
			Title:            res.Listing.Title,
			Description:      res.Listing.Description,
			PriceBlock:       res.Listing.PriceBlock,
			FormattedListing: res.Listing.FormattedListing,
		}
	}
	if run != nil {
		out.RunId = run.ID.String()
	}
	return out, nil
}

func (s *ListingServer) GetListing(ctx context.Context, req *listingpb.GetListingRequest) (*listingpb.GetListingResponse, error) {
	v := common.NewValidator()
	v.Field("run_id", req.GetRunId(), common.Required, common.UUID)
	if err := common.ValidateAndReturnError(v); err != nil {
		return nil, err
	}
	runID, _ := uuid.Parse(req.GetRunId())

	run, err := s.runsRepo.GetRun(ctx, runID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NotFoundError("listing run not found")
		}
		s.logger.Error("get listing failed", "run_id", runID, "error", err)
		return nil, common.InternalErrorf("get run: %v", err)
	}
	return &listingpb.GetListingResponse{Run: utils.ToPBRun(run)}, nil
}

func (s *ListingServer) ListListings(ctx context.Context, req *listingpb.ListListingsRequest) (*listingpb.ListListingsResponse, error) {
	filter, err := filterFromPB(req.GetStatus(), req.GetRegion(), req.GetListingType(), req.GetLimit())
	if err != nil {
		return nil, err
	}

	runs, err := s.runsRepo.ListRuns(ctx, filter)
	if err != nil {
		s.logger.Error("list listings failed", "error", err)
		return nil, common.InternalErrorf("list runs: %v", err)
	}

	out := make([]*listingpb.ListingRun, 0, len(runs))
	for _, r := range runs {
		out = append(out, utils.ToPBRun(r))
	}
	return &listingpb.ListListingsResponse{Runs: out}, nil
}

func (s *ListingServer) ExportListings(ctx context.Context, req *listingpb.ExportListingsRequest) (*listingpb.ExportListingsResponse, error) {
	filter, err := filterFromPB(req.GetStatus(), req.GetRegion(), req.GetListingType(), req.GetLimit())
	if err != nil {
		return nil, err
	}

	xlsx, err := s.exporter.ExportRunsXLSX(ctx, filter)
	if err != nil {
		s.logger.Error("export.xlsx.failed", "error", err)
		return nil, common.InternalError(err.Error())
	}

	filename := fmt.Sprintf("listings-%s.xlsx", time.Now().UTC().Format("20060102-150405"))
	return &listingpb.ExportListingsResponse{Xlsx: xlsx, Filename: filename}, nil
}

func requestFromPB(req *listingpb.GenerateListingRequest) entity.PropertyInput {
	return entity.PropertyInput{
		Address:         req.GetAddress(),
		ListingType:     req.GetListingType(),
		Region:          req.GetRegion(),
		PropertyType:    req.GetPropertyType(),
		Bedrooms:        utils.Int32PtrToInt(req.Bedrooms),
		Bathrooms:       req.Bathrooms,
		Sqft:            utils.Int32PtrToInt(req.Sqft),
		Price:           req.Price,
		Notes:           req.GetNotes(),
		BillingCycle:    req.GetBillingCycle(),
		LeaseTerm:       req.GetLeaseTerm(),
		SecurityDeposit: req.SecurityDeposit,
		HOAFees:         req.HoaFees,
		PropertyTaxes:   req.PropertyTaxes,
		CouncilTax:      req.CouncilTax,
		Rates:           req.Rates,
		StrataFees:      req.StrataFees,
		Landmarks:       req.GetLandmarks(),
	}
}

// filterFromPB validates the shared list/export filter shape. Text filters
// are folded to the stored casing so lookups match coerced rows.
func filterFromPB(status, region, listingType string, limit int32) (repository.ListRunsFilter, error) {
	v := common.NewValidator()
	v.Field("status", status, common.OneOf(constants.RunStatusesAsStringSlice()...))
	v.Field("limit", limit, common.NonNegative)
	if err := common.ValidateAndReturnError(v); err != nil {
		return repository.ListRunsFilter{}, err
	}

	return repository.ListRunsFilter{
		Status:      status,
		Region:      strings.ToUpper(strings.TrimSpace(region)),
		ListingType: strings.ToLower(strings.TrimSpace(listingType)),
		Limit:       int(limit),
	}, nil
}
