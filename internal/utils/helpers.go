package utils

import (
	"strings"
	"time"

	"github.com/homescribe/listinggen/gen/ent"
	listingpb "github.com/homescribe/listinggen/gen/proto/listing/v1"
	"github.com/homescribe/listinggen/internal/entity"
)

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// IntPtrToInt32 converts an optional int for the proto boundary.
func IntPtrToInt32(p *int) *int32 {
	if p == nil {
		return nil
	}
	v := int32(*p)
	return &v
}

// Int32PtrToInt converts an optional proto int32 back to the entity shape.
func Int32PtrToInt(p *int32) *int {
	if p == nil {
		return nil
	}
	v := int(*p)
	return &v
}

// SplitErrors unpacks the newline-joined errors column.
func SplitErrors(p *string) []string {
	if p == nil || *p == "" {
		return nil
	}
	return strings.Split(*p, "\n")
}

func ToRunRecord(e *ent.ListingRun) *entity.RunRecord {
	r := &entity.RunRecord{
		ID:        e.ID,
		RequestID: e.RequestID,
		Request: entity.PropertyInput{
			Address:      e.Address,
			ListingType:  e.ListingType,
			Region:       e.Region,
			PropertyType: strOrEmpty(e.PropertyType),
			Bedrooms:     e.Bedrooms,
			Bathrooms:    e.Bathrooms,
			Sqft:         e.Sqft,
			Price:        e.Price,
			Notes:        strOrEmpty(e.Notes),
		},
		Status:     e.Status,
		ErrorCount: e.ErrorCount,
		Errors:     SplitErrors(e.Errors),
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
	if e.DurationMs != nil {
		r.DurationMS = *e.DurationMs
	}
	if e.Edges.Draft != nil {
		r.Draft = ToDraftRecord(e.Edges.Draft)
	}
	return r
}

func ToDraftRecord(e *ent.ListingDraft) *entity.DraftRecord {
	return &entity.DraftRecord{
		ID:                      e.ID,
		RunID:                   e.RunID,
		Title:                   e.Title,
		Description:             e.Description,
		PriceBlock:              e.PriceBlock,
		FormattedListing:        e.FormattedListing,
		PredictedPrice:          e.PredictedPrice,
		PredictedPriceReasoning: strOrEmpty(e.PredictedPriceReasoning),
		ZipCode:                 strOrEmpty(e.ZipCode),
		Neighborhood:            strOrEmpty(e.Neighborhood),
		CreatedAt:               e.CreatedAt,
	}
}

func ToPBRun(r *entity.RunRecord) *listingpb.ListingRun {
	pb := &listingpb.ListingRun{
		Id:           r.ID.String(),
		Address:      r.Request.Address,
		ListingType:  r.Request.ListingType,
		Region:       r.Request.Region,
		PropertyType: r.Request.PropertyType,
		Bedrooms:     IntPtrToInt32(r.Request.Bedrooms),
		Bathrooms:    r.Request.Bathrooms,
		Sqft:         IntPtrToInt32(r.Request.Sqft),
		Price:        r.Request.Price,
		Notes:        r.Request.Notes,
		Status:       r.Status,
		ErrorCount:   int32(r.ErrorCount),
		Errors:       r.Errors,
		DurationMs:   r.DurationMS,
		CreatedAt:    r.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:    r.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if r.RequestID != nil {
		pb.RequestId = r.RequestID.String()
	}
	if r.Draft != nil {
		pb.Draft = ToPBDraft(r.Draft)
	}
	return pb
}

func ToPBDraft(d *entity.DraftRecord) *listingpb.ListingDraft {
	return &listingpb.ListingDraft{
		Id:                      d.ID.String(),
		RunId:                   d.RunID.String(),
		Title:                   d.Title,
		Description:             d.Description,
		PriceBlock:              d.PriceBlock,
		FormattedListing:        d.FormattedListing,
		PredictedPrice:          d.PredictedPrice,
		PredictedPriceReasoning: d.PredictedPriceReasoning,
		ZipCode:                 d.ZipCode,
		Neighborhood:            d.Neighborhood,
		CreatedAt:               d.CreatedAt.UTC().Format(time.RFC3339),
	}
}
