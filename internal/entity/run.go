package entity

import (
	"time"

	"github.com/google/uuid"
)

// RunRecord represents a stored generation run for data transfer between
// layers. RequestID is nil until the run has finished.
type RunRecord struct {
	ID         uuid.UUID     `json:"id"`
	RequestID  *uuid.UUID    `json:"request_id,omitempty"`
	Request    PropertyInput `json:"request"`
	Status     string        `json:"status"`
	ErrorCount int           `json:"error_count"`
	Errors     []string      `json:"errors,omitempty"`
	DurationMS int64         `json:"duration_ms,omitempty"`
	Draft      *DraftRecord  `json:"draft,omitempty"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

// DraftRecord represents a stored listing draft for data transfer between
// layers. A run keeps at most one draft, written only on success.
type DraftRecord struct {
	ID                      uuid.UUID `json:"id"`
	RunID                   uuid.UUID `json:"run_id"`
	Title                   string    `json:"title"`
	Description             string    `json:"description"`
	PriceBlock              string    `json:"price_block"`
	FormattedListing        string    `json:"formatted_listing"`
	PredictedPrice          *float64  `json:"predicted_price,omitempty"`
	PredictedPriceReasoning string    `json:"predicted_price_reasoning,omitempty"`
	ZipCode                 string    `json:"zip_code,omitempty"`
	Neighborhood            string    `json:"neighborhood,omitempty"`
	CreatedAt               time.Time `json:"created_at"`
}
