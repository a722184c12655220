package async

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/homescribe/listinggen/internal/entity"
)

// Job is one queued generation: the pre-inserted run row plus the coerced
// request it snapshots. Extend as needed later (priority, retry, etc).
type Job struct {
	RunID       uuid.UUID
	Request     entity.PropertyInput
	SubmittedAt time.Time
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}
