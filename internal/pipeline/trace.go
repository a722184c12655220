package pipeline

import (
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
)

// StageRecord is one completed stage: which stage ran, how long it took,
// and how many errors it added to the run.
type StageRecord struct {
	Stage     Stage         `json:"stage"`
	Elapsed   time.Duration `json:"elapsed"`
	NewErrors int           `json:"new_errors"`
}

// Trace collects per-stage timing for a single run. Each run owns its
// trace, so concurrent runs never share mutable observability state. The
// mutex covers the parallel stages, which record from separate goroutines.
type Trace struct {
	RequestID uuid.UUID
	StartedAt time.Time

	mu      sync.Mutex
	records []StageRecord
}

// NewTrace starts a trace with a fresh request ID.
func NewTrace() *Trace {
	return &Trace{
		RequestID: uuid.New(),
		StartedAt: time.Now(),
	}
}

// Record appends a completed stage.
func (t *Trace) Record(stage Stage, elapsed time.Duration, newErrors int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.records = append(t.records, StageRecord{Stage: stage, Elapsed: elapsed, NewErrors: newErrors})
}

// Records returns a copy of the stage records in completion order.
func (t *Trace) Records() []StageRecord {
	t.mu.Lock()
	defer t.mu.Unlock()
	return slices.Clone(t.records)
}

// Elapsed is the wall time since the run started.
func (t *Trace) Elapsed() time.Duration {
	return time.Since(t.StartedAt)
}
