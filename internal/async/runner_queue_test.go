package async

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homescribe/listinggen/internal/entity"
)

type fakeGenerator struct {
	mu      sync.Mutex
	runs    []uuid.UUID
	started chan struct{}
	block   chan struct{}
}

func (g *fakeGenerator) GenerateQueued(_ context.Context, runID uuid.UUID, _ entity.PropertyInput) *entity.ListingResult {
	if g.started != nil {
		g.started <- struct{}{}
	}
	if g.block != nil {
		<-g.block
	}
	g.mu.Lock()
	g.runs = append(g.runs, runID)
	g.mu.Unlock()
	return &entity.ListingResult{RequestID: uuid.New(), Success: true}
}

func (g *fakeGenerator) processed() []uuid.UUID {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]uuid.UUID(nil), g.runs...)
}

func TestQueueDrainsAllJobs(t *testing.T) {
	gen := &fakeGenerator{}
	// queue smaller than the job count so the backpressure path runs too
	q := NewRunnerQueue(gen, nil, WithWorkers(3), WithQueueSize(8))

	want := make([]uuid.UUID, 0, 20)
	for i := 0; i < 20; i++ {
		id := uuid.New()
		want = append(want, id)
		require.NoError(t, q.Enqueue(context.Background(), Job{RunID: id}))
	}

	q.Shutdown(context.Background())
	assert.ElementsMatch(t, want, gen.processed())
}

func TestEnqueueAfterShutdownIsDropped(t *testing.T) {
	gen := &fakeGenerator{}
	q := NewRunnerQueue(gen, nil, WithWorkers(1))
	q.Shutdown(context.Background())

	require.NoError(t, q.Enqueue(context.Background(), Job{RunID: uuid.New()}))
	assert.Empty(t, gen.processed())

	// a second shutdown is a no-op, not a double close
	q.Shutdown(context.Background())
}

func TestShutdownGivesUpWhenContextExpires(t *testing.T) {
	gen := &fakeGenerator{
		started: make(chan struct{}, 1),
		block:   make(chan struct{}),
	}
	q := NewRunnerQueue(gen, nil, WithWorkers(1), WithQueueSize(1))
	require.NoError(t, q.Enqueue(context.Background(), Job{RunID: uuid.New()}))

	<-gen.started // worker holds the job now

	ctx, cancel := context.WithTimeout(context.Background(), 25*time.Millisecond)
	defer cancel()

	// would hang here if Shutdown insisted on a full drain
	q.Shutdown(ctx)
	assert.Empty(t, gen.processed())

	close(gen.block)
}
