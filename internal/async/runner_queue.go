package async

import (
	"context"
	"sync"
	"time"

	"log/slog"

	"github.com/google/uuid"

	"github.com/homescribe/listinggen/internal/entity"
)

// Generator runs one pre-inserted job to completion.
type Generator interface {
	GenerateQueued(ctx context.Context, runID uuid.UUID, req entity.PropertyInput) *entity.ListingResult
}

// RunnerQueue drains generation jobs through a fixed worker pool. A full
// channel makes Enqueue block, which is the backpressure batch callers want.
type RunnerQueue struct {
	gen     Generator
	logger  *slog.Logger
	workers int
	timeout time.Duration

	ch   chan Job
	wg   sync.WaitGroup
	once sync.Once

	mu     sync.Mutex
	closed bool
}

type Option func(*RunnerQueue)

func WithWorkers(n int) Option {
	return func(q *RunnerQueue) {
		if n > 0 {
			q.workers = n
		}
	}
}

func WithQueueSize(n int) Option {
	return func(q *RunnerQueue) {
		if n > 0 {
			q.ch = make(chan Job, n)
		}
	}
}

func WithProcessTimeout(d time.Duration) Option {
	return func(q *RunnerQueue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

func NewRunnerQueue(gen Generator, logger *slog.Logger, opts ...Option) *RunnerQueue {
	if logger == nil {
		logger = slog.Default()
	}
	q := &RunnerQueue{
		gen:     gen,
		logger:  logger,
		workers: 4,
		timeout: 3 * time.Minute,
		ch:      make(chan Job, 256),
	}
	for _, o := range opts {
		o(q)
	}
	q.start()
	return q
}

func (q *RunnerQueue) start() {
	q.once.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go func(workerID int) {
				defer q.wg.Done()
				q.logger.Info("worker started", "worker_id", workerID)

				for job := range q.ch {
					ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
					res := q.gen.GenerateQueued(ctx, job.RunID, job.Request)
					cancel()

					if res != nil && res.Success {
						q.logger.Info("generation succeeded", "worker_id", workerID, "run_id", job.RunID,
							"queue_wait_ms", time.Since(job.SubmittedAt).Milliseconds())
					} else {
						errCount := 0
						if res != nil {
							errCount = len(res.Errors)
						}
						q.logger.Error("generation failed", "worker_id", workerID, "run_id", job.RunID, "errors", errCount)
					}
				}

				q.logger.Info("worker stopped", "worker_id", workerID)
			}(i + 1)
		}
	})
}

func (q *RunnerQueue) Enqueue(_ context.Context, job Job) error {
	if job.SubmittedAt.IsZero() {
		job.SubmittedAt = time.Now()
	}

	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		q.logger.Warn("cannot enqueue: queue is shutting down", "run_id", job.RunID)
		return nil
	}
	select {
	case q.ch <- job:
		q.logger.Info("queued run for generation", "run_id", job.RunID)
	default:
		q.logger.Warn("queue full, applying backpressure", "run_id", job.RunID)
		q.ch <- job
	}
	return nil
}

func (q *RunnerQueue) Shutdown(ctx context.Context) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.ch)
	q.mu.Unlock()

	done := make(chan struct{})
	go func() { defer close(done); q.wg.Wait() }()

	select {
	case <-ctx.Done():
		q.logger.Warn("shutdown interrupted by context")
	case <-done:
		q.logger.Info("queue drained, shutdown complete")
	}
}
