// Package worker generates reports for queued attempts.
package worker

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strconv"
	"sync"
	"time"

	"github.com/okian/spikefactor/internal/adapters/repository"
	"github.com/okian/spikefactor/internal/domain/model"
	"github.com/okian/spikefactor/internal/domain/report"
	"github.com/okian/spikefactor/pkg/logger"
	"github.com/okian/spikefactor/pkg/metrics"
)

const defaultDrainTimeout = 30 * time.Second

// Generator turns an attempt into a report.
type Generator interface {
	Generate(ctx context.Context, a model.Attempt) (report.Report, error)
}

// Recorder stores a generated report. A repository.ErrAlreadyExists result
// means the attempt was completed before and is not treated as a failure.
type Recorder interface {
	Put(ctx context.Context, attemptID string, r report.Report) error
}

// Queue defines how workers receive attempts.
type Queue interface {
	Dequeue(ctx context.Context) <-chan model.Attempt
}

// FailureHandler is told about attempts that could not be completed.
type FailureHandler func(ctx context.Context, a model.Attempt, err error)

// Worker processes attempts until its queue is drained or it is stopped.
type Worker interface {
	Run(ctx context.Context)
	Shutdown(ctx context.Context) error
}

// InMemoryWorker implements Worker.
type InMemoryWorker struct {
	queue     Queue
	generator Generator
	recorder  Recorder
	onFailure FailureHandler
	name      string

	shutdown     chan struct{}
	shutdownOnce sync.Once
	done         chan struct{}

	logger logger.Logger
}

// NewInMemoryWorker creates a worker.
func NewInMemoryWorker(q Queue, g Generator, r Recorder, opts ...Option) *InMemoryWorker {
	w := &InMemoryWorker{
		queue:     q,
		generator: g,
		recorder:  r,
		name:      "worker",
		shutdown:  make(chan struct{}),
		done:      make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.logger == nil {
		w.logger = logger.Get().Named(w.name)
	}
	return w
}

// Run consumes attempts until the queue channel closes, ctx is done or the
// worker is shut down.
func (w *InMemoryWorker) Run(ctx context.Context) {
	defer close(w.done)

	attempts := w.queue.Dequeue(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.shutdown:
			return
		case a, ok := <-attempts:
			if !ok {
				return
			}
			if err := w.process(ctx, a); err != nil {
				w.logger.Error(ctx, "attempt failed",
					logger.String("attempt_id", a.ID),
					logger.String("product", a.Product.String()),
					logger.Error(err),
				)
				if w.onFailure != nil {
					w.onFailure(ctx, a, err)
				}
			}
		}
	}
}

// Shutdown stops the worker after its current attempt.
func (w *InMemoryWorker) Shutdown(ctx context.Context) error {
	w.shutdownOnce.Do(func() { close(w.shutdown) })

	select {
	case <-w.done:
		return nil
	default:
	}
	select {
	case <-w.done:
		return nil
	case <-ctx.Done():
		w.logger.Warn(ctx, "shutdown timed out")
		return fmt.Errorf("shutdown timed out: %w", ctx.Err())
	}
}

// Done is closed when Run returns.
func (w *InMemoryWorker) Done() <-chan struct{} {
	return w.done
}

func (w *InMemoryWorker) process(ctx context.Context, a model.Attempt) error {
	start := time.Now()
	defer func() {
		metrics.RecordWorkerProcessingLatency(float64(time.Since(start).Microseconds()) / 1000)
	}()

	rep, err := w.generator.Generate(ctx, a)
	if err != nil {
		metrics.RecordWorkerError()
		metrics.RecordErrorByComponent("worker", "generate")
		return fmt.Errorf("generate attempt %s: %w", a.ID, err)
	}

	if err := w.recorder.Put(ctx, a.ID, rep); err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			w.logger.Debug(ctx, "attempt already completed", logger.String("attempt_id", a.ID))
			metrics.RecordWorkerProcessed()
			return nil
		}
		metrics.RecordWorkerError()
		metrics.RecordErrorByComponent("worker", "store")
		return fmt.Errorf("store report of attempt %s: %w", a.ID, err)
	}

	metrics.RecordWorkerProcessed()
	w.logger.Debug(ctx, "report stored",
		logger.String("attempt_id", a.ID),
		logger.String("report_id", rep.ID),
	)
	return nil
}

// Pool manages multiple workers sharing one queue.
type Pool struct {
	workers      []*InMemoryWorker
	queue        Queue
	drainTimeout time.Duration
	logger       logger.Logger
}

// NewPool creates a pool of workerCount workers. Values below one default to
// the number of CPUs.
func NewPool(workerCount int, q Queue, g Generator, r Recorder, opts ...Option) *Pool {
	if workerCount < 1 {
		workerCount = runtime.NumCPU()
	}

	p := &Pool{
		workers:      make([]*InMemoryWorker, workerCount),
		queue:        q,
		drainTimeout: defaultDrainTimeout,
		logger:       logger.Get().Named("worker-pool"),
	}
	for i := range p.workers {
		wopts := append([]Option{WithName("worker-" + strconv.Itoa(i))}, opts...)
		p.workers[i] = NewInMemoryWorker(q, g, r, wopts...)
	}
	return p
}

// Size returns the number of workers.
func (p *Pool) Size() int { return len(p.workers) }

// Start starts all workers.
func (p *Pool) Start(ctx context.Context) {
	for _, w := range p.workers {
		go w.Run(ctx)
	}
	metrics.UpdateWorkerCount(len(p.workers))
}

// Stop stops every worker after its current attempt, leaving queued attempts
// unprocessed.
func (p *Pool) Stop(ctx context.Context) error {
	var errs []error
	for _, w := range p.workers {
		if err := w.Shutdown(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	metrics.UpdateWorkerCount(0)
	return errors.Join(errs...)
}

// SetDrainTimeout bounds how long Shutdown waits for the queue to drain.
// Non-positive values keep the current bound.
func (p *Pool) SetDrainTimeout(d time.Duration) {
	if d > 0 {
		p.drainTimeout = d
	}
}

// Shutdown closes the queue, when it can be closed, and waits for the
// workers to drain it. When the drain outlives ctx or the drain timeout the
// workers are stopped and Shutdown returns without waiting for stuck ones.
func (p *Pool) Shutdown(ctx context.Context) error {
	if closer, ok := p.queue.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			p.logger.Error(ctx, "error closing queue", logger.Error(err))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, p.drainTimeout)
	defer cancel()

	for i, w := range p.workers {
		select {
		case <-w.Done():
		case <-shutdownCtx.Done():
			p.logger.Warn(ctx, "worker drain timed out", logger.Int("worker_id", i))
			// shutdownCtx is already done, so Stop only signals the workers.
			return p.Stop(shutdownCtx)
		}
	}
	metrics.UpdateWorkerCount(0)
	return nil
}
