// Package service wires the assessment engine to its supporting
// infrastructure: the write-once report store, attempt deduplication, the
// attempt queue and the worker pool.
package service

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/okian/spikefactor/internal/adapters/mq/queue"
	"github.com/okian/spikefactor/internal/adapters/mq/worker"
	"github.com/okian/spikefactor/internal/adapters/repository"
	"github.com/okian/spikefactor/internal/domain/assessment"
	"github.com/okian/spikefactor/internal/domain/catalog"
	"github.com/okian/spikefactor/internal/domain/dedupe"
	"github.com/okian/spikefactor/internal/domain/insight"
	"github.com/okian/spikefactor/internal/domain/model"
	"github.com/okian/spikefactor/internal/domain/report"
	"github.com/okian/spikefactor/internal/domain/scoring"
	"github.com/okian/spikefactor/internal/domain/types"
	"github.com/okian/spikefactor/pkg/logger"
	"github.com/okian/spikefactor/pkg/metrics"
)

// attemptGenerator adapts Service.Generate to worker.Generator.
type attemptGenerator struct {
	s *Service
}

func (g attemptGenerator) Generate(ctx context.Context, a model.Attempt) (report.Report, error) {
	return g.s.Generate(ctx, a.Product, a.Answers)
}

// Service generates and keeps assessment reports.
type Service struct {
	mu sync.RWMutex

	store   repository.Store
	deduper dedupe.Deduper
	queue   *queue.InMemoryQueue
	pool    *worker.Pool

	workerCount int
	queueSize   int
	dedupeSize  int
	storeSize   int
	now         func() time.Time

	failMu   sync.Mutex
	failures map[string]error

	started bool
	logger  logger.Logger
}

// New constructs a Service. The report store and deduper are ready for use
// immediately; the queue and workers only after Start.
func New(opts ...Option) *Service {
	s := &Service{
		workerCount: runtime.NumCPU(),
		queueSize:   1024,
		dedupeSize:  dedupe.DefaultMaxSize,
		now:         time.Now,
		failures:    make(map[string]error),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logger.Get().Named("service")
	}
	s.store = repository.NewInMemoryStore(repository.WithMaxSize(s.storeSize))
	s.deduper = dedupe.NewInMemoryDeduper(dedupe.WithMaxSize(s.dedupeSize))
	return s
}

// Generate scores answers for product and builds the report. It stores
// nothing; see Complete for write-once completion.
func (s *Service) Generate(ctx context.Context, product types.Product, answers []model.Answer) (report.Report, error) {
	start := time.Now()
	out, err := assessment.Generate(product, answers, s.now())
	if err != nil {
		kind := errorKind(err)
		metrics.RecordScoringError(product.String(), kind)
		s.logger.Warn(ctx, "report generation rejected",
			logger.String("product", product.String()),
			logger.String("kind", kind),
			logger.Int("answers", len(answers)),
			logger.Error(err),
		)
		return report.Report{}, err
	}

	metrics.RecordGenerationLatency(product.String(), float64(time.Since(start).Microseconds())/1000)
	metrics.RecordReportGenerated(product.String())
	metrics.RecordAnswers(out.Answered, out.Overwritten)
	s.logger.Debug(ctx, "report generated",
		logger.String("product", product.String()),
		logger.String("report_id", out.Report.ID),
		logger.Float64("score", out.Report.Score),
		logger.Int("answered", out.Answered),
		logger.Int("overwritten", out.Overwritten),
	)
	return out.Report, nil
}

// Complete generates the report of a completed attempt and stores it once.
// Completing an attempt again returns the stored report unchanged.
func (s *Service) Complete(ctx context.Context, a model.Attempt) (report.Report, error) {
	if a.ID == "" {
		return report.Report{}, fmt.Errorf("%w: empty id", ErrInvalidAttempt)
	}
	if r, err := s.store.Get(ctx, a.ID); err == nil {
		return r, nil
	}

	r, err := s.Generate(ctx, a.Product, a.Answers)
	if err != nil {
		return report.Report{}, err
	}
	if err := s.store.Put(ctx, a.ID, r); err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			return s.store.Get(ctx, a.ID)
		}
		return report.Report{}, err
	}
	return r, nil
}

// Start creates the attempt queue and starts the worker pool.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	s.queue = queue.NewInMemoryQueue(queue.WithCapacity(s.queueSize))
	s.pool = worker.NewPool(s.workerCount, s.queue, attemptGenerator{s: s}, s.store,
		worker.WithFailureHandler(s.recordFailure),
	)
	s.pool.Start(ctx)
	s.started = true

	s.logger.Info(ctx, "assessment service started",
		logger.Int("workers", s.pool.Size()),
		logger.Int("queue_size", s.queueSize),
		logger.Int("dedupe_size", s.dedupeSize),
	)
	return nil
}

// Submit queues a completed attempt for asynchronous generation. An attempt
// id that was already submitted fails with ErrDuplicateAttempt.
func (s *Service) Submit(ctx context.Context, a model.Attempt) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.started {
		return ErrNotStarted
	}
	if a.ID == "" {
		return fmt.Errorf("%w: empty id", ErrInvalidAttempt)
	}
	if s.deduper.SeenAndRecord(ctx, a.ID) {
		metrics.RecordAttemptDuplicate()
		s.logger.Debug(ctx, "duplicate attempt skipped", logger.String("attempt_id", a.ID))
		return fmt.Errorf("%w: %s", ErrDuplicateAttempt, a.ID)
	}
	if err := s.queue.Enqueue(ctx, a); err != nil {
		s.deduper.Unrecord(ctx, a.ID)
		return fmt.Errorf("enqueue attempt %s: %w", a.ID, err)
	}
	return nil
}

// Drain stops accepting attempts and waits until every queued attempt is
// processed.
func (s *Service) Drain(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return nil
	}
	err := s.pool.Shutdown(ctx)
	s.started = false
	s.logger.Info(ctx, "assessment service drained",
		logger.Int("reports", s.store.Count(ctx)),
		logger.Int("failures", len(s.Failures())),
	)
	return err
}

// Stop stops the workers without waiting for queued attempts.
func (s *Service) Stop(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return nil
	}
	err := s.pool.Stop(ctx)
	_ = s.queue.Close()
	s.started = false
	s.logger.Info(ctx, "assessment service stopped")
	return err
}

// Report returns the stored report of attemptID.
func (s *Service) Report(ctx context.Context, attemptID string) (report.Report, error) {
	return s.store.Get(ctx, attemptID)
}

// Reports returns every stored report in completion order.
func (s *Service) Reports(ctx context.Context) []repository.Entry {
	return s.store.List(ctx)
}

// Failures returns the attempts workers could not complete, by attempt id.
func (s *Service) Failures() map[string]error {
	s.failMu.Lock()
	defer s.failMu.Unlock()

	out := make(map[string]error, len(s.failures))
	for k, v := range s.failures {
		out[k] = v
	}
	return out
}

func (s *Service) recordFailure(_ context.Context, a model.Attempt, err error) {
	s.failMu.Lock()
	defer s.failMu.Unlock()
	s.failures[a.ID] = err
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx := context.Background()
	stats := map[string]any{
		"started":     s.started,
		"workerCount": s.workerCount,
		"queueSize":   s.queueSize,
		"dedupeSize":  s.dedupeSize,
		"reports":     s.store.Count(ctx),
		"submitted":   s.deduper.Size(),
		"failures":    len(s.Failures()),
	}
	if s.started {
		stats["queueLength"] = s.queue.Len()
	}
	return stats
}

func errorKind(err error) string {
	switch {
	case errors.Is(err, catalog.ErrUnknownProduct):
		return "unknown_product"
	case errors.Is(err, scoring.ErrIncompleteAssessment):
		return "incomplete"
	case errors.Is(err, scoring.ErrInvalidAnswer):
		return "invalid_answer"
	case errors.Is(err, insight.ErrUnknownCategory):
		return "unknown_category"
	default:
		return "internal"
	}
}
