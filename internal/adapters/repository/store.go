// Package repository keeps generated reports, write-once per attempt.
package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/okian/spikefactor/internal/domain/report"
	"github.com/okian/spikefactor/pkg/metrics"
)

// Entry is a stored report together with the attempt it belongs to.
type Entry struct {
	AttemptID string        `json:"attempt_id"`
	Report    report.Report `json:"report"`
}

// Store persists reports. A report is never replaced once stored.
type Store interface {
	// Put stores r for attemptID. It fails with ErrAlreadyExists when the
	// attempt already has a report and with ErrFull when the store is at
	// capacity.
	Put(ctx context.Context, attemptID string, r report.Report) error

	// Get returns the report of attemptID or ErrNotFound.
	Get(ctx context.Context, attemptID string) (report.Report, error)

	// List returns every entry in insertion order.
	List(ctx context.Context) []Entry

	// Count returns the number of stored reports.
	Count(ctx context.Context) int
}

// InMemoryStore implements Store with a map guarded by a RWMutex.
type InMemoryStore struct {
	mu      sync.RWMutex
	reports map[string]report.Report
	order   []string
	maxSize int // <= 0 means unbounded
}

// NewInMemoryStore creates an empty store.
func NewInMemoryStore(opts ...Option) *InMemoryStore {
	s := &InMemoryStore{reports: make(map[string]report.Report)}
	for _, opt := range opts {
		opt(s)
	}
	metrics.UpdateReportsStored(0)
	return s
}

// Put stores r for attemptID.
func (s *InMemoryStore) Put(_ context.Context, attemptID string, r report.Report) error {
	if attemptID == "" {
		return ErrInvalidID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.reports[attemptID]; ok {
		metrics.RecordErrorByComponent("repository", "already_exists")
		return fmt.Errorf("%w: %s", ErrAlreadyExists, attemptID)
	}
	if s.maxSize > 0 && len(s.reports) >= s.maxSize {
		metrics.RecordErrorByComponent("repository", "full")
		return fmt.Errorf("%w: %d reports", ErrFull, len(s.reports))
	}
	s.reports[attemptID] = r
	s.order = append(s.order, attemptID)
	metrics.UpdateReportsStored(len(s.reports))
	return nil
}

// Get returns the report stored for attemptID.
func (s *InMemoryStore) Get(_ context.Context, attemptID string) (report.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.reports[attemptID]
	if !ok {
		metrics.RecordErrorByComponent("repository", "not_found")
		return report.Report{}, fmt.Errorf("%w: %s", ErrNotFound, attemptID)
	}
	return r, nil
}

// List returns all entries in insertion order.
func (s *InMemoryStore) List(_ context.Context) []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Entry, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, Entry{AttemptID: id, Report: s.reports[id]})
	}
	return out
}

// Count returns the number of stored reports.
func (s *InMemoryStore) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.reports)
}
