package server

import (
	"sync"

	"github.com/hawkarabdulhaq/quakescope/internal/model"
	"github.com/hawkarabdulhaq/quakescope/internal/stats"
)

// Store holds the most recently generated report and the records behind
// it. The reload loop replaces the snapshot; request handlers read it.
type Store struct {
	mu      sync.RWMutex
	report  stats.Report
	records []model.Record
	reloads int64
}

// NewStore creates a Store seeded with the initial report and records.
func NewStore(rep stats.Report, recs []model.Record) *Store {
	return &Store{report: rep, records: recs}
}

// Set replaces the current snapshot and bumps the reload counter.
func (s *Store) Set(rep stats.Report, recs []model.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.report = rep
	s.records = recs
	s.reloads++
}

// Report returns the current report snapshot.
func (s *Store) Report() stats.Report {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.report
}

// Records returns the currently loaded records.
func (s *Store) Records() []model.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.records
}

// Reloads returns how many times the dataset has been regenerated since
// startup.
func (s *Store) Reloads() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reloads
}
