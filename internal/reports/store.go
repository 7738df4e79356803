package reports

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrNotFound is returned when no report has the requested ID.
var ErrNotFound = errors.New("report not found")

// Store persists reports.
type Store interface {
	Save(ctx context.Context, r Report) error
	Get(ctx context.Context, id string) (Report, error)
	// List returns every report, newest first.
	List(ctx context.Context) ([]Report, error)
}

// MemoryStore keeps reports in memory for the life of the process.
type MemoryStore struct {
	mu      sync.RWMutex
	reports map[string]Report
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{reports: make(map[string]Report)}
}

func (s *MemoryStore) Save(_ context.Context, r Report) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reports[r.ID] = cloneReport(r)
	return nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.reports[id]
	if !ok {
		return Report{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return cloneReport(r), nil
}

func (s *MemoryStore) List(_ context.Context) ([]Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Report, 0, len(s.reports))
	for _, r := range s.reports {
		out = append(out, cloneReport(r))
	}
	sortNewestFirst(out)
	return out, nil
}

// Seed saves the sample reports into the store.
func Seed(ctx context.Context, s Store) error {
	for _, r := range SampleReports() {
		if err := s.Save(ctx, r); err != nil {
			return fmt.Errorf("seeding %s: %w", r.ID, err)
		}
	}
	return nil
}

func sortNewestFirst(rs []Report) {
	sort.SliceStable(rs, func(i, j int) bool {
		if rs[i].CreatedAt.Equal(rs[j].CreatedAt) {
			return rs[i].ID < rs[j].ID
		}
		return rs[i].CreatedAt.After(rs[j].CreatedAt)
	})
}

func cloneReport(r Report) Report {
	r.Symptoms = append([]string(nil), r.Symptoms...)
	r.Recommendations = append([]string(nil), r.Recommendations...)
	return r
}
