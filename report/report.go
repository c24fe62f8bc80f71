// Package report serializes evaluation results for downstream
// reporting pipelines and keeps them addressable by generated result
// IDs.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/archeval/maskeval"
)

// Record wraps one evaluation result with an identifier and creation
// time.
type Record struct {
	ResultID  string                 `json:"resultId"`
	Name      string                 `json:"name,omitempty"`
	CreatedAt time.Time              `json:"createdAt"`
	Metrics   maskeval.MetricsResult `json:"metrics"`
	// NAS carries the architecture-search figures when the record was
	// built from a NAS evaluation.
	NAS *NASFigures `json:"nas,omitempty"`
}

// NASFigures are the fields a NAS evaluation adds on top of the base
// metrics.
type NASFigures struct {
	ModelNumParam float64 `json:"modelNumParam"`
	Objective     float64 `json:"objective"`
}

// New builds a record for a masked metrics result with a fresh ID.
func New(name string, m maskeval.MetricsResult) Record {
	return Record{
		ResultID:  uuid.NewString(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
		Metrics:   m,
	}
}

// NewNAS builds a record for a NAS metrics result with a fresh ID.
func NewNAS(name string, m maskeval.NASMetricsResult) Record {
	r := New(name, m.MetricsResult)
	r.NAS = &NASFigures{
		ModelNumParam: m.ModelNumParam,
		Objective:     m.Objective,
	}
	return r
}

// Write encodes the record as JSON to w.
func (r Record) Write(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode result %s: %w", r.ResultID, err)
	}
	return nil
}

// Store keeps records in memory, keyed by result ID. Safe for
// concurrent use.
type Store struct {
	mu      sync.RWMutex
	records map[string]Record
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{records: make(map[string]Record)}
}

// Save stores the record and returns its ID.
func (s *Store) Save(r Record) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[r.ResultID] = r
	return r.ResultID
}

// Get retrieves a record by ID.
func (s *Store) Get(resultID string) (Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.records[resultID]
	return r, ok
}

// List returns all stored result IDs, oldest first.
func (s *Store) List() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	records := make([]Record, 0, len(s.records))
	for _, r := range s.records {
		records = append(records, r)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].CreatedAt.Before(records[j].CreatedAt)
	})
	ids := make([]string, len(records))
	for i, r := range records {
		ids[i] = r.ResultID
	}
	return ids
}
