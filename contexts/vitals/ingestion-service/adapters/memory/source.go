package memory

import (
	"context"
	"sync"

	"tensio/contexts/vitals/ingestion-service/ports"
)

// Source is an in-memory SourceReader. Tests point it at a table or an
// error to drive the pipeline and the stale-cache fallback.
type Source struct {
	mu    sync.Mutex
	table ports.RawTable
	err   error
}

func NewSource(table ports.RawTable) *Source {
	return &Source{table: table}
}

func (s *Source) Name() string { return "memory" }

func (s *Source) Read(_ context.Context) (ports.RawTable, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return ports.RawTable{}, s.err
	}
	return s.table, nil
}

func (s *Source) SetTable(table ports.RawTable) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.table = table
	s.err = nil
}

func (s *Source) Fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}
