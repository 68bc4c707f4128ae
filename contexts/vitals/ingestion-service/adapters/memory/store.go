package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	domainerrors "tensio/contexts/vitals/ingestion-service/domain/errors"
	"tensio/contexts/vitals/ingestion-service/ports"
)

// Store keeps snapshots in memory. It backs NewInMemoryModule and the unit
// tests, and doubles as Clock and IDGenerator so tests stay deterministic.
type Store struct {
	mu        sync.RWMutex
	snapshots []storedSnapshot
	sequence  uint64
	now       func() time.Time
}

type storedSnapshot struct {
	meta    ports.SnapshotMeta
	dataset ports.Dataset
}

func NewStore() *Store {
	return &Store{now: func() time.Time { return time.Now().UTC() }}
}

// SetNow pins the clock for deterministic tests.
func (s *Store) SetNow(now func() time.Time) { s.now = now }

func (s *Store) Now() time.Time { return s.now() }

func (s *Store) NewID(_ context.Context) (string, error) {
	return fmt.Sprintf("snap_%d", atomic.AddUint64(&s.sequence, 1)), nil
}

func (s *Store) Save(_ context.Context, meta ports.SnapshotMeta, dataset ports.Dataset) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshots = append(s.snapshots, storedSnapshot{meta: meta, dataset: dataset})
	sort.SliceStable(s.snapshots, func(i, j int) bool {
		return s.snapshots[i].meta.CreatedAt.Before(s.snapshots[j].meta.CreatedAt)
	})
	return nil
}

func (s *Store) Latest(_ context.Context) (ports.SnapshotMeta, ports.Dataset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.snapshots) == 0 {
		return ports.SnapshotMeta{}, ports.Dataset{}, domainerrors.ErrSnapshotNotFound
	}
	last := s.snapshots[len(s.snapshots)-1]
	return last.meta, last.dataset, nil
}

func (s *Store) List(_ context.Context) ([]ports.SnapshotMeta, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	metas := make([]ports.SnapshotMeta, 0, len(s.snapshots))
	for i := len(s.snapshots) - 1; i >= 0; i-- {
		metas = append(metas, s.snapshots[i].meta)
	}
	return metas, nil
}

func (s *Store) Prune(_ context.Context, keep int) (int, error) {
	if keep <= 0 {
		return 0, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.snapshots) <= keep {
		return 0, nil
	}
	removed := len(s.snapshots) - keep
	s.snapshots = append([]storedSnapshot(nil), s.snapshots[removed:]...)
	return removed, nil
}
