package application

import (
	"sync"
	"time"
)

// RefreshStatus remembers the outcome of the most recent refresh so read
// paths can tell whether the current dataset came from a live source or
// from the stale-cache fallback.
type RefreshStatus struct {
	mu        sync.RWMutex
	stale     bool
	warning   string
	refreshed time.Time
}

func (s *RefreshStatus) record(stale bool, warning string, refreshed time.Time) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stale = stale
	s.warning = warning
	s.refreshed = refreshed
}

// Stale reports whether the last refresh fell back to the snapshot cache.
func (s *RefreshStatus) Stale() bool {
	if s == nil {
		return false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stale
}

// Warning returns the source error text of the last fallback, if any.
func (s *RefreshStatus) Warning() string {
	if s == nil {
		return ""
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.warning
}
