// Package history tracks the most recent wake time per target name.
// Purely in-memory: entries are lost on restart, and only wakes resolved
// through the target registry are recorded.
package history

import (
	"sync"
	"time"
)

// Service is a guarded map of target name to last wake time. Gin serves
// requests concurrently, so read-modify-write access takes the lock.
type Service struct {
	mu    sync.RWMutex
	wakes map[string]time.Time
}

// New creates an empty wake history.
func New() *Service {
	return &Service{wakes: make(map[string]time.Time)}
}

// Record stores the wake time for a target, overwriting any prior entry.
func (s *Service) Record(name string, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wakes[name] = at.UTC()
}

// Lookup returns the last recorded wake time for a target.
func (s *Service) Lookup(name string) (time.Time, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	at, ok := s.wakes[name]
	return at, ok
}
