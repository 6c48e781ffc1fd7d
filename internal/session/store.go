// Package session holds the process-wide session state: the single current
// session and the auto-renew policy. Locks are held only to copy or replace
// values and never across network I/O.
package session

import (
	"sync"

	"ppauth/internal/domain"
)

// Store holds zero or one session.
type Store struct {
	mu      sync.Mutex
	current *domain.Session
}

// NewStore creates an empty session store.
func NewStore() *Store {
	return &Store{}
}

// Set replaces the stored session wholesale. Last writer wins.
func (s *Store) Set(session domain.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = &session
}

// Get returns a copy of the current session.
func (s *Store) Get() (domain.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return domain.Session{}, false
	}
	return *s.current, true
}

// Clear drops the current session, if any.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
}
