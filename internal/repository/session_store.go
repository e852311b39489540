package repository

import (
	"sync"

	"disasterguard/internal/domain"
	"disasterguard/internal/util"
)

// SessionStore is the in-memory implementation of domain.SessionRepository.
// Session state is process-local and discarded on restart.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*domain.Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*domain.Session),
	}
}

// GetOrCreate returns the session for id, creating it when absent. An empty
// id yields a new session under a freshly generated ULID.
func (s *SessionStore) GetOrCreate(id string) *domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id != "" {
		if session, ok := s.sessions[id]; ok {
			return session
		}
	} else {
		id = util.NewULID()
	}
	session := domain.NewSession(id)
	s.sessions[id] = session
	return session
}

func (s *SessionStore) Get(id string) (*domain.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	return session, ok
}

func (s *SessionStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}
