package usecase

import (
	"sync"

	"vendio/internal/domain/entity"
)

// Session is the explicit per-user context: who is signed in and which
// store (if any) their dashboard operates on. It is created by login,
// mutated by onboarding, and destroyed by logout.
type Session struct {
	User        *entity.User
	ActiveStore *entity.Store
}

// SessionRegistry holds live sessions keyed by user id. Like everything
// else here it is in-memory only; a restart signs everyone out.
type SessionRegistry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{
		sessions: make(map[string]*Session),
	}
}

func (r *SessionRegistry) Put(userID string, session *Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[userID] = session
}

func (r *SessionRegistry) Get(userID string) (*Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	session, ok := r.sessions[userID]
	return session, ok
}

func (r *SessionRegistry) SetActiveStore(userID string, store *entity.Store) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	session, ok := r.sessions[userID]
	if !ok {
		return false
	}
	session.ActiveStore = store
	return true
}

func (r *SessionRegistry) Delete(userID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, userID)
}
