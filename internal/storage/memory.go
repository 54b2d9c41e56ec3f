package storage

import (
	"sync"

	"github.com/patrisenra/pasenca/internal/models"
)

// MemorySessionStore holds all sessions in memory for the process lifetime.
// Sessions are never expired or deleted.
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*sessionEntry
}

// sessionEntry carries a per-user lock so updates for one user serialize
// without blocking other users.
type sessionEntry struct {
	mu      sync.Mutex
	session *models.Session
}

// NewMemorySessionStore creates an empty in-memory session store.
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		sessions: make(map[string]*sessionEntry),
	}
}

func (m *MemorySessionStore) entry(userID string) *sessionEntry {
	m.mu.RLock()
	e := m.sessions[userID]
	m.mu.RUnlock()
	if e != nil {
		return e
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if e = m.sessions[userID]; e == nil {
		e = &sessionEntry{session: models.NewSession(userID)}
		m.sessions[userID] = e
	}
	return e
}

// Update runs fn with the user's session locked, creating it lazily.
func (m *MemorySessionStore) Update(userID string, fn func(*models.Session)) {
	e := m.entry(userID)
	e.mu.Lock()
	defer e.mu.Unlock()
	fn(e.session)
}

// Get returns a copy of the user's session, so callers cannot mutate the
// stored record outside Update.
func (m *MemorySessionStore) Get(userID string) (models.Session, bool) {
	m.mu.RLock()
	e := m.sessions[userID]
	m.mu.RUnlock()
	if e == nil {
		return models.Session{}, false
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	snapshot := *e.session
	snapshot.Data = make(map[string]string, len(e.session.Data))
	for k, v := range e.session.Data {
		snapshot.Data[k] = v
	}
	return snapshot, true
}

// MemoryLeadStore keeps leads in an append-only slice, insertion order.
type MemoryLeadStore struct {
	mu    sync.Mutex
	leads []*models.Lead
}

// NewMemoryLeadStore creates an empty in-memory lead store.
func NewMemoryLeadStore() *MemoryLeadStore {
	return &MemoryLeadStore{}
}

// Append records a completed lead.
func (m *MemoryLeadStore) Append(lead *models.Lead) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.leads = append(m.leads, lead)
	return nil
}

// All returns the recorded leads in the order they were appended.
func (m *MemoryLeadStore) All() ([]*models.Lead, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*models.Lead, len(m.leads))
	copy(out, m.leads)
	return out, nil
}
