package session

import (
	"context"
	"errors"
	"sync"

	"github.com/papacapim/papacapim/internal/client/models"
)

// Persister is the storage side of the Manager; *Store implements it.
type Persister interface {
	Save(ctx context.Context, s models.Session) error
	Load(ctx context.Context) (models.Session, error)
	Clear(ctx context.Context) error
}

// Manager holds at most one active session. Set and Clear are the only
// mutators.
type Manager struct {
	mu      sync.RWMutex
	store   Persister
	current *models.Session
}

func NewManager(store Persister) *Manager {
	return &Manager{store: store}
}

// Restore loads the persisted session, if any. A missing session is not an
// error.
func (m *Manager) Restore(ctx context.Context) error {
	s, err := m.store.Load(ctx)
	if errors.Is(err, ErrNoSession) {
		return nil
	}
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.current = &s
	m.mu.Unlock()
	return nil
}

// Set persists s and then makes it current. On a storage error the
// previous session stays in place.
func (m *Manager) Set(ctx context.Context, s models.Session) error {
	if err := m.store.Save(ctx, s); err != nil {
		return err
	}

	m.mu.Lock()
	m.current = &s
	m.mu.Unlock()
	return nil
}

// Clear drops the in-memory session unconditionally and then wipes the
// persisted one, returning any storage error.
func (m *Manager) Clear(ctx context.Context) error {
	m.mu.Lock()
	m.current = nil
	m.mu.Unlock()

	return m.store.Clear(ctx)
}

func (m *Manager) Current() (models.Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.current == nil {
		return models.Session{}, false
	}
	return *m.current, true
}

func (m *Manager) User() (models.User, bool) {
	s, ok := m.Current()
	return s.User, ok
}

// Token implements client.TokenSource.
func (m *Manager) Token() string {
	s, _ := m.Current()
	return s.Token
}

func (m *Manager) IsAuthenticated() bool {
	_, ok := m.Current()
	return ok
}
