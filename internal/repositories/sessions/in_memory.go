package sessions

import (
	"context"
	"sync"

	"github.com/dustward/combat-engine/internal/domain/combat"
	cbterr "github.com/dustward/combat-engine/internal/errors"
)

type inMemoryRepository struct {
	mu       sync.RWMutex
	sessions map[string][]byte // stored as snapshots so callers never share state
	activeID string
}

// NewInMemoryRepository creates a new in-memory session repository
func NewInMemoryRepository() Repository {
	return &inMemoryRepository{
		sessions: make(map[string][]byte),
	}
}

// Create stores a new session and marks it active
func (r *inMemoryRepository) Create(_ context.Context, session *combat.Session) error {
	if session == nil {
		return cbterr.InvalidArgument("session cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sessions[session.ID]; exists {
		return cbterr.AlreadyExists("session with ID " + session.ID + " already exists")
	}

	data, err := combat.Snapshot(session)
	if err != nil {
		return err
	}

	r.sessions[session.ID] = data
	r.activeID = session.ID
	return nil
}

// Get retrieves a session by ID
func (r *inMemoryRepository) Get(_ context.Context, id string) (*combat.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	data, exists := r.sessions[id]
	if !exists {
		return nil, cbterr.NotFoundf("session not found: %s", id)
	}

	return combat.RestoreSnapshot(data)
}

// Update overwrites an existing session
func (r *inMemoryRepository) Update(_ context.Context, session *combat.Session) error {
	if session == nil {
		return cbterr.InvalidArgument("session cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sessions[session.ID]; !exists {
		return cbterr.NotFoundf("session not found: %s", session.ID)
	}

	data, err := combat.Snapshot(session)
	if err != nil {
		return err
	}

	r.sessions[session.ID] = data
	return nil
}

// Delete removes a session, clearing the active marker if it points here
func (r *inMemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, id)
	if r.activeID == id {
		r.activeID = ""
	}
	return nil
}

// GetActive retrieves the single active session, if any
func (r *inMemoryRepository) GetActive(ctx context.Context) (*combat.Session, error) {
	r.mu.RLock()
	activeID := r.activeID
	r.mu.RUnlock()

	if activeID == "" {
		return nil, cbterr.NotFound("no active session")
	}
	return r.Get(ctx, activeID)
}

// List retrieves all stored sessions
func (r *inMemoryRepository) List(_ context.Context) ([]*combat.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*combat.Session, 0, len(r.sessions))
	for _, data := range r.sessions {
		session, err := combat.RestoreSnapshot(data)
		if err != nil {
			return nil, err
		}
		result = append(result, session)
	}
	return result, nil
}
