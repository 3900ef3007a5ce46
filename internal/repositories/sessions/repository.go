package sessions

//go:generate mockgen -destination=mock/mock_repository.go -package=mocksessions -source=repository.go

import (
	"context"

	"github.com/dustward/combat-engine/internal/domain/combat"
)

// Repository defines the interface for combat session storage. Sessions are
// persisted verbatim so an encounter survives a process restart.
type Repository interface {
	// Create stores a new session and marks it active
	Create(ctx context.Context, session *combat.Session) error

	// Get retrieves a session by ID
	Get(ctx context.Context, id string) (*combat.Session, error)

	// Update overwrites an existing session
	Update(ctx context.Context, session *combat.Session) error

	// Delete removes a session, clearing the active marker if it points here
	Delete(ctx context.Context, id string) error

	// GetActive retrieves the single active session, if any
	GetActive(ctx context.Context) (*combat.Session, error)

	// List retrieves all stored sessions
	List(ctx context.Context) ([]*combat.Session, error)
}
