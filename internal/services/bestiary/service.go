package bestiary

//go:generate mockgen -destination=mock/mock_service.go -package=mockbestiary -source=service.go

import (
	"context"
	"sort"

	"github.com/dustward/combat-engine/internal/domain/combat"
	cbterr "github.com/dustward/combat-engine/internal/errors"
)

// Service defines the enemy catalog interface. Definitions are immutable;
// callers that need to mutate combat state work on a Clone.
type Service interface {
	// GetEnemy fetches an enemy definition by key
	GetEnemy(ctx context.Context, key string) (*combat.EnemyDefinition, error)

	// ListEnemies returns all known enemy keys, sorted
	ListEnemies(ctx context.Context) []string
}

type service struct {
	definitions map[string]*combat.EnemyDefinition
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	// Definitions overrides the builtin catalog; nil uses the builtin data
	Definitions map[string]*combat.EnemyDefinition
}

// NewService creates a new bestiary service
func NewService(cfg *ServiceConfig) Service {
	svc := &service{
		definitions: builtinDefinitions(),
	}

	if cfg != nil && cfg.Definitions != nil {
		svc.definitions = cfg.Definitions
	}

	return svc
}

// GetEnemy fetches an enemy definition by key
func (s *service) GetEnemy(_ context.Context, key string) (*combat.EnemyDefinition, error) {
	if key == "" {
		return nil, cbterr.InvalidArgument("enemy key is required")
	}

	def, ok := s.definitions[key]
	if !ok {
		return nil, cbterr.NotFoundf("enemy '%s' not found", key)
	}

	return def, nil
}

// ListEnemies returns all known enemy keys, sorted
func (s *service) ListEnemies(_ context.Context) []string {
	keys := make([]string, 0, len(s.definitions))
	for key := range s.definitions {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
