package loot

//go:generate mockgen -destination=mock/mock_service.go -package=mockloot -source=service.go

import (
	"context"
	"math/rand"
	"time"

	"github.com/dustward/combat-engine/internal/domain/combat"
	cbterr "github.com/dustward/combat-engine/internal/errors"
)

// Tier is a loot-table bucket selected from the defeated enemy's XP value
type Tier string

const (
	TierCommon   Tier = "common"
	TierUncommon Tier = "uncommon"
	TierRare     Tier = "rare"
)

// XP thresholds for tier selection
const (
	uncommonXPThreshold = 80
	rareXPThreshold     = 120
)

// TableEntry is one weighted row of a loot table
type TableEntry struct {
	ItemKey string
	Weight  int // positive
	MinQty  int
	MaxQty  int
}

// Grant is one awarded stack of items
type Grant struct {
	ItemKey  string
	Quantity int
}

// GenerateInput describes the defeated enemy and applicable player perks
type GenerateInput struct {
	EnemyXP   int
	EnemyType combat.EnemyType

	// DoubleRoll grants a second independent draw (scavenger perk); draws
	// are with replacement, so the same entry may come up twice
	DoubleRoll bool
}

// Service defines the loot generation interface
type Service interface {
	// TierFor maps an enemy XP value to a loot tier; pure and deterministic
	TierFor(xp int) Tier

	// Generate performs the weighted draws for a defeated enemy
	Generate(ctx context.Context, input *GenerateInput) ([]Grant, error)
}

type service struct {
	random *rand.Rand
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	// Seed fixes the random source when non-zero
	Seed int64
}

// NewService creates a new loot service
func NewService(cfg *ServiceConfig) Service {
	seed := time.Now().UnixNano()
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	}

	return &service{
		random: rand.New(rand.NewSource(seed)),
	}
}

// TierFor maps an enemy XP value to a loot tier
func (s *service) TierFor(xp int) Tier {
	switch {
	case xp < uncommonXPThreshold:
		return TierCommon
	case xp < rareXPThreshold:
		return TierUncommon
	default:
		return TierRare
	}
}

// Generate performs the weighted draws for a defeated enemy
func (s *service) Generate(_ context.Context, input *GenerateInput) ([]Grant, error) {
	if input == nil {
		return nil, cbterr.InvalidArgument("input cannot be nil")
	}

	tier := s.TierFor(input.EnemyXP)
	table := tableFor(tier, input.EnemyType)

	draws := 1
	if input.DoubleRoll {
		draws = 2
	}

	grants := make([]Grant, 0, draws)
	for i := 0; i < draws; i++ {
		entry := pickWeighted(s.random, table)
		if entry == nil {
			continue
		}

		qty := entry.MinQty
		if entry.MaxQty > entry.MinQty {
			qty += s.random.Intn(entry.MaxQty - entry.MinQty + 1)
		}

		grants = append(grants, Grant{ItemKey: entry.ItemKey, Quantity: qty})
	}

	return grants, nil
}

// pickWeighted walks the cumulative weights of the table and returns the
// entry under the drawn value. A residual left by floating-point drift
// yields nil rather than panicking.
func pickWeighted(random *rand.Rand, entries []TableEntry) *TableEntry {
	totalWeight := 0
	for i := range entries {
		totalWeight += entries[i].Weight
	}
	if totalWeight <= 0 {
		return nil
	}

	r := random.Float64() * float64(totalWeight)
	cumulative := 0.0
	for i := range entries {
		cumulative += float64(entries[i].Weight)
		if r < cumulative {
			return &entries[i]
		}
	}

	return nil
}
