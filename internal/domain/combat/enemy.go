package combat

import "github.com/dustward/combat-engine/internal/domain/shared"

// EnemyType drives loot eligibility; humanoid enemies carry extra loot
type EnemyType string

const (
	EnemyTypeHumanoid EnemyType = "humanoid"
	EnemyTypeBeast    EnemyType = "beast"
	EnemyTypeMutant   EnemyType = "mutant"
)

// AttackProfile is the enemy's flat attack math
type AttackProfile struct {
	Bonus  int `json:"bonus"`
	Damage int `json:"damage"`
}

// TacticalAction is an enemy-specific special move, unlocked only after the
// enemy's tactics have been revealed by a successful analyze check
type TacticalAction struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Skill       shared.Skill `json:"skill"`
	DC          int          `json:"dc"`
	Description string       `json:"description"`
}

// TacticsProfile describes how hard an enemy is to read and what exploiting
// that knowledge unlocks
type TacticsProfile struct {
	RevealDC    int              `json:"reveal_dc"`
	Description string           `json:"description"`
	Actions     []TacticalAction `json:"actions"`
}

// TriggerKind tags an ability trigger predicate. New kinds can be added
// without touching the enemy turn pipeline.
type TriggerKind string

const (
	// TriggerOnTurn fires when the enemy turn counter reaches Turn
	TriggerOnTurn TriggerKind = "on_turn"
)

// AbilityTrigger is the condition gating an elite ability
type AbilityTrigger struct {
	Kind TriggerKind `json:"kind"`
	Turn int         `json:"turn,omitempty"`
}

// Matches reports whether the trigger condition holds for the given enemy
// turn count
func (t AbilityTrigger) Matches(turnCount int) bool {
	switch t.Kind {
	case TriggerOnTurn:
		return turnCount == t.Turn
	default:
		return false
	}
}

// EffectKind tags what an elite ability does when it fires
type EffectKind string

const (
	// EffectHeal restores enemy hit points (reinforcement, regeneration)
	EffectHeal EffectKind = "heal"
)

// SpecialAbility is an elite enemy's conditional, once-per-encounter effect
type SpecialAbility struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Trigger     AbilityTrigger `json:"trigger"`
	Probability float64        `json:"probability"`
	Effect      EffectKind     `json:"effect"`
	Amount      int            `json:"amount"`
}

// EnemyDefinition is an immutable combat stat block owned by the bestiary.
// Sessions work on a Clone so in-fight effects never touch the catalog entry.
type EnemyDefinition struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Type           EnemyType       `json:"type"`
	HP             int             `json:"hp"`
	ArmorClass     int             `json:"armor_class"`
	XP             int             `json:"xp"`
	Attack         AttackProfile   `json:"attack"`
	Tactics        TacticsProfile  `json:"tactics"`
	IsElite        bool            `json:"is_elite"`
	SpecialAbility *SpecialAbility `json:"special_ability,omitempty"`
}

// Clone returns a deep copy safe to mutate for the lifetime of one encounter
func (e *EnemyDefinition) Clone() *EnemyDefinition {
	clone := *e

	if len(e.Tactics.Actions) > 0 {
		clone.Tactics.Actions = make([]TacticalAction, len(e.Tactics.Actions))
		copy(clone.Tactics.Actions, e.Tactics.Actions)
	}

	if e.SpecialAbility != nil {
		ability := *e.SpecialAbility
		clone.SpecialAbility = &ability
	}

	return &clone
}
