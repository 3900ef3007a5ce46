package combat

import (
	domain "github.com/dustward/combat-engine/internal/domain/combat"
)

// Action is the closed set of player combat actions. Each variant carries
// exactly the fields its resolution needs, so dispatch is exhaustive at
// compile time instead of switching on strings.
type Action interface {
	isAction()
}

// AttackAction swings or fires the equipped weapon
type AttackAction struct{}

// AnalyzeAction studies the enemy for a tactical opening
type AnalyzeAction struct{}

// FleeAction attempts to break off the fight
type FleeAction struct{}

// TacticAction executes a revealed tactical opening
type TacticAction struct {
	TacticID string
}

// UseItemAction consumes an inventory item
type UseItemAction struct {
	ItemID string
}

// EnvironmentalAction uses the surroundings; the valid id depends on the
// session's biome
type EnvironmentalAction struct {
	ActionID string
}

// LoadSpecialAmmoAction loads three rounds of special ammunition
type LoadSpecialAmmoAction struct {
	Ammo domain.AmmoType
}

func (AttackAction) isAction()          {}
func (AnalyzeAction) isAction()         {}
func (FleeAction) isAction()            {}
func (TacticAction) isAction()          {}
func (UseItemAction) isAction()         {}
func (EnvironmentalAction) isAction()   {}
func (LoadSpecialAmmoAction) isAction() {}

// Environmental action ids offered per biome
const (
	EnvActionHideInTrees = "hide_in_trees"
	EnvActionSeekCover   = "seek_cover"
)
