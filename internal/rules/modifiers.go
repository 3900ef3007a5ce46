// Package rules holds the pure modifier math layered onto attack and defense
// rolls: attribute selection by weapon category, special-ammo armor piercing,
// and environmental cover. Everything here is stateless.
package rules

import (
	"github.com/dustward/combat-engine/internal/domain/combat"
	"github.com/dustward/combat-engine/internal/domain/equipment"
	"github.com/dustward/combat-engine/internal/domain/shared"
)

const (
	// PiercingACReduction is how much loaded piercing rounds soften armor
	PiercingACReduction = 3

	// PiercingACFloor is the lowest an armor class can be pushed by piercing rounds
	PiercingACFloor = 10
)

// AttackAttribute selects which attribute modifies attack and damage for the
// wielded weapon: dexterity for ranged and thrown weapons, strength for
// melee and for bare hands
func AttackAttribute(w *equipment.Weapon) shared.Attribute {
	if w == nil {
		return shared.AttributeStrength
	}
	if w.IsRanged() || w.IsThrown() {
		return shared.AttributeDexterity
	}
	return shared.AttributeStrength
}

// EffectiveEnemyAC computes the armor class an attack roll must meet.
// Piercing rounds shave off armor but never push AC below the floor.
func EffectiveEnemyAC(baseAC int, piercingLoaded bool) int {
	if !piercingLoaded {
		return baseAC
	}
	ac := baseAC - PiercingACReduction
	if ac < PiercingACFloor {
		ac = PiercingACFloor
	}
	return ac
}

// DefenderAC computes the player's armor class for an incoming enemy attack,
// accounting for an active cover bonus
func DefenderAC(baseAC int, bonus combat.EnvironmentalBonus) int {
	if bonus.Active && bonus.Kind == combat.BonusCover && bonus.Turns > 0 {
		return baseAC + combat.CoverACBonus
	}
	return baseAC
}
