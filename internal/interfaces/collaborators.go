// Package interfaces declares the capability contracts the combat engine
// consumes. The engine never reaches into collaborator state directly; it
// reads through accessors and mutates only via these methods.
package interfaces

//go:generate mockgen -destination=mock/mock_collaborators.go -package=mockinterfaces -source=collaborators.go

import (
	"github.com/dustward/combat-engine/internal/domain/combat"
	"github.com/dustward/combat-engine/internal/domain/equipment"
	"github.com/dustward/combat-engine/internal/domain/shared"
)

// CharacterSheet exposes the player's progression state to the engine
type CharacterSheet interface {
	// AttributeModifier returns the modifier for the given attribute
	AttributeModifier(attr shared.Attribute) int

	// ArmorClass returns the player's current armor class
	ArmorClass() int

	// HitPoints returns the player's current hit points
	HitPoints() int

	// PerformSkillCheck rolls d20 + skill bonus against the DC
	PerformSkillCheck(skill shared.Skill, dc int) (*shared.SkillCheckResult, error)

	// TakeDamage applies damage to the player; the sheet owns death handling
	TakeDamage(amount int, source string)

	// Heal restores player hit points
	Heal(amount int)

	// DamageEquippedItem degrades the durability of equipped gear
	DamageEquippedItem(slot shared.Slot, amount int)

	// AddXP awards experience
	AddXP(amount int)

	// SetQuestFlag records a narrative flag; fire-and-forget
	SetQuestFlag(name string, value bool)

	// QuestFlag reads a previously recorded narrative flag
	QuestFlag(name string) bool

	// UnlockedTalents lists the player's unlocked talent keys
	UnlockedTalents() []string

	// EquippedWeapon returns the wielded weapon, or nil when unarmed
	EquippedWeapon() *equipment.Weapon
}

// Inventory exposes the player's item storage to the engine
type Inventory interface {
	// ItemDetails looks up a static item record by key
	ItemDetails(itemKey string) (*equipment.Item, error)

	// RemoveItem removes qty units; errors when not enough are held
	RemoveItem(itemKey string, qty int) error

	// AddItem grants qty units
	AddItem(itemKey string, qty int)

	// HasItem reports whether at least minQty units are held
	HasItem(itemKey string, minQty int) bool
}

// Notifier receives the same log entries the session accumulates, for
// on-screen display
type Notifier interface {
	Notify(entry combat.LogEntry)
}

// Cue is a symbolic audio event name
type Cue string

const (
	CueCombatStart Cue = "combat_start"
	CueHitEnemy    Cue = "hit_enemy"
	CueHitPlayer   Cue = "hit_player"
	CueVictory     Cue = "victory"
	CueConfirm     Cue = "confirm"
	CueError       Cue = "error"
)

// AudioCues triggers advisory sound cues; failures must never affect
// combat resolution
type AudioCues interface {
	Play(cue Cue)
}
