// Package player provides the default character sheet and inventory backing
// a duel. The combat engine only sees these through the capability
// interfaces, so alternative progression systems can swap in without
// touching resolution code.
package player

import (
	"sync"

	"github.com/dustward/combat-engine/internal/dice"
	"github.com/dustward/combat-engine/internal/domain/equipment"
	"github.com/dustward/combat-engine/internal/domain/shared"
)

// Character is a thread-safe character sheet with attribute scores, equipped
// gear with durability, talents, and narrative quest flags.
type Character struct {
	mu sync.Mutex

	name       string
	attributes map[shared.Attribute]int
	skillAttrs map[shared.Skill]shared.Attribute
	maxHP      int
	currentHP  int
	xp         int
	weapon     *equipment.Weapon
	armor      *equipment.Armor
	talents    []string
	questFlags map[string]bool
	roller     dice.Roller
}

// CharacterConfig holds configuration for a new character
type CharacterConfig struct {
	Name       string
	MaxHP      int
	Attributes map[shared.Attribute]int // raw scores, modifier is (score-10)/2
	Weapon     *equipment.Weapon
	Armor      *equipment.Armor
	Talents    []string
	Roller     dice.Roller // optional, defaults to random
}

// skill to governing attribute
var defaultSkillAttrs = map[shared.Skill]shared.Attribute{
	shared.SkillPerception: shared.AttributeWisdom,
	shared.SkillStealth:    shared.AttributeDexterity,
	shared.SkillSurvival:   shared.AttributeWisdom,
}

// NewCharacter creates a character sheet
func NewCharacter(cfg *CharacterConfig) *Character {
	if cfg == nil {
		panic("character config is required")
	}
	if cfg.MaxHP <= 0 {
		panic("character max HP must be positive")
	}

	attrs := make(map[shared.Attribute]int)
	for _, attr := range shared.Attributes {
		attrs[attr] = 10
	}
	for attr, score := range cfg.Attributes {
		attrs[attr] = score
	}

	c := &Character{
		name:       cfg.Name,
		attributes: attrs,
		skillAttrs: defaultSkillAttrs,
		maxHP:      cfg.MaxHP,
		currentHP:  cfg.MaxHP,
		weapon:     cfg.Weapon,
		armor:      cfg.Armor,
		talents:    append([]string(nil), cfg.Talents...),
		questFlags: make(map[string]bool),
		roller:     cfg.Roller,
	}

	if c.roller == nil {
		c.roller = dice.NewRandomRoller()
	}

	return c
}

// Name returns the character's name
func (c *Character) Name() string {
	return c.name
}

// AttributeModifier returns the modifier for the given attribute
func (c *Character) AttributeModifier(attr shared.Attribute) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return modifier(c.attributes[attr])
}

func modifier(score int) int {
	// floor division so a score of 9 gives -1, not 0
	if score < 10 && (score-10)%2 != 0 {
		return (score-10)/2 - 1
	}
	return (score - 10) / 2
}

// ArmorClass returns 10 plus the dexterity modifier plus equipped armor,
// broken armor contributing nothing
func (c *Character) ArmorClass() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	ac := 10 + modifier(c.attributes[shared.AttributeDexterity])
	if c.armor != nil && !c.armor.IsBroken() {
		ac += c.armor.ACBonus
	}
	return ac
}

// HitPoints returns current hit points
func (c *Character) HitPoints() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.currentHP
}

// MaxHitPoints returns the hit point ceiling
func (c *Character) MaxHitPoints() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.maxHP
}

// PerformSkillCheck rolls d20 + the governing attribute modifier against
// the DC
func (c *Character) PerformSkillCheck(skill shared.Skill, dc int) (*shared.SkillCheckResult, error) {
	c.mu.Lock()
	bonus := modifier(c.attributes[c.skillAttrs[skill]])
	roller := c.roller
	c.mu.Unlock()

	result, err := roller.Roll(1, 20, 0)
	if err != nil {
		return nil, err
	}

	total := result.Total + bonus
	return &shared.SkillCheckResult{
		Skill:   skill,
		Roll:    result.Total,
		Bonus:   bonus,
		Total:   total,
		DC:      dc,
		Success: total >= dc,
	}, nil
}

// TakeDamage applies damage, clamping at zero
func (c *Character) TakeDamage(amount int, _ string) {
	if amount < 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	c.currentHP -= amount
	if c.currentHP < 0 {
		c.currentHP = 0
	}
}

// Heal restores hit points, clamping at max
func (c *Character) Heal(amount int) {
	if amount < 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	c.currentHP += amount
	if c.currentHP > c.maxHP {
		c.currentHP = c.maxHP
	}
}

// IsDown reports whether the character is out of hit points
func (c *Character) IsDown() bool {
	return c.HitPoints() <= 0
}

// DamageEquippedItem degrades durability of gear in the given slot
func (c *Character) DamageEquippedItem(slot shared.Slot, amount int) {
	if amount <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	switch slot {
	case shared.SlotMainHand:
		if c.weapon != nil {
			c.weapon.Durability -= amount
			if c.weapon.Durability < 0 {
				c.weapon.Durability = 0
			}
		}
	case shared.SlotBody:
		if c.armor != nil {
			c.armor.Durability -= amount
			if c.armor.Durability < 0 {
				c.armor.Durability = 0
			}
		}
	}
}

// AddXP awards experience
func (c *Character) AddXP(amount int) {
	if amount <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.xp += amount
}

// XP returns accumulated experience
func (c *Character) XP() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.xp
}

// SetQuestFlag records a narrative flag
func (c *Character) SetQuestFlag(name string, value bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.questFlags[name] = value
}

// QuestFlag reads a narrative flag; unset flags are false
func (c *Character) QuestFlag(name string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.questFlags[name]
}

// UnlockTalent adds a talent key if not already present
func (c *Character) UnlockTalent(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, t := range c.talents {
		if t == key {
			return
		}
	}
	c.talents = append(c.talents, key)
}

// UnlockedTalents lists unlocked talent keys
func (c *Character) UnlockedTalents() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.talents...)
}

// EquippedWeapon returns the wielded weapon, or nil when unarmed
func (c *Character) EquippedWeapon() *equipment.Weapon {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.weapon
}

// EquippedArmor returns the worn armor, or nil
func (c *Character) EquippedArmor() *equipment.Armor {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.armor
}

// EquipWeapon replaces the wielded weapon
func (c *Character) EquipWeapon(w *equipment.Weapon) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.weapon = w
}

// EquipArmor replaces the worn armor
func (c *Character) EquipArmor(a *equipment.Armor) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.armor = a
}
