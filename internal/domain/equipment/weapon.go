package equipment

// WeaponCategory drives which attribute modifies attack and damage rolls
type WeaponCategory string

const (
	WeaponCategoryMelee  WeaponCategory = "melee"
	WeaponCategoryRanged WeaponCategory = "ranged"
	WeaponCategoryThrown WeaponCategory = "thrown"
)

// Weapon is a wielded weapon with a flat base damage and a durability pool
// that degrades by one point per swing
type Weapon struct {
	Key        string         `json:"key"`
	Name       string         `json:"name"`
	Category   WeaponCategory `json:"category"`
	Damage     int            `json:"damage"`
	Durability int            `json:"durability"`
}

// IsRanged returns true for weapons that attack at range
func (w *Weapon) IsRanged() bool {
	return w.Category == WeaponCategoryRanged
}

// IsThrown returns true for thrown weapons
func (w *Weapon) IsThrown() bool {
	return w.Category == WeaponCategoryThrown
}

// IsBroken returns true once durability is exhausted; a broken weapon
// cannot attack
func (w *Weapon) IsBroken() bool {
	return w.Durability <= 0
}
