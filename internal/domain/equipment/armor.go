package equipment

// Armor is worn protection; it contributes to armor class through the
// character sheet and soaks a point of durability on every hit taken
type Armor struct {
	Key        string `json:"key"`
	Name       string `json:"name"`
	ACBonus    int    `json:"ac_bonus"`
	Durability int    `json:"durability"`
}

// IsBroken returns true once durability is exhausted; broken armor
// contributes nothing to armor class
func (a *Armor) IsBroken() bool {
	return a.Durability <= 0
}
