package equipment

// Item is a consumable or stackable inventory record. Heal is applied when
// the item is used in combat; AmmoFor marks ammunition boxes usable with
// load-special-ammo.
type Item struct {
	Key     string `json:"key"`
	Name    string `json:"name"`
	Heal    int    `json:"heal,omitempty"`
	AmmoFor string `json:"ammo_for,omitempty"`
}
