package player

import (
	"sort"
	"sync"

	"github.com/dustward/combat-engine/internal/domain/equipment"
	cbterr "github.com/dustward/combat-engine/internal/errors"
)

// Inventory is a thread-safe stack-based item store backed by a static item
// catalog
type Inventory struct {
	mu      sync.Mutex
	catalog map[string]*equipment.Item
	counts  map[string]int
}

// InventoryConfig holds configuration for a new inventory
type InventoryConfig struct {
	Catalog map[string]*equipment.Item // nil uses the builtin catalog
	Initial map[string]int             // starting stacks
}

// NewInventory creates an inventory
func NewInventory(cfg *InventoryConfig) *Inventory {
	inv := &Inventory{
		catalog: builtinItemCatalog(),
		counts:  make(map[string]int),
	}

	if cfg != nil && cfg.Catalog != nil {
		inv.catalog = cfg.Catalog
	}
	if cfg != nil {
		for key, qty := range cfg.Initial {
			if qty > 0 {
				inv.counts[key] = qty
			}
		}
	}

	return inv
}

// ItemDetails looks up a static item record by key
func (i *Inventory) ItemDetails(itemKey string) (*equipment.Item, error) {
	i.mu.Lock()
	defer i.mu.Unlock()

	item, ok := i.catalog[itemKey]
	if !ok {
		return nil, cbterr.NotFoundf("unknown item: %s", itemKey)
	}

	clone := *item
	return &clone, nil
}

// RemoveItem removes qty units; errors when not enough are held
func (i *Inventory) RemoveItem(itemKey string, qty int) error {
	if qty <= 0 {
		return cbterr.InvalidArgument("quantity must be positive")
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	if i.counts[itemKey] < qty {
		return cbterr.FailedPreconditionf("not enough %s: have %d, need %d", itemKey, i.counts[itemKey], qty)
	}

	i.counts[itemKey] -= qty
	if i.counts[itemKey] == 0 {
		delete(i.counts, itemKey)
	}
	return nil
}

// AddItem grants qty units; unknown keys are stored as-is so loot tables can
// grant ahead of the catalog
func (i *Inventory) AddItem(itemKey string, qty int) {
	if qty <= 0 {
		return
	}
	i.mu.Lock()
	defer i.mu.Unlock()
	i.counts[itemKey] += qty
}

// HasItem reports whether at least minQty units are held
func (i *Inventory) HasItem(itemKey string, minQty int) bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.counts[itemKey] >= minQty
}

// Count returns the held quantity for a key
func (i *Inventory) Count(itemKey string) int {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.counts[itemKey]
}

// Stacks returns held item keys and quantities, sorted by key
func (i *Inventory) Stacks() []Stack {
	i.mu.Lock()
	defer i.mu.Unlock()

	stacks := make([]Stack, 0, len(i.counts))
	for key, qty := range i.counts {
		stacks = append(stacks, Stack{ItemKey: key, Quantity: qty})
	}
	sort.Slice(stacks, func(a, b int) bool { return stacks[a].ItemKey < stacks[b].ItemKey })
	return stacks
}

// Stack is one held pile of a single item
type Stack struct {
	ItemKey  string
	Quantity int
}

// builtinItemCatalog covers every key the loot tables can grant
func builtinItemCatalog() map[string]*equipment.Item {
	items := []*equipment.Item{
		{Key: "scrap_metal", Name: "Scrap Metal"},
		{Key: "bandage", Name: "Bandage", Heal: 8},
		{Key: "pistol_rounds", Name: "Pistol Rounds"},
		{Key: "canned_rations", Name: "Canned Rations", Heal: 4},
		{Key: "medkit", Name: "Medkit", Heal: 15},
		{Key: "fuel_cell", Name: "Fuel Cell"},
		{Key: "stim_autoinjector", Name: "Stim Autoinjector", Heal: 25},
		{Key: "weapon_mod_kit", Name: "Weapon Mod Kit"},
		{Key: "scrip", Name: "Scrip"},
		{Key: "ammo_piercing", Name: "Piercing Rounds", AmmoFor: "piercing"},
		{Key: "ammo_hollow_point", Name: "Hollow Point Rounds", AmmoFor: "hollow_point"},
		{Key: "ammo_incendiary", Name: "Incendiary Rounds", AmmoFor: "incendiary"},
	}

	catalog := make(map[string]*equipment.Item, len(items))
	for _, item := range items {
		catalog[item.Key] = item
	}
	return catalog
}
