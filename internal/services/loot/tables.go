package loot

import "github.com/dustward/combat-engine/internal/domain/combat"

// Static tier tables. Humanoid enemies carry gear, so their tables get the
// extra entries appended.

var commonTable = []TableEntry{
	{ItemKey: "scrap_metal", Weight: 8, MinQty: 1, MaxQty: 3},
	{ItemKey: "bandage", Weight: 5, MinQty: 1, MaxQty: 2},
	{ItemKey: "pistol_rounds", Weight: 4, MinQty: 3, MaxQty: 6},
	{ItemKey: "canned_rations", Weight: 3, MinQty: 1, MaxQty: 1},
}

var uncommonTable = []TableEntry{
	{ItemKey: "medkit", Weight: 5, MinQty: 1, MaxQty: 1},
	{ItemKey: "ammo_piercing", Weight: 4, MinQty: 3, MaxQty: 3},
	{ItemKey: "fuel_cell", Weight: 4, MinQty: 1, MaxQty: 2},
	{ItemKey: "ammo_hollow_point", Weight: 3, MinQty: 3, MaxQty: 3},
}

var rareTable = []TableEntry{
	{ItemKey: "stim_autoinjector", Weight: 5, MinQty: 1, MaxQty: 1},
	{ItemKey: "ammo_incendiary", Weight: 4, MinQty: 3, MaxQty: 3},
	{ItemKey: "weapon_mod_kit", Weight: 3, MinQty: 1, MaxQty: 1},
}

var humanoidExtras = map[Tier][]TableEntry{
	TierCommon: {
		{ItemKey: "scrip", Weight: 4, MinQty: 2, MaxQty: 5},
	},
	TierUncommon: {
		{ItemKey: "scrip", Weight: 4, MinQty: 4, MaxQty: 9},
		{ItemKey: "worn_holotag", Weight: 2, MinQty: 1, MaxQty: 1},
	},
	TierRare: {
		{ItemKey: "scrip", Weight: 4, MinQty: 8, MaxQty: 15},
		{ItemKey: "composite_plate", Weight: 2, MinQty: 1, MaxQty: 1},
	},
}

// tableFor builds the effective table for a tier, appending humanoid-only
// entries when applicable. Always returns a fresh slice; callers never see
// the shared backing arrays.
func tableFor(tier Tier, enemyType combat.EnemyType) []TableEntry {
	var base []TableEntry
	switch tier {
	case TierUncommon:
		base = uncommonTable
	case TierRare:
		base = rareTable
	default:
		base = commonTable
	}

	table := make([]TableEntry, 0, len(base)+3)
	table = append(table, base...)
	if enemyType == combat.EnemyTypeHumanoid {
		table = append(table, humanoidExtras[tier]...)
	}
	return table
}
