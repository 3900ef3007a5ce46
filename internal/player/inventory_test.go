package player_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cbterr "github.com/dustward/combat-engine/internal/errors"
	"github.com/dustward/combat-engine/internal/player"
)

func TestInventoryAddRemove(t *testing.T) {
	inv := player.NewInventory(&player.InventoryConfig{
		Initial: map[string]int{"bandage": 2},
	})

	assert.True(t, inv.HasItem("bandage", 2))
	assert.False(t, inv.HasItem("bandage", 3))

	inv.AddItem("bandage", 1)
	require.NoError(t, inv.RemoveItem("bandage", 3))
	assert.Equal(t, 0, inv.Count("bandage"))

	err := inv.RemoveItem("bandage", 1)
	assert.True(t, cbterr.IsFailedPrecondition(err))
}

func TestInventoryItemDetailsFromBuiltinCatalog(t *testing.T) {
	inv := player.NewInventory(nil)

	item, err := inv.ItemDetails("medkit")
	require.NoError(t, err)
	assert.Equal(t, 15, item.Heal)

	ammo, err := inv.ItemDetails("ammo_piercing")
	require.NoError(t, err)
	assert.Equal(t, "piercing", ammo.AmmoFor)

	_, err = inv.ItemDetails("excalibur")
	assert.True(t, cbterr.IsNotFound(err))
}

func TestInventoryStacksSorted(t *testing.T) {
	inv := player.NewInventory(&player.InventoryConfig{
		Initial: map[string]int{"scrap_metal": 4, "bandage": 1},
	})

	stacks := inv.Stacks()
	require.Len(t, stacks, 2)
	assert.Equal(t, "bandage", stacks[0].ItemKey)
	assert.Equal(t, "scrap_metal", stacks[1].ItemKey)
}

func TestInventoryAcceptsLootOutsideCatalog(t *testing.T) {
	inv := player.NewInventory(nil)

	inv.AddItem("mystery_trinket", 1)
	assert.True(t, inv.HasItem("mystery_trinket", 1))
}
