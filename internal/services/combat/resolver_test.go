package combat_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mockdice "github.com/dustward/combat-engine/internal/dice/mock"
	domain "github.com/dustward/combat-engine/internal/domain/combat"
	"github.com/dustward/combat-engine/internal/domain/equipment"
	"github.com/dustward/combat-engine/internal/domain/shared"
	mockinterfaces "github.com/dustward/combat-engine/internal/interfaces/mock"
	"github.com/dustward/combat-engine/internal/repositories/sessions"
	"github.com/dustward/combat-engine/internal/services/bestiary"
	combatsvc "github.com/dustward/combat-engine/internal/services/combat"
	mockcombat "github.com/dustward/combat-engine/internal/services/combat/mock"
	"github.com/dustward/combat-engine/internal/services/loot"
	mockloot "github.com/dustward/combat-engine/internal/services/loot/mock"
	"github.com/dustward/combat-engine/internal/uuid/mocks"
)

type fixture struct {
	ctrl      *gomock.Controller
	repo      sessions.Repository
	character *mockinterfaces.MockCharacterSheet
	inventory *mockinterfaces.MockInventory
	loot      *mockloot.MockService
	roller    *mockdice.ManualMockRoller
	scheduler *mockcombat.ManualScheduler
	svc       combatsvc.Service
}

func newFixture(t *testing.T, enemies ...*domain.EnemyDefinition) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	defs := make(map[string]*domain.EnemyDefinition)
	for _, def := range enemies {
		defs[def.ID] = def
	}

	f := &fixture{
		ctrl:      ctrl,
		repo:      sessions.NewInMemoryRepository(),
		character: mockinterfaces.NewMockCharacterSheet(ctrl),
		inventory: mockinterfaces.NewMockInventory(ctrl),
		loot:      mockloot.NewMockService(ctrl),
		roller:    mockdice.NewManualMockRoller(),
		scheduler: mockcombat.NewManualScheduler(),
	}

	uuidGen := mocks.NewMockGenerator(ctrl)
	uuidGen.EXPECT().New().Return("sess-1").AnyTimes()

	f.svc = combatsvc.NewService(&combatsvc.ServiceConfig{
		Repository: f.repo,
		Bestiary:   bestiary.NewService(&bestiary.ServiceConfig{Definitions: defs}),
		Loot:       f.loot,
		Character:  f.character,
		Inventory:  f.inventory,
		Roller:     f.roller,
		Scheduler:  f.scheduler,
		UUIDGen:    uuidGen,
		TurnDelay:  50 * time.Millisecond,
	})

	return f
}

func houndEnemy() *domain.EnemyDefinition {
	return &domain.EnemyDefinition{
		ID:         "rust_hound",
		Name:       "Rust Hound",
		Type:       domain.EnemyTypeBeast,
		HP:         20,
		ArmorClass: 12,
		XP:         45,
		Attack:     domain.AttackProfile{Bonus: 3, Damage: 5},
		Tactics: domain.TacticsProfile{
			RevealDC:    12,
			Description: "It favors its scarred left flank.",
			Actions: []domain.TacticalAction{
				{ID: "scarred_flank", Name: "Strike the Scarred Flank", Skill: shared.SkillSurvival, DC: 11},
			},
		},
	}
}

func raiderEnemy() *domain.EnemyDefinition {
	return &domain.EnemyDefinition{
		ID:         "scav_raider",
		Name:       "Scav Raider",
		Type:       domain.EnemyTypeHumanoid,
		HP:         8,
		ArmorClass: 13,
		XP:         70,
		Attack:     domain.AttackProfile{Bonus: 4, Damage: 6},
		Tactics:    domain.TacticsProfile{RevealDC: 13},
	}
}

func meleeWeapon() *equipment.Weapon {
	return &equipment.Weapon{Key: "pipe_wrench", Name: "Pipe Wrench", Category: equipment.WeaponCategoryMelee, Damage: 6, Durability: 20}
}

func rangedWeapon() *equipment.Weapon {
	return &equipment.Weapon{Key: "scrap_pistol", Name: "Scrap Pistol", Category: equipment.WeaponCategoryRanged, Damage: 5, Durability: 20}
}

func passedCheck(skill shared.Skill, roll, bonus, dc int) *shared.SkillCheckResult {
	return &shared.SkillCheckResult{Skill: skill, Roll: roll, Bonus: bonus, Total: roll + bonus, DC: dc, Success: roll+bonus >= dc}
}

func failedCheck(skill shared.Skill, roll, bonus, dc int) *shared.SkillCheckResult {
	return &shared.SkillCheckResult{Skill: skill, Roll: roll, Bonus: bonus, Total: roll + bonus, DC: dc, Success: false}
}

// start seeds a running session the way StartCombat would, bypassing the
// catalog so tests control the enemy stat block exactly
func (f *fixture) start(t *testing.T, def *domain.EnemyDefinition, biome domain.Biome) *domain.Session {
	t.Helper()
	session := domain.NewSession("sess-1", def, biome)
	require.NoError(t, f.repo.Create(context.Background(), session))
	return session
}

func lastLog(session *domain.Session) domain.LogEntry {
	if len(session.Log) == 0 {
		return domain.LogEntry{}
	}
	return session.Log[len(session.Log)-1]
}

func TestAttackHitDamageMath(t *testing.T) {
	f := newFixture(t)
	f.start(t, houndEnemy(), domain.BiomeUrban)

	f.character.EXPECT().EquippedWeapon().Return(meleeWeapon())
	f.character.EXPECT().AttributeModifier(shared.AttributeStrength).Return(2)
	f.character.EXPECT().DamageEquippedItem(shared.SlotMainHand, 1)

	// d20 max roll, then max variance die: damage 6 + 2 + (4 - 2) = 10
	f.roller.SetRolls([]int{20, 4})

	session, err := f.svc.PlayerAction(context.Background(), "sess-1", combatsvc.AttackAction{})
	require.NoError(t, err)

	assert.Equal(t, 10, session.EnemyHP.Max-session.EnemyHP.Current)
	assert.Equal(t, domain.StatusEnemyTurnPending, session.Status)
	assert.False(t, session.PlayerTurn)
	assert.Equal(t, 1, f.scheduler.PendingCount())
	assert.Contains(t, lastLog(session).Text, "10 damage")
}

func TestAttackMinimumVarianceCannotGoNegative(t *testing.T) {
	f := newFixture(t)
	f.start(t, houndEnemy(), domain.BiomeUrban)

	weapon := meleeWeapon()
	weapon.Damage = 1
	f.character.EXPECT().EquippedWeapon().Return(weapon)
	f.character.EXPECT().AttributeModifier(shared.AttributeStrength).Return(0)
	f.character.EXPECT().DamageEquippedItem(shared.SlotMainHand, 1)

	// variance roll of 1 gives 1 + 0 + (1 - 2) = 0 damage, clamped
	f.roller.SetRolls([]int{15, 1})

	session, err := f.svc.PlayerAction(context.Background(), "sess-1", combatsvc.AttackAction{})
	require.NoError(t, err)

	assert.Equal(t, 20, session.EnemyHP.Current)
	assert.Equal(t, domain.StatusEnemyTurnPending, session.Status)
}

func TestAttackMissStillEndsTurn(t *testing.T) {
	f := newFixture(t)
	f.start(t, houndEnemy(), domain.BiomeUrban)

	f.character.EXPECT().EquippedWeapon().Return(meleeWeapon())
	f.character.EXPECT().AttributeModifier(shared.AttributeStrength).Return(2)
	f.character.EXPECT().DamageEquippedItem(shared.SlotMainHand, 1)

	// 5 + 2 = 7 vs AC 12
	f.roller.SetRolls([]int{5})

	session, err := f.svc.PlayerAction(context.Background(), "sess-1", combatsvc.AttackAction{})
	require.NoError(t, err)

	assert.Equal(t, 20, session.EnemyHP.Current)
	assert.Equal(t, domain.StatusEnemyTurnPending, session.Status)
	assert.Equal(t, 1, f.scheduler.PendingCount())
	assert.Contains(t, lastLog(session).Text, "glances off")
}

func TestAttackWithBrokenWeaponDoesNotEndTurn(t *testing.T) {
	f := newFixture(t)
	f.start(t, houndEnemy(), domain.BiomeUrban)

	weapon := meleeWeapon()
	weapon.Durability = 0
	f.character.EXPECT().EquippedWeapon().Return(weapon)

	session, err := f.svc.PlayerAction(context.Background(), "sess-1", combatsvc.AttackAction{})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusPlayerTurn, session.Status)
	assert.True(t, session.PlayerTurn)
	assert.Equal(t, 0, f.scheduler.PendingCount())
}

func TestLethalHitAwardsXPAndLoot(t *testing.T) {
	f := newFixture(t)
	f.start(t, raiderEnemy(), domain.BiomeUrban) // 8 HP

	f.character.EXPECT().EquippedWeapon().Return(meleeWeapon())
	f.character.EXPECT().AttributeModifier(shared.AttributeStrength).Return(2)
	f.character.EXPECT().DamageEquippedItem(shared.SlotMainHand, 1)
	f.roller.SetRolls([]int{20, 4}) // 10 damage, lethal

	f.character.EXPECT().AddXP(70)
	f.character.EXPECT().UnlockedTalents().Return(nil)
	f.loot.EXPECT().Generate(gomock.Any(), &loot.GenerateInput{
		EnemyXP:    70,
		EnemyType:  domain.EnemyTypeHumanoid,
		DoubleRoll: false,
	}).Return([]loot.Grant{{ItemKey: "scrap_metal", Quantity: 2}}, nil)
	f.inventory.EXPECT().AddItem("scrap_metal", 2)

	f.character.EXPECT().QuestFlag("first_humanoid_defeated").Return(false)
	f.character.EXPECT().SetQuestFlag("first_humanoid_defeated", true)

	session, err := f.svc.PlayerAction(context.Background(), "sess-1", combatsvc.AttackAction{})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusVictory, session.Status)
	assert.True(t, session.Victory)
	assert.Equal(t, 0, session.EnemyHP.Current)
	// only the delayed narrative beat is queued, no enemy turn
	assert.Equal(t, 1, f.scheduler.PendingCount())
	f.scheduler.FireAll()
}

func TestScavengerTalentDoublesLootRoll(t *testing.T) {
	f := newFixture(t)
	f.start(t, houndEnemy(), domain.BiomeForest)

	weapon := meleeWeapon()
	weapon.Damage = 25
	f.character.EXPECT().EquippedWeapon().Return(weapon)
	f.character.EXPECT().AttributeModifier(shared.AttributeStrength).Return(0)
	f.character.EXPECT().DamageEquippedItem(shared.SlotMainHand, 1)
	f.roller.SetRolls([]int{20, 2})

	f.character.EXPECT().AddXP(45)
	f.character.EXPECT().UnlockedTalents().Return([]string{"scavenger"})
	f.loot.EXPECT().Generate(gomock.Any(), &loot.GenerateInput{
		EnemyXP:    45,
		EnemyType:  domain.EnemyTypeBeast,
		DoubleRoll: true,
	}).Return([]loot.Grant{{ItemKey: "bandage", Quantity: 1}, {ItemKey: "bandage", Quantity: 1}}, nil)
	f.inventory.EXPECT().AddItem("bandage", 1).Times(2)

	session, err := f.svc.PlayerAction(context.Background(), "sess-1", combatsvc.AttackAction{})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusVictory, session.Status)
	assert.Equal(t, 0, f.scheduler.PendingCount())
}

func TestPiercingAmmoLowersEffectiveACAndDepletes(t *testing.T) {
	def := houndEnemy()
	def.HP = 200
	def.ArmorClass = 14
	f := newFixture(t)
	f.start(t, def, domain.BiomeUrban)

	ctx := context.Background()

	// Load three piercing rounds
	f.character.EXPECT().EquippedWeapon().Return(rangedWeapon())
	f.inventory.EXPECT().RemoveItem("ammo_piercing", 3).Return(nil)
	session, err := f.svc.PlayerAction(ctx, "sess-1", combatsvc.LoadSpecialAmmoAction{Ammo: domain.AmmoPiercing})
	require.NoError(t, err)
	assert.Equal(t, domain.AmmoPiercing, session.SpecialAmmo)
	assert.Equal(t, 3, session.SpecialAmmoRounds)

	// Three attack attempts, each against the reduced AC 11
	for i := 0; i < 3; i++ {
		f.character.EXPECT().ArmorClass().Return(18)
		f.character.EXPECT().HitPoints().Return(20)
		f.roller.SetNextRoll(1) // enemy swings wide
		require.True(t, f.scheduler.Fire())

		f.character.EXPECT().EquippedWeapon().Return(rangedWeapon())
		f.character.EXPECT().AttributeModifier(shared.AttributeDexterity).Return(0)
		f.character.EXPECT().DamageEquippedItem(shared.SlotMainHand, 1)
		f.roller.SetNextRoll(11) // hits AC 11, would miss the base 14
		f.roller.SetNextRoll(2)

		session, err = f.svc.PlayerAction(ctx, "sess-1", combatsvc.AttackAction{})
		require.NoError(t, err)
		assert.Contains(t, lastLog(session).Text, "damage", "attempt %d should hit the reduced AC", i+1)
	}

	// Tag and counter must zero out together
	assert.Equal(t, domain.AmmoNone, session.SpecialAmmo)
	assert.Equal(t, 0, session.SpecialAmmoRounds)

	// With ammo spent the same roll misses the base AC 14 again
	f.character.EXPECT().ArmorClass().Return(18)
	f.character.EXPECT().HitPoints().Return(20)
	f.roller.SetNextRoll(1)
	require.True(t, f.scheduler.Fire())

	f.character.EXPECT().EquippedWeapon().Return(rangedWeapon())
	f.character.EXPECT().AttributeModifier(shared.AttributeDexterity).Return(0)
	f.character.EXPECT().DamageEquippedItem(shared.SlotMainHand, 1)
	f.roller.SetNextRoll(11)

	session, err = f.svc.PlayerAction(ctx, "sess-1", combatsvc.AttackAction{})
	require.NoError(t, err)
	assert.Contains(t, lastLog(session).Text, "glances off")
}

func TestHollowPointAddsBonusDamageDie(t *testing.T) {
	def := houndEnemy()
	def.HP = 100
	f := newFixture(t)
	session := f.start(t, def, domain.BiomeUrban)
	session.ArmSpecialAmmo(domain.AmmoHollowPoint, 3)
	require.NoError(t, f.repo.Update(context.Background(), session))

	f.character.EXPECT().EquippedWeapon().Return(rangedWeapon())
	f.character.EXPECT().AttributeModifier(shared.AttributeDexterity).Return(1)
	f.character.EXPECT().DamageEquippedItem(shared.SlotMainHand, 1)

	// 5 + 1 + (3 - 2) + 4 = 11 damage
	f.roller.SetRolls([]int{18, 3, 4})

	session, err := f.svc.PlayerAction(context.Background(), "sess-1", combatsvc.AttackAction{})
	require.NoError(t, err)

	assert.Equal(t, 100-11, session.EnemyHP.Current)
	assert.Equal(t, 2, session.SpecialAmmoRounds)
}

func TestIncendiaryHitIgnitesEnemy(t *testing.T) {
	def := houndEnemy()
	def.HP = 100
	f := newFixture(t)
	session := f.start(t, def, domain.BiomeUrban)
	session.ArmSpecialAmmo(domain.AmmoIncendiary, 3)
	require.NoError(t, f.repo.Update(context.Background(), session))

	f.character.EXPECT().EquippedWeapon().Return(rangedWeapon())
	f.character.EXPECT().AttributeModifier(shared.AttributeDexterity).Return(1)
	f.character.EXPECT().DamageEquippedItem(shared.SlotMainHand, 1)
	f.roller.SetRolls([]int{18, 3})

	session, err := f.svc.PlayerAction(context.Background(), "sess-1", combatsvc.AttackAction{})
	require.NoError(t, err)

	assert.True(t, session.EnemyBurning)
	assert.Equal(t, 3, session.EnemyBurningTurns)
}

func TestLoadAmmoWithoutEnoughRoundsIsNoOp(t *testing.T) {
	f := newFixture(t)
	f.start(t, houndEnemy(), domain.BiomeUrban)

	f.character.EXPECT().EquippedWeapon().Return(rangedWeapon())
	f.inventory.EXPECT().RemoveItem("ammo_incendiary", 3).
		Return(assert.AnError)

	session, err := f.svc.PlayerAction(context.Background(), "sess-1", combatsvc.LoadSpecialAmmoAction{Ammo: domain.AmmoIncendiary})
	require.NoError(t, err)

	assert.Equal(t, domain.AmmoNone, session.SpecialAmmo)
	assert.True(t, session.PlayerTurn)
	assert.Equal(t, 0, f.scheduler.PendingCount())
}

func TestLoadAmmoWithoutRangedWeaponIsNoOp(t *testing.T) {
	f := newFixture(t)
	f.start(t, houndEnemy(), domain.BiomeUrban)

	f.character.EXPECT().EquippedWeapon().Return(meleeWeapon())

	session, err := f.svc.PlayerAction(context.Background(), "sess-1", combatsvc.LoadSpecialAmmoAction{Ammo: domain.AmmoPiercing})
	require.NoError(t, err)

	assert.True(t, session.PlayerTurn)
	assert.Equal(t, 0, f.scheduler.PendingCount())
}

func TestFleeSuccessEndsSessionWithNoContinuation(t *testing.T) {
	f := newFixture(t)
	f.start(t, houndEnemy(), domain.BiomeForest)

	f.character.EXPECT().PerformSkillCheck(shared.SkillStealth, 12).
		Return(passedCheck(shared.SkillStealth, 14, 2, 12), nil)
	f.character.EXPECT().SetQuestFlag("fled_combat", true)

	session, err := f.svc.PlayerAction(context.Background(), "sess-1", combatsvc.FleeAction{})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusFled, session.Status)
	assert.True(t, session.IsTerminal())
	assert.Equal(t, 0, f.scheduler.PendingCount())

	// A terminal session ignores further actions entirely
	session, err = f.svc.PlayerAction(context.Background(), "sess-1", combatsvc.AttackAction{})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusFled, session.Status)
}

func TestFleeFailureCostsTheTurn(t *testing.T) {
	f := newFixture(t)
	f.start(t, houndEnemy(), domain.BiomeForest)

	f.character.EXPECT().PerformSkillCheck(shared.SkillStealth, 12).
		Return(failedCheck(shared.SkillStealth, 4, 2, 12), nil)

	session, err := f.svc.PlayerAction(context.Background(), "sess-1", combatsvc.FleeAction{})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusEnemyTurnPending, session.Status)
	assert.Equal(t, 1, f.scheduler.PendingCount())
}

func TestAnalyzeRevealsTactics(t *testing.T) {
	f := newFixture(t)
	f.start(t, houndEnemy(), domain.BiomeForest)

	f.character.EXPECT().PerformSkillCheck(shared.SkillPerception, 12).
		Return(passedCheck(shared.SkillPerception, 13, 1, 12), nil)
	f.character.EXPECT().SetQuestFlag("tactic_revealed", true)
	f.character.EXPECT().SetQuestFlag("tactic_revealed:rust_hound", true)

	session, err := f.svc.PlayerAction(context.Background(), "sess-1", combatsvc.AnalyzeAction{})
	require.NoError(t, err)

	assert.True(t, session.RevealedTactics)
	require.Len(t, session.AvailableTactics, 1)
	assert.Equal(t, "scarred_flank", session.AvailableTactics[0].ID)
	assert.Equal(t, domain.StatusEnemyTurnPending, session.Status)
}

func TestTacticBeforeRevealIsNoOp(t *testing.T) {
	f := newFixture(t)
	f.start(t, houndEnemy(), domain.BiomeForest)

	session, err := f.svc.PlayerAction(context.Background(), "sess-1", combatsvc.TacticAction{TacticID: "scarred_flank"})
	require.NoError(t, err)

	assert.Equal(t, 20, session.EnemyHP.Current)
	assert.True(t, session.PlayerTurn)
	assert.Equal(t, 0, f.scheduler.PendingCount())
}

func TestTacticSuccessDealsFlatDamage(t *testing.T) {
	def := houndEnemy()
	def.HP = 40
	f := newFixture(t)
	session := f.start(t, def, domain.BiomeForest)
	session.RevealTactics()
	require.NoError(t, f.repo.Update(context.Background(), session))

	f.character.EXPECT().PerformSkillCheck(shared.SkillSurvival, 11).
		Return(passedCheck(shared.SkillSurvival, 12, 2, 11), nil)

	session, err := f.svc.PlayerAction(context.Background(), "sess-1", combatsvc.TacticAction{TacticID: "scarred_flank"})
	require.NoError(t, err)

	assert.Equal(t, 25, session.EnemyHP.Current)
	assert.Equal(t, domain.StatusEnemyTurnPending, session.Status)
}

func TestUseHealingItem(t *testing.T) {
	f := newFixture(t)
	f.start(t, houndEnemy(), domain.BiomeUrban)

	f.inventory.EXPECT().ItemDetails("bandage").
		Return(&equipment.Item{Key: "bandage", Name: "Bandage", Heal: 8}, nil)
	f.inventory.EXPECT().RemoveItem("bandage", 1).Return(nil)
	f.character.EXPECT().Heal(8)

	session, err := f.svc.PlayerAction(context.Background(), "sess-1", combatsvc.UseItemAction{ItemID: "bandage"})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusEnemyTurnPending, session.Status)
	assert.Contains(t, lastLog(session).Text, "recover 8 HP")
}

func TestUseUnknownItemIsNoOp(t *testing.T) {
	f := newFixture(t)
	f.start(t, houndEnemy(), domain.BiomeUrban)

	f.inventory.EXPECT().ItemDetails("flux_capacitor").
		Return(nil, assert.AnError)

	session, err := f.svc.PlayerAction(context.Background(), "sess-1", combatsvc.UseItemAction{ItemID: "flux_capacitor"})
	require.NoError(t, err)

	assert.True(t, session.PlayerTurn)
	assert.Equal(t, 0, f.scheduler.PendingCount())
}

func TestHideInTreesGrantsConcealmentThatAbsorbsOneAttack(t *testing.T) {
	f := newFixture(t)
	f.start(t, houndEnemy(), domain.BiomeForest)

	ctx := context.Background()

	f.character.EXPECT().PerformSkillCheck(shared.SkillStealth, 13).
		Return(passedCheck(shared.SkillStealth, 15, 2, 13), nil)

	session, err := f.svc.PlayerAction(ctx, "sess-1", combatsvc.EnvironmentalAction{ActionID: combatsvc.EnvActionHideInTrees})
	require.NoError(t, err)

	assert.True(t, session.EnvBonus.Active)
	assert.Equal(t, domain.BonusConcealment, session.EnvBonus.Kind)
	assert.Equal(t, 1, session.EnvBonus.Turns)

	// The enemy's turn burns the concealment instead of rolling an attack
	f.character.EXPECT().HitPoints().Return(20)
	require.True(t, f.scheduler.Fire())

	session, err = f.svc.GetSession(ctx, "sess-1")
	require.NoError(t, err)
	assert.False(t, session.EnvBonus.Active)
	assert.Equal(t, domain.StatusPlayerTurn, session.Status)
	assert.True(t, session.PlayerTurn)
	assert.Contains(t, lastLog(session).Text, "stay hidden")
}

func TestSeekCoverOutsideUrbanIsNoOp(t *testing.T) {
	f := newFixture(t)
	f.start(t, houndEnemy(), domain.BiomeForest)

	session, err := f.svc.PlayerAction(context.Background(), "sess-1", combatsvc.EnvironmentalAction{ActionID: combatsvc.EnvActionSeekCover})
	require.NoError(t, err)

	assert.False(t, session.EnvBonus.Active)
	assert.True(t, session.PlayerTurn)
	assert.Equal(t, 0, f.scheduler.PendingCount())
}

func TestSeekCoverRaisesDefenderAC(t *testing.T) {
	f := newFixture(t)
	f.start(t, houndEnemy(), domain.BiomeUrban)

	ctx := context.Background()

	f.character.EXPECT().PerformSkillCheck(shared.SkillPerception, 12).
		Return(passedCheck(shared.SkillPerception, 14, 2, 12), nil)

	session, err := f.svc.PlayerAction(ctx, "sess-1", combatsvc.EnvironmentalAction{ActionID: combatsvc.EnvActionSeekCover})
	require.NoError(t, err)
	assert.Equal(t, domain.BonusCover, session.EnvBonus.Kind)
	assert.Equal(t, 2, session.EnvBonus.Turns)

	// Base AC 12 + 4 cover = 16; enemy rolls 12 + 3 = 15 and misses
	f.character.EXPECT().ArmorClass().Return(12)
	f.character.EXPECT().HitPoints().Return(20)
	f.roller.SetNextRoll(12)
	require.True(t, f.scheduler.Fire())

	session, err = f.svc.GetSession(ctx, "sess-1")
	require.NoError(t, err)
	assert.Contains(t, lastLog(session).Text, "cover")
	assert.Equal(t, 1, session.EnvBonus.Turns)
}

func TestActionOutOfTurnIsIgnored(t *testing.T) {
	f := newFixture(t)
	f.start(t, houndEnemy(), domain.BiomeUrban)

	f.character.EXPECT().EquippedWeapon().Return(meleeWeapon())
	f.character.EXPECT().AttributeModifier(shared.AttributeStrength).Return(0)
	f.character.EXPECT().DamageEquippedItem(shared.SlotMainHand, 1)
	f.roller.SetRolls([]int{2})

	ctx := context.Background()
	session, err := f.svc.PlayerAction(ctx, "sess-1", combatsvc.AttackAction{})
	require.NoError(t, err)
	require.Equal(t, domain.StatusEnemyTurnPending, session.Status)
	logLen := len(session.Log)

	// Enemy turn pending: a second action must not resolve anything
	session, err = f.svc.PlayerAction(ctx, "sess-1", combatsvc.AttackAction{})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusEnemyTurnPending, session.Status)
	assert.Len(t, session.Log, logLen)
	assert.Equal(t, 1, f.scheduler.PendingCount())
}

func TestNilActionIsRejected(t *testing.T) {
	f := newFixture(t)
	f.start(t, houndEnemy(), domain.BiomeUrban)

	_, err := f.svc.PlayerAction(context.Background(), "sess-1", nil)
	assert.Error(t, err)
}

func TestActionOnUnknownSessionFails(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.PlayerAction(context.Background(), "missing", combatsvc.AttackAction{})
	assert.Error(t, err)
}
