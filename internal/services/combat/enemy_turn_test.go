package combat

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mockdice "github.com/dustward/combat-engine/internal/dice/mock"
	domain "github.com/dustward/combat-engine/internal/domain/combat"
	"github.com/dustward/combat-engine/internal/domain/shared"
	mockinterfaces "github.com/dustward/combat-engine/internal/interfaces/mock"
	"github.com/dustward/combat-engine/internal/repositories/sessions"
	"github.com/dustward/combat-engine/internal/services/bestiary"
	"github.com/dustward/combat-engine/internal/services/loot"
	mockloot "github.com/dustward/combat-engine/internal/services/loot/mock"
)

// stubScheduler queues continuations so tests control when deferred work runs
type stubScheduler struct {
	pending []func()
}

func (s *stubScheduler) Schedule(_ time.Duration, fn func()) {
	s.pending = append(s.pending, fn)
}

type enemyTurnFixture struct {
	repo      sessions.Repository
	character *mockinterfaces.MockCharacterSheet
	inventory *mockinterfaces.MockInventory
	loot      *mockloot.MockService
	roller    *mockdice.ManualMockRoller
	scheduler *stubScheduler
	svc       *service
}

func newEnemyTurnFixture(t *testing.T) *enemyTurnFixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := &enemyTurnFixture{
		repo:      sessions.NewInMemoryRepository(),
		character: mockinterfaces.NewMockCharacterSheet(ctrl),
		inventory: mockinterfaces.NewMockInventory(ctrl),
		loot:      mockloot.NewMockService(ctrl),
		roller:    mockdice.NewManualMockRoller(),
		scheduler: &stubScheduler{},
	}

	f.svc = NewService(&ServiceConfig{
		Repository: f.repo,
		Bestiary:   bestiary.NewService(nil),
		Loot:       f.loot,
		Character:  f.character,
		Inventory:  f.inventory,
		Roller:     f.roller,
		Scheduler:  f.scheduler,
	}).(*service)

	return f
}

func (f *enemyTurnFixture) seedPendingSession(t *testing.T, def *domain.EnemyDefinition, mutate func(*domain.Session)) *domain.Session {
	t.Helper()

	session := domain.NewSession("sess-1", def, domain.BiomeUrban)
	session.PlayerTurn = false
	session.Status = domain.StatusEnemyTurnPending
	if mutate != nil {
		mutate(session)
	}
	require.NoError(t, f.repo.Create(context.Background(), session))
	return session
}

func (f *enemyTurnFixture) reload(t *testing.T) *domain.Session {
	t.Helper()
	session, err := f.repo.Get(context.Background(), "sess-1")
	require.NoError(t, err)
	return session
}

func beastDef() *domain.EnemyDefinition {
	return &domain.EnemyDefinition{
		ID:         "mire_stalker",
		Name:       "Mire Stalker",
		Type:       domain.EnemyTypeBeast,
		HP:         32,
		ArmorClass: 14,
		XP:         95,
		Attack:     domain.AttackProfile{Bonus: 3, Damage: 5},
	}
}

func eliteDef() *domain.EnemyDefinition {
	return &domain.EnemyDefinition{
		ID:         "raider_warlord",
		Name:       "Raider Warlord",
		Type:       domain.EnemyTypeHumanoid,
		HP:         45,
		ArmorClass: 15,
		XP:         130,
		Attack:     domain.AttackProfile{Bonus: 5, Damage: 8},
		IsElite:    true,
		SpecialAbility: &domain.SpecialAbility{
			ID:          "stim_surge",
			Name:        "Stim Surge",
			Trigger:     domain.AbilityTrigger{Kind: domain.TriggerOnTurn, Turn: 2},
			Probability: 0.75,
			Effect:      domain.EffectHeal,
			Amount:      12,
		},
	}
}

func TestEnemyAttackHitDamagesPlayerAndArmor(t *testing.T) {
	f := newEnemyTurnFixture(t)
	f.seedPendingSession(t, beastDef(), nil)

	f.character.EXPECT().ArmorClass().Return(14)
	f.character.EXPECT().DamageEquippedItem(shared.SlotBody, 1)
	f.character.EXPECT().TakeDamage(6, "Mire Stalker")
	f.character.EXPECT().HitPoints().Return(10)

	// 15 + 3 = 18 hits AC 14; damage 5 + (2 - 1) = 6
	f.roller.SetRolls([]int{15, 2})

	f.svc.resolveEnemyTurn(context.Background(), "sess-1")

	session := f.reload(t)
	assert.Equal(t, domain.StatusPlayerTurn, session.Status)
	assert.True(t, session.PlayerTurn)
	assert.Equal(t, 1, session.TurnCount)
}

func TestEnemyAttackMissReturnsControl(t *testing.T) {
	f := newEnemyTurnFixture(t)
	f.seedPendingSession(t, beastDef(), nil)

	f.character.EXPECT().ArmorClass().Return(14)
	f.character.EXPECT().HitPoints().Return(10)
	f.roller.SetRolls([]int{4}) // 4 + 3 = 7, miss

	f.svc.resolveEnemyTurn(context.Background(), "sess-1")

	session := f.reload(t)
	assert.Equal(t, domain.StatusPlayerTurn, session.Status)
	assert.Contains(t, session.Log[len(session.Log)-1].Text, "misses")
}

func TestBurningTickThenEnemyStillAttacks(t *testing.T) {
	f := newEnemyTurnFixture(t)
	f.seedPendingSession(t, beastDef(), func(s *domain.Session) {
		s.IgniteEnemy(3)
	})

	f.character.EXPECT().ArmorClass().Return(14)
	f.character.EXPECT().DamageEquippedItem(shared.SlotBody, 1)
	f.character.EXPECT().TakeDamage(6, "Mire Stalker")
	f.character.EXPECT().HitPoints().Return(10)

	// 20 + 3 hits AC 14; damage 5 + (2 - 1) = 6
	f.roller.SetRolls([]int{20, 2})

	f.svc.resolveEnemyTurn(context.Background(), "sess-1")

	session := f.reload(t)
	assert.Equal(t, 32-3, session.EnemyHP.Current)
	assert.Equal(t, 2, session.EnemyBurningTurns)
	assert.True(t, session.EnemyBurning)
	assert.Equal(t, 1, session.TurnCount)
	assert.Equal(t, domain.StatusPlayerTurn, session.Status)

	var sawTick, sawAttack bool
	for _, entry := range session.Log {
		if strings.Contains(entry.Text, "burns for 3 damage") {
			sawTick = true
		}
		if strings.Contains(entry.Text, "hits you for 6 damage") {
			sawAttack = true
		}
	}
	assert.True(t, sawTick)
	assert.True(t, sawAttack)
}

func TestBurningExpiresAfterThreeTicks(t *testing.T) {
	f := newEnemyTurnFixture(t)
	f.seedPendingSession(t, beastDef(), func(s *domain.Session) {
		s.IgniteEnemy(1)
	})

	f.character.EXPECT().ArmorClass().Return(14)
	f.character.EXPECT().HitPoints().Return(10)
	f.roller.SetRolls([]int{4}) // the attack still happens, and misses

	f.svc.resolveEnemyTurn(context.Background(), "sess-1")

	session := f.reload(t)
	assert.False(t, session.EnemyBurning)
	assert.Equal(t, 0, session.EnemyBurningTurns)
}

func TestEliteAbilityWindowOpensWhileBurning(t *testing.T) {
	f := newEnemyTurnFixture(t)
	f.seedPendingSession(t, eliteDef(), func(s *domain.Session) {
		s.TurnCount = 1 // this turn becomes 2
		s.EnemyHP.Current = 25
		s.IgniteEnemy(2)
	})

	f.character.EXPECT().ArmorClass().Return(20)
	f.character.EXPECT().HitPoints().Return(10)

	// d100 = 70 procs at 75%; attack roll 5 + 5 = 10 misses AC 20
	f.roller.SetRolls([]int{70, 5})

	f.svc.resolveEnemyTurn(context.Background(), "sess-1")

	// tick 25 - 3 = 22, then Stim Surge heals 12
	session := f.reload(t)
	assert.True(t, session.AbilityUsed)
	assert.Equal(t, 34, session.EnemyHP.Current)
	assert.Equal(t, 1, session.EnemyBurningTurns)
	assert.Equal(t, 2, session.TurnCount)
}

func TestBurningCanFinishTheFight(t *testing.T) {
	f := newEnemyTurnFixture(t)
	f.seedPendingSession(t, beastDef(), func(s *domain.Session) {
		s.IgniteEnemy(3)
		s.EnemyHP.Current = 2
	})

	f.character.EXPECT().AddXP(95)
	f.character.EXPECT().UnlockedTalents().Return(nil)
	f.loot.EXPECT().Generate(gomock.Any(), gomock.Any()).
		Return([]loot.Grant{{ItemKey: "medkit", Quantity: 1}}, nil)
	f.inventory.EXPECT().AddItem("medkit", 1)

	f.svc.resolveEnemyTurn(context.Background(), "sess-1")

	session := f.reload(t)
	assert.Equal(t, domain.StatusVictory, session.Status)
	assert.Equal(t, 0, session.EnemyHP.Current)
}

func TestEliteAbilityHealsOnTriggerTurn(t *testing.T) {
	f := newEnemyTurnFixture(t)
	f.seedPendingSession(t, eliteDef(), func(s *domain.Session) {
		s.TurnCount = 1 // this turn becomes 2
		s.EnemyHP.Current = 25
	})

	f.character.EXPECT().ArmorClass().Return(20)
	f.character.EXPECT().HitPoints().Return(10)

	// d100 = 70 procs at 75%; attack roll 5 + 5 = 10 misses AC 20
	f.roller.SetRolls([]int{70, 5})

	f.svc.resolveEnemyTurn(context.Background(), "sess-1")

	session := f.reload(t)
	assert.True(t, session.AbilityUsed)
	assert.Equal(t, 25+12, session.EnemyHP.Current)
}

func TestEliteAbilityProbabilityCanFail(t *testing.T) {
	f := newEnemyTurnFixture(t)
	f.seedPendingSession(t, eliteDef(), func(s *domain.Session) {
		s.TurnCount = 1
		s.EnemyHP.Current = 25
	})

	f.character.EXPECT().ArmorClass().Return(20)
	f.character.EXPECT().HitPoints().Return(10)

	f.roller.SetRolls([]int{80, 5}) // 80 > 75, no proc

	f.svc.resolveEnemyTurn(context.Background(), "sess-1")

	session := f.reload(t)
	assert.False(t, session.AbilityUsed)
	assert.Equal(t, 25, session.EnemyHP.Current)
}

func TestEliteAbilitySilentOffTriggerTurn(t *testing.T) {
	f := newEnemyTurnFixture(t)
	f.seedPendingSession(t, eliteDef(), func(s *domain.Session) {
		s.EnemyHP.Current = 25 // turn becomes 1, trigger wants 2
	})

	f.character.EXPECT().ArmorClass().Return(20)
	f.character.EXPECT().HitPoints().Return(10)

	f.roller.SetRolls([]int{5}) // only the attack roll

	f.svc.resolveEnemyTurn(context.Background(), "sess-1")

	session := f.reload(t)
	assert.False(t, session.AbilityUsed)
	assert.Equal(t, 25, session.EnemyHP.Current)
}

func TestEnemyTurnLeavesDownedPlayerWithoutControl(t *testing.T) {
	f := newEnemyTurnFixture(t)
	f.seedPendingSession(t, beastDef(), nil)

	f.character.EXPECT().ArmorClass().Return(10)
	f.character.EXPECT().DamageEquippedItem(shared.SlotBody, 1)
	f.character.EXPECT().TakeDamage(5, "Mire Stalker")
	f.character.EXPECT().HitPoints().Return(0)

	f.roller.SetRolls([]int{12, 1})

	f.svc.resolveEnemyTurn(context.Background(), "sess-1")

	// The sheet owns defeat; the engine just never hands the turn back
	session := f.reload(t)
	assert.Equal(t, domain.StatusEnemyTurnPending, session.Status)
	assert.False(t, session.PlayerTurn)
}

func TestStaleEnemyTurnTimerIsIgnored(t *testing.T) {
	f := newEnemyTurnFixture(t)
	f.seedPendingSession(t, beastDef(), func(s *domain.Session) {
		s.MarkFled()
	})

	f.svc.resolveEnemyTurn(context.Background(), "sess-1")

	session := f.reload(t)
	assert.Equal(t, domain.StatusFled, session.Status)
	assert.Equal(t, 0, session.TurnCount)
}

func TestEnemyTurnOnMissingSessionIsNoOp(t *testing.T) {
	f := newEnemyTurnFixture(t)
	f.svc.resolveEnemyTurn(context.Background(), "ghost")
}
