// Package combat implements the turn-based combat resolution engine: it owns
// the active session, resolves player actions, paces and resolves the enemy
// counter-turn, and runs loot generation on victory.
package combat

//go:generate mockgen -destination=mock/mock_service.go -package=mockcombat -source=service.go

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/dustward/combat-engine/internal/dice"
	domain "github.com/dustward/combat-engine/internal/domain/combat"
	"github.com/dustward/combat-engine/internal/domain/shared"
	cbterr "github.com/dustward/combat-engine/internal/errors"
	"github.com/dustward/combat-engine/internal/interfaces"
	"github.com/dustward/combat-engine/internal/repositories/sessions"
	"github.com/dustward/combat-engine/internal/rules"
	"github.com/dustward/combat-engine/internal/services/bestiary"
	lootService "github.com/dustward/combat-engine/internal/services/loot"
	"github.com/dustward/combat-engine/internal/uuid"
)

// Resolution constants
const (
	fleeDC             = 12
	tacticBonusDamage  = 15
	burningTickDamage  = 3
	burningTurns       = 3
	specialAmmoCost    = 3
	specialAmmoRounds  = 3
	concealmentTurns   = 1
	coverTurns         = 2
	hideInTreesDC      = 13
	seekCoverDC        = 12
	defaultTurnDelay   = 1500 * time.Millisecond
	ambushTalent       = "ambush_predator"
	scavengerTalent    = "scavenger"
	firstHumanoidFlag  = "first_humanoid_defeated"
	tacticRevealedFlag = "tactic_revealed"
	fledCombatFlag     = "fled_combat"
)

// Service defines the combat engine interface
type Service interface {
	// StartCombat begins an encounter against the given enemy
	StartCombat(ctx context.Context, input *StartCombatInput) (*domain.Session, error)

	// PlayerAction resolves one player action. Actions dispatched out of
	// turn or after the fight has ended are silently ignored.
	PlayerAction(ctx context.Context, sessionID string, action Action) (*domain.Session, error)

	// EndCombat closes the session with the given outcome
	EndCombat(ctx context.Context, sessionID string, outcome domain.Outcome) error

	// CleanupCombat discards the session once rewards have been displayed
	CleanupCombat(ctx context.Context, sessionID string) error

	// GetSession retrieves a session by ID
	GetSession(ctx context.Context, sessionID string) (*domain.Session, error)
}

// StartCombatInput describes how an encounter begins
type StartCombatInput struct {
	EnemyID string
	Biome   domain.Biome

	// Ambush marks a player-initiated surprise attack; with the right
	// talent and biome it lands a pre-emptive strike
	Ambush bool
}

type service struct {
	// mu serializes the whole resolution pipeline; the scheduled enemy
	// turn is the only other entry point
	mu sync.Mutex

	repository sessions.Repository
	bestiary   bestiary.Service
	loot       lootService.Service
	character  interfaces.CharacterSheet
	inventory  interfaces.Inventory
	notifier   interfaces.Notifier
	audio      interfaces.AudioCues
	roller     dice.Roller
	scheduler  Scheduler
	uuidGen    uuid.Generator
	turnDelay  time.Duration
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository sessions.Repository            // required
	Bestiary   bestiary.Service               // required
	Loot       lootService.Service            // required
	Character  interfaces.CharacterSheet      // required
	Inventory  interfaces.Inventory           // required
	Notifier   interfaces.Notifier            // optional
	Audio      interfaces.AudioCues           // optional
	Roller     dice.Roller                    // optional, defaults to random
	Scheduler  Scheduler                      // optional, defaults to timers
	UUIDGen    uuid.Generator                 // optional
	TurnDelay  time.Duration                  // optional pacing delay
}

// NewService creates a new combat service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Repository == nil {
		panic("repository is required")
	}
	if cfg.Bestiary == nil {
		panic("bestiary service is required")
	}
	if cfg.Loot == nil {
		panic("loot service is required")
	}
	if cfg.Character == nil {
		panic("character sheet is required")
	}
	if cfg.Inventory == nil {
		panic("inventory is required")
	}

	svc := &service{
		repository: cfg.Repository,
		bestiary:   cfg.Bestiary,
		loot:       cfg.Loot,
		character:  cfg.Character,
		inventory:  cfg.Inventory,
		notifier:   cfg.Notifier,
		audio:      cfg.Audio,
		roller:     cfg.Roller,
		scheduler:  cfg.Scheduler,
		uuidGen:    cfg.UUIDGen,
		turnDelay:  cfg.TurnDelay,
	}

	if svc.roller == nil {
		svc.roller = dice.NewRandomRoller()
	}
	if svc.scheduler == nil {
		svc.scheduler = NewTimerScheduler()
	}
	if svc.uuidGen == nil {
		svc.uuidGen = uuid.NewGoogleUUIDGenerator()
	}
	if svc.turnDelay <= 0 {
		svc.turnDelay = defaultTurnDelay
	}

	return svc
}

// StartCombat begins an encounter against the given enemy
func (s *service) StartCombat(ctx context.Context, input *StartCombatInput) (*domain.Session, error) {
	if input == nil {
		return nil, cbterr.InvalidArgument("input cannot be nil")
	}

	def, err := s.bestiary.GetEnemy(ctx, input.EnemyID)
	if err != nil {
		return nil, cbterr.Wrapf(err, "failed to start combat against '%s'", input.EnemyID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	session := domain.NewSession(s.uuidGen.New(), def, input.Biome)
	s.appendLog(session, fmt.Sprintf("%s blocks your path!", def.Name), domain.ColorWarning)
	s.playCue(interfaces.CueCombatStart)

	if input.Ambush {
		s.resolveAmbushStrike(session)
	}

	if !session.EnemyAlive() {
		s.resolveVictory(ctx, session)
	}

	if err := s.repository.Create(ctx, session); err != nil {
		return nil, cbterr.Wrap(err, "failed to store combat session")
	}

	return session, nil
}

// resolveAmbushStrike applies the pre-emptive strike for a surprise attack
// when the ambush talent is unlocked and the biome offers enough cover
func (s *service) resolveAmbushStrike(session *domain.Session) {
	if session.Biome != domain.BiomeForest || !s.hasTalent(ambushTalent) {
		return
	}

	weapon := s.character.EquippedWeapon()
	if weapon == nil || weapon.IsBroken() {
		return
	}

	damage := weapon.Damage + s.character.AttributeModifier(rules.AttackAttribute(weapon))
	if damage < 0 {
		damage = 0
	}

	session.DamageEnemy(damage)
	s.appendLog(session,
		fmt.Sprintf("You strike from the undergrowth before %s can react! (%d damage)", session.Enemy.Name, damage),
		domain.ColorSuccess)
	s.playCue(interfaces.CueHitEnemy)
}

// EndCombat closes the session with the given outcome
func (s *service) EndCombat(ctx context.Context, sessionID string, outcome domain.Outcome) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.repository.Get(ctx, sessionID)
	if err != nil {
		return cbterr.Wrap(err, "failed to end combat")
	}

	switch outcome {
	case domain.OutcomeWin:
		if !session.Victory {
			session.MarkVictory()
		}
	case domain.OutcomeFlee:
		session.MarkFled()
		s.appendLog(session, "You slip away before the fight turns worse.", domain.ColorInfo)
	case domain.OutcomeLose:
		session.MarkDefeated()
	default:
		return cbterr.InvalidArgumentf("unknown combat outcome '%s'", outcome)
	}

	return s.repository.Update(ctx, session)
}

// CleanupCombat discards the session once rewards have been displayed
func (s *service) CleanupCombat(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repository.Delete(ctx, sessionID)
}

// GetSession retrieves a session by ID
func (s *service) GetSession(ctx context.Context, sessionID string) (*domain.Session, error) {
	return s.repository.Get(ctx, sessionID)
}

// resolveVictory runs the full victory sequence: XP, loot, terminal state,
// and the one-time narrative hook for the first humanoid kill
func (s *service) resolveVictory(ctx context.Context, session *domain.Session) {
	session.MarkVictory()
	s.appendLog(session, fmt.Sprintf("%s collapses!", session.Enemy.Name), domain.ColorSuccess)
	s.playCue(interfaces.CueVictory)

	s.character.AddXP(session.Enemy.XP)
	s.appendLog(session, fmt.Sprintf("You gain %d XP.", session.Enemy.XP), domain.ColorInfo)

	grants, err := s.loot.Generate(ctx, &lootService.GenerateInput{
		EnemyXP:    session.Enemy.XP,
		EnemyType:  session.Enemy.Type,
		DoubleRoll: s.hasTalent(scavengerTalent),
	})
	if err != nil {
		// Loot failure must not undo the victory
		log.Printf("loot generation failed for session %s: %v", session.ID, err)
	}
	for _, grant := range grants {
		s.inventory.AddItem(grant.ItemKey, grant.Quantity)
		s.appendLog(session, fmt.Sprintf("Scavenged: %s x%d", grant.ItemKey, grant.Quantity), domain.ColorSuccess)
	}

	if session.Enemy.Type == domain.EnemyTypeHumanoid && !s.character.QuestFlag(firstHumanoidFlag) {
		s.character.SetQuestFlag(firstHumanoidFlag, true)
		s.scheduler.Schedule(s.turnDelay, func() {
			s.notify(domain.LogEntry{
				Text:  "Your hands are shaking. It wasn't a beast this time.",
				Color: domain.ColorWarning,
			})
		})
	}
}

// hasTalent reports whether the player has unlocked the given talent
func (s *service) hasTalent(key string) bool {
	for _, talent := range s.character.UnlockedTalents() {
		if talent == key {
			return true
		}
	}
	return false
}

// appendLog records a line on the session and mirrors it to the notifier
func (s *service) appendLog(session *domain.Session, text string, color domain.LogColor) {
	session.AppendLog(text, color)
	s.notify(domain.LogEntry{Text: text, Color: color})
}

func (s *service) notify(entry domain.LogEntry) {
	if s.notifier != nil {
		s.notifier.Notify(entry)
	}
}

// playCue triggers an advisory audio cue; never affects resolution
func (s *service) playCue(cue interfaces.Cue) {
	if s.audio != nil {
		s.audio.Play(cue)
	}
}

// d rolls a single die with the given number of sides
func (s *service) d(sides int) int {
	result, err := s.roller.Roll(1, sides, 0)
	if err != nil {
		// The random roller cannot fail for valid sides; a mock that runs
		// out of rolls is a test bug worth surfacing loudly
		panic(fmt.Sprintf("dice roll failed: %v", err))
	}
	return result.Total
}

// skillCheck runs a collaborator skill check, falling back to failure when
// the sheet cannot produce one
func (s *service) skillCheck(skill shared.Skill, dc int) *shared.SkillCheckResult {
	result, err := s.character.PerformSkillCheck(skill, dc)
	if err != nil || result == nil {
		log.Printf("skill check %s failed to resolve: %v", skill, err)
		return &shared.SkillCheckResult{Skill: skill, DC: dc}
	}
	return result
}
