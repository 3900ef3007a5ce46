package combat

import (
	"context"
	"fmt"
	"log"

	domain "github.com/dustward/combat-engine/internal/domain/combat"
	"github.com/dustward/combat-engine/internal/domain/shared"
	"github.com/dustward/combat-engine/internal/interfaces"
	"github.com/dustward/combat-engine/internal/rules"
)

// resolveEnemyTurn runs the enemy counter-turn after the pacing delay.
// Everything is resolved in one pass: burning tick, elite ability window,
// environmental buff consumption, then the counter-attack. Control returns
// to the player only if they survive.
func (s *service) resolveEnemyTurn(ctx context.Context, sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.repository.Get(ctx, sessionID)
	if err != nil {
		log.Printf("enemy turn aborted, session %s not loadable: %v", sessionID, err)
		return
	}

	// The fight may have been closed out while the timer ran
	if session.IsTerminal() || session.Status != domain.StatusEnemyTurnPending {
		return
	}

	s.runEnemyTurn(ctx, session)

	if err := s.repository.Update(ctx, session); err != nil {
		log.Printf("failed to save session %s after enemy turn: %v", sessionID, err)
	}
}

func (s *service) runEnemyTurn(ctx context.Context, session *domain.Session) {
	if session.EnemyBurning {
		applied := session.DamageEnemy(burningTickDamage)
		session.TickBurning()
		s.appendLog(session, fmt.Sprintf("%s burns for %d damage.",
			session.Enemy.Name, applied), domain.ColorWarning)

		// Only a kill cuts the turn short; otherwise the enemy still acts
		if !session.EnemyAlive() {
			s.resolveVictory(ctx, session)
			return
		}
	}

	session.TurnCount++

	s.resolveEliteAbility(session)
	s.resolveEnemyAttack(session)

	// The sheet owns death handling; the engine just stops handing the
	// turn back once the player is down
	if s.character.HitPoints() > 0 {
		s.returnControl(session)
	}
}

// resolveEliteAbility fires the enemy's once-per-encounter special ability
// when its trigger matches and the probability roll passes
func (s *service) resolveEliteAbility(session *domain.Session) {
	ability := session.Enemy.SpecialAbility
	if !session.Enemy.IsElite || ability == nil || session.AbilityUsed {
		return
	}
	if !ability.Trigger.Matches(session.TurnCount) {
		return
	}
	if s.d(100) > int(ability.Probability*100) {
		return
	}

	session.AbilityUsed = true

	switch ability.Effect {
	case domain.EffectHeal:
		restored := session.HealEnemy(ability.Amount)
		s.appendLog(session, fmt.Sprintf("%s uses %s and recovers %d HP!",
			session.Enemy.Name, ability.Name, restored), domain.ColorDanger)
	default:
		log.Printf("unhandled ability effect '%s' on enemy %s", ability.Effect, session.Enemy.ID)
	}
}

func (s *service) resolveEnemyAttack(session *domain.Session) {
	if session.EnvBonus.Active && session.EnvBonus.Kind == domain.BonusConcealment {
		session.ConsumeEnvironmentalTurn()
		s.appendLog(session, fmt.Sprintf("%s lashes out at shadows. You stay hidden.",
			session.Enemy.Name), domain.ColorInfo)
		return
	}

	targetAC := rules.DefenderAC(s.character.ArmorClass(), session.EnvBonus)
	behindCover := session.EnvBonus.Active && session.EnvBonus.Kind == domain.BonusCover
	if behindCover {
		session.ConsumeEnvironmentalTurn()
	}

	attackRoll := s.d(20) + session.Enemy.Attack.Bonus
	if attackRoll < targetAC {
		if behindCover {
			s.appendLog(session, fmt.Sprintf("%s's attack slams into your cover. (%d vs AC %d)",
				session.Enemy.Name, attackRoll, targetAC), domain.ColorInfo)
		} else {
			s.appendLog(session, fmt.Sprintf("%s misses you. (%d vs AC %d)",
				session.Enemy.Name, attackRoll, targetAC), domain.ColorInfo)
		}
		return
	}

	damage := session.Enemy.Attack.Damage + (s.d(3) - 1)
	if damage < 0 {
		damage = 0
	}

	s.character.DamageEquippedItem(shared.SlotBody, 1)
	s.character.TakeDamage(damage, session.Enemy.Name)
	s.appendLog(session, fmt.Sprintf("%s hits you for %d damage!",
		session.Enemy.Name, damage), domain.ColorDanger)
	s.playCue(interfaces.CueHitPlayer)
}

func (s *service) returnControl(session *domain.Session) {
	session.PlayerTurn = true
	session.Status = domain.StatusPlayerTurn
}
