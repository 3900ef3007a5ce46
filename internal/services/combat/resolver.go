package combat

import (
	"context"
	"fmt"

	domain "github.com/dustward/combat-engine/internal/domain/combat"
	"github.com/dustward/combat-engine/internal/domain/shared"
	cbterr "github.com/dustward/combat-engine/internal/errors"
	"github.com/dustward/combat-engine/internal/interfaces"
	"github.com/dustward/combat-engine/internal/rules"
)

// PlayerAction resolves one player action. Actions dispatched out of turn or
// after the fight has ended are silently ignored.
func (s *service) PlayerAction(ctx context.Context, sessionID string, action Action) (*domain.Session, error) {
	if action == nil {
		return nil, cbterr.InvalidArgument("action cannot be nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.repository.Get(ctx, sessionID)
	if err != nil {
		return nil, cbterr.Wrap(err, "failed to resolve player action")
	}

	if session.IsTerminal() || !session.PlayerTurn {
		return session, nil
	}

	var endsTurn bool
	switch a := action.(type) {
	case AttackAction:
		endsTurn = s.resolveAttack(session)
	case AnalyzeAction:
		endsTurn = s.resolveAnalyze(session)
	case FleeAction:
		endsTurn = s.resolveFlee(session)
	case TacticAction:
		endsTurn = s.resolveTactic(session, a.TacticID)
	case UseItemAction:
		endsTurn = s.resolveUseItem(session, a.ItemID)
	case EnvironmentalAction:
		endsTurn = s.resolveEnvironmental(session, a.ActionID)
	case LoadSpecialAmmoAction:
		endsTurn = s.resolveLoadAmmo(session, a.Ammo)
	default:
		return nil, cbterr.InvalidArgumentf("unknown action type %T", action)
	}

	if !session.IsTerminal() && !session.EnemyAlive() {
		s.resolveVictory(ctx, session)
	}

	if endsTurn && !session.IsTerminal() {
		session.PlayerTurn = false
		session.Status = domain.StatusEnemyTurnPending
		s.scheduleEnemyTurn(session.ID)
	}

	if err := s.repository.Update(ctx, session); err != nil {
		return nil, cbterr.Wrap(err, "failed to save combat session")
	}

	return session, nil
}

// scheduleEnemyTurn defers the enemy counter-turn by the pacing delay. The
// deferred closure re-acquires the lock and re-checks state, since the
// session may have been closed out in the meantime.
func (s *service) scheduleEnemyTurn(sessionID string) {
	s.scheduler.Schedule(s.turnDelay, func() {
		s.resolveEnemyTurn(context.Background(), sessionID)
	})
}

func (s *service) resolveAttack(session *domain.Session) bool {
	weapon := s.character.EquippedWeapon()
	if weapon == nil || weapon.IsBroken() {
		s.appendLog(session, "Your weapon is useless. Find another way.", domain.ColorDanger)
		s.playCue(interfaces.CueError)
		return false
	}

	mod := s.character.AttributeModifier(rules.AttackAttribute(weapon))
	targetAC := rules.EffectiveEnemyAC(session.Enemy.ArmorClass, session.HasSpecialAmmo(domain.AmmoPiercing))

	// The loaded round is spent on the attempt, hit or miss
	loaded := session.SpecialAmmo
	if session.HasSpecialAmmo(loaded) {
		session.ConsumeAmmoRound()
	}

	attackRoll := s.d(20) + mod
	s.character.DamageEquippedItem(shared.SlotMainHand, 1)

	if attackRoll < targetAC {
		s.appendLog(session, fmt.Sprintf("Your attack glances off %s. (%d vs AC %d)",
			session.Enemy.Name, attackRoll, targetAC), domain.ColorDefault)
		return true
	}

	damage := weapon.Damage + mod + (s.d(4) - 2)
	if loaded == domain.AmmoHollowPoint {
		damage += s.d(4)
	}
	if damage < 0 {
		damage = 0
	}

	applied := session.DamageEnemy(damage)
	s.appendLog(session, fmt.Sprintf("You hit %s for %d damage!",
		session.Enemy.Name, applied), domain.ColorSuccess)
	s.playCue(interfaces.CueHitEnemy)

	if loaded == domain.AmmoIncendiary && session.EnemyAlive() {
		session.IgniteEnemy(burningTurns)
		s.appendLog(session, fmt.Sprintf("%s catches fire!", session.Enemy.Name), domain.ColorWarning)
	}

	return true
}

func (s *service) resolveAnalyze(session *domain.Session) bool {
	if session.RevealedTactics {
		s.appendLog(session, "You already know how it fights.", domain.ColorInfo)
		return false
	}

	check := s.skillCheck(shared.SkillPerception, session.Enemy.Tactics.RevealDC)
	if !check.Success {
		s.appendLog(session, fmt.Sprintf("You can't get a read on %s. (%d vs DC %d)",
			session.Enemy.Name, check.Total, check.DC), domain.ColorWarning)
		return true
	}

	session.RevealTactics()
	s.character.SetQuestFlag(tacticRevealedFlag, true)
	s.character.SetQuestFlag(tacticRevealedFlag+":"+session.Enemy.ID, true)
	s.appendLog(session, session.Enemy.Tactics.Description, domain.ColorSuccess)
	s.playCue(interfaces.CueConfirm)
	return true
}

func (s *service) resolveFlee(session *domain.Session) bool {
	check := s.skillCheck(shared.SkillStealth, fleeDC)
	if !check.Success {
		s.appendLog(session, fmt.Sprintf("%s cuts off your escape. (%d vs DC %d)",
			session.Enemy.Name, check.Total, check.DC), domain.ColorDanger)
		return true
	}

	session.MarkFled()
	s.character.SetQuestFlag(fledCombatFlag, true)
	s.appendLog(session, "You break away and vanish into the ruins.", domain.ColorInfo)
	return true
}

func (s *service) resolveTactic(session *domain.Session, tacticID string) bool {
	if !session.RevealedTactics {
		s.appendLog(session, "You don't know enough about this enemy yet.", domain.ColorWarning)
		s.playCue(interfaces.CueError)
		return false
	}

	tactic := session.FindTactic(tacticID)
	if tactic == nil {
		s.appendLog(session, "That opening isn't there.", domain.ColorWarning)
		s.playCue(interfaces.CueError)
		return false
	}

	check := s.skillCheck(tactic.Skill, tactic.DC)
	if !check.Success {
		s.appendLog(session, fmt.Sprintf("%s fails. (%d vs DC %d)",
			tactic.Name, check.Total, check.DC), domain.ColorWarning)
		return true
	}

	applied := session.DamageEnemy(tacticBonusDamage)
	s.appendLog(session, fmt.Sprintf("%s! %s takes %d damage.",
		tactic.Name, session.Enemy.Name, applied), domain.ColorSuccess)
	s.playCue(interfaces.CueHitEnemy)
	return true
}

func (s *service) resolveUseItem(session *domain.Session, itemID string) bool {
	item, err := s.inventory.ItemDetails(itemID)
	if err != nil || item == nil {
		s.appendLog(session, "You fumble for something you don't have.", domain.ColorWarning)
		s.playCue(interfaces.CueError)
		return false
	}

	if item.Heal <= 0 {
		s.appendLog(session, fmt.Sprintf("%s won't help you here.", item.Name), domain.ColorWarning)
		s.playCue(interfaces.CueError)
		return false
	}

	if err := s.inventory.RemoveItem(item.Key, 1); err != nil {
		s.appendLog(session, fmt.Sprintf("No %s left.", item.Name), domain.ColorWarning)
		s.playCue(interfaces.CueError)
		return false
	}

	s.character.Heal(item.Heal)
	s.appendLog(session, fmt.Sprintf("You use %s and recover %d HP.",
		item.Name, item.Heal), domain.ColorSuccess)
	s.playCue(interfaces.CueConfirm)
	return true
}

func (s *service) resolveEnvironmental(session *domain.Session, actionID string) bool {
	switch {
	case session.Biome == domain.BiomeForest && actionID == EnvActionHideInTrees:
		check := s.skillCheck(shared.SkillStealth, hideInTreesDC)
		if !check.Success {
			s.appendLog(session, fmt.Sprintf("Branches snap underfoot; %s tracks you. (%d vs DC %d)",
				session.Enemy.Name, check.Total, check.DC), domain.ColorWarning)
			return true
		}
		session.ArmEnvironmentalBonus(domain.BonusConcealment, concealmentTurns)
		s.appendLog(session, "You melt into the treeline. The next attack will miss you.", domain.ColorSuccess)
		s.playCue(interfaces.CueConfirm)
		return true

	case session.Biome == domain.BiomeUrban && actionID == EnvActionSeekCover:
		check := s.skillCheck(shared.SkillPerception, seekCoverDC)
		if !check.Success {
			s.appendLog(session, fmt.Sprintf("Nothing solid nearby. (%d vs DC %d)",
				check.Total, check.DC), domain.ColorWarning)
			return true
		}
		session.ArmEnvironmentalBonus(domain.BonusCover, coverTurns)
		s.appendLog(session, "You duck behind rubble. Harder to hit for a while.", domain.ColorSuccess)
		s.playCue(interfaces.CueConfirm)
		return true

	default:
		s.appendLog(session, "The terrain offers nothing like that here.", domain.ColorWarning)
		s.playCue(interfaces.CueError)
		return false
	}
}

func (s *service) resolveLoadAmmo(session *domain.Session, ammo domain.AmmoType) bool {
	switch ammo {
	case domain.AmmoPiercing, domain.AmmoHollowPoint, domain.AmmoIncendiary:
	default:
		s.appendLog(session, "That isn't ammunition.", domain.ColorWarning)
		s.playCue(interfaces.CueError)
		return false
	}

	weapon := s.character.EquippedWeapon()
	if weapon == nil || !weapon.IsRanged() {
		s.appendLog(session, "You have nothing to load it into.", domain.ColorWarning)
		s.playCue(interfaces.CueError)
		return false
	}

	itemKey := "ammo_" + string(ammo)
	if err := s.inventory.RemoveItem(itemKey, specialAmmoCost); err != nil {
		s.appendLog(session, "Not enough rounds of that type.", domain.ColorWarning)
		s.playCue(interfaces.CueError)
		return false
	}

	session.ArmSpecialAmmo(ammo, specialAmmoRounds)
	s.appendLog(session, fmt.Sprintf("You chamber %d %s rounds.",
		specialAmmoRounds, ammo), domain.ColorInfo)
	s.playCue(interfaces.CueConfirm)
	return true
}
