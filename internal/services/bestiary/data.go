package bestiary

import (
	"github.com/dustward/combat-engine/internal/domain/combat"
	"github.com/dustward/combat-engine/internal/domain/shared"
)

// builtinDefinitions returns the shipped enemy catalog. A fresh map is built
// per service so one instance can never leak mutations into another.
func builtinDefinitions() map[string]*combat.EnemyDefinition {
	defs := []*combat.EnemyDefinition{
		{
			ID:         "rust_hound",
			Name:       "Rust Hound",
			Type:       combat.EnemyTypeBeast,
			HP:         20,
			ArmorClass: 12,
			XP:         45,
			Attack:     combat.AttackProfile{Bonus: 3, Damage: 4},
			Tactics: combat.TacticsProfile{
				RevealDC:    11,
				Description: "It circles twice before lunging. The lunge leaves its flank open.",
				Actions: []combat.TacticalAction{
					{
						ID:          "bait_lunge",
						Name:        "Bait the Lunge",
						Skill:       shared.SkillSurvival,
						DC:          12,
						Description: "Feint a stumble and sidestep the lunge for a free strike.",
					},
				},
			},
		},
		{
			ID:         "scav_raider",
			Name:       "Scav Raider",
			Type:       combat.EnemyTypeHumanoid,
			HP:         24,
			ArmorClass: 13,
			XP:         70,
			Attack:     combat.AttackProfile{Bonus: 4, Damage: 5},
			Tactics: combat.TacticsProfile{
				RevealDC:    12,
				Description: "Favors the right arm; the scrap pauldron on the left is loose.",
				Actions: []combat.TacticalAction{
					{
						ID:          "strip_pauldron",
						Name:        "Strip the Pauldron",
						Skill:       shared.SkillPerception,
						DC:          13,
						Description: "Hook the loose pauldron strap and tear the guard away.",
					},
				},
			},
		},
		{
			ID:         "ash_ghoul",
			Name:       "Ash Ghoul",
			Type:       combat.EnemyTypeMutant,
			HP:         16,
			ArmorClass: 11,
			XP:         40,
			Attack:     combat.AttackProfile{Bonus: 2, Damage: 3},
			Tactics: combat.TacticsProfile{
				RevealDC:    10,
				Description: "Blind. It tracks by sound and overcommits to the last noise.",
				Actions: []combat.TacticalAction{
					{
						ID:          "thrown_stone",
						Name:        "Misdirect",
						Skill:       shared.SkillStealth,
						DC:          11,
						Description: "Toss a stone and strike while it claws at the echo.",
					},
				},
			},
		},
		{
			ID:         "mire_stalker",
			Name:       "Mire Stalker",
			Type:       combat.EnemyTypeBeast,
			HP:         32,
			ArmorClass: 14,
			XP:         95,
			Attack:     combat.AttackProfile{Bonus: 5, Damage: 6},
			Tactics: combat.TacticsProfile{
				RevealDC:    14,
				Description: "Drags prey toward deep water. Keeps its blind left eye away from light.",
				Actions: []combat.TacticalAction{
					{
						ID:          "blind_side",
						Name:        "Work the Blind Side",
						Skill:       shared.SkillStealth,
						DC:          13,
						Description: "Slip into the dead angle of the scarred eye.",
					},
				},
			},
		},
		{
			ID:         "raider_warlord",
			Name:       "Raider Warlord",
			Type:       combat.EnemyTypeHumanoid,
			HP:         45,
			ArmorClass: 15,
			XP:         130,
			Attack:     combat.AttackProfile{Bonus: 6, Damage: 7},
			IsElite:    true,
			Tactics: combat.TacticsProfile{
				RevealDC:    15,
				Description: "Keeps a stim autoinjector taped under the chest plate for when a fight drags on.",
				Actions: []combat.TacticalAction{
					{
						ID:          "crush_injector",
						Name:        "Crush the Injector",
						Skill:       shared.SkillPerception,
						DC:          14,
						Description: "Smash the autoinjector before it can be used.",
					},
				},
			},
			SpecialAbility: &combat.SpecialAbility{
				ID:          "stim_surge",
				Name:        "Stim Surge",
				Trigger:     combat.AbilityTrigger{Kind: combat.TriggerOnTurn, Turn: 2},
				Probability: 0.75,
				Effect:      combat.EffectHeal,
				Amount:      12,
			},
		},
	}

	byKey := make(map[string]*combat.EnemyDefinition, len(defs))
	for _, def := range defs {
		byKey[def.ID] = def
	}
	return byKey
}
