package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/dustward/combat-engine/internal/config"
	"github.com/dustward/combat-engine/internal/dice"
	domain "github.com/dustward/combat-engine/internal/domain/combat"
	"github.com/dustward/combat-engine/internal/domain/equipment"
	"github.com/dustward/combat-engine/internal/domain/shared"
	"github.com/dustward/combat-engine/internal/interfaces"
	"github.com/dustward/combat-engine/internal/player"
	"github.com/dustward/combat-engine/internal/repositories/sessions"
	"github.com/dustward/combat-engine/internal/services/bestiary"
	combatsvc "github.com/dustward/combat-engine/internal/services/combat"
	"github.com/dustward/combat-engine/internal/services/loot"
)

// consoleNotifier renders combat log entries with ANSI colors as they land,
// including entries produced by the delayed enemy turn
type consoleNotifier struct{}

func (consoleNotifier) Notify(entry domain.LogEntry) {
	colors := map[domain.LogColor]string{
		domain.ColorSuccess: "\033[32m",
		domain.ColorDanger:  "\033[31m",
		domain.ColorWarning: "\033[33m",
		domain.ColorInfo:    "\033[90m",
	}
	if code, ok := colors[entry.Color]; ok {
		fmt.Printf("%s%s\033[0m\n", code, entry.Text)
		return
	}
	fmt.Println(entry.Text)
}

// consoleCues stands in for a real audio backend
type consoleCues struct{}

func (consoleCues) Play(cue interfaces.Cue) {
	fmt.Printf("\033[2m[%s]\033[0m\n", cue)
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	repo := buildRepository(cfg)

	var roller dice.Roller
	if cfg.Combat.Seed != 0 {
		roller = dice.NewSeededRoller(cfg.Combat.Seed)
	} else {
		roller = dice.NewRandomRoller()
	}

	character := player.NewCharacter(&player.CharacterConfig{
		Name:  "Wren",
		MaxHP: 30,
		Attributes: map[shared.Attribute]int{
			shared.AttributeStrength:  14,
			shared.AttributeDexterity: 13,
			shared.AttributeWisdom:    12,
		},
		Weapon:  &equipment.Weapon{Key: "scrap_pistol", Name: "Scrap Pistol", Category: equipment.WeaponCategoryRanged, Damage: 5, Durability: 40},
		Armor:   &equipment.Armor{Key: "leathers", Name: "Scavenged Leathers", ACBonus: 2, Durability: 30},
		Talents: []string{"scavenger"},
		Roller:  roller,
	})

	inventory := player.NewInventory(&player.InventoryConfig{
		Initial: map[string]int{
			"bandage":       3,
			"ammo_piercing": 6,
		},
	})

	enemies := bestiary.NewService(nil)

	engine := combatsvc.NewService(&combatsvc.ServiceConfig{
		Repository: repo,
		Bestiary:   enemies,
		Loot:       loot.NewService(&loot.ServiceConfig{Seed: cfg.Combat.Seed}),
		Character:  character,
		Inventory:  inventory,
		Notifier:   consoleNotifier{},
		Audio:      consoleCues{},
		Roller:     roller,
		TurnDelay:  cfg.Combat.TurnDelay,
	})

	shell := &shell{
		engine:    engine,
		enemies:   enemies,
		repo:      repo,
		character: character,
		inventory: inventory,
	}
	shell.run()
}

func buildRepository(cfg *config.Config) sessions.Repository {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("Redis unavailable at %s, using in-memory sessions: %v", cfg.Redis.Addr, err)
		_ = client.Close()
		return sessions.NewInMemoryRepository()
	}

	log.Printf("Using Redis sessions at %s", cfg.Redis.Addr)
	return sessions.NewRedisRepository(&sessions.RedisRepoConfig{Client: client})
}

type shell struct {
	engine    combatsvc.Service
	enemies   bestiary.Service
	repo      sessions.Repository
	character *player.Character
	inventory *player.Inventory
	sessionID string
}

func (s *shell) run() {
	ctx := context.Background()

	fmt.Println("Type 'help' for commands.")

	// Pick up an encounter left behind by a previous run
	if active, err := s.repo.GetActive(ctx); err == nil && active != nil && !active.IsTerminal() {
		s.sessionID = active.ID
		fmt.Printf("Resuming fight against %s (%d/%d HP).\n",
			active.Enemy.Name, active.EnemyHP.Current, active.EnemyHP.Max)
	}

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		fields := strings.Fields(strings.ToLower(scanner.Text()))
		if len(fields) == 0 {
			continue
		}

		cmd, args := fields[0], fields[1:]
		switch cmd {
		case "quit", "exit":
			return
		case "help":
			s.printHelp()
		case "enemies":
			for _, key := range s.enemies.ListEnemies(ctx) {
				fmt.Println(" ", key)
			}
		case "fight", "ambush":
			s.startFight(ctx, cmd == "ambush", args)
		case "attack":
			s.act(ctx, combatsvc.AttackAction{})
		case "analyze":
			s.act(ctx, combatsvc.AnalyzeAction{})
		case "flee":
			s.act(ctx, combatsvc.FleeAction{})
		case "tactic":
			if len(args) != 1 {
				fmt.Println("usage: tactic <id>")
				continue
			}
			s.act(ctx, combatsvc.TacticAction{TacticID: args[0]})
		case "use":
			if len(args) != 1 {
				fmt.Println("usage: use <item>")
				continue
			}
			s.act(ctx, combatsvc.UseItemAction{ItemID: args[0]})
		case "env":
			if len(args) != 1 {
				fmt.Println("usage: env <hide_in_trees|seek_cover>")
				continue
			}
			s.act(ctx, combatsvc.EnvironmentalAction{ActionID: args[0]})
		case "load":
			if len(args) != 1 {
				fmt.Println("usage: load <piercing|hollow_point|incendiary>")
				continue
			}
			s.act(ctx, combatsvc.LoadSpecialAmmoAction{Ammo: domain.AmmoType(args[0])})
		case "status":
			s.printStatus(ctx)
		case "inv":
			for _, stack := range s.inventory.Stacks() {
				fmt.Printf("  %s x%d\n", stack.ItemKey, stack.Quantity)
			}
		default:
			fmt.Println("Unknown command; try 'help'.")
		}
	}
}

func (s *shell) printHelp() {
	fmt.Println(`  enemies                 list known enemies
  fight <enemy> [biome]   start a fight (biome: forest or urban)
  ambush <enemy> [biome]  start with a surprise attack
  attack                  attack with your equipped weapon
  analyze                 study the enemy's tactics
  tactic <id>             exploit a revealed opening
  load <type>             chamber special ammunition
  env <action>            use the terrain
  use <item>              use an inventory item
  flee                    try to escape
  status / inv / quit`)
}

func (s *shell) startFight(ctx context.Context, ambush bool, args []string) {
	if len(args) < 1 {
		fmt.Println("usage: fight <enemy> [forest|urban]")
		return
	}

	biome := domain.BiomeUrban
	if len(args) > 1 && domain.Biome(args[1]) == domain.BiomeForest {
		biome = domain.BiomeForest
	}

	session, err := s.engine.StartCombat(ctx, &combatsvc.StartCombatInput{
		EnemyID: args[0],
		Biome:   biome,
		Ambush:  ambush,
	})
	if err != nil {
		fmt.Println("Could not start the fight:", err)
		return
	}

	s.sessionID = session.ID
	s.finishIfOver(ctx, session)
}

// act dispatches the action and, when the turn passes, blocks until the
// enemy's delayed turn has resolved
func (s *shell) act(ctx context.Context, action combatsvc.Action) {
	if s.sessionID == "" {
		fmt.Println("No fight in progress; use 'fight <enemy>'.")
		return
	}

	session, err := s.engine.PlayerAction(ctx, s.sessionID, action)
	if err != nil {
		fmt.Println("Action failed:", err)
		return
	}

	session = s.waitForTurn(ctx, session)
	s.finishIfOver(ctx, session)
}

func (s *shell) waitForTurn(ctx context.Context, session *domain.Session) *domain.Session {
	for session.Status == domain.StatusEnemyTurnPending && !s.character.IsDown() {
		time.Sleep(100 * time.Millisecond)
		refreshed, err := s.engine.GetSession(ctx, s.sessionID)
		if err != nil {
			return session
		}
		session = refreshed
	}
	return session
}

func (s *shell) finishIfOver(ctx context.Context, session *domain.Session) {
	if s.character.IsDown() {
		if err := s.engine.EndCombat(ctx, s.sessionID, domain.OutcomeLose); err != nil {
			log.Printf("failed to close session: %v", err)
		}
		fmt.Println("\033[31mYou go down in the dirt. This run is over.\033[0m")
		s.cleanup(ctx)
		return
	}

	if !session.IsTerminal() {
		return
	}

	switch session.Status {
	case domain.StatusVictory:
		fmt.Printf("Victory. Total XP: %d\n", s.character.XP())
	case domain.StatusFled:
		fmt.Println("You live to scavenge another day.")
	}
	s.cleanup(ctx)
}

func (s *shell) cleanup(ctx context.Context) {
	if err := s.engine.CleanupCombat(ctx, s.sessionID); err != nil {
		log.Printf("failed to clean up session: %v", err)
	}
	s.sessionID = ""
}

func (s *shell) printStatus(ctx context.Context) {
	fmt.Printf("%s: %d/%d HP, AC %d, %d XP\n",
		s.character.Name(), s.character.HitPoints(), s.character.MaxHitPoints(),
		s.character.ArmorClass(), s.character.XP())

	if weapon := s.character.EquippedWeapon(); weapon != nil {
		fmt.Printf("weapon: %s (durability %d)\n", weapon.Name, weapon.Durability)
	}

	if s.sessionID == "" {
		return
	}
	session, err := s.engine.GetSession(ctx, s.sessionID)
	if err != nil {
		return
	}
	fmt.Printf("enemy: %s %d/%d HP", session.Enemy.Name, session.EnemyHP.Current, session.EnemyHP.Max)
	if session.EnemyBurning {
		fmt.Print(" (burning)")
	}
	fmt.Println()
	if session.SpecialAmmo != domain.AmmoNone {
		fmt.Printf("loaded: %s x%d\n", session.SpecialAmmo, session.SpecialAmmoRounds)
	}
	if session.RevealedTactics {
		for _, tactic := range session.AvailableTactics {
			fmt.Printf("opening: %s (%s)\n", tactic.ID, tactic.Name)
		}
	}
}
