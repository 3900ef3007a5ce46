package combat

import "time"

// Status represents the current state of a combat session
type Status string

const (
	StatusPlayerTurn       Status = "player_turn"
	StatusEnemyTurnPending Status = "enemy_turn_pending"
	StatusVictory          Status = "victory"
	StatusFled             Status = "fled"
	StatusDefeated         Status = "defeated"
)

// Outcome is the caller-facing result used to close out a session
type Outcome string

const (
	OutcomeWin  Outcome = "win"
	OutcomeFlee Outcome = "flee"
	OutcomeLose Outcome = "lose"
)

// Biome selects which environmental action is offered and how it resolves
type Biome string

const (
	BiomeForest Biome = "forest"
	BiomeUrban  Biome = "urban"
)

// AmmoType tags loaded special ammunition; empty means none loaded
type AmmoType string

const (
	AmmoNone        AmmoType = ""
	AmmoPiercing    AmmoType = "piercing"
	AmmoHollowPoint AmmoType = "hollow_point"
	AmmoIncendiary  AmmoType = "incendiary"
)

// BonusKind distinguishes the two environmental buff variants
type BonusKind string

const (
	// BonusConcealment makes the next enemy attack miss outright (forest)
	BonusConcealment BonusKind = "concealment"
	// BonusCover raises the player's effective AC by 4 (urban)
	BonusCover BonusKind = "cover"
)

// CoverACBonus is the AC delta granted while behind cover
const CoverACBonus = 4

// LogColor hints how a log entry should be rendered
type LogColor string

const (
	ColorDefault LogColor = ""
	ColorSuccess LogColor = "green"
	ColorDanger  LogColor = "red"
	ColorWarning LogColor = "yellow"
	ColorInfo    LogColor = "gray"
)

// LogEntry is one line of the append-only combat log
type LogEntry struct {
	Text  string   `json:"text"`
	Color LogColor `json:"color,omitempty"`
}

// HP tracks a clamped current/max pair
type HP struct {
	Current int `json:"current"`
	Max     int `json:"max"`
}

// EnvironmentalBonus is the transient environment buff with its countdown.
// At most one instance is active; arming a new one overwrites the old.
type EnvironmentalBonus struct {
	Active bool      `json:"active"`
	Kind   BonusKind `json:"kind,omitempty"`
	Turns  int       `json:"turns"`
}

// Session is the mutable state of one active encounter, exclusively owned by
// the combat engine from start until cleanup
type Session struct {
	ID                string             `json:"id"`
	Enemy             EnemyDefinition    `json:"enemy"` // snapshot copy, never the catalog entry
	EnemyHP           HP                 `json:"enemy_hp"`
	PlayerTurn        bool               `json:"player_turn"`
	Status            Status             `json:"status"`
	Log               []LogEntry         `json:"log"`
	RevealedTactics   bool               `json:"revealed_tactics"`
	AvailableTactics  []TacticalAction   `json:"available_tactics,omitempty"`
	Victory           bool               `json:"victory"`
	Biome             Biome              `json:"biome"`
	EnvBonus          EnvironmentalBonus `json:"env_bonus"`
	SpecialAmmo       AmmoType           `json:"special_ammo"`
	SpecialAmmoRounds int                `json:"special_ammo_rounds"`
	EnemyBurning      bool               `json:"enemy_burning"`
	EnemyBurningTurns int                `json:"enemy_burning_turns"`
	TurnCount         int                `json:"turn_count"`
	AbilityUsed       bool               `json:"ability_used"`
	CreatedAt         time.Time          `json:"created_at"`
}

// NewSession creates a session for one encounter against a snapshot of the
// given enemy definition
func NewSession(id string, def *EnemyDefinition, biome Biome) *Session {
	snapshot := def.Clone()
	return &Session{
		ID:         id,
		Enemy:      *snapshot,
		EnemyHP:    HP{Current: snapshot.HP, Max: snapshot.HP},
		PlayerTurn: true,
		Status:     StatusPlayerTurn,
		Biome:      biome,
		Log:        []LogEntry{},
		CreatedAt:  time.Now().UTC(),
	}
}

// AppendLog appends one entry to the combat log
func (s *Session) AppendLog(text string, color LogColor) {
	s.Log = append(s.Log, LogEntry{Text: text, Color: color})
}

// DamageEnemy applies damage, clamping at zero, and returns the amount
// actually subtracted
func (s *Session) DamageEnemy(amount int) int {
	if amount < 0 {
		amount = 0
	}
	applied := amount
	if applied > s.EnemyHP.Current {
		applied = s.EnemyHP.Current
	}
	s.EnemyHP.Current -= applied
	return applied
}

// HealEnemy restores enemy hit points, clamping at max
func (s *Session) HealEnemy(amount int) int {
	if amount < 0 {
		amount = 0
	}
	missing := s.EnemyHP.Max - s.EnemyHP.Current
	if amount > missing {
		amount = missing
	}
	s.EnemyHP.Current += amount
	return amount
}

// EnemyAlive returns true while the enemy has hit points left
func (s *Session) EnemyAlive() bool {
	return s.EnemyHP.Current > 0
}

// IsTerminal returns true once the session has reached an end state
func (s *Session) IsTerminal() bool {
	switch s.Status {
	case StatusVictory, StatusFled, StatusDefeated:
		return true
	}
	return false
}

// RevealTactics marks the enemy's tactics as read and unlocks its tactical
// actions; irreversible for the session
func (s *Session) RevealTactics() {
	s.RevealedTactics = true
	s.AvailableTactics = make([]TacticalAction, len(s.Enemy.Tactics.Actions))
	copy(s.AvailableTactics, s.Enemy.Tactics.Actions)
}

// FindTactic returns the unlocked tactical action with the given id, or nil
func (s *Session) FindTactic(id string) *TacticalAction {
	for i := range s.AvailableTactics {
		if s.AvailableTactics[i].ID == id {
			return &s.AvailableTactics[i]
		}
	}
	return nil
}

// ArmSpecialAmmo loads rounds of the given ammunition type, replacing any
// previously loaded ammo
func (s *Session) ArmSpecialAmmo(ammo AmmoType, rounds int) {
	if ammo == AmmoNone || rounds <= 0 {
		s.SpecialAmmo = AmmoNone
		s.SpecialAmmoRounds = 0
		return
	}
	s.SpecialAmmo = ammo
	s.SpecialAmmoRounds = rounds
}

// ConsumeAmmoRound spends one loaded round. The ammo tag is cleared the
// moment rounds reach zero, keeping the tag/counter pair coupled.
func (s *Session) ConsumeAmmoRound() {
	if s.SpecialAmmo == AmmoNone {
		return
	}
	s.SpecialAmmoRounds--
	if s.SpecialAmmoRounds <= 0 {
		s.SpecialAmmo = AmmoNone
		s.SpecialAmmoRounds = 0
	}
}

// HasSpecialAmmo reports whether ammo of the given type is loaded with
// rounds remaining
func (s *Session) HasSpecialAmmo(ammo AmmoType) bool {
	return s.SpecialAmmo == ammo && s.SpecialAmmoRounds > 0
}

// ArmEnvironmentalBonus activates the environment buff, overwriting any
// prior instance
func (s *Session) ArmEnvironmentalBonus(kind BonusKind, turns int) {
	s.EnvBonus = EnvironmentalBonus{Active: true, Kind: kind, Turns: turns}
}

// ConsumeEnvironmentalTurn spends one buff turn, deactivating at zero
func (s *Session) ConsumeEnvironmentalTurn() {
	if !s.EnvBonus.Active {
		return
	}
	s.EnvBonus.Turns--
	if s.EnvBonus.Turns <= 0 {
		s.EnvBonus = EnvironmentalBonus{}
	}
}

// IgniteEnemy starts or refreshes the burning damage-over-time effect
func (s *Session) IgniteEnemy(turns int) {
	s.EnemyBurning = true
	s.EnemyBurningTurns = turns
}

// TickBurning spends one burning turn, clearing the flag at zero
func (s *Session) TickBurning() {
	if !s.EnemyBurning {
		return
	}
	s.EnemyBurningTurns--
	if s.EnemyBurningTurns <= 0 {
		s.EnemyBurning = false
		s.EnemyBurningTurns = 0
	}
}

// MarkVictory transitions the session to its victorious terminal state
func (s *Session) MarkVictory() {
	s.Victory = true
	s.PlayerTurn = false
	s.Status = StatusVictory
}

// MarkFled transitions the session to the fled terminal state
func (s *Session) MarkFled() {
	s.PlayerTurn = false
	s.Status = StatusFled
}

// MarkDefeated transitions the session to the defeated terminal state
func (s *Session) MarkDefeated() {
	s.PlayerTurn = false
	s.Status = StatusDefeated
}
