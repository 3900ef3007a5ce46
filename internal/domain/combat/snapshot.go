package combat

import (
	"encoding/json"
	"fmt"
)

// Snapshot serializes the full session verbatim for save/resume
func Snapshot(s *Session) ([]byte, error) {
	if s == nil {
		return nil, fmt.Errorf("session cannot be nil")
	}
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal session %s: %w", s.ID, err)
	}
	return data, nil
}

// RestoreSnapshot rebuilds a session from its serialized form, repairing any
// state that would violate session invariants
func RestoreSnapshot(data []byte) (*Session, error) {
	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	if s.ID == "" {
		return nil, fmt.Errorf("snapshot has no session id")
	}

	// Old snapshots may predate the clamping setters
	if s.EnemyHP.Current < 0 {
		s.EnemyHP.Current = 0
	}
	if s.EnemyHP.Current > s.EnemyHP.Max {
		s.EnemyHP.Current = s.EnemyHP.Max
	}
	// Ammo tag and round counter must zero out together
	if s.SpecialAmmoRounds <= 0 {
		s.SpecialAmmo = AmmoNone
		s.SpecialAmmoRounds = 0
	}
	if s.SpecialAmmo == AmmoNone {
		s.SpecialAmmoRounds = 0
	}

	return &s, nil
}
