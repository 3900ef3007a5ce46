package shared

// Skill identifies a trained proficiency used for checks against a DC
type Skill string

const (
	SkillPerception Skill = "perception"
	SkillStealth    Skill = "stealth"
	SkillSurvival   Skill = "survival"
)

// SkillCheckResult carries the full breakdown of a d20 skill check so the
// caller can render it without re-deriving any of the math
type SkillCheckResult struct {
	Skill   Skill `json:"skill"`
	Roll    int   `json:"roll"`
	Bonus   int   `json:"bonus"`
	Total   int   `json:"total"`
	DC      int   `json:"dc"`
	Success bool  `json:"success"`
}
