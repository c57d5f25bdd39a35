package models

// StrengthTier is the coarse password quality shown by the live indicator.
// The zero value StrengthNone means "no tier" and is used for an empty password.
type StrengthTier string

const (
	StrengthNone   StrengthTier = ""
	StrengthWeak   StrengthTier = "weak"
	StrengthMedium StrengthTier = "medium"
	StrengthStrong StrengthTier = "strong"
)

// Rank orders tiers: none=0, weak=1, medium=2, strong=3.
// Unknown tiers rank as none.
func (t StrengthTier) Rank() int {
	switch t {
	case StrengthWeak:
		return 1
	case StrengthMedium:
		return 2
	case StrengthStrong:
		return 3
	default:
		return 0
	}
}

// PasswordStrength pairs the raw heuristic score with the tier derived from it.
type PasswordStrength struct {
	Score int          `json:"score"`
	Tier  StrengthTier `json:"tier"`
}
