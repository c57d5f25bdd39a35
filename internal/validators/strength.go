// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"unicode"
	"unicode/utf8"

	"github.com/MKhiriev/flux-signup/models"
)

const (
	// strongLength is the length that earns the second length point.
	strongLength = 12

	// weakMaxScore and mediumMaxScore bound the tiers: 0..2 weak, 3 medium, 4..5 strong.
	weakMaxScore   = 2
	mediumMaxScore = 3
)

// PasswordScore returns the additive strength score (0..5) of password.
// One point each for:
//   - at least 8 characters;
//   - at least 12 characters;
//   - both an upper-case and a lower-case letter;
//   - a digit;
//   - a character that is neither a letter nor a digit.
func PasswordScore(password string) int {
	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case !unicode.IsLetter(r):
			hasSymbol = true
		}
	}

	length := utf8.RuneCountInString(password)
	score := 0
	for _, ok := range []bool{
		length >= MinPasswordLength,
		length >= strongLength,
		hasUpper && hasLower,
		hasDigit,
		hasSymbol,
	} {
		if ok {
			score++
		}
	}

	return score
}

// TierForScore buckets a score into a tier. It is non-decreasing in score.
func TierForScore(score int) models.StrengthTier {
	switch {
	case score <= weakMaxScore:
		return models.StrengthWeak
	case score <= mediumMaxScore:
		return models.StrengthMedium
	default:
		return models.StrengthStrong
	}
}

// ScorePasswordStrength returns the tier of password, or models.StrengthNone
// for an empty password.
func ScorePasswordStrength(password string) models.StrengthTier {
	if password == "" {
		return models.StrengthNone
	}
	return TierForScore(PasswordScore(password))
}

// PasswordStrength returns both the score and the tier of password.
func PasswordStrength(password string) models.PasswordStrength {
	return models.PasswordStrength{
		Score: PasswordScore(password),
		Tier:  ScorePasswordStrength(password),
	}
}
