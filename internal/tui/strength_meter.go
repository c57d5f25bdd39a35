// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/flux-signup/models"
)

const maxStrengthScore = 5

// renderStrengthMeter draws a five-cell bar for the score and names the tier.
// An empty password has no tier and renders nothing.
func renderStrengthMeter(s models.PasswordStrength) string {
	if s.Tier == models.StrengthNone {
		return ""
	}

	score := min(max(s.Score, 0), maxStrengthScore)
	bar := strings.Repeat("■", score) + strings.Repeat("□", maxStrengthScore-score)

	style, ok := strengthStyles[s.Tier]
	if !ok {
		return "Strength: " + bar + " " + string(s.Tier)
	}
	return "Strength: " + style.Render(bar+" "+string(s.Tier))
}
