package generation

import (
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/KirkDiggler/spellforge/internal/engine/effects"
	"github.com/KirkDiggler/spellforge/internal/entities"
)

// DefaultIcon is used when a generated icon name matches nothing
const DefaultIcon = "sparkles"

// Icons is the allow-list of icon names the client can render
var Icons = []string{
	"sparkles", "flame", "snowflake", "bolt", "droplet", "mountain", "wind", "sun",
	"moon", "skull", "leaf", "brain", "sword", "shield", "heart", "potion", "star",
	"eye", "feather", "hourglass",
}

// matchName resolves a generated name against an allow-list: exact match first
// (ignoring case and surrounding space), then the closest candidate within the
// Levenshtein limit for its length. Ties keep the earlier candidate.
func matchName(input string, allowed []string) (string, bool) {
	in := strings.ToLower(strings.TrimSpace(input))
	if in == "" {
		return "", false
	}

	for _, cand := range allowed {
		if strings.ToLower(cand) == in {
			return cand, true
		}
	}

	best, bestDist := "", -1
	for _, cand := range allowed {
		lower := strings.ToLower(cand)
		dist := levenshtein.ComputeDistance(in, lower)
		if dist > levenshteinLimit(len(lower)) {
			continue
		}
		if bestDist < 0 || dist < bestDist {
			best, bestDist = cand, dist
		}
	}
	return best, bestDist >= 0
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

// MatchStatus resolves a generated status effect name to a known one
func MatchStatus(input string) (entities.StatusEffectName, bool) {
	known := effects.Names()
	allowed := make([]string, len(known))
	for i, name := range known {
		allowed[i] = string(name)
	}

	name, ok := matchName(input, allowed)
	return entities.StatusEffectName(name), ok
}

// MatchIcon resolves a generated icon name, falling back to DefaultIcon
func MatchIcon(input string) string {
	if name, ok := matchName(input, Icons); ok {
		return name
	}
	return DefaultIcon
}
