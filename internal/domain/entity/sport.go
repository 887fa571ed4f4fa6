package entity

import "strings"

// Sport tags accepted for activities and profile preferences.
const (
	SportFutbol     = "futbol"
	SportBasketball = "basketball"
	SportSkate      = "skate"
	SportVolibol    = "volibol"
	SportRunning    = "running"
	SportTenis      = "tenis"
)

// Sports lists the sport catalogue in display order.
var Sports = []string{
	SportFutbol,
	SportBasketball,
	SportSkate,
	SportVolibol,
	SportRunning,
	SportTenis,
}

// SameSport compares two sport tags ignoring case. An empty tag never matches.
func SameSport(a, b string) bool {
	a = strings.TrimSpace(a)
	b = strings.TrimSpace(b)
	if a == "" || b == "" {
		return false
	}

	return strings.EqualFold(a, b)
}

// Level is a skill level tag.
type Level string

const (
	LevelBeginner     Level = "principiante"
	LevelIntermediate Level = "intermedio"
	LevelAdvanced     Level = "avanzado"
)

// IsValid checks if the Level is one of the known values.
func (l Level) IsValid() bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return true
	default:
		return false
	}
}

// NormalizeSport returns the catalogue tag matching sport, ignoring case and
// surrounding spaces. ok is false for unknown sports.
func NormalizeSport(sport string) (tag string, ok bool) {
	for _, known := range Sports {
		if SameSport(sport, known) {
			return known, true
		}
	}

	return "", false
}

// ParseLevel maps a level name to a Level, ignoring case.
func ParseLevel(s string) (Level, bool) {
	level := Level(strings.ToLower(strings.TrimSpace(s)))

	return level, level.IsValid()
}
