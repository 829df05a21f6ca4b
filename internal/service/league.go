package service

import (
	"strings"

	"stadium-api/internal/models"
)

// League filter tokens accepted by the random stadium endpoint.
const (
	LeagueAll    = "all"
	LeagueMLB    = "MLB"
	LeagueAAA    = "AAA"
	LeagueAA     = "AA"
	LeagueHighA  = "High-A"
	LeagueLowA   = "Low-A"
	LeagueSpring = "Spring"
	LeagueOther  = "other"
)

// MatchesLeague reports whether s belongs to the group named by token.
// An empty, "all" or unrecognized token matches every stadium.
func MatchesLeague(token string, s models.Stadium) bool {
	switch token {
	case LeagueMLB:
		return s.League == "MLB"
	case LeagueAAA:
		return strings.Contains(s.League, "Triple-A") || s.League == "Arizona Fall League"
	case LeagueAA:
		return strings.Contains(s.League, "Double-A")
	case LeagueHighA:
		return strings.Contains(s.League, "High-A")
	case LeagueLowA:
		return strings.Contains(s.League, "Low-A")
	case LeagueSpring:
		return s.League == "Spring Training"
	case LeagueOther:
		return s.Sport != "baseball"
	default:
		return true
	}
}

// IsKnownLeague reports whether token selects a specific group.
func IsKnownLeague(token string) bool {
	switch token {
	case LeagueMLB, LeagueAAA, LeagueAA, LeagueHighA, LeagueLowA, LeagueSpring, LeagueOther:
		return true
	}
	return false
}
