// Package model defines the season records held by the object store.
//
// This package contains type definitions only. Cross-references start out as
// content identifiers and are resolved to handles by the store's link pass.
// A handle is a 1-based arena index, so the zero handle means "unresolved".
package model

import (
	"time"

	"github.com/andybug/predcfb/internal/objectid"
)

// NameMax bounds conference and team names, in bytes.
const NameMax = 64

// Subdivision is a conference's NCAA division tier.
type Subdivision int

const (
	// FBS is the top tier (Football Bowl Subdivision).
	FBS Subdivision = iota
	// FCS is the second tier (Football Championship Subdivision).
	FCS
)

// String returns the literal used in the source files.
func (s Subdivision) String() string {
	switch s {
	case FBS:
		return "FBS"
	case FCS:
		return "FCS"
	default:
		return "unknown"
	}
}

// ConferenceHandle refers to a stored Conference.
type ConferenceHandle uint32

// TeamHandle refers to a stored Team.
type TeamHandle uint32

// GameHandle refers to a stored Game.
type GameHandle uint32

// Valid reports whether the handle has been resolved.
func (h ConferenceHandle) Valid() bool { return h != 0 }

// Valid reports whether the handle has been resolved.
func (h TeamHandle) Valid() bool { return h != 0 }

// Valid reports whether the handle has been resolved.
func (h GameHandle) Valid() bool { return h != 0 }

// Conference is a group of teams.
type Conference struct {
	Name        string
	Subdivision Subdivision
}

// Team is a school's football program.
type Team struct {
	Name string

	// ConferenceID is set by the parser. Conference is set by the link pass.
	ConferenceID objectid.ID
	Conference   ConferenceHandle

	// Stats is the running season total over every processed game.
	Stats Stats
}

// Game is a single contest between two teams.
type Game struct {
	HomeID objectid.ID
	AwayID objectid.ID

	// Home and Away are set by the link pass.
	Home TeamHandle
	Away TeamHandle

	Neutral bool

	// Date has day granularity and is always UTC midnight when parsed.
	Date time.Time

	HomeStats Stats
	AwayStats Stats
}

// Stats is one team's line for one game, or a season total.
// Per-game values fit in 16 bits; totals are summed into 32 bits.
type Stats struct {
	RushAtt  int32
	RushYds  int32
	RushTDs  int32
	PassAtt  int32
	PassComp int32
	PassYds  int32
	PassTDs  int32
	PassInt  int32

	FieldGoalAtt  int32
	FieldGoalMade int32

	Fumbles     int32
	FumblesLost int32

	Penalties  int32
	PenaltyYds int32

	Points int32
}

// Add accumulates other into s.
func (s *Stats) Add(other Stats) {
	s.RushAtt += other.RushAtt
	s.RushYds += other.RushYds
	s.RushTDs += other.RushTDs

	s.PassAtt += other.PassAtt
	s.PassComp += other.PassComp
	s.PassYds += other.PassYds
	s.PassTDs += other.PassTDs
	s.PassInt += other.PassInt

	s.FieldGoalAtt += other.FieldGoalAtt
	s.FieldGoalMade += other.FieldGoalMade

	s.Fumbles += other.Fumbles
	s.FumblesLost += other.FumblesLost

	s.Penalties += other.Penalties
	s.PenaltyYds += other.PenaltyYds

	s.Points += other.Points
}

// GameLine is the destination record of a per-game statistics row. It is
// never stored; its stats are copied onto the game and added to the team.
type GameLine struct {
	TeamID objectid.ID
	GameID objectid.ID
	Stats  Stats
}
