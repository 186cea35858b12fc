package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatsAdd(t *testing.T) {
	total := Stats{RushAtt: 30, RushYds: 150, Points: 21, PenaltyYds: 45}
	total.Add(Stats{RushAtt: 41, RushYds: -12, Points: 3, Penalties: 7, PenaltyYds: 60, FieldGoalAtt: 2, FieldGoalMade: 1})

	assert.Equal(t, Stats{
		RushAtt:       71,
		RushYds:       138,
		Points:        24,
		Penalties:     7,
		PenaltyYds:    105,
		FieldGoalAtt:  2,
		FieldGoalMade: 1,
	}, total)
}

func TestSubdivisionString(t *testing.T) {
	assert.Equal(t, "FBS", FBS.String())
	assert.Equal(t, "FCS", FCS.String())
	assert.Equal(t, "unknown", Subdivision(9).String())
}

func TestZeroHandlesAreUnresolved(t *testing.T) {
	var team Team
	var game Game

	assert.False(t, team.Conference.Valid())
	assert.False(t, game.Home.Valid())
	assert.False(t, game.Away.Valid())
	assert.True(t, TeamHandle(1).Valid())
	assert.False(t, GameHandle(0).Valid())
}
