package objectdb

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andybug/predcfb/internal/errs"
	"github.com/andybug/predcfb/internal/model"
	"github.com/andybug/predcfb/internal/objectid"
)

func TestLinkResolvesReferences(t *testing.T) {
	db := createTestDB(t)
	sec := addConference(t, db, "Southeastern Conference", model.FBS)
	bama := addTeam(t, db, "Alabama", sec)
	lsu := addTeam(t, db, "LSU", sec)
	game := addGame(t, db, bama, lsu, time.Date(2013, time.December, 1, 0, 0, 0, 0, time.UTC))

	require.False(t, db.Linked())
	require.NoError(t, db.Link())
	assert.True(t, db.Linked())

	secH, secRec, err := db.GetConference(sec)
	require.NoError(t, err)
	bamaH, bamaRec, err := db.GetTeam(bama)
	require.NoError(t, err)
	lsuH, lsuRec, err := db.GetTeam(lsu)
	require.NoError(t, err)

	assert.Equal(t, secH, bamaRec.Conference)
	assert.Equal(t, secH, lsuRec.Conference)
	assert.Same(t, secRec, db.Conference(bamaRec.Conference), "teams share one conference record")
	assert.Same(t, db.Conference(bamaRec.Conference), db.Conference(lsuRec.Conference))

	_, g, err := db.GetGame(game)
	require.NoError(t, err)
	assert.Equal(t, bamaH, g.Home)
	assert.Equal(t, lsuH, g.Away)
	assert.Same(t, bamaRec, db.Team(g.Home))
	assert.Same(t, lsuRec, db.Team(g.Away))
}

func TestLinkEmptyStore(t *testing.T) {
	db := createTestDB(t)
	require.NoError(t, db.Link())
	assert.True(t, db.Linked())
}

func TestLinkMissingConference(t *testing.T) {
	db := createTestDB(t)
	addTeam(t, db, "Alabama", objectid.ForConference("Southeastern Conference"))

	err := db.Link()
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrLookup)
	assert.Contains(t, err.Error(), "Alabama")
	assert.False(t, db.Linked())
}

func TestLinkConferenceReferenceToTeam(t *testing.T) {
	db := createTestDB(t)
	sec := addConference(t, db, "Southeastern Conference", model.FBS)
	bama := addTeam(t, db, "Alabama", sec)
	// A team whose conference reference points at another team.
	addTeam(t, db, "Auburn", bama)

	err := db.Link()
	assert.ErrorIs(t, err, errs.ErrWrongType)
	assert.False(t, db.Linked())
}

func TestLinkIsRepeatable(t *testing.T) {
	db := createTestDB(t)
	sec := addConference(t, db, "Southeastern Conference", model.FBS)
	bama := addTeam(t, db, "Alabama", sec)

	require.NoError(t, db.Link())
	_, first, err := db.GetTeam(bama)
	require.NoError(t, err)
	h := first.Conference

	require.NoError(t, db.Link())
	assert.Equal(t, h, first.Conference)
}
