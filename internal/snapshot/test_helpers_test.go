package snapshot

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/andybug/predcfb/internal/model"
	"github.com/andybug/predcfb/internal/objectdb"
	"github.com/andybug/predcfb/internal/objectid"
)

// createTestStore opens a snapshot in a temp dir.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// fixedClock returns a clock that advances one minute per call.
func fixedClock(start time.Time) func() time.Time {
	next := start
	return func() time.Time {
		now := next
		next = next.Add(time.Minute)
		return now
	}
}

var (
	bamaLine = model.Stats{RushAtt: 45, RushYds: 193, RushTDs: 3, Points: 38}
	lsuLine  = model.Stats{RushAtt: 27, RushYds: 145, RushTDs: 1, FumblesLost: 1, Points: 17}
	gameDate = time.Date(2013, time.November, 9, 0, 0, 0, 0, time.UTC)
)

// createTestSeason builds and links a one-game season.
func createTestSeason(t *testing.T) *objectdb.DB {
	t.Helper()
	db, err := objectdb.New(objectdb.DefaultLimits())
	require.NoError(t, err)

	ch, c, err := db.CreateConference()
	require.NoError(t, err)
	c.Name = "Southeastern Conference"
	sec, err := db.AddConference(ch)
	require.NoError(t, err)

	for _, team := range []struct {
		name string
		line model.Stats
	}{{"Alabama", bamaLine}, {"LSU", lsuLine}} {
		h, rec, err := db.CreateTeam()
		require.NoError(t, err)
		rec.Name = team.name
		rec.ConferenceID = sec
		rec.Stats.Add(team.line)
		_, err = db.AddTeam(h)
		require.NoError(t, err)
	}

	gh, g, err := db.CreateGame()
	require.NoError(t, err)
	g.HomeID = objectid.ForTeam("Alabama")
	g.AwayID = objectid.ForTeam("LSU")
	g.Date = gameDate
	g.HomeStats = bamaLine
	g.AwayStats = lsuLine
	_, err = db.AddGame(gh)
	require.NoError(t, err)

	require.NoError(t, db.Link())
	return db
}
