package objectdb

import (
	"fmt"
)

// Link resolves every stored cross-reference into a handle: each team's
// conference and each game's home and away teams. It runs once after all
// files are ingested. A reference to an identifier that was never stored is
// a lookup error and leaves the store unlinked.
func (db *DB) Link() error {
	for o := range db.each(TypeTeam) {
		t := db.teams.at(o.handle)
		h, _, err := db.GetConference(t.ConferenceID)
		if err != nil {
			return fmt.Errorf("link team %q: %w", t.Name, err)
		}
		t.Conference = h
	}

	for o := range db.each(TypeGame) {
		g := db.games.at(o.handle)
		home, _, err := db.GetTeam(g.HomeID)
		if err != nil {
			return fmt.Errorf("link game %s home team: %w", o.id, err)
		}
		away, _, err := db.GetTeam(g.AwayID)
		if err != nil {
			return fmt.Errorf("link game %s away team: %w", o.id, err)
		}
		g.Home = home
		g.Away = away
	}

	db.linked = true
	return nil
}
