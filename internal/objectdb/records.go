package objectdb

import (
	"iter"

	"github.com/andybug/predcfb/internal/errs"
	"github.com/andybug/predcfb/internal/model"
	"github.com/andybug/predcfb/internal/objectid"
)

// CreateConference allocates a zeroed conference for the caller to populate.
func (db *DB) CreateConference() (model.ConferenceHandle, *model.Conference, error) {
	h, c, err := db.conferences.alloc()
	return model.ConferenceHandle(h), c, err
}

// AddConference hashes the conference's name and stores it.
func (db *DB) AddConference(h model.ConferenceHandle) (objectid.ID, error) {
	c := db.conferences.at(uint32(h))
	if c == nil {
		return objectid.ID{}, errs.New(errs.KindLookup, "conference handle %d not allocated", h)
	}
	id := objectid.ForConference(c.Name)
	if err := db.insert(id, TypeConference, uint32(h)); err != nil {
		return objectid.ID{}, err
	}
	return id, nil
}

// GetConference returns the stored conference with the given ID.
func (db *DB) GetConference(id objectid.ID) (model.ConferenceHandle, *model.Conference, error) {
	h, err := db.lookup(id, TypeConference)
	if err != nil {
		return 0, nil, err
	}
	return model.ConferenceHandle(h), db.conferences.at(h), nil
}

// Conference returns the record for h, or nil.
func (db *DB) Conference(h model.ConferenceHandle) *model.Conference {
	return db.conferences.at(uint32(h))
}

// CreateTeam allocates a zeroed team for the caller to populate.
func (db *DB) CreateTeam() (model.TeamHandle, *model.Team, error) {
	h, t, err := db.teams.alloc()
	return model.TeamHandle(h), t, err
}

// AddTeam hashes the team's name and stores it.
func (db *DB) AddTeam(h model.TeamHandle) (objectid.ID, error) {
	t := db.teams.at(uint32(h))
	if t == nil {
		return objectid.ID{}, errs.New(errs.KindLookup, "team handle %d not allocated", h)
	}
	id := objectid.ForTeam(t.Name)
	if err := db.insert(id, TypeTeam, uint32(h)); err != nil {
		return objectid.ID{}, err
	}
	return id, nil
}

// GetTeam returns the stored team with the given ID.
func (db *DB) GetTeam(id objectid.ID) (model.TeamHandle, *model.Team, error) {
	h, err := db.lookup(id, TypeTeam)
	if err != nil {
		return 0, nil, err
	}
	return model.TeamHandle(h), db.teams.at(h), nil
}

// Team returns the record for h, or nil.
func (db *DB) Team(h model.TeamHandle) *model.Team {
	return db.teams.at(uint32(h))
}

// CreateGame allocates a zeroed game for the caller to populate.
func (db *DB) CreateGame() (model.GameHandle, *model.Game, error) {
	h, g, err := db.games.alloc()
	return model.GameHandle(h), g, err
}

// AddGame stores a game. Its ID is derived from the home and away team
// names, so both teams must already be stored.
func (db *DB) AddGame(h model.GameHandle) (objectid.ID, error) {
	g := db.games.at(uint32(h))
	if g == nil {
		return objectid.ID{}, errs.New(errs.KindLookup, "game handle %d not allocated", h)
	}
	_, home, err := db.GetTeam(g.HomeID)
	if err != nil {
		return objectid.ID{}, err
	}
	_, away, err := db.GetTeam(g.AwayID)
	if err != nil {
		return objectid.ID{}, err
	}

	id := objectid.ForGame(home.Name, away.Name, g.Date)
	if err := db.insert(id, TypeGame, uint32(h)); err != nil {
		return objectid.ID{}, err
	}
	return id, nil
}

// GetGame returns the stored game with the given ID.
func (db *DB) GetGame(id objectid.ID) (model.GameHandle, *model.Game, error) {
	h, err := db.lookup(id, TypeGame)
	if err != nil {
		return 0, nil, err
	}
	return model.GameHandle(h), db.games.at(h), nil
}

// Game returns the record for h, or nil.
func (db *DB) Game(h model.GameHandle) *model.Game {
	return db.games.at(uint32(h))
}

// Conferences yields stored conferences in insertion order.
func (db *DB) Conferences() iter.Seq2[objectid.ID, *model.Conference] {
	return func(yield func(objectid.ID, *model.Conference) bool) {
		for o := range db.each(TypeConference) {
			if !yield(o.id, db.conferences.at(o.handle)) {
				return
			}
		}
	}
}

// Teams yields stored teams in insertion order.
func (db *DB) Teams() iter.Seq2[objectid.ID, *model.Team] {
	return func(yield func(objectid.ID, *model.Team) bool) {
		for o := range db.each(TypeTeam) {
			if !yield(o.id, db.teams.at(o.handle)) {
				return
			}
		}
	}
}

// Games yields stored games in insertion order.
func (db *DB) Games() iter.Seq2[objectid.ID, *model.Game] {
	return func(yield func(objectid.ID, *model.Game) bool) {
		for o := range db.each(TypeGame) {
			if !yield(o.id, db.games.at(o.handle)) {
				return
			}
		}
	}
}

// each yields directory entries of type t in insertion order.
func (db *DB) each(t ObjectType) iter.Seq[*object] {
	return func(yield func(*object) bool) {
		for i := range db.objects.items {
			o := &db.objects.items[i]
			if o.typ != t {
				continue
			}
			if !yield(o) {
				return
			}
		}
	}
}
