// Package cfbstats binds the cfbstats.com season export to the object store.
//
// A season archive holds four CSV files that reference each other by small
// integer codes. They must be ingested in the order given by Files: each
// file's codes are registered in the id index before the next file refers to
// them.
package cfbstats

import (
	"time"

	"github.com/andybug/predcfb/internal/model"
	"github.com/andybug/predcfb/internal/objectid"
	"github.com/andybug/predcfb/internal/schema"
)

// Source file names.
const (
	FileConference = "conference.csv"
	FileTeam       = "team.csv"
	FileGame       = "game.csv"
	FileStats      = "team-game-statistics.csv"
)

// Files returns the source files in ingestion order.
func Files() []string {
	return []string{FileConference, FileTeam, FileGame, FileStats}
}

// ConferenceSchema describes conference.csv.
var ConferenceSchema = &schema.Schema[model.Conference]{
	Name:    FileConference,
	Columns: 3,
	Fields: []schema.Field[model.Conference]{
		schema.OwnID[model.Conference](0, "Conference Code"),
		schema.Text(1, "Name", model.NameMax, func(c *model.Conference, v string) { c.Name = v }),
		schema.SubdivisionEnum(2, "Subdivision", func(c *model.Conference, v model.Subdivision) { c.Subdivision = v }),
	},
}

// TeamSchema describes team.csv.
var TeamSchema = &schema.Schema[model.Team]{
	Name:    FileTeam,
	Columns: 3,
	Fields: []schema.Field[model.Team]{
		schema.OwnID[model.Team](0, "Team Code"),
		schema.Text(1, "Name", model.NameMax, func(t *model.Team, v string) { t.Name = v }),
		schema.ConferenceRef(2, "Conference Code", func(t *model.Team, id objectid.ID) { t.ConferenceID = id }),
	},
}

// GameSchema describes game.csv. Column 4 (Stadium Code) is ignored.
var GameSchema = &schema.Schema[model.Game]{
	Name:    FileGame,
	Columns: 6,
	Fields: []schema.Field[model.Game]{
		schema.OwnCompositeID[model.Game](0, "Game Code"),
		schema.Date(1, "Date", func(g *model.Game, v time.Time) { g.Date = v }),
		schema.TeamRef(2, "Visit Team Code", func(g *model.Game, id objectid.ID) { g.AwayID = id }),
		schema.TeamRef(3, "Home Team Code", func(g *model.Game, id objectid.ID) { g.HomeID = id }),
		schema.Site(5, "Site", func(g *model.Game, neutral bool) { g.Neutral = neutral }),
	},
}

// statsGameColumn is the game code column of team-game-statistics.csv.
const statsGameColumn = 1

// StatsSchema describes team-game-statistics.csv. Only the columns the
// model tracks are read.
var StatsSchema = &schema.Schema[model.GameLine]{
	Name:    FileStats,
	Columns: 68,
	Fields: []schema.Field[model.GameLine]{
		schema.TeamRef(0, "Team Code", func(l *model.GameLine, id objectid.ID) { l.TeamID = id }),
		schema.GameRef(statsGameColumn, "Game Code", func(l *model.GameLine, id objectid.ID) { l.GameID = id }),
		stat(2, "Rush Att", func(s *model.Stats) *int32 { return &s.RushAtt }),
		stat(3, "Rush Yard", func(s *model.Stats) *int32 { return &s.RushYds }),
		stat(4, "Rush TD", func(s *model.Stats) *int32 { return &s.RushTDs }),
		stat(5, "Pass Att", func(s *model.Stats) *int32 { return &s.PassAtt }),
		stat(6, "Pass Comp", func(s *model.Stats) *int32 { return &s.PassComp }),
		stat(7, "Pass Yard", func(s *model.Stats) *int32 { return &s.PassYds }),
		stat(8, "Pass TD", func(s *model.Stats) *int32 { return &s.PassTDs }),
		stat(9, "Pass Int", func(s *model.Stats) *int32 { return &s.PassInt }),
		stat(26, "Field Goal Att", func(s *model.Stats) *int32 { return &s.FieldGoalAtt }),
		stat(27, "Field Goal Made", func(s *model.Stats) *int32 { return &s.FieldGoalMade }),
		stat(35, "Points", func(s *model.Stats) *int32 { return &s.Points }),
		stat(43, "Fumble", func(s *model.Stats) *int32 { return &s.Fumbles }),
		stat(44, "Fumble Lost", func(s *model.Stats) *int32 { return &s.FumblesLost }),
		stat(59, "Penalty", func(s *model.Stats) *int32 { return &s.Penalties }),
		stat(60, "Penalty Yard", func(s *model.Stats) *int32 { return &s.PenaltyYds }),
	},
}

// stat declares a 16-bit stats column stored into the field sel picks.
func stat(index int, header string, sel func(*model.Stats) *int32) schema.Field[model.GameLine] {
	return schema.SmallInt(index, header, func(l *model.GameLine, v int16) {
		*sel(&l.Stats) = int32(v)
	})
}
