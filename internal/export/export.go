// Package export renders a loaded store as a YAML document.
//
// Records appear in insertion order and are keyed by their hex content
// identifiers. Cross-references are written as identifiers, so the document
// is the same whether or not the store has been linked.
package export

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/andybug/predcfb/internal/model"
	"github.com/andybug/predcfb/internal/objectdb"
	"github.com/andybug/predcfb/internal/objectid"
)

// DefaultFile is where the CLI saves the document when no name is given.
const DefaultFile = "predcfb.yml"

// Document is the exported season.
type Document struct {
	Conferences []Conference `yaml:"conferences"`
	Teams       []Team       `yaml:"teams"`
	Games       []Game       `yaml:"games"`
}

// Conference is an exported conference.
type Conference struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Subdivision string `yaml:"subdivision"`
}

// Team is an exported team with its season totals.
type Team struct {
	ID         string `yaml:"id"`
	Name       string `yaml:"name"`
	Conference string `yaml:"conference"`
	Stats      Stats  `yaml:"stats"`
}

// Game is an exported game with both teams' lines.
type Game struct {
	ID        string `yaml:"id"`
	Date      string `yaml:"date"`
	Home      string `yaml:"home"`
	Away      string `yaml:"away"`
	Neutral   bool   `yaml:"neutral"`
	HomeStats Stats  `yaml:"home_stats"`
	AwayStats Stats  `yaml:"away_stats"`
}

// Stats mirrors model.Stats.
type Stats struct {
	RushAtt       int32 `yaml:"rush_att"`
	RushYds       int32 `yaml:"rush_yds"`
	RushTDs       int32 `yaml:"rush_tds"`
	PassAtt       int32 `yaml:"pass_att"`
	PassComp      int32 `yaml:"pass_comp"`
	PassYds       int32 `yaml:"pass_yds"`
	PassTDs       int32 `yaml:"pass_tds"`
	PassInt       int32 `yaml:"pass_int"`
	FieldGoalAtt  int32 `yaml:"field_goal_att"`
	FieldGoalMade int32 `yaml:"field_goal_made"`
	Fumbles       int32 `yaml:"fumbles"`
	FumblesLost   int32 `yaml:"fumbles_lost"`
	Penalties     int32 `yaml:"penalties"`
	PenaltyYds    int32 `yaml:"penalty_yds"`
	Points        int32 `yaml:"points"`
}

func fromStats(s model.Stats) Stats {
	return Stats{
		RushAtt:       s.RushAtt,
		RushYds:       s.RushYds,
		RushTDs:       s.RushTDs,
		PassAtt:       s.PassAtt,
		PassComp:      s.PassComp,
		PassYds:       s.PassYds,
		PassTDs:       s.PassTDs,
		PassInt:       s.PassInt,
		FieldGoalAtt:  s.FieldGoalAtt,
		FieldGoalMade: s.FieldGoalMade,
		Fumbles:       s.Fumbles,
		FumblesLost:   s.FumblesLost,
		Penalties:     s.Penalties,
		PenaltyYds:    s.PenaltyYds,
		Points:        s.Points,
	}
}

// Build collects every stored record into a Document.
func Build(db *objectdb.DB) *Document {
	doc := &Document{
		Conferences: make([]Conference, 0, db.Len(objectdb.TypeConference)),
		Teams:       make([]Team, 0, db.Len(objectdb.TypeTeam)),
		Games:       make([]Game, 0, db.Len(objectdb.TypeGame)),
	}

	for id, c := range db.Conferences() {
		doc.Conferences = append(doc.Conferences, Conference{
			ID:          id.String(),
			Name:        c.Name,
			Subdivision: c.Subdivision.String(),
		})
	}
	for id, t := range db.Teams() {
		doc.Teams = append(doc.Teams, Team{
			ID:         id.String(),
			Name:       t.Name,
			Conference: t.ConferenceID.String(),
			Stats:      fromStats(t.Stats),
		})
	}
	for id, g := range db.Games() {
		doc.Games = append(doc.Games, Game{
			ID:        id.String(),
			Date:      g.Date.UTC().Format(objectid.DateLayout),
			Home:      g.HomeID.String(),
			Away:      g.AwayID.String(),
			Neutral:   g.Neutral,
			HomeStats: fromStats(g.HomeStats),
			AwayStats: fromStats(g.AwayStats),
		})
	}
	return doc
}

// Encode writes doc as YAML with two-space indentation.
func Encode(w io.Writer, doc *Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}

// Save writes the store's document to path, replacing any existing file.
func Save(path string, db *objectdb.DB) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := Encode(f, Build(db)); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Decode reads a document written by Encode.
func Decode(r io.Reader) (*Document, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	return &doc, nil
}
