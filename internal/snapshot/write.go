package snapshot

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/andybug/predcfb/internal/model"
	"github.com/andybug/predcfb/internal/objectdb"
	"github.com/andybug/predcfb/internal/objectid"
)

// Sides of a game line.
const (
	SideHome = "home"
	SideAway = "away"
)

// statColumns lists the stats columns in model.Stats field order.
var statColumns = []string{
	"rush_att", "rush_yds", "rush_tds",
	"pass_att", "pass_comp", "pass_yds", "pass_tds", "pass_int",
	"field_goal_att", "field_goal_made",
	"fumbles", "fumbles_lost",
	"penalties", "penalty_yds",
	"points",
}

func statValues(s model.Stats) []any {
	return []any{
		s.RushAtt, s.RushYds, s.RushTDs,
		s.PassAtt, s.PassComp, s.PassYds, s.PassTDs, s.PassInt,
		s.FieldGoalAtt, s.FieldGoalMade,
		s.Fumbles, s.FumblesLost,
		s.Penalties, s.PenaltyYds,
		s.Points,
	}
}

func statPointers(s *model.Stats) []any {
	return []any{
		&s.RushAtt, &s.RushYds, &s.RushTDs,
		&s.PassAtt, &s.PassComp, &s.PassYds, &s.PassTDs, &s.PassInt,
		&s.FieldGoalAtt, &s.FieldGoalMade,
		&s.Fumbles, &s.FumblesLost,
		&s.Penalties, &s.PenaltyYds,
		&s.Points,
	}
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

var (
	insertGameStatsSQL = fmt.Sprintf(`
		INSERT INTO game_stats (game_id, side, %s)
		VALUES (?, ?, %s)
		ON CONFLICT(game_id, side) DO NOTHING
	`, strings.Join(statColumns, ", "), placeholders(len(statColumns)))

	insertTeamStatsSQL = fmt.Sprintf(`
		INSERT INTO team_stats (run_id, team_id, %s)
		VALUES (?, ?, %s)
		ON CONFLICT(run_id, team_id) DO NOTHING
	`, strings.Join(statColumns, ", "), placeholders(len(statColumns)))
)

// Run is one recorded load.
type Run struct {
	ID          string
	StartedAt   time.Time
	Source      string
	Conferences int
	Teams       int
	Games       int
}

// WriteRun writes every record in db and a run row for this load, in one
// transaction. Records already present from an earlier run are left as is.
func (s *Store) WriteRun(ctx context.Context, db *objectdb.DB, source string) (Run, error) {
	run := Run{
		ID:          s.runID.Generate(),
		StartedAt:   s.now().UTC(),
		Source:      source,
		Conferences: db.Len(objectdb.TypeConference),
		Teams:       db.Len(objectdb.TypeTeam),
		Games:       db.Len(objectdb.TypeGame),
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Run{}, fmt.Errorf("write run: begin tx: %w", err)
	}
	defer tx.Rollback() // No-op if committed

	if err := writeEntities(ctx, tx, db); err != nil {
		return Run{}, fmt.Errorf("write run: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs (id, started_at, source, conferences, teams, games)
		VALUES (?, ?, ?, ?, ?, ?)
	`,
		run.ID,
		run.StartedAt.Format(time.RFC3339Nano),
		run.Source,
		run.Conferences,
		run.Teams,
		run.Games,
	)
	if err != nil {
		return Run{}, fmt.Errorf("write run: insert run: %w", err)
	}

	for id, t := range db.Teams() {
		args := append([]any{run.ID, id.String()}, statValues(t.Stats)...)
		if _, err := tx.ExecContext(ctx, insertTeamStatsSQL, args...); err != nil {
			return Run{}, fmt.Errorf("write run: team stats %s: %w", t.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return Run{}, fmt.Errorf("write run: commit: %w", err)
	}
	return run, nil
}

// writeEntities inserts conferences, teams, games, and game lines in
// reference order.
func writeEntities(ctx context.Context, tx *sql.Tx, db *objectdb.DB) error {
	for id, c := range db.Conferences() {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO conferences (id, name, subdivision)
			VALUES (?, ?, ?)
			ON CONFLICT(id) DO NOTHING
		`, id.String(), c.Name, c.Subdivision.String())
		if err != nil {
			return fmt.Errorf("conference %s: %w", c.Name, err)
		}
	}

	for id, t := range db.Teams() {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO teams (id, name, conference_id)
			VALUES (?, ?, ?)
			ON CONFLICT(id) DO NOTHING
		`, id.String(), t.Name, t.ConferenceID.String())
		if err != nil {
			return fmt.Errorf("team %s: %w", t.Name, err)
		}
	}

	for id, g := range db.Games() {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO games (id, date, home_id, away_id, neutral)
			VALUES (?, ?, ?, ?, ?)
			ON CONFLICT(id) DO NOTHING
		`, id.String(), g.Date.UTC().Format(objectid.DateLayout), g.HomeID.String(), g.AwayID.String(), g.Neutral)
		if err != nil {
			return fmt.Errorf("game %s: %w", id, err)
		}

		for _, line := range []struct {
			side  string
			stats model.Stats
		}{{SideHome, g.HomeStats}, {SideAway, g.AwayStats}} {
			args := append([]any{id.String(), line.side}, statValues(line.stats)...)
			if _, err := tx.ExecContext(ctx, insertGameStatsSQL, args...); err != nil {
				return fmt.Errorf("game %s %s stats: %w", id, line.side, err)
			}
		}
	}
	return nil
}
