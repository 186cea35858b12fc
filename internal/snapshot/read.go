package snapshot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/andybug/predcfb/internal/model"
	"github.com/andybug/predcfb/internal/objectid"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("snapshot: not found")

// Runs returns every recorded run, oldest first.
//
// Returns an empty slice (not nil) if no runs exist.
func (s *Store) Runs(ctx context.Context) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, started_at, source, conferences, teams, games
		FROM runs
		ORDER BY started_at ASC, id COLLATE BINARY ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	runs := []Run{}
	for rows.Next() {
		var (
			r       Run
			started string
		)
		if err := rows.Scan(&r.ID, &started, &r.Source, &r.Conferences, &r.Teams, &r.Games); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		r.StartedAt, err = time.Parse(time.RFC3339Nano, started)
		if err != nil {
			return nil, fmt.Errorf("parse run %s started_at: %w", r.ID, err)
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}

// Counts returns the number of distinct conferences, teams, and games
// stored across all runs.
func (s *Store) Counts(ctx context.Context) (conferences, teams, games int, err error) {
	err = s.db.QueryRowContext(ctx, `
		SELECT
			(SELECT COUNT(*) FROM conferences),
			(SELECT COUNT(*) FROM teams),
			(SELECT COUNT(*) FROM games)
	`).Scan(&conferences, &teams, &games)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("count entities: %w", err)
	}
	return conferences, teams, games, nil
}

// TeamStats returns the season totals a run recorded for a team.
func (s *Store) TeamStats(ctx context.Context, runID string, team objectid.ID) (model.Stats, error) {
	var st model.Stats
	err := s.db.QueryRowContext(ctx,
		fmt.Sprintf(`SELECT %s FROM team_stats WHERE run_id = ? AND team_id = ?`, strings.Join(statColumns, ", ")),
		runID, team.String(),
	).Scan(statPointers(&st)...)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Stats{}, ErrNotFound
	}
	if err != nil {
		return model.Stats{}, fmt.Errorf("read team stats: %w", err)
	}
	return st, nil
}

// GameStats returns one side's line for a game.
func (s *Store) GameStats(ctx context.Context, game objectid.ID, side string) (model.Stats, error) {
	var st model.Stats
	err := s.db.QueryRowContext(ctx,
		fmt.Sprintf(`SELECT %s FROM game_stats WHERE game_id = ? AND side = ?`, strings.Join(statColumns, ", ")),
		game.String(), side,
	).Scan(statPointers(&st)...)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Stats{}, ErrNotFound
	}
	if err != nil {
		return model.Stats{}, fmt.Errorf("read game stats: %w", err)
	}
	return st, nil
}
