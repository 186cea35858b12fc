package cfbstats

import (
	"fmt"
	"log/slog"

	"github.com/andybug/predcfb/internal/errs"
	"github.com/andybug/predcfb/internal/idindex"
	"github.com/andybug/predcfb/internal/model"
	"github.com/andybug/predcfb/internal/objectdb"
	"github.com/andybug/predcfb/internal/objectid"
	"github.com/andybug/predcfb/internal/schema"
)

// codeSpaces holds one source-code index per referenced file. Conference,
// team, and game codes are independent sequences and may share values.
type codeSpaces struct {
	conferences *idindex.Index
	teams       *idindex.Index
	games       *idindex.Index
}

func newCodeSpaces(capacity int) (codeSpaces, error) {
	var c codeSpaces
	for _, dst := range []**idindex.Index{&c.conferences, &c.teams, &c.games} {
		ix, err := idindex.New(capacity)
		if err != nil {
			return codeSpaces{}, err
		}
		*dst = ix
	}
	return c, nil
}

// Resolve implements schema.Resolver.
func (c codeSpaces) Resolve(kind schema.Kind, code idindex.Code) (objectid.ID, bool) {
	switch kind {
	case schema.KindConferenceRef:
		return c.conferences.Lookup(code)
	case schema.KindTeamRef:
		return c.teams.Lookup(code)
	case schema.KindGameRef:
		return c.games.Lookup(code)
	default:
		return objectid.ID{}, false
	}
}

func (c codeSpaces) clear() {
	c.conferences.Clear()
	c.teams.Clear()
	c.games.Clear()
}

type validator interface {
	Validate() error
}

// validateSchemas checks that every schema is internally consistent.
func validateSchemas(schemas ...validator) error {
	for _, s := range schemas {
		if err := s.Validate(); err != nil {
			return fmt.Errorf("cfbstats: %w", err)
		}
	}
	return nil
}

// fileHandler is the dispatch entry for one source file.
type fileHandler struct {
	header func(schema.Row) error
	row    func(schema.Row) error
}

// headerCheck binds a schema to schema.CheckHeader.
func headerCheck[T any](s *schema.Schema[T]) func(schema.Row) error {
	return func(row schema.Row) error {
		return schema.CheckHeader(s, row)
	}
}

// Summary counts what a run ingested.
type Summary struct {
	Conferences int `json:"conferences"`
	Teams       int `json:"teams"`
	Games       int `json:"games"`
	StatLines   int `json:"stat_lines"`
	Objects     int `json:"objects"`
}

// Loader feeds tokenized rows from the season files into an object store.
// Not safe for concurrent use.
type Loader struct {
	db     *objectdb.DB
	codes  codeSpaces
	logger *slog.Logger

	files     map[string]fileHandler
	statLines int
}

// NewLoader creates a loader writing into db. indexCapacity sizes each
// source-code index and must be a power of two. A nil logger uses
// slog.Default().
func NewLoader(db *objectdb.DB, indexCapacity int, logger *slog.Logger) (*Loader, error) {
	if err := validateSchemas(ConferenceSchema, TeamSchema, GameSchema, StatsSchema); err != nil {
		return nil, err
	}
	codes, err := newCodeSpaces(indexCapacity)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}

	l := &Loader{
		db:     db,
		codes:  codes,
		logger: logger,
	}
	l.files = map[string]fileHandler{
		FileConference: {header: headerCheck(ConferenceSchema), row: l.handleConference},
		FileTeam:       {header: headerCheck(TeamSchema), row: l.handleTeam},
		FileGame:       {header: headerCheck(GameSchema), row: l.handleGame},
		FileStats:      {header: headerCheck(StatsSchema), row: l.handleStats},
	}
	return l, nil
}

// Reset clears the store and every code index before a new run.
func (l *Loader) Reset() {
	l.db.Clear()
	l.codes.clear()
	l.statLines = 0
}

// DB returns the store the loader writes into.
func (l *Loader) DB() *objectdb.DB {
	return l.db
}

// HandleRow dispatches one row of file. Line 1 is checked against the
// file's header; later lines are interpreted and stored. Errors carry the
// file name and line.
func (l *Loader) HandleRow(file string, row schema.Row) error {
	h, ok := l.files[file]
	if !ok {
		return errs.New(errs.KindFormat, "no handler for file %q", file)
	}

	var err error
	if row.Line == 1 {
		err = h.header(row)
		if err == nil {
			l.logger.Debug("reading file", "file", file, "columns", len(row.Fields))
		}
	} else {
		err = h.row(row)
	}
	if err != nil {
		return errs.AtLine(err, file, row.Line)
	}
	return nil
}

// Link resolves every stored cross-reference. Call it once after the last
// file.
func (l *Loader) Link() error {
	if err := l.db.Link(); err != nil {
		return fmt.Errorf("link: %w", err)
	}
	l.logger.Debug("store linked", "objects", l.db.Objects())
	return nil
}

// Summary reports the current record counts.
func (l *Loader) Summary() Summary {
	return Summary{
		Conferences: l.db.Len(objectdb.TypeConference),
		Teams:       l.db.Len(objectdb.TypeTeam),
		Games:       l.db.Len(objectdb.TypeGame),
		StatLines:   l.statLines,
		Objects:     l.db.Objects(),
	}
}

func (l *Loader) handleConference(row schema.Row) error {
	h, c, err := l.db.CreateConference()
	if err != nil {
		return err
	}
	code, err := schema.Interpret(ConferenceSchema, row, c, l.codes)
	if err != nil {
		return err
	}
	if _, ok := l.codes.conferences.Lookup(code); ok {
		return errs.New(errs.KindDuplicate, "conference code %d already registered", code)
	}
	id, err := l.db.AddConference(h)
	if err != nil {
		return err
	}
	return l.codes.conferences.Insert(code, id)
}

func (l *Loader) handleTeam(row schema.Row) error {
	h, t, err := l.db.CreateTeam()
	if err != nil {
		return err
	}
	code, err := schema.Interpret(TeamSchema, row, t, l.codes)
	if err != nil {
		return err
	}
	if _, ok := l.codes.teams.Lookup(code); ok {
		return errs.New(errs.KindDuplicate, "team code %d already registered", code)
	}
	id, err := l.db.AddTeam(h)
	if err != nil {
		return err
	}
	return l.codes.teams.Insert(code, id)
}

func (l *Loader) handleGame(row schema.Row) error {
	h, g, err := l.db.CreateGame()
	if err != nil {
		return err
	}
	code, err := schema.Interpret(GameSchema, row, g, l.codes)
	if err != nil {
		return err
	}
	id, err := l.db.AddGame(h)
	if err != nil {
		return err
	}
	// Distinct games on the same day may pack to the same code; the stats
	// handler tells them apart by team.
	return l.codes.games.Insert(code, id)
}

// handleStats copies a team's game line onto the side of the game it played
// and adds it to the team's season totals.
func (l *Loader) handleStats(row schema.Row) error {
	var line model.GameLine
	if _, err := schema.Interpret(StatsSchema, row, &line, l.codes); err != nil {
		return err
	}

	_, t, err := l.db.GetTeam(line.TeamID)
	if err != nil {
		return err
	}
	id, g, err := l.gameFor(row.Fields[statsGameColumn], line.TeamID)
	if err != nil {
		return err
	}
	if g == nil {
		return errs.New(errs.KindLookup, "team %q did not play game %s", t.Name, row.Fields[statsGameColumn])
	}
	line.GameID = id

	if line.TeamID == g.HomeID {
		g.HomeStats = line.Stats
	} else {
		g.AwayStats = line.Stats
	}

	t.Stats.Add(line.Stats)
	l.statLines++
	return nil
}

// gameFor returns the game registered under the packed game code that team
// played in, or a nil game if none of the candidates involves team.
func (l *Loader) gameFor(gameCode string, team objectid.ID) (objectid.ID, *model.Game, error) {
	code, err := schema.PackGameCode(gameCode)
	if err != nil {
		return objectid.ID{}, nil, errs.AtColumn(err, statsGameColumn, "Game Code")
	}
	for id := range l.codes.games.Each(code) {
		_, g, err := l.db.GetGame(id)
		if err != nil {
			return objectid.ID{}, nil, err
		}
		if g.HomeID == team || g.AwayID == team {
			return id, g, nil
		}
	}
	return objectid.ID{}, nil, nil
}
