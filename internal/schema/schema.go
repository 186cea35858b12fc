package schema

import (
	"fmt"

	"github.com/andybug/predcfb/internal/errs"
	"github.com/andybug/predcfb/internal/idindex"
	"github.com/andybug/predcfb/internal/objectid"
)

// Row is one tokenized line of a source file. Line 1 is the header.
type Row struct {
	Line   int
	Fields []string
}

// Resolver maps a reference column's source code to a content identifier.
// kind is the column's reference kind, so each source file may keep its own
// code space.
type Resolver interface {
	Resolve(kind Kind, code idindex.Code) (objectid.ID, bool)
}

// Shared returns a Resolver that looks every reference kind up in ids.
func Shared(ids *idindex.Index) Resolver {
	return sharedIndex{ids}
}

type sharedIndex struct {
	ids *idindex.Index
}

func (s sharedIndex) Resolve(_ Kind, code idindex.Code) (objectid.ID, bool) {
	return s.ids.Lookup(code)
}

// Schema is the ordered field list for one source file.
type Schema[T any] struct {
	// Name is the source file the schema describes, e.g. "team.csv".
	Name string

	// Columns is the exact field count every row of the file must have.
	// Columns not named by Fields are ignored.
	Columns int

	Fields []Field[T]
}

// Validate checks the schema's own consistency: field indexes inside
// Columns, every field carrying its setter, and at most one own-code field.
func (s *Schema[T]) Validate() error {
	owners := 0
	for i := range s.Fields {
		f := &s.Fields[i]
		if f.Index < 0 || f.Index >= s.Columns {
			return fmt.Errorf("schema %s: field %q index %d outside %d columns", s.Name, f.Header, f.Index, s.Columns)
		}
		if !f.hasSetter() {
			return fmt.Errorf("schema %s: field %q of kind %s has no setter", s.Name, f.Header, f.Kind)
		}
		if f.Kind == KindText && f.MaxLen <= 0 {
			return fmt.Errorf("schema %s: text field %q has no length bound", s.Name, f.Header)
		}
		if f.Kind.ownsCode() {
			owners++
		}
	}
	if owners > 1 {
		return fmt.Errorf("schema %s: %d own-code fields, at most one allowed", s.Name, owners)
	}
	return nil
}

// HasOwnCode reports whether rows of this schema register a source code.
func (s *Schema[T]) HasOwnCode() bool {
	for i := range s.Fields {
		if s.Fields[i].Kind.ownsCode() {
			return true
		}
	}
	return false
}

// HeaderRow returns a header line matching the schema. Ignored columns are
// left empty.
func (s *Schema[T]) HeaderRow() []string {
	row := make([]string, s.Columns)
	for _, f := range s.Fields {
		row[f.Index] = f.Header
	}
	return row
}

func (s *Schema[T]) checkColumns(row Row) error {
	if len(row.Fields) != s.Columns {
		return errs.New(errs.KindFormat, "%s rows have %d fields, got %d", s.Name, s.Columns, len(row.Fields))
	}
	return nil
}

// CheckHeader verifies a header row against the schema. A wrong field count
// or any header text mismatch is a format error.
func CheckHeader[T any](s *Schema[T], row Row) error {
	if err := s.checkColumns(row); err != nil {
		return err
	}
	for _, f := range s.Fields {
		if got := row.Fields[f.Index]; got != f.Header {
			err := errs.New(errs.KindFormat, "header mismatch: got %q", got)
			return errs.AtColumn(err, f.Index, f.Header)
		}
	}
	return nil
}

// Interpret populates dst from a data row, field by field in schema order,
// and returns the row's own source code (zero when the schema has none).
// The first failing field aborts the row; dst may then be partially written.
func Interpret[T any](s *Schema[T], row Row, dst *T, ids Resolver) (idindex.Code, error) {
	if err := s.checkColumns(row); err != nil {
		return 0, err
	}

	var code idindex.Code
	for i := range s.Fields {
		f := &s.Fields[i]
		if err := f.apply(row.Fields[f.Index], dst, ids, &code); err != nil {
			return 0, errs.AtColumn(err, f.Index, f.Header)
		}
	}
	return code, nil
}

func (f *Field[T]) apply(value string, dst *T, ids Resolver, code *idindex.Code) error {
	switch f.Kind {
	case KindOwnID:
		c, err := parseCode(value)
		if err != nil {
			return err
		}
		*code = c

	case KindOwnCompositeID:
		c, err := PackGameCode(value)
		if err != nil {
			return err
		}
		*code = c

	case KindConferenceRef, KindTeamRef:
		c, err := parseCode(value)
		if err != nil {
			return err
		}
		return f.resolve(c, dst, ids)

	case KindGameRef:
		c, err := PackGameCode(value)
		if err != nil {
			return err
		}
		return f.resolve(c, dst, ids)

	case KindText:
		f.setText(dst, boundText(value, f.MaxLen))

	case KindSmallInt:
		v, err := parseSmallInt(value)
		if err != nil {
			return err
		}
		f.setInt(dst, v)

	case KindDate:
		t, err := parseDate(value)
		if err != nil {
			return err
		}
		f.setDate(dst, t)

	case KindSubdivision:
		sub, err := parseSubdivision(value)
		if err != nil {
			return err
		}
		f.setSubdivision(dst, sub)

	case KindSite:
		neutral, err := parseSite(value)
		if err != nil {
			return err
		}
		f.setBool(dst, neutral)

	default:
		return errs.New(errs.KindFormat, "unknown field kind %d", int(f.Kind))
	}
	return nil
}

func (f *Field[T]) resolve(code idindex.Code, dst *T, ids Resolver) error {
	id, ok := ids.Resolve(f.Kind, code)
	if !ok {
		return errs.New(errs.KindLookup, "%s code %d not registered", refNoun(f.Kind), code)
	}
	f.setID(dst, id)
	return nil
}

func refNoun(k Kind) string {
	switch k {
	case KindConferenceRef:
		return "conference"
	case KindTeamRef:
		return "team"
	case KindGameRef:
		return "game"
	default:
		return k.String()
	}
}
