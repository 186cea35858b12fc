// Package errs defines the error taxonomy shared by the ingestion core.
//
// Every failure carries a Kind. Callers classify failures with errors.Is
// against the sentinel values (ErrCapacity, ErrLookup, ...), which match any
// *Error of the same kind regardless of message or location.
package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Kind categorizes an ingestion failure.
type Kind string

const (
	// KindCapacity indicates a fixed-size arena or index is full.
	KindCapacity Kind = "CAPACITY"

	// KindFormat indicates a row's field count or header text is wrong.
	KindFormat Kind = "FORMAT"

	// KindLookup indicates a source code or content identifier was never registered.
	KindLookup Kind = "LOOKUP"

	// KindDuplicate indicates a record or source code was registered twice.
	KindDuplicate Kind = "DUPLICATE"

	// KindParse indicates a column's text could not be converted to its type.
	KindParse Kind = "PARSE"

	// KindWrongType indicates an identifier resolved to an object of another type.
	KindWrongType Kind = "WRONG_TYPE"
)

// Sentinels for errors.Is matching.
var (
	ErrCapacity  = &Error{Kind: KindCapacity}
	ErrFormat    = &Error{Kind: KindFormat}
	ErrLookup    = &Error{Kind: KindLookup}
	ErrDuplicate = &Error{Kind: KindDuplicate}
	ErrParse     = &Error{Kind: KindParse}
	ErrWrongType = &Error{Kind: KindWrongType}
)

// Error is a structured ingestion failure.
//
// Location fields are filled in as the error travels outward: the parser
// knows the column, the row handler knows the file and line. Zero values mean
// "unknown" and are omitted from the message.
type Error struct {
	Kind    Kind
	Message string

	// File is the source file name, e.g. "team.csv".
	File string

	// Line is the 1-based line number within File.
	Line int

	// Column is the 0-based column index, or -1 when not column specific.
	Column int

	// Header is the expected header text of Column.
	Header string

	// Err is the underlying cause, if any.
	Err error
}

// New creates an Error of the given kind that is not tied to a column.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Column:  -1,
	}
}

// Wrap creates an Error of the given kind around a cause.
func Wrap(kind Kind, err error, format string, args ...any) *Error {
	e := New(kind, format, args...)
	e.Err = err
	return e
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(string(e.Kind))
	b.WriteString(": ")
	b.WriteString(e.Message)

	var loc []string
	if e.File != "" {
		loc = append(loc, "file="+e.File)
	}
	if e.Line > 0 {
		loc = append(loc, fmt.Sprintf("line=%d", e.Line))
	}
	if e.Column >= 0 && (e.File != "" || e.Line > 0 || e.Header != "") {
		loc = append(loc, fmt.Sprintf("column=%d", e.Column))
	}
	if e.Header != "" {
		loc = append(loc, fmt.Sprintf("header=%q", e.Header))
	}
	if len(loc) > 0 {
		b.WriteString(" (")
		b.WriteString(strings.Join(loc, ", "))
		b.WriteString(")")
	}

	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf returns the kind of the first *Error in err's chain, or "" if none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// AtColumn records the column position on the first *Error in err's chain.
// Positions already set are left alone so the innermost location wins.
func AtColumn(err error, column int, header string) error {
	var e *Error
	if errors.As(err, &e) {
		if e.Column < 0 {
			e.Column = column
		}
		if e.Header == "" {
			e.Header = header
		}
	}
	return err
}

// AtLine records the file and line on the first *Error in err's chain.
func AtLine(err error, file string, line int) error {
	var e *Error
	if errors.As(err, &e) {
		if e.File == "" {
			e.File = file
		}
		if e.Line == 0 {
			e.Line = line
		}
	}
	return err
}

// IsCapacity reports whether err is a capacity error.
func IsCapacity(err error) bool { return errors.Is(err, ErrCapacity) }

// IsLookup reports whether err is a lookup error.
func IsLookup(err error) bool { return errors.Is(err, ErrLookup) }

// IsDuplicate reports whether err is a duplicate error.
func IsDuplicate(err error) bool { return errors.Is(err, ErrDuplicate) }
