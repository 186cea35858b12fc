package schema

import (
	"time"

	"github.com/andybug/predcfb/internal/model"
	"github.com/andybug/predcfb/internal/objectid"
)

// Kind is the semantic type of a column.
type Kind int

const (
	// KindOwnID is the record's own integer source code.
	KindOwnID Kind = iota
	// KindOwnCompositeID is the record's own packed game code.
	KindOwnCompositeID
	// KindConferenceRef is a conference code resolved to a content identifier.
	KindConferenceRef
	// KindTeamRef is a team code resolved to a content identifier.
	KindTeamRef
	// KindGameRef is a game code, packed, resolved to a content identifier.
	KindGameRef
	// KindText is a bounded string.
	KindText
	// KindSmallInt is a 16-bit integer.
	KindSmallInt
	// KindDate is an MM/DD/YYYY calendar date at 00:00:00 UTC.
	KindDate
	// KindSubdivision is "FBS" or "FCS".
	KindSubdivision
	// KindSite is "TEAM" (home site) or "NEUTRAL".
	KindSite
)

var kindNames = map[Kind]string{
	KindOwnID:          "own-id",
	KindOwnCompositeID: "own-composite-id",
	KindConferenceRef:  "conference-ref",
	KindTeamRef:        "team-ref",
	KindGameRef:        "game-ref",
	KindText:           "text",
	KindSmallInt:       "small-int",
	KindDate:           "date",
	KindSubdivision:    "subdivision",
	KindSite:           "site",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// ownsCode reports whether the kind yields the row's own source code.
func (k Kind) ownsCode() bool {
	return k == KindOwnID || k == KindOwnCompositeID
}

// Field describes one source column. Build fields with the constructors
// below; exactly one setter matching Kind is populated.
type Field[T any] struct {
	Index  int
	Header string
	Kind   Kind

	// MaxLen bounds KindText values, in bytes.
	MaxLen int

	setID          func(*T, objectid.ID)
	setText        func(*T, string)
	setInt         func(*T, int16)
	setDate        func(*T, time.Time)
	setSubdivision func(*T, model.Subdivision)
	setBool        func(*T, bool)
}

// OwnID declares the column holding the record's integer source code.
func OwnID[T any](index int, header string) Field[T] {
	return Field[T]{Index: index, Header: header, Kind: KindOwnID}
}

// OwnCompositeID declares the column holding the record's game code.
func OwnCompositeID[T any](index int, header string) Field[T] {
	return Field[T]{Index: index, Header: header, Kind: KindOwnCompositeID}
}

// ConferenceRef declares a conference-code column.
func ConferenceRef[T any](index int, header string, set func(*T, objectid.ID)) Field[T] {
	return Field[T]{Index: index, Header: header, Kind: KindConferenceRef, setID: set}
}

// TeamRef declares a team-code column.
func TeamRef[T any](index int, header string, set func(*T, objectid.ID)) Field[T] {
	return Field[T]{Index: index, Header: header, Kind: KindTeamRef, setID: set}
}

// GameRef declares a game-code column.
func GameRef[T any](index int, header string, set func(*T, objectid.ID)) Field[T] {
	return Field[T]{Index: index, Header: header, Kind: KindGameRef, setID: set}
}

// Text declares a string column bounded to maxLen bytes.
func Text[T any](index int, header string, maxLen int, set func(*T, string)) Field[T] {
	return Field[T]{Index: index, Header: header, Kind: KindText, MaxLen: maxLen, setText: set}
}

// SmallInt declares a 16-bit integer column.
func SmallInt[T any](index int, header string, set func(*T, int16)) Field[T] {
	return Field[T]{Index: index, Header: header, Kind: KindSmallInt, setInt: set}
}

// Date declares an MM/DD/YYYY column.
func Date[T any](index int, header string, set func(*T, time.Time)) Field[T] {
	return Field[T]{Index: index, Header: header, Kind: KindDate, setDate: set}
}

// SubdivisionEnum declares an FBS/FCS column.
func SubdivisionEnum[T any](index int, header string, set func(*T, model.Subdivision)) Field[T] {
	return Field[T]{Index: index, Header: header, Kind: KindSubdivision, setSubdivision: set}
}

// Site declares a TEAM/NEUTRAL column; set receives true for a neutral site.
func Site[T any](index int, header string, set func(*T, bool)) Field[T] {
	return Field[T]{Index: index, Header: header, Kind: KindSite, setBool: set}
}

// hasSetter reports whether the setter required by Kind is present.
func (f *Field[T]) hasSetter() bool {
	switch f.Kind {
	case KindOwnID, KindOwnCompositeID:
		return true
	case KindConferenceRef, KindTeamRef, KindGameRef:
		return f.setID != nil
	case KindText:
		return f.setText != nil
	case KindSmallInt:
		return f.setInt != nil
	case KindDate:
		return f.setDate != nil
	case KindSubdivision:
		return f.setSubdivision != nil
	case KindSite:
		return f.setBool != nil
	default:
		return false
	}
}
