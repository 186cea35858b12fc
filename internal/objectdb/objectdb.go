package objectdb

import (
	"fmt"

	"github.com/andybug/predcfb/internal/errs"
	"github.com/andybug/predcfb/internal/model"
	"github.com/andybug/predcfb/internal/objectid"
)

// ObjectType tags a directory entry with the arena it points into.
type ObjectType uint8

const (
	TypeConference ObjectType = iota + 1
	TypeTeam
	TypeGame

	numTypes = int(TypeGame) + 1
)

func (t ObjectType) String() string {
	switch t {
	case TypeConference:
		return "conference"
	case TypeTeam:
		return "team"
	case TypeGame:
		return "game"
	default:
		return fmt.Sprintf("ObjectType(%d)", uint8(t))
	}
}

// Limits fixes the capacity of every arena for a run.
type Limits struct {
	Conferences int `json:"conferences"`
	Teams       int `json:"teams"`
	Games       int `json:"games"`
	Objects     int `json:"objects"`

	// Bins is the directory size and must be a power of two.
	Bins int `json:"bins"`
}

// DefaultLimits is sized for one FBS+FCS season.
func DefaultLimits() Limits {
	return Limits{
		Conferences: 32,
		Teams:       256,
		Games:       2048,
		Objects:     4096,
		Bins:        2048,
	}
}

// Validate checks that every capacity is positive and Bins is a power of two.
func (l Limits) Validate() error {
	for name, v := range map[string]int{
		"conferences": l.Conferences,
		"teams":       l.Teams,
		"games":       l.Games,
		"objects":     l.Objects,
		"bins":        l.Bins,
	} {
		if v <= 0 {
			return fmt.Errorf("objectdb: %s limit must be positive, got %d", name, v)
		}
	}
	if l.Bins&(l.Bins-1) != 0 {
		return fmt.Errorf("objectdb: bins limit %d is not a power of two", l.Bins)
	}
	return nil
}

// object is a directory entry.
type object struct {
	id     objectid.ID
	typ    ObjectType
	handle uint32

	// next is the following object handle in the same bin, 0 at the end.
	next uint32
}

// DB is the object store. Not safe for concurrent use.
type DB struct {
	limits Limits

	conferences arena[model.Conference]
	teams       arena[model.Team]
	games       arena[model.Game]
	objects     arena[object]

	bins []uint32
	mask uint32

	counts [numTypes]int
	linked bool
}

// New creates an empty store with the given limits.
func New(limits Limits) (*DB, error) {
	if err := limits.Validate(); err != nil {
		return nil, err
	}
	return &DB{
		limits:      limits,
		conferences: newArena[model.Conference]("conference", limits.Conferences),
		teams:       newArena[model.Team]("team", limits.Teams),
		games:       newArena[model.Game]("game", limits.Games),
		objects:     newArena[object]("object", limits.Objects),
		bins:        make([]uint32, limits.Bins),
		mask:        uint32(limits.Bins - 1),
	}, nil
}

// Limits returns the capacities the store was created with.
func (db *DB) Limits() Limits {
	return db.limits
}

// Clear empties every arena and the directory.
func (db *DB) Clear() {
	db.conferences.reset()
	db.teams.reset()
	db.games.reset()
	db.objects.reset()
	clear(db.bins)
	db.counts = [numTypes]int{}
	db.linked = false
}

// Len returns the number of added records of type t. Created but never
// added records are not counted.
func (db *DB) Len(t ObjectType) int {
	if int(t) >= numTypes {
		return 0
	}
	return db.counts[t]
}

// Objects returns the number of entries in the directory.
func (db *DB) Objects() int {
	return db.objects.len()
}

// Linked reports whether Link has completed since the last Clear.
func (db *DB) Linked() bool {
	return db.linked
}

// insert adds id to the directory. The bin chain is scanned first so a
// duplicate consumes no object slot.
func (db *DB) insert(id objectid.ID, t ObjectType, handle uint32) error {
	bin := id.Bin(db.mask)
	for h := db.bins[bin]; h != 0; {
		o := db.objects.at(h)
		if o.id == id {
			return errs.New(errs.KindDuplicate, "%s %s already stored as %s", t, id, o.typ)
		}
		h = o.next
	}

	h, o, err := db.objects.alloc()
	if err != nil {
		return err
	}
	o.id = id
	o.typ = t
	o.handle = handle
	o.next = db.bins[bin]
	db.bins[bin] = h
	db.counts[t]++
	return nil
}

// find walks id's bin chain.
func (db *DB) find(id objectid.ID) *object {
	for h := db.bins[id.Bin(db.mask)]; h != 0; {
		o := db.objects.at(h)
		if o.id == id {
			return o
		}
		h = o.next
	}
	return nil
}

// lookup resolves id to a handle in the arena of type t.
func (db *DB) lookup(id objectid.ID, t ObjectType) (uint32, error) {
	o := db.find(id)
	if o == nil {
		return 0, errs.New(errs.KindLookup, "%s %s not found", t, id)
	}
	if o.typ != t {
		return 0, errs.New(errs.KindWrongType, "%s is a %s, not a %s", id, o.typ, t)
	}
	return o.handle, nil
}

// Type returns the type tag stored for id.
func (db *DB) Type(id objectid.ID) (ObjectType, bool) {
	o := db.find(id)
	if o == nil {
		return 0, false
	}
	return o.typ, true
}
