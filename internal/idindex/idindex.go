// Package idindex maps source-file codes to content identifiers.
//
// The source files reference each other by small per-file integers ("Team
// Code", "Conference Code", packed game codes). Those codes exist before a
// row has been hashed, so the index bridges row order to content identity.
// It lives only for one ingestion run.
//
// The table is open addressed with linear probing over a power-of-two number
// of slots. Every slot carries an explicit used flag, so code zero is an
// ordinary code.
package idindex

import (
	"fmt"
	"iter"

	"github.com/andybug/predcfb/internal/errs"
	"github.com/andybug/predcfb/internal/objectid"
)

// DefaultCapacity is the slot count used by the ingestion loader.
const DefaultCapacity = 4096

// Code is a source-file code: a plain integer or a packed game code.
type Code uint32

type slot struct {
	used bool
	code Code
	id   objectid.ID
}

// Index is a fixed-capacity code → ID table. Not safe for concurrent use.
type Index struct {
	slots []slot
	mask  Code
	count int
}

// New creates an empty index. capacity must be a power of two.
func New(capacity int) (*Index, error) {
	if capacity <= 0 || capacity&(capacity-1) != 0 {
		return nil, fmt.Errorf("idindex: capacity %d is not a power of two", capacity)
	}
	return &Index{
		slots: make([]slot, capacity),
		mask:  Code(capacity - 1),
	}, nil
}

// Clear empties every slot.
func (x *Index) Clear() {
	clear(x.slots)
	x.count = 0
}

// Len returns the number of registered codes.
func (x *Index) Len() int {
	return x.count
}

// Cap returns the slot count.
func (x *Index) Cap() int {
	return len(x.slots)
}

// Insert registers code → id in the first free slot of code's probe
// sequence. A code may be registered more than once: packed game codes
// collide for distinct games played on the same day. Insert fails with a
// capacity error only if every slot is taken.
func (x *Index) Insert(code Code, id objectid.ID) error {
	i := code & x.mask
	for n := 0; n < len(x.slots); n++ {
		s := &x.slots[i]
		if !s.used {
			s.used = true
			s.code = code
			s.id = id
			x.count++
			return nil
		}
		i = (i + 1) & x.mask
	}
	return errs.New(errs.KindCapacity, "source id index full (%d slots)", len(x.slots))
}

// Lookup returns the first ID registered for code.
func (x *Index) Lookup(code Code) (objectid.ID, bool) {
	for id := range x.Each(code) {
		return id, true
	}
	return objectid.ID{}, false
}

// Each yields every ID registered for code, in registration order.
//
// Nothing is ever removed during a run, so reaching an unused slot ends the
// probe early.
func (x *Index) Each(code Code) iter.Seq[objectid.ID] {
	return func(yield func(objectid.ID) bool) {
		i := code & x.mask
		for n := 0; n < len(x.slots); n++ {
			s := &x.slots[i]
			if !s.used {
				return
			}
			if s.code == code && !yield(s.id) {
				return
			}
			i = (i + 1) & x.mask
		}
	}
}
