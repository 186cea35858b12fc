package objectdb

import (
	"github.com/andybug/predcfb/internal/errs"
)

// arena is a fixed-capacity slab addressed by 1-based handles.
type arena[T any] struct {
	name  string
	items []T
}

func newArena[T any](name string, capacity int) arena[T] {
	return arena[T]{name: name, items: make([]T, 0, capacity)}
}

// alloc returns the next zeroed slot. The backing array never reallocates.
func (a *arena[T]) alloc() (uint32, *T, error) {
	if len(a.items) == cap(a.items) {
		return 0, nil, errs.New(errs.KindCapacity, "%s arena full (max %d)", a.name, cap(a.items))
	}
	var zero T
	a.items = append(a.items, zero)
	return uint32(len(a.items)), &a.items[len(a.items)-1], nil
}

// at returns the slot for h, or nil if h was never allocated.
func (a *arena[T]) at(h uint32) *T {
	if h == 0 || int(h) > len(a.items) {
		return nil
	}
	return &a.items[h-1]
}

func (a *arena[T]) len() int { return len(a.items) }

func (a *arena[T]) reset() {
	clear(a.items)
	a.items = a.items[:0]
}
