package idindex

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andybug/predcfb/internal/errs"
	"github.com/andybug/predcfb/internal/objectid"
)

func newIndex(t *testing.T, capacity int) *Index {
	t.Helper()
	x, err := New(capacity)
	require.NoError(t, err)
	return x
}

func TestNewRejectsNonPowerOfTwo(t *testing.T) {
	for _, capacity := range []int{0, -4, 3, 100, 4095} {
		_, err := New(capacity)
		assert.Error(t, err, "capacity %d", capacity)
	}

	x, err := New(DefaultCapacity)
	require.NoError(t, err)
	assert.Equal(t, DefaultCapacity, x.Cap())
}

func TestInsertThenLookup(t *testing.T) {
	x := newIndex(t, DefaultCapacity)
	id := objectid.ForTeam("Alabama")

	require.NoError(t, x.Insert(8, id))

	got, ok := x.Lookup(8)
	require.True(t, ok)
	assert.Equal(t, id, got)
	assert.Equal(t, 1, x.Len())
}

func TestLookupMissing(t *testing.T) {
	x := newIndex(t, DefaultCapacity)
	require.NoError(t, x.Insert(8, objectid.ForTeam("Alabama")))

	_, ok := x.Lookup(9)
	assert.False(t, ok)

	_, ok = x.Lookup(8 + DefaultCapacity)
	assert.False(t, ok, "same slot, different code")
}

func TestZeroIsAnOrdinaryCode(t *testing.T) {
	x := newIndex(t, 16)

	_, ok := x.Lookup(0)
	assert.False(t, ok, "empty index has no code zero")

	id := objectid.ForConference("Independent")
	require.NoError(t, x.Insert(0, id))

	got, ok := x.Lookup(0)
	require.True(t, ok)
	assert.Equal(t, id, got)
}

func TestCollidingCodesProbeLinearly(t *testing.T) {
	x := newIndex(t, 8)
	a := objectid.ForTeam("Army")
	b := objectid.ForTeam("Navy")
	c := objectid.ForTeam("Air Force")

	// 3, 11 and 19 all start at slot 3.
	require.NoError(t, x.Insert(3, a))
	require.NoError(t, x.Insert(11, b))
	require.NoError(t, x.Insert(19, c))

	for code, want := range map[Code]objectid.ID{3: a, 11: b, 19: c} {
		got, ok := x.Lookup(code)
		require.True(t, ok, "code %d", code)
		assert.Equal(t, want, got, "code %d", code)
	}
}

func TestProbeWrapsAround(t *testing.T) {
	x := newIndex(t, 4)
	require.NoError(t, x.Insert(3, objectid.ForTeam("a")))
	require.NoError(t, x.Insert(7, objectid.ForTeam("b"))) // wraps to slot 0

	got, ok := x.Lookup(7)
	require.True(t, ok)
	assert.Equal(t, objectid.ForTeam("b"), got)
}

func TestRepeatedCodeKeepsEveryRegistration(t *testing.T) {
	x := newIndex(t, 16)
	first := objectid.ForConference("Sun Belt Conference")
	second := objectid.ForConference("Mountain West Conference")

	require.NoError(t, x.Insert(5, first))
	require.NoError(t, x.Insert(21, objectid.ForTeam("Tulane"))) // same start slot
	require.NoError(t, x.Insert(5, second))
	assert.Equal(t, 3, x.Len())

	got, ok := x.Lookup(5)
	require.True(t, ok)
	assert.Equal(t, first, got, "lookup returns the first registration")

	assert.Equal(t, []objectid.ID{first, second}, slices.Collect(x.Each(5)))
	assert.Empty(t, slices.Collect(x.Each(6)))
}

func TestEachStopsWhenAsked(t *testing.T) {
	x := newIndex(t, 8)
	require.NoError(t, x.Insert(2, objectid.ForTeam("a")))
	require.NoError(t, x.Insert(2, objectid.ForTeam("b")))

	var seen []objectid.ID
	for id := range x.Each(2) {
		seen = append(seen, id)
		break
	}
	assert.Equal(t, []objectid.ID{objectid.ForTeam("a")}, seen)
}

func TestInsertFull(t *testing.T) {
	x := newIndex(t, 4)
	for code := Code(1); code <= 4; code++ {
		require.NoError(t, x.Insert(code, objectid.ForTeam(string(rune('a'+code)))))
	}

	err := x.Insert(5, objectid.ForTeam("overflow"))
	require.Error(t, err)
	assert.True(t, errs.IsCapacity(err))

	_, ok := x.Lookup(99)
	assert.False(t, ok, "lookup on a full table terminates")
}

func TestClear(t *testing.T) {
	x := newIndex(t, 16)
	require.NoError(t, x.Insert(1, objectid.ForTeam("Rice")))
	x.Clear()

	_, ok := x.Lookup(1)
	assert.False(t, ok)
	assert.Equal(t, 0, x.Len())
	require.NoError(t, x.Insert(1, objectid.ForTeam("Rice")), "cleared codes can be registered again")
}
