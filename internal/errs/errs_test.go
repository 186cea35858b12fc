package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorIsMatchesKind(t *testing.T) {
	err := New(KindLookup, "team code %d not registered", 42)

	assert.True(t, errors.Is(err, ErrLookup))
	assert.False(t, errors.Is(err, ErrCapacity))
	assert.True(t, IsLookup(err))
	assert.False(t, IsDuplicate(err))
}

func TestErrorIsThroughWrapping(t *testing.T) {
	inner := New(KindDuplicate, "conference already stored")
	wrapped := fmt.Errorf("add conference: %w", inner)

	assert.True(t, IsDuplicate(wrapped))
	assert.Equal(t, KindDuplicate, KindOf(wrapped))
	assert.Equal(t, Kind(""), KindOf(errors.New("plain")))
}

func TestErrorMessageIncludesLocation(t *testing.T) {
	err := New(KindParse, "not an integer")
	AtColumn(err, 3, "Rush Yard")
	AtLine(err, "team-game-statistics.csv", 17)

	assert.Equal(t,
		`PARSE: not an integer (file=team-game-statistics.csv, line=17, column=3, header="Rush Yard")`,
		err.Error())
}

func TestErrorMessageWithoutLocation(t *testing.T) {
	err := New(KindCapacity, "team arena full (max 256)")
	assert.Equal(t, "CAPACITY: team arena full (max 256)", err.Error())
}

func TestInnermostLocationWins(t *testing.T) {
	err := New(KindFormat, "header mismatch")
	AtColumn(err, 1, "Name")
	AtColumn(err, 2, "Subdivision")
	AtLine(err, "conference.csv", 1)
	AtLine(err, "team.csv", 9)

	assert.Equal(t, 1, err.Column)
	assert.Equal(t, "Name", err.Header)
	assert.Equal(t, "conference.csv", err.File)
	assert.Equal(t, 1, err.Line)
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("strconv: invalid syntax")
	err := Wrap(KindParse, cause, "column is not an integer")

	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, ErrParse)
	assert.Contains(t, err.Error(), "invalid syntax")
}
