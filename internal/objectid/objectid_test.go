package objectid

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForConferenceFixture(t *testing.T) {
	id := ForConference("Southeastern Conference")

	assert.Equal(t, "795abde05cab42bfc37f11de82f86ec1f9275c24", id.String())
	assert.Len(t, id.String(), StringSize, "SHA-1 hex is 40 characters")
}

func TestForConferenceDeterminism(t *testing.T) {
	id1 := ForConference("Big Ten Conference")
	id2 := ForConference("Big Ten Conference")
	id3 := ForConference("Big 12 Conference")

	assert.Equal(t, id1, id2, "same name must produce same ID")
	assert.NotEqual(t, id1, id3, "different names must produce different IDs")
}

func TestForTeamFixture(t *testing.T) {
	id := ForTeam("Texas A&M")
	assert.Equal(t, "f4bfdc649e8390f5c3529d7e25940f67fee3a61f", id.String())
}

func TestTeamAndConferenceShareNameHash(t *testing.T) {
	// Both hash the bare name. The store keeps them apart by type tag.
	assert.Equal(t, ForConference("Army"), ForTeam("Army"))
}

func TestForGameFixture(t *testing.T) {
	date := time.Date(2013, time.December, 1, 0, 0, 0, 0, time.UTC)
	id := ForGame("Alabama", "LSU", date)

	assert.Equal(t, "a1bbb417067153367d1443d82bc4b65904d8b13a", id.String())
}

func TestForGameIgnoresTimeOfDay(t *testing.T) {
	midnight := time.Date(2013, time.December, 1, 0, 0, 0, 0, time.UTC)
	evening := time.Date(2013, time.December, 1, 19, 45, 12, 500, time.UTC)

	assert.Equal(t, ForGame("Alabama", "LSU", midnight), ForGame("Alabama", "LSU", evening))
}

func TestForGameUsesUTCDate(t *testing.T) {
	// 2013-12-01 02:00 UTC is still November 30 in Chicago.
	chicago := time.FixedZone("CST", -6*60*60)
	local := time.Date(2013, time.November, 30, 20, 0, 0, 0, chicago)
	utc := time.Date(2013, time.December, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, ForGame("Alabama", "LSU", utc), ForGame("Alabama", "LSU", local))
}

func TestForGameIsOrderSensitive(t *testing.T) {
	date := time.Date(2013, time.December, 1, 0, 0, 0, 0, time.UTC)

	assert.NotEqual(t, ForGame("Alabama", "LSU", date), ForGame("LSU", "Alabama", date),
		"home and away are not interchangeable")
	assert.NotEqual(t, ForGame("Alabama", "LSU", date), ForGame("Alabama", "LSU", date.AddDate(0, 0, 1)))
}

func TestEqual(t *testing.T) {
	var a, b ID
	copy(a[:], bytes.Repeat([]byte{0xff}, Size))
	copy(b[:], bytes.Repeat([]byte{0xaf}, Size))

	assert.False(t, a.Equal(b))
	assert.True(t, a.Equal(a))
}

func TestStringify(t *testing.T) {
	var a, b ID
	copy(a[:], bytes.Repeat([]byte{0xff}, Size))
	copy(b[:], bytes.Repeat([]byte{0xaf}, Size))

	assert.Equal(t, string(bytes.Repeat([]byte("f"), StringSize)), a.String())
	assert.Equal(t, string(bytes.Repeat([]byte("af"), Size)), b.String())
}

func TestParseRoundTrip(t *testing.T) {
	id := ForTeam("Alabama")

	parsed, err := Parse(id.String())
	require.NoError(t, err)
	assert.Equal(t, id, parsed)
}

func TestParseRejectsBadInput(t *testing.T) {
	_, err := Parse("795abde0")
	assert.Error(t, err, "too short")

	_, err = Parse("zz5abde05cab42bfc37f11de82f86ec1f9275c24")
	assert.Error(t, err, "not hex")
}

func TestTextMarshaling(t *testing.T) {
	id := ForConference("Sun Belt Conference")

	text, err := id.MarshalText()
	require.NoError(t, err)

	var back ID
	require.NoError(t, back.UnmarshalText(text))
	assert.Equal(t, id, back)
}

func TestBinUsesLeadingBytesBigEndian(t *testing.T) {
	var id ID
	id[0], id[1], id[2], id[3] = 0x12, 0x34, 0x56, 0x78
	id[19] = 0xff // trailing bytes do not matter

	assert.Equal(t, uint32(0x12345678), id.Bin(0xffffffff))
	assert.Equal(t, uint32(0x678), id.Bin(0x7ff))
}

func TestZero(t *testing.T) {
	assert.True(t, Zero.IsZero())
	assert.False(t, ForTeam("Navy").IsZero())
}
