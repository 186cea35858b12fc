// Package objectid derives content-addressed identifiers for season records.
//
// An ID is the SHA-1 digest of the fields that define a record. Identical
// source data always produces identical IDs, so two independent runs over the
// same files converge on the same graph.
//
// Derivation (bit exact, no framing or domain prefix):
//   - Conference: SHA1(name)
//   - Team:       SHA1(name)
//   - Game:       SHA1(home name || away name || "YYYY-MM-DD")
//
// The date is rendered in UTC, so the time of day never affects a game ID.
package objectid

import (
	"crypto/sha1"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"time"
)

// Size is the length of an ID in bytes.
const Size = sha1.Size

// StringSize is the length of an ID's hex form.
const StringSize = Size * 2

// DateLayout is the calendar form of a game date inside the digest.
const DateLayout = "2006-01-02"

// ID is a content identifier. Two IDs are equal iff all bytes match, so ==
// works directly.
type ID [Size]byte

// Zero is the all-zero ID. It is a legal digest value, not a sentinel.
var Zero ID

// ForConference derives a conference ID. The subdivision is not part of it.
func ForConference(name string) ID {
	return sha1.Sum([]byte(name))
}

// ForTeam derives a team ID. Conference membership is not part of it.
func ForTeam(name string) ID {
	return sha1.Sum([]byte(name))
}

// ForGame derives a game ID from the team names, not from their IDs.
func ForGame(homeName, awayName string, date time.Time) ID {
	h := sha1.New()
	h.Write([]byte(homeName))
	h.Write([]byte(awayName))
	h.Write([]byte(date.UTC().Format(DateLayout)))

	var id ID
	h.Sum(id[:0])
	return id
}

// String returns the 40-character lowercase hex form.
func (id ID) String() string {
	return hex.EncodeToString(id[:])
}

// Equal reports whether two IDs are identical.
func (id ID) Equal(other ID) bool {
	return id == other
}

// IsZero reports whether every byte is zero.
func (id ID) IsZero() bool {
	return id == Zero
}

// Bin selects a hash-directory bin: the first four bytes read big-endian,
// masked. mask must be a power of two minus one.
func (id ID) Bin(mask uint32) uint32 {
	return binary.BigEndian.Uint32(id[:4]) & mask
}

// MarshalText encodes the ID as hex.
func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText decodes a hex ID.
func (id *ID) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// Parse decodes the 40-character hex form of an ID.
func Parse(s string) (ID, error) {
	var id ID
	if len(s) != StringSize {
		return id, fmt.Errorf("objectid: parse %q: want %d hex characters, got %d", s, StringSize, len(s))
	}
	if _, err := hex.Decode(id[:], []byte(s)); err != nil {
		return id, fmt.Errorf("objectid: parse %q: %w", s, err)
	}
	return id, nil
}

// MustParse is like Parse but panics on error.
// Use only in tests or with literal input.
func MustParse(s string) ID {
	id, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return id
}
