package schema

import (
	"strconv"
	"time"

	"golang.org/x/text/unicode/norm"

	"github.com/andybug/predcfb/internal/errs"
	"github.com/andybug/predcfb/internal/idindex"
	"github.com/andybug/predcfb/internal/model"
)

// DateLayout is the source-file date form. Times are assumed 00:00:00 UTC.
const DateLayout = "01/02/2006"

// GameCodeMinLen is the shortest valid game code.
const GameCodeMinLen = 16

// Site literals.
const (
	SiteTeam    = "TEAM"
	SiteNeutral = "NEUTRAL"
)

func parseCode(s string) (idindex.Code, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, errs.Wrap(errs.KindParse, err, "%q is not a source code", s)
	}
	return idindex.Code(v), nil
}

func parseSmallInt(s string) (int16, error) {
	v, err := strconv.ParseInt(s, 10, 16)
	if err != nil {
		return 0, errs.Wrap(errs.KindParse, err, "%q is not a 16-bit integer", s)
	}
	return int16(v), nil
}

func parseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, errs.Wrap(errs.KindParse, err, "%q is not an MM/DD/YYYY date", s)
	}
	return t, nil
}

func parseSubdivision(s string) (model.Subdivision, error) {
	switch s {
	case "FBS":
		return model.FBS, nil
	case "FCS":
		return model.FCS, nil
	default:
		return 0, errs.New(errs.KindParse, "invalid subdivision %q", s)
	}
}

func parseSite(s string) (bool, error) {
	switch s {
	case SiteTeam:
		return false, nil
	case SiteNeutral:
		return true, nil
	default:
		return false, errs.New(errs.KindParse, "invalid game site %q", s)
	}
}

// boundText cuts s to at most maxLen bytes without splitting a character or
// a combining sequence. The bytes kept are the source bytes; identifiers
// hash them as read.
func boundText(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}

	n := 0
	for n < len(s) {
		seg := norm.NFC.NextBoundaryInString(s[n:], true)
		if seg <= 0 || n+seg > maxLen {
			break
		}
		n += seg
	}
	return s[:n]
}

// PackGameCode folds a [team1:4][team2:4][yyyy:4][mmdd:4] game code into 32
// bits: team1 XOR team2 in the upper half, mmdd in the lower half. The year
// is not used. Swapping the two team substrings yields the same code.
func PackGameCode(s string) (idindex.Code, error) {
	if len(s) < GameCodeMinLen {
		return 0, errs.New(errs.KindParse, "game code %q shorter than %d characters", s, GameCodeMinLen)
	}

	team1, err := parseDecimal(s, s[0:4])
	if err != nil {
		return 0, err
	}
	team2, err := parseDecimal(s, s[4:8])
	if err != nil {
		return 0, err
	}
	mmdd, err := parseDecimal(s, s[12:16])
	if err != nil {
		return 0, err
	}

	code := ((team1 << 16) ^ (team2 << 16)) & 0xffff0000
	code |= mmdd & 0x0000ffff
	return idindex.Code(code), nil
}

func parseDecimal(code, part string) (uint32, error) {
	v, err := strconv.ParseUint(part, 10, 32)
	if err != nil {
		return 0, errs.Wrap(errs.KindParse, err, "game code %q has non-decimal part %q", code, part)
	}
	return uint32(v), nil
}
