package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andybug/predcfb/internal/objectdb"
)

func TestParseEmptyUsesDefaults(t *testing.T) {
	cfg, err := Parse([]byte(""), "empty.cue")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParseOverridesSomeFields(t *testing.T) {
	cfg, err := Parse([]byte(`
limits: {
	teams: 512
	bins:  4096
}
index: capacity: 8192
`), "season.cue")
	require.NoError(t, err)

	want := objectdb.DefaultLimits()
	want.Teams = 512
	want.Bins = 4096
	assert.Equal(t, want, cfg.Limits)
	assert.Equal(t, 8192, cfg.Index.Capacity)
}

func TestParseRejectsUnknownField(t *testing.T) {
	_, err := Parse([]byte(`limits: stadiums: 10`), "bad.cue")
	assert.Error(t, err)

	_, err = Parse([]byte(`season: 2013`), "bad.cue")
	assert.Error(t, err)
}

func TestParseRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"zero teams", `limits: teams: 0`},
		{"negative games", `limits: games: -1`},
		{"string value", `limits: conferences: "many"`},
		{"bins not power of two", `limits: bins: 1000`},
		{"index not power of two", `index: capacity: 5000`},
		{"syntax error", `limits: {`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src), "bad.cue")
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "predcfb.cue")
	require.NoError(t, os.WriteFile(path, []byte("limits: conferences: 64\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 64, cfg.Limits.Conferences)
	assert.Equal(t, objectdb.DefaultLimits().Teams, cfg.Limits.Teams)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.cue"))
	assert.Error(t, err)
}

func TestDefaultIsValid(t *testing.T) {
	assert.NoError(t, Default().Validate())
}
