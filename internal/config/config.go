// Package config loads per-run capacity settings from an optional CUE file.
//
// Every field is optional and defaults to the built-in limits:
//
//	limits: {
//		conferences: 32
//		teams:       256
//		games:       2048
//		objects:     4096
//		bins:        2048
//	}
//	index: capacity: 4096
//
// Unknown fields are rejected. Bins and index capacity must be powers of two.
package config

import (
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"

	"github.com/andybug/predcfb/internal/idindex"
	"github.com/andybug/predcfb/internal/objectdb"
)

// Config is the resolved run configuration.
type Config struct {
	Limits objectdb.Limits `json:"limits"`
	Index  Index           `json:"index"`
}

// Index sizes the source-code indexes.
type Index struct {
	Capacity int `json:"capacity"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Limits: objectdb.DefaultLimits(),
		Index:  Index{Capacity: idindex.DefaultCapacity},
	}
}

// schemaSource is the closed definition every file is unified with. Its
// defaults come from Default.
const schemaSource = `
#Config: {
	limits: {
		conferences: int & >0 | *%d
		teams:       int & >0 | *%d
		games:       int & >0 | *%d
		objects:     int & >0 | *%d
		bins:        int & >0 | *%d
	}
	index: {
		capacity: int & >0 | *%d
	}
}
`

func schemaFor(ctx *cue.Context) (cue.Value, error) {
	d := Default()
	src := fmt.Sprintf(schemaSource,
		d.Limits.Conferences,
		d.Limits.Teams,
		d.Limits.Games,
		d.Limits.Objects,
		d.Limits.Bins,
		d.Index.Capacity,
	)
	v := ctx.CompileString(src, cue.Filename("config-schema.cue"))
	if err := v.Err(); err != nil {
		return cue.Value{}, fmt.Errorf("compile config schema: %w", err)
	}
	return v.LookupPath(cue.ParsePath("#Config")), nil
}

// Load reads and validates the CUE file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return Parse(data, path)
}

// Parse validates CUE source against the config definition. filename is
// used in error positions.
func Parse(data []byte, filename string) (Config, error) {
	ctx := cuecontext.New()
	schema, err := schemaFor(ctx)
	if err != nil {
		return Config{}, err
	}

	v := ctx.CompileBytes(data, cue.Filename(filename))
	if err := v.Err(); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", filename, err)
	}

	unified := schema.Unify(v)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", filename, err)
	}

	var cfg Config
	if err := unified.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config %s: %w", filename, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", filename, err)
	}
	return cfg, nil
}

// Validate checks the sizes that CUE constraints do not express.
func (c Config) Validate() error {
	if err := c.Limits.Validate(); err != nil {
		return err
	}
	if n := c.Index.Capacity; n <= 0 || n&(n-1) != 0 {
		return fmt.Errorf("index capacity %d is not a power of two", n)
	}
	return nil
}
