package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/andybug/predcfb/internal/archive"
	"github.com/andybug/predcfb/internal/cfbstats"
	"github.com/andybug/predcfb/internal/config"
	"github.com/andybug/predcfb/internal/export"
	"github.com/andybug/predcfb/internal/objectdb"
	"github.com/andybug/predcfb/internal/snapshot"
)

// LoadOptions holds flags for the load command.
type LoadOptions struct {
	*RootOptions
	Save     string
	Database string
	Config   string

	// RunIDGenerator overrides the snapshot run ID source. Used by tests.
	RunIDGenerator snapshot.RunIDGenerator
}

// LoadResult is the JSON payload of a successful load.
type LoadResult struct {
	Archive string           `json:"archive"`
	Summary cfbstats.Summary `json:"summary"`
	Saved   string           `json:"saved,omitempty"`
	RunID   string           `json:"run_id,omitempty"`
}

// NewLoadCommand creates the load command.
func NewLoadCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &LoadOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "load <archive.zip>",
		Short: "Load a cfbstats season archive",
		Long: `Load conference.csv, team.csv, game.csv, and team-game-statistics.csv
from a cfbstats.com season archive, link every reference, and report the
totals.

With --save the store is written as YAML (predcfb.yml unless --save=PATH is
given). With --db every record is also written to a SQLite snapshot.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLoad(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Save, "save", "", "write the loaded store as YAML")
	cmd.Flags().Lookup("save").NoOptDefVal = export.DefaultFile
	cmd.Flags().StringVar(&opts.Database, "db", "", "also record the load in a SQLite snapshot")
	cmd.Flags().StringVar(&opts.Config, "config", "", "CUE file overriding capacity limits")

	return cmd
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func runLoad(opts *LoadOptions, archivePath string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
	logger := newLogger(cmd.ErrOrStderr(), opts.Verbose)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg := config.Default()
	if opts.Config != "" {
		var err error
		cfg, err = config.Load(opts.Config)
		if err != nil {
			return outputLoadError(formatter, ExitCommandError, ErrCodeConfig, err)
		}
		formatter.VerboseLog("Using config %s", opts.Config)
	}

	db, err := objectdb.New(cfg.Limits)
	if err != nil {
		return outputLoadError(formatter, ExitCommandError, ErrCodeConfig, err)
	}
	loader, err := cfbstats.NewLoader(db, cfg.Index.Capacity, logger)
	if err != nil {
		return outputLoadError(formatter, ExitCommandError, ErrCodeConfig, err)
	}
	loader.Reset()

	ar, err := archive.Open(archivePath, logger)
	if err != nil {
		return outputLoadError(formatter, ExitCommandError, ErrCodeNotFound, err)
	}
	defer func() {
		if closeErr := ar.Close(); closeErr != nil {
			logger.Error("error closing archive", "error", closeErr)
		}
	}()

	if err := ar.Load(ctx, cfbstats.Files(), loader); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return outputLoadError(formatter, ExitFailure, ErrCodeCancelled, err)
		}
		return outputLoadError(formatter, ExitFailure, codeFor(err), err)
	}
	if err := loader.Link(); err != nil {
		return outputLoadError(formatter, ExitFailure, codeFor(err), err)
	}

	result := LoadResult{
		Archive: archivePath,
		Summary: loader.Summary(),
	}
	logger.Info("season loaded",
		"conferences", result.Summary.Conferences,
		"teams", result.Summary.Teams,
		"games", result.Summary.Games,
	)

	if opts.Save != "" {
		if err := export.Save(opts.Save, db); err != nil {
			return outputLoadError(formatter, ExitCommandError, ErrCodeWriteFailed, err)
		}
		result.Saved = opts.Save
		formatter.VerboseLog("Saved %s", opts.Save)
	}

	if opts.Database != "" {
		runID, err := writeSnapshot(ctx, opts, db, archivePath)
		if err != nil {
			return outputLoadError(formatter, ExitCommandError, ErrCodeWriteFailed, err)
		}
		result.RunID = runID
		formatter.VerboseLog("Recorded run %s in %s", runID, opts.Database)
	}

	if opts.Format == "json" {
		return formatter.Success(result)
	}
	return formatter.Success(formatLoadText(result))
}

func writeSnapshot(ctx context.Context, opts *LoadOptions, db *objectdb.DB, source string) (string, error) {
	st, err := snapshot.Open(opts.Database)
	if err != nil {
		return "", err
	}
	defer st.Close()

	if opts.RunIDGenerator != nil {
		st.SetRunIDGenerator(opts.RunIDGenerator)
	}
	run, err := st.WriteRun(ctx, db, source)
	if err != nil {
		return "", err
	}
	return run.ID, nil
}

func formatLoadText(r LoadResult) string {
	s := r.Summary
	text := fmt.Sprintf("Loaded %d conferences, %d teams, %d games (%d stat lines, %d objects)",
		s.Conferences, s.Teams, s.Games, s.StatLines, s.Objects)
	if r.Saved != "" {
		text += "\nSaved " + r.Saved
	}
	if r.RunID != "" {
		text += "\nRun " + r.RunID
	}
	return text
}

// outputLoadError reports err through the formatter and returns the exit
// error for the command.
func outputLoadError(formatter *OutputFormatter, exitCode int, code string, err error) error {
	_ = formatter.Error(code, err.Error(), errorDetails(err))
	return WrapExitError(exitCode, code, err)
}
