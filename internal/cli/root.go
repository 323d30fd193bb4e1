// SPDX-License-Identifier: MIT

// Package cli implements the mat2 command tree: it reads 2×2 matrices from
// arguments, files or an interactive prompt, runs matrix operations, and
// renders the results as text, JSON or YAML.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/mat2/internal/config"
	"github.com/spf13/cobra"
)

// Exit codes for the mat2 binary.
const (
	ExitSuccess = 0 // command completed
	ExitError   = 1 // operation failed (singular matrix, unreadable input, ...)
	ExitUsage   = 2 // bad flags, arguments or configuration
)

// ErrUsage marks errors caused by invalid invocation.
var ErrUsage = errors.New("usage")

// usageErrorf builds an error that matches ErrUsage.
func usageErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrUsage, fmt.Sprintf(format, args...))
}

// ExitCode maps an Execute error to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrUsage):
		return ExitUsage
	default:
		return ExitError
	}
}

// app holds the state shared by all subcommands of one root command.
type app struct {
	cfg     config.Config
	streams Streams
	file    string // --file
	verbose bool   // --verbose
	logger  *slog.Logger
}

// NewRootCommand builds the mat2 command tree. cfg supplies flag defaults,
// so environment values apply unless a flag overrides them.
func NewRootCommand(cfg config.Config, streams Streams) *cobra.Command {
	a := &app{
		cfg:     cfg,
		streams: streams,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	root := &cobra.Command{
		Use:   "mat2",
		Short: "Inspect and combine 2x2 real matrices",
		Long: `mat2 reads 2x2 matrices | a b ; c d | and reports determinants, traces,
inverses and eigenvalues, or combines two matrices.

Matrices come from positional numbers (a b c d per matrix), from --file
(a YAML or JSON list of {a, b, c, d} objects), or from stdin.

Flags must precede positional numbers so that negative values parse, and
a leading negative number needs "--":
  mat2 scalar --left sub 10 1 -2 3 4
  mat2 inspect -- -1 2 3 4`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.SetIn(streams.In)
	root.SetOut(streams.Out)
	root.SetErr(streams.Err)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageErrorf("%v", err)
	})

	pf := root.PersistentFlags()
	pf.StringVarP(&a.cfg.Format, "format", "o", cfg.Format, "output format: text, json or yaml (env MAT2_FORMAT)")
	pf.StringVar(&a.cfg.Prompt, "prompt", cfg.Prompt, "input prompt: auto, always or never (env MAT2_PROMPT)")
	pf.IntVar(&a.cfg.Precision, "precision", cfg.Precision, "digits after the decimal point in text output (env MAT2_PRECISION)")
	pf.StringVarP(&a.file, "file", "f", "", "read matrices from a YAML or JSON file")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging on stderr")

	root.AddCommand(
		a.inspectCmd(),
		a.calcCmd(),
		a.scalarCmd(),
		a.compareCmd(),
		a.eigenCmd(),
	)

	return root
}

// setup validates the merged configuration and builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if a.verbose {
		a.cfg.LogLevel = "debug"
	}
	a.cfg = a.cfg.Normalized()
	if err := a.cfg.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}

	lvl, err := a.cfg.SlogLevel()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: lvl}))
	a.logger.Debug("configuration resolved",
		"command", cmd.Name(),
		"format", a.cfg.Format,
		"prompt", a.cfg.Prompt,
		"precision", a.cfg.Precision,
	)

	return nil
}

// Execute runs cmd with args, prints any error to the command's stderr and
// returns the exit code.
func Execute(cmd *cobra.Command, args []string) int {
	cmd.SetArgs(args)
	err := cmd.Execute()
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "mat2: %v\n", err)
	}

	return ExitCode(err)
}
