// Package app wires configuration, logging, and the presentation surfaces
// into the seqcalc application and dispatches between its run modes.
package app

import (
	"context"
	"errors"
	"flag"
	"io"
	"os/signal"
	"syscall"

	"github.com/numkit/seqcalc/internal/cli"
	"github.com/numkit/seqcalc/internal/config"
	apperrors "github.com/numkit/seqcalc/internal/errors"
	"github.com/numkit/seqcalc/internal/logging"
	"github.com/numkit/seqcalc/internal/sequence"
	"github.com/numkit/seqcalc/internal/server"
	"github.com/numkit/seqcalc/internal/tui"
	"github.com/numkit/seqcalc/internal/ui"
)

// Application represents the seqcalc application instance.
type Application struct {
	Config    config.AppConfig
	Log       logging.Logger
	ErrWriter io.Writer
}

// New creates a new Application instance by parsing command-line arguments.
func New(args []string, errWriter io.Writer) (*Application, error) {
	programName := "seqcalc"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}

	return &Application{
		Config:    cfg,
		Log:       logging.NopLogger{},
		ErrWriter: errWriter,
	}, nil
}

// Run executes the application based on the configured mode.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	ui.InitTheme(a.Config.NoColor)

	// Structured logs go to stderr so they never interleave with the report
	// on stdout. CLI runs stay silent unless verbose.
	if a.Config.Serve || a.Config.Verbose {
		a.Log = logging.NewLogger(a.ErrWriter, a.Config.Verbose)
	}

	switch {
	case a.Config.Serve:
		return a.runServe(ctx)
	case a.Config.TUI:
		return a.runTUI(ctx)
	case a.Config.REPL:
		return a.runREPL()
	default:
		return a.runCalculate(ctx, out)
	}
}

// runServe launches the HTTP API server until interrupted.
func (a *Application) runServe(ctx context.Context) int {
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	srv := server.New(a.Config, a.Log)
	if err := srv.Run(ctx); err != nil {
		a.Log.Error("server failed", logging.Err(err))
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}

// runTUI launches the interactive TUI dashboard.
func (a *Application) runTUI(ctx context.Context) int {
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	return tui.Run(ctx, a.Config)
}

// runREPL launches the interactive read-eval-print loop.
func (a *Application) runREPL() int {
	kind := a.Config.Kinds()[0]
	repl := cli.NewREPL(cli.REPLConfig{
		Kind:    kind,
		Params:  a.Config.Params(),
		Verbose: a.Config.Verbose,
	})
	repl.Start()
	return apperrors.ExitSuccess
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}

// validateTerms is the caller-side guard shared by the one-shot paths.
func (a *Application) validateTerms() error {
	return sequence.Validate(a.Config.Terms)
}
