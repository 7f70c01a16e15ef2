// Package config defines the application configuration and its resolution
// chain: CLI flags take precedence over SEQCALC_-prefixed environment
// variables, which take precedence over built-in defaults.
package config

import (
	"flag"
	"fmt"
	"io"
	"time"

	apperrors "github.com/numkit/seqcalc/internal/errors"
	"github.com/numkit/seqcalc/internal/sequence"
)

// EnvPrefix is the prefix for all environment variable overrides.
const EnvPrefix = "SEQCALC_"

// KindBoth selects the comparison mode in which both sequence kinds are
// generated from the same inputs.
const KindBoth = "both"

// Default input values. The step default depends on the kind: 1.0 as a
// common difference, 2.0 as a common ratio.
const (
	DefaultFirstTerm      = 1.0
	DefaultArithmeticStep = 1.0
	DefaultGeometricStep  = 2.0
	DefaultTerms          = 10
	DefaultTimeout        = 30 * time.Second
	DefaultAddr           = ":8080"
)

// AppConfig holds the resolved application configuration.
type AppConfig struct {
	// Kind is the sequence kind to generate: "arithmetic", "geometric",
	// or "both" for the side-by-side comparison mode.
	Kind string
	// FirstTerm is the first term of the sequence (a1).
	FirstTerm float64
	// Step is the common difference or common ratio.
	Step float64
	// Terms is the requested number of terms.
	Terms int
	// Timeout bounds a single run (surfaces only; the computation itself is
	// bounded by the term-count cap).
	Timeout time.Duration

	// Quiet suppresses everything but the series sum.
	Quiet bool
	// Verbose enables debug logging and full sequence listings.
	Verbose bool
	// NoColor disables colored output.
	NoColor bool

	// TUI launches the interactive dashboard.
	TUI bool
	// REPL launches the interactive read-eval-print loop.
	REPL bool
	// Serve launches the HTTP API server.
	Serve bool
	// Addr is the HTTP listen address for serve mode.
	Addr string

	// OutputFile is the path to save the report to (empty for no file output).
	OutputFile string
}

// Kinds returns the sequence kinds selected by the configuration.
func (c AppConfig) Kinds() []sequence.Kind {
	if c.Kind == KindBoth {
		return []sequence.Kind{sequence.Arithmetic, sequence.Geometric}
	}
	k, err := sequence.ParseKind(c.Kind)
	if err != nil {
		return []sequence.Kind{sequence.Arithmetic}
	}
	return []sequence.Kind{k}
}

// Params returns the sequence parameters carried by the configuration.
func (c AppConfig) Params() sequence.Params {
	return sequence.Params{FirstTerm: c.FirstTerm, Step: c.Step, Terms: c.Terms}
}

// ParseConfig parses command-line arguments into an AppConfig, applying
// environment variable overrides for flags that were not explicitly set.
//
// Parameters:
//   - programName: The program name used in usage output.
//   - args: The command-line arguments (without the program name).
//   - errWriter: The writer for flag parsing errors and usage text.
//
// Returns:
//   - AppConfig: The resolved configuration.
//   - error: flag.ErrHelp when help was requested, or an
//     apperrors.ConfigError for invalid values.
func ParseConfig(programName string, args []string, errWriter io.Writer) (AppConfig, error) {
	cfg := AppConfig{
		Kind:      "arithmetic",
		FirstTerm: DefaultFirstTerm,
		Terms:     DefaultTerms,
		Timeout:   DefaultTimeout,
		Addr:      DefaultAddr,
	}

	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	fs.StringVar(&cfg.Kind, "kind", cfg.Kind, "sequence kind: arithmetic, geometric, or both")
	fs.Float64Var(&cfg.FirstTerm, "first", cfg.FirstTerm, "first term of the sequence (a1)")
	step := fs.Float64("step", 0, "common difference (arithmetic) or common ratio (geometric); defaults to 1 resp. 2")
	fs.IntVar(&cfg.Terms, "terms", cfg.Terms, fmt.Sprintf("number of terms to generate (1 to %d)", sequence.MaxTerms))
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "maximum duration of a run")

	fs.BoolVar(&cfg.Quiet, "quiet", false, "print only the series sum")
	fs.BoolVar(&cfg.Quiet, "q", false, "print only the series sum (shorthand)")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "enable debug logging and full sequence listings")
	fs.BoolVar(&cfg.Verbose, "v", false, "enable debug logging (shorthand)")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "disable colored output")

	fs.BoolVar(&cfg.TUI, "tui", false, "launch the interactive TUI dashboard")
	fs.BoolVar(&cfg.REPL, "repl", false, "launch the interactive REPL")
	fs.BoolVar(&cfg.Serve, "serve", false, "launch the HTTP API server")
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "HTTP listen address for serve mode")

	fs.StringVar(&cfg.OutputFile, "output", "", "write the report to the given file")
	fs.StringVar(&cfg.OutputFile, "o", "", "write the report to the given file (shorthand)")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}
	if isFlagSet(fs, "step") {
		cfg.Step = *step
	}

	applyEnvOverrides(&cfg, fs)

	if err := validate(&cfg, fs); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// validate checks flag combinations and fills the kind-dependent step default.
// The term count itself is validated at the computation boundary so every
// surface (CLI, REPL, TUI, HTTP) reports the same message.
func validate(cfg *AppConfig, fs *flag.FlagSet) error {
	if cfg.Kind != KindBoth {
		k, err := sequence.ParseKind(cfg.Kind)
		if err != nil {
			return err
		}
		// Canonicalize aliases ("geo", "g", ...) so every downstream
		// consumer sees the full kind name.
		cfg.Kind = k.String()
	}

	if !isFlagSet(fs, "step") && !envIsSet("STEP") {
		if cfg.Kind == "geometric" {
			cfg.Step = DefaultGeometricStep
		} else {
			cfg.Step = DefaultArithmeticStep
		}
	}

	modes := 0
	for _, m := range []bool{cfg.TUI, cfg.REPL, cfg.Serve} {
		if m {
			modes++
		}
	}
	if modes > 1 {
		return apperrors.NewConfigError("only one of -tui, -repl, -serve may be set")
	}

	if cfg.Timeout <= 0 {
		return apperrors.NewConfigError("timeout must be positive, got %s", cfg.Timeout)
	}
	return nil
}
