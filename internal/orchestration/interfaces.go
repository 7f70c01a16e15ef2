package orchestration

import (
	"io"
	"time"

	"github.com/numkit/seqcalc/internal/sequence"
)

// GenerationResult encapsulates the outcome of a single sequence generation.
// It serves as the shared domain type between orchestration and presentation
// layers.
type GenerationResult struct {
	// Kind is the progression rule that was generated.
	Kind sequence.Kind
	// Report is the computed report. It is meaningless if an error occurred.
	Report sequence.Report
	// Duration is the time taken to complete the generation.
	Duration time.Duration
	// Err contains any error that occurred during the generation.
	Err error
}

// PresentationOptions configures how results are presented to the user.
type PresentationOptions struct {
	Quiet   bool
	Verbose bool
}

// ResultPresenter defines the interface for presenting generation results.
// This interface decouples the orchestration layer from presentation
// concerns, allowing different output formats (CLI, TUI, JSON) without
// modifying the orchestration logic.
type ResultPresenter interface {
	// PresentComparisonTable displays the summary table for a multi-kind run.
	PresentComparisonTable(results []GenerationResult, out io.Writer)

	// PresentReport displays a single generated report in full.
	PresentReport(result GenerationResult, opts PresentationOptions, out io.Writer)
}

// ErrorHandler handles generation errors and returns exit codes.
type ErrorHandler interface {
	HandleError(err error, out io.Writer) int
}
