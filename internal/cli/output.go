package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/numkit/seqcalc/internal/config"
	"github.com/numkit/seqcalc/internal/format"
	"github.com/numkit/seqcalc/internal/orchestration"
	"github.com/numkit/seqcalc/internal/sequence"
	"github.com/numkit/seqcalc/internal/ui"
)

// OutputConfig holds configuration for result output.
type OutputConfig struct {
	// OutputFile is the path to save the report (empty for no file output).
	OutputFile string
	// Quiet mode suppresses verbose output.
	Quiet bool
	// Verbose enables the complete chunked sequence listing.
	Verbose bool
}

// PrintExecutionConfig displays the current execution configuration to the
// user: the sequence kind, the three inputs, and the environment.
func PrintExecutionConfig(cfg config.AppConfig, out io.Writer) {
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	fmt.Fprintf(out, "Generating a %s%s%s sequence: first term %s%s%s, %s %s%s%s, %s%d%s terms.\n",
		ui.ColorPrimary(), cfg.Kind, ui.ColorReset(),
		ui.ColorCyan(), format.Number(cfg.FirstTerm), ui.ColorReset(),
		stepLabel(cfg.Kind),
		ui.ColorCyan(), format.Number(cfg.Step), ui.ColorReset(),
		ui.ColorCyan(), cfg.Terms, ui.ColorReset())
	fmt.Fprintf(out, "Environment: %s%d%s logical processors, Go %s%s%s.\n",
		ui.ColorCyan(), runtime.NumCPU(), ui.ColorReset(),
		ui.ColorCyan(), runtime.Version(), ui.ColorReset())
}

func stepLabel(kind string) string {
	if kind == config.KindBoth {
		return "step parameter"
	}
	if k, err := sequence.ParseKind(kind); err == nil {
		return k.StepName()
	}
	return "common difference"
}

// WriteReportToFile writes a generation result to a file, creating parent
// directories as needed. The file carries a metadata header followed by the
// formatted terms and sum.
//
// Parameters:
//   - result: The generation result to save.
//   - cfg: Output configuration.
//
// Returns:
//   - error: An error if the file cannot be written.
func WriteReportToFile(result orchestration.GenerationResult, cfg OutputConfig) error {
	if cfg.OutputFile == "" {
		return nil
	}

	dir := filepath.Dir(cfg.OutputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(cfg.OutputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	report := result.Report
	fmt.Fprintf(file, "# Sequence Generation Report\n")
	fmt.Fprintf(file, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(file, "# Kind: %s\n", report.Kind)
	fmt.Fprintf(file, "# First term: %s\n", format.Number(report.Params.FirstTerm))
	fmt.Fprintf(file, "# %s: %s\n", report.Kind.StepName(), format.Number(report.Params.Step))
	fmt.Fprintf(file, "# Terms: %d\n", report.Params.Terms)
	fmt.Fprintf(file, "# Duration: %s\n", format.ExecutionDuration(result.Duration))
	fmt.Fprintf(file, "\n")

	fmt.Fprintf(file, "Sequence:\n%s\n\n", strings.Join(format.Terms(report.Terms), ", "))
	fmt.Fprintf(file, "Series sum: %s\n", format.Number(report.Sum))
	if report.Kind == sequence.Geometric && report.InfiniteLimit != nil && report.Params.Step != 0 {
		fmt.Fprintf(file, "Infinite series limit: %s\n", format.Number(*report.InfiniteLimit))
	}

	return nil
}

// ConfirmFileSaved prints the saved-file confirmation line.
func ConfirmFileSaved(out io.Writer, path string) {
	fmt.Fprintf(out, "\n%s✓ Report saved to: %s%s%s\n",
		ui.ColorGreen(), ui.ColorCyan(), path, ui.ColorReset())
}
