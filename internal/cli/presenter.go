// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//     Examples: [DisplayReport], [DisplayQuietResult].
//
//   - Format* functions return a formatted string without performing I/O.
//     They are pure functions suitable for composition.
//
//   - Write* functions write data to files on the filesystem.
//     Examples: [WriteReportToFile].

package cli

import (
	"fmt"
	"io"
	"math"
	"strings"

	apperrors "github.com/numkit/seqcalc/internal/errors"
	"github.com/numkit/seqcalc/internal/format"
	"github.com/numkit/seqcalc/internal/orchestration"
	"github.com/numkit/seqcalc/internal/sequence"
	"github.com/numkit/seqcalc/internal/ui"
)

const (
	// InlineDisplayLimit is the sequence length up to which all terms are
	// shown on a single line. Longer sequences show the leading and trailing
	// EdgeTerms with an omission note.
	InlineDisplayLimit = 20
	// EdgeTerms is the number of terms shown at each end of a truncated
	// sequence.
	EdgeTerms = 10
	// ChunkSize is the block size used by the full chunked listing.
	ChunkSize = 10
)

// CLIResultPresenter implements orchestration.ResultPresenter and
// orchestration.ErrorHandler for colorized command-line output.
type CLIResultPresenter struct{}

// Verify interface compliance.
var (
	_ orchestration.ResultPresenter = CLIResultPresenter{}
	_ orchestration.ErrorHandler    = CLIResultPresenter{}
)

// PresentComparisonTable displays the summary table for a multi-kind run with
// kind names, series sums, durations, and status in a formatted tabular
// layout. Uses manual padding to correctly handle ANSI color codes.
func (CLIResultPresenter) PresentComparisonTable(results []orchestration.GenerationResult, out io.Writer) {
	fmt.Fprintf(out, "\n--- Comparison Summary ---\n")

	maxNameLen := 4 // "Kind" header length
	maxSumLen := 10 // "Series Sum" header length
	for _, res := range results {
		if name := res.Kind.Title(); len(name) > maxNameLen {
			maxNameLen = len(name)
		}
		if res.Err == nil {
			if sum := format.Number(res.Report.Sum); len(sum) > maxSumLen {
				maxSumLen = len(sum)
			}
		}
	}

	fmt.Fprintf(out, "%sKind%s%s   %sSeries Sum%s%s   %sStatus%s\n",
		ui.ColorUnderline(), ui.ColorReset(), padRight("", maxNameLen-4),
		ui.ColorUnderline(), ui.ColorReset(), padRight("", maxSumLen-10),
		ui.ColorUnderline(), ui.ColorReset())

	for _, res := range results {
		var sum, status string
		if res.Err != nil {
			sum = "-"
			status = fmt.Sprintf("%s✗ Failure (%v)%s", ui.ColorRed(), res.Err, ui.ColorReset())
		} else {
			sum = format.Number(res.Report.Sum)
			status = fmt.Sprintf("%s✓ Success (%s)%s", ui.ColorGreen(), format.ExecutionDuration(res.Duration), ui.ColorReset())
		}
		name := res.Kind.Title()
		fmt.Fprintf(out, "%s%s%s%s   %s%s%s%s   %s\n",
			ui.ColorPrimary(), name, ui.ColorReset(), padRight("", maxNameLen-len(name)),
			ui.ColorYellow(), sum, ui.ColorReset(), padRight("", maxSumLen-len(sum)),
			status)
	}
}

// padRight returns a string of spaces with the given length appended to s.
func padRight(s string, length int) string {
	if length <= 0 {
		return s
	}
	return s + fmt.Sprintf("%*s", length, "")
}

// PresentReport displays a full report using DisplayReport.
func (CLIResultPresenter) PresentReport(result orchestration.GenerationResult, opts orchestration.PresentationOptions, out io.Writer) {
	if opts.Quiet {
		DisplayQuietResult(out, result.Report)
		return
	}
	DisplayReport(result.Report, opts.Verbose, out)
}

// HandleError surfaces a generation error as a user-facing message and
// returns the corresponding exit code. Validation failures carry their
// specific message; computation failures get the generic recoverable
// guidance; everything else falls through to a plain error line.
func (CLIResultPresenter) HandleError(err error, out io.Writer) int {
	switch {
	case err == nil:
		return apperrors.ExitSuccess
	case apperrors.IsValidationError(err):
		fmt.Fprintf(out, "%s⚠ %v%s\n", ui.ColorRed(), err, ui.ColorReset())
	case apperrors.IsComputationError(err):
		fmt.Fprintf(out, "%s⚠ An error occurred while generating the sequence: %v%s\n",
			ui.ColorRed(), err, ui.ColorReset())
		fmt.Fprintf(out, "%sPlease check your input values and try again.%s\n",
			ui.ColorCyan(), ui.ColorReset())
	case apperrors.IsContextError(err):
		fmt.Fprintf(out, "%s⚠ Operation canceled.%s\n", ui.ColorYellow(), ui.ColorReset())
	default:
		fmt.Fprintf(out, "%sError: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
	}
	return apperrors.ExitCodeFor(err)
}

// DisplayQuietResult outputs only the series sum (minimal output for
// scripting).
func DisplayQuietResult(out io.Writer, report sequence.Report) {
	fmt.Fprintln(out, format.Number(report.Sum))
}

// DisplayReport renders a full report: the nth-term formula with the user's
// values, the generated sequence, its statistics, the educational note for
// the kind, and the convergence hint for convergent geometric series.
// Verbose additionally lists the complete sequence in chunks.
func DisplayReport(report sequence.Report, verbose bool, out io.Writer) {
	fmt.Fprintf(out, "\n%s%s═══ %s ═══%s\n", ui.ColorBold(), ui.ColorPrimary(), report.Kind.Title(), ui.ColorReset())

	displayFormula(report, out)
	if report.Kind == sequence.Geometric {
		displaySumFormula(report, out)
	}
	displaySequence(report, out)
	if verbose && len(report.Terms) > InlineDisplayLimit {
		displayChunks(report.Terms, out)
	}
	displayStatistics(report.Stats, out)
	displayEducationalNote(report.Kind, out)
	displayConvergenceHint(report, out)
}

// displayFormula prints the nth-term formula section with the user's values.
func displayFormula(report sequence.Report, out io.Writer) {
	fmt.Fprintf(out, "\n%s--- Formula ---%s\n", ui.ColorBold(), ui.ColorReset())
	if report.Kind == sequence.Arithmetic {
		fmt.Fprintf(out, "  a_n = a_1 + (n-1)·d\n")
		fmt.Fprintf(out, "Where:\n")
		fmt.Fprintf(out, "  - a_1 (first term) = %s%s%s\n", ui.ColorCyan(), format.Number(report.Params.FirstTerm), ui.ColorReset())
		fmt.Fprintf(out, "  - d (common difference) = %s%s%s\n", ui.ColorCyan(), format.Number(report.Params.Step), ui.ColorReset())
	} else {
		fmt.Fprintf(out, "  a_n = a_1 · r^(n-1)\n")
		fmt.Fprintf(out, "Where:\n")
		fmt.Fprintf(out, "  - a_1 (first term) = %s%s%s\n", ui.ColorCyan(), format.Number(report.Params.FirstTerm), ui.ColorReset())
		fmt.Fprintf(out, "  - r (common ratio) = %s%s%s\n", ui.ColorCyan(), format.Number(report.Params.Step), ui.ColorReset())
	}
	fmt.Fprintf(out, "  - n (term number) = 1, 2, 3, ..., %d\n", report.Params.Terms)
}

// displaySumFormula prints the geometric series sum formula, with the r = 1
// degenerate branch spelled out the way the formula display requires.
func displaySumFormula(report sequence.Report, out io.Writer) {
	first := format.Number(report.Params.FirstTerm)
	ratio := format.Number(report.Params.Step)
	n := report.Params.Terms

	fmt.Fprintf(out, "\n%s--- Series Sum Formula ---%s\n", ui.ColorBold(), ui.ColorReset())
	if report.Params.Step == 1 {
		fmt.Fprintf(out, "  S_n = n · a_1\n")
		fmt.Fprintf(out, "Since r = 1, the sum is simply: %d × %s = %s%s%s\n",
			n, first, ui.ColorGreen(), format.Number(report.Sum), ui.ColorReset())
	} else {
		fmt.Fprintf(out, "  S_n = a_1 · (1 - r^n) / (1 - r)\n")
		fmt.Fprintf(out, "Sum calculation: %s × (1 - %s^%d) / (1 - %s) = %s%s%s\n",
			first, ratio, n, ratio, ui.ColorGreen(), format.Number(report.Sum), ui.ColorReset())
	}
}

// displaySequence prints the generated terms: inline for short sequences,
// leading/trailing edges with an omission note otherwise.
func displaySequence(report sequence.Report, out io.Writer) {
	formatted := format.Terms(report.Terms)

	fmt.Fprintf(out, "\n%s--- Generated Sequence ---%s\n", ui.ColorBold(), ui.ColorReset())
	if len(formatted) <= InlineDisplayLimit {
		fmt.Fprintf(out, "Sequence: %s%s%s\n", ui.ColorGreen(), strings.Join(formatted, ", "), ui.ColorReset())
		return
	}

	fmt.Fprintf(out, "First %d terms: %s%s%s\n", EdgeTerms,
		ui.ColorGreen(), strings.Join(formatted[:EdgeTerms], ", "), ui.ColorReset())
	fmt.Fprintf(out, "Last %d terms:  %s%s%s\n", EdgeTerms,
		ui.ColorGreen(), strings.Join(formatted[len(formatted)-EdgeTerms:], ", "), ui.ColorReset())
	fmt.Fprintf(out, "... (%d terms omitted)\n", len(formatted)-2*EdgeTerms)
}

// displayChunks prints the complete sequence in blocks of ChunkSize terms
// with their one-based term ranges.
func displayChunks(terms []float64, out io.Writer) {
	fmt.Fprintf(out, "\n%s--- Complete Sequence ---%s\n", ui.ColorBold(), ui.ColorReset())
	for start := 0; start < len(terms); start += ChunkSize {
		end := start + ChunkSize
		if end > len(terms) {
			end = len(terms)
		}
		chunk := format.Terms(terms[start:end])
		fmt.Fprintf(out, "Terms %d-%d: %s\n", start+1, end, strings.Join(chunk, ", "))
	}
}

// displayStatistics prints the statistics row.
func displayStatistics(stats sequence.Stats, out io.Writer) {
	fmt.Fprintf(out, "\n%s--- Sequence Statistics ---%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(out, "  First Term: %s%s%s\n", ui.ColorCyan(), format.Number(stats.First), ui.ColorReset())
	fmt.Fprintf(out, "  Last Term:  %s%s%s\n", ui.ColorCyan(), format.Number(stats.Last), ui.ColorReset())
	fmt.Fprintf(out, "  Series Sum: %s%s%s\n", ui.ColorCyan(), format.Number(stats.Sum), ui.ColorReset())
	fmt.Fprintf(out, "  Average:    %s%s%s\n", ui.ColorCyan(), format.Number(stats.Average), ui.ColorReset())
}

// displayEducationalNote prints the key-properties note for the kind.
func displayEducationalNote(kind sequence.Kind, out io.Writer) {
	fmt.Fprintf(out, "\n%s--- About %ss ---%s\n", ui.ColorBold(), kind.Title(), ui.ColorReset())
	if kind == sequence.Arithmetic {
		fmt.Fprint(out, `An arithmetic sequence is a sequence of numbers where the difference between
consecutive terms is constant. This difference is called the common difference.

Key Properties:
  - Each term is found by adding the common difference to the previous term
  - The nth term formula: a_n = a_1 + (n-1)d
  - The sum of n terms: S_n = n/2 × (2a_1 + (n-1)d)
`)
		return
	}
	fmt.Fprint(out, `A geometric sequence is a sequence of numbers where each term after the first
is found by multiplying the previous term by a fixed number called the common ratio.

Key Properties:
  - Each term is found by multiplying the previous term by the common ratio
  - The nth term formula: a_n = a_1 × r^(n-1)
  - The sum of n terms: S_n = a_1 × (1 - r^n) / (1 - r) when r ≠ 1
  - When r = 1: S_n = n × a_1
  - Infinite series: if |r| < 1, the infinite sum converges to a_1 / (1 - r)
`)
}

// displayConvergenceHint prints the infinite-series insight for convergent
// geometric series. A zero ratio is deliberately excluded even though its
// limit exists; the hint is only meaningful for a genuinely multiplicative
// progression.
func displayConvergenceHint(report sequence.Report, out io.Writer) {
	if report.Kind != sequence.Geometric || report.InfiniteLimit == nil || report.Params.Step == 0 {
		return
	}
	fmt.Fprintf(out, "\n%s💡 Infinite Series Insight:%s Since |r| = %.3f < 1, the infinite geometric series converges to: %s%s%s\n",
		ui.ColorBold(), ui.ColorReset(),
		math.Abs(report.Params.Step),
		ui.ColorGreen(), format.Number(*report.InfiniteLimit), ui.ColorReset())
}
