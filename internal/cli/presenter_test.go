package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	apperrors "github.com/numkit/seqcalc/internal/errors"
	"github.com/numkit/seqcalc/internal/orchestration"
	"github.com/numkit/seqcalc/internal/sequence"
	"github.com/numkit/seqcalc/internal/ui"
)

// TestMain disables colors so output assertions can match plain substrings.
func TestMain(m *testing.M) {
	ui.SetTheme("none")
	os.Exit(m.Run())
}

func mustCompute(t *testing.T, kind sequence.Kind, first, step float64, terms int) sequence.Report {
	t.Helper()
	report, err := sequence.Compute(kind, sequence.Params{FirstTerm: first, Step: step, Terms: terms})
	if err != nil {
		t.Fatalf("Compute error: %v", err)
	}
	return report
}

func TestDisplayReportArithmetic(t *testing.T) {
	t.Parallel()
	report := mustCompute(t, sequence.Arithmetic, 1, 1, 10)

	var buf bytes.Buffer
	DisplayReport(report, false, &buf)
	out := buf.String()

	for _, want := range []string{
		"Arithmetic Sequence",
		"a_n = a_1 + (n-1)·d",
		"a_1 (first term) = 1",
		"d (common difference) = 1",
		"n (term number) = 1, 2, 3, ..., 10",
		"Sequence: 1, 2, 3, 4, 5, 6, 7, 8, 9, 10",
		"First Term: 1",
		"Last Term:  10",
		"Series Sum: 55",
		"Average:    5.50",
		"About Arithmetic Sequences",
		"S_n = n/2 × (2a_1 + (n-1)d)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}
	if strings.Contains(out, "Infinite Series Insight") {
		t.Error("arithmetic report shows the convergence hint")
	}
	if strings.Contains(out, "Series Sum Formula") {
		t.Error("arithmetic report shows the geometric sum formula")
	}
}

func TestDisplayReportGeometricConvergent(t *testing.T) {
	t.Parallel()
	report := mustCompute(t, sequence.Geometric, 2, 0.5, 3)

	var buf bytes.Buffer
	DisplayReport(report, false, &buf)
	out := buf.String()

	for _, want := range []string{
		"Geometric Sequence",
		"a_n = a_1 · r^(n-1)",
		"r (common ratio) = 0.50",
		"S_n = a_1 · (1 - r^n) / (1 - r)",
		"Sequence: 2, 1, 0.50",
		"Series Sum: 3.50",
		"About Geometric Sequences",
		"Infinite Series Insight",
		"|r| = 0.500",
		"converges to: 4",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}
}

func TestDisplayReportRatioOne(t *testing.T) {
	t.Parallel()
	report := mustCompute(t, sequence.Geometric, 5, 1, 4)

	var buf bytes.Buffer
	DisplayReport(report, false, &buf)
	out := buf.String()

	if !strings.Contains(out, "S_n = n · a_1") {
		t.Errorf("missing degenerate sum formula\n%s", out)
	}
	if !strings.Contains(out, "Since r = 1, the sum is simply: 4 × 5 = 20") {
		t.Errorf("missing degenerate sum explanation\n%s", out)
	}
	if strings.Contains(out, "Infinite Series Insight") {
		t.Error("ratio-one report shows the convergence hint")
	}
}

func TestDisplayReportZeroRatioHidesHint(t *testing.T) {
	t.Parallel()
	report := mustCompute(t, sequence.Geometric, 7, 0, 4)
	if report.InfiniteLimit == nil {
		t.Fatal("zero-ratio report should carry a limit")
	}

	var buf bytes.Buffer
	DisplayReport(report, false, &buf)

	if strings.Contains(buf.String(), "Infinite Series Insight") {
		t.Error("zero-ratio report shows the convergence hint")
	}
}

func TestDisplayReportTruncatesLongSequences(t *testing.T) {
	t.Parallel()
	report := mustCompute(t, sequence.Arithmetic, 1, 1, 25)

	var buf bytes.Buffer
	DisplayReport(report, false, &buf)
	out := buf.String()

	if !strings.Contains(out, "First 10 terms: 1, 2, 3, 4, 5, 6, 7, 8, 9, 10") {
		t.Errorf("missing leading edge\n%s", out)
	}
	if !strings.Contains(out, "Last 10 terms:  16, 17, 18, 19, 20, 21, 22, 23, 24, 25") {
		t.Errorf("missing trailing edge\n%s", out)
	}
	if !strings.Contains(out, "(5 terms omitted)") {
		t.Errorf("missing omission note\n%s", out)
	}
	if strings.Contains(out, "Sequence: 1, 2") {
		t.Error("long sequence printed inline")
	}
	if strings.Contains(out, "Complete Sequence") {
		t.Error("chunked listing shown without verbose")
	}
}

func TestDisplayReportVerboseChunks(t *testing.T) {
	t.Parallel()
	report := mustCompute(t, sequence.Arithmetic, 1, 1, 25)

	var buf bytes.Buffer
	DisplayReport(report, true, &buf)
	out := buf.String()

	for _, want := range []string{
		"Complete Sequence",
		"Terms 1-10: 1, 2, 3, 4, 5, 6, 7, 8, 9, 10",
		"Terms 11-20: 11, 12, 13, 14, 15, 16, 17, 18, 19, 20",
		"Terms 21-25: 21, 22, 23, 24, 25",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}
}

func TestDisplayReportVerboseShortSequenceHasNoChunks(t *testing.T) {
	t.Parallel()
	report := mustCompute(t, sequence.Arithmetic, 1, 1, 10)

	var buf bytes.Buffer
	DisplayReport(report, true, &buf)

	if strings.Contains(buf.String(), "Complete Sequence") {
		t.Error("short sequence shows the chunked listing")
	}
}

func TestDisplayQuietResult(t *testing.T) {
	t.Parallel()
	report := mustCompute(t, sequence.Arithmetic, 1, 1, 10)

	var buf bytes.Buffer
	DisplayQuietResult(&buf, report)

	if buf.String() != "55\n" {
		t.Errorf("quiet output = %q, want %q", buf.String(), "55\n")
	}
}

func TestHandleError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name         string
		err          error
		expectedCode int
		wantOutput   string
	}{
		{
			name:         "validation error keeps its message",
			err:          apperrors.ValidationError{Field: "terms", Message: "number of terms cannot exceed 1000 for performance reasons"},
			expectedCode: apperrors.ExitErrorConfig,
			wantOutput:   "cannot exceed 1000",
		},
		{
			name:         "computation error gets recovery guidance",
			err:          apperrors.NewComputationError(errors.New("term 4 is not a finite number")),
			expectedCode: apperrors.ExitErrorGeneric,
			wantOutput:   "Please check your input values and try again.",
		},
		{
			name:         "context cancellation",
			err:          context.Canceled,
			expectedCode: apperrors.ExitErrorCanceled,
			wantOutput:   "Operation canceled",
		},
		{
			name:         "generic error",
			err:          errors.New("boom"),
			expectedCode: apperrors.ExitErrorGeneric,
			wantOutput:   "Error: boom",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			code := CLIResultPresenter{}.HandleError(tt.err, &buf)
			if code != tt.expectedCode {
				t.Errorf("exit code = %d, want %d", code, tt.expectedCode)
			}
			if !strings.Contains(buf.String(), tt.wantOutput) {
				t.Errorf("output %q missing %q", buf.String(), tt.wantOutput)
			}
		})
	}
}

func TestHandleErrorNil(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	if code := (CLIResultPresenter{}).HandleError(nil, &buf); code != apperrors.ExitSuccess {
		t.Errorf("exit code = %d, want %d", code, apperrors.ExitSuccess)
	}
	if buf.Len() != 0 {
		t.Errorf("nil error produced output %q", buf.String())
	}
}

func TestPresentComparisonTable(t *testing.T) {
	t.Parallel()
	arith := mustCompute(t, sequence.Arithmetic, 1, 1, 5)
	results := []orchestration.GenerationResult{
		{Kind: sequence.Arithmetic, Report: arith},
		{Kind: sequence.Geometric, Err: apperrors.NewComputationError(errors.New("overflow"))},
	}

	var buf bytes.Buffer
	CLIResultPresenter{}.PresentComparisonTable(results, &buf)
	out := buf.String()

	for _, want := range []string{
		"Comparison Summary",
		"Kind",
		"Series Sum",
		"Status",
		"Arithmetic Sequence",
		"15",
		"✓ Success",
		"Geometric Sequence",
		"✗ Failure",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q\n%s", want, out)
		}
	}
}

func TestPresentReportQuiet(t *testing.T) {
	t.Parallel()
	report := mustCompute(t, sequence.Geometric, 1, 2, 5)
	result := orchestration.GenerationResult{Kind: sequence.Geometric, Report: report}

	var buf bytes.Buffer
	CLIResultPresenter{}.PresentReport(result, orchestration.PresentationOptions{Quiet: true}, &buf)

	if buf.String() != "31\n" {
		t.Errorf("quiet presentation = %q, want %q", buf.String(), "31\n")
	}
}
