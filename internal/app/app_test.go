package app

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	apperrors "github.com/numkit/seqcalc/internal/errors"
)

func newApp(t *testing.T, args ...string) *Application {
	t.Helper()
	application, err := New(append([]string{"seqcalc-test"}, args...), io.Discard)
	if err != nil {
		t.Fatalf("New(%v) error: %v", args, err)
	}
	return application
}

func TestNewParsesArguments(t *testing.T) {
	application := newApp(t, "-kind", "geometric", "-first", "2", "-step", "0.5", "-terms", "3")

	cfg := application.Config
	if cfg.Kind != "geometric" {
		t.Errorf("Kind = %q, want geometric", cfg.Kind)
	}
	if cfg.FirstTerm != 2 || cfg.Step != 0.5 || cfg.Terms != 3 {
		t.Errorf("params = %v/%v/%d, want 2/0.5/3", cfg.FirstTerm, cfg.Step, cfg.Terms)
	}
}

func TestNewRejectsInvalidFlags(t *testing.T) {
	if _, err := New([]string{"seqcalc-test", "-kind", "fibonacci"}, io.Discard); err == nil {
		t.Error("expected an error for an unknown kind")
	}
	if _, err := New([]string{"seqcalc-test", "-tui", "-serve"}, io.Discard); err == nil {
		t.Error("expected an error for conflicting modes")
	}
}

func TestRunQuietPrintsOnlyTheSum(t *testing.T) {
	application := newApp(t, "-quiet", "-no-color", "-kind", "geometric", "-first", "1", "-step", "2", "-terms", "5")

	var out bytes.Buffer
	code := application.Run(context.Background(), &out)

	if code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d, want %d", code, apperrors.ExitSuccess)
	}
	if out.String() != "31\n" {
		t.Errorf("quiet output = %q, want %q", out.String(), "31\n")
	}
}

func TestRunBothKindsShowsComparison(t *testing.T) {
	application := newApp(t, "-quiet", "-no-color", "-kind", "both", "-first", "1", "-step", "2", "-terms", "5")

	var out bytes.Buffer
	code := application.Run(context.Background(), &out)

	if code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d, want %d", code, apperrors.ExitSuccess)
	}
	output := out.String()
	if !strings.Contains(output, "Comparison Summary") {
		t.Errorf("missing comparison table\n%s", output)
	}
	// Arithmetic 1+3+5+7+9 = 25, geometric 1+2+4+8+16 = 31.
	if !strings.Contains(output, "25") || !strings.Contains(output, "31") {
		t.Errorf("missing series sums\n%s", output)
	}
}

func TestRunRejectsInvalidTermCount(t *testing.T) {
	application := newApp(t, "-quiet", "-no-color", "-terms", "1001")

	var out bytes.Buffer
	code := application.Run(context.Background(), &out)

	if code != apperrors.ExitErrorConfig {
		t.Errorf("exit code = %d, want %d", code, apperrors.ExitErrorConfig)
	}
	if !strings.Contains(out.String(), "cannot exceed 1000") {
		t.Errorf("missing validation message\n%s", out.String())
	}
}

func TestRunSavesReportToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.txt")
	application := newApp(t, "-quiet", "-no-color", "-kind", "geometric", "-terms", "5", "-o", path)

	var out bytes.Buffer
	if code := application.Run(context.Background(), &out); code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d", code)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("report file not written: %v", err)
	}
	if !strings.Contains(string(data), "# Kind: geometric") {
		t.Errorf("unexpected report contents\n%s", data)
	}
}

func TestHasVersionFlag(t *testing.T) {
	tests := []struct {
		args     []string
		expected bool
	}{
		{args: []string{"--version"}, expected: true},
		{args: []string{"-version"}, expected: true},
		{args: []string{"-terms", "5", "--version"}, expected: true},
		{args: []string{"-terms", "5"}, expected: false},
		{args: nil, expected: false},
	}

	for _, tt := range tests {
		if got := HasVersionFlag(tt.args); got != tt.expected {
			t.Errorf("HasVersionFlag(%v) = %v, want %v", tt.args, got, tt.expected)
		}
	}
}

func TestPrintVersion(t *testing.T) {
	var out bytes.Buffer
	PrintVersion(&out)
	if !strings.Contains(out.String(), "seqcalc") || !strings.Contains(out.String(), Version) {
		t.Errorf("unexpected version banner %q", out.String())
	}
}

func TestIsHelpError(t *testing.T) {
	_, err := New([]string{"seqcalc-test", "-h"}, io.Discard)
	if err == nil {
		t.Fatal("expected flag.ErrHelp")
	}
	if !IsHelpError(err) {
		t.Errorf("IsHelpError(%v) = false, want true", err)
	}
}
