package app

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/numkit/seqcalc/internal/cli"
	"github.com/numkit/seqcalc/internal/logging"
	"github.com/numkit/seqcalc/internal/orchestration"
)

// runCalculate executes the one-shot generation mode: validate, generate the
// requested kinds concurrently, present the results, and optionally save the
// report to a file.
func (a *Application) runCalculate(ctx context.Context, out io.Writer) int {
	presenter := cli.CLIResultPresenter{}

	// Reject an out-of-range term count before any generator runs.
	if err := a.validateTerms(); err != nil {
		return presenter.HandleError(err, out)
	}

	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	ctx, cancel := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancel()

	if !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, out)
	}

	kinds := a.Config.Kinds()
	params := a.Config.Params()

	var results []orchestration.GenerationResult
	if a.Config.Quiet {
		results = orchestration.ExecuteGenerations(ctx, kinds, params)
	} else {
		_ = cli.RunWithSpinner(out, "Generating sequence...", func() error {
			results = orchestration.ExecuteGenerations(ctx, kinds, params)
			return nil
		})
	}

	opts := orchestration.PresentationOptions{
		Quiet:   a.Config.Quiet,
		Verbose: a.Config.Verbose,
	}
	exitCode := orchestration.AnalyzeResults(results, opts, presenter, presenter, out)

	a.saveReport(results, out)

	return exitCode
}

// saveReport writes the first successful result to the configured output file.
// A write failure is reported as a warning and does not change the exit code.
func (a *Application) saveReport(results []orchestration.GenerationResult, out io.Writer) {
	if a.Config.OutputFile == "" {
		return
	}

	for _, res := range results {
		if res.Err != nil {
			continue
		}
		outCfg := cli.OutputConfig{
			OutputFile: a.Config.OutputFile,
			Quiet:      a.Config.Quiet,
			Verbose:    a.Config.Verbose,
		}
		if err := cli.WriteReportToFile(res, outCfg); err != nil {
			a.Log.Error("failed to save report", logging.Err(err))
			fmt.Fprintf(a.ErrWriter, "Warning: %v\n", err)
			return
		}
		if !a.Config.Quiet {
			cli.ConfirmFileSaved(out, a.Config.OutputFile)
		}
		return
	}
}
