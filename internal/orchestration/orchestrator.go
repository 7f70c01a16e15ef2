package orchestration

import (
	"context"
	"fmt"
	"io"
	"time"

	"golang.org/x/sync/errgroup"

	apperrors "github.com/numkit/seqcalc/internal/errors"
	"github.com/numkit/seqcalc/internal/sequence"
)

// ExecuteGenerations runs one sequence generation per kind, concurrently,
// all from the same parameters. Results are returned in kind order.
//
// The caller must have validated params.Terms (see sequence.Validate); this
// function never invokes the generators with an unvalidated term count.
//
// Parameters:
//   - ctx: The context for cancellation.
//   - kinds: The sequence kinds to generate.
//   - params: The shared input parameters.
//
// Returns:
//   - []GenerationResult: One result per requested kind.
func ExecuteGenerations(ctx context.Context, kinds []sequence.Kind, params sequence.Params) []GenerationResult {
	g, ctx := errgroup.WithContext(ctx)
	results := make([]GenerationResult, len(kinds))

	for i, k := range kinds {
		idx, kind := i, k
		g.Go(func() error {
			startTime := time.Now()
			if err := ctx.Err(); err != nil {
				results[idx] = GenerationResult{Kind: kind, Err: err}
				return nil
			}
			report, err := sequence.Compute(kind, params)
			results[idx] = GenerationResult{
				Kind: kind, Report: report, Duration: time.Since(startTime), Err: err,
			}
			return nil
		})
	}

	g.Wait()
	return results
}

// AnalyzeResults processes the results of a run and presents them.
//
// For multi-kind runs it first displays a comparison table, then presents
// each successful report in full. It returns an exit code reflecting the
// overall outcome: success when at least one kind completed, otherwise the
// code produced by the error handler for the first failure.
func AnalyzeResults(results []GenerationResult, opts PresentationOptions, presenter ResultPresenter, errHandler ErrorHandler, out io.Writer) int {
	var firstError error
	successCount := 0
	for i := range results {
		if results[i].Err != nil {
			if firstError == nil {
				firstError = results[i].Err
			}
		} else {
			successCount++
		}
	}

	if len(results) > 1 {
		presenter.PresentComparisonTable(results, out)
	}

	if successCount == 0 {
		fmt.Fprintf(out, "\nGlobal Status: Failure. No sequence could be generated.\n")
		return errHandler.HandleError(firstError, out)
	}

	for _, res := range results {
		if res.Err == nil {
			presenter.PresentReport(res, opts, out)
		}
	}

	if firstError != nil {
		// Partial failure: reports were shown, but signal the error too.
		errHandler.HandleError(firstError, out)
		return apperrors.ExitCodeFor(firstError)
	}
	return apperrors.ExitSuccess
}
