package sequence

import (
	"fmt"
	"math"

	apperrors "github.com/numkit/seqcalc/internal/errors"
)

// Stats holds the summary statistics derived from a generated sequence.
type Stats struct {
	// First is the first term of the sequence.
	First float64
	// Last is the final generated term.
	Last float64
	// Sum is the series sum of all terms.
	Sum float64
	// Average is Sum divided by the number of terms.
	Average float64
}

// Report is the full outcome of one computation: the generated terms, the
// series sum, the derived statistics, and, for convergent geometric series,
// the infinite-series limit.
//
// Reports are recomputed fresh on every invocation; nothing is cached or
// mutated after creation.
type Report struct {
	// Kind is the progression rule that produced the terms.
	Kind Kind
	// Params are the inputs the report was computed from.
	Params Params
	// Terms is the ordered sequence, index 0 being the first term.
	Terms []float64
	// Sum is the series sum. Geometric sums use the closed form.
	Sum float64
	// InfiniteLimit is the infinite-series limit, present iff the kind is
	// geometric and |ratio| < 1.
	InfiniteLimit *float64
	// Stats are the summary statistics.
	Stats Stats
}

// Compute generates the sequence for the given kind and parameters and
// derives its sum and statistics.
//
// Callers must run Validate on the term count first; Compute does not
// re-check it. Any non-finite value produced by the computation (overflow to
// infinity, NaN) is converted into an apperrors.ComputationError at this
// boundary so presenters can surface a recoverable message.
func Compute(kind Kind, p Params) (Report, error) {
	var (
		terms []float64
		sum   float64
	)

	switch kind {
	case Arithmetic:
		terms = ArithmeticTerms(p.FirstTerm, p.Step, p.Terms)
		sum = Sum(terms)
	case Geometric:
		terms = GeometricTerms(p.FirstTerm, p.Step, p.Terms)
		sum = GeometricSum(p.FirstTerm, p.Step, p.Terms)
	default:
		return Report{}, apperrors.NewConfigError("unknown sequence kind %d", int(kind))
	}

	if err := checkFinite(terms, sum); err != nil {
		return Report{}, err
	}

	report := Report{
		Kind:   kind,
		Params: p,
		Terms:  terms,
		Sum:    sum,
		Stats: Stats{
			First:   terms[0],
			Last:    terms[len(terms)-1],
			Sum:     sum,
			Average: sum / float64(len(terms)),
		},
	}

	if kind == Geometric {
		if limit, ok := InfiniteLimit(p.FirstTerm, p.Step); ok {
			report.InfiniteLimit = &limit
		}
	}

	return report, nil
}

// checkFinite guards the computation boundary: a term or sum that overflowed
// to infinity or degenerated to NaN becomes a ComputationError.
func checkFinite(terms []float64, sum float64) error {
	for i, t := range terms {
		if math.IsInf(t, 0) || math.IsNaN(t) {
			return apperrors.NewComputationError(
				fmt.Errorf("term %d is not a finite number (got %v)", i+1, t))
		}
	}
	if math.IsInf(sum, 0) || math.IsNaN(sum) {
		return apperrors.NewComputationError(
			fmt.Errorf("series sum is not a finite number (got %v)", sum))
	}
	return nil
}
