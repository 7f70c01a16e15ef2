package sequence

import (
	"fmt"
	"math"
	"strings"

	apperrors "github.com/numkit/seqcalc/internal/errors"
)

// MaxTerms is the upper bound on the number of terms a caller may request.
// Larger sequences are rejected before generation for performance reasons.
const MaxTerms = 1000

// Kind identifies the progression rule used to generate terms.
type Kind int

const (
	// Arithmetic sequences advance by a constant additive step (the common
	// difference): element i = first + i*d.
	Arithmetic Kind = iota
	// Geometric sequences advance by a constant multiplicative step (the
	// common ratio): element i = first * r^i.
	Geometric
)

// String returns the human-readable name of the kind.
func (k Kind) String() string {
	switch k {
	case Arithmetic:
		return "arithmetic"
	case Geometric:
		return "geometric"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Title returns the display title of the kind (e.g., "Arithmetic Sequence").
func (k Kind) Title() string {
	switch k {
	case Arithmetic:
		return "Arithmetic Sequence"
	case Geometric:
		return "Geometric Sequence"
	default:
		return "Unknown Sequence"
	}
}

// StepName returns the name of the step parameter for the kind: the common
// difference for arithmetic sequences, the common ratio for geometric ones.
func (k Kind) StepName() string {
	if k == Geometric {
		return "common ratio"
	}
	return "common difference"
}

// ParseKind parses a kind name. Accepted values are "arithmetic" (alias
// "arith") and "geometric" (alias "geo"), case-insensitive.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "arithmetic", "arith", "a":
		return Arithmetic, nil
	case "geometric", "geo", "g":
		return Geometric, nil
	default:
		return Arithmetic, apperrors.NewConfigError("unknown sequence kind %q (expected arithmetic or geometric)", s)
	}
}

// Params holds the three scalar inputs that define a sequence. It is a plain
// immutable value type with no identity beyond a single computation.
type Params struct {
	// FirstTerm is the initial value of the sequence (a1).
	FirstTerm float64
	// Step is the common difference (arithmetic) or common ratio (geometric).
	Step float64
	// Terms is the number of terms to generate. Must satisfy
	// 1 <= Terms <= MaxTerms; see Validate.
	Terms int
}

// Validate checks that the requested term count is a positive integer no
// greater than MaxTerms. It returns an apperrors.ValidationError otherwise.
//
// This is the caller-side guard: the generators themselves never validate,
// and must not be invoked with an out-of-range term count.
func Validate(terms int) error {
	if terms <= 0 {
		return apperrors.ValidationError{
			Field:   "terms",
			Message: "number of terms must be a positive integer",
		}
	}
	if terms > MaxTerms {
		return apperrors.ValidationError{
			Field:   "terms",
			Message: fmt.Sprintf("number of terms cannot exceed %d for performance reasons", MaxTerms),
		}
	}
	return nil
}

// ArithmeticTerms generates an arithmetic progression of n terms where
// element i = first + i*diff for i = 0..n-1.
//
// The caller must have validated n (see Validate); n < 1 is a precondition
// violation.
func ArithmeticTerms(first, diff float64, n int) []float64 {
	terms := make([]float64, n)
	for i := range terms {
		terms[i] = first + float64(i)*diff
	}
	return terms
}

// GeometricTerms generates a geometric progression of n terms where
// element i = first * ratio^i for i = 0..n-1.
//
// ratio^0 is 1 by convention even when ratio is 0, so element 0 always equals
// first exactly; a zero ratio yields the degenerate sequence
// (first, 0, 0, ...). Preconditions are the same as ArithmeticTerms.
func GeometricTerms(first, ratio float64, n int) []float64 {
	terms := make([]float64, n)
	for i := range terms {
		// math.Pow(0, 0) == 1, which keeps the i=0 edge exact.
		terms[i] = first * math.Pow(ratio, float64(i))
	}
	return terms
}

// GeometricSum computes the finite sum of a geometric series using the closed
// form:
//
//	S_n = first * (1 - ratio^n) / (1 - ratio)
//
// When ratio == 1 the closed form divides by zero, so the sum degenerates to
// first * n. The result matches an elementwise sum of GeometricTerms up to
// floating-point rounding.
func GeometricSum(first, ratio float64, n int) float64 {
	if ratio == 1 {
		return first * float64(n)
	}
	return first * (1 - math.Pow(ratio, float64(n))) / (1 - ratio)
}

// Sum returns the plain elementwise sum of a sequence. Arithmetic series
// sums are computed this way.
func Sum(terms []float64) float64 {
	var total float64
	for _, t := range terms {
		total += t
	}
	return total
}

// InfiniteLimit returns the value an infinite geometric series converges to,
// first / (1 - ratio), and whether it is defined. The limit exists iff
// |ratio| < 1; a zero ratio still has a valid limit equal to first.
func InfiniteLimit(first, ratio float64) (float64, bool) {
	if math.Abs(ratio) >= 1 {
		return 0, false
	}
	return first / (1 - ratio), true
}
