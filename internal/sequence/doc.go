// Package sequence implements the numeric core of the calculator: arithmetic
// and geometric progression generation, finite series summation, and the
// derived statistics used by the presentation surfaces.
//
// All functions are pure and stateless. Term-count validation is deliberately
// kept out of the generators: callers must run Validate before invoking them.
package sequence
