// Package calc implements the tally calculator.
//
// The calculator performs four arithmetic operations, keeps an ordered
// in-memory history of successful computations, and demonstrates a
// deliberate two-tier error handling boundary:
//
// LAYERING:
//
//	Calculate        top layer: dispatch, round, record history
//	PerformOperation middle layer: operation dispatch, sole catch point
//	                 for division-by-zero
//	Divide           bottom layer: raises DivisionByZeroError
//
// A division by zero never reaches the caller of Calculate as an error.
// PerformOperation absorbs it: it logs one diagnostic record and collapses
// the result to the nil sentinel. The caller observes a missing value plus
// a log line, not an error value. No history entry is written for the
// failed attempt.
//
// Unknown operation labels are different: they are a caller mistake, not a
// domain condition, and fail loudly with UnsupportedOperationError.
//
// History is append-only and insertion-ordered. The compute-round-append
// sequence in Calculate runs under a mutex so a Calculator shared between
// goroutines still appends at most one entry per call.
package calc
