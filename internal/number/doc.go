// Package number provides the constrained numeric value type used by the
// calculator.
//
// Value is a sealed interface with exactly two implementations: Int and
// Float. Keeping the distinction explicit (instead of collapsing everything
// to float64) lets history entries and error messages render operands in
// their natural form: an integer input prints as "10", a division result
// prints as "2.0".
//
// Promotion rules match conventional numeric towers: an operation on two
// Ints yields an Int, any Float operand promotes the result to Float, and
// division always yields a Float (true division, never truncating).
//
// A nil Value is the "no result" sentinel. Round is absorbing on nil so a
// sentinel can flow through a rounding step without special-casing at the
// call site.
package number
