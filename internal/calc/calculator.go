package calc

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/roach88/tally/internal/number"
)

// DefaultPrecision is the number of decimal digits results are rounded to
// when no override is given at construction.
const DefaultPrecision = 2

// Calculator performs arithmetic and records a history of computations.
//
// Precision is fixed at construction. History grows by exactly one entry
// per successful Calculate call, in call order, and is never rewritten.
type Calculator struct {
	mu        sync.Mutex
	precision int
	history   []string
	log       *slog.Logger
}

// New creates a Calculator with DefaultPrecision.
func New() *Calculator {
	return NewWithPrecision(DefaultPrecision)
}

// NewWithPrecision creates a Calculator rounding to the given number of
// decimal digits. Negative precision is clamped to 0.
func NewWithPrecision(precision int) *Calculator {
	if precision < 0 {
		precision = 0
	}
	return &Calculator{
		precision: precision,
		log:       slog.Default(),
	}
}

// SetLogger replaces the logger used for division-by-zero diagnostics.
// Tests use this to capture and count diagnostic records.
func (c *Calculator) SetLogger(log *slog.Logger) {
	c.log = log
}

// Precision returns the configured rounding precision.
func (c *Calculator) Precision() int {
	return c.precision
}

// History returns a copy of the computation log, in insertion order.
// Each entry has the form "<a> <operation> <b> = <rounded result>".
func (c *Calculator) History() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.history)
}

// Calculate is the main entry point for computations. It dispatches to
// PerformOperation, rounds the raw result to the configured precision,
// appends a history entry using the rounded value, and returns that value.
//
// A division by zero surfaces here only as a nil result: the error was
// already absorbed by PerformOperation, rounding is absorbing on the nil
// sentinel, and no history entry is written for the failed attempt.
//
// The only error Calculate returns is UnsupportedOperationError for a
// label outside the supported set.
func (c *Calculator) Calculate(op Operation, a, b number.Value) (number.Value, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	result, err := c.PerformOperation(op, a, b)
	if err != nil {
		return nil, err
	}

	rounded := number.Round(result, c.precision)
	if rounded == nil {
		return nil, nil
	}

	c.history = append(c.history, fmt.Sprintf("%s %s %s = %s", a, op, b, rounded))

	return rounded, nil
}

// PerformOperation maps the operation label to its arithmetic and is the
// sole layer that catches division-by-zero. On that condition it emits
// exactly one diagnostic record naming both operands and carrying the
// error's own message, then returns the nil sentinel with a nil error.
//
// Unknown labels fail with UnsupportedOperationError.
func (c *Calculator) PerformOperation(op Operation, a, b number.Value) (number.Value, error) {
	switch op {
	case OpAdd:
		return number.Add(a, b), nil
	case OpSubtract:
		return number.Sub(a, b), nil
	case OpMultiply:
		return number.Mul(a, b), nil
	case OpDivide:
		result, err := c.Divide(a, b)
		if err != nil {
			var dz *DivisionByZeroError
			if errors.As(err, &dz) {
				c.log.Error("attempted to divide by zero",
					"a", a.String(),
					"b", b.String(),
					"error", dz.Error())
				return nil, nil
			}
			return nil, err
		}
		return result, nil
	default:
		return nil, &UnsupportedOperationError{Operation: string(op)}
	}
}

// Divide validates the divisor and performs true division. A zero divisor
// fails with DivisionByZeroError carrying the dividend; the check is exact
// equality, no epsilon tolerance. No rounding happens at this layer.
func (c *Calculator) Divide(a, b number.Value) (number.Value, error) {
	if b.Float64() == 0 {
		return nil, &DivisionByZeroError{Dividend: a}
	}
	return number.Div(a, b), nil
}
