package calc

import (
	"errors"
	"fmt"
	"strings"

	"github.com/roach88/tally/internal/number"
)

// DivisionByZeroError reports a division requested with a zero divisor.
//
// It is raised by Divide and caught by PerformOperation - it never
// propagates past the dispatch layer. The dividend is carried for
// diagnostic message construction.
type DivisionByZeroError struct {
	// Dividend is the value that was to be divided, rendered in its
	// natural string form in the message.
	Dividend number.Value
}

// Error implements the error interface.
func (e *DivisionByZeroError) Error() string {
	return fmt.Sprintf("Cannot divide %s by zero", e.Dividend)
}

// UnsupportedOperationError reports an operation label outside the
// supported set.
type UnsupportedOperationError struct {
	// Operation is the rejected label, as given by the caller.
	Operation string
}

// Error implements the error interface.
func (e *UnsupportedOperationError) Error() string {
	names := make([]string, len(Operations()))
	for i, op := range Operations() {
		names[i] = string(op)
	}
	return fmt.Sprintf("unsupported operation %q: must be one of %s",
		e.Operation, strings.Join(names, ", "))
}

// IsDivisionByZero returns true if the error is a division-by-zero error.
// Uses errors.As to handle wrapped errors.
func IsDivisionByZero(err error) bool {
	var dz *DivisionByZeroError
	return errors.As(err, &dz)
}

// IsUnsupportedOperation returns true if the error is an unsupported
// operation error. Uses errors.As to handle wrapped errors.
func IsUnsupportedOperation(err error) bool {
	var uo *UnsupportedOperationError
	return errors.As(err, &uo)
}
