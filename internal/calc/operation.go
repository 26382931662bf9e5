package calc

import (
	"strings"

	"golang.org/x/text/cases"
)

// Operation selects the arithmetic behavior of a calculation.
type Operation string

const (
	// OpAdd computes a + b.
	OpAdd Operation = "add"

	// OpSubtract computes a - b.
	OpSubtract Operation = "subtract"

	// OpMultiply computes a * b.
	OpMultiply Operation = "multiply"

	// OpDivide computes a / b, the only operation with a failure mode.
	OpDivide Operation = "divide"
)

// Operations returns the supported operations in a fixed order.
func Operations() []Operation {
	return []Operation{OpAdd, OpSubtract, OpMultiply, OpDivide}
}

// String implements fmt.Stringer.
func (o Operation) String() string {
	return string(o)
}

// ParseOperation converts a user-supplied label to an Operation.
// Labels are case-folded, so "Add" and "DIVIDE" are accepted.
// Unknown labels fail with UnsupportedOperationError.
func ParseOperation(s string) (Operation, error) {
	folded := cases.Fold().String(strings.TrimSpace(s))
	for _, op := range Operations() {
		if folded == string(op) {
			return op, nil
		}
	}
	return "", &UnsupportedOperationError{Operation: s}
}
