package number

import (
	"math"
	"strconv"
	"strings"
)

// Value is a sealed interface representing a calculator number.
// Only Int and Float implement it. A nil Value is the "no result" sentinel.
type Value interface {
	numValue() // Sealed - only these types implement it

	// Float64 returns the value widened to float64.
	Float64() float64

	// String renders the value in its natural form: Int as a plain
	// decimal, Float with a decimal point even when integral.
	String() string
}

// Int represents an integer-valued number.
type Int int64

func (Int) numValue() {}

// Float64 implements Value.
func (n Int) Float64() float64 { return float64(n) }

// String renders the integer without a decimal point.
func (n Int) String() string {
	return strconv.FormatInt(int64(n), 10)
}

// Float represents a floating-point number.
type Float float64

func (Float) numValue() {}

// Float64 implements Value.
func (f Float) Float64() float64 { return float64(f) }

// String renders the float in shortest round-trip form, forcing a decimal
// point for integral values so a Float never reads like an Int ("2.0",
// not "2").
func (f Float) String() string {
	v := float64(f)
	if math.IsInf(v, 1) {
		return "inf"
	}
	if math.IsInf(v, -1) {
		return "-inf"
	}
	if math.IsNaN(v) {
		return "nan"
	}
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// NewInt creates an Int value.
func NewInt(n int64) Int {
	return Int(n)
}

// NewFloat creates a Float value.
func NewFloat(f float64) Float {
	return Float(f)
}

// Parse converts a numeric literal to a Value, preserving the
// integer-vs-float distinction of the input: "10" parses to Int(10),
// "10.0" and "1e3" parse to Float.
func Parse(s string) (Value, error) {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Int(n), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	return Float(f), nil
}

// Add returns a + b, promoting to Float if either operand is a Float.
func Add(a, b Value) Value {
	if x, y, ok := bothInt(a, b); ok {
		return Int(x + y)
	}
	return Float(a.Float64() + b.Float64())
}

// Sub returns a - b, promoting to Float if either operand is a Float.
func Sub(a, b Value) Value {
	if x, y, ok := bothInt(a, b); ok {
		return Int(x - y)
	}
	return Float(a.Float64() - b.Float64())
}

// Mul returns a * b, promoting to Float if either operand is a Float.
func Mul(a, b Value) Value {
	if x, y, ok := bothInt(a, b); ok {
		return Int(x * y)
	}
	return Float(a.Float64() * b.Float64())
}

// Div returns a / b as a Float. Division is always true division, even
// for two Int operands: 10 / 5 is Float(2.0), not Int(2).
//
// Div does not check the divisor. The zero-divisor invariant belongs to
// the calculator layer, which owns the error for it.
func Div(a, b Value) Value {
	return Float(a.Float64() / b.Float64())
}

// Round rounds v to the given number of decimal digits using
// round-half-to-even. Int values are already exact and pass through
// unchanged. Round is absorbing on the nil sentinel: Round(nil, n) is nil.
func Round(v Value, digits int) Value {
	switch n := v.(type) {
	case nil:
		return nil
	case Int:
		return n
	case Float:
		f := float64(n)
		if math.IsInf(f, 0) || math.IsNaN(f) {
			return n
		}
		shift := math.Pow(10, float64(digits))
		return Float(math.RoundToEven(f*shift) / shift)
	default:
		return v
	}
}

func bothInt(a, b Value) (int64, int64, bool) {
	x, okA := a.(Int)
	y, okB := b.(Int)
	if okA && okB {
		return int64(x), int64(y), true
	}
	return 0, 0, false
}
