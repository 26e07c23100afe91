// Package arithmetic implements the calculator's operations as pure functions.
package arithmetic

import (
	"errors"
	"math"
)

// ErrDivisionByZero is returned by Divide when the divisor is zero.
var ErrDivisionByZero = errors.New("Cannot divide by zero")

// Add returns a + b.
func Add(a, b float64) float64 {
	return a + b
}

// Subtract returns a - b.
func Subtract(a, b float64) float64 {
	return a - b
}

// Multiply returns a * b.
func Multiply(a, b float64) float64 {
	return a * b
}

// Divide returns a / b, or ErrDivisionByZero when b is zero (of either sign).
func Divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return a / b, nil
}

// Power returns base raised to exponent. Undefined combinations such as a
// negative base with a fractional exponent yield NaN, overflow yields Inf.
func Power(base, exponent float64) float64 {
	return math.Pow(base, exponent)
}
