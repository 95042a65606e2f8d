// Package chip provides exact integer chip arithmetic for the betting engine.
package chip

import "errors"

// ErrOverflow is returned when an arithmetic operation exceeds the chip range
var ErrOverflow = errors.New("chip amount overflow")

// Amount is a count of the smallest chip unit. Arithmetic is exact; chips
// are never represented as floating point.
type Amount int64

// Add returns a+b, or ErrOverflow if the sum does not fit
func (a Amount) Add(b Amount) (Amount, error) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return 0, ErrOverflow
	}

	return sum, nil
}

// Sub returns a-b, or ErrOverflow if the difference does not fit
func (a Amount) Sub(b Amount) (Amount, error) {
	diff := a - b
	if (b < 0 && diff < a) || (b > 0 && diff > a) {
		return 0, ErrOverflow
	}

	return diff, nil
}

// Cmp returns -1 if a < b, 0 if a == b, and 1 if a > b
func (a Amount) Cmp(b Amount) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}

	return 0
}

// LessThan returns true if a < b
func (a Amount) LessThan(b Amount) bool {
	return a < b
}

// GreaterThan returns true if a > b
func (a Amount) GreaterThan(b Amount) bool {
	return a > b
}

// IsZero returns true if the amount is zero
func (a Amount) IsZero() bool {
	return a == 0
}

// IsNegative returns true if the amount is below zero
func (a Amount) IsNegative() bool {
	return a < 0
}

// Min returns the smaller of a and b
func Min(a, b Amount) Amount {
	if a < b {
		return a
	}

	return b
}

// Max returns the larger of a and b
func Max(a, b Amount) Amount {
	if a > b {
		return a
	}

	return b
}
