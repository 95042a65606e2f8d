// Package rng provides the random number source consumed by dealing and
// simulation code. The betting engine itself never draws randomness.
package rng

import "errors"

// ErrInvalidBound is returned when Intn is called with a non-positive bound
var ErrInvalidBound = errors.New("bound must be greater than zero")

// Generator provides a simple random number
type Generator interface {
	// Intn returns a uniform random number in [0, n). It fails when n <= 0.
	Intn(n int) (int, error)
}
