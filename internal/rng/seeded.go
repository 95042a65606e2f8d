package rng

import "math/rand"

// Seeded is a deterministic generator for simulations and tests. It is
// substitutable for Crypto through the Generator interface.
type Seeded struct {
	r *rand.Rand
}

// NewSeeded returns a generator seeded with the given value
func NewSeeded(seed int64) *Seeded {
	return &Seeded{r: rand.New(rand.NewSource(seed))} // nolint:gosec
}

// Intn returns a random number in [0, n)
func (s *Seeded) Intn(n int) (int, error) {
	if n <= 0 {
		return 0, ErrInvalidBound
	}

	return s.r.Intn(n), nil
}
