package rng

import (
	"crypto/rand"
	"math/big"
)

// Crypto wraps the crypto/rand library
type Crypto struct{}

// Intn returns a random number in [0, n)
func (c Crypto) Intn(n int) (int, error) {
	if n <= 0 {
		return 0, ErrInvalidBound
	}

	b, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}

	return int(b.Int64()), nil
}
