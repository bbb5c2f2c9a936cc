package damage

import (
	"crypto/rand"
	"math/big"
)

// Source supplies the randomness the engine draws a damage roll factor
// from when the caller does not pin one explicitly.
type Source interface {
	Intn(n int) int
}

// factorSteps is the resolution the random factor is sampled at.
const factorSteps = 1 << 20

// cryptoSource implements Source using crypto/rand.
type cryptoSource struct{}

// NewCryptoSource returns a Source backed by crypto/rand.
//
// Postcondition: Every value returned by Intn is in [0, n).
func NewCryptoSource() Source {
	return &cryptoSource{}
}

// Intn returns a cryptographically secure random int in [0, n).
//
// Precondition: n > 0. Panics with "damage: Intn called with n <= 0" if
// n <= 0. Panics if crypto/rand fails.
func (c *cryptoSource) Intn(n int) int {
	if n <= 0 {
		panic("damage: Intn called with n <= 0")
	}
	val, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic("damage: crypto/rand failure: " + err.Error())
	}
	return int(val.Int64())
}

// drawFactor samples a damage roll factor uniformly from [0.85, 1.0).
func drawFactor(src Source) float64 {
	return 0.85 + 0.15*float64(src.Intn(factorSteps))/float64(factorSteps)
}
