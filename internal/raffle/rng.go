package raffle

import (
	cryptoRand "crypto/rand"
	"math/rand/v2"
)

// RandomSource abstracts the uniform integer source used by Simulate
type RandomSource interface {
	// IntN returns a uniform integer in [0, n). n must be > 0.
	IntN(n int) int
}

// DefaultRNG returns a fresh ChaCha8 source keyed from crypto/rand.
// Sources are not safe for concurrent use; take one per simulation.
func DefaultRNG() RandomSource {
	var seed [32]byte
	if _, err := cryptoRand.Read(seed[:]); err != nil {
		// fall back to the runtime-seeded global source
		return globalRNG{}
	}
	return rand.New(rand.NewChaCha8(seed))
}

// NewSeededRNG returns a reproducible source (e.g. tests, benchmarks)
func NewSeededRNG(seed uint64) RandomSource {
	return rand.New(rand.NewPCG(seed, 0))
}

type globalRNG struct{}

func (globalRNG) IntN(n int) int { return rand.IntN(n) }
