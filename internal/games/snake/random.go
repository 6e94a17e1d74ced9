package snake

import "math/rand"

// Random is the source of randomness for food placement.
// It is an interface so tests can script the sequence of cells sampled.
type Random interface {
	// Intn returns a random int in [0, n)
	Intn(n int) int
}

// NewRandom returns a seeded pseudo-random source.
func NewRandom(seed int64) Random {
	return rand.New(rand.NewSource(seed))
}
