package sim

import "math/rand"

// RandSource is the randomness drawn on by spawning and drop rolls.
// *rand.Rand satisfies it.
type RandSource interface {
	Intn(n int) int
	Float64() float64
}

// NewRand returns a deterministic source for the given seed.
func NewRand(seed int64) RandSource {
	return rand.New(rand.NewSource(seed))
}
