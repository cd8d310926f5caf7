package celaut

import "math/rand/v2"

// NewRand creates a deterministic random source for the given seed.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// RandomCell samples a cell uniformly over [0, states).
func RandomCell(rng *rand.Rand, states int) Cell {
	return Cell(rng.IntN(states))
}

// RandomUniverse samples width cells independently.
func RandomUniverse(rng *rand.Rand, states, width int) Universe {
	u := make(Universe, width)
	for i := range u {
		u[i] = RandomCell(rng, states)
	}
	return u
}
