package metrics

import (
	"math"

	"github.com/san-kum/celaut/internal/celaut"
)

// Entropy is the Shannon entropy, in bits, of the state histogram of a
// generation. It ranges from 0 (uniform row) to log2(states).
type Entropy struct {
	series
	counts []int
}

func NewEntropy(states int) *Entropy {
	return &Entropy{series: series{name: "entropy"}, counts: make([]int, states)}
}

func (e *Entropy) OnGeneration(y int, u celaut.Universe) {
	for i := range e.counts {
		e.counts[i] = 0
	}
	for _, c := range u {
		if c.Int() < len(e.counts) {
			e.counts[c]++
		}
	}

	h := 0.0
	n := float64(len(u))
	for _, count := range e.counts {
		if count == 0 {
			continue
		}
		p := float64(count) / n
		h -= p * math.Log2(p)
	}
	e.values = append(e.values, h)
}
