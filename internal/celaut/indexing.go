package celaut

import (
	"fmt"
	"strings"
)

// Indexing selects how a neighbour relation maps to a table row or column.
type Indexing int

const (
	// Difference indexes by the signed difference center-neighbour, offset
	// by K-1. Table side is 2K-1.
	Difference Indexing = iota
	// Comparison indexes by the three-way ordering of center against
	// neighbour: 0 less, 1 equal, 2 greater. Table side is 3.
	Comparison
)

func (ix Indexing) String() string {
	switch ix {
	case Difference:
		return "difference"
	case Comparison:
		return "comparison"
	default:
		return fmt.Sprintf("Indexing(%d)", int(ix))
	}
}

// ParseIndexing accepts the names returned by String.
func ParseIndexing(s string) (Indexing, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "difference", "diff":
		return Difference, nil
	case "comparison", "cmp":
		return Comparison, nil
	default:
		return 0, fmt.Errorf("celaut: unknown indexing %q", s)
	}
}

// Side returns the table side length for a run with the given state count.
func (ix Indexing) Side(states int) int {
	if ix == Comparison {
		return 3
	}
	return 2*states - 1
}

// index maps the relation of center to a neighbour. A missing neighbour is
// treated as equal to the center.
func (ix Indexing) index(states int, center, neighbor Cell, present bool) int {
	d := 0
	if present {
		d = center.Difference(neighbor)
	}
	if ix == Comparison {
		switch {
		case d < 0:
			return 0
		case d > 0:
			return 2
		default:
			return 1
		}
	}
	return d + states - 1
}
