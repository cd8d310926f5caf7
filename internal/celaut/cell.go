package celaut

import "fmt"

const (
	MinStates = 2
	MaxStates = 10
)

// Cell is a discrete cell state. Its integer encoding is the value itself.
type Cell uint8

var cellNames = [MaxStates]string{
	"Zero", "One", "Two", "Three", "Four",
	"Five", "Six", "Seven", "Eight", "Nine",
}

func (c Cell) Int() int { return int(c) }

// Difference returns c - other, in [-(K-1), K-1] for cells of a K-state run.
func (c Cell) Difference(other Cell) int {
	return int(c) - int(other)
}

func (c Cell) String() string {
	if int(c) < len(cellNames) {
		return cellNames[c]
	}
	return fmt.Sprintf("Cell(%d)", uint8(c))
}

func (c Cell) MarshalText() ([]byte, error) {
	if int(c) >= len(cellNames) {
		return nil, fmt.Errorf("%w: %d", ErrCellRange, uint8(c))
	}
	return []byte(cellNames[c]), nil
}

func (c *Cell) UnmarshalText(text []byte) error {
	name := string(text)
	for i, n := range cellNames {
		if n == name {
			*c = Cell(i)
			return nil
		}
	}
	return fmt.Errorf("%w: unknown cell %q", ErrCellRange, name)
}

// ValidateStates reports whether k is a supported number of cell states.
func ValidateStates(k int) error {
	if k < MinStates || k > MaxStates {
		return fmt.Errorf("%w: %d (want %d..%d)", ErrInvalidStates, k, MinStates, MaxStates)
	}
	return nil
}

// Neighborhood is the input of a transition. A missing neighbour (off the
// edge of the universe) has its Has flag unset.
type Neighborhood struct {
	Left     Cell
	Center   Cell
	Right    Cell
	HasLeft  bool
	HasRight bool
}

// Rule computes the next value of a centre cell. Next must return a state
// below the automaton's state count; Advance rejects anything else.
type Rule interface {
	Next(n Neighborhood) Cell
}

type RuleFunc func(n Neighborhood) Cell

func (f RuleFunc) Next(n Neighborhood) Cell { return f(n) }
