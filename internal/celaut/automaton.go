package celaut

import "fmt"

// Universe is the state of every cell at one generation.
type Universe []Cell

func (u Universe) Clone() Universe {
	c := make(Universe, len(u))
	copy(c, u)
	return c
}

// Automaton owns a universe and advances it in place.
type Automaton struct {
	states int
	cur    Universe
	next   Universe
}

// NewAutomaton copies cells into a new automaton. Every cell must be a valid
// state for the run.
func NewAutomaton(states int, cells []Cell) (*Automaton, error) {
	if err := ValidateStates(states); err != nil {
		return nil, err
	}
	if len(cells) == 0 {
		return nil, ErrEmptyUniverse
	}
	for i, c := range cells {
		if int(c) >= states {
			return nil, fmt.Errorf("%w: cell %d = %d with %d states", ErrCellRange, i, c, states)
		}
	}
	a := &Automaton{
		states: states,
		cur:    make(Universe, len(cells)),
		next:   make(Universe, len(cells)),
	}
	copy(a.cur, cells)
	return a, nil
}

func (a *Automaton) States() int { return a.states }
func (a *Automaton) Len() int    { return len(a.cur) }
func (a *Automaton) At(i int) Cell {
	return a.cur[i]
}

// Universe returns a copy of the current generation.
func (a *Automaton) Universe() Universe { return a.cur.Clone() }

// Advance replaces the universe with the next generation. Every new cell is
// computed from the previous generation only. If the rule yields a value
// outside the automaton's states the universe is left unchanged.
func (a *Automaton) Advance(rule Rule) error {
	last := len(a.cur) - 1
	for i, c := range a.cur {
		n := Neighborhood{Center: c}
		if i > 0 {
			n.Left, n.HasLeft = a.cur[i-1], true
		}
		if i < last {
			n.Right, n.HasRight = a.cur[i+1], true
		}
		v := rule.Next(n)
		if int(v) >= a.states {
			return fmt.Errorf("%w: rule produced %d for cell %d with %d states", ErrCellRange, v, i, a.states)
		}
		a.next[i] = v
	}
	a.cur, a.next = a.next, a.cur
	return nil
}
