package celaut

import (
	"fmt"
	"math/rand/v2"
)

// Table is an immutable square lookup table. Entry [i][j] is the next centre
// value when the left relation maps to i and the right relation maps to j.
// Index 0 is the most negative relation (neighbour greater than centre).
type Table struct {
	states   int
	indexing Indexing
	side     int
	cells    []Cell
}

// NewTable builds a table from explicit entries. The entries are copied.
func NewTable(states int, indexing Indexing, entries [][]Cell) (*Table, error) {
	if err := ValidateStates(states); err != nil {
		return nil, err
	}
	side := indexing.Side(states)
	if len(entries) != side {
		return nil, fmt.Errorf("%w: %d rows, want %d", ErrTableShape, len(entries), side)
	}

	t := &Table{states: states, indexing: indexing, side: side, cells: make([]Cell, side*side)}
	for i, row := range entries {
		if len(row) != side {
			return nil, fmt.Errorf("%w: row %d has %d entries, want %d", ErrTableShape, i, len(row), side)
		}
		for j, v := range row {
			if int(v) >= states {
				return nil, fmt.Errorf("%w: entry [%d][%d] = %d with %d states", ErrCellRange, i, j, v, states)
			}
			t.cells[i*side+j] = v
		}
	}
	return t, nil
}

// RandomTable samples every entry independently and uniformly over the
// states. It only fails for an unsupported state count.
func RandomTable(rng *rand.Rand, states int, indexing Indexing) (*Table, error) {
	if err := ValidateStates(states); err != nil {
		return nil, err
	}
	side := indexing.Side(states)
	t := &Table{states: states, indexing: indexing, side: side, cells: make([]Cell, side*side)}
	for i := range t.cells {
		t.cells[i] = RandomCell(rng, states)
	}
	return t, nil
}

func (t *Table) States() int              { return t.states }
func (t *Table) Indexing() Indexing       { return t.indexing }
func (t *Table) Side() int                { return t.side }
func (t *Table) At(i, j int) Cell         { return t.cells[i*t.side+j] }
func (t *Table) Next(n Neighborhood) Cell { return t.Lookup(n) }

// Lookup returns the stored next value for the neighbourhood.
func (t *Table) Lookup(n Neighborhood) Cell {
	i := t.indexing.index(t.states, n.Center, n.Left, n.HasLeft)
	j := t.indexing.index(t.states, n.Center, n.Right, n.HasRight)
	return t.cells[i*t.side+j]
}

// Entries returns a copy of the table as rows.
func (t *Table) Entries() [][]Cell {
	out := make([][]Cell, t.side)
	for i := range out {
		out[i] = make([]Cell, t.side)
		copy(out[i], t.cells[i*t.side:(i+1)*t.side])
	}
	return out
}

// Equal reports whether both tables have the same configuration and entries.
func (t *Table) Equal(other *Table) bool {
	if t == nil || other == nil {
		return t == other
	}
	if t.states != other.states || t.indexing != other.indexing || t.side != other.side {
		return false
	}
	for i := range t.cells {
		if t.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}
