package codec

import (
	"encoding/json"
	"fmt"

	"github.com/san-kum/celaut/internal/celaut"
)

type tableJSON struct {
	States   int             `json:"states"`
	Indexing string          `json:"indexing"`
	Table    [][]celaut.Cell `json:"tbl"`
}

// MarshalTableJSON encodes t with tbl[i][j] equal to entry [i][j].
func MarshalTableJSON(t *celaut.Table) ([]byte, error) {
	return json.Marshal(tableJSON{
		States:   t.States(),
		Indexing: t.Indexing().String(),
		Table:    t.Entries(),
	})
}

// UnmarshalTableJSON decodes a table. Missing states and indexing fall back
// to the given defaults, so bare {"tbl": ...} documents are accepted. A bare
// comparison document is read in the legacy [right][left] layout and
// transposed.
func UnmarshalTableJSON(data []byte, states int, indexing celaut.Indexing) (*celaut.Table, error) {
	var doc struct {
		States   int             `json:"states"`
		Indexing *string         `json:"indexing"`
		Table    [][]celaut.Cell `json:"tbl"`
	}
	doc.States = states
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode table json: %w", err)
	}

	ix := indexing
	if doc.Indexing != nil {
		var err error
		if ix, err = celaut.ParseIndexing(*doc.Indexing); err != nil {
			return nil, err
		}
	} else if ix == celaut.Comparison {
		doc.Table = transpose(doc.Table)
	}
	return celaut.NewTable(doc.States, ix, doc.Table)
}

// transpose swaps rows and columns of a square matrix. Ragged input is
// returned as is and rejected by NewTable.
func transpose(m [][]celaut.Cell) [][]celaut.Cell {
	for _, row := range m {
		if len(row) != len(m) {
			return m
		}
	}
	out := make([][]celaut.Cell, len(m))
	for i := range out {
		out[i] = make([]celaut.Cell, len(m))
		for j := range out[i] {
			out[i][j] = m[j][i]
		}
	}
	return out
}

// GridFromJSON converts a JSON table to its character grid encoding.
func GridFromJSON(data []byte, states int, indexing celaut.Indexing) (string, error) {
	t, err := UnmarshalTableJSON(data, states, indexing)
	if err != nil {
		return "", err
	}
	return EncodeTable(t), nil
}

// JSONFromGrid converts a character grid encoding to a JSON table.
func JSONFromGrid(src string, states int, indexing celaut.Indexing) ([]byte, error) {
	t, err := DecodeTable(src, states, indexing)
	if err != nil {
		return nil, err
	}
	return MarshalTableJSON(t)
}
