// Package codec converts rule tables and universes to and from their text
// encodings.
//
// The character grid encoding writes one digit per table entry, column by
// column: character j*side+i holds entry [i][j]. The JSON encoding keeps the
// in-memory [i][j] nesting.
package codec

import (
	"strings"
	"unicode/utf8"

	"github.com/san-kum/celaut/internal/celaut"
)

// EncodeTable returns the character grid encoding of t.
func EncodeTable(t *celaut.Table) string {
	side := t.Side()
	var sb strings.Builder
	sb.Grow(side * side)
	for j := 0; j < side; j++ {
		for i := 0; i < side; i++ {
			sb.WriteByte(digit(t.At(i, j)))
		}
	}
	return sb.String()
}

// DecodeTable parses a character grid encoding. Errors are *DecodeError.
func DecodeTable(src string, states int, indexing celaut.Indexing) (*celaut.Table, error) {
	if err := celaut.ValidateStates(states); err != nil {
		return nil, err
	}
	side := indexing.Side(states)
	values, err := decodeDigits(src, states, side*side)
	if err != nil {
		return nil, err
	}

	rows := make([][]celaut.Cell, side)
	for i := range rows {
		rows[i] = make([]celaut.Cell, side)
		for j := range rows[i] {
			rows[i][j] = values[j*side+i]
		}
	}
	return celaut.NewTable(states, indexing, rows)
}

// EncodeUniverse writes one digit per cell.
func EncodeUniverse(u celaut.Universe) string {
	b := make([]byte, len(u))
	for i, c := range u {
		b[i] = digit(c)
	}
	return string(b)
}

// DecodeUniverse parses exactly width digits. Errors are *DecodeError.
func DecodeUniverse(src string, states, width int) (celaut.Universe, error) {
	if err := celaut.ValidateStates(states); err != nil {
		return nil, err
	}
	values, err := decodeDigits(src, states, width)
	if err != nil {
		return nil, err
	}
	return celaut.Universe(values), nil
}

func decodeDigits(src string, states, want int) ([]celaut.Cell, error) {
	if got := utf8.RuneCountInString(src); got != want {
		return nil, &DecodeError{Kind: WrongLength, Want: want, Got: got}
	}
	values := make([]celaut.Cell, 0, want)
	pos := 0
	for _, r := range src {
		if r < '0' || int(r-'0') >= states {
			return nil, &DecodeError{Kind: InvalidCharacter, Char: r, Pos: pos, Max: states - 1}
		}
		values = append(values, celaut.Cell(r-'0'))
		pos++
	}
	return values, nil
}

func digit(c celaut.Cell) byte { return '0' + byte(c) }
