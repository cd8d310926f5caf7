package celaut

import "errors"

// Construction errors. Lookup never fails once these checks pass.
var (
	// ErrInvalidStates indicates a state count outside [MinStates, MaxStates].
	ErrInvalidStates = errors.New("celaut: invalid number of cell states")

	// ErrTableShape indicates a table that is not square with the side
	// required by its indexing.
	ErrTableShape = errors.New("celaut: table has wrong shape")

	// ErrCellRange indicates a cell value outside [0, states-1].
	ErrCellRange = errors.New("celaut: cell value out of range")

	// ErrEmptyUniverse indicates a universe without cells.
	ErrEmptyUniverse = errors.New("celaut: universe is empty")

	// ErrGenerations indicates a non-positive generation count.
	ErrGenerations = errors.New("celaut: generations must be positive")

	// ErrStatesMismatch indicates a rule built for a different number of
	// states than the automaton it drives.
	ErrStatesMismatch = errors.New("celaut: rule and automaton disagree on states")

	// ErrNilRule indicates a driver without a rule.
	ErrNilRule = errors.New("celaut: rule is nil")

	// ErrDriverDone indicates a driver that already emitted every generation.
	ErrDriverDone = errors.New("celaut: driver already done")
)
