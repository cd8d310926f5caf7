// Package celaut provides the state-transition engine for one-dimensional
// cellular automata whose rule is a neighbour-relation lookup table.
//
// The package defines the core types of a run:
//
//   - [Cell]: one of K ordered discrete states
//   - [Table]: square lookup table indexed by how the left and right
//     neighbours relate to the centre cell
//   - [Automaton]: fixed-width universe advanced by a [Rule]
//   - [Driver]: emits every generation to a [Sink] before advancing
//
// # Example
//
//	rng := celaut.NewRand(42)
//	tbl, _ := celaut.RandomTable(rng, 4, celaut.Difference)
//	a, _ := celaut.NewAutomaton(4, celaut.RandomUniverse(rng, 4, 128))
//	d, _ := celaut.NewDriver(a, tbl, 128)
//	_ = d.Run(sink)
//
// # Thread Safety
//
// A [Table] is immutable after construction and may be shared by any number
// of concurrent runs. [Automaton] and [Driver] are owned by a single run and
// are NOT thread-safe.
package celaut
