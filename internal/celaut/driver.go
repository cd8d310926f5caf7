package celaut

import "fmt"

// Sink receives every emitted cell of every generation.
type Sink interface {
	SetValue(x, y int, v Cell)
}

type SinkFunc func(x, y int, v Cell)

func (f SinkFunc) SetValue(x, y int, v Cell) { f(x, y, v) }

// Discard is a Sink that drops every value.
var Discard Sink = SinkFunc(func(int, int, Cell) {})

// Observer is notified once per generation, after the row was emitted.
// The universe must not be retained.
type Observer interface {
	OnGeneration(y int, u Universe)
}

// Driver runs an automaton for a fixed number of generations. It is single
// use: once every generation was emitted it stays done.
type Driver struct {
	automaton   *Automaton
	rule        Rule
	generations int
	row         int
	observers   []Observer
}

// NewDriver checks that rule fits a. A rule that reports its state count,
// such as *Table, must agree with the automaton.
func NewDriver(a *Automaton, rule Rule, generations int) (*Driver, error) {
	if a == nil {
		return nil, ErrEmptyUniverse
	}
	if rule == nil {
		return nil, ErrNilRule
	}
	if sr, ok := rule.(interface{ States() int }); ok && sr.States() != a.States() {
		return nil, fmt.Errorf("%w: rule has %d, automaton has %d", ErrStatesMismatch, sr.States(), a.States())
	}
	if generations <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrGenerations, generations)
	}
	return &Driver{
		automaton:   a,
		rule:        rule,
		generations: generations,
		observers:   make([]Observer, 0),
	}, nil
}

func (d *Driver) AddObserver(o Observer) { d.observers = append(d.observers, o) }

func (d *Driver) Row() int         { return d.row }
func (d *Driver) Generations() int { return d.generations }
func (d *Driver) Done() bool       { return d.row >= d.generations }

// Step emits the current generation, then advances the automaton.
func (d *Driver) Step(sink Sink) error {
	if d.Done() {
		return ErrDriverDone
	}

	y := d.row
	for x, v := range d.automaton.cur {
		sink.SetValue(x, y, v)
	}
	for _, o := range d.observers {
		o.OnGeneration(y, d.automaton.cur)
	}

	if err := d.automaton.Advance(d.rule); err != nil {
		return fmt.Errorf("generation %d: %w", y, err)
	}
	d.row++
	return nil
}

// Run steps until every generation has been emitted.
func (d *Driver) Run(sink Sink) error {
	if d.Done() {
		return ErrDriverDone
	}
	for !d.Done() {
		if err := d.Step(sink); err != nil {
			return err
		}
	}
	return nil
}
