package celaut_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/celaut/internal/celaut"
)

type emission struct {
	X, Y int
	V    celaut.Cell
}

type recorder struct {
	emissions []emission
}

func (r *recorder) SetValue(x, y int, v celaut.Cell) {
	r.emissions = append(r.emissions, emission{X: x, Y: y, V: v})
}

func (r *recorder) row(y, width int) celaut.Universe {
	u := make(celaut.Universe, width)
	for _, e := range r.emissions[y*width : (y+1)*width] {
		u[e.X] = e.V
	}
	return u
}

type rowCounter struct {
	rows []int
}

func (c *rowCounter) OnGeneration(y int, u celaut.Universe) { c.rows = append(c.rows, y) }

var identity = celaut.RuleFunc(func(n celaut.Neighborhood) celaut.Cell { return n.Center })

var _ = Describe("Automaton", func() {
	It("rejects empty and out-of-range universes", func() {
		_, err := celaut.NewAutomaton(4, nil)
		Expect(err).To(MatchError(celaut.ErrEmptyUniverse))

		_, err = celaut.NewAutomaton(4, []celaut.Cell{0, 4})
		Expect(err).To(MatchError(celaut.ErrCellRange))

		_, err = celaut.NewAutomaton(1, []celaut.Cell{0})
		Expect(err).To(MatchError(celaut.ErrInvalidStates))
	})

	It("keeps a fixed point under the identity rule", func() {
		start := celaut.Universe{0, 1, 2, 3, 0}
		a, err := celaut.NewAutomaton(4, start)
		Expect(err).NotTo(HaveOccurred())

		for i := 0; i < 128; i++ {
			Expect(a.Advance(identity)).To(Succeed())
			Expect(a.Universe()).To(Equal(start))
		}
	})

	It("updates every cell simultaneously", func() {
		// next is One exactly when the left neighbour differs from the centre
		rows := [][]celaut.Cell{
			{1, 1, 1},
			{0, 0, 0},
			{1, 1, 1},
		}
		tbl, err := celaut.NewTable(2, celaut.Difference, rows)
		Expect(err).NotTo(HaveOccurred())

		a, err := celaut.NewAutomaton(2, []celaut.Cell{1, 0, 0, 0})
		Expect(err).NotTo(HaveOccurred())
		Expect(a.Advance(tbl)).To(Succeed())

		// a left-to-right in-place update would give 0 0 0 0
		Expect(a.Universe()).To(Equal(celaut.Universe{0, 1, 0, 0}))
	})

	It("uses the equal category at both edges", func() {
		// rows/cols: 0 neighbour greater, 1 missing or equal, 2 neighbour smaller
		rows := [][]celaut.Cell{
			{0, 0, 0},
			{1, 0, 0},
			{0, 0, 0},
		}
		tbl, err := celaut.NewTable(2, celaut.Difference, rows)
		Expect(err).NotTo(HaveOccurred())

		// leftmost: no left, right greater -> [1][0] = 1
		// rightmost: left greater, no right -> [0][1] = 0
		a, err := celaut.NewAutomaton(2, []celaut.Cell{0, 1, 0})
		Expect(err).NotTo(HaveOccurred())
		Expect(a.Advance(tbl)).To(Succeed())
		Expect(a.At(0)).To(Equal(celaut.Cell(1)))
		Expect(a.At(2)).To(Equal(celaut.Cell(0)))
	})

	It("rejects rule outputs outside its states", func() {
		a, err := celaut.NewAutomaton(2, []celaut.Cell{0, 1, 0})
		Expect(err).NotTo(HaveOccurred())

		three := celaut.RuleFunc(func(celaut.Neighborhood) celaut.Cell { return 3 })
		Expect(a.Advance(three)).To(MatchError(celaut.ErrCellRange))
		Expect(a.Universe()).To(Equal(celaut.Universe{0, 1, 0}))
	})

	It("does not expose its internal buffer", func() {
		a, err := celaut.NewAutomaton(4, []celaut.Cell{1, 2})
		Expect(err).NotTo(HaveOccurred())
		u := a.Universe()
		u[0] = 3
		Expect(a.At(0)).To(Equal(celaut.Cell(1)))
	})
})

var _ = Describe("Driver", func() {
	const (
		states = 4
		width  = 16
		gens   = 24
	)

	newRun := func(seed int64) (*celaut.Driver, *recorder) {
		rng := celaut.NewRand(seed)
		tbl, err := celaut.RandomTable(rng, states, celaut.Difference)
		Expect(err).NotTo(HaveOccurred())
		a, err := celaut.NewAutomaton(states, celaut.RandomUniverse(rng, states, width))
		Expect(err).NotTo(HaveOccurred())
		d, err := celaut.NewDriver(a, tbl, gens)
		Expect(err).NotTo(HaveOccurred())
		return d, &recorder{}
	}

	It("rejects non-positive generation counts", func() {
		a, err := celaut.NewAutomaton(states, []celaut.Cell{0})
		Expect(err).NotTo(HaveOccurred())
		_, err = celaut.NewDriver(a, identity, 0)
		Expect(err).To(MatchError(celaut.ErrGenerations))
	})

	It("rejects a table built for fewer states", func() {
		tbl, err := celaut.RandomTable(celaut.NewRand(1), 2, celaut.Difference)
		Expect(err).NotTo(HaveOccurred())
		a, err := celaut.NewAutomaton(4, []celaut.Cell{0, 3, 0})
		Expect(err).NotTo(HaveOccurred())

		_, err = celaut.NewDriver(a, tbl, 4)
		Expect(err).To(MatchError(celaut.ErrStatesMismatch))
	})

	It("rejects a table built for more states", func() {
		side := celaut.Difference.Side(6)
		rows := make([][]celaut.Cell, side)
		for i := range rows {
			rows[i] = make([]celaut.Cell, side)
			for j := range rows[i] {
				rows[i][j] = 5
			}
		}
		tbl, err := celaut.NewTable(6, celaut.Difference, rows)
		Expect(err).NotTo(HaveOccurred())
		a, err := celaut.NewAutomaton(4, []celaut.Cell{0, 3, 0})
		Expect(err).NotTo(HaveOccurred())

		_, err = celaut.NewDriver(a, tbl, 4)
		Expect(err).To(MatchError(celaut.ErrStatesMismatch))
	})

	It("rejects a nil rule", func() {
		a, err := celaut.NewAutomaton(states, []celaut.Cell{0})
		Expect(err).NotTo(HaveOccurred())
		_, err = celaut.NewDriver(a, nil, 4)
		Expect(err).To(MatchError(celaut.ErrNilRule))
	})

	It("stops when the rule leaves the state range", func() {
		a, err := celaut.NewAutomaton(2, []celaut.Cell{0, 1})
		Expect(err).NotTo(HaveOccurred())
		bad := celaut.RuleFunc(func(celaut.Neighborhood) celaut.Cell { return 7 })
		d, err := celaut.NewDriver(a, bad, 3)
		Expect(err).NotTo(HaveOccurred())

		rec := &recorder{}
		Expect(d.Run(rec)).To(MatchError(celaut.ErrCellRange))
		Expect(d.Row()).To(Equal(0))
		for _, e := range rec.emissions {
			Expect(int(e.V)).To(BeNumerically("<", 2))
		}
	})

	It("emits every cell of every generation in order", func() {
		d, rec := newRun(3)
		Expect(d.Run(rec)).To(Succeed())
		Expect(rec.emissions).To(HaveLen(gens * width))

		for i, e := range rec.emissions {
			Expect(e.Y).To(Equal(i / width))
			Expect(e.X).To(Equal(i % width))
		}
	})

	It("emits the generation before advancing", func() {
		start := celaut.Universe{0, 1, 2, 3, 0}
		a, err := celaut.NewAutomaton(states, start)
		Expect(err).NotTo(HaveOccurred())
		d, err := celaut.NewDriver(a, identity, 5)
		Expect(err).NotTo(HaveOccurred())

		rec := &recorder{}
		Expect(d.Run(rec)).To(Succeed())
		for y := 0; y < 5; y++ {
			Expect(rec.row(y, len(start))).To(Equal(start))
		}
	})

	It("is deterministic for a fixed table and universe", func() {
		d1, r1 := newRun(11)
		d2, r2 := newRun(11)
		Expect(d1.Run(r1)).To(Succeed())
		Expect(d2.Run(r2)).To(Succeed())
		Expect(r1.emissions).To(Equal(r2.emissions))
	})

	It("stays done once finished", func() {
		d, rec := newRun(5)
		for i := 0; i < gens; i++ {
			Expect(d.Done()).To(BeFalse())
			Expect(d.Step(rec)).To(Succeed())
		}
		Expect(d.Done()).To(BeTrue())
		Expect(d.Row()).To(Equal(gens))
		Expect(d.Step(rec)).To(MatchError(celaut.ErrDriverDone))
		Expect(d.Run(rec)).To(MatchError(celaut.ErrDriverDone))
		Expect(rec.emissions).To(HaveLen(gens * width))
	})

	It("notifies observers once per generation", func() {
		d, _ := newRun(9)
		counter := &rowCounter{}
		d.AddObserver(counter)
		Expect(d.Run(celaut.Discard)).To(Succeed())
		Expect(counter.rows).To(HaveLen(gens))
		Expect(counter.rows[0]).To(Equal(0))
		Expect(counter.rows[gens-1]).To(Equal(gens - 1))
	})
})
