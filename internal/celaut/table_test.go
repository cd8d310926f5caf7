package celaut_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/celaut/internal/celaut"
)

// indexTable stores i*side+j mod states so every entry is distinguishable
// for small tables.
func indexTable(states int, ix celaut.Indexing) [][]celaut.Cell {
	side := ix.Side(states)
	rows := make([][]celaut.Cell, side)
	for i := range rows {
		rows[i] = make([]celaut.Cell, side)
		for j := range rows[i] {
			rows[i][j] = celaut.Cell((i*side + j) % states)
		}
	}
	return rows
}

var _ = Describe("Table", func() {
	Describe("NewTable", func() {
		It("derives the side from the state count", func() {
			for _, k := range []int{3, 4, 6} {
				tbl, err := celaut.NewTable(k, celaut.Difference, indexTable(k, celaut.Difference))
				Expect(err).NotTo(HaveOccurred())
				Expect(tbl.Side()).To(Equal(2*k - 1))
			}
			tbl, err := celaut.NewTable(6, celaut.Comparison, indexTable(6, celaut.Comparison))
			Expect(err).NotTo(HaveOccurred())
			Expect(tbl.Side()).To(Equal(3))
		})

		It("rejects unsupported state counts", func() {
			for _, k := range []int{0, 1, 11} {
				_, err := celaut.NewTable(k, celaut.Difference, nil)
				Expect(err).To(MatchError(celaut.ErrInvalidStates))
			}
		})

		It("rejects tables of the wrong shape", func() {
			rows := indexTable(4, celaut.Difference)
			_, err := celaut.NewTable(4, celaut.Difference, rows[:6])
			Expect(err).To(MatchError(celaut.ErrTableShape))

			rows[3] = rows[3][:5]
			_, err = celaut.NewTable(4, celaut.Difference, rows)
			Expect(err).To(MatchError(celaut.ErrTableShape))
		})

		It("rejects entries outside the state range", func() {
			rows := indexTable(4, celaut.Difference)
			rows[2][5] = 4
			_, err := celaut.NewTable(4, celaut.Difference, rows)
			Expect(err).To(MatchError(celaut.ErrCellRange))
		})

		It("does not alias the caller's entries", func() {
			rows := indexTable(4, celaut.Difference)
			tbl, err := celaut.NewTable(4, celaut.Difference, rows)
			Expect(err).NotTo(HaveOccurred())
			before := tbl.At(0, 0)
			rows[0][0] = (before + 1) % 4
			Expect(tbl.At(0, 0)).To(Equal(before))
		})
	})

	Describe("Lookup", func() {
		var tbl *celaut.Table

		BeforeEach(func() {
			var err error
			tbl, err = celaut.NewTable(4, celaut.Difference, indexTable(4, celaut.Difference))
			Expect(err).NotTo(HaveOccurred())
		})

		It("offsets signed differences by K-1", func() {
			n := celaut.Neighborhood{Left: 3, Center: 0, Right: 1, HasLeft: true, HasRight: true}
			// dl = 0-3 = -3 -> 0, dr = 0-1 = -1 -> 2
			Expect(tbl.Lookup(n)).To(Equal(tbl.At(0, 2)))

			n = celaut.Neighborhood{Left: 0, Center: 3, Right: 3, HasLeft: true, HasRight: true}
			// dl = 3 -> 6, dr = 0 -> 3
			Expect(tbl.Lookup(n)).To(Equal(tbl.At(6, 3)))
		})

		It("treats missing neighbours as equal to the centre", func() {
			for c := celaut.Cell(0); c < 4; c++ {
				for r := celaut.Cell(0); r < 4; r++ {
					left := celaut.Neighborhood{Center: c, Right: r, HasRight: true}
					Expect(tbl.Lookup(left)).To(Equal(tbl.At(3, c.Difference(r)+3)))

					right := celaut.Neighborhood{Left: r, Center: c, HasLeft: true}
					Expect(tbl.Lookup(right)).To(Equal(tbl.At(c.Difference(r)+3, 3)))
				}
			}
		})

		It("covers every reachable index without panicking", func() {
			seen := map[[2]int]bool{}
			for l := celaut.Cell(0); l < 4; l++ {
				for c := celaut.Cell(0); c < 4; c++ {
					for r := celaut.Cell(0); r < 4; r++ {
						n := celaut.Neighborhood{Left: l, Center: c, Right: r, HasLeft: true, HasRight: true}
						Expect(func() { tbl.Lookup(n) }).NotTo(Panic())
						seen[[2]int{c.Difference(l) + 3, c.Difference(r) + 3}] = true
					}
				}
			}
			Expect(seen).To(HaveKey([2]int{0, 0}))
			Expect(seen).To(HaveKey([2]int{6, 6}))
		})

		It("indexes by three-way comparison", func() {
			cmp, err := celaut.NewTable(6, celaut.Comparison, indexTable(6, celaut.Comparison))
			Expect(err).NotTo(HaveOccurred())

			n := celaut.Neighborhood{Left: 5, Center: 2, Right: 0, HasLeft: true, HasRight: true}
			Expect(cmp.Lookup(n)).To(Equal(cmp.At(0, 2)))

			n = celaut.Neighborhood{Center: 2}
			Expect(cmp.Lookup(n)).To(Equal(cmp.At(1, 1)))
		})
	})

	Describe("RandomTable", func() {
		It("is reproducible for a seed", func() {
			a, err := celaut.RandomTable(celaut.NewRand(7), 4, celaut.Difference)
			Expect(err).NotTo(HaveOccurred())
			b, err := celaut.RandomTable(celaut.NewRand(7), 4, celaut.Difference)
			Expect(err).NotTo(HaveOccurred())
			Expect(a.Equal(b)).To(BeTrue())
		})

		It("only samples valid states", func() {
			tbl, err := celaut.RandomTable(celaut.NewRand(1), 3, celaut.Difference)
			Expect(err).NotTo(HaveOccurred())
			for _, row := range tbl.Entries() {
				for _, v := range row {
					Expect(int(v)).To(BeNumerically("<", 3))
				}
			}
		})

		It("rejects zero states", func() {
			_, err := celaut.RandomTable(celaut.NewRand(1), 0, celaut.Difference)
			Expect(err).To(MatchError(celaut.ErrInvalidStates))
		})
	})
})

var _ = Describe("Cell", func() {
	It("round-trips through its text form", func() {
		for c := celaut.Cell(0); c < celaut.MaxStates; c++ {
			text, err := c.MarshalText()
			Expect(err).NotTo(HaveOccurred())
			var back celaut.Cell
			Expect(back.UnmarshalText(text)).To(Succeed())
			Expect(back).To(Equal(c))
		}
		Expect(celaut.Cell(3).String()).To(Equal("Three"))
	})

	It("rejects unknown names", func() {
		var c celaut.Cell
		Expect(c.UnmarshalText([]byte("Ten"))).To(MatchError(celaut.ErrCellRange))
	})
})
