package metrics

import "github.com/san-kum/celaut/internal/celaut"

// Density is the mean cell value of a generation, normalised to [0, 1].
type Density struct {
	series
	states int
}

func NewDensity(states int) *Density {
	return &Density{series: series{name: "density"}, states: states}
}

func (d *Density) OnGeneration(y int, u celaut.Universe) {
	if len(u) == 0 || d.states < 2 {
		d.values = append(d.values, 0)
		return
	}
	sum := 0
	for _, c := range u {
		sum += c.Int()
	}
	d.values = append(d.values, float64(sum)/float64(len(u)*(d.states-1)))
}
