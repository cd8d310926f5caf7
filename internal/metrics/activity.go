package metrics

import "github.com/san-kum/celaut/internal/celaut"

// Activity is the fraction of cells that changed since the previous
// generation. The first generation has activity 0.
type Activity struct {
	series
	prev celaut.Universe
}

func NewActivity() *Activity {
	return &Activity{series: series{name: "activity"}}
}

func (a *Activity) OnGeneration(y int, u celaut.Universe) {
	if a.prev == nil || len(a.prev) != len(u) || len(u) == 0 {
		a.values = append(a.values, 0)
		a.prev = u.Clone()
		return
	}

	changed := 0
	for i, c := range u {
		if a.prev[i] != c {
			changed++
		}
	}
	a.values = append(a.values, float64(changed)/float64(len(u)))
	copy(a.prev, u)
}

func (a *Activity) Reset() {
	a.series.Reset()
	a.prev = nil
}
