package metrics

import "github.com/san-kum/celaut/internal/celaut"

// Series is a row observer that records one value per generation.
type Series interface {
	celaut.Observer
	Name() string
	Values() []float64
	Mean() float64
	Reset()
}

// Default returns the standard metric set for a run with the given states.
func Default(states int) []Series {
	return []Series{
		NewDensity(states),
		NewActivity(),
		NewEntropy(states),
	}
}

type series struct {
	name   string
	values []float64
}

func (s *series) Name() string      { return s.name }
func (s *series) Values() []float64 { return s.values }

func (s *series) Mean() float64 {
	if len(s.values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range s.values {
		sum += v
	}
	return sum / float64(len(s.values))
}

func (s *series) Reset() { s.values = s.values[:0] }
