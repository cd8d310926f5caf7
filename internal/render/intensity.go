package render

import "github.com/san-kum/celaut/internal/celaut"

// Intensity maps v to round(v*255/(states-1)). The extreme states map to
// exactly 0 and 255; halves round up.
func Intensity(v celaut.Cell, states int) uint8 {
	if states < 2 {
		return 0
	}
	den := states - 1
	return uint8((2*int(v)*255 + den) / (2 * den))
}

// Palette precomputes Intensity for every state.
func Palette(states int) []uint8 {
	p := make([]uint8, states)
	for i := range p {
		p[i] = Intensity(celaut.Cell(i), states)
	}
	return p
}
