package render

import "github.com/san-kum/celaut/internal/celaut"

// history keeps every emitted cell for renderers that need the whole run.
type history struct {
	width, height int
	states        int
	cells         []celaut.Cell
}

func newHistory(width, height, states int) history {
	return history{
		width:  width,
		height: height,
		states: states,
		cells:  make([]celaut.Cell, width*height),
	}
}

func (h *history) SetValue(x, y int, v celaut.Cell) {
	if x < 0 || y < 0 || x >= h.width || y >= h.height {
		return
	}
	h.cells[y*h.width+x] = v
}

func (h *history) at(x, y int) celaut.Cell { return h.cells[y*h.width+x] }
