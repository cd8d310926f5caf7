package render

import (
	"fmt"
	"strings"
)

// SVG records emissions and renders them as a vector image.
type SVG struct {
	history
	scale int
}

func NewSVG(width, height, states, scale int) *SVG {
	if scale <= 0 {
		scale = 1
	}
	return &SVG{history: newHistory(width, height, states), scale: scale}
}

// String renders the recorded history. Black cells are left to the
// background rect.
func (s *SVG) String() string {
	palette := Palette(s.states)
	w := s.width * s.scale
	h := s.height * s.scale

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" shape-rendering="crispEdges">
<rect width="100%%" height="100%%" fill="#000000"/>
`, w, h, w, h))

	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			level := palette[s.at(x, y)]
			if level == 0 {
				continue
			}
			sb.WriteString(fmt.Sprintf(`<rect x="%d" y="%d" width="%d" height="%d" fill="#%02x%02x%02x"/>
`, x*s.scale, y*s.scale, s.scale, s.scale, level, level, level))
		}
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

func (s *SVG) Bytes() []byte { return []byte(s.String()) }
