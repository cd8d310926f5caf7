package render

import (
	"image"
	"image/color"

	"github.com/san-kum/celaut/internal/celaut"
)

// Gray records emissions into a grayscale image.
type Gray struct {
	img     *image.Gray
	palette []uint8
}

func NewGray(width, height, states int) *Gray {
	return &Gray{
		img:     image.NewGray(image.Rect(0, 0, width, height)),
		palette: Palette(states),
	}
}

func (g *Gray) SetValue(x, y int, v celaut.Cell) {
	g.img.SetGray(x, y, color.Gray{Y: g.palette[v]})
}

func (g *Gray) Image() *image.Gray { return g.img }
