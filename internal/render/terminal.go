package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Terminal records emissions and renders them as coloured blocks, one
// character per cell.
type Terminal struct {
	history
}

func NewTerminal(width, height, states int) *Terminal {
	return &Terminal{history: newHistory(width, height, states)}
}

// Styles returns one foreground style per state, shaded by Intensity.
func Styles(states int) []lipgloss.Style {
	styles := make([]lipgloss.Style, states)
	for i, level := range Palette(states) {
		hex := fmt.Sprintf("#%02x%02x%02x", level, level, level)
		styles[i] = lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
	}
	return styles
}

func (t *Terminal) String() string {
	styles := Styles(t.states)
	var sb strings.Builder
	for y := 0; y < t.height; y++ {
		for x := 0; x < t.width; x++ {
			sb.WriteString(styles[t.at(x, y)].Render("█"))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Digits renders the history as plain state digits, without styling.
func (t *Terminal) Digits() string {
	var sb strings.Builder
	for y := 0; y < t.height; y++ {
		for x := 0; x < t.width; x++ {
			sb.WriteByte('0' + byte(t.at(x, y)))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
