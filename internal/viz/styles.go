package viz

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/rollsim/internal/grid"
	"github.com/san-kum/rollsim/internal/render"
)

var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#00cccc"))

	Subtle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688"))

	MetricValue = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00ccff")).
			Bold(true)

	MetricLabel = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888899"))

	KeyHint = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#00aaaa")).
		Bold(true)

	StatusRunning = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00ff88"))

	StatusPaused = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffaa00"))

	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444466"))
)

// cellStyles holds one style per palette entry, keyed by cell.
var cellStyles = map[grid.Cell]lipgloss.Style{}

func init() {
	cells := []grid.Cell{grid.Empty, grid.Active}
	for s := 1; s <= grid.DecayStages; s++ {
		cells = append(cells, grid.Decaying(s))
	}
	for _, c := range cells {
		cellStyles[c] = lipgloss.NewStyle().Foreground(hexColor(render.ColorOf(c)))
	}
}

func hexColor(c interface{ RGBA() (r, g, b, a uint32) }) lipgloss.Color {
	r, g, b, _ := c.RGBA()
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8))
}

// CellBlock renders c as a two-column block in its animation color.
func CellBlock(c grid.Cell) string {
	style, ok := cellStyles[c]
	if !ok {
		style = lipgloss.NewStyle().Foreground(hexColor(render.UnknownColor))
	}
	return style.Render("██")
}

// Metric renders a label/value pair.
func Metric(label string, value any) string {
	return MetricLabel.Render(label+" ") + MetricValue.Render(fmt.Sprint(value))
}
