package render

import (
	"image/color"

	"github.com/san-kum/rollsim/internal/grid"
)

var (
	ActiveColor  = color.RGBA{200, 200, 200, 255}
	EmptyColor   = color.RGBA{0, 0, 0, 255}
	UnknownColor = color.RGBA{128, 128, 128, 255}

	// DecayColors holds the colors for decay stages 1 through 8, from bright
	// yellow down to near black.
	DecayColors = [grid.DecayStages]color.RGBA{
		{255, 242, 116, 255},
		{255, 199, 92, 255},
		{255, 153, 67, 255},
		{255, 102, 41, 255},
		{255, 0, 0, 255},
		{174, 0, 0, 255},
		{99, 0, 0, 255},
		{34, 0, 0, 255},
	}
)

// Palette index layout: 0 empty, 1 active, 2..9 decay stages, 10 unknown.
const (
	emptyIndex   = 0
	activeIndex  = 1
	decayIndex   = 2
	unknownIndex = decayIndex + grid.DecayStages
)

// Palette returns every color a frame can contain. Each cell state maps to
// exactly one entry, so encoding is lossless.
func Palette() color.Palette {
	p := make(color.Palette, 0, unknownIndex+1)
	p = append(p, EmptyColor, ActiveColor)
	for _, c := range DecayColors {
		p = append(p, c)
	}
	return append(p, UnknownColor)
}

var palette = Palette()

func ColorOf(c grid.Cell) color.RGBA {
	return palette[colorIndex(c)].(color.RGBA)
}

func colorIndex(c grid.Cell) uint8 {
	switch c.Kind() {
	case grid.KindEmpty:
		return emptyIndex
	case grid.KindActive:
		return activeIndex
	case grid.KindDecaying:
		if s := c.Stage(); s >= 1 && s <= grid.DecayStages {
			return uint8(decayIndex + s - 1)
		}
	}
	return unknownIndex
}
