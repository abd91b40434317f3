package export

import (
	"fmt"
	"io"

	"github.com/san-kum/rollsim/internal/sim"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	DefaultChartWidth  = 800
	DefaultChartHeight = 400
)

// RemovalChartPNG plots removed and active cells per round.
func RemovalChartPNG(w io.Writer, rounds []sim.RoundStats, width, height int) error {
	if len(rounds) == 0 {
		return fmt.Errorf("export: no rounds to chart")
	}

	xs := make([]float64, len(rounds))
	removed := make([]float64, len(rounds))
	active := make([]float64, len(rounds))
	top := 1.0
	for i, r := range rounds {
		xs[i] = float64(r.Round)
		removed[i] = float64(r.Removed)
		active[i] = float64(r.Active)
		top = max(top, float64(r.Active+r.Removed))
	}
	if len(rounds) == 1 {
		// go-chart needs two points to draw a range.
		xs = append([]float64{0}, xs...)
		removed = append([]float64{0}, removed...)
		active = append([]float64{active[0] + removed[1]}, active...)
	}

	graph := chart.Chart{
		Width:  width,
		Height: height,
		XAxis: chart.XAxis{
			Name:  "round",
			Style: chart.Style{FontSize: 10.0},
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("%d", int(v.(float64)))
			},
		},
		YAxis: chart.YAxis{
			Name:  "cells",
			Style: chart.Style{FontSize: 10.0},
			Range: &chart.ContinuousRange{Min: 0, Max: top},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "removed",
				XValues: xs,
				YValues: removed,
				Style:   chart.Style{StrokeColor: drawing.Color{R: 255, G: 102, B: 41, A: 255}, StrokeWidth: 3.0},
			},
			chart.ContinuousSeries{
				Name:    "active",
				XValues: xs,
				YValues: active,
				Style:   chart.Style{StrokeColor: drawing.Color{R: 120, G: 120, B: 120, A: 255}, StrokeWidth: 3.0},
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	return graph.Render(chart.PNG, w)
}
