package render

import (
	"fmt"
	"io"
	"math"

	"github.com/genboids/geneticboids/pkg/population"
)

// TextRenderer writes a one-line population-bounds summary per call
// using plain formatted output rather than a structured logging
// library.
type TextRenderer struct {
	W io.Writer
}

func (r TextRenderer) Render(snap []population.AgentSnapshot, gen, iter int, frame int64, t float64, stats Stats) error {
	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, a := range snap {
		if a.Position.X < minX {
			minX = a.Position.X
		}
		if a.Position.X > maxX {
			maxX = a.Position.X
		}
		if a.Position.Y < minY {
			minY = a.Position.Y
		}
		if a.Position.Y > maxY {
			maxY = a.Position.Y
		}
	}

	_, err := fmt.Fprintf(r.W,
		"gen=%d iter=%d frame=%d t=%.2f n=%d bounds=[%.1f,%.1f]x[%.1f,%.1f] survivors=%d err[min=%.3f avg=%.3f max=%.3f]\n",
		gen, iter, frame, t, len(snap), minX, maxX, minY, maxY,
		stats.Survivors, stats.ErrorMin, stats.ErrorAvg, stats.ErrorMax,
	)
	return err
}
