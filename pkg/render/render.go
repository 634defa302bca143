// Package render defines the external renderer and video-sink
// contracts the simulation loop drives, plus the two trivial
// collaborators this repo ships (a no-op and a text summary). A real
// windowed/video renderer is out of scope; only the interfaces and a
// filename convention are specified here.
package render

import (
	"fmt"

	"github.com/genboids/geneticboids/pkg/population"
)

// Stats is the per-iteration payload handed to the renderer alongside
// the population snapshot.
type Stats struct {
	// Survivors is the number of agents that satisfied the survival
	// predicate at the most recent generation boundary.
	Survivors int

	// ErrorMin/Avg/Max summarise predicate.ErrorFunction across the
	// current population for this iteration.
	ErrorMin, ErrorAvg, ErrorMax float64
}

// Renderer consumes a read-only snapshot of the population once per
// iteration. It must be cheap or return early; the simulation loop
// only calls it on real-time generations or the final iteration of a
// non-real-time one.
type Renderer interface {
	Render(snap []population.AgentSnapshot, gen, iter int, frame int64, t float64, stats Stats) error
}

// VideoSink receives finalised framebuffers from a real renderer for
// H.264 encoding. No concrete encoder ships with this repo.
type VideoSink interface {
	WriteFrame(pixels []byte, width, height, pitch int) error
	Close() error
}

// VideoFilename returns the persisted-video naming convention:
// "gb-<hex(seed)>.mp4".
func VideoFilename(seed int64) string {
	return fmt.Sprintf("gb-%x.mp4", uint64(seed))
}
