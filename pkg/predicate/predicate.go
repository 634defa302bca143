// Package predicate supplies the pluggable survival condition the
// evolution step uses to select which agents reproduce, plus the small
// combinator vocabulary used to build it: a flat library of
// spatial/colour/size/velocity primitives composed with boolean
// And/Or/Not over typed function values.
package predicate

import (
	"math"

	"github.com/genboids/geneticboids/pkg/core"
)

// Predicate is a pure boolean test of an agent's current state. The
// kernel treats it as an opaque pluggable function — it never assumes
// any particular composition.
type Predicate func(a *core.Agent) bool

// And is true only when every p is true. An empty And is vacuously true.
func And(ps ...Predicate) Predicate {
	return func(a *core.Agent) bool {
		for _, p := range ps {
			if !p(a) {
				return false
			}
		}
		return true
	}
}

// Or is true when any p is true. An empty Or is vacuously false.
func Or(ps ...Predicate) Predicate {
	return func(a *core.Agent) bool {
		for _, p := range ps {
			if p(a) {
				return true
			}
		}
		return false
	}
}

// Not negates p.
func Not(p Predicate) Predicate {
	return func(a *core.Agent) bool { return !p(a) }
}

// ErrorFunction returns the non-negative scalar the renderer overlay
// uses to colour-code agents by distance from the goal: the agent's
// Euclidean distance from the world centre, normalised by the screen
// diagonal: 0 at the centre and 0.5 at a world corner regardless of
// world size. Positions are not clamped, so an agent outside the world
// can score above 0.5.
// The kernel never reads this value; only the rendering overlay does.
func ErrorFunction(cfg *core.Config) func(a *core.Agent) float64 {
	cx, cy := cfg.World.ScreenWidth/2, cfg.World.ScreenHeight/2
	diag := math.Hypot(cfg.World.ScreenWidth, cfg.World.ScreenHeight)
	return func(a *core.Agent) float64 {
		if diag == 0 {
			return 0
		}
		dx, dy := a.Position.X-cx, a.Position.Y-cy
		return math.Hypot(dx, dy) / diag
	}
}
