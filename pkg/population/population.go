// Package population holds the live generation of boids and drives the
// per-iteration fan-out update described by the simulation kernel: all
// agents are updated independently and in any order, so the update
// step is safely data-parallel across a worker pool.
package population

import (
	"github.com/genboids/geneticboids/pkg/boid"
	"github.com/genboids/geneticboids/pkg/concurrency"
	"github.com/genboids/geneticboids/pkg/core"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Population is the ordered, fixed-length vector of live boids.
// Pointer identity of individual boids is not preserved across
// generation boundaries — Evolve swaps in an entirely new slice.
type Population struct {
	Boids []*boid.Boid
}

// New constructs a fresh population of cfg.Population.NumBoids boids,
// each with a freshly built brain whose weights are randomised
// independently, plus randomised initial physical state.
func New(cfg *core.Config, rng *core.Random) *Population {
	boids := make([]*boid.Boid, cfg.Population.NumBoids)
	for i := range boids {
		b := boid.NewBoid(cfg)
		b.RandomizeWeights(rng)
		b.RandomizePhysical(cfg, rng)
		boids[i] = b
	}
	return &Population{Boids: boids}
}

// Step runs one iteration: every boid's Update(iter) call reads and
// writes only its own agent and its own brain/memory neurons, so the
// pool fans the calls out and blocks until the whole batch has
// completed.
func (p *Population) Step(iter int, pool *concurrency.Pool) {
	jobs := make([]func(), len(p.Boids))
	for i, b := range p.Boids {
		b := b
		jobs[i] = func() { b.Update(iter) }
	}
	pool.RunBatch(jobs)
}

// AgentSnapshot is a read-only copy of one boid's physical state,
// exposed to the renderer without leaking access to its brain.
type AgentSnapshot struct {
	Position   core.Position
	Direction  float64
	Velocity   float64
	AngularVel float64
	Size       float64
	Colour     core.Colour
	Age        int
}

// Snapshot copies the physical state of every live boid. The renderer
// must treat the result as read-only; Population never mutates a
// snapshot once returned.
func (p *Population) Snapshot() []AgentSnapshot {
	out := make([]AgentSnapshot, len(p.Boids))
	for i, b := range p.Boids {
		out[i] = AgentSnapshot{
			Position:   b.Position,
			Direction:  b.Direction,
			Velocity:   b.Velocity,
			AngularVel: b.AngularVel,
			Size:       b.Size,
			Colour:     b.Colour,
			Age:        b.Age,
		}
	}
	return out
}

// ErrorStats aggregates ErrorFunction values across the population for
// one iteration: the renderer contract requires at least min/avg/max.
type ErrorStats struct {
	Min, Avg, Max float64
}

// Errors computes ErrorStats for the current population under errFn.
// Returns the zero value when the population is empty.
func (p *Population) Errors(errFn func(a *core.Agent) float64) ErrorStats {
	if len(p.Boids) == 0 {
		return ErrorStats{}
	}

	vals := make([]float64, len(p.Boids))
	for i, b := range p.Boids {
		vals[i] = errFn(b.Agent)
	}
	return ErrorStats{
		Min: floats.Min(vals),
		Avg: stat.Mean(vals, nil),
		Max: floats.Max(vals),
	}
}
