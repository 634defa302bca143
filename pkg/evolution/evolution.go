// Package evolution implements the generation-boundary selection,
// reproduction, and mutation step that turns one population into the
// next.
package evolution

import (
	"github.com/genboids/geneticboids/pkg/boid"
	"github.com/genboids/geneticboids/pkg/core"
	"github.com/genboids/geneticboids/pkg/population"
	"github.com/genboids/geneticboids/pkg/predicate"
)

// Result summarises one evolution step for the caller's logging and
// the renderer's stats payload.
type Result struct {
	// Survivors is the number of agents that satisfied the predicate
	// before reproduction. Zero means the population was re-initialised
	// from scratch, which is a deliberate fallback, not a failure.
	Survivors int
}

// Evolve runs one generation boundary: select survivors, reproduce a
// full new population by round-robin cloning, re-randomise physical
// state, and mutate every connection weight. It returns the new
// population (the caller replaces its live population wholesale;
// pointer identity of individual boids is not preserved) alongside a
// Result describing the step.
func Evolve(pop *population.Population, cfg *core.Config, rng *core.Random, pred predicate.Predicate) (*population.Population, Result) {
	survivors := selectSurvivors(pop, pred)

	res := Result{Survivors: len(survivors)}

	if len(survivors) == 0 {
		fresh := population.New(cfg, rng)
		return fresh, res
	}

	next := make([]*boid.Boid, cfg.Population.NumBoids)
	for i := range next {
		parent := survivors[i%len(survivors)]

		child := boid.NewBoid(cfg)
		child.CloneBrainFrom(parent)
		child.RandomizePhysical(cfg, rng)
		mutate(child, cfg, rng)

		next[i] = child
	}

	return &population.Population{Boids: next}, res
}

func selectSurvivors(pop *population.Population, pred predicate.Predicate) []*boid.Boid {
	survivors := make([]*boid.Boid, 0, len(pop.Boids))
	for _, b := range pop.Boids {
		if pred(b.Agent) {
			survivors = append(survivors, b)
		}
	}
	return survivors
}

// mutate applies the per-connection weight-delta walk described by the
// evolution step: each weight nudges in its stored direction by a
// uniformly random fraction of cfg.Neural.Mutation, then that direction
// flips with independent probability cfg.Neural.Mutation.
func mutate(b *boid.Boid, cfg *core.Config, rng *core.Random) {
	m := cfg.Neural.Mutation
	for i := range b.Brain.Connections {
		delta := float64(b.Brain.WeightDelta[i])
		w := b.Brain.Connections[i].Weight + delta*rng.Float64()*m

		if cfg.Neural.BoundedWeights {
			if w > cfg.Neural.MaxWeight {
				w = cfg.Neural.MaxWeight
			}
			if w < -cfg.Neural.MaxWeight {
				w = -cfg.Neural.MaxWeight
			}
		}
		b.Brain.Connections[i].Weight = w

		if rng.Float64() < m {
			b.Brain.WeightDelta[i] = -b.Brain.WeightDelta[i]
		}
	}
}
