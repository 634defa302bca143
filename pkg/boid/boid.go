// Package boid combines a physical core.Agent with the neural machinery
// that drives it: a brain, its source/sink instances, and its private
// memory pool.
package boid

import (
	"math"

	"github.com/genboids/geneticboids/pkg/brain"
	"github.com/genboids/geneticboids/pkg/core"
	"github.com/genboids/geneticboids/pkg/neuron"
)

// Boid is one population member: physical state plus the brain that
// drives it. Sources, Sinks and Memory are this boid's own instances —
// never shared with another boid, even when two boids' brains are
// topologically identical.
type Boid struct {
	*core.Agent

	Brain   brain.Brain
	Sources []neuron.Neuron
	Sinks   []neuron.Neuron
	Memory  []neuron.Neuron

	updateType string
	threshold  float64
}

// NewBoid resolves cfg's configured source/sink lists, builds a fresh
// brain topology from them, and allocates a physical agent with default
// state. All connection weights start at zero; population.New draws
// fresh weights with RandomizeWeights, and Evolve copies them from a
// parent with CloneBrainFrom.
func NewBoid(cfg *core.Config) *Boid {
	sources := neuron.ResolveSources(cfg.Brain.NeuronSources)
	sinks := neuron.ResolveSinks(cfg.Brain.NeuronSinks)

	b := brain.Build(cfg.Brain.BrainType, len(sources), len(sinks), cfg.Brain.MemoryLayers, cfg.Brain.MemoryPerLayer)
	memory := make([]neuron.Neuron, b.MemoryCount)
	for i := range memory {
		memory[i] = neuron.NewMemory()
	}

	agent := core.NewAgent(cfg.Agent.MinSize, cfg.Agent.MaxSize, cfg.Agent.MaxVelocity, cfg.Agent.MaxAngularVelocity)

	return &Boid{
		Agent:      agent,
		Brain:      b,
		Sources:    sources,
		Sinks:      sinks,
		Memory:     memory,
		updateType: cfg.Neural.UpdateType,
		threshold:  cfg.Neural.NeuralThreshold,
	}
}

// Update runs one iteration: stamp age, reset every neuron this brain
// touches, evaluate the brain per the configured discipline, then flush
// every sink exactly once.
func (bd *Boid) Update(iter int) {
	bd.Age = iter
	brain.ResetAll(bd.Sources, bd.Memory, bd.Sinks)
	brain.Evaluate(bd.updateType, bd.Brain, bd.Agent, bd.Sources, bd.Memory, bd.Sinks, bd.threshold)
	brain.ApplySinks(bd.Brain, bd.Agent, bd.Sinks, bd.Memory)
}

// CloneBrainFrom copies parent's connection weights and mutation
// directions onto bd's already-constructed brain, index for index. The
// two brains are guaranteed identical length and ordering because both
// were built from the same configuration by the same topology builder.
func (bd *Boid) CloneBrainFrom(parent *Boid) {
	for i := range bd.Brain.Connections {
		bd.Brain.Connections[i].Weight = parent.Brain.Connections[i].Weight
		bd.Brain.WeightDelta[i] = parent.Brain.WeightDelta[i]
	}
}

// RandomizeWeights draws every connection weight fresh from
// rng.Bipolar(), the starting point for a population built from scratch
// rather than cloned from survivors. Without this a freshly built brain
// is all zero weights and every agent is inert until mutation has had
// several generations to walk weights away from zero.
func (bd *Boid) RandomizeWeights(rng *core.Random) {
	for i := range bd.Brain.Connections {
		bd.Brain.Connections[i].Weight = rng.Bipolar()
	}
}

// RandomizePhysical re-randomises every physical attribute: fresh size,
// position, colour, direction, velocity and angular velocity, and resets
// Age to 0. Brain weights are not touched, so it composes with
// CloneBrainFrom in either order.
func (bd *Boid) RandomizePhysical(cfg *core.Config, rng *core.Random) {
	bd.SetSize(cfg.Agent.MinSize + rng.Float64()*(cfg.Agent.MaxSize-cfg.Agent.MinSize))
	bd.Position = core.Position{
		X: rng.Float64() * cfg.World.ScreenWidth,
		Y: rng.Float64() * cfg.World.ScreenHeight,
	}
	bd.SetColour(core.Colour{
		R: uint8(rng.Float64() * 255),
		G: uint8(rng.Float64() * 255),
		B: uint8(rng.Float64() * 255),
	})
	bd.SetDirection(rng.Float64() * 2 * math.Pi)
	bd.SetVelocity(rng.Bipolar() * cfg.Agent.MaxVelocity)
	bd.SetAngularVel(rng.Bipolar() * cfg.Agent.MaxAngularVelocity)
	bd.Age = 0
}
