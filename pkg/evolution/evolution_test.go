package evolution

import (
	"testing"

	"github.com/genboids/geneticboids/pkg/core"
	"github.com/genboids/geneticboids/pkg/neuron"
	"github.com/genboids/geneticboids/pkg/population"
	"github.com/genboids/geneticboids/pkg/predicate"
)

func testConfig() *core.Config {
	cfg := core.DefaultConfig()
	cfg.Population.NumBoids = 10
	cfg.Brain.NeuronSources = []string{"west", "east"}
	cfg.Brain.NeuronSinks = []string{"velocity", "direction"}
	cfg.Brain.BrainType = "no_memory"
	cfg.Neural.UpdateType = "every"
	cfg.Neural.Mutation = 0
	cfg.Neural.BoundedWeights = false

	neuron.SetEnv(neuron.Env{
		ScreenWidth:        cfg.World.ScreenWidth,
		ScreenHeight:       cfg.World.ScreenHeight,
		MaxVelocity:        cfg.Agent.MaxVelocity,
		MaxAngularVelocity: cfg.Agent.MaxAngularVelocity,
		MaxSize:            cfg.Agent.MaxSize,
		GenIters:           cfg.Population.GenIters,
	})

	return cfg
}

func alwaysTrue(*core.Agent) bool  { return true }
func alwaysFalse(*core.Agent) bool { return false }

func TestEvolve_ZeroSurvivorsReinitialises(t *testing.T) {
	cfg := testConfig()
	rng := core.NewRandom(1)
	pop := population.New(cfg, rng)

	next, res := Evolve(pop, cfg, rng, predicate.Predicate(alwaysFalse))

	if res.Survivors != 0 {
		t.Errorf("expected 0 survivors, got %d", res.Survivors)
	}
	if len(next.Boids) != cfg.Population.NumBoids {
		t.Errorf("expected re-initialised population of size %d, got %d", cfg.Population.NumBoids, len(next.Boids))
	}
}

func TestEvolve_ReproductionFidelity_NoMutation(t *testing.T) {
	cfg := testConfig()
	rng := core.NewRandom(1)
	pop := population.New(cfg, rng)

	// Give every boid distinct, non-zero weights so index-aligned
	// cloning is actually exercised.
	for _, b := range pop.Boids {
		for i := range b.Brain.Connections {
			b.Brain.Connections[i].Weight = float64(i) + 0.25
		}
	}

	next, res := Evolve(pop, cfg, rng, predicate.Predicate(alwaysTrue))

	if res.Survivors != len(pop.Boids) {
		t.Fatalf("expected every boid to survive, got %d", res.Survivors)
	}
	if len(next.Boids) != cfg.Population.NumBoids {
		t.Fatalf("expected population size %d, got %d", cfg.Population.NumBoids, len(next.Boids))
	}

	for i, child := range next.Boids {
		parent := pop.Boids[i%len(pop.Boids)]
		for j := range child.Brain.Connections {
			if child.Brain.Connections[j].Weight != parent.Brain.Connections[j].Weight {
				t.Errorf("child %d connection %d: weight %v != parent weight %v",
					i, j, child.Brain.Connections[j].Weight, parent.Brain.Connections[j].Weight)
			}
		}
	}
}

func TestEvolve_RoundRobinCloningWrapsSurvivors(t *testing.T) {
	cfg := testConfig()
	cfg.Population.NumBoids = 7
	rng := core.NewRandom(1)
	pop := population.New(cfg, rng)

	// Only the first 2 boids survive.
	survivorIdx := map[int]bool{0: true, 1: true}
	pred := predicate.Predicate(func(a *core.Agent) bool {
		for i, b := range pop.Boids {
			if b.Agent == a {
				return survivorIdx[i]
			}
		}
		return false
	})

	for i, b := range pop.Boids {
		for j := range b.Brain.Connections {
			b.Brain.Connections[j].Weight = float64(i)
		}
	}

	next, res := Evolve(pop, cfg, rng, pred)
	if res.Survivors != 2 {
		t.Fatalf("expected 2 survivors, got %d", res.Survivors)
	}

	for i, child := range next.Boids {
		want := float64(i % 2) // round-robin over survivors [0,1]
		for _, c := range child.Brain.Connections {
			if c.Weight != want {
				t.Errorf("child %d: weight %v, want %v (round-robin source %d)", i, c.Weight, want, i%2)
			}
		}
	}
}

func TestEvolve_PhysicalStateIsRandomisedNotCloned(t *testing.T) {
	cfg := testConfig()
	rng := core.NewRandom(1)
	pop := population.New(cfg, rng)

	for _, b := range pop.Boids {
		b.SetSize(cfg.Agent.MinSize)
		b.Position = core.Position{X: 0, Y: 0}
	}

	next, _ := Evolve(pop, cfg, rng, predicate.Predicate(alwaysTrue))

	allZero := true
	for _, b := range next.Boids {
		if b.Position.X != 0 || b.Position.Y != 0 {
			allZero = false
			break
		}
	}
	if allZero {
		t.Error("expected RandomizePhysical to diversify positions across children")
	}
}

func TestMutate_FlipsWeightDeltaWithProbabilityMutation(t *testing.T) {
	cfg := testConfig()
	cfg.Neural.Mutation = 1.0 // certain flip, certain full-magnitude nudge
	rng := core.NewRandom(1)

	pop := population.New(cfg, rng)
	b := pop.Boids[0]
	for i := range b.Brain.Connections {
		b.Brain.Connections[i].Weight = 0
		b.Brain.WeightDelta[i] = 1
	}

	mutate(b, cfg, rng)

	for i, c := range b.Brain.Connections {
		if c.Weight == 0 {
			t.Errorf("connection %d: expected weight to move off zero under full mutation", i)
		}
		if b.Brain.WeightDelta[i] != -1 {
			t.Errorf("connection %d: expected weightDelta flipped to -1, got %d", i, b.Brain.WeightDelta[i])
		}
	}
}

func TestMutate_BoundedWeightsClamps(t *testing.T) {
	cfg := testConfig()
	cfg.Neural.Mutation = 1.0
	cfg.Neural.BoundedWeights = true
	cfg.Neural.MaxWeight = 0.1
	rng := core.NewRandom(1)

	pop := population.New(cfg, rng)
	b := pop.Boids[0]
	for i := range b.Brain.Connections {
		b.Brain.Connections[i].Weight = 0
		b.Brain.WeightDelta[i] = 1
	}

	mutate(b, cfg, rng)

	for i, c := range b.Brain.Connections {
		if c.Weight > cfg.Neural.MaxWeight || c.Weight < -cfg.Neural.MaxWeight {
			t.Errorf("connection %d: weight %v exceeds bound %v", i, c.Weight, cfg.Neural.MaxWeight)
		}
	}
}
