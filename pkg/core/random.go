package core

import (
	"math/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

// Random is a seeded pseudo-random source offering the two sampling
// contracts population initialisation and the evolution step need: uniform [0,1) and
// uniform [-1,1). It wraps gonum's distuv.Uniform rather than rolling a
// bespoke generator.
//
// Random is not safe for concurrent use. The generator is only ever
// sampled from single-threaded code (agent updates never touch it);
// callers that need concurrent access must synchronize externally.
type Random struct {
	unit    distuv.Uniform
	bipolar distuv.Uniform
}

// NewRandom returns a Random seeded deterministically from seed.
func NewRandom(seed int64) *Random {
	src := rand.NewSource(seed)
	return &Random{
		unit:    distuv.Uniform{Min: 0, Max: 1, Src: src},
		bipolar: distuv.Uniform{Min: -1, Max: 1, Src: src},
	}
}

// Float64 returns a uniform sample in [0,1).
func (r *Random) Float64() float64 {
	return r.unit.Rand()
}

// Bipolar returns a uniform sample in [-1,1).
func (r *Random) Bipolar() float64 {
	return r.bipolar.Rand()
}

// global is an optional process-wide generator. simulation.Run does not
// use it: it builds its own *Random from cfg.Seed and passes that to
// population.New and evolution.Evolve. Tests should construct their own
// *Random instead of relying on this package-level instance.
var global *Random

// SeedGlobal seeds the process-wide generator once, at startup.
func SeedGlobal(seed int64) {
	global = NewRandom(seed)
}

// Global returns the process-wide generator, seeding it from seed 0 if
// SeedGlobal was never called.
func Global() *Random {
	if global == nil {
		global = NewRandom(0)
	}
	return global
}
