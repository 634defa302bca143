package neuron

import (
	"math"

	"github.com/genboids/geneticboids/pkg/core"
)

// sourceFunc adapts a plain agent-reading function into a Neuron whose
// Write/Reset/Apply are no-ops, per the source-neuron contract.
type sourceFunc struct {
	name string
	fn   func(a *core.Agent, env Env) float64
}

// Env carries the configuration values a source needs but that don't
// live on the agent itself (world bounds, per-run clamp ranges, the
// current iteration bound used by the age source, and the live survival
// predicate evaluated by goal-reached).
type Env struct {
	ScreenWidth  float64
	ScreenHeight float64
	MaxVelocity  float64
	MaxAngularVelocity float64
	MaxSize      float64
	GenIters     int

	// Predicate reports whether a currently satisfies the configured
	// survival condition. Nil means goal-reached always reads 0.
	Predicate func(a *core.Agent) bool
}

func (s *sourceFunc) Read(a *core.Agent, _ float64) float64 { return s.fn(a, sourceEnv) }
func (s *sourceFunc) Write(float64)                         {}
func (s *sourceFunc) Reset()                                {}
func (s *sourceFunc) Apply(*core.Agent)                     {}

// sourceEnv is set once per iteration by the simulation loop before
// sources are read (see simulation.Run). Sources are per-agent instances
// but the environment they read from is shared and constant across a
// single iteration, so a package-level var avoids threading it through
// every Read call.
var sourceEnv Env

// SetEnv installs the Env read by every source neuron until the next
// call. Must be called before evaluating any agent's brain in a given
// iteration.
func SetEnv(e Env) {
	sourceEnv = e
}

func newSource(name string, fn func(a *core.Agent, env Env) float64) Neuron {
	return &sourceFunc{name: name, fn: fn}
}

// NewSource constructs the named source neuron, or (nil, false) if name
// is not a known source.
func NewSource(name string) (Neuron, bool) {
	switch name {
	case "age":
		return newSource(name, func(a *core.Agent, e Env) float64 {
			if e.GenIters <= 0 {
				return 0
			}
			return float64(a.Age) / float64(e.GenIters)
		}), true
	case "west":
		return newSource(name, func(a *core.Agent, e Env) float64 {
			return (e.ScreenWidth - a.Position.X) / e.ScreenWidth
		}), true
	case "east":
		return newSource(name, func(a *core.Agent, e Env) float64 {
			return 1 - (e.ScreenWidth-a.Position.X)/e.ScreenWidth
		}), true
	case "north":
		return newSource(name, func(a *core.Agent, e Env) float64 {
			return (e.ScreenHeight - a.Position.Y) / e.ScreenHeight
		}), true
	case "south":
		return newSource(name, func(a *core.Agent, e Env) float64 {
			return 1 - (e.ScreenHeight-a.Position.Y)/e.ScreenHeight
		}), true
	case "direction":
		return newSource(name, func(a *core.Agent, e Env) float64 {
			return a.Direction / (2 * math.Pi)
		}), true
	case "velocity":
		return newSource(name, func(a *core.Agent, e Env) float64 {
			return a.Velocity / e.MaxVelocity
		}), true
	case "angular-velocity":
		return newSource(name, func(a *core.Agent, e Env) float64 {
			return a.AngularVel / e.MaxAngularVelocity
		}), true
	case "goal-reached":
		return newSource(name, func(a *core.Agent, e Env) float64 {
			if e.Predicate != nil && e.Predicate(a) {
				return 1
			}
			return 0
		}), true
	case "out-of-bounds":
		return newSource(name, func(a *core.Agent, e Env) float64 {
			inBounds := a.Position.X >= 0 && a.Position.X <= e.ScreenWidth &&
				a.Position.Y >= 0 && a.Position.Y <= e.ScreenHeight
			if inBounds {
				return 1
			}
			return 0
		}), true
	case "red":
		return newSource(name, func(a *core.Agent, _ Env) float64 {
			return float64(a.Colour.R) / 255.0
		}), true
	case "green":
		return newSource(name, func(a *core.Agent, _ Env) float64 {
			return float64(a.Colour.G) / 255.0
		}), true
	case "blue":
		return newSource(name, func(a *core.Agent, _ Env) float64 {
			return float64(a.Colour.B) / 255.0
		}), true
	case "size":
		return newSource(name, func(a *core.Agent, e Env) float64 {
			return a.Size / e.MaxSize
		}), true
	default:
		return nil, false
	}
}
