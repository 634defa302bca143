// Package neuron defines the small polymorphic vocabulary shared by every
// brain in the simulation: sources (read-only perception), sinks
// (write-then-apply actuation) and memory cells (both). All three share
// one capability interface so a brain's connection list can treat them
// uniformly regardless of which kind sits at either endpoint.
package neuron

import (
	"math"

	"github.com/genboids/geneticboids/pkg/core"
)

// Neuron is the capability set every source, sink and memory cell
// implements. Calling a method a variant doesn't support is always safe
// and a no-op — there is no panic path in this package.
type Neuron interface {
	// Read returns this neuron's signal for agent a; weight is passed
	// through unused except by neurons that want it (none currently do,
	// but the signature matches the connection's read(a, w) contract).
	Read(a *core.Agent, weight float64) float64

	// Write accumulates a weighted contribution. No-op on sources.
	Write(weight float64)

	// Reset clears accumulated state and the applied flag. No-op on sources.
	Reset()

	// Apply flushes the accumulator onto agent a exactly once per
	// iteration. No-op on sources and memory cells.
	Apply(a *core.Agent)
}

// Sigmoid is the bounded non-linearity used throughout: x / sqrt(1+x²),
// not the logistic function. Range is the open interval (-1, 1).
func Sigmoid(x float64) float64 {
	return x / math.Sqrt(1+x*x)
}
