package brain

import (
	"math"

	"github.com/genboids/geneticboids/pkg/core"
	"github.com/genboids/geneticboids/pkg/neuron"
)

// readEnd dereferences a connection's read end against the owning
// agent's source/memory slices.
func readEnd(c Connection, a *core.Agent, sources, memory []neuron.Neuron) float64 {
	switch c.ReadKind {
	case EndMemory:
		return memory[c.ReadIdx].Read(a, c.Weight)
	default:
		return sources[c.ReadIdx].Read(a, c.Weight)
	}
}

// writeEnd dereferences a connection's write end against the owning
// agent's sink/memory slices.
func writeEnd(c Connection, v float64, sinks, memory []neuron.Neuron) {
	switch c.WriteKind {
	case EndMemory:
		memory[c.WriteIdx].Write(v)
	default:
		sinks[c.WriteIdx].Write(v)
	}
}

// EvaluateEvery writes v = read(a)*weight onto every connection's write
// end, in brain order.
func EvaluateEvery(b Brain, a *core.Agent, sources, memory, sinks []neuron.Neuron) {
	for _, c := range b.Connections {
		v := readEnd(c, a, sources, memory) * c.Weight
		writeEnd(c, v, sinks, memory)
	}
}

// EvaluateThreshold is EvaluateEvery, but only writes a connection's
// value when its magnitude exceeds threshold.
func EvaluateThreshold(b Brain, a *core.Agent, sources, memory, sinks []neuron.Neuron, threshold float64) {
	for _, c := range b.Connections {
		v := readEnd(c, a, sources, memory) * c.Weight
		if math.Abs(v) > threshold {
			writeEnd(c, v, sinks, memory)
		}
	}
}

// EvaluateMax finds the single connection with the largest |read*weight|
// across the whole brain and writes only that connection's raw weight
// onto its write end, exactly once.
func EvaluateMax(b Brain, a *core.Agent, sources, memory, sinks []neuron.Neuron) {
	if len(b.Connections) == 0 {
		return
	}

	best := 0
	bestAbs := -1.0
	for i, c := range b.Connections {
		v := readEnd(c, a, sources, memory) * c.Weight
		if av := math.Abs(v); av > bestAbs {
			bestAbs = av
			best = i
		}
	}

	c := b.Connections[best]
	writeEnd(c, c.Weight, sinks, memory)
}

// ApplySinks walks every connection once more and applies its write
// end. Sink.Apply and Memory.Apply are both safe to call repeatedly —
// sinks guard with an internal applied flag, memory is a no-op — so a
// sink reached by multiple connections still only fires its side
// effect once.
func ApplySinks(b Brain, a *core.Agent, sinks, memory []neuron.Neuron) {
	for _, c := range b.Connections {
		switch c.WriteKind {
		case EndMemory:
			memory[c.WriteIdx].Apply(a)
		default:
			sinks[c.WriteIdx].Apply(a)
		}
	}
}

// ResetAll resets every source, sink and memory neuron an agent owns.
// Sources are no-ops but resetting them uniformly keeps the call site
// simple and matches spec's framing of a single reset pass.
func ResetAll(sources, memory, sinks []neuron.Neuron) {
	for _, n := range sources {
		n.Reset()
	}
	for _, n := range memory {
		n.Reset()
	}
	for _, n := range sinks {
		n.Reset()
	}
}

// Evaluate dispatches to the named update discipline. kind must already
// be normalised (lowercase, trimmed) as core.Config.Validate does.
func Evaluate(kind string, b Brain, a *core.Agent, sources, memory, sinks []neuron.Neuron, threshold float64) {
	switch kind {
	case "threshold":
		EvaluateThreshold(b, a, sources, memory, sinks, threshold)
	case "max":
		EvaluateMax(b, a, sources, memory, sinks)
	default:
		EvaluateEvery(b, a, sources, memory, sinks)
	}
}
