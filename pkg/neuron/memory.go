package neuron

import "github.com/genboids/geneticboids/pkg/core"

// Memory is a summing-sigmoid cell that, unlike a sink, is readable:
// Read returns sigmoid(accumulator) without consuming it, so multiple
// connections may read the same memory cell within one iteration.
// Apply is a no-op — memory state carries forward via Reset timing
// alone, never an agent-facing side effect.
type Memory struct {
	acc float64
}

// NewMemory allocates a fresh, zeroed memory cell.
func NewMemory() Neuron {
	return &Memory{}
}

func (m *Memory) Read(*core.Agent, float64) float64 {
	return Sigmoid(m.acc)
}

func (m *Memory) Write(weight float64) {
	m.acc += weight
}

func (m *Memory) Reset() {
	m.acc = 0
}

func (m *Memory) Apply(*core.Agent) {}
