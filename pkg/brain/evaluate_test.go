package brain

import (
	"math"
	"testing"

	"github.com/genboids/geneticboids/pkg/core"
	"github.com/genboids/geneticboids/pkg/neuron"
)

// constantSource always reads a fixed value, used to pin down the
// discipline arithmetic in scenario-style tests without depending on
// neuron package internals.
type constantSource struct{ v float64 }

func (s *constantSource) Read(*core.Agent, float64) float64 { return s.v }
func (s *constantSource) Write(float64)                     {}
func (s *constantSource) Reset()                            {}
func (s *constantSource) Apply(*core.Agent)                 {}

// recordingSink records every Write call without the sigmoid/apply
// machinery, so discipline tests can assert exactly what was written.
type recordingSink struct {
	writes []float64
}

func (s *recordingSink) Read(*core.Agent, float64) float64 { return 0 }
func (s *recordingSink) Write(w float64)                    { s.writes = append(s.writes, w) }
func (s *recordingSink) Reset()                             { s.writes = nil }
func (s *recordingSink) Apply(*core.Agent)                  {}

func TestEvaluateEvery_ScenarioD(t *testing.T) {
	sources := []neuron.Neuron{&constantSource{v: 0.5}}
	sink := &recordingSink{}
	sinks := []neuron.Neuron{sink}

	b := Brain{Connections: []Connection{
		{ReadKind: EndSource, ReadIdx: 0, WriteKind: EndSink, WriteIdx: 0, Weight: 2.0},
	}}

	EvaluateEvery(b, nil, sources, nil, sinks)

	if len(sink.writes) != 1 || math.Abs(sink.writes[0]-1.0) > 1e-12 {
		t.Errorf("expected a single write of 1.0, got %v", sink.writes)
	}
}

func TestEvaluateThreshold_SuppressesSmallValues(t *testing.T) {
	sources := []neuron.Neuron{&constantSource{v: 0.05}}
	sink := &recordingSink{}
	sinks := []neuron.Neuron{sink}

	b := Brain{Connections: []Connection{
		{ReadKind: EndSource, ReadIdx: 0, WriteKind: EndSink, WriteIdx: 0, Weight: 1.0},
	}}

	EvaluateThreshold(b, nil, sources, nil, sinks, 0.12)
	if len(sink.writes) != 0 {
		t.Errorf("expected no write below threshold, got %v", sink.writes)
	}
}

func TestEvaluateThreshold_PassesLargeValues(t *testing.T) {
	sources := []neuron.Neuron{&constantSource{v: 1.0}}
	sink := &recordingSink{}
	sinks := []neuron.Neuron{sink}

	b := Brain{Connections: []Connection{
		{ReadKind: EndSource, ReadIdx: 0, WriteKind: EndSink, WriteIdx: 0, Weight: 1.0},
	}}

	EvaluateThreshold(b, nil, sources, nil, sinks, 0.12)
	if len(sink.writes) != 1 {
		t.Errorf("expected one write above threshold, got %v", sink.writes)
	}
}

func TestEvaluateMax_WritesOnlyLargestConnection(t *testing.T) {
	sources := []neuron.Neuron{&constantSource{v: 0.1}, &constantSource{v: 1.0}}
	sinkA := &recordingSink{}
	sinkB := &recordingSink{}
	sinks := []neuron.Neuron{sinkA, sinkB}

	b := Brain{Connections: []Connection{
		{ReadKind: EndSource, ReadIdx: 0, WriteKind: EndSink, WriteIdx: 0, Weight: 1.0}, // v=0.1
		{ReadKind: EndSource, ReadIdx: 1, WriteKind: EndSink, WriteIdx: 1, Weight: 3.0}, // v=3.0 (max)
	}}

	EvaluateMax(b, nil, sources, nil, sinks)

	if len(sinkA.writes) != 0 {
		t.Errorf("expected the non-max connection's sink untouched, got %v", sinkA.writes)
	}
	if len(sinkB.writes) != 1 || sinkB.writes[0] != 3.0 {
		t.Errorf("expected the max connection to write its raw weight 3.0, got %v", sinkB.writes)
	}
}

func TestEvaluateMax_EmptyBrainIsNoop(t *testing.T) {
	EvaluateMax(Brain{}, nil, nil, nil, nil) // must not panic
}

func TestApplySinks_AppliesEveryReferencedSink(t *testing.T) {
	sink, _ := neuron.NewSink("velocity")
	a := core.NewAgent(5, 20, 18, 0.2)
	a.SetVelocity(0)
	sink.Write(1.0)

	b := Brain{Connections: []Connection{
		{ReadKind: EndSource, WriteKind: EndSink, WriteIdx: 0, Weight: 1},
	}}
	ApplySinks(b, a, []neuron.Neuron{sink}, nil)

	if a.Velocity == 0 {
		t.Error("expected ApplySinks to flush the sink onto the agent")
	}
}

func TestResetAll_ClearsEveryNeuron(t *testing.T) {
	sink, _ := neuron.NewSink("velocity")
	mem := neuron.NewMemory()
	sink.Write(5)
	mem.Write(5)

	ResetAll(nil, []neuron.Neuron{mem}, []neuron.Neuron{sink})

	if mem.Read(nil, 0) != 0 {
		t.Error("expected ResetAll to zero the memory accumulator")
	}
	a := core.NewAgent(5, 20, 18, 0.2)
	sink.Apply(a) // should apply a zeroed accumulator (sigmoid(0)=0)
	if a.Velocity != 0 {
		t.Errorf("expected ResetAll to have cleared the sink accumulator, got velocity %v", a.Velocity)
	}
}

func TestEvaluate_DispatchesByKind(t *testing.T) {
	sources := []neuron.Neuron{&constantSource{v: 1.0}}
	sink := &recordingSink{}
	b := Brain{Connections: []Connection{{ReadKind: EndSource, WriteKind: EndSink, Weight: 1}}}

	Evaluate("every", b, nil, sources, nil, []neuron.Neuron{sink}, 0)
	if len(sink.writes) != 1 {
		t.Errorf("expected Evaluate(\"every\", ...) to write once, got %v", sink.writes)
	}

	sink.Reset()
	Evaluate("threshold", b, nil, sources, nil, []neuron.Neuron{sink}, 2.0)
	if len(sink.writes) != 0 {
		t.Errorf("expected Evaluate(\"threshold\", ...) to suppress a sub-threshold write, got %v", sink.writes)
	}
}
