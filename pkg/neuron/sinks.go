package neuron

import "github.com/genboids/geneticboids/pkg/core"

// summingSink is the shared accumulate-then-apply-once base every sink
// neuron embeds. apply is supplied per-sink as the side effect run after
// the accumulator has been sigmoid-mapped.
type summingSink struct {
	name    string
	acc     float64
	applied bool
	apply   func(a *core.Agent, w float64)
}

func (s *summingSink) Read(*core.Agent, float64) float64 { return 0 }

func (s *summingSink) Write(weight float64) {
	s.acc += weight
}

func (s *summingSink) Reset() {
	s.acc = 0
	s.applied = false
}

func (s *summingSink) Apply(a *core.Agent) {
	if s.applied {
		return
	}
	s.acc = Sigmoid(s.acc)
	s.apply(a, s.acc)
	s.applied = true
}

func newSink(name string, apply func(a *core.Agent, w float64)) Neuron {
	return &summingSink{name: name, apply: apply}
}

// NewSink constructs a fresh instance of the named sink neuron, or
// (nil, false) if name is not a known sink. Each agent needs its own
// instance — sinks carry per-iteration accumulator state.
func NewSink(name string) (Neuron, bool) {
	switch name {
	case "move":
		return newSink(name, func(a *core.Agent, w float64) {
			a.Move(w * a.Velocity)
		}), true
	case "direction":
		return newSink(name, func(a *core.Agent, w float64) {
			a.SetDirection(a.Direction + a.AngularVel*w)
		}), true
	case "velocity":
		return newSink(name, func(a *core.Agent, w float64) {
			a.SetVelocity(a.Velocity + w)
		}), true
	case "angular-velocity":
		return newSink(name, func(a *core.Agent, w float64) {
			a.SetAngularVel(a.AngularVel + w)
		}), true
	case "red":
		return newSink(name, func(a *core.Agent, w float64) {
			c := a.Colour
			c.R = channelByte(w)
			a.SetColour(c)
		}), true
	case "green":
		return newSink(name, func(a *core.Agent, w float64) {
			c := a.Colour
			c.G = channelByte(w)
			a.SetColour(c)
		}), true
	case "blue":
		return newSink(name, func(a *core.Agent, w float64) {
			c := a.Colour
			c.B = channelByte(w)
			a.SetColour(c)
		}), true
	case "size":
		return newSink(name, func(a *core.Agent, w float64) {
			a.SetSize(absF(w) * a.MaxSize())
		}), true
	default:
		return nil, false
	}
}

func channelByte(w float64) uint8 {
	v := absF(w) * 255
	if v > 255 {
		v = 255
	}
	return uint8(v)
}

func absF(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
