package core

import "math"

const twoPi = 2 * math.Pi

// Position is an agent's location in the 2D world. Unlike every other
// physical field it is never clamped — an agent may wander outside
// [0,W]x[0,H] and stay there.
type Position struct {
	X, Y float64
}

// Colour is an 8-bit-per-channel RGB triple.
type Colour struct {
	R, G, B uint8
}

// Agent is the plain physical-state record shared by every population
// member. It owns no brain; boid.Boid embeds it and adds the neural
// machinery on top.
type Agent struct {
	Position    Position
	Direction   float64 // radians, always reduced mod 2π
	Velocity    float64 // clamped to [-maxVelocity, +maxVelocity]
	AngularVel  float64 // clamped to [-maxAngularVel, +maxAngularVel]
	Size        float64 // clamped to [minSize, maxSize]
	Colour      Colour
	Age         int

	minSize, maxSize           float64
	maxVelocity, maxAngularVel float64
}

// NewAgent returns an Agent with the given clamp ranges. Size starts at
// minSize and every other physical field at its zero value; callers
// randomize initial conditions separately, which happens at the start
// of every generation.
func NewAgent(minSize, maxSize, maxVelocity, maxAngularVel float64) *Agent {
	return &Agent{
		minSize:       minSize,
		maxSize:       maxSize,
		maxVelocity:   maxVelocity,
		maxAngularVel: maxAngularVel,
		Size:          minSize,
	}
}

// SetSize clamps to [minSize, maxSize] on every write.
func (a *Agent) SetSize(next float64) {
	a.Size = clamp(next, a.minSize, a.maxSize)
}

// MaxSize returns the agent's own upper size clamp, the range a size
// source/sink should normalise against rather than any shared config.
func (a *Agent) MaxSize() float64 {
	return a.maxSize
}

// SetVelocity clamps to [-maxVelocity, +maxVelocity].
func (a *Agent) SetVelocity(next float64) {
	a.Velocity = clamp(next, -a.maxVelocity, a.maxVelocity)
}

// SetAngularVel clamps to [-maxAngularVel, +maxAngularVel].
func (a *Agent) SetAngularVel(next float64) {
	a.AngularVel = clamp(next, -a.maxAngularVel, a.maxAngularVel)
}

// SetDirection reduces next modulo 2π before storing it.
func (a *Agent) SetDirection(next float64) {
	m := math.Mod(next, twoPi)
	if m < 0 {
		m += twoPi
	}
	a.Direction = m
}

// SetColour stores an RGB triple verbatim; channels are already bounded
// by their uint8 representation.
func (a *Agent) SetColour(c Colour) {
	a.Colour = c
}

// Move advances position by (delta*sin(direction), delta*cos(direction)).
func (a *Agent) Move(delta float64) {
	a.Position.X += delta * math.Sin(a.Direction)
	a.Position.Y += delta * math.Cos(a.Direction)
}

// CloneStateFrom copies only physical attributes from other — not age,
// and not the clamp ranges (those belong to the receiver's own config).
func (a *Agent) CloneStateFrom(other *Agent) {
	a.SetSize(other.Size)
	a.Position = other.Position
	a.SetColour(other.Colour)
	a.SetDirection(other.Direction)
	a.SetVelocity(other.Velocity)
	a.SetAngularVel(other.AngularVel)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
