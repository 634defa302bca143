package core

import (
	"math"
	"testing"
)

func TestNewAgent_StartsAtMinSize(t *testing.T) {
	a := NewAgent(5, 20, 18, 0.2)
	if a.Size != 5 {
		t.Errorf("expected initial Size to equal minSize 5, got %v", a.Size)
	}
}

func TestSetSize_ClampsToRange(t *testing.T) {
	a := NewAgent(5, 20, 18, 0.2)

	a.SetSize(100)
	if a.Size != 20 {
		t.Errorf("expected Size clamped to 20, got %v", a.Size)
	}

	a.SetSize(-5)
	if a.Size != 5 {
		t.Errorf("expected Size clamped to 5, got %v", a.Size)
	}

	a.SetSize(12)
	if a.Size != 12 {
		t.Errorf("expected Size 12, got %v", a.Size)
	}
}

func TestSetVelocity_ClampsSymmetrically(t *testing.T) {
	a := NewAgent(5, 20, 18, 0.2)

	a.SetVelocity(100)
	if a.Velocity != 18 {
		t.Errorf("expected Velocity clamped to 18, got %v", a.Velocity)
	}
	a.SetVelocity(-100)
	if a.Velocity != -18 {
		t.Errorf("expected Velocity clamped to -18, got %v", a.Velocity)
	}
}

func TestSetAngularVel_ClampsSymmetrically(t *testing.T) {
	a := NewAgent(5, 20, 18, 0.2)

	a.SetAngularVel(5)
	if a.AngularVel != 0.2 {
		t.Errorf("expected AngularVel clamped to 0.2, got %v", a.AngularVel)
	}
	a.SetAngularVel(-5)
	if a.AngularVel != -0.2 {
		t.Errorf("expected AngularVel clamped to -0.2, got %v", a.AngularVel)
	}
}

func TestSetDirection_ReducesModTwoPi(t *testing.T) {
	a := NewAgent(5, 20, 18, 0.2)

	a.SetDirection(3 * math.Pi)
	if a.Direction < 0 || a.Direction >= twoPi {
		t.Errorf("expected Direction in [0, 2pi), got %v", a.Direction)
	}

	a.SetDirection(-math.Pi / 2)
	if a.Direction < 0 || a.Direction >= twoPi {
		t.Errorf("expected negative Direction to wrap into [0, 2pi), got %v", a.Direction)
	}
}

func TestMove_AdvancesAlongDirection(t *testing.T) {
	a := NewAgent(5, 20, 18, 0.2)
	a.SetDirection(0)
	a.Move(10)

	if math.Abs(a.Position.X) > 1e-9 {
		t.Errorf("expected no X movement at direction 0, got %v", a.Position.X)
	}
	if math.Abs(a.Position.Y-10) > 1e-9 {
		t.Errorf("expected Y to advance by 10, got %v", a.Position.Y)
	}
}

func TestCloneStateFrom_CopiesPhysicalStateNotAge(t *testing.T) {
	parent := NewAgent(5, 20, 18, 0.2)
	parent.SetSize(15)
	parent.Position = Position{X: 1, Y: 2}
	parent.SetColour(Colour{R: 9, G: 8, B: 7})
	parent.SetDirection(1.5)
	parent.SetVelocity(10)
	parent.SetAngularVel(0.1)
	parent.Age = 42

	child := NewAgent(5, 20, 18, 0.2)
	child.Age = 0
	child.CloneStateFrom(parent)

	if child.Size != 15 {
		t.Errorf("expected cloned Size 15, got %v", child.Size)
	}
	if child.Position != parent.Position {
		t.Errorf("expected cloned Position %v, got %v", parent.Position, child.Position)
	}
	if child.Colour != parent.Colour {
		t.Errorf("expected cloned Colour %v, got %v", parent.Colour, child.Colour)
	}
	if child.Age != 0 {
		t.Errorf("expected Age to remain untouched by CloneStateFrom, got %d", child.Age)
	}
}

func TestClamp(t *testing.T) {
	cases := []struct{ v, lo, hi, want float64 }{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
	}
	for _, c := range cases {
		if got := clamp(c.v, c.lo, c.hi); got != c.want {
			t.Errorf("clamp(%v, %v, %v) = %v, want %v", c.v, c.lo, c.hi, got, c.want)
		}
	}
}
