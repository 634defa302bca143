package predicate

import (
	"math"

	"github.com/genboids/geneticboids/pkg/core"
)

// ---------------------------------------------------------------------------
// Rectangular windows
// ---------------------------------------------------------------------------

func box(cfg *core.Config, xlo, xhi, ylo, yhi float64) Predicate {
	w, h := cfg.World.ScreenWidth, cfg.World.ScreenHeight
	return func(a *core.Agent) bool {
		x, y := a.Position.X, a.Position.Y
		return x > w*xlo && x < w*xhi && y > h*ylo && y < h*yhi
	}
}

// CentreThirdBox is true for the middle third of the world in both axes.
func CentreThirdBox(cfg *core.Config) Predicate {
	return box(cfg, 1.0/3, 2.0/3, 1.0/3, 2.0/3)
}

// CentreFifthBox is true for the middle fifth of the world in both axes.
func CentreFifthBox(cfg *core.Config) Predicate {
	return box(cfg, 2.0/5, 3.0/5, 2.0/5, 3.0/5)
}

// CentreTenthBox is true for the middle tenth of the world in both axes.
func CentreTenthBox(cfg *core.Config) Predicate {
	return box(cfg, 4.5/10, 5.5/10, 4.5/10, 5.5/10)
}

// OffCentreTenthBox1 is true for a tenth-sized box below and left of centre.
func OffCentreTenthBox1(cfg *core.Config) Predicate {
	return box(cfg, 3.5/10, 4.5/10, 6.5/10, 7.5/10)
}

// OffCentreTenthBox2 is true for a tenth-sized box above and right of centre.
func OffCentreTenthBox2(cfg *core.Config) Predicate {
	return box(cfg, 6.5/10, 7.5/10, 3.5/10, 4.5/10)
}

// CentreTwentiethBox is true for the middle twentieth of the world.
func CentreTwentiethBox(cfg *core.Config) Predicate {
	return box(cfg, 9.5/20, 10.5/20, 9.5/20, 10.5/20)
}

// OffCentreTwentiethBox is true for a twentieth-sized box off-centre.
func OffCentreTwentiethBox(cfg *core.Config) Predicate {
	return box(cfg, 3.5/20, 4.5/20, 16.5/20, 17.5/20)
}

// LeftHalf is true when the agent is in the left half of the world.
func LeftHalf(cfg *core.Config) Predicate {
	w := cfg.World.ScreenWidth
	return func(a *core.Agent) bool { return a.Position.X < w/2 }
}

// RightHalf is true when the agent is in the right half of the world.
func RightHalf(cfg *core.Config) Predicate {
	w := cfg.World.ScreenWidth
	return func(a *core.Agent) bool { return a.Position.X > w/2 }
}

// ---------------------------------------------------------------------------
// Border bands
// ---------------------------------------------------------------------------

// LeftRightTenth is true within the leftmost or rightmost tenth of the world.
func LeftRightTenth(cfg *core.Config) Predicate {
	w := cfg.World.ScreenWidth
	return func(a *core.Agent) bool {
		x := a.Position.X
		return x < w*0.1 || x > w*0.9
	}
}

// TopBottomTenth is true within the topmost or bottommost tenth of the world.
func TopBottomTenth(cfg *core.Config) Predicate {
	h := cfg.World.ScreenHeight
	return func(a *core.Agent) bool {
		y := a.Position.Y
		return y < h*0.1 || y > h*0.9
	}
}

// TopLeftTenth is true within the top-left tenth corner of the world.
func TopLeftTenth(cfg *core.Config) Predicate {
	w, h := cfg.World.ScreenWidth, cfg.World.ScreenHeight
	return func(a *core.Agent) bool {
		return a.Position.X < w*0.1 && a.Position.Y < h*0.1
	}
}

// StuckOnBorder is true when the agent sits within 1/25th of the world
// size from any edge.
func StuckOnBorder(cfg *core.Config) Predicate {
	w, h := cfg.World.ScreenWidth, cfg.World.ScreenHeight
	mx, my := w/25, h/25
	return func(a *core.Agent) bool {
		x, y := a.Position.X, a.Position.Y
		stuckX := math.Abs(x) < mx || math.Abs(w-x) < mx
		stuckY := math.Abs(y) < my || math.Abs(h-y) < my
		return stuckX || stuckY
	}
}

// InBounds is true when the agent is strictly within [0,W]x[0,H].
func InBounds(cfg *core.Config) Predicate {
	w, h := cfg.World.ScreenWidth, cfg.World.ScreenHeight
	return func(a *core.Agent) bool {
		x, y := a.Position.X, a.Position.Y
		return x > 0 && x < w && y > 0 && y < h
	}
}

// ---------------------------------------------------------------------------
// Corner circles
// ---------------------------------------------------------------------------

func corner(cfg *core.Config, cx, cy float64) Predicate {
	radius := cfg.World.ScreenWidth / 8
	return func(a *core.Agent) bool {
		dx, dy := a.Position.X-cx, a.Position.Y-cy
		return math.Sqrt(dx*dx+dy*dy) < radius
	}
}

// TopLeftCircle is true within a radius-W/8 circle at the top-left corner.
func TopLeftCircle(cfg *core.Config) Predicate { return corner(cfg, 0, 0) }

// TopRightCircle is true within a radius-W/8 circle at the top-right corner.
func TopRightCircle(cfg *core.Config) Predicate { return corner(cfg, cfg.World.ScreenWidth, 0) }

// BottomLeftCircle is true within a radius-W/8 circle at the bottom-left corner.
func BottomLeftCircle(cfg *core.Config) Predicate { return corner(cfg, 0, cfg.World.ScreenHeight) }

// BottomRightCircle is true within a radius-W/8 circle at the bottom-right corner.
func BottomRightCircle(cfg *core.Config) Predicate {
	return corner(cfg, cfg.World.ScreenWidth, cfg.World.ScreenHeight)
}

// TopCorners is true within either top corner circle.
func TopCorners(cfg *core.Config) Predicate {
	return Or(TopLeftCircle(cfg), TopRightCircle(cfg))
}

// BottomCorners is true within either bottom corner circle.
func BottomCorners(cfg *core.Config) Predicate {
	return Or(BottomLeftCircle(cfg), BottomRightCircle(cfg))
}

// Corners is true within any of the four corner circles.
func Corners(cfg *core.Config) Predicate {
	return Or(TopCorners(cfg), BottomCorners(cfg))
}

// ---------------------------------------------------------------------------
// Velocity thresholds
// ---------------------------------------------------------------------------

// LowVelocity is true when |velocity| is under a tenth of MaxVelocity.
func LowVelocity(cfg *core.Config) Predicate {
	cutoff := cfg.Agent.MaxVelocity / 10
	return func(a *core.Agent) bool { return math.Abs(a.Velocity) < cutoff }
}

// HasVelocity is true when the agent is moving at all (above noise floor).
func HasVelocity(*core.Config) Predicate {
	return func(a *core.Agent) bool { return math.Abs(a.Velocity) > 0.001 }
}

// ---------------------------------------------------------------------------
// Colour dominance
// ---------------------------------------------------------------------------

// IsRed is true when red is more than twice both green and blue.
func IsRed(*core.Config) Predicate {
	return func(a *core.Agent) bool {
		c := a.Colour
		half := float64(c.R) / 2
		return half > float64(c.G) && half > float64(c.B)
	}
}

// IsGreen is true when green is more than twice both red and blue.
func IsGreen(*core.Config) Predicate {
	return func(a *core.Agent) bool {
		c := a.Colour
		half := float64(c.G) / 2
		return half > float64(c.R) && half > float64(c.B)
	}
}

// IsBlue is true when blue is more than twice both red and green.
func IsBlue(*core.Config) Predicate {
	return func(a *core.Agent) bool {
		c := a.Colour
		half := float64(c.B) / 2
		return half > float64(c.R) && half > float64(c.G)
	}
}

// ---------------------------------------------------------------------------
// Size bins
// ---------------------------------------------------------------------------

// IsLarge is true for agents in the top fifth of the size range.
func IsLarge(cfg *core.Config) Predicate {
	cutoff := cfg.Agent.MinSize + (cfg.Agent.MaxSize-cfg.Agent.MinSize)*0.8
	return func(a *core.Agent) bool { return a.Size > cutoff }
}

// IsSmall is true for agents in the bottom fifth of the size range.
func IsSmall(cfg *core.Config) Predicate {
	cutoff := cfg.Agent.MinSize + (cfg.Agent.MaxSize-cfg.Agent.MinSize)*0.2
	return func(a *core.Agent) bool { return a.Size < cutoff }
}

// ---------------------------------------------------------------------------
// Striping
// ---------------------------------------------------------------------------

// HorizStripes is true on alternating 10-unit-wide vertical stripes.
func HorizStripes(*core.Config) Predicate {
	return func(a *core.Agent) bool {
		return int(math.Round(a.Position.X/10))%2 == 0
	}
}

// VertStripes is true on alternating 10-unit-tall horizontal stripes.
func VertStripes(*core.Config) Predicate {
	return func(a *core.Agent) bool {
		return int(math.Round(a.Position.Y/10))%2 == 0
	}
}
