package predicate

import "github.com/genboids/geneticboids/pkg/core"

// Default reproduces the original simulator's built-in live strategy: a
// boid survives a generation when it is small AND either sitting in a
// top corner while red, or sitting in a bottom corner while green.
func Default(cfg *core.Config) Predicate {
	small := IsSmall(cfg)
	topRed := And(TopCorners(cfg), IsRed(cfg))
	bottomGreen := And(BottomCorners(cfg), IsGreen(cfg))
	return And(small, Or(topRed, bottomGreen))
}
