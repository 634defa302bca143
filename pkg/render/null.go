package render

import "github.com/genboids/geneticboids/pkg/population"

// NullRenderer discards every frame. It satisfies the "must be cheap
// or return early" half of the renderer contract trivially, and is the
// default when no real renderer is wired in.
type NullRenderer struct{}

func (NullRenderer) Render([]population.AgentSnapshot, int, int, int64, float64, Stats) error {
	return nil
}
