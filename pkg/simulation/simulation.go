// Package simulation drives the outer generation loop and inner
// per-iteration loop: parallel agent updates, the real-time frame
// pacing selector, the evolution step between generations, and a
// context-driven cancellation hook.
package simulation

import (
	"context"
	"log"
	"time"

	"github.com/genboids/geneticboids/pkg/concurrency"
	"github.com/genboids/geneticboids/pkg/core"
	"github.com/genboids/geneticboids/pkg/evolution"
	"github.com/genboids/geneticboids/pkg/neuron"
	"github.com/genboids/geneticboids/pkg/population"
	"github.com/genboids/geneticboids/pkg/predicate"
	"github.com/genboids/geneticboids/pkg/render"
)

const realtimeFrameInterval = time.Second / 24

// Run drives the full simulation: cfg.Population.MaxGens generations of
// cfg.Population.GenIters iterations each, fanning per-iteration agent
// updates out across a worker pool, evolving the population at every
// generation boundary, and handing the renderer a read-only snapshot
// on every iteration of a real-time generation and on the final
// iteration of every other generation. Run returns when ctx is cancelled or MaxGens
// generations have completed.
func Run(ctx context.Context, cfg *core.Config, renderer render.Renderer, runID core.RunID) error {
	if renderer == nil {
		renderer = render.NullRenderer{}
	}

	rng := core.NewRandom(cfg.Seed)
	pred := predicate.Default(cfg)
	errFn := predicate.ErrorFunction(cfg)

	env := neuron.Env{
		ScreenWidth:        cfg.World.ScreenWidth,
		ScreenHeight:       cfg.World.ScreenHeight,
		MaxVelocity:        cfg.Agent.MaxVelocity,
		MaxAngularVelocity: cfg.Agent.MaxAngularVelocity,
		MaxSize:            cfg.Agent.MaxSize,
		GenIters:           cfg.Population.GenIters,
		Predicate:          pred,
	}

	pool := concurrency.NewPool(0)
	defer pool.Close()

	pop := population.New(cfg, rng)
	var lastResult evolution.Result
	var frame int64

	log.Printf("simulation start run=%s seed=%d num_boids=%d max_gens=%d", runID, cfg.Seed, cfg.Population.NumBoids, cfg.Population.MaxGens)

	for gen := 0; gen < cfg.Population.MaxGens; gen++ {
		if ctx.Err() != nil {
			log.Printf("simulation cancelled run=%s at generation=%d", runID, gen)
			return nil
		}

		realtime := isRealtimeGeneration(gen, cfg.Population.RealtimeEveryNGens)

		for iter := 0; iter < cfg.Population.GenIters; iter++ {
			if ctx.Err() != nil {
				log.Printf("simulation cancelled run=%s at generation=%d iteration=%d", runID, gen, iter)
				return nil
			}

			neuron.SetEnv(env)
			pop.Step(iter, pool)

			shouldRender := realtime || iter == cfg.Population.GenIters-1
			if shouldRender {
				errStats := pop.Errors(errFn)
				stats := render.Stats{
					Survivors: lastResult.Survivors,
					ErrorMin:  errStats.Min,
					ErrorAvg:  errStats.Avg,
					ErrorMax:  errStats.Max,
				}
				if err := renderer.Render(pop.Snapshot(), gen, iter, frame, float64(frame)/24, stats); err != nil {
					return err
				}
				frame++
			}

			if realtime {
				if !waitInterval(ctx, realtimeFrameInterval) {
					return nil
				}
			}
		}

		next, res := evolution.Evolve(pop, cfg, rng, pred)
		if res.Survivors == 0 {
			log.Printf("generation=%d run=%s zero survivors, population re-initialised", gen, runID)
		} else {
			log.Printf("generation=%d run=%s survivors=%d", gen, runID, res.Survivors)
		}
		pop = next
		lastResult = res
	}

	log.Printf("simulation complete run=%s generations=%d", runID, cfg.Population.MaxGens)
	return nil
}

// isRealtimeGeneration reports whether gen is a real-time generation:
// generation % RealtimeEveryNGens == 0 and gen > 0.
func isRealtimeGeneration(gen, every int) bool {
	if gen <= 0 || every <= 0 {
		return false
	}
	return gen%every == 0
}

// waitInterval blocks for d or until ctx is cancelled, whichever comes
// first, returning false on cancellation.
func waitInterval(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
