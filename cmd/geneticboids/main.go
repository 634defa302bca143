package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/genboids/geneticboids/pkg/core"
	"github.com/genboids/geneticboids/pkg/render"
	"github.com/genboids/geneticboids/pkg/simulation"
)

func main() {
	var cliOverrides core.CLIOverrides
	var seedStr string
	var neuronSources, neuronSinks string
	var textOutput bool

	rootCmd := &cobra.Command{
		Use:   "geneticboids",
		Short: "geneticboids - evolutionary simulator of neural boids",
		Long:  "Evolves a population of autonomous agents, each driven by a small feed-forward neural network, across generations under a pluggable survival predicate.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if seedStr != "" {
				cliOverrides.Seed = &seedStr
			}
			if neuronSources != "" {
				cliOverrides.NeuronSources = &neuronSources
			}
			if neuronSinks != "" {
				cliOverrides.NeuronSinks = &neuronSinks
			}
			return run(cmd.Flags(), &cliOverrides, textOutput)
		},
		SilenceUsage: true,
	}

	f := rootCmd.Flags()

	configPath := f.StringP("config", "f", "", "Path to YAML config file (overrides GENBOIDS_CONFIG env)")
	f.StringVar(&seedStr, "seed", "", "PRNG seed (decimal or 0x-prefixed hex)")
	cliOverrides.ScreenWidth = f.Float64("screen-width", 0, "World width")
	cliOverrides.ScreenHeight = f.Float64("screen-height", 0, "World height")
	cliOverrides.Zoom = f.Float64("zoom", 0, "Renderer zoom factor")
	cliOverrides.NumBoids = f.Int("num-boids", 0, "Population size")
	cliOverrides.MaxGens = f.Int("max-gens", 0, "Maximum number of generations")
	cliOverrides.GenIters = f.Int("gen-iters", 0, "Iterations per generation")
	cliOverrides.RealtimeEveryNGens = f.Int("realtime-every-n-gens", 0, "Render every iteration every N generations")
	cliOverrides.BrainType = f.String("brain-type", "", "Brain topology: no_memory|layered|fully_connected")
	cliOverrides.MemoryPerLayer = f.Int("memory-per-layer", 0, "Memory neurons per layer")
	cliOverrides.MemoryLayers = f.Int("memory-layers", 0, "Number of memory layers")
	f.StringVar(&neuronSources, "neuron-sources", "", "Comma-separated source neuron names")
	f.StringVar(&neuronSinks, "neuron-sinks", "", "Comma-separated sink neuron names")
	cliOverrides.UpdateType = f.String("update-type", "", "Update discipline: every|threshold|max")
	cliOverrides.NeuralThreshold = f.Float64("neural-threshold", 0, "Activation threshold for the threshold discipline")
	cliOverrides.Mutation = f.Float64("mutation", 0, "Per-weight mutation magnitude")
	cliOverrides.BoundedWeights = f.Bool("bounded-weights", false, "Clamp weights after mutation")
	cliOverrides.MaxWeight = f.Float64("max-weight", 0, "Weight clamp magnitude")
	cliOverrides.MinSize = f.Float64("min-size", 0, "Minimum agent size")
	cliOverrides.MaxSize = f.Float64("max-size", 0, "Maximum agent size")
	cliOverrides.MaxVelocity = f.Float64("max-velocity", 0, "Maximum agent velocity")
	cliOverrides.MaxAngularVelocity = f.Float64("max-angular-velocity", 0, "Maximum agent angular velocity")
	cliOverrides.SaveFrames = f.Bool("save-frames", false, "Capture frames to a video sink")
	cliOverrides.VideoScale = f.Float64("video-scale", 0, "Video output scale factor")
	f.BoolVar(&textOutput, "text", true, "Render a one-line text summary to stdout instead of discarding frames")

	cliOverrides.ConfigPath = configPath

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// run implements startup after CLI flags are parsed: load config through
// the defaults -> YAML -> env hierarchy, layer in only the flags the
// user actually set, validate, then drive the simulation loop.
func run(flags *pflag.FlagSet, o *core.CLIOverrides, textOutput bool) error {
	core.PrintBanner()

	configPath := ""
	if o.ConfigPath != nil && *o.ConfigPath != "" {
		configPath = *o.ConfigPath
	} else {
		configPath = os.Getenv("GENBOIDS_CONFIG")
	}

	cfg, err := core.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	applyExplicitFlags(flags, cfg, o)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	runID := core.NewRunID()
	log.Printf("run=%s seed=%d num_boids=%d max_gens=%d gen_iters=%d brain_type=%s update_type=%s",
		runID, cfg.Seed, cfg.Population.NumBoids, cfg.Population.MaxGens, cfg.Population.GenIters,
		cfg.Brain.BrainType, cfg.Neural.UpdateType)

	var renderer render.Renderer = render.NullRenderer{}
	if textOutput {
		renderer = render.TextRenderer{W: os.Stdout}
	}

	ctx, cancel := context.WithCancel(context.Background())
	go core.WaitForShutdown(ctx, cancel)

	if err := simulation.Run(ctx, cfg, renderer, runID); err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}

	log.Printf("run=%s complete", runID)
	return nil
}

// applyExplicitFlags applies only the CLI flags the user explicitly
// set, so unset flags never override values resolved from YAML or
// environment variables.
func applyExplicitFlags(flags *pflag.FlagSet, cfg *core.Config, o *core.CLIOverrides) {
	overrides := core.CLIOverrides{}

	if flags.Changed("seed") {
		overrides.Seed = o.Seed
	}
	if flags.Changed("screen-width") {
		overrides.ScreenWidth = o.ScreenWidth
	}
	if flags.Changed("screen-height") {
		overrides.ScreenHeight = o.ScreenHeight
	}
	if flags.Changed("zoom") {
		overrides.Zoom = o.Zoom
	}
	if flags.Changed("num-boids") {
		overrides.NumBoids = o.NumBoids
	}
	if flags.Changed("max-gens") {
		overrides.MaxGens = o.MaxGens
	}
	if flags.Changed("gen-iters") {
		overrides.GenIters = o.GenIters
	}
	if flags.Changed("realtime-every-n-gens") {
		overrides.RealtimeEveryNGens = o.RealtimeEveryNGens
	}
	if flags.Changed("brain-type") {
		overrides.BrainType = o.BrainType
	}
	if flags.Changed("memory-per-layer") {
		overrides.MemoryPerLayer = o.MemoryPerLayer
	}
	if flags.Changed("memory-layers") {
		overrides.MemoryLayers = o.MemoryLayers
	}
	if flags.Changed("neuron-sources") {
		overrides.NeuronSources = o.NeuronSources
	}
	if flags.Changed("neuron-sinks") {
		overrides.NeuronSinks = o.NeuronSinks
	}
	if flags.Changed("update-type") {
		overrides.UpdateType = o.UpdateType
	}
	if flags.Changed("neural-threshold") {
		overrides.NeuralThreshold = o.NeuralThreshold
	}
	if flags.Changed("mutation") {
		overrides.Mutation = o.Mutation
	}
	if flags.Changed("bounded-weights") {
		overrides.BoundedWeights = o.BoundedWeights
	}
	if flags.Changed("max-weight") {
		overrides.MaxWeight = o.MaxWeight
	}
	if flags.Changed("min-size") {
		overrides.MinSize = o.MinSize
	}
	if flags.Changed("max-size") {
		overrides.MaxSize = o.MaxSize
	}
	if flags.Changed("max-velocity") {
		overrides.MaxVelocity = o.MaxVelocity
	}
	if flags.Changed("max-angular-velocity") {
		overrides.MaxAngularVelocity = o.MaxAngularVelocity
	}
	if flags.Changed("save-frames") {
		overrides.SaveFrames = o.SaveFrames
	}
	if flags.Changed("video-scale") {
		overrides.VideoScale = o.VideoScale
	}

	cfg.ApplyCLIOverrides(&overrides)
}
