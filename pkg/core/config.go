package core

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ---------------------------------------------------------------------------
// Config — central configuration for a geneticboids simulation run.
//
// The configuration is resolved through a four-level hierarchy where each
// layer overrides values set by the layer beneath it:
//
//	Priority (highest → lowest):
//	  1. Programmatic overrides (CLI flags applied after loading)
//	  2. Environment variables (GENBOIDS_*)
//	  3. YAML configuration file
//	  4. Built-in defaults
//
// All duration-like fields are plain counts (iterations, generations);
// there is no wall-clock configuration beyond the real-time pacing rate.
// ---------------------------------------------------------------------------

// WorldConfig groups world-bounds settings.
type WorldConfig struct {
	// ScreenWidth/ScreenHeight bound the world; also used by
	// position-derived source neurons.
	ScreenWidth  float64 `yaml:"screenWidth"`
	ScreenHeight float64 `yaml:"screenHeight"`

	// Zoom is renderer-facing only.
	Zoom float64 `yaml:"zoom"`
}

// PopulationConfig groups population sizing and loop bounds.
type PopulationConfig struct {
	// NumBoids is the population size, constant across generations.
	NumBoids int `yaml:"numBoids"`

	// MaxGens is the outer generation loop bound.
	MaxGens int `yaml:"maxGens"`

	// GenIters is the inner per-generation iteration bound.
	GenIters int `yaml:"genIters"`

	// RealtimeEveryNGens selects which generations render every
	// iteration (and pace to 24fps) instead of only the final iteration.
	RealtimeEveryNGens int `yaml:"realtimeEveryNGens"`
}

// BrainConfig groups brain topology settings.
type BrainConfig struct {
	// BrainType selects the topology builder: no_memory | layered | fully_connected.
	BrainType string `yaml:"brainType"`

	// MemoryPerLayer and MemoryLayers shape the memory pool for
	// layered/fully_connected topologies.
	MemoryPerLayer int `yaml:"memoryPerLayer"`
	MemoryLayers   int `yaml:"memoryLayers"`

	// NeuronSources and NeuronSinks are ordered name lists resolved
	// against the source/sink registries. Unknown names are dropped;
	// an empty resolved list falls back to DefaultNeuronSources/DefaultNeuronSinks.
	NeuronSources []string `yaml:"neuronSources"`
	NeuronSinks   []string `yaml:"neuronSinks"`
}

// NeuralConfig groups update-discipline and weight-mutation settings.
type NeuralConfig struct {
	// UpdateType selects the evaluation discipline: every | threshold | max.
	UpdateType string `yaml:"updateType"`

	// NeuralThreshold is the activation cutoff for the threshold discipline.
	NeuralThreshold float64 `yaml:"neuralThreshold"`

	// Mutation is the per-weight mutation magnitude applied between generations.
	Mutation float64 `yaml:"mutation"`

	// BoundedWeights and MaxWeight control post-mutation weight clamping.
	BoundedWeights bool    `yaml:"boundedWeights"`
	MaxWeight      float64 `yaml:"maxWeight"`
}

// AgentConfig groups per-agent physical clamp ranges.
type AgentConfig struct {
	MinSize           float64 `yaml:"minSize"`
	MaxSize           float64 `yaml:"maxSize"`
	MaxVelocity       float64 `yaml:"maxVelocity"`
	MaxAngularVelocity float64 `yaml:"maxAngularVelocity"`
}

// RenderConfig groups renderer/video-sink-facing settings. The core
// kernel never reads these beyond passing them through; they exist so a
// real renderer collaborator has somewhere to read them from.
type RenderConfig struct {
	SaveFrames bool    `yaml:"saveFrames"`
	VideoScale float64 `yaml:"videoScale"`
}

// Config is the root configuration object for a simulation run.
type Config struct {
	Seed int64 `yaml:"seed"`

	World      WorldConfig      `yaml:"world"`
	Population PopulationConfig `yaml:"population"`
	Brain      BrainConfig      `yaml:"brain"`
	Neural     NeuralConfig     `yaml:"neural"`
	Agent      AgentConfig      `yaml:"agent"`
	Render     RenderConfig     `yaml:"render"`
}

// Default source/sink name lists, used when the configured list resolves
// to nothing (all names unknown, or the list was empty).
var (
	DefaultNeuronSources = []string{"west", "east", "north", "south", "velocity", "red", "green", "blue", "size"}
	DefaultNeuronSinks   = []string{"move", "velocity", "direction"}
)

// ---------------------------------------------------------------------------
// Factory functions
// ---------------------------------------------------------------------------

// DefaultConfig returns a Config populated with sane out-of-the-box
// defaults for a moderate-sized population.
func DefaultConfig() *Config {
	return &Config{
		Seed: 0,
		World: WorldConfig{
			ScreenWidth:  750,
			ScreenHeight: 750,
			Zoom:         0.85,
		},
		Population: PopulationConfig{
			NumBoids:           5000,
			MaxGens:            12000,
			GenIters:           350,
			RealtimeEveryNGens: 25,
		},
		Brain: BrainConfig{
			BrainType:      "no_memory",
			MemoryPerLayer: 5,
			MemoryLayers:   3,
			NeuronSources:  append([]string(nil), DefaultNeuronSources...),
			NeuronSinks:    append([]string(nil), DefaultNeuronSinks...),
		},
		Neural: NeuralConfig{
			UpdateType:      "every",
			NeuralThreshold: 0.12,
			Mutation:        0.0012,
			BoundedWeights:  true,
			MaxWeight:       2.0,
		},
		Agent: AgentConfig{
			MinSize:            5.0,
			MaxSize:            20.0,
			MaxVelocity:        18.0,
			MaxAngularVelocity: 0.2,
		},
		Render: RenderConfig{
			SaveFrames: false,
			VideoScale: 1.0,
		},
	}
}

// ConfigFromFile reads a YAML configuration file and merges it on top of
// the built-in defaults. Fields absent from the file retain their defaults.
func ConfigFromFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	return cfg, nil
}

// LoadConfig implements the configuration hierarchy:
//
//  1. Start with built-in defaults.
//  2. If configPath is non-empty, overlay the YAML file.
//  3. Overlay any GENBOIDS_* environment variables that are set.
//  4. The caller may then apply programmatic overrides (e.g. CLI flags).
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()
	if configPath != "" {
		fileCfg, err := ConfigFromFile(configPath)
		if err != nil {
			return nil, err
		}
		cfg = fileCfg
	}
	return ConfigFromEnv(cfg), nil
}

// ---------------------------------------------------------------------------
// Environment overlay
// ---------------------------------------------------------------------------

// ConfigFromEnv overlays any recognised GENBOIDS_* environment variables
// onto cfg and returns it. Unset or unparsable variables are left alone;
// malformed numeric/bool values are silently ignored rather than treated
// as fatal — environment is advisory, the file and CLI are authoritative.
func ConfigFromEnv(cfg *Config) *Config {
	setEnvInt64(&cfg.Seed, "GENBOIDS_SEED")

	setEnvFloat(&cfg.World.ScreenWidth, "GENBOIDS_SCREEN_WIDTH")
	setEnvFloat(&cfg.World.ScreenHeight, "GENBOIDS_SCREEN_HEIGHT")
	setEnvFloat(&cfg.World.Zoom, "GENBOIDS_ZOOM")

	setEnvInt(&cfg.Population.NumBoids, "GENBOIDS_NUM_BOIDS")
	setEnvInt(&cfg.Population.MaxGens, "GENBOIDS_MAX_GENS")
	setEnvInt(&cfg.Population.GenIters, "GENBOIDS_GEN_ITERS")
	setEnvInt(&cfg.Population.RealtimeEveryNGens, "GENBOIDS_REALTIME_EVERY_N_GENS")

	setEnvStr(&cfg.Brain.BrainType, "GENBOIDS_BRAIN_TYPE")
	setEnvInt(&cfg.Brain.MemoryPerLayer, "GENBOIDS_MEMORY_PER_LAYER")
	setEnvInt(&cfg.Brain.MemoryLayers, "GENBOIDS_MEMORY_LAYERS")
	setEnvCSV(&cfg.Brain.NeuronSources, "GENBOIDS_NEURON_SOURCES")
	setEnvCSV(&cfg.Brain.NeuronSinks, "GENBOIDS_NEURON_SINKS")

	setEnvStr(&cfg.Neural.UpdateType, "GENBOIDS_UPDATE_TYPE")
	setEnvFloat(&cfg.Neural.NeuralThreshold, "GENBOIDS_NEURAL_THRESHOLD")
	setEnvFloat(&cfg.Neural.Mutation, "GENBOIDS_MUTATION")
	setEnvBool(&cfg.Neural.BoundedWeights, "GENBOIDS_BOUNDED_WEIGHTS")
	setEnvFloat(&cfg.Neural.MaxWeight, "GENBOIDS_MAX_WEIGHT")

	setEnvFloat(&cfg.Agent.MinSize, "GENBOIDS_MIN_SIZE")
	setEnvFloat(&cfg.Agent.MaxSize, "GENBOIDS_MAX_SIZE")
	setEnvFloat(&cfg.Agent.MaxVelocity, "GENBOIDS_MAX_VELOCITY")
	setEnvFloat(&cfg.Agent.MaxAngularVelocity, "GENBOIDS_MAX_ANGULAR_VELOCITY")

	setEnvBool(&cfg.Render.SaveFrames, "GENBOIDS_SAVE_FRAMES")
	setEnvFloat(&cfg.Render.VideoScale, "GENBOIDS_VIDEO_SCALE")

	return cfg
}

func setEnvStr(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func setEnvCSV(dst *[]string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = splitCSV(v)
	}
}

func setEnvBool(dst *bool, key string) {
	if v, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}

func setEnvInt(dst *int, key string) {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func setEnvInt64(dst *int64, key string) {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			*dst = n
		}
	}
}

func setEnvFloat(dst *float64, key string) {
	if v, ok := os.LookupEnv(key); ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			*dst = f
		}
	}
}

// ---------------------------------------------------------------------------
// Validation
// ---------------------------------------------------------------------------

// Validate performs structural validation of the entire configuration.
// Returns a descriptive error for the first invalid field encountered.
func (c *Config) Validate() error {
	if c.World.ScreenWidth <= 0 || c.World.ScreenHeight <= 0 {
		return fmt.Errorf("world.screenWidth and world.screenHeight must be > 0")
	}

	if c.Population.NumBoids < 1 {
		return fmt.Errorf("population.numBoids must be >= 1, got %d", c.Population.NumBoids)
	}
	if c.Population.MaxGens < 1 {
		return fmt.Errorf("population.maxGens must be >= 1")
	}
	if c.Population.GenIters < 1 {
		return fmt.Errorf("population.genIters must be >= 1")
	}
	if c.Population.RealtimeEveryNGens < 1 {
		return fmt.Errorf("population.realtimeEveryNGens must be >= 1")
	}

	bt := strings.ToLower(strings.TrimSpace(c.Brain.BrainType))
	switch bt {
	case "no_memory", "layered", "fully_connected":
	default:
		return fmt.Errorf("brain.brainType must be one of no_memory|layered|fully_connected, got %q", c.Brain.BrainType)
	}
	c.Brain.BrainType = bt
	if c.Brain.MemoryPerLayer < 1 {
		return fmt.Errorf("brain.memoryPerLayer must be >= 1")
	}
	if c.Brain.MemoryLayers < 1 {
		return fmt.Errorf("brain.memoryLayers must be >= 1")
	}

	ut := strings.ToLower(strings.TrimSpace(c.Neural.UpdateType))
	switch ut {
	case "every", "threshold", "max":
	default:
		return fmt.Errorf("neural.updateType must be one of every|threshold|max, got %q", c.Neural.UpdateType)
	}
	c.Neural.UpdateType = ut
	if c.Neural.Mutation < 0 {
		return fmt.Errorf("neural.mutation must be >= 0")
	}
	if c.Neural.BoundedWeights && c.Neural.MaxWeight <= 0 {
		return fmt.Errorf("neural.maxWeight must be > 0 when neural.boundedWeights is true")
	}

	if c.Agent.MinSize <= 0 || c.Agent.MaxSize < c.Agent.MinSize {
		return fmt.Errorf("agent.minSize must be > 0 and agent.maxSize must be >= agent.minSize")
	}
	if c.Agent.MaxVelocity <= 0 {
		return fmt.Errorf("agent.maxVelocity must be > 0")
	}
	if c.Agent.MaxAngularVelocity <= 0 {
		return fmt.Errorf("agent.maxAngularVelocity must be > 0")
	}

	if c.Render.VideoScale <= 0 {
		return fmt.Errorf("render.videoScale must be > 0")
	}

	return nil
}

// ---------------------------------------------------------------------------
// CLI overrides
// ---------------------------------------------------------------------------

// CLIOverrides holds pointers populated by pflag; nil or zero-valued
// pointers mean "flag not set", distinguishing "explicitly set to the
// zero value" from "left at the config default".
type CLIOverrides struct {
	ConfigPath *string

	// Seed accepts plain decimal or 0x-prefixed hex (see ParseSeed).
	Seed *string

	ScreenWidth  *float64
	ScreenHeight *float64
	Zoom         *float64

	NumBoids           *int
	MaxGens            *int
	GenIters           *int
	RealtimeEveryNGens *int

	BrainType      *string
	MemoryPerLayer *int
	MemoryLayers   *int
	NeuronSources  *string // comma-separated
	NeuronSinks    *string // comma-separated

	UpdateType      *string
	NeuralThreshold *float64
	Mutation        *float64
	BoundedWeights  *bool
	MaxWeight       *float64

	MinSize            *float64
	MaxSize            *float64
	MaxVelocity        *float64
	MaxAngularVelocity *float64

	SaveFrames *bool
	VideoScale *float64
}

// ApplyCLIOverrides merges any explicitly-set override onto c. Fields left
// nil in o are left untouched, so callers should only populate pointers
// for flags the user actually passed (see pflag.FlagSet.Changed).
func (c *Config) ApplyCLIOverrides(o *CLIOverrides) {
	if o == nil {
		return
	}
	if o.Seed != nil {
		if seed, err := ParseSeed(*o.Seed); err == nil {
			c.Seed = seed
		}
	}
	if o.ScreenWidth != nil {
		c.World.ScreenWidth = *o.ScreenWidth
	}
	if o.ScreenHeight != nil {
		c.World.ScreenHeight = *o.ScreenHeight
	}
	if o.Zoom != nil {
		c.World.Zoom = *o.Zoom
	}
	if o.NumBoids != nil {
		c.Population.NumBoids = *o.NumBoids
	}
	if o.MaxGens != nil {
		c.Population.MaxGens = *o.MaxGens
	}
	if o.GenIters != nil {
		c.Population.GenIters = *o.GenIters
	}
	if o.RealtimeEveryNGens != nil {
		c.Population.RealtimeEveryNGens = *o.RealtimeEveryNGens
	}
	if o.BrainType != nil {
		c.Brain.BrainType = *o.BrainType
	}
	if o.MemoryPerLayer != nil {
		c.Brain.MemoryPerLayer = *o.MemoryPerLayer
	}
	if o.MemoryLayers != nil {
		c.Brain.MemoryLayers = *o.MemoryLayers
	}
	if o.NeuronSources != nil {
		c.Brain.NeuronSources = splitCSV(*o.NeuronSources)
	}
	if o.NeuronSinks != nil {
		c.Brain.NeuronSinks = splitCSV(*o.NeuronSinks)
	}
	if o.UpdateType != nil {
		c.Neural.UpdateType = *o.UpdateType
	}
	if o.NeuralThreshold != nil {
		c.Neural.NeuralThreshold = *o.NeuralThreshold
	}
	if o.Mutation != nil {
		c.Neural.Mutation = *o.Mutation
	}
	if o.BoundedWeights != nil {
		c.Neural.BoundedWeights = *o.BoundedWeights
	}
	if o.MaxWeight != nil {
		c.Neural.MaxWeight = *o.MaxWeight
	}
	if o.MinSize != nil {
		c.Agent.MinSize = *o.MinSize
	}
	if o.MaxSize != nil {
		c.Agent.MaxSize = *o.MaxSize
	}
	if o.MaxVelocity != nil {
		c.Agent.MaxVelocity = *o.MaxVelocity
	}
	if o.MaxAngularVelocity != nil {
		c.Agent.MaxAngularVelocity = *o.MaxAngularVelocity
	}
	if o.SaveFrames != nil {
		c.Render.SaveFrames = *o.SaveFrames
	}
	if o.VideoScale != nil {
		c.Render.VideoScale = *o.VideoScale
	}
}

// splitCSV splits a comma-separated flag value into a trimmed, non-empty
// name list.
func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ParseSeed accepts plain decimal or 0x-prefixed hex seeds, mirroring the
// original simulator's hex-seed video filename convention.
func ParseSeed(v string) (int64, error) {
	v = strings.TrimSpace(v)
	if strings.HasPrefix(v, "0x") || strings.HasPrefix(v, "0X") {
		n, err := strconv.ParseInt(v[2:], 16, 64)
		return n, err
	}
	return strconv.ParseInt(v, 10, 64)
}
