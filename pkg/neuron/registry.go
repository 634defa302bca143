package neuron

import (
	"sort"
	"sync"

	"github.com/genboids/geneticboids/pkg/core"
)

// Registry is a concurrency-safe name→factory lookup, mirroring the
// shape of a persistent UUID registry but holding constructor functions
// instead of records: nothing here needs to survive a restart.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]func() Neuron
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]func() Neuron)}
}

// Register installs the factory for name, overwriting any prior entry.
func (r *Registry) Register(name string, factory func() Neuron) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = factory
}

// New constructs a fresh instance of the named neuron, or (nil, false)
// if name was never registered.
func (r *Registry) New(name string) (Neuron, bool) {
	r.mu.RLock()
	factory, ok := r.factories[name]
	r.mu.RUnlock()
	if !ok {
		return nil, false
	}
	return factory(), true
}

// Names returns every registered name in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.factories))
	for n := range r.factories {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// knownSources and knownSinks are the full built-in neuron vocabularies,
// used to seed the default registries below. Configured name lists are
// checked against the registries, not against these slices.
var knownSources = []string{
	"age", "west", "east", "north", "south", "direction", "velocity",
	"angular-velocity", "goal-reached", "out-of-bounds", "red", "green", "blue", "size",
}

var knownSinks = []string{
	"move", "direction", "velocity", "angular-velocity", "red", "green", "blue", "size",
}

// SourceRegistry and SinkRegistry are the process-wide registries
// pre-populated with every built-in neuron. Tests and callers that want
// an isolated registry should build their own with NewRegistry instead.
var (
	SourceRegistry = defaultSourceRegistry()
	SinkRegistry   = defaultSinkRegistry()
)

func defaultSourceRegistry() *Registry {
	r := NewRegistry()
	for _, name := range knownSources {
		name := name
		r.Register(name, func() Neuron {
			n, _ := NewSource(name)
			return n
		})
	}
	return r
}

func defaultSinkRegistry() *Registry {
	r := NewRegistry()
	for _, name := range knownSinks {
		name := name
		r.Register(name, func() Neuron {
			n, _ := NewSink(name)
			return n
		})
	}
	return r
}

// ResolveSources builds one fresh source Neuron per configured name, in
// order, dropping unknown names. If the result would be empty it falls
// back to core.DefaultNeuronSources.
func ResolveSources(names []string) []Neuron {
	return resolve(SourceRegistry, names, core.DefaultNeuronSources)
}

// ResolveSinks builds one fresh sink Neuron per configured name, in
// order, dropping unknown names. If the result would be empty it falls
// back to core.DefaultNeuronSinks.
func ResolveSinks(names []string) []Neuron {
	return resolve(SinkRegistry, names, core.DefaultNeuronSinks)
}

func resolve(reg *Registry, names []string, fallback []string) []Neuron {
	out := resolveOnce(reg, names)
	if len(out) > 0 {
		return out
	}
	return resolveOnce(reg, fallback)
}

func resolveOnce(reg *Registry, names []string) []Neuron {
	out := make([]Neuron, 0, len(names))
	for _, name := range names {
		if n, ok := reg.New(name); ok {
			out = append(out, n)
		}
	}
	return out
}
