// Package effect holds the built-in scene blueprints and the registry that names them.
package effect

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/lixenwraith/backdrop/scene"
)

// Default is the effect used when none is configured
const Default = "aurora"

// ErrUnknownEffect is returned by Get for an unregistered name
var ErrUnknownEffect = errors.New("unknown effect")

// Factory builds a fresh blueprint; generators inside it must not share state between calls
type Factory func() scene.Blueprint

var (
	effectsMu sync.RWMutex
	effects   = make(map[string]Factory)
)

// Register adds an effect factory by name, replacing any previous entry
func Register(name string, factory Factory) {
	effectsMu.Lock()
	defer effectsMu.Unlock()
	effects[name] = factory
}

// Get builds the named blueprint
func Get(name string) (scene.Blueprint, error) {
	effectsMu.RLock()
	f, ok := effects[name]
	effectsMu.RUnlock()
	if !ok {
		return scene.Blueprint{}, fmt.Errorf("%w: %q", ErrUnknownEffect, name)
	}
	return f(), nil
}

// Names returns all registered effect names, sorted
func Names() []string {
	effectsMu.RLock()
	defer effectsMu.RUnlock()
	names := make([]string, 0, len(effects))
	for name := range effects {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	Register("aurora", Aurora)
	Register("vortex", Vortex)
	Register("crystal", Crystal)
	Register("network", Network)
	Register("starfield", Starfield)
}
