package config

import (
	"sort"
	"strings"

	"github.com/fgeck/pihub/internal/models"
)

// Registry is the read-only name to target mapping. It is built once at
// startup and never mutated, so concurrent reads need no locking.
type Registry struct {
	targets map[string]models.Target
}

// NewRegistry creates a registry from a prebuilt target map.
func NewRegistry(targets map[string]models.Target) *Registry {
	if targets == nil {
		targets = map[string]models.Target{}
	}
	return &Registry{targets: targets}
}

// Resolve looks up a target by name. Target names are case-insensitive:
// viper lowercases keys on load, so lookups fold case to match.
func (r *Registry) Resolve(name string) (models.Target, bool) {
	t, ok := r.targets[strings.ToLower(name)]
	return t, ok
}

// Names returns all known target names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.targets))
	for name := range r.targets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered targets.
func (r *Registry) Len() int {
	return len(r.targets)
}
