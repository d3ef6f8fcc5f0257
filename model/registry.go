package model

import (
	"fmt"
	"sort"
	"sync"
)

// A Factory creates a model instance with the given instance name.
type Factory func(name string) Model

var registryMutex sync.Mutex
var registry = make(map[string]Factory)

// Register adds a model kind to the global registry so that benches can
// instantiate it by name. Registering the same kind twice panics.
func Register(kind string, factory Factory) {
	registryMutex.Lock()
	defer registryMutex.Unlock()

	if _, exists := registry[kind]; exists {
		panic("model kind " + kind + " already registered")
	}

	registry[kind] = factory
}

// New instantiates a registered model kind.
func New(kind, name string) (Model, error) {
	registryMutex.Lock()
	factory, exists := registry[kind]
	registryMutex.Unlock()

	if !exists {
		return nil, fmt.Errorf("unknown model kind %q", kind)
	}

	return factory(name), nil
}

// List returns the names of all registered model kinds in sorted order.
func List() []string {
	registryMutex.Lock()
	defer registryMutex.Unlock()

	kinds := make([]string, 0, len(registry))
	for kind := range registry {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)

	return kinds
}
