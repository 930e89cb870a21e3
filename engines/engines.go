// Package engines provides a pluggable registry of render-engine factories.
//
// Engine integrations register a named enginehost.Factory, typically from an
// init() function, and UI code looks the factory up by name when mounting a
// hosting element:
//
//	import _ "github.com/gogpu/enginehost/engines/soft"
//
//	factory := engines.Get("soft")
//	srcID, err := mgr.GetOrCreate("preview", host, factory)
//
// Unlike the InstanceManager, which is explicit per-application state, this
// registry is package-level: it holds stateless factories, not live
// renderer instances.
package engines

import (
	"sync"

	"github.com/gogpu/enginehost"
)

// registry holds registered engine factories.
var (
	registryMu sync.RWMutex
	factories  = make(map[string]enginehost.Factory)
)

// Register registers an engine factory with the given name.
// This is typically called from init() functions in engine packages.
// If an engine with the same name is already registered, it is replaced.
func Register(name string, factory enginehost.Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	factories[name] = factory
}

// Unregister removes an engine from the registry.
// This is useful for testing.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(factories, name)
}

// Available returns a list of registered engine names.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	return names
}

// IsRegistered checks if an engine with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := factories[name]
	return ok
}

// Get returns an engine factory by name.
// Returns nil if the engine is not registered.
func Get(name string) enginehost.Factory {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return factories[name]
}
