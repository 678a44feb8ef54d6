package connectors

import (
	"sort"
	"strings"
	"sync"

	perrors "github.com/kevin07696/connector-switch/pkg/errors"
)

// Registry resolves connectors by name. Registration happens once at
// startup; lookups are concurrent.
type Registry struct {
	mu         sync.RWMutex
	connectors map[string]Connector
}

func NewRegistry() *Registry {
	return &Registry{connectors: make(map[string]Connector)}
}

// Register adds a connector under its Name. Registering the same name
// twice replaces the earlier entry.
func (r *Registry) Register(c Connector) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.connectors[strings.ToLower(c.Name())] = c
}

// Get resolves a connector by name, case-insensitively.
func (r *Registry) Get(name string) (Connector, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.connectors[strings.ToLower(name)]
	if !ok {
		return nil, perrors.ErrInvalidConnectorName
	}
	return c, nil
}

// Names returns the registered connector names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.connectors))
	for name := range r.connectors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
