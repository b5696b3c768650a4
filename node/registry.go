package node

import (
	"sync"
)

// Definition describes a registered node type
type Definition struct {
	Type        string `json:"type"`
	DisplayName string `json:"displayName"`
	Category    string `json:"category"`
	Deprecated  bool   `json:"deprecated,omitempty"`
}

// Registry manages all registered node definitions
type Registry struct {
	defs []Definition
	mu   sync.RWMutex
}

// GlobalRegistry is the global node registry
var GlobalRegistry = &Registry{}

// Register adds a node definition to the registry
func (r *Registry) Register(d Definition) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.defs = append(r.defs, d)
}

// GetAll returns all registered definitions in registration order
func (r *Registry) GetAll() []Definition {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]Definition, len(r.defs))
	copy(result, r.defs)
	return result
}

// Get returns a definition by type name
func (r *Registry) Get(nodeType string) (Definition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, d := range r.defs {
		if d.Type == nodeType {
			return d, true
		}
	}
	return Definition{}, false
}

// defaultDefinitions lists the node types this module ships, in display order
var defaultDefinitions = []Definition{
	{Type: "ListFilterToggle", DisplayName: "List Filter (Toggle UI)", Category: "list/filtering"},
	{Type: "ListFilterInput", DisplayName: "List Filter Input (Deprecated)", Category: "list/filtering", Deprecated: true},
	{Type: "ListFilterOutput", DisplayName: "List Filter Output (Deprecated)", Category: "list/filtering", Deprecated: true},
}

// InitializeRegistry registers all shipped node definitions
func InitializeRegistry() {
	for _, d := range defaultDefinitions {
		GlobalRegistry.Register(d)
	}
}
