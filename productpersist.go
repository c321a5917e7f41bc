package productpersist

import (
	"github.com/atuluttam/productpersist/internal/entities"
	"github.com/atuluttam/productpersist/internal/registry"
)

// Product is exported for callers building their own workflows
type Product = entities.Product

var globalRegistry *registry.Registry

func init() {
	globalRegistry = registry.NewRegistry()
	if err := globalRegistry.Register(entities.Product{}); err != nil {
		panic(err)
	}
}

// RegisterEntity registers an entity type in the global registry
func RegisterEntity(entity interface{}) error {
	if globalRegistry == nil {
		globalRegistry = registry.NewRegistry()
	}
	return globalRegistry.Register(entity)
}

// GetGlobalRegistry returns the global registry
func GetGlobalRegistry() *registry.Registry {
	return globalRegistry
}

// SetGlobalRegistry sets the global registry (for testing)
func SetGlobalRegistry(reg *registry.Registry) {
	globalRegistry = reg
}
