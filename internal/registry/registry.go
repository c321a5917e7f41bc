package registry

import (
	"fmt"
	"reflect"
	"sort"
)

// Entity is a managed entity type known to a persistence unit
type Entity struct {
	Name string
	Type reflect.Type
}

// New returns a pointer to a fresh zero value of the entity, suitable for
// handing to the schema tooling.
func (e Entity) New() interface{} {
	return reflect.New(e.Type).Interface()
}

// Registry holds all managed entity types
type Registry struct {
	entities map[string]Entity
}

// NewRegistry creates a new entity registry
func NewRegistry() *Registry {
	return &Registry{
		entities: make(map[string]Entity),
	}
}

// Register records the type of value as a managed entity. value must be a
// struct or a pointer to one.
func (r *Registry) Register(value interface{}) error {
	t, err := structType(value)
	if err != nil {
		return err
	}
	if existing, ok := r.entities[t.Name()]; ok && existing.Type != t {
		return fmt.Errorf("entity name %s already registered for %s", t.Name(), existing.Type)
	}
	r.entities[t.Name()] = Entity{Name: t.Name(), Type: t}
	return nil
}

// Lookup returns an entity by name
func (r *Registry) Lookup(name string) (Entity, bool) {
	e, ok := r.entities[name]
	return e, ok
}

// Has reports whether the type of value is a managed entity
func (r *Registry) Has(value interface{}) bool {
	t, err := structType(value)
	if err != nil {
		return false
	}
	e, ok := r.entities[t.Name()]
	return ok && e.Type == t
}

// All returns all entities sorted by name
func (r *Registry) All() []Entity {
	var entities []Entity
	for _, e := range r.entities {
		entities = append(entities, e)
	}
	sort.Slice(entities, func(i, j int) bool {
		return entities[i].Name < entities[j].Name
	})
	return entities
}

// Select returns a registry restricted to the named entities
func (r *Registry) Select(names []string) (*Registry, error) {
	sub := NewRegistry()
	for _, name := range names {
		e, ok := r.entities[name]
		if !ok {
			return nil, fmt.Errorf("entity %s is not registered", name)
		}
		sub.entities[name] = e
	}
	return sub, nil
}

func structType(value interface{}) (reflect.Type, error) {
	if value == nil {
		return nil, fmt.Errorf("entity must not be nil")
	}
	t := reflect.TypeOf(value)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("entity must be a struct, got %s", t.Kind())
	}
	if t.Name() == "" {
		return nil, fmt.Errorf("entity must be a named struct type")
	}
	return t, nil
}
