package prototype

import (
	"errors"
	"sort"
	"strconv"
	"sync"
)

// ErrNilPrototype is returned when a nil exemplar is offered to a Registry.
var ErrNilPrototype = errors.New("prototype: nil prototype")

// DuplicatePrototypeError is returned when a name is registered twice.
type DuplicatePrototypeError struct{ Name string }

// Error implements the error interface.
func (e DuplicatePrototypeError) Error() string {
	// Example: prototype: duplicate prototype "city-car"
	return "prototype: duplicate prototype " + strconv.Quote(e.Name)
}

// UnknownPrototypeError is returned when a name has no exemplar.
type UnknownPrototypeError struct{ Name string }

// Error implements the error interface.
func (e UnknownPrototypeError) Error() string {
	// Example: prototype: unknown prototype "city-car"
	return "prototype: unknown prototype " + strconv.Quote(e.Name)
}

// Registry is a prototype manager: it stores named exemplar vehicles and
// spawns independent deep copies on demand.
//
// The exemplar itself is copied on the way in and on the way out, so neither
// the registrant nor any spawn can mutate the stored state. Safe for
// concurrent use.
type Registry struct {
	mu        sync.RWMutex
	exemplars map[string]*Vehicle
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{exemplars: make(map[string]*Vehicle)}
}

// Put stores a deep copy of v under name.
func (r *Registry) Put(name string, v *Vehicle) error {
	if v == nil {
		return ErrNilPrototype
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.exemplars[name]; exists {
		return DuplicatePrototypeError{Name: name}
	}
	r.exemplars[name] = v.Clone()
	return nil
}

// Spawn returns an independent deep copy of the exemplar stored under name.
func (r *Registry) Spawn(name string) (*Vehicle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.exemplars[name]
	if !ok {
		return nil, UnknownPrototypeError{Name: name}
	}
	return v.Clone(), nil
}

// Names returns the registered exemplar names, sorted. The slice is a copy.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.exemplars))
	for name := range r.exemplars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
