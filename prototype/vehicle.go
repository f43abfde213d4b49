package prototype

import "github.com/google/uuid"

// Engine is the nested mutable object whose sharing (or not) distinguishes
// shallow from deep copies.
type Engine struct {
	Kind       string
	HorsePower int
}

// Vehicle is the demo subject: a value with nested mutable state.
type Vehicle struct {
	ID     string
	Model  string
	Engine *Engine
	Tags   []string
}

// NewVehicle constructs a Vehicle with a fresh UUID and its own copies of the
// engine and tags.
func NewVehicle(model string, engine Engine, tags ...string) *Vehicle {
	return &Vehicle{
		ID:     uuid.NewString(),
		Model:  model,
		Engine: &engine,
		Tags:   append([]string(nil), tags...),
	}
}

// ShallowClone copies top-level fields only.
//
// The clone's Engine pointer and Tags backing array remain shared with the
// original: mutations of nested state through either are visible through
// both. That sharing is the defining property of a shallow copy.
func (v *Vehicle) ShallowClone() *Vehicle {
	c := *v
	return &c
}

// Clone returns a deep copy: nested mutable state is duplicated, so original
// and clone are fully independent. The ID is preserved; a clone is a copy,
// not a new registration.
func (v *Vehicle) Clone() *Vehicle {
	c := *v
	if v.Engine != nil {
		e := *v.Engine
		c.Engine = &e
	}
	c.Tags = append([]string(nil), v.Tags...)
	return &c
}
