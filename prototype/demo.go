package prototype

import (
	"context"
	"fmt"

	"github.com/designlab/patterns/catalog"
)

// Demo returns the runnable prototype demonstration.
func Demo() catalog.Demo {
	return catalog.Demo{
		Name:    "prototype",
		Pattern: "prototype",
		Summary: "copy-based creation: shallow vs. deep vehicle clones",
		Run:     runDemo,
	}
}

func runDemo(ctx context.Context, log catalog.Logger) error {
	original := NewVehicle("hatchback", Engine{Kind: "petrol", HorsePower: 90}, "city")

	// Shallow: the copy shares the original's engine.
	shallow := original.ShallowClone()
	shallow.Engine.HorsePower = 140
	if original.Engine.HorsePower != 140 {
		return fmt.Errorf("prototype: shallow clone did not share the engine")
	}
	log.Infof("shallow: tuning the copy's engine changed the original too (%d hp)", original.Engine.HorsePower)

	// Deep: the copy owns its nested state.
	original.Engine.HorsePower = 90
	deep := original.Clone()
	deep.Engine.HorsePower = 140
	deep.Tags = append(deep.Tags[:0], "track")
	if original.Engine.HorsePower != 90 || original.Tags[0] != "city" {
		return fmt.Errorf("prototype: deep clone leaked mutations into the original")
	}
	log.Infof("deep: copy tuned to %d hp, original untouched at %d hp", deep.Engine.HorsePower, original.Engine.HorsePower)

	// Prototype manager: spawn independent instances from a named exemplar.
	reg := NewRegistry()
	if err := reg.Put("city-car", original); err != nil {
		return err
	}
	a, err := reg.Spawn("city-car")
	if err != nil {
		return err
	}
	b, err := reg.Spawn("city-car")
	if err != nil {
		return err
	}
	a.Engine.HorsePower = 200
	if b.Engine.HorsePower != 90 {
		return fmt.Errorf("prototype: registry spawns are not independent")
	}
	log.Infof("registry: two spawns of %q are independent copies", "city-car")

	// Generic deep copy for plain data.
	spec := map[string]any{"doors": 5, "colors": []any{"red", "blue"}}
	copied, err := DeepCopy(spec)
	if err != nil {
		return err
	}
	copied["doors"] = 3
	if fmt.Sprint(spec["doors"]) != "5" {
		return fmt.Errorf("prototype: DeepCopy shared state with the original")
	}
	log.Infof("DeepCopy: map copied without shared state")

	return nil
}
