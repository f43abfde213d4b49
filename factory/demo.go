package factory

import (
	"context"
	"errors"
	"fmt"

	"github.com/designlab/patterns/catalog"
)

// Demo returns the runnable factory-method demonstration.
func Demo() catalog.Demo {
	return catalog.Demo{
		Name:    "factory-method",
		Pattern: "factory",
		Summary: "polymorphic creation of transports behind a single constructor",
		Run:     runDemo,
	}
}

func runDemo(ctx context.Context, log catalog.Logger) error {
	// The planner never mentions Truck, Ship, or Plane.
	for _, kind := range Kinds() {
		record, err := PlanDelivery(kind, "3 crates", "Oslo")
		if err != nil {
			return err
		}
		log.Infof("%-5s -> %s", kind, record)
	}

	// Unrecognized kinds fail with a typed invalid-argument error.
	_, err := PlanDelivery(Kind("zeppelin"), "3 crates", "Oslo")
	var unknown UnknownKindError
	if !errors.As(err, &unknown) {
		return fmt.Errorf("factory: expected UnknownKindError for zeppelin, got %v", err)
	}
	log.Infof("zeppelin rejected as expected: %v", err)

	return nil
}
