package factory

import "strconv"

// Kind selects a concrete Transport variant.
//
// Kinds are typically defined as constants; unknown kinds fail at creation
// time with UnknownKindError, not at delivery time.
type Kind string

const (
	KindTruck Kind = "truck"
	KindShip  Kind = "ship"
	KindPlane Kind = "plane"
)

// Kinds returns the recognized transport kinds in a stable order.
func Kinds() []Kind {
	return []Kind{KindPlane, KindShip, KindTruck}
}

// Transport is the shared capability every variant provides.
type Transport interface {
	// Kind identifies the concrete variant.
	Kind() Kind

	// Deliver moves cargo to a destination and returns a human-readable
	// delivery record.
	Deliver(cargo, destination string) string
}

// UnknownKindError is returned when a Kind has no registered variant.
type UnknownKindError struct{ Kind Kind }

// Error implements the error interface.
func (e UnknownKindError) Error() string {
	// Example: factory: unknown transport kind "zeppelin"
	return "factory: unknown transport kind " + strconv.Quote(string(e.Kind))
}

// Truck delivers by road.
type Truck struct{}

// Kind implements Transport.
func (Truck) Kind() Kind { return KindTruck }

// Deliver implements Transport.
func (Truck) Deliver(cargo, destination string) string {
	return "delivered " + cargo + " to " + destination + " by road"
}

// Ship delivers by sea.
type Ship struct{}

// Kind implements Transport.
func (Ship) Kind() Kind { return KindShip }

// Deliver implements Transport.
func (Ship) Deliver(cargo, destination string) string {
	return "delivered " + cargo + " to " + destination + " by sea"
}

// Plane delivers by air.
type Plane struct{}

// Kind implements Transport.
func (Plane) Kind() Kind { return KindPlane }

// Deliver implements Transport.
func (Plane) Deliver(cargo, destination string) string {
	return "delivered " + cargo + " to " + destination + " by air"
}

// New is the factory method: it returns the Transport for kind.
//
// Callers depend on Transport only; the concrete type never leaks into the
// signature.
func New(kind Kind) (Transport, error) {
	switch kind {
	case KindTruck:
		return Truck{}, nil
	case KindShip:
		return Ship{}, nil
	case KindPlane:
		return Plane{}, nil
	default:
		return nil, UnknownKindError{Kind: kind}
	}
}

// MustNew returns the Transport for kind or panics.
//
// Useful in examples/tests where an unknown kind is a programming mistake.
func MustNew(kind Kind) Transport {
	tr, err := New(kind)
	if err != nil {
		panic(err)
	}
	return tr
}

// PlanDelivery is the creator-side routine the pattern exists for: it picks
// the variant via the factory and uses it purely through the Transport
// interface.
func PlanDelivery(kind Kind, cargo, destination string) (string, error) {
	tr, err := New(kind)
	if err != nil {
		return "", err
	}
	return tr.Deliver(cargo, destination), nil
}
