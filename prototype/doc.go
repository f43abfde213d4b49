// Package prototype demonstrates copy-based creation with a vehicle/engine
// example: ShallowClone copies top-level fields only (nested state stays
// shared), Clone produces a fully independent deep copy.
//
// Two supporting pieces round out the pattern:
//
//   - DeepCopy, a generic JSON round-trip copier for plain-data values
//   - Registry, a prototype manager that stores named exemplars and spawns
//     independent copies on demand
//
// Expected usage:
//
//	car := prototype.NewVehicle("hatchback", prototype.Engine{Kind: "petrol", HorsePower: 90}, "city")
//	twin := car.Clone()          // independent
//	alias := car.ShallowClone()  // shares car's engine and tag storage
package prototype
