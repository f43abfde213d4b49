// Package factory demonstrates the factory-method pattern with a logistics
// example: one constructor produces the family-appropriate Transport, and the
// planning routine works against the Transport interface without ever knowing
// which concrete variant it got.
//
// Expected usage:
//
//	tr, err := factory.New(factory.KindShip)
//	if err != nil {
//		// UnknownKindError for unrecognized kinds
//	}
//	record := tr.Deliver("20 containers", "Rotterdam")
package factory
