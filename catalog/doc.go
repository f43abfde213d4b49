// Package catalog is the pattern-demonstration harness: a registry of named,
// runnable demos with lookup, listing, and panic-safe execution.
//
// Pattern packages export a Demo constructor; registration happens explicitly
// at the composition root (see cmd/patterns), never via init side effects.
//
// Expected usage:
//
//	reg := catalog.NewRegistry()
//	reg.MustRegister(factory.Demo(), builder.Demo())
//
//	if err := reg.Run(ctx, "factory-method", log); err != nil {
//		// typed errors: UnknownDemoError, ErrDemoPanic, or the demo's own error
//	}
package catalog
