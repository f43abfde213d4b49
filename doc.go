// Package patterns is a reference catalogue of the classic creational design
// patterns, written as small, runnable Go packages.
//
// This repository walks through a progression of object-creation approaches:
//
//   - singleton: one shared instance (lazy via sync.Once, double-checked
//     locking, and eager construction)
//   - factory: polymorphic creation behind a single constructor function
//   - abstractfactory: whole families of related products created together
//   - builder: fluent, validated assembly of an immutable value object
//   - prototype: copy-based creation, shallow vs. deep
//
// Each pattern package is self-contained and exports a Demo that plugs into
// the catalog registry, so every illustration can be run, listed, and tested
// the same way. Wiring stays explicit (in main / composition roots); nothing
// registers itself via init side effects.
//
// See subpackages:
//   - catalog: the demo registry and runner used by the CLI and examples
//   - singleton, factory, abstractfactory, builder, prototype: the patterns
//   - cmd/patterns: CLI to list and run demonstrations
//   - examples/*: runnable, heavily narrated walkthroughs
package patterns
