// Command patterns lists and runs the creational-pattern demonstrations
// registered in the catalog.
//
// Usage
//
//	patterns -list
//	patterns                          # run every demo, sorted by name
//	patterns -demo builder -demo prototype
//	patterns -suite suite.yaml
//	patterns -level debug -demo singleton
//
// Flags
//
//   - -list: print the registered demo names and summaries, then exit.
//   - -demo: name of a demo to run; repeatable, order is preserved.
//   - -suite: path to a YAML suite manifest (see below). Mutually exclusive
//     with -demo.
//   - -level: zap log level for demo output (debug, info, warn, error).
//
// Environment
//
// PATTERNS_LOG_LEVEL and PATTERNS_SUITE provide defaults for -level and
// -suite; flags take precedence. A .env file in the working directory is
// loaded automatically (godotenv); real environment variables win over it.
//
// Suite manifest
//
// A suite names the demos to run, in order, with an optional repeat count
// and log level:
//
//	level: debug
//	demos:
//	  - name: singleton
//	  - name: builder
//	    repeat: 3
//
// Exit codes
//
//   - 0: all selected demos ran successfully
//   - 1: a demo failed (execution stops at the first failure)
//   - 2: usage error (bad flags, unknown demo name, unreadable suite)
//
// Wiring note: demos are registered explicitly in this package's composition
// root, not via init side effects. Adding a pattern package means adding one
// line to newCatalog.
package main
