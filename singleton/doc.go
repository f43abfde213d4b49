// Package singleton demonstrates the single-instance accessor pattern with a
// real subject: a process-wide structured logger backed by zap.
//
// Three renditions of the same guarantee are provided:
//
//   - Instance: lazy construction guarded by sync.Once (the Go idiom)
//   - Guarded: the textbook double-checked-locking formulation, written
//     correctly for the Go memory model (atomic fast path, mutex slow path)
//   - Default: eager construction at package initialization, which removes
//     the first-use race entirely
//
// Whatever the rendition, the invariant is the same: every call returns the
// same object identity.
//
// Expected usage:
//
//	log := singleton.Instance()
//	log.Infow("service started", "port", 8080)
//
// Callers that genuinely need their own logger (different config, tests)
// should use NewWith instead of fighting the singleton.
package singleton
