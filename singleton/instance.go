package singleton

import (
	"sync"
	"sync/atomic"
)

var (
	once   sync.Once
	shared Logger
)

// Instance returns the process-wide Logger, constructing it on the first
// call. sync.Once guarantees exactly one construction even when the first
// callers race; every call returns the same object identity.
func Instance() Logger {
	once.Do(func() {
		shared = newShared()
	})
	return shared
}

// Default is the eager rendition: the instance is built during package
// initialization, so there is no first-use race to guard at all. The cost is
// paying for construction even if the logger is never used.
var Default Logger = newShared()

// Guarded is the classic double-checked-locking rendition of lazy
// initialization.
//
// The fast path reads an atomic pointer without taking the mutex; the slow
// path takes the mutex and re-checks before constructing. The unsynchronized
// first check must be an atomic load — a plain pointer read here is a data
// race under the Go memory model, which is exactly the trap the pattern's
// folklore warns about.
//
// The zero value is ready to use.
type Guarded struct {
	mu   sync.Mutex
	inst atomic.Pointer[zapLogger]
}

// Get returns the lazily constructed Logger, building it at most once.
func (g *Guarded) Get() Logger {
	if l := g.inst.Load(); l != nil {
		return l
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if l := g.inst.Load(); l != nil {
		return l
	}
	l := newShared()
	g.inst.Store(l)
	return l
}

// Initialized reports whether the instance has been constructed yet.
func (g *Guarded) Initialized() bool {
	return g.inst.Load() != nil
}
