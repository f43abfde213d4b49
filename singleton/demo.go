package singleton

import (
	"context"
	"fmt"
	"sync"

	"github.com/designlab/patterns/catalog"
)

// Demo returns the runnable singleton demonstration.
//
// It exercises all three renditions and verifies the pattern-defining
// invariant: repeated accessor calls return identical object identity, even
// when the first callers race.
func Demo() catalog.Demo {
	return catalog.Demo{
		Name:    "singleton",
		Pattern: "singleton",
		Summary: "one shared logger instance: sync.Once, double-checked locking, eager",
		Run:     runDemo,
	}
}

func runDemo(ctx context.Context, log catalog.Logger) error {
	// Lazy rendition: two sequential calls, one identity.
	a, b := Instance(), Instance()
	if a != b {
		return fmt.Errorf("singleton: Instance returned two different objects (%p vs %p)", a, b)
	}
	log.Infof("Instance() twice -> same object (%p)", a)

	// Eager rendition: constructed before main even ran.
	if Default == nil {
		return fmt.Errorf("singleton: eager Default was not constructed")
	}
	log.Infof("eager Default ready since package init (%p)", Default)

	// Double-checked rendition: stampede a fresh Guarded from many
	// goroutines and confirm they all see one construction.
	var (
		guarded Guarded
		wg      sync.WaitGroup
		mu      sync.Mutex
	)
	seen := make(map[Logger]struct{})

	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l := guarded.Get()
			mu.Lock()
			seen[l] = struct{}{}
			mu.Unlock()
		}()
	}
	wg.Wait()

	if len(seen) != 1 {
		return fmt.Errorf("singleton: double-checked stampede produced %d instances, want 1", len(seen))
	}
	log.Infof("32 racing goroutines on Guarded.Get() -> 1 instance")

	return nil
}
