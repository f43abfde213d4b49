package catalog

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"sync"
)

// Logger is the minimal logging surface a demo receives.
//
// It is intentionally tiny so that both *zap.SugaredLogger and the
// singleton package's Logger satisfy it without adapters.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// RunFunc executes a single demonstration end to end.
//
// A RunFunc should narrate what it does through log and return a non-nil
// error only when the pattern's own invariant failed to hold.
type RunFunc func(ctx context.Context, log Logger) error

// Demo is one named, runnable pattern demonstration.
type Demo struct {
	// Name is the registry key, e.g. "factory-method".
	Name string

	// Pattern is the pattern family the demo belongs to, e.g. "factory".
	Pattern string

	// Summary is a one-line description shown by listings.
	Summary string

	// Run executes the demonstration.
	Run RunFunc
}

// ErrDemoPanic is returned (wrapped) when a demo panics during Run.
var ErrDemoPanic = errors.New("catalog: panic during demo run")

// DuplicateDemoError is returned when a demo name is registered twice.
type DuplicateDemoError struct{ Name string }

// Error implements the error interface.
func (e DuplicateDemoError) Error() string {
	// Example: catalog: duplicate demo "factory-method"
	return "catalog: duplicate demo " + strconv.Quote(e.Name)
}

// UnknownDemoError is returned when a demo name is not registered.
type UnknownDemoError struct{ Name string }

// Error implements the error interface.
func (e UnknownDemoError) Error() string {
	// Example: catalog: unknown demo "factory-method"
	return "catalog: unknown demo " + strconv.Quote(e.Name)
}

// InvalidDemoError is returned when a Demo cannot be registered at all
// (empty name or nil Run).
type InvalidDemoError struct {
	Name   string
	Reason string
}

// Error implements the error interface.
func (e InvalidDemoError) Error() string {
	// Example: catalog: invalid demo "x": nil run function
	return "catalog: invalid demo " + strconv.Quote(e.Name) + ": " + e.Reason
}

// Registry stores demos by name and runs them on demand.
//
// The zero value is not usable; construct with NewRegistry. All methods are
// safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	demos map[string]Demo
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{demos: make(map[string]Demo)}
}

// Register adds a demo under its name.
//
// It fails with:
//   - InvalidDemoError if the name is empty or Run is nil
//   - DuplicateDemoError if the name is already taken
func (r *Registry) Register(d Demo) error {
	if d.Name == "" {
		return InvalidDemoError{Name: d.Name, Reason: "empty name"}
	}
	if d.Run == nil {
		return InvalidDemoError{Name: d.Name, Reason: "nil run function"}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.demos[d.Name]; exists {
		return DuplicateDemoError{Name: d.Name}
	}
	r.demos[d.Name] = d
	return nil
}

// MustRegister registers all demos and panics on the first failure.
//
// Useful at composition roots where a registration error is a programming
// mistake, not a runtime condition.
func (r *Registry) MustRegister(demos ...Demo) {
	for _, d := range demos {
		if err := r.Register(d); err != nil {
			panic(err)
		}
	}
}

// Lookup returns the demo registered under name.
func (r *Registry) Lookup(name string) (Demo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.demos[name]
	if !ok {
		return Demo{}, UnknownDemoError{Name: name}
	}
	return d, nil
}

// Names returns the registered demo names, sorted. The slice is a copy.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.demos))
	for name := range r.demos {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns the registered demos sorted by name. The slice is a copy.
func (r *Registry) All() []Demo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	demos := make([]Demo, 0, len(r.demos))
	for _, d := range r.demos {
		demos = append(demos, d)
	}
	sort.Slice(demos, func(i, j int) bool { return demos[i].Name < demos[j].Name })
	return demos
}

// Len reports how many demos are registered.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.demos)
}

// Run looks up a demo and executes it, converting panics into errors so a
// misbehaving demo cannot take down the harness.
func (r *Registry) Run(ctx context.Context, name string, log Logger) (err error) {
	d, err := r.Lookup(name)
	if err != nil {
		return err
	}

	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%w: %q: %v", ErrDemoPanic, name, rec)
		}
	}()

	return d.Run(ctx, log)
}
