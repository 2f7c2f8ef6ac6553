// Package runtime holds the mutable state of an IMP evaluation run.
package runtime

import "sort"

// Environment maps variable names to integer values. IMP has a single
// flat scope; an environment is created empty, owned exclusively by one
// evaluation run, written only by assignment, and read by expression
// evaluation.
type Environment struct {
	values map[string]int64
}

// NewEnvironment creates an empty environment.
func NewEnvironment() *Environment {
	return &Environment{values: make(map[string]int64)}
}

// Define inserts or overwrites a binding.
func (e *Environment) Define(name string, value int64) {
	e.values[name] = value
}

// Get retrieves a binding; the second result reports whether the variable
// has ever been assigned.
func (e *Environment) Get(name string) (int64, bool) {
	value, ok := e.values[name]
	return value, ok
}

// Len reports the number of bindings.
func (e *Environment) Len() int {
	return len(e.values)
}

// Names returns all bound variable names in sorted order.
func (e *Environment) Names() []string {
	names := make([]string, 0, len(e.values))
	for name := range e.values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Snapshot returns a copy of the current bindings.
func (e *Environment) Snapshot() map[string]int64 {
	out := make(map[string]int64, len(e.values))
	for name, value := range e.values {
		out[name] = value
	}
	return out
}
