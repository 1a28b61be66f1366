package runtime

import "fmt"

// Environment is one lexical scope frame: a name-to-value table plus a
// pointer to the enclosing frame. The parent pointer is set at construction
// and never rewired, so frame chains are acyclic by construction; closures
// keep captured chains alive by ordinary reference.
type Environment struct {
	values map[string]Value
	parent *Environment
}

// NewEnvironment creates a frame whose lookups fall back to parent. A nil
// parent makes a root frame.
func NewEnvironment(parent *Environment) *Environment {
	return &Environment{values: make(map[string]Value), parent: parent}
}

// Define introduces a binding in this frame. Redefining a name already bound
// in the same frame overwrites it without error.
func (e *Environment) Define(name string, value Value) {
	e.values[name] = value
}

// Assign rebinds the nearest existing binding for name, walking outward. It
// never creates a binding.
func (e *Environment) Assign(name string, value Value) error {
	for env := e; env != nil; env = env.parent {
		if _, ok := env.values[name]; ok {
			env.values[name] = value
			return nil
		}
	}
	return fmt.Errorf("Undefined variable '%s'", name)
}

// Get resolves name, walking outward from this frame and stopping at the
// first match.
func (e *Environment) Get(name string) (Value, error) {
	for env := e; env != nil; env = env.parent {
		if v, ok := env.values[name]; ok {
			return v, nil
		}
	}
	return nil, fmt.Errorf("Undefined variable '%s'", name)
}
