package evaluator

// Environment maps names to runtime values. Frames chain outward through
// outer, innermost first on lookup.
type Environment struct {
	store map[string]Object
	outer *Environment
}

func NewEnvironment() *Environment {
	return &Environment{store: make(map[string]Object)}
}

// NewEnclosedEnvironment returns a fresh frame whose lookups fall through
// to outer.
func NewEnclosedEnvironment(outer *Environment) *Environment {
	return &Environment{store: make(map[string]Object), outer: outer}
}

func (e *Environment) Get(name string) (Object, bool) {
	obj, ok := e.store[name]
	if !ok && e.outer != nil {
		return e.outer.Get(name)
	}
	return obj, ok
}

func (e *Environment) Set(name string, val Object) Object {
	e.store[name] = val
	return val
}

// Snapshot flattens the whole chain into a single detached frame. Closures
// capture a Snapshot so later rebindings in the source environment cannot
// change what the closure sees.
func (e *Environment) Snapshot() *Environment {
	flat := NewEnvironment()
	var frames []*Environment
	for env := e; env != nil; env = env.outer {
		frames = append(frames, env)
	}
	// Outermost first so inner bindings shadow outer ones.
	for i := len(frames) - 1; i >= 0; i-- {
		for name, val := range frames[i].store {
			flat.store[name] = val
		}
	}
	return flat
}
