package sexpr

// Env is a lexical scope: a frame of bindings plus a pointer to the
// enclosing frame. Lookup walks outward, so inner frames shadow outer ones.
type Env struct {
	store map[Symbol]Value
	outer *Env
}

// NewEnv creates an empty environment with no enclosing scope.
func NewEnv() *Env {
	return &Env{store: map[Symbol]Value{}}
}

// NewEnclosedEnv creates an empty frame whose lookups fall through to outer.
func NewEnclosedEnv(outer *Env) *Env {
	return &Env{store: map[Symbol]Value{}, outer: outer}
}

// Get resolves name, walking outward through enclosing frames.
func (e *Env) Get(name Symbol) (Value, bool) {
	for env := e; env != nil; env = env.outer {
		if v, ok := env.store[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Set binds name in this frame, shadowing any outer binding of the same name.
func (e *Env) Set(name Symbol, v Value) {
	e.store[name] = v
}
