// Package constants holds the keys used to move binding-context data through
// context.Context objects and into evaluations.
package constants

// ContextKey is the type for keys stored in a context.Context, to avoid
// collisions with other packages' context values.
type ContextKey string

// EvalData is the context.Context key under which a ContextProvider stores
// the per-call binding context. Each key of that map becomes a name visible
// to the evaluated expression.
const EvalData ContextKey = "eval_data"
