// Package data supplies binding contexts to evaluations. A Provider is an
// explicit, per-call mapping from names to values: the evaluator reads it
// at the start of each Eval, binds its entries as local names, and forgets
// it when the call returns.
package data

import "context"

// Provider retrieves the binding context for an evaluation.
type Provider interface {
	// GetData returns the binding context as a map of names to values. The
	// returned map is a snapshot owned by the caller; mutating it must not
	// affect the provider.
	GetData(ctx context.Context) (map[string]any, error)
}

// Setter stores binding-context data for later retrieval by a Provider that
// reads from the context.Context.
type Setter interface {
	AddDataToContext(ctx context.Context, d ...map[string]any) (context.Context, error)
}
