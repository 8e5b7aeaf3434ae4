package engine

import "github.com/tmorri/go-scopeval/execution/data"

// EvaluatorResponse is the value produced by evaluating an expression,
// decoupled from any one engine's value representation.
type EvaluatorResponse interface {
	// Type of the result value.
	Type() data.Types

	// Inspect returns a string representation of the result.
	Inspect() string

	// Interface converts the result to a native Go value.
	Interface() any

	// GetExeID returns the ID of the executable unit that produced the result.
	GetExeID() string

	// GetExecTime returns the wall time spent evaluating.
	GetExecTime() string
}
