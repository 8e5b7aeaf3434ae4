package engine

import "context"

// Evaluator is the interface for the generic scoped evaluator. An Evaluator
// is bound to one compiled expression; each Eval call receives its binding
// context through the executable unit's data provider and evaluates with
// those bindings visible only for that call.
type Evaluator interface {
	// Eval runs the compiled expression against the binding context supplied
	// by the data provider. The context.Context carries cancellation and,
	// for context-backed providers, the per-call bindings themselves.
	Eval(ctx context.Context) (EvaluatorResponse, error)
}

// DataPreparer enriches a context.Context with binding-context data prior to
// an Eval call. Evaluators whose data provider reads from the context
// implement this so that callers can stage per-request bindings.
type DataPreparer interface {
	AddDataToContext(ctx context.Context, d ...map[string]any) (context.Context, error)
}

// EvaluatorWithPrep combines evaluation with binding-context preparation.
type EvaluatorWithPrep interface {
	Evaluator
	DataPreparer
}
