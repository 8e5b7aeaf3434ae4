package sexpr

import "fmt"

// EvaluationError reports a failure while resolving or executing an
// expression: an unbound symbol, a non-callable value at call position, or a
// type mismatch inside an operation. It always surfaces synchronously to the
// caller; nothing retries, substitutes a fallback value, or logs in its place.
type EvaluationError struct {
	Msg  string
	Form Value // the offending form, when known
	Err  error // wrapped cause, when any
}

func (e *EvaluationError) Error() string {
	msg := "evaluation error: " + e.Msg
	if e.Form != nil {
		msg = fmt.Sprintf("%s: %s", msg, e.Form.String())
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *EvaluationError) Unwrap() error {
	return e.Err
}

// BindingError reports a binding-context key that cannot be used as a name.
// It is raised before any evaluation begins, so no partial scope is ever
// executed against.
type BindingError struct {
	Name string
	Msg  string
}

func (e *BindingError) Error() string {
	return fmt.Sprintf("binding error: %q: %s", e.Name, e.Msg)
}
