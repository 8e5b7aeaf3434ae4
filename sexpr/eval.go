package sexpr

import "fmt"

// Eval interprets an expression tree against a scope chain. Literals are
// self-evaluating, symbols resolve through env, and non-empty lists are
// special forms or applications. Errors propagate immediately; nothing is
// retried or substituted.
func Eval(expr Value, env *Env) (Value, error) {
	switch e := expr.(type) {
	case nil:
		return Nil{}, nil
	case Nil, Boolean, Number, String, Keyword, *Builtin, *Lambda:
		return e, nil
	case Symbol:
		v, ok := env.Get(e)
		if !ok {
			return nil, &EvaluationError{Msg: "unable to resolve symbol", Form: e}
		}
		return v, nil
	case *Map:
		return evalMap(e, env)
	case *List:
		if e.Len() == 0 {
			return e, nil
		}
		return evalList(e, env)
	default:
		return nil, &EvaluationError{Msg: fmt.Sprintf("unknown expression type %T", expr)}
	}
}

// EvalProgram evaluates a sequence of forms in order, returning the value of
// the last one.
func EvalProgram(forms []Value, env *Env) (Value, error) {
	var result Value = Nil{}
	for _, form := range forms {
		v, err := Eval(form, env)
		if err != nil {
			return nil, err
		}
		result = v
	}
	return result, nil
}

func evalMap(m *Map, env *Env) (Value, error) {
	result := &Map{}
	for i, k := range m.Keys() {
		key, err := Eval(k, env)
		if err != nil {
			return nil, err
		}
		val, err := Eval(m.Vals()[i], env)
		if err != nil {
			return nil, err
		}
		result = result.Assoc(key, val)
	}
	return result, nil
}

func evalList(e *List, env *Env) (Value, error) {
	if sym, ok := e.Items[0].(Symbol); ok {
		switch sym {
		case "quote":
			return evalQuote(e)
		case "quasiquote":
			return evalQuasiquote(e, env)
		case "unquote", "unquote-splicing":
			return nil, &EvaluationError{Msg: string(sym) + " outside quasiquote", Form: e}
		case "if":
			return evalIf(e, env)
		case "let":
			return evalLet(e, env)
		case "do":
			return EvalProgram(e.Items[1:], env)
		case "fn":
			return evalFn(e, env)
		case "def":
			return evalDef(e, env)
		case "and":
			return evalAnd(e, env)
		case "or":
			return evalOr(e, env)
		}
	}

	head, err := Eval(e.Items[0], env)
	if err != nil {
		return nil, err
	}
	callable, ok := head.(Callable)
	if !ok {
		return nil, &EvaluationError{
			Msg:  fmt.Sprintf("cannot invoke non-callable value of type %s", head.Type()),
			Form: e,
		}
	}

	args := make([]Value, len(e.Items)-1)
	for i, arg := range e.Items[1:] {
		v, err := Eval(arg, env)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return callable.Call(args)
}

// (quote form)
func evalQuote(e *List) (Value, error) {
	if e.Len() != 2 {
		return nil, &EvaluationError{Msg: "quote takes exactly one form", Form: e}
	}
	return e.Items[1], nil
}

// (if test then) or (if test then else)
func evalIf(e *List, env *Env) (Value, error) {
	if e.Len() < 3 || e.Len() > 4 {
		return nil, &EvaluationError{Msg: "if takes a test, a consequent, and an optional alternative", Form: e}
	}
	test, err := Eval(e.Items[1], env)
	if err != nil {
		return nil, err
	}
	if Truthy(test) {
		return Eval(e.Items[2], env)
	}
	if e.Len() == 4 {
		return Eval(e.Items[3], env)
	}
	return Nil{}, nil
}

// (let ((name init) ...) body ...)
//
// Bindings are evaluated left to right and become visible to the inits that
// follow them. The body runs in a fresh frame, so let bindings shadow any
// same-named binding in an enclosing scope.
func evalLet(e *List, env *Env) (Value, error) {
	const invalidLet = "let must be of the form (let ((name init) ...) body ...)"

	if e.Len() < 3 {
		return nil, &EvaluationError{Msg: invalidLet, Form: e}
	}
	bindings, ok := e.Items[1].(*List)
	if !ok {
		return nil, &EvaluationError{Msg: invalidLet, Form: e}
	}

	frame := NewEnclosedEnv(env)
	for _, b := range bindings.Items {
		pair, ok := b.(*List)
		if !ok || pair.Len() != 2 {
			return nil, &EvaluationError{Msg: invalidLet, Form: b}
		}
		name, ok := pair.Items[0].(Symbol)
		if !ok {
			return nil, &EvaluationError{Msg: invalidLet, Form: b}
		}
		init, err := Eval(pair.Items[1], frame)
		if err != nil {
			return nil, err
		}
		frame.Set(name, init)
	}
	return EvalProgram(e.Items[2:], frame)
}

// (fn (params...) body ...) with an optional & rest parameter
func evalFn(e *List, env *Env) (Value, error) {
	const invalidFn = "fn must be of the form (fn (param ...) body ...)"

	if e.Len() < 3 {
		return nil, &EvaluationError{Msg: invalidFn, Form: e}
	}
	paramList, ok := e.Items[1].(*List)
	if !ok {
		return nil, &EvaluationError{Msg: invalidFn, Form: e}
	}

	var params []Symbol
	variadic := false
	for i, p := range paramList.Items {
		sym, ok := p.(Symbol)
		if !ok {
			return nil, &EvaluationError{Msg: invalidFn, Form: p}
		}
		if sym == "&" {
			if i != paramList.Len()-2 {
				return nil, &EvaluationError{Msg: "& must be followed by exactly one rest parameter", Form: paramList}
			}
			variadic = true
			continue
		}
		params = append(params, sym)
	}
	return &Lambda{Params: params, Variadic: variadic, Body: e.Items[2:], Env: env}, nil
}

// (def name init) binds name in the current frame. Inside a scoped
// evaluation the current frame is the per-call one, so the definition is
// discarded along with it.
func evalDef(e *List, env *Env) (Value, error) {
	if e.Len() != 3 {
		return nil, &EvaluationError{Msg: "def must be of the form (def name init)", Form: e}
	}
	name, ok := e.Items[1].(Symbol)
	if !ok {
		return nil, &EvaluationError{Msg: "def requires a symbol name", Form: e}
	}
	init, err := Eval(e.Items[2], env)
	if err != nil {
		return nil, err
	}
	env.Set(name, init)
	return init, nil
}

func evalAnd(e *List, env *Env) (Value, error) {
	var result Value = Boolean(true)
	for _, form := range e.Items[1:] {
		v, err := Eval(form, env)
		if err != nil {
			return nil, err
		}
		if !Truthy(v) {
			return v, nil
		}
		result = v
	}
	return result, nil
}

func evalOr(e *List, env *Env) (Value, error) {
	var result Value = Nil{}
	for _, form := range e.Items[1:] {
		v, err := Eval(form, env)
		if err != nil {
			return nil, err
		}
		if Truthy(v) {
			return v, nil
		}
		result = v
	}
	return result, nil
}

// evalQuasiquote expands a template: unquote forms evaluate, and
// unquote-splicing forms evaluate to lists whose items are inlined. Nested
// quasiquotes keep their inner unquotes intact until their own level is
// expanded.
func evalQuasiquote(e *List, env *Env) (Value, error) {
	if e.Len() != 2 {
		return nil, &EvaluationError{Msg: "quasiquote takes exactly one form", Form: e}
	}
	return expandTemplate(e.Items[1], env, 1)
}

func expandTemplate(form Value, env *Env, depth int) (Value, error) {
	list, ok := form.(*List)
	if !ok || list.Len() == 0 {
		return form, nil
	}

	if sym, ok := list.Items[0].(Symbol); ok {
		switch sym {
		case "unquote":
			if list.Len() != 2 {
				return nil, &EvaluationError{Msg: "unquote takes exactly one form", Form: list}
			}
			if depth == 1 {
				return Eval(list.Items[1], env)
			}
			inner, err := expandTemplate(list.Items[1], env, depth-1)
			if err != nil {
				return nil, err
			}
			return NewList(sym, inner), nil
		case "quasiquote":
			if list.Len() != 2 {
				return nil, &EvaluationError{Msg: "quasiquote takes exactly one form", Form: list}
			}
			inner, err := expandTemplate(list.Items[1], env, depth+1)
			if err != nil {
				return nil, err
			}
			return NewList(sym, inner), nil
		case "unquote-splicing":
			// Splices in list position are handled by the item loop below;
			// reaching here means the splice has no surrounding list to
			// splice into.
			if list.Len() != 2 {
				return nil, &EvaluationError{Msg: "unquote-splicing takes exactly one form", Form: list}
			}
			if depth == 1 {
				return nil, &EvaluationError{Msg: "unquote-splicing outside a list position", Form: list}
			}
			inner, err := expandTemplate(list.Items[1], env, depth-1)
			if err != nil {
				return nil, err
			}
			return NewList(sym, inner), nil
		}
	}

	var items []Value
	for _, item := range list.Items {
		if splice, ok := splicingForm(item); ok && depth == 1 {
			v, err := Eval(splice, env)
			if err != nil {
				return nil, err
			}
			spliced, ok := v.(*List)
			if !ok {
				return nil, &EvaluationError{Msg: "unquote-splicing requires a list", Form: item}
			}
			items = append(items, spliced.Items...)
			continue
		}
		expanded, err := expandTemplate(item, env, depth)
		if err != nil {
			return nil, err
		}
		items = append(items, expanded)
	}
	return NewList(items...), nil
}

func splicingForm(v Value) (Value, bool) {
	list, ok := v.(*List)
	if !ok || list.Len() != 2 {
		return nil, false
	}
	sym, ok := list.Items[0].(Symbol)
	if !ok || sym != "unquote-splicing" {
		return nil, false
	}
	return list.Items[1], true
}
