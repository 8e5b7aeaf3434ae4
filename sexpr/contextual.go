package sexpr

// EvalWithBindings evaluates expr with the entries of bindings visible as
// local names. The bindings live in a frame built for this call over a fresh
// global environment; when the call returns the frame is discarded, so
// nothing leaks into any shared scope and no global is shadowed persistently.
//
// Every key is checked before evaluation starts: an invalid name yields a
// *BindingError and no part of the expression runs. Values are bound as-is,
// never re-evaluated.
func EvalWithBindings(bindings map[Symbol]Value, expr Value) (Value, error) {
	for name := range bindings {
		if !IsValidName(string(name)) {
			return nil, &BindingError{Name: string(name), Msg: "not a valid binding name"}
		}
	}

	frame := NewEnclosedEnv(GlobalEnv())
	for name, v := range bindings {
		frame.Set(name, v)
	}
	return Eval(expr, frame)
}

// EvalString parses src as a single expression and evaluates it with the
// given bindings.
func EvalString(bindings map[Symbol]Value, src string) (Value, error) {
	expr, err := ParseOne(src)
	if err != nil {
		return nil, err
	}
	return EvalWithBindings(bindings, expr)
}

// IsValidName reports whether s can serve as a binding name: it must parse
// as a single bare symbol, not a literal, a keyword, or reader punctuation.
func IsValidName(s string) bool {
	if s == "" {
		return false
	}
	forms, err := Parse(s)
	if err != nil || len(forms) != 1 {
		return false
	}
	sym, ok := forms[0].(Symbol)
	return ok && string(sym) == s
}
