package sexpr

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// GlobalEnv returns a fresh environment holding the builtin procedures.
// Every call builds a new environment so that no two evaluations can observe
// each other through a shared root scope.
func GlobalEnv() *Env {
	env := NewEnv()
	for _, b := range builtins() {
		env.Set(Symbol(b.Name), b)
	}
	return env
}

func builtins() []*Builtin {
	return []*Builtin{
		{Name: "+", Fn: addFn},
		{Name: "-", Fn: subFn},
		{Name: "*", Fn: mulFn},
		{Name: "/", Fn: divFn},
		{Name: "=", Fn: equalFn},
		{Name: "not=", Fn: notEqualFn},
		{Name: "<", Fn: compareFn("<", func(a, b Number) bool { return a < b })},
		{Name: ">", Fn: compareFn(">", func(a, b Number) bool { return a > b })},
		{Name: "<=", Fn: compareFn("<=", func(a, b Number) bool { return a <= b })},
		{Name: ">=", Fn: compareFn(">=", func(a, b Number) bool { return a >= b })},
		{Name: "not", Fn: notFn},
		{Name: "list", Fn: listFn},
		{Name: "first", Fn: firstFn},
		{Name: "rest", Fn: restFn},
		{Name: "cons", Fn: consFn},
		{Name: "count", Fn: countFn},
		{Name: "get", Fn: getFn},
		{Name: "assoc", Fn: assocFn},
		{Name: "dissoc", Fn: dissocFn},
		{Name: "contains?", Fn: containsFn},
		{Name: "keys", Fn: keysFn},
		{Name: "vals", Fn: valsFn},
		{Name: "str", Fn: strFn},
		{Name: "nil?", Fn: typePredicate(TypeNil)},
		{Name: "number?", Fn: typePredicate(TypeNumber)},
		{Name: "string?", Fn: typePredicate(TypeString)},
		{Name: "symbol?", Fn: typePredicate(TypeSymbol)},
		{Name: "keyword?", Fn: typePredicate(TypeKeyword)},
		{Name: "list?", Fn: typePredicate(TypeList)},
		{Name: "map?", Fn: typePredicate(TypeMap)},
		{Name: "fn?", Fn: fnPredicate},
	}
}

func arityError(name string, want string, got int) error {
	return &EvaluationError{Msg: fmt.Sprintf("%s requires %s arguments, got %d", name, want, got)}
}

func wantNumber(name string, v Value) (Number, error) {
	n, ok := v.(Number)
	if !ok {
		return 0, &EvaluationError{Msg: fmt.Sprintf("%s requires numbers", name), Form: v}
	}
	return n, nil
}

func addFn(args []Value) (Value, error) {
	var sum Number
	for _, a := range args {
		n, err := wantNumber("+", a)
		if err != nil {
			return nil, err
		}
		sum += n
	}
	return sum, nil
}

func subFn(args []Value) (Value, error) {
	if len(args) == 0 {
		return nil, arityError("-", "at least 1", 0)
	}
	first, err := wantNumber("-", args[0])
	if err != nil {
		return nil, err
	}
	if len(args) == 1 {
		return -first, nil
	}
	for _, a := range args[1:] {
		n, err := wantNumber("-", a)
		if err != nil {
			return nil, err
		}
		first -= n
	}
	return first, nil
}

func mulFn(args []Value) (Value, error) {
	product := Number(1)
	for _, a := range args {
		n, err := wantNumber("*", a)
		if err != nil {
			return nil, err
		}
		product *= n
	}
	return product, nil
}

func divFn(args []Value) (Value, error) {
	if len(args) == 0 {
		return nil, arityError("/", "at least 1", 0)
	}
	first, err := wantNumber("/", args[0])
	if err != nil {
		return nil, err
	}
	if len(args) == 1 {
		if first == 0 {
			return nil, &EvaluationError{Msg: "division by zero"}
		}
		return 1 / first, nil
	}
	for _, a := range args[1:] {
		n, err := wantNumber("/", a)
		if err != nil {
			return nil, err
		}
		if n == 0 {
			return nil, &EvaluationError{Msg: "division by zero"}
		}
		first /= n
	}
	return first, nil
}

func equalFn(args []Value) (Value, error) {
	if len(args) < 2 {
		return nil, arityError("=", "at least 2", len(args))
	}
	for _, a := range args[1:] {
		if !Equal(args[0], a) {
			return Boolean(false), nil
		}
	}
	return Boolean(true), nil
}

func notEqualFn(args []Value) (Value, error) {
	eq, err := equalFn(args)
	if err != nil {
		return nil, err
	}
	return Boolean(!bool(eq.(Boolean))), nil
}

func compareFn(name string, cmp func(a, b Number) bool) func(args []Value) (Value, error) {
	return func(args []Value) (Value, error) {
		if len(args) < 2 {
			return nil, arityError(name, "at least 2", len(args))
		}
		prev, err := wantNumber(name, args[0])
		if err != nil {
			return nil, err
		}
		for _, a := range args[1:] {
			n, err := wantNumber(name, a)
			if err != nil {
				return nil, err
			}
			if !cmp(prev, n) {
				return Boolean(false), nil
			}
			prev = n
		}
		return Boolean(true), nil
	}
}

func notFn(args []Value) (Value, error) {
	if len(args) != 1 {
		return nil, arityError("not", "exactly 1", len(args))
	}
	return Boolean(!Truthy(args[0])), nil
}

func listFn(args []Value) (Value, error) {
	return NewList(args...), nil
}

func firstFn(args []Value) (Value, error) {
	if len(args) != 1 {
		return nil, arityError("first", "exactly 1", len(args))
	}
	list, ok := args[0].(*List)
	if !ok {
		return nil, &EvaluationError{Msg: "first requires a list", Form: args[0]}
	}
	if list.Len() == 0 {
		return Nil{}, nil
	}
	return list.Items[0], nil
}

func restFn(args []Value) (Value, error) {
	if len(args) != 1 {
		return nil, arityError("rest", "exactly 1", len(args))
	}
	list, ok := args[0].(*List)
	if !ok {
		return nil, &EvaluationError{Msg: "rest requires a list", Form: args[0]}
	}
	if list.Len() == 0 {
		return NewList(), nil
	}
	return NewList(list.Items[1:]...), nil
}

func consFn(args []Value) (Value, error) {
	if len(args) != 2 {
		return nil, arityError("cons", "exactly 2", len(args))
	}
	list, ok := args[1].(*List)
	if !ok {
		return nil, &EvaluationError{Msg: "cons requires a list as its second argument", Form: args[1]}
	}
	items := make([]Value, 0, list.Len()+1)
	items = append(items, args[0])
	items = append(items, list.Items...)
	return NewList(items...), nil
}

func countFn(args []Value) (Value, error) {
	if len(args) != 1 {
		return nil, arityError("count", "exactly 1", len(args))
	}
	switch v := args[0].(type) {
	case *List:
		return Number(v.Len()), nil
	case *Map:
		return Number(v.Len()), nil
	case String:
		return Number(utf8.RuneCountInString(string(v))), nil
	case Nil:
		return Number(0), nil
	default:
		return nil, &EvaluationError{Msg: "count requires a list, map, or string", Form: args[0]}
	}
}

func getFn(args []Value) (Value, error) {
	if len(args) < 2 || len(args) > 3 {
		return nil, arityError("get", "2 or 3", len(args))
	}
	var missing Value = Nil{}
	if len(args) == 3 {
		missing = args[2]
	}
	switch v := args[0].(type) {
	case *Map:
		if val, ok := v.Get(args[1]); ok {
			return val, nil
		}
		return missing, nil
	case *List:
		idx, ok := args[1].(Number)
		if !ok || !idx.IsIntegral() || idx < 0 || int(idx) >= v.Len() {
			return missing, nil
		}
		return v.Items[int(idx)], nil
	case Nil:
		return missing, nil
	default:
		return nil, &EvaluationError{Msg: "get requires a map or list", Form: args[0]}
	}
}

func assocFn(args []Value) (Value, error) {
	if len(args) < 3 || len(args)%2 == 0 {
		return nil, arityError("assoc", "a map followed by key/value pairs", len(args))
	}
	m, ok := args[0].(*Map)
	if !ok {
		return nil, &EvaluationError{Msg: "assoc requires a map", Form: args[0]}
	}
	for i := 1; i < len(args); i += 2 {
		m = m.Assoc(args[i], args[i+1])
	}
	return m, nil
}

func dissocFn(args []Value) (Value, error) {
	if len(args) < 2 {
		return nil, arityError("dissoc", "a map followed by keys", len(args))
	}
	m, ok := args[0].(*Map)
	if !ok {
		return nil, &EvaluationError{Msg: "dissoc requires a map", Form: args[0]}
	}
	for _, key := range args[1:] {
		m = m.Dissoc(key)
	}
	return m, nil
}

func containsFn(args []Value) (Value, error) {
	if len(args) != 2 {
		return nil, arityError("contains?", "exactly 2", len(args))
	}
	m, ok := args[0].(*Map)
	if !ok {
		return nil, &EvaluationError{Msg: "contains? requires a map", Form: args[0]}
	}
	_, found := m.Get(args[1])
	return Boolean(found), nil
}

func keysFn(args []Value) (Value, error) {
	if len(args) != 1 {
		return nil, arityError("keys", "exactly 1", len(args))
	}
	m, ok := args[0].(*Map)
	if !ok {
		return nil, &EvaluationError{Msg: "keys requires a map", Form: args[0]}
	}
	return NewList(m.Keys()...), nil
}

func valsFn(args []Value) (Value, error) {
	if len(args) != 1 {
		return nil, arityError("vals", "exactly 1", len(args))
	}
	m, ok := args[0].(*Map)
	if !ok {
		return nil, &EvaluationError{Msg: "vals requires a map", Form: args[0]}
	}
	return NewList(m.Vals()...), nil
}

func strFn(args []Value) (Value, error) {
	var b strings.Builder
	for _, a := range args {
		switch v := a.(type) {
		case String:
			b.WriteString(string(v))
		case Nil:
			// nil contributes nothing
		default:
			b.WriteString(a.String())
		}
	}
	return String(b.String()), nil
}

func typePredicate(t Type) func(args []Value) (Value, error) {
	return func(args []Value) (Value, error) {
		if len(args) != 1 {
			return nil, arityError(string(t)+"?", "exactly 1", len(args))
		}
		return Boolean(args[0].Type() == t), nil
	}
}

func fnPredicate(args []Value) (Value, error) {
	if len(args) != 1 {
		return nil, arityError("fn?", "exactly 1", len(args))
	}
	_, ok := args[0].(Callable)
	return Boolean(ok), nil
}
