// Package sexpr implements a small expression language whose programs are
// tagged trees of literals, symbols, and lists. It exists so that a binding
// context (a map of names to values) can be evaluated against an expression
// without touching any process-wide environment: every evaluation builds its
// own scope chain and discards it when it returns.
package sexpr

import (
	"fmt"
	"strconv"
	"strings"
)

// Type identifies the concrete kind of a Value.
type Type string

const (
	TypeNil     Type = "nil"
	TypeBoolean Type = "boolean"
	TypeNumber  Type = "number"
	TypeString  Type = "string"
	TypeSymbol  Type = "symbol"
	TypeKeyword Type = "keyword"
	TypeList    Type = "list"
	TypeMap     Type = "map"
	TypeBuiltin Type = "builtin"
	TypeLambda  Type = "lambda"
)

// Value is the tagged-variant expression tree. Expressions and results share
// this representation: code is data.
type Value interface {
	Type() Type
	String() string
}

// Callable is implemented by values that may appear at call position.
type Callable interface {
	Value
	Call(args []Value) (Value, error)
}

// Nil is the absence of a value. It is self-evaluating.
type Nil struct{}

func (Nil) Type() Type     { return TypeNil }
func (Nil) String() string { return "nil" }

// Boolean is self-evaluating.
type Boolean bool

func (Boolean) Type() Type { return TypeBoolean }
func (b Boolean) String() string {
	if b {
		return "true"
	}
	return "false"
}

// Number is a float64; integral values print without a fraction.
type Number float64

func (Number) Type() Type { return TypeNumber }
func (n Number) String() string {
	return strconv.FormatFloat(float64(n), 'g', -1, 64)
}

// IsIntegral reports whether the number has no fractional part.
func (n Number) IsIntegral() bool {
	return n == Number(int64(n))
}

// String is self-evaluating.
type String string

func (String) Type() Type { return TypeString }
func (s String) String() string {
	return strconv.Quote(string(s))
}

// Symbol is a reference to a binding. Evaluating a symbol looks it up in the
// current scope chain.
type Symbol string

func (Symbol) Type() Type       { return TypeSymbol }
func (s Symbol) String() string { return string(s) }

// Keyword is a self-evaluating name, written :name. Keywords are the usual
// keys of associative structures.
type Keyword string

func (Keyword) Type() Type       { return TypeKeyword }
func (k Keyword) String() string { return ":" + string(k) }

// List is an ordered sequence. A non-empty list at evaluation position is a
// function application or a special form.
type List struct {
	Items []Value
}

// NewList builds a list from the given items.
func NewList(items ...Value) *List {
	return &List{Items: items}
}

func (*List) Type() Type { return TypeList }

func (l *List) String() string {
	parts := make([]string, len(l.Items))
	for i, item := range l.Items {
		parts[i] = item.String()
	}
	return "(" + strings.Join(parts, " ") + ")"
}

// Len returns the number of items in the list. A nil list is empty.
func (l *List) Len() int {
	if l == nil {
		return 0
	}
	return len(l.Items)
}

// Map is an immutable associative structure. Lookup is by structural
// equality, so any value may serve as a key. Entries preserve insertion
// order; assoc and dissoc return new maps.
type Map struct {
	keys []Value
	vals []Value
}

// NewMap builds a map from alternating key/value entries.
func NewMap(entries ...Value) (*Map, error) {
	if len(entries)%2 != 0 {
		return nil, &EvaluationError{Msg: "map literal requires an even number of forms"}
	}
	m := &Map{}
	for i := 0; i < len(entries); i += 2 {
		m = m.Assoc(entries[i], entries[i+1])
	}
	return m, nil
}

func (*Map) Type() Type { return TypeMap }

func (m *Map) String() string {
	var b strings.Builder
	b.WriteString("{")
	for i := range m.keys {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(m.keys[i].String())
		b.WriteString(" ")
		b.WriteString(m.vals[i].String())
	}
	b.WriteString("}")
	return b.String()
}

// Len returns the number of entries.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Get returns the value bound to key, if any.
func (m *Map) Get(key Value) (Value, bool) {
	if m == nil {
		return nil, false
	}
	for i, k := range m.keys {
		if Equal(k, key) {
			return m.vals[i], true
		}
	}
	return nil, false
}

// Assoc returns a new map with key bound to val, replacing any prior entry.
func (m *Map) Assoc(key, val Value) *Map {
	next := &Map{
		keys: make([]Value, 0, m.Len()+1),
		vals: make([]Value, 0, m.Len()+1),
	}
	replaced := false
	for i := range m.keys {
		if Equal(m.keys[i], key) {
			next.keys = append(next.keys, key)
			next.vals = append(next.vals, val)
			replaced = true
			continue
		}
		next.keys = append(next.keys, m.keys[i])
		next.vals = append(next.vals, m.vals[i])
	}
	if !replaced {
		next.keys = append(next.keys, key)
		next.vals = append(next.vals, val)
	}
	return next
}

// Dissoc returns a new map without an entry for key.
func (m *Map) Dissoc(key Value) *Map {
	next := &Map{}
	for i := range m.keys {
		if Equal(m.keys[i], key) {
			continue
		}
		next.keys = append(next.keys, m.keys[i])
		next.vals = append(next.vals, m.vals[i])
	}
	return next
}

// Keys returns the map's keys in insertion order.
func (m *Map) Keys() []Value {
	if m == nil {
		return nil
	}
	return m.keys
}

// Vals returns the map's values in insertion order.
func (m *Map) Vals() []Value {
	if m == nil {
		return nil
	}
	return m.vals
}

// Builtin is a callable implemented in Go.
type Builtin struct {
	Name string
	Fn   func(args []Value) (Value, error)
}

func (*Builtin) Type() Type { return TypeBuiltin }

func (b *Builtin) String() string {
	return fmt.Sprintf("#<builtin %s>", b.Name)
}

// Call applies the builtin to args.
func (b *Builtin) Call(args []Value) (Value, error) {
	return b.Fn(args)
}

// Lambda is a closure created by the fn special form.
type Lambda struct {
	Params   []Symbol
	Variadic bool // last param collects remaining args as a list
	Body     []Value
	Env      *Env
}

func (*Lambda) Type() Type { return TypeLambda }

func (l *Lambda) String() string {
	params := make([]string, len(l.Params))
	for i, p := range l.Params {
		params[i] = string(p)
	}
	return fmt.Sprintf("#<fn (%s)>", strings.Join(params, " "))
}

// Call binds args to the lambda's parameters in a fresh frame over its
// closure environment and evaluates the body.
func (l *Lambda) Call(args []Value) (Value, error) {
	fixed := l.Params
	if l.Variadic {
		fixed = fixed[:len(fixed)-1]
	}
	if len(args) < len(fixed) || (!l.Variadic && len(args) > len(fixed)) {
		return nil, &EvaluationError{
			Msg: fmt.Sprintf("wrong number of arguments: expected %d, got %d", len(fixed), len(args)),
		}
	}

	frame := NewEnclosedEnv(l.Env)
	for i, p := range fixed {
		frame.Set(p, args[i])
	}
	if l.Variadic {
		frame.Set(l.Params[len(l.Params)-1], NewList(args[len(fixed):]...))
	}

	var result Value = Nil{}
	for _, form := range l.Body {
		v, err := Eval(form, frame)
		if err != nil {
			return nil, err
		}
		result = v
	}
	return result, nil
}

// Truthy reports the truth value of v: everything except false and nil is true.
func Truthy(v Value) bool {
	switch v := v.(type) {
	case Boolean:
		return bool(v)
	case Nil:
		return false
	default:
		return v != nil
	}
}

// Equal reports structural equality of two values.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Type() != b.Type() {
		return false
	}
	switch av := a.(type) {
	case Nil:
		return true
	case Boolean:
		return av == b.(Boolean)
	case Number:
		return av == b.(Number)
	case String:
		return av == b.(String)
	case Symbol:
		return av == b.(Symbol)
	case Keyword:
		return av == b.(Keyword)
	case *List:
		bv := b.(*List)
		if av.Len() != bv.Len() {
			return false
		}
		for i := range av.Items {
			if !Equal(av.Items[i], bv.Items[i]) {
				return false
			}
		}
		return true
	case *Map:
		bv := b.(*Map)
		if av.Len() != bv.Len() {
			return false
		}
		for i := range av.keys {
			other, ok := bv.Get(av.keys[i])
			if !ok || !Equal(av.vals[i], other) {
				return false
			}
		}
		return true
	default:
		// Callables compare by identity.
		return a == b
	}
}
