// Package types names the evaluation engines.
package types

import "fmt"

// Type identifies an evaluation engine.
type Type string

const (
	// SExpr is the native s-expression engine.
	SExpr Type = "sexpr"
	// Starlark evaluates Starlark source via go.starlark.net.
	Starlark Type = "starlark"
	// Risor evaluates Risor source via github.com/risor-io/risor.
	Risor Type = "risor"
)

func (t Type) String() string {
	return string(t)
}

// FromString converts a name into a machine Type.
func FromString(name string) (Type, error) {
	switch Type(name) {
	case SExpr:
		return SExpr, nil
	case Starlark:
		return Starlark, nil
	case Risor:
		return Risor, nil
	default:
		return "", fmt.Errorf("invalid machine type: %s", name)
	}
}
