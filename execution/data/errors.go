package data

import "errors"

var (
	ErrContextKeyEmpty    = errors.New("context key is empty")
	ErrInvalidContextData = errors.New("invalid context data type")
	ErrNoContextSetter    = errors.New("no provider accepts context data")

	// ErrInvalidBindingName marks a binding-context key that cannot serve as
	// a name. Validation happens before any evaluation begins, so an invalid
	// key means no part of the expression runs.
	ErrInvalidBindingName = errors.New("invalid binding name")
)
