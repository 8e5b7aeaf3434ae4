package starlark

import "errors"

var (
	ErrContentNil         = errors.New("starlark content is nil")
	ErrValidationFailed   = errors.New("starlark source validation error")
	ErrBytecodeNil        = errors.New("starlark bytecode is nil")
	ErrExecCreationFailed = errors.New("unable to create starlark executable")
)
