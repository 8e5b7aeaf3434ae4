package sexpr

import "errors"

var (
	ErrContentNil         = errors.New("sexpr content is nil")
	ErrValidationFailed   = errors.New("sexpr source validation error")
	ErrBytecodeNil        = errors.New("sexpr parsed form is nil")
	ErrExecCreationFailed = errors.New("unable to create sexpr executable")
)
