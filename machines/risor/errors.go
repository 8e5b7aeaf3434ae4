package risor

import "errors"

var (
	ErrContentNil         = errors.New("risor content is nil")
	ErrValidationFailed   = errors.New("risor source validation error")
	ErrBytecodeNil        = errors.New("risor bytecode is nil")
	ErrExecCreationFailed = errors.New("unable to create risor executable")
)
