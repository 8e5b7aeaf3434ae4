package loader

import "errors"

var (
	ErrSourceNotAvailable = errors.New("source not available")
	ErrInputEmpty         = errors.New("input is empty")
)
