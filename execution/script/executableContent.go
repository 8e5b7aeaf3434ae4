package script

import (
	machineTypes "github.com/tmorri/go-scopeval/machines/types"
)

// ExecutableContent is validated expression source ready for evaluation.
type ExecutableContent interface {
	// GetSource returns the original expression source text.
	GetSource() string

	// GetByteCode returns the compiled form in an engine-specific
	// representation; the target machine type-asserts it back.
	GetByteCode() any

	// GetMachineType returns the engine this content is compiled for.
	GetMachineType() machineTypes.Type
}
