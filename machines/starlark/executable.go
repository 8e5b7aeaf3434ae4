package starlark

import (
	machineTypes "github.com/tmorri/go-scopeval/machines/types"
	starlarkLib "go.starlark.net/starlark"
)

// executable holds Starlark source together with its compiled program.
type executable struct {
	source   []byte
	ByteCode *starlarkLib.Program
}

func newExecutable(source []byte, byteCode *starlarkLib.Program) *executable {
	if len(source) == 0 || byteCode == nil {
		return nil
	}
	return &executable{
		source:   source,
		ByteCode: byteCode,
	}
}

func (e *executable) GetSource() string {
	return string(e.source)
}

func (e *executable) GetByteCode() any {
	return e.ByteCode
}

func (e *executable) GetStarlarkByteCode() *starlarkLib.Program {
	return e.ByteCode
}

func (e *executable) GetMachineType() machineTypes.Type {
	return machineTypes.Starlark
}
