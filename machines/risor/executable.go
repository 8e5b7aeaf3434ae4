package risor

import (
	risorCompiler "github.com/risor-io/risor/compiler"
	machineTypes "github.com/tmorri/go-scopeval/machines/types"
)

// executable holds Risor source together with its compiled bytecode.
type executable struct {
	source   []byte
	ByteCode *risorCompiler.Code
}

func newExecutable(source []byte, byteCode *risorCompiler.Code) *executable {
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

func (e *executable) GetRisorByteCode() *risorCompiler.Code {
	return e.ByteCode
}

func (e *executable) GetMachineType() machineTypes.Type {
	return machineTypes.Risor
}
