package sexpr

import (
	machineTypes "github.com/tmorri/go-scopeval/machines/types"
	sexprLang "github.com/tmorri/go-scopeval/sexpr"
)

// executable holds expression source together with its parsed forms.
type executable struct {
	source []byte
	forms  []sexprLang.Value
}

func newExecutable(source []byte, forms []sexprLang.Value) *executable {
	if len(source) == 0 || len(forms) == 0 {
		return nil
	}
	return &executable{
		source: source,
		forms:  forms,
	}
}

func (e *executable) GetSource() string {
	return string(e.source)
}

func (e *executable) GetByteCode() any {
	return e.forms
}

func (e *executable) GetForms() []sexprLang.Value {
	return e.forms
}

func (e *executable) GetMachineType() machineTypes.Type {
	return machineTypes.SExpr
}
