package risor

import (
	risorLib "github.com/risor-io/risor"
)

// convertToRisorOptions turns a binding context into Risor VM options, one
// global per binding name.
func convertToRisorOptions(bindings map[string]any) []risorLib.Option {
	options := make([]risorLib.Option, 0, len(bindings))
	for name, value := range bindings {
		options = append(options, risorLib.WithGlobal(name, value))
	}
	return options
}
