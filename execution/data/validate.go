package data

import (
	"fmt"
	"unicode"
)

// ValidateBindingNames checks every key of a binding context against the
// constraints shared by all engines: non-empty, no whitespace or control
// characters, and not starting with a digit. Engines layer their own grammar
// checks on top of this. The first offending key fails the whole context.
func ValidateBindingNames(bindings map[string]any) error {
	for name := range bindings {
		if err := ValidateBindingName(name); err != nil {
			return err
		}
	}
	return nil
}

// ValidateBindingName checks a single binding-context key.
func ValidateBindingName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name is empty", ErrInvalidBindingName)
	}
	for i, r := range name {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return fmt.Errorf("%w: %q contains whitespace or control characters", ErrInvalidBindingName, name)
		}
		if i == 0 && unicode.IsDigit(r) {
			return fmt.Errorf("%w: %q starts with a digit", ErrInvalidBindingName, name)
		}
	}
	return nil
}
