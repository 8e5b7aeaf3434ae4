package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateBindingName(t *testing.T) {
	t.Parallel()

	t.Run("valid names", func(t *testing.T) {
		t.Parallel()
		for _, name := range []string{"a", "request", "user_id", "camelCase", "x1", "_private"} {
			assert.NoError(t, ValidateBindingName(name), "%q should be valid", name)
		}
	})

	tests := []struct {
		name string
		key  string
	}{
		{"empty", ""},
		{"space inside", "a b"},
		{"leading space", " a"},
		{"tab", "a\tb"},
		{"newline", "a\nb"},
		{"control character", "a\x00b"},
		{"leading digit", "1abc"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateBindingName(tt.key)
			assert.ErrorIs(t, err, ErrInvalidBindingName)
		})
	}
}

func TestValidateBindingNames(t *testing.T) {
	t.Parallel()

	t.Run("all valid", func(t *testing.T) {
		t.Parallel()
		err := ValidateBindingNames(map[string]any{"a": 1, "b": 2})
		assert.NoError(t, err)
	})

	t.Run("one bad key fails the whole context", func(t *testing.T) {
		t.Parallel()
		err := ValidateBindingNames(map[string]any{"ok": 1, "not ok": 2})
		assert.ErrorIs(t, err, ErrInvalidBindingName)
	})

	t.Run("empty context is fine", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, ValidateBindingNames(nil))
	})
}
