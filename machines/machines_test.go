package machines

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmorri/go-scopeval/execution/data"
	"github.com/tmorri/go-scopeval/execution/script"
	"github.com/tmorri/go-scopeval/execution/script/loader"
	"github.com/tmorri/go-scopeval/machines/risor"
	"github.com/tmorri/go-scopeval/machines/starlark"
	"github.com/tmorri/go-scopeval/machines/types"
)

func TestNewCompiler(t *testing.T) {
	t.Parallel()

	t.Run("sexpr", func(t *testing.T) {
		t.Parallel()
		compiler, err := NewCompiler(nil, types.SExpr, nil)
		require.NoError(t, err)
		assert.NotNil(t, compiler)
	})

	t.Run("starlark", func(t *testing.T) {
		t.Parallel()
		compiler, err := NewCompiler(nil, types.Starlark,
			&starlark.BasicCompilerOptions{Globals: []string{"a"}})
		require.NoError(t, err)
		assert.NotNil(t, compiler)
	})

	t.Run("starlark with nil options", func(t *testing.T) {
		t.Parallel()
		compiler, err := NewCompiler(nil, types.Starlark, nil)
		require.NoError(t, err)
		assert.NotNil(t, compiler)
	})

	t.Run("risor", func(t *testing.T) {
		t.Parallel()
		compiler, err := NewCompiler(nil, types.Risor,
			&risor.BasicCompilerOptions{Globals: []string{"a"}})
		require.NoError(t, err)
		assert.NotNil(t, compiler)
	})

	t.Run("mismatched options type", func(t *testing.T) {
		t.Parallel()
		_, err := NewCompiler(nil, types.Starlark,
			&risor.BasicCompilerOptions{Globals: []string{"a"}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid compiler options type")
	})

	t.Run("unsupported machine type", func(t *testing.T) {
		t.Parallel()
		_, err := NewCompiler(nil, types.Type("cobol"), nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported machine type")
	})
}

func TestNewEvaluator(t *testing.T) {
	t.Parallel()

	newUnit := func(t *testing.T, machineType types.Type, src string, globals []string) *script.ExecutableUnit {
		t.Helper()
		var compilerOptions any
		switch machineType {
		case types.Starlark:
			compilerOptions = &starlark.BasicCompilerOptions{Globals: globals}
		case types.Risor:
			compilerOptions = &risor.BasicCompilerOptions{Globals: globals}
		}
		compiler, err := NewCompiler(nil, machineType, compilerOptions)
		require.NoError(t, err)

		l, err := loader.NewFromString(src)
		require.NoError(t, err)

		unit, err := script.NewExecutableUnit(nil, "", l, compiler,
			data.NewStaticProvider(map[string]any{"a": 20, "b": 22}))
		require.NoError(t, err)
		return unit
	}

	t.Run("dispatches on the unit's machine type", func(t *testing.T) {
		t.Parallel()
		tests := []struct {
			machineType types.Type
			src         string
		}{
			{types.SExpr, "(+ a b)"},
			{types.Starlark, "result = a + b"},
			{types.Risor, "a + b"},
		}

		for _, tt := range tests {
			unit := newUnit(t, tt.machineType, tt.src, []string{"a", "b"})
			evaluator, err := NewEvaluator(nil, unit)
			require.NoError(t, err, "machine %s", tt.machineType)

			response, err := evaluator.Eval(context.Background())
			require.NoError(t, err, "machine %s", tt.machineType)
			assert.Equal(t, int64(42), response.Interface(), "machine %s", tt.machineType)
		}
	})

	t.Run("nil unit is rejected", func(t *testing.T) {
		t.Parallel()
		_, err := NewEvaluator(nil, nil)
		assert.Error(t, err)
	})
}
