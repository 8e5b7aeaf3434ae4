package options

import (
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmorri/go-scopeval/execution/data"
	"github.com/tmorri/go-scopeval/execution/script/loader"
	"github.com/tmorri/go-scopeval/machines/types"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig(types.SExpr)
	assert.Equal(t, types.SExpr, cfg.GetMachineType())
	assert.NotNil(t, cfg.GetHandler())
	assert.NotNil(t, cfg.GetDataProvider())
	assert.Nil(t, cfg.GetLoader())
	assert.Nil(t, cfg.GetCompilerOptions())
}

func TestOptions(t *testing.T) {
	t.Parallel()

	t.Run("with logger", func(t *testing.T) {
		t.Parallel()
		handler := slog.NewJSONHandler(os.Stderr, nil)
		cfg := DefaultConfig(types.SExpr)
		require.NoError(t, WithLogger(handler)(cfg))
		assert.Equal(t, handler, cfg.GetHandler())
	})

	t.Run("nil logger keeps the default", func(t *testing.T) {
		t.Parallel()
		cfg := DefaultConfig(types.SExpr)
		original := cfg.GetHandler()
		require.NoError(t, WithLogger(nil)(cfg))
		assert.Equal(t, original, cfg.GetHandler())
	})

	t.Run("with data provider", func(t *testing.T) {
		t.Parallel()
		provider := data.NewStaticProvider(map[string]any{"a": 1})
		cfg := DefaultConfig(types.SExpr)
		require.NoError(t, WithDataProvider(provider)(cfg))
		assert.Equal(t, provider, cfg.GetDataProvider())
	})

	t.Run("with loader", func(t *testing.T) {
		t.Parallel()
		l, err := loader.NewFromString("(+ 1 2)")
		require.NoError(t, err)

		cfg := DefaultConfig(types.SExpr)
		require.NoError(t, WithLoader(l)(cfg))
		assert.Equal(t, l, cfg.GetLoader())
	})

	t.Run("with compiler options", func(t *testing.T) {
		t.Parallel()
		cfg := DefaultConfig(types.Starlark)
		opts := struct{ Globals []string }{Globals: []string{"a"}}
		require.NoError(t, WithCompilerOptions(opts)(cfg))
		assert.Equal(t, opts, cfg.GetCompilerOptions())
	})
}

func TestWithDefaults(t *testing.T) {
	t.Parallel()

	t.Run("fills nil fields", func(t *testing.T) {
		t.Parallel()
		cfg := &Config{}
		cfg.SetMachineType(types.Risor)
		require.NoError(t, WithDefaults()(cfg))
		assert.NotNil(t, cfg.GetHandler())
		assert.NotNil(t, cfg.GetDataProvider())
	})

	t.Run("keeps configured fields", func(t *testing.T) {
		t.Parallel()
		provider := data.NewStaticProvider(map[string]any{"a": 1})
		cfg := DefaultConfig(types.SExpr)
		cfg.SetDataProvider(provider)
		require.NoError(t, WithDefaults()(cfg))
		assert.Equal(t, provider, cfg.GetDataProvider())
	})
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()
		l, err := loader.NewFromString("1")
		require.NoError(t, err)

		cfg := DefaultConfig(types.SExpr)
		require.NoError(t, WithLoader(l)(cfg))
		assert.NoError(t, cfg.Validate())
	})

	t.Run("missing loader", func(t *testing.T) {
		t.Parallel()
		cfg := DefaultConfig(types.SExpr)
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no loader")
	})

	t.Run("missing machine type", func(t *testing.T) {
		t.Parallel()
		l, err := loader.NewFromString("1")
		require.NoError(t, err)

		cfg := &Config{}
		require.NoError(t, WithLoader(l)(cfg))
		err = cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no machine type")
	})
}
