package data

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmorri/go-scopeval/execution/constants"
)

func TestContextProvider_GetData(t *testing.T) {
	t.Parallel()

	t.Run("empty key is rejected", func(t *testing.T) {
		t.Parallel()
		provider := NewContextProvider("")

		_, err := provider.GetData(context.Background())
		assert.ErrorIs(t, err, ErrContextKeyEmpty)
	})

	t.Run("no staged data yields empty binding context", func(t *testing.T) {
		t.Parallel()
		provider := NewContextProvider(constants.EvalData)

		result, err := provider.GetData(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, result)
		assert.Empty(t, result)
	})

	t.Run("returns staged data", func(t *testing.T) {
		t.Parallel()
		provider := NewContextProvider(constants.EvalData)
		ctx, err := provider.AddDataToContext(context.Background(), map[string]any{"a": 1})
		require.NoError(t, err)

		result, err := provider.GetData(ctx)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"a": 1}, result)
	})

	t.Run("wrong value type is rejected", func(t *testing.T) {
		t.Parallel()
		provider := NewContextProvider(constants.EvalData)
		ctx := context.WithValue(context.Background(), constants.EvalData, "not a map")

		_, err := provider.GetData(ctx)
		assert.ErrorIs(t, err, ErrInvalidContextData)
	})

	t.Run("result is a snapshot", func(t *testing.T) {
		t.Parallel()
		provider := NewContextProvider(constants.EvalData)
		ctx, err := provider.AddDataToContext(context.Background(), map[string]any{"a": 1})
		require.NoError(t, err)

		first, err := provider.GetData(ctx)
		require.NoError(t, err)
		first["a"] = 999

		second, err := provider.GetData(ctx)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"a": 1}, second)
	})
}

func TestContextProvider_AddDataToContext(t *testing.T) {
	t.Parallel()

	t.Run("empty key is rejected", func(t *testing.T) {
		t.Parallel()
		provider := NewContextProvider("")

		_, err := provider.AddDataToContext(context.Background(), map[string]any{"a": 1})
		assert.ErrorIs(t, err, ErrContextKeyEmpty)
	})

	t.Run("later maps override earlier ones", func(t *testing.T) {
		t.Parallel()
		provider := NewContextProvider(constants.EvalData)
		ctx, err := provider.AddDataToContext(context.Background(),
			map[string]any{"a": 1, "b": 2},
			map[string]any{"b": 20},
		)
		require.NoError(t, err)

		result, err := provider.GetData(ctx)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"a": 1, "b": 20}, result)
	})

	t.Run("staging merges with previously staged data", func(t *testing.T) {
		t.Parallel()
		provider := NewContextProvider(constants.EvalData)
		ctx, err := provider.AddDataToContext(context.Background(), map[string]any{"a": 1})
		require.NoError(t, err)
		ctx, err = provider.AddDataToContext(ctx, map[string]any{"b": 2})
		require.NoError(t, err)

		result, err := provider.GetData(ctx)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"a": 1, "b": 2}, result)
	})

	t.Run("a parent context is unaffected", func(t *testing.T) {
		t.Parallel()
		provider := NewContextProvider(constants.EvalData)
		parent, err := provider.AddDataToContext(context.Background(), map[string]any{"a": 1})
		require.NoError(t, err)
		_, err = provider.AddDataToContext(parent, map[string]any{"a": 100})
		require.NoError(t, err)

		result, err := provider.GetData(parent)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"a": 1}, result, "each staging builds a new context value")
	})
}
