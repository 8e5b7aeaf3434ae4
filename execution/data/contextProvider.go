package data

import (
	"context"
	"fmt"
	"maps"

	"github.com/tmorri/go-scopeval/execution/constants"
)

// ContextProvider reads the binding context from a context.Context value
// stored under a configured key. It enables the "compile once, evaluate
// many" pattern: the evaluator is built once, and each call supplies its own
// bindings by staging them on the context with AddDataToContext.
type ContextProvider struct {
	contextKey constants.ContextKey
}

// NewContextProvider creates a ContextProvider reading from the given key.
func NewContextProvider(contextKey constants.ContextKey) *ContextProvider {
	return &ContextProvider{contextKey: contextKey}
}

func (p *ContextProvider) String() string {
	return fmt.Sprintf("data.ContextProvider{key: %s}", p.contextKey)
}

// GetData extracts the binding context from ctx. A context with no staged
// data yields an empty binding context, not an error.
func (p *ContextProvider) GetData(ctx context.Context) (map[string]any, error) {
	if p.contextKey == "" {
		return nil, ErrContextKeyEmpty
	}

	value := ctx.Value(p.contextKey)
	if value == nil {
		return make(map[string]any), nil
	}

	bindings, ok := value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: expected map[string]any, got %T", ErrInvalidContextData, value)
	}
	return maps.Clone(bindings), nil
}

// AddDataToContext merges the given maps (later entries override earlier
// ones, and any previously staged data) and stores the result on the
// returned context.
func (p *ContextProvider) AddDataToContext(
	ctx context.Context,
	d ...map[string]any,
) (context.Context, error) {
	if p.contextKey == "" {
		return ctx, ErrContextKeyEmpty
	}

	merged := make(map[string]any)
	if existing, ok := ctx.Value(p.contextKey).(map[string]any); ok {
		maps.Copy(merged, existing)
	}
	for _, m := range d {
		maps.Copy(merged, m)
	}
	return context.WithValue(ctx, p.contextKey, merged), nil
}
