package data

import (
	"context"
	"maps"
)

// StaticProvider returns a predefined binding context. It fits the one-shot
// case where the bindings are known when the evaluator is built.
type StaticProvider struct {
	data map[string]any
}

// NewStaticProvider creates a StaticProvider with the given binding context.
func NewStaticProvider(data map[string]any) *StaticProvider {
	if data == nil {
		data = make(map[string]any)
	}
	return &StaticProvider{data: data}
}

func (p *StaticProvider) String() string {
	return "data.StaticProvider"
}

// GetData returns a clone of the static binding context, so callers cannot
// mutate the provider through the result.
func (p *StaticProvider) GetData(ctx context.Context) (map[string]any, error) {
	return maps.Clone(p.data), nil
}
