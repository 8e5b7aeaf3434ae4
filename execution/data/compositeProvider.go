package data

import (
	"context"
	"fmt"
	"maps"
)

// CompositeProvider merges the binding contexts of several providers. Later
// providers override earlier ones for duplicate names, which is how static
// defaults get shadowed by per-call bindings.
type CompositeProvider struct {
	providers []Provider
}

// NewCompositeProvider creates a CompositeProvider querying the given
// providers in order.
func NewCompositeProvider(providers ...Provider) *CompositeProvider {
	return &CompositeProvider{providers: providers}
}

func (p *CompositeProvider) String() string {
	return fmt.Sprintf("data.CompositeProvider{providers: %d}", len(p.providers))
}

// GetData queries each provider in sequence and merges the results.
func (p *CompositeProvider) GetData(ctx context.Context) (map[string]any, error) {
	result := make(map[string]any)
	for i, provider := range p.providers {
		if provider == nil {
			continue
		}
		data, err := provider.GetData(ctx)
		if err != nil {
			return nil, fmt.Errorf("provider %d: %w", i, err)
		}
		maps.Copy(result, data)
	}
	return result, nil
}

// AddDataToContext forwards staged data to every member provider that
// implements Setter. It fails only if no member accepts data.
func (p *CompositeProvider) AddDataToContext(
	ctx context.Context,
	d ...map[string]any,
) (context.Context, error) {
	accepted := false
	for _, provider := range p.providers {
		setter, ok := provider.(Setter)
		if !ok {
			continue
		}
		next, err := setter.AddDataToContext(ctx, d...)
		if err != nil {
			return ctx, err
		}
		ctx = next
		accepted = true
	}
	if !accepted {
		return ctx, ErrNoContextSetter
	}
	return ctx, nil
}
