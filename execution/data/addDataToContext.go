package data

import (
	"context"
	"fmt"
	"log/slog"
)

// AddDataToContextHelper is the shared implementation behind the evaluators'
// AddDataToContext methods: it checks that the provider can accept staged
// data and forwards to it.
func AddDataToContextHelper(
	ctx context.Context,
	logger *slog.Logger,
	provider Provider,
	d ...map[string]any,
) (context.Context, error) {
	if provider == nil {
		return ctx, fmt.Errorf("provider is nil")
	}

	setter, ok := provider.(Setter)
	if !ok {
		return ctx, fmt.Errorf("%w: %T", ErrNoContextSetter, provider)
	}

	newCtx, err := setter.AddDataToContext(ctx, d...)
	if err != nil {
		logger.ErrorContext(ctx, "failed to add data to context", "error", err)
		return ctx, err
	}
	logger.DebugContext(ctx, "data added to context", "maps", len(d))
	return newCtx, nil
}
