package helpers

import (
	"log/slog"
	"os"
)

// SetupLogger creates a configured logger for an engine component. If the
// provided handler is nil, a default text handler grouped under the engine
// name is used instead.
//
// Returns the handler (for passing to sub-components) and a logger created
// from it, grouped under groupName when one is given.
func SetupLogger(handler slog.Handler, engineName string, groupName string) (slog.Handler, *slog.Logger) {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stdout, nil).WithGroup(engineName)
	}

	if groupName != "" {
		return handler, slog.New(handler.WithGroup(groupName))
	}
	return handler, slog.New(handler)
}
