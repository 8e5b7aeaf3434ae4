package options

import (
	"log/slog"
	"os"

	"github.com/tmorri/go-scopeval/execution/data"
	"github.com/tmorri/go-scopeval/machines/types"
)

// DefaultConfig initializes a Config for the given machine type with
// default logging and an empty static binding context.
func DefaultConfig(machineType types.Type) *Config {
	cfg := &Config{}
	cfg.SetMachineType(machineType)
	cfg.SetHandler(DefaultHandler())
	cfg.SetDataProvider(DefaultDataProvider())
	return cfg
}

// DefaultHandler returns the default logging handler.
func DefaultHandler() slog.Handler {
	return slog.NewTextHandler(os.Stdout, nil)
}

// DefaultDataProvider returns an empty static binding context.
func DefaultDataProvider() data.Provider {
	return data.NewStaticProvider(map[string]any{})
}

// WithDefaults fills in any config properties that are still nil.
func WithDefaults() Option {
	return func(c *Config) error {
		if c.handler == nil {
			c.handler = DefaultHandler()
		}
		if c.dataProvider == nil {
			c.dataProvider = DefaultDataProvider()
		}
		return nil
	}
}
