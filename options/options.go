// Package options configures evaluator construction with functional options.
package options

import (
	"fmt"
	"log/slog"

	"github.com/tmorri/go-scopeval/execution/data"
	"github.com/tmorri/go-scopeval/execution/script/loader"
	"github.com/tmorri/go-scopeval/machines/types"
)

// Config holds everything needed to build an evaluator.
type Config struct {
	handler         slog.Handler
	machineType     types.Type
	dataProvider    data.Provider
	loader          loader.Loader
	compilerOptions any
}

// Option mutates a Config during evaluator construction.
type Option func(*Config) error

// WithLogger sets the slog handler used by every component of the evaluator.
func WithLogger(handler slog.Handler) Option {
	return func(c *Config) error {
		if handler != nil {
			c.handler = handler
		}
		return nil
	}
}

// WithDataProvider sets the provider supplying binding contexts.
func WithDataProvider(provider data.Provider) Option {
	return func(c *Config) error {
		if provider != nil {
			c.dataProvider = provider
		}
		return nil
	}
}

// WithLoader sets the expression source loader.
func WithLoader(l loader.Loader) Option {
	return func(c *Config) error {
		if l != nil {
			c.loader = l
		}
		return nil
	}
}

// WithCompilerOptions sets machine-specific compiler options, such as the
// binding names a Starlark or Risor expression may reference.
func WithCompilerOptions(options any) Option {
	return func(c *Config) error {
		c.compilerOptions = options
		return nil
	}
}

// Validate checks that the configuration can build an evaluator.
func (c *Config) Validate() error {
	if c.loader == nil {
		return fmt.Errorf("no loader specified")
	}
	if c.machineType == "" {
		return fmt.Errorf("no machine type specified")
	}
	return nil
}

// GetHandler returns the configured slog handler.
func (c *Config) GetHandler() slog.Handler {
	return c.handler
}

// SetHandler sets the slog handler.
func (c *Config) SetHandler(handler slog.Handler) {
	c.handler = handler
}

// GetMachineType returns the configured machine type.
func (c *Config) GetMachineType() types.Type {
	return c.machineType
}

// SetMachineType sets the machine type.
func (c *Config) SetMachineType(machineType types.Type) {
	c.machineType = machineType
}

// GetDataProvider returns the configured data provider.
func (c *Config) GetDataProvider() data.Provider {
	return c.dataProvider
}

// SetDataProvider sets the data provider.
func (c *Config) SetDataProvider(provider data.Provider) {
	c.dataProvider = provider
}

// GetLoader returns the configured loader.
func (c *Config) GetLoader() loader.Loader {
	return c.loader
}

// GetCompilerOptions returns the machine-specific compiler options.
func (c *Config) GetCompilerOptions() any {
	return c.compilerOptions
}

// SetCompilerOptions sets the machine-specific compiler options.
func (c *Config) SetCompilerOptions(options any) {
	c.compilerOptions = options
}
