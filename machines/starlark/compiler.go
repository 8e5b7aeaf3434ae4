package starlark

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/tmorri/go-scopeval/execution/script"
	"github.com/tmorri/go-scopeval/internal/helpers"
)

// Compiler compiles Starlark source to a program. The expected binding
// names must be declared up front so the resolver accepts references to
// them; their values arrive per evaluation.
type Compiler struct {
	globals    []string
	logHandler slog.Handler
	logger     *slog.Logger
}

// CompilerOptions configures the Starlark compiler.
type CompilerOptions interface {
	// GetGlobals returns the binding names expressions may reference.
	GetGlobals() []string
}

// BasicCompilerOptions is the plain implementation of CompilerOptions.
type BasicCompilerOptions struct {
	Globals []string
}

// GetGlobals returns the declared binding names.
func (o *BasicCompilerOptions) GetGlobals() []string {
	return o.Globals
}

// NewCompiler creates a Starlark compiler declaring the binding names from
// compilerOptions.
func NewCompiler(handler slog.Handler, compilerOptions CompilerOptions) *Compiler {
	handler, logger := helpers.SetupLogger(handler, "starlark", "Compiler")

	var globals []string
	if compilerOptions != nil {
		globals = compilerOptions.GetGlobals()
	}

	return &Compiler{
		globals:    globals,
		logHandler: handler,
		logger:     logger,
	}
}

func (c *Compiler) String() string {
	return "starlark.Compiler"
}

// Compile reads, parses, and compiles the source.
func (c *Compiler) Compile(reader io.ReadCloser) (script.ExecutableContent, error) {
	if reader == nil {
		return nil, ErrContentNil
	}

	source, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read source: %w", err)
	}
	if err := reader.Close(); err != nil {
		return nil, fmt.Errorf("failed to close reader: %w", err)
	}
	return c.compile(source)
}

func (c *Compiler) compile(source []byte) (*executable, error) {
	if len(source) == 0 {
		c.logger.Error("compile called with empty source")
		return nil, ErrContentNil
	}

	program, err := compileWithGlobalNames(source, c.globals)
	if err != nil {
		c.logger.Warn("compilation failed", "error", err)
		return nil, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}
	if program == nil {
		return nil, ErrBytecodeNil
	}

	exec := newExecutable(source, program)
	if exec == nil {
		return nil, ErrExecCreationFailed
	}

	c.logger.Debug("compilation complete")
	return exec, nil
}
