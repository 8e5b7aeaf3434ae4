package risor

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/tmorri/go-scopeval/execution/script"
	"github.com/tmorri/go-scopeval/internal/helpers"
)

// Compiler compiles Risor source to bytecode. Binding names expressions may
// reference must be declared up front; their values arrive per evaluation.
type Compiler struct {
	globals    []string
	logHandler slog.Handler
	logger     *slog.Logger
}

// CompilerOptions configures the Risor compiler.
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

// NewCompiler creates a Risor compiler declaring the binding names from
// compilerOptions.
func NewCompiler(handler slog.Handler, compilerOptions CompilerOptions) *Compiler {
	handler, logger := helpers.SetupLogger(handler, "risor", "Compiler")

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
	return "risor.Compiler"
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

	sourceText := string(source)
	bytecode, err := compileWithGlobalNames(&sourceText, c.globals)
	if err != nil {
		c.logger.Warn("compilation failed", "error", err)
		return nil, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}
	if bytecode == nil {
		return nil, ErrBytecodeNil
	}

	exec := newExecutable(source, bytecode)
	if exec == nil {
		return nil, ErrExecCreationFailed
	}

	c.logger.Debug("compilation complete")
	return exec, nil
}
