package sexpr

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/tmorri/go-scopeval/execution/script"
	"github.com/tmorri/go-scopeval/internal/helpers"
	sexprLang "github.com/tmorri/go-scopeval/sexpr"
)

// Compiler parses s-expression source into the tagged expression tree.
// Parsing is the whole compile step: the engine walks the tree directly.
type Compiler struct {
	logHandler slog.Handler
	logger     *slog.Logger
}

// NewCompiler creates an s-expression compiler.
func NewCompiler(handler slog.Handler) *Compiler {
	handler, logger := helpers.SetupLogger(handler, "sexpr", "Compiler")
	return &Compiler{
		logHandler: handler,
		logger:     logger,
	}
}

func (c *Compiler) String() string {
	return "sexpr.Compiler"
}

// Compile reads and parses the expression source.
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

	forms, err := sexprLang.Parse(string(source))
	if err != nil {
		c.logger.Warn("parse failed", "error", err)
		return nil, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}
	if len(forms) == 0 {
		return nil, ErrBytecodeNil
	}

	exec := newExecutable(source, forms)
	if exec == nil {
		return nil, ErrExecCreationFailed
	}

	c.logger.Debug("compile complete", "forms", len(forms))
	return exec, nil
}
