package risor

import (
	"context"
	"errors"
	"fmt"

	risorLib "github.com/risor-io/risor"
	risorCompiler "github.com/risor-io/risor/compiler"
	risorErrors "github.com/risor-io/risor/errz"
	risorParser "github.com/risor-io/risor/parser"
)

// compile parses and compiles Risor source into bytecode.
func compile(source *string, options ...risorCompiler.Option) (*risorCompiler.Code, error) {
	if source == nil {
		return nil, ErrContentNil
	}

	ast, err := risorParser.Parse(context.Background(), *source)
	if err != nil {
		errMsg := err.Error()
		var friendlyErr risorErrors.FriendlyError
		if errors.As(err, &friendlyErr) {
			errMsg = friendlyErr.FriendlyErrorMessage()
		}
		return nil, fmt.Errorf("compilation: %s", errMsg)
	}

	return risorCompiler.Compile(ast, options...)
}

// compileWithGlobalNames compiles source that references the given names as
// globals. The binding context supplies their values at evaluation time.
func compileWithGlobalNames(source *string, globals []string) (*risorCompiler.Code, error) {
	cfg := risorLib.NewConfig()
	globalNames := append(cfg.GlobalNames(), globals...)

	options := []risorCompiler.Option{
		risorCompiler.WithGlobalNames(globalNames),
	}
	return compile(source, options...)
}
