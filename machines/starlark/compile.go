package starlark

import (
	"fmt"

	"go.starlark.net/syntax"

	starlarkLib "go.starlark.net/starlark"
)

// compile parses and compiles Starlark source into a program. The globals
// dict only needs names, not values: it tells the resolver which identifiers
// will be predeclared at evaluation time.
func compile(source []byte, opts *syntax.FileOptions, globals starlarkLib.StringDict) (*starlarkLib.Program, error) {
	if source == nil {
		return nil, ErrContentNil
	}
	if opts == nil {
		opts = &syntax.FileOptions{}
	}

	merged := standardModules()
	for k, v := range globals {
		merged[k] = v
	}

	f, err := opts.Parse("", source, 0)
	if err != nil {
		return nil, fmt.Errorf("compilation error: %w", err)
	}

	prog, err := starlarkLib.FileProgram(f, merged.Has)
	if err != nil {
		return nil, fmt.Errorf("compilation error: %w", err)
	}
	return prog, nil
}

// compileWithGlobalNames compiles source that references the given names as
// globals. The binding context supplies their values at evaluation time, so
// here they are declared with placeholder None values.
func compileWithGlobalNames(source []byte, globals []string) (*starlarkLib.Program, error) {
	opts := &syntax.FileOptions{
		GlobalReassign: true,
	}

	stdModules := standardModules()
	predeclared := make(starlarkLib.StringDict, len(globals))
	for _, name := range globals {
		if stdModules.Has(name) {
			continue
		}
		predeclared[name] = starlarkLib.None
	}
	return compile(source, opts, predeclared)
}
