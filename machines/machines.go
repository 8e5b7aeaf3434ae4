// Package machines builds engine-specific compilers and evaluators behind
// the neutral interfaces in engine and execution/script.
package machines

import (
	"fmt"
	"log/slog"

	"github.com/tmorri/go-scopeval/engine"
	"github.com/tmorri/go-scopeval/execution/script"
	"github.com/tmorri/go-scopeval/machines/risor"
	"github.com/tmorri/go-scopeval/machines/sexpr"
	"github.com/tmorri/go-scopeval/machines/starlark"
	"github.com/tmorri/go-scopeval/machines/types"
)

// NewCompiler creates a compiler for the given machine type. compilerOptions
// is machine-specific; machines that do not take options accept nil.
func NewCompiler(
	handler slog.Handler,
	machineType types.Type,
	compilerOptions any,
) (script.Compiler, error) {
	switch machineType {
	case types.SExpr:
		return sexpr.NewCompiler(handler), nil
	case types.Starlark:
		opts, err := castCompilerOptions[starlark.CompilerOptions](compilerOptions)
		if err != nil {
			return nil, fmt.Errorf("starlark compiler: %w", err)
		}
		return starlark.NewCompiler(handler, opts), nil
	case types.Risor:
		opts, err := castCompilerOptions[risor.CompilerOptions](compilerOptions)
		if err != nil {
			return nil, fmt.Errorf("risor compiler: %w", err)
		}
		return risor.NewCompiler(handler, opts), nil
	default:
		return nil, fmt.Errorf("unsupported machine type: %s", machineType)
	}
}

// NewEvaluator creates an evaluator matching the machine type the unit was
// compiled for.
func NewEvaluator(
	handler slog.Handler,
	execUnit *script.ExecutableUnit,
) (engine.EvaluatorWithPrep, error) {
	if execUnit == nil {
		return nil, fmt.Errorf("executable unit is nil")
	}

	switch machineType := execUnit.GetMachineType(); machineType {
	case types.SExpr:
		return sexpr.NewEvaluator(handler, execUnit), nil
	case types.Starlark:
		return starlark.NewEvaluator(handler, execUnit), nil
	case types.Risor:
		return risor.NewEvaluator(handler, execUnit), nil
	default:
		return nil, fmt.Errorf("unsupported machine type: %s", machineType)
	}
}

func castCompilerOptions[T any](options any) (T, error) {
	var zero T
	if options == nil {
		return zero, nil
	}
	typed, ok := options.(T)
	if !ok {
		return zero, fmt.Errorf("invalid compiler options type: %T", options)
	}
	return typed, nil
}
