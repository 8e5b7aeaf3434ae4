// Package scopeval evaluates expressions against explicit, per-call binding
// contexts. A binding context is a plain map of names to values; the
// evaluator makes those names visible to one evaluation and to nothing else.
// Three engines sit behind the same interface: the native s-expression
// engine, Starlark, and Risor.
package scopeval

import (
	"context"
	"fmt"

	"github.com/tmorri/go-scopeval/engine"
	"github.com/tmorri/go-scopeval/execution/data"
	"github.com/tmorri/go-scopeval/execution/script"
	"github.com/tmorri/go-scopeval/execution/script/loader"
	"github.com/tmorri/go-scopeval/machines"
	risorMachine "github.com/tmorri/go-scopeval/machines/risor"
	starlarkMachine "github.com/tmorri/go-scopeval/machines/starlark"
	"github.com/tmorri/go-scopeval/machines/types"
	"github.com/tmorri/go-scopeval/options"
)

// EvaluatorWrapper pairs a machine-specific evaluator with its executable
// unit, supporting the compile-once, evaluate-many pattern: the same wrapper
// can be re-run with a different binding context per call, or re-bound to a
// different data provider with WithExecutableUnit.
type EvaluatorWrapper struct {
	delegate engine.EvaluatorWithPrep
	execUnit *script.ExecutableUnit
}

// NewEvaluatorWrapper creates a new evaluator wrapper.
func NewEvaluatorWrapper(
	delegate engine.EvaluatorWithPrep,
	execUnit *script.ExecutableUnit,
) *EvaluatorWrapper {
	return &EvaluatorWrapper{
		delegate: delegate,
		execUnit: execUnit,
	}
}

// Eval implements engine.Evaluator.
func (e *EvaluatorWrapper) Eval(ctx context.Context) (engine.EvaluatorResponse, error) {
	return e.delegate.Eval(ctx)
}

// AddDataToContext implements engine.DataPreparer.
func (e *EvaluatorWrapper) AddDataToContext(
	ctx context.Context,
	d ...map[string]any,
) (context.Context, error) {
	return e.delegate.AddDataToContext(ctx, d...)
}

// GetExecutableUnit returns the stored executable unit.
func (e *EvaluatorWrapper) GetExecutableUnit() *script.ExecutableUnit {
	return e.execUnit
}

// NewSExprEvaluator creates an evaluator for native s-expressions.
func NewSExprEvaluator(opts ...options.Option) (engine.EvaluatorWithPrep, error) {
	return newEvaluator(types.SExpr, opts...)
}

// NewStarlarkEvaluator creates an evaluator for Starlark expressions.
func NewStarlarkEvaluator(opts ...options.Option) (engine.EvaluatorWithPrep, error) {
	return newEvaluator(types.Starlark, opts...)
}

// NewRisorEvaluator creates an evaluator for Risor expressions.
func NewRisorEvaluator(opts ...options.Option) (engine.EvaluatorWithPrep, error) {
	return newEvaluator(types.Risor, opts...)
}

func newEvaluator(machineType types.Type, opts ...options.Option) (engine.EvaluatorWithPrep, error) {
	cfg := options.DefaultConfig(machineType)

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("error applying option: %w", err)
		}
	}
	if err := options.WithDefaults()(cfg); err != nil {
		return nil, fmt.Errorf("error applying defaults: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return createEvaluator(cfg)
}

func createEvaluator(cfg *options.Config) (engine.EvaluatorWithPrep, error) {
	compiler, err := machines.NewCompiler(cfg.GetHandler(), cfg.GetMachineType(), cfg.GetCompilerOptions())
	if err != nil {
		return nil, err
	}

	execUnitID := ""
	if sourceURL := cfg.GetLoader().GetSourceURL(); sourceURL != nil {
		execUnitID = sourceURL.String()
	}

	execUnit, err := script.NewExecutableUnit(
		cfg.GetHandler(),
		execUnitID,
		cfg.GetLoader(),
		compiler,
		cfg.GetDataProvider(),
	)
	if err != nil {
		return nil, err
	}

	machineEvaluator, err := machines.NewEvaluator(cfg.GetHandler(), execUnit)
	if err != nil {
		return nil, err
	}
	return NewEvaluatorWrapper(machineEvaluator, execUnit), nil
}

// FromSExprString creates an s-expression evaluator from source text.
func FromSExprString(content string, opts ...options.Option) (engine.EvaluatorWithPrep, error) {
	l, err := loader.NewFromString(content)
	if err != nil {
		return nil, err
	}
	allOpts := append([]options.Option{options.WithLoader(l)}, opts...)
	return NewSExprEvaluator(allOpts...)
}

// FromStarlarkString creates a Starlark evaluator from source text. The
// expression may reference any name listed in bindingNames; the values
// arrive through the data provider at evaluation time.
func FromStarlarkString(content string, bindingNames []string, opts ...options.Option) (engine.EvaluatorWithPrep, error) {
	l, err := loader.NewFromString(content)
	if err != nil {
		return nil, err
	}
	allOpts := append([]options.Option{
		options.WithLoader(l),
		options.WithCompilerOptions(&starlarkMachine.BasicCompilerOptions{Globals: bindingNames}),
	}, opts...)
	return NewStarlarkEvaluator(allOpts...)
}

// FromRisorString creates a Risor evaluator from source text. The expression
// may reference any name listed in bindingNames; the values arrive through
// the data provider at evaluation time.
func FromRisorString(content string, bindingNames []string, opts ...options.Option) (engine.EvaluatorWithPrep, error) {
	l, err := loader.NewFromString(content)
	if err != nil {
		return nil, err
	}
	allOpts := append([]options.Option{
		options.WithLoader(l),
		options.WithCompilerOptions(&risorMachine.BasicCompilerOptions{Globals: bindingNames}),
	}, opts...)
	return NewRisorEvaluator(allOpts...)
}

// FromSExprFile creates an s-expression evaluator from a file on disk.
func FromSExprFile(path string, opts ...options.Option) (engine.EvaluatorWithPrep, error) {
	l, err := loader.NewFromDisk(path)
	if err != nil {
		return nil, err
	}
	allOpts := append([]options.Option{options.WithLoader(l)}, opts...)
	return NewSExprEvaluator(allOpts...)
}

// FromStarlarkFile creates a Starlark evaluator from a file on disk.
func FromStarlarkFile(path string, bindingNames []string, opts ...options.Option) (engine.EvaluatorWithPrep, error) {
	l, err := loader.NewFromDisk(path)
	if err != nil {
		return nil, err
	}
	allOpts := append([]options.Option{
		options.WithLoader(l),
		options.WithCompilerOptions(&starlarkMachine.BasicCompilerOptions{Globals: bindingNames}),
	}, opts...)
	return NewStarlarkEvaluator(allOpts...)
}

// FromRisorFile creates a Risor evaluator from a file on disk.
func FromRisorFile(path string, bindingNames []string, opts ...options.Option) (engine.EvaluatorWithPrep, error) {
	l, err := loader.NewFromDisk(path)
	if err != nil {
		return nil, err
	}
	allOpts := append([]options.Option{
		options.WithLoader(l),
		options.WithCompilerOptions(&risorMachine.BasicCompilerOptions{Globals: bindingNames}),
	}, opts...)
	return NewRisorEvaluator(allOpts...)
}

// EvalSExpr evaluates s-expression source once against the given binding
// context and returns the result as a native Go value.
func EvalSExpr(ctx context.Context, bindings map[string]any, src string) (any, error) {
	evaluator, err := FromSExprString(src,
		options.WithDataProvider(data.NewStaticProvider(bindings)),
	)
	if err != nil {
		return nil, err
	}
	return evalToInterface(ctx, evaluator)
}

// EvalStarlark evaluates Starlark source once against the given binding
// context and returns the result as a native Go value.
func EvalStarlark(ctx context.Context, bindings map[string]any, src string) (any, error) {
	evaluator, err := FromStarlarkString(src, bindingNames(bindings),
		options.WithDataProvider(data.NewStaticProvider(bindings)),
	)
	if err != nil {
		return nil, err
	}
	return evalToInterface(ctx, evaluator)
}

// EvalRisor evaluates Risor source once against the given binding context
// and returns the result as a native Go value.
func EvalRisor(ctx context.Context, bindings map[string]any, src string) (any, error) {
	evaluator, err := FromRisorString(src, bindingNames(bindings),
		options.WithDataProvider(data.NewStaticProvider(bindings)),
	)
	if err != nil {
		return nil, err
	}
	return evalToInterface(ctx, evaluator)
}

func evalToInterface(ctx context.Context, evaluator engine.Evaluator) (any, error) {
	response, err := evaluator.Eval(ctx)
	if err != nil {
		return nil, err
	}
	return response.Interface(), nil
}

func bindingNames(bindings map[string]any) []string {
	names := make([]string, 0, len(bindings))
	for name := range bindings {
		names = append(names, name)
	}
	return names
}
