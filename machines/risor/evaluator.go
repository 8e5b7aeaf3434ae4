package risor

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	risorLib "github.com/risor-io/risor"
	risorCompiler "github.com/risor-io/risor/compiler"
	"github.com/tmorri/go-scopeval/engine"
	"github.com/tmorri/go-scopeval/execution/data"
	"github.com/tmorri/go-scopeval/execution/script"
	"github.com/tmorri/go-scopeval/internal/helpers"
)

// Evaluator runs compiled Risor bytecode with the binding context's entries
// as VM globals. Each Eval call builds its own global set; nothing persists
// in the VM between calls.
type Evaluator struct {
	execUnit *script.ExecutableUnit

	logHandler slog.Handler
	logger     *slog.Logger
}

// NewEvaluator creates an Evaluator for the given executable unit.
func NewEvaluator(handler slog.Handler, execUnit *script.ExecutableUnit) *Evaluator {
	handler, logger := helpers.SetupLogger(handler, "risor", "Evaluator")

	return &Evaluator{
		execUnit:   execUnit,
		logHandler: handler,
		logger:     logger,
	}
}

func (be *Evaluator) String() string {
	return "risor.Evaluator"
}

// loadBindings retrieves the binding context from the unit's data provider.
func (be *Evaluator) loadBindings(ctx context.Context) (map[string]any, error) {
	logger := be.logger.WithGroup("loadBindings")

	if be.execUnit == nil || be.execUnit.GetDataProvider() == nil {
		logger.WarnContext(ctx, "no data provider available, using empty binding context")
		return make(map[string]any), nil
	}

	bindings, err := be.execUnit.GetDataProvider().GetData(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "failed to get binding context from provider", "error", err)
		return nil, err
	}
	logger.DebugContext(ctx, "binding context loaded", "names", len(bindings))
	return bindings, nil
}

// exec runs the bytecode with the given options.
func (be *Evaluator) exec(
	ctx context.Context,
	bytecode *risorCompiler.Code,
	options ...risorLib.Option,
) (*execResult, error) {
	startTime := time.Now()
	result, err := risorLib.EvalCode(ctx, bytecode, options...)
	execTime := time.Since(startTime)

	if err != nil {
		return nil, fmt.Errorf("risor execution error: %w", err)
	}
	return newEvalResult(be.logHandler, result, execTime, ""), nil
}

// Eval evaluates the compiled bytecode against the current binding context.
func (be *Evaluator) Eval(ctx context.Context) (engine.EvaluatorResponse, error) {
	logger := be.logger.WithGroup("Eval")
	if be.execUnit == nil {
		return nil, fmt.Errorf("executable unit is nil")
	}
	if be.execUnit.GetContent() == nil {
		return nil, fmt.Errorf("content is nil")
	}

	bytecode := be.execUnit.GetContent().GetByteCode()
	if bytecode == nil {
		return nil, ErrBytecodeNil
	}
	risorByteCode, ok := bytecode.(*risorCompiler.Code)
	if !ok {
		return nil, fmt.Errorf("invalid bytecode type: expected *risorCompiler.Code, got %T", bytecode)
	}

	exeID := be.execUnit.GetID()
	if exeID == "" {
		return nil, fmt.Errorf("execution ID is empty")
	}
	logger = logger.With("exeID", exeID)

	rawBindings, err := be.loadBindings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get binding context: %w", err)
	}

	// Fail fast on bad names before anything executes.
	if err := data.ValidateBindingNames(rawBindings); err != nil {
		return nil, err
	}

	result, err := be.exec(ctx, risorByteCode, convertToRisorOptions(rawBindings)...)
	if err != nil {
		return nil, fmt.Errorf("execution error: %w", err)
	}
	result.exeID = exeID

	if result.Object == nil {
		logger.Warn("result object is nil")
		return result, nil
	}

	switch result.Object.Type() {
	case "error":
		return result, fmt.Errorf("error returned from expression: %s", result.Inspect())
	case "function":
		return result, fmt.Errorf("function object returned from expression: %s", result.Inspect())
	}

	logger.DebugContext(ctx, "evaluation complete")
	return result, nil
}

// AddDataToContext stages per-call bindings on the context for evaluators
// whose provider reads from it.
func (be *Evaluator) AddDataToContext(
	ctx context.Context,
	d ...map[string]any,
) (context.Context, error) {
	logger := be.logger.WithGroup("AddDataToContext")

	if be.execUnit == nil || be.execUnit.GetDataProvider() == nil {
		return ctx, fmt.Errorf("no data provider available")
	}
	return data.AddDataToContextHelper(ctx, logger, be.execUnit.GetDataProvider(), d...)
}
