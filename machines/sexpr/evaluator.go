package sexpr

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/tmorri/go-scopeval/engine"
	"github.com/tmorri/go-scopeval/execution/data"
	"github.com/tmorri/go-scopeval/execution/script"
	"github.com/tmorri/go-scopeval/internal/helpers"
	sexprLang "github.com/tmorri/go-scopeval/sexpr"
)

// Evaluator runs parsed s-expressions against per-call binding contexts.
// The binding context from the unit's data provider becomes a scope frame
// over a fresh global environment; the frame is discarded when Eval returns,
// so no evaluation can leak bindings into another.
type Evaluator struct {
	execUnit *script.ExecutableUnit

	logHandler slog.Handler
	logger     *slog.Logger
}

// NewEvaluator creates an Evaluator for the given executable unit.
func NewEvaluator(handler slog.Handler, execUnit *script.ExecutableUnit) *Evaluator {
	handler, logger := helpers.SetupLogger(handler, "sexpr", "Evaluator")
	return &Evaluator{
		execUnit:   execUnit,
		logHandler: handler,
		logger:     logger,
	}
}

func (be *Evaluator) String() string {
	return "sexpr.Evaluator"
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

// convertBindings validates every context key and converts the values into
// the expression representation. Validation is fail-fast: a bad key means
// nothing is evaluated.
func convertBindings(bindings map[string]any) (map[sexprLang.Symbol]sexprLang.Value, error) {
	if err := data.ValidateBindingNames(bindings); err != nil {
		return nil, err
	}

	converted := make(map[sexprLang.Symbol]sexprLang.Value, len(bindings))
	for name, v := range bindings {
		if !sexprLang.IsValidName(name) {
			return nil, &sexprLang.BindingError{Name: name, Msg: "not a valid symbol"}
		}
		value, err := sexprLang.ToValue(v)
		if err != nil {
			return nil, fmt.Errorf("failed to convert binding %q: %w", name, err)
		}
		converted[sexprLang.Symbol(name)] = value
	}
	return converted, nil
}

// Eval evaluates the compiled forms with the current binding context.
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
	forms, ok := bytecode.([]sexprLang.Value)
	if !ok {
		return nil, fmt.Errorf("invalid bytecode type: expected []sexpr.Value, got %T", bytecode)
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

	bindings, err := convertBindings(rawBindings)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	startTime := time.Now()
	result, err := evalForms(bindings, forms)
	execTime := time.Since(startTime)
	if err != nil {
		return nil, err
	}

	logger.DebugContext(ctx, "evaluation complete", "execTime", execTime)
	return newEvalResult(be.logHandler, result, execTime, exeID), nil
}

// evalForms builds the per-call scope and evaluates every form, returning
// the value of the last one.
func evalForms(bindings map[sexprLang.Symbol]sexprLang.Value, forms []sexprLang.Value) (sexprLang.Value, error) {
	frame := sexprLang.NewEnclosedEnv(sexprLang.GlobalEnv())
	for name, v := range bindings {
		frame.Set(name, v)
	}
	return sexprLang.EvalProgram(forms, frame)
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
