package starlark

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"time"

	"github.com/tmorri/go-scopeval/engine"
	"github.com/tmorri/go-scopeval/execution/data"
	"github.com/tmorri/go-scopeval/execution/script"
	"github.com/tmorri/go-scopeval/internal/helpers"

	starlarkLib "go.starlark.net/starlark"
)

// Evaluator runs a compiled Starlark program with the binding context's
// entries as predeclared globals. The globals exist only in the thread of
// one Eval call; no shared Starlark state survives between calls.
type Evaluator struct {
	// universe is the standard module set visible beneath the bindings
	universe starlarkLib.StringDict

	execUnit *script.ExecutableUnit

	logHandler slog.Handler
	logger     *slog.Logger
}

// NewEvaluator creates an Evaluator for the given executable unit.
func NewEvaluator(handler slog.Handler, execUnit *script.ExecutableUnit) *Evaluator {
	handler, logger := helpers.SetupLogger(handler, "starlark", "Evaluator")

	return &Evaluator{
		universe:   standardModules(),
		execUnit:   execUnit,
		logHandler: handler,
		logger:     logger,
	}
}

func (be *Evaluator) String() string {
	return "starlark.Evaluator"
}

// prepareGlobals merges the universe and the binding context; bindings
// shadow universe entries of the same name.
func (be *Evaluator) prepareGlobals(bindings starlarkLib.StringDict) starlarkLib.StringDict {
	merged := make(starlarkLib.StringDict, len(be.universe)+len(bindings))
	maps.Copy(merged, be.universe)
	maps.Copy(merged, bindings)
	return merged
}

// exec runs the program with the given globals in a fresh thread.
func (be *Evaluator) exec(ctx context.Context, prog *starlarkLib.Program, globals starlarkLib.StringDict) (*execResult, error) {
	logger := be.logger.WithGroup("exec")
	startTime := time.Now()

	thread := &starlarkLib.Thread{
		Name: "eval",
		Print: func(thread *starlarkLib.Thread, msg string) {
			logger.InfoContext(ctx, msg, "starlark-thread", thread.Name)
		},
	}

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			thread.Cancel(ctx.Err().Error())
		case <-done:
		}
	}()

	finalGlobals, err := prog.Init(thread, globals)
	execTime := time.Since(startTime)
	if err != nil {
		return nil, fmt.Errorf("starlark execution error: %w", err)
	}

	// The "_" convention holds the value of the last bare expression; an
	// explicit "result" variable wins over it.
	mainVal := finalGlobals["_"]
	if resultVal, ok := finalGlobals["result"]; ok {
		mainVal = resultVal
	}
	if mainVal == nil {
		mainVal = starlarkLib.None
	}

	logger.DebugContext(ctx, "execution complete", "mainVal", mainVal)
	return newEvalResult(be.logHandler, mainVal, execTime, ""), nil
}

// Eval evaluates the compiled program against the current binding context.
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
	prog, ok := bytecode.(*starlarkLib.Program)
	if !ok {
		return nil, fmt.Errorf("invalid bytecode type: expected *starlark.Program, got %T", bytecode)
	}

	exeID := be.execUnit.GetID()
	if exeID == "" {
		return nil, fmt.Errorf("execution ID is empty")
	}
	logger = logger.With("exeID", exeID)

	var rawBindings map[string]any
	var err error
	if be.execUnit.GetDataProvider() != nil {
		rawBindings, err = be.execUnit.GetDataProvider().GetData(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get binding context: %w", err)
		}
	} else {
		rawBindings = make(map[string]any)
	}

	// Fail fast on bad names before anything executes.
	if err := data.ValidateBindingNames(rawBindings); err != nil {
		return nil, err
	}
	for name := range rawBindings {
		if !isValidIdentifier(name) {
			return nil, fmt.Errorf("%w: %q is not a valid starlark identifier", data.ErrInvalidBindingName, name)
		}
	}

	bindings, err := convertToStringDict(rawBindings)
	if err != nil {
		return nil, fmt.Errorf("failed to convert binding context: %w", err)
	}

	result, err := be.exec(ctx, prog, be.prepareGlobals(bindings))
	if err != nil {
		return nil, fmt.Errorf("execution error: %w", err)
	}
	result.exeID = exeID

	// A function result is called with no arguments; its return value is
	// the evaluation's result.
	if callable, ok := result.Value.(starlarkLib.Callable); ok {
		thread := &starlarkLib.Thread{Name: "func"}
		val, err := starlarkLib.Call(thread, callable, nil, nil)
		if err != nil {
			return nil, fmt.Errorf("error calling function: %w", err)
		}
		val.Freeze()
		return newEvalResult(be.logHandler, val, result.execTime, exeID), nil
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

// isValidIdentifier reports whether name is usable as a Starlark global.
func isValidIdentifier(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		if r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			continue
		}
		if i > 0 && r >= '0' && r <= '9' {
			continue
		}
		return false
	}
	return true
}
