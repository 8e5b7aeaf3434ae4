package starlark

import (
	"fmt"
	"log/slog"
	"time"

	starlarkLib "go.starlark.net/starlark"

	"github.com/tmorri/go-scopeval/execution/data"
	"github.com/tmorri/go-scopeval/internal/helpers"
)

// execResult wraps a starlark.Value as an engine response.
type execResult struct {
	starlarkLib.Value
	execTime time.Duration
	exeID    string
	logger   *slog.Logger
}

func newEvalResult(handler slog.Handler, obj starlarkLib.Value, execTime time.Duration, exeID string) *execResult {
	handler, _ = helpers.SetupLogger(handler, "starlark", "")

	if obj == nil {
		obj = starlarkLib.None
	}

	return &execResult{
		Value:    obj,
		execTime: execTime,
		exeID:    exeID,
		logger:   slog.New(handler.WithGroup("execResult")),
	}
}

func (r *execResult) String() string {
	return fmt.Sprintf(
		"ExecResult{Type: %s, Value: %v, ExecTime: %s, ExeID: %s}",
		r.Type(), r.Value, r.GetExecTime(), r.GetExeID())
}

func (r *execResult) Type() data.Types {
	switch r.Value.Type() {
	case "NoneType":
		return data.NONE
	case "bool":
		return data.BOOL
	case "int":
		return data.INT
	case "float":
		return data.FLOAT
	case "string":
		return data.STRING
	case "list", "tuple":
		return data.LIST
	case "dict":
		return data.MAP
	case "set":
		return data.SET
	case "function", "builtin_function_or_method":
		return data.FUNCTION
	default:
		r.logger.Error("unknown type", "type", r.Value.Type())
		return data.ERROR
	}
}

func (r *execResult) GetExeID() string {
	return r.exeID
}

func (r *execResult) GetExecTime() string {
	return r.execTime.String()
}

func (r *execResult) Inspect() string {
	return r.Value.String()
}

// Interface converts the Starlark value to a native Go value.
func (r *execResult) Interface() any {
	v, err := convertStarlarkValueToInterface(r.Value)
	if err != nil {
		r.logger.Error("failed to convert starlark value", "error", err)
		return nil
	}
	return v
}
