package sexpr

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/tmorri/go-scopeval/execution/data"
	"github.com/tmorri/go-scopeval/internal/helpers"
	sexprLang "github.com/tmorri/go-scopeval/sexpr"
)

// execResult wraps a native expression value as an engine response.
type execResult struct {
	sexprLang.Value
	execTime time.Duration
	exeID    string
	logger   *slog.Logger
}

func newEvalResult(handler slog.Handler, v sexprLang.Value, execTime time.Duration, exeID string) *execResult {
	handler, _ = helpers.SetupLogger(handler, "sexpr", "")

	if v == nil {
		v = sexprLang.Nil{}
	}

	return &execResult{
		Value:    v,
		execTime: execTime,
		exeID:    exeID,
		logger:   slog.New(handler.WithGroup("execResult")),
	}
}

func (r *execResult) String() string {
	return fmt.Sprintf(
		"ExecResult{Type: %s, Value: %s, ExecTime: %s, ExeID: %s}",
		r.Type(), r.Value.String(), r.GetExecTime(), r.GetExeID())
}

func (r *execResult) Type() data.Types {
	switch v := r.Value.(type) {
	case sexprLang.Nil:
		return data.NONE
	case sexprLang.Boolean:
		return data.BOOL
	case sexprLang.Number:
		if v.IsIntegral() {
			return data.INT
		}
		return data.FLOAT
	case sexprLang.String, sexprLang.Keyword:
		return data.STRING
	case sexprLang.Symbol:
		return data.SYMBOL
	case *sexprLang.List:
		return data.LIST
	case *sexprLang.Map:
		return data.MAP
	case sexprLang.Callable:
		return data.FUNCTION
	default:
		r.logger.Error("unknown value type", "type", r.Value.Type())
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

// Interface converts the result to a native Go value.
func (r *execResult) Interface() any {
	v, err := sexprLang.FromValue(r.Value)
	if err != nil {
		r.logger.Error("failed to convert value", "error", err)
		return nil
	}
	return v
}
