package risor

import (
	"fmt"
	"log/slog"
	"time"

	risorObject "github.com/risor-io/risor/object"

	"github.com/tmorri/go-scopeval/execution/data"
	"github.com/tmorri/go-scopeval/internal/helpers"
)

// execResult wraps a risor object.Object as an engine response. Inspect and
// Interface come from the embedded object.
type execResult struct {
	risorObject.Object
	execTime time.Duration
	exeID    string
	logger   *slog.Logger
}

func newEvalResult(handler slog.Handler, obj risorObject.Object, execTime time.Duration, exeID string) *execResult {
	handler, _ = helpers.SetupLogger(handler, "risor", "")

	return &execResult{
		Object:   obj,
		execTime: execTime,
		exeID:    exeID,
		logger:   slog.New(handler.WithGroup("execResult")),
	}
}

func (r *execResult) String() string {
	return fmt.Sprintf(
		"ExecResult{Type: %s, Value: %v, ExecTime: %s, ExeID: %s}",
		r.Type(), r.Object, r.GetExecTime(), r.GetExeID())
}

func (r *execResult) Type() data.Types {
	return data.Types(r.Object.Type())
}

func (r *execResult) GetExeID() string {
	return r.exeID
}

func (r *execResult) GetExecTime() string {
	return r.execTime.String()
}
