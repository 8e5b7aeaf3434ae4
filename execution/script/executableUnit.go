package script

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/tmorri/go-scopeval/execution/data"
	"github.com/tmorri/go-scopeval/execution/script/loader"
	"github.com/tmorri/go-scopeval/internal/helpers"
	machineTypes "github.com/tmorri/go-scopeval/machines/types"
)

const checksumLength = 12

// ExecutableUnit is one compiled expression bundled with the data provider
// that will supply its binding contexts. It is the compile-once half of the
// compile-once, evaluate-many pattern: the unit is immutable after
// construction, and every Eval against it receives a fresh binding context
// from the provider.
type ExecutableUnit struct {
	// ID identifies this unit, by default a truncated checksum of the source.
	ID string

	// CreatedAt records when the unit was built.
	CreatedAt time.Time

	// Loader supplied the expression source.
	Loader loader.Loader

	// Compiler validated and compiled the source.
	Compiler Compiler

	// Content is the compiled expression.
	Content ExecutableContent

	// DataProvider supplies the binding context for each evaluation.
	DataProvider data.Provider

	logHandler slog.Handler
	logger     *slog.Logger
}

// NewExecutableUnit loads the source through ldr, compiles it, and bundles
// the result with dataProvider.
func NewExecutableUnit(
	handler slog.Handler,
	unitID string,
	ldr loader.Loader,
	compiler Compiler,
	dataProvider data.Provider,
) (*ExecutableUnit, error) {
	handler, logger := helpers.SetupLogger(handler, "script", "ExecutableUnit")

	if compiler == nil {
		return nil, ErrCompilerNil
	}
	if ldr == nil {
		return nil, ErrLoaderNil
	}

	reader, err := ldr.GetReader()
	if err != nil {
		return nil, fmt.Errorf("failed to get reader from loader: %w", err)
	}

	content, err := compiler.Compile(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompileFailed, err)
	}

	if unitID == "" {
		unitID = helpers.SHA256(content.GetSource())
		if len(unitID) > checksumLength {
			unitID = unitID[:checksumLength]
		}
	}

	if dataProvider == nil {
		dataProvider = data.NewStaticProvider(nil)
	}

	return &ExecutableUnit{
		ID:           unitID,
		CreatedAt:    time.Now(),
		Loader:       ldr,
		Compiler:     compiler,
		Content:      content,
		DataProvider: dataProvider,
		logHandler:   handler,
		logger:       logger.With("ID", unitID),
	}, nil
}

func (exe *ExecutableUnit) String() string {
	return fmt.Sprintf("ExecutableUnit{ID: %s, CreatedAt: %s, Loader: %s}",
		exe.ID, exe.CreatedAt, exe.Loader)
}

// GetID returns the unit's identifier.
func (exe *ExecutableUnit) GetID() string {
	return exe.ID
}

// GetContent returns the compiled expression.
func (exe *ExecutableUnit) GetContent() ExecutableContent {
	return exe.Content
}

// GetCreatedAt returns the time the unit was built.
func (exe *ExecutableUnit) GetCreatedAt() time.Time {
	return exe.CreatedAt
}

// GetMachineType returns the engine the unit is compiled for.
func (exe *ExecutableUnit) GetMachineType() machineTypes.Type {
	return exe.Content.GetMachineType()
}

// GetCompiler returns the compiler used to build the unit.
func (exe *ExecutableUnit) GetCompiler() Compiler {
	return exe.Compiler
}

// GetLoader returns the loader that supplied the source.
func (exe *ExecutableUnit) GetLoader() loader.Loader {
	return exe.Loader
}

// GetDataProvider returns the provider supplying binding contexts.
func (exe *ExecutableUnit) GetDataProvider() data.Provider {
	return exe.DataProvider
}
