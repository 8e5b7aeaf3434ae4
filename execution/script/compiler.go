package script

import "io"

// Compiler validates expression source before any evaluation. It parses,
// and for engines with a compile step, compiles the source to bytecode.
// Valid source is returned as ExecutableContent.
type Compiler interface {
	// Compile reads the expression source and returns it in executable form.
	// The reader is consumed and closed. Errors cover syntax problems and
	// references the engine can prove undefined at compile time.
	Compile(reader io.ReadCloser) (ExecutableContent, error)
}
