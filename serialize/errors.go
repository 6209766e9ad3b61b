package serialize

import "errors"

var (
	// ErrUnknownSymmetryReduction indicates a ProblemDTO's symmetryReduction
	// field was not one of "none", "rotation", "rotation+mirror".
	ErrUnknownSymmetryReduction = errors.New("serialize: unrecognized symmetryReduction value")

	// ErrMalformedStep indicates a serialized Disassembly step string did not
	// match the "pieces=c1,c2 transform=T [repeat=N] [separates]" grammar.
	ErrMalformedStep = errors.New("serialize: malformed disassembly step string")
)
