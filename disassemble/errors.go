package disassemble

import "errors"

var (
	// ErrStuck indicates the reachable state space around a sub-assembly
	// was fully explored (within budget) and no sequence of movements
	// separates it — a genuine "no disassembly exists" outcome, not a
	// search giving up early.
	ErrStuck = errors.New("disassemble: sub-assembly admits no separating sequence of moves")

	// ErrInconclusive indicates the non-separating search exhausted its
	// node budget before either finding a separating move or exhausting
	// the reachable state space. Distinct from ErrStuck: the caller
	// cannot conclude the sub-assembly is actually undisassemblable.
	ErrInconclusive = errors.New("disassemble: node budget exhausted before the sub-assembly could be resolved")

	// ErrSeparationNotFound is an internal-invariant failure of
	// SpaceSeparatedParts: two colliding parts shared no recorded
	// separation event in their ancestry, which should be impossible for
	// any Disassembly actually produced by this package.
	ErrSeparationNotFound = errors.New("disassemble: no recorded separation event between two colliding parts")
)
