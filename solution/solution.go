// Package solution holds the result shape assemble.Solve returns: one
// Solution per distinct placement of pieces that satisfies a Problem,
// optionally carrying the disassembly sequences found for it.
package solution

import (
	"github.com/katalvlaran/puzzlecore/disassemble"
	"github.com/katalvlaran/puzzlecore/piece"
)

// Solution is one assembly satisfying a Problem, numbered among its
// siblings (1..N, renumbered after any filtering assemble applies).
type Solution struct {
	ID         int
	Placements piece.Assembly

	// Disassemblies holds every disassembly found for Placements. Nil
	// when the Problem didn't request disassembly. A Problem that does
	// request it but finds none (disassemble.ErrStuck or
	// disassemble.ErrInconclusive) also leaves this nil — the caller
	// distinguishes "not requested" from "requested but none found"
	// via the Problem it passed in, not via this field.
	Disassemblies []disassemble.Disassembly
}
