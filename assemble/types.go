package assemble

import (
	"github.com/katalvlaran/puzzlecore/piece"
	"github.com/katalvlaran/puzzlecore/telemetry"
)

// PieceCount is a {min,max} range of copies of a piece usable in a
// solution. A plain integer count n is {Min: n, Max: n}.
type PieceCount struct {
	Min, Max int
}

// SymmetryMode selects how much of the goal's symmetry the solver
// quotients out of its solution set by restricting one piece's rotations.
type SymmetryMode int

const (
	SymmetryNone SymmetryMode = iota
	SymmetryRotation
	SymmetryRotationMirror
)

// Problem is spec.md §3's Problem: a goal piece id, the pieces available
// (including the goal piece itself, selected by GoalPieceID), a per-piece
// count range, a symmetry mode, and the two disassembly flags.
//
// Invariants the caller is responsible for (assemble neither checks nor
// repairs them): GoalPieceID never appears as a key in Counts; no
// zero-count entries exist in Counts.
type Problem struct {
	GoalPieceID int
	Pieces      []piece.Piece
	Counts      map[int]PieceCount

	Symmetry SymmetryMode

	Disassemble         bool
	RemoveNoDisassembly bool
}

// Options configures resource bounds and observability for one Solve call,
// mirroring the teacher's tsp.Options — a plain configuration struct, not
// a functional-options constructor.
type Options struct {
	// MaxSolutions caps the number of cover solutions considered. 0 means
	// unbounded.
	MaxSolutions int

	// CoverNodeBudget caps the exact-cover search's node count. 0 means
	// unbounded.
	CoverNodeBudget int

	// DisassemblyNodeBudget is forwarded to disassemble.Options.NodeBudget
	// for every solution's disassembly search. 0 means the package
	// default.
	DisassemblyNodeBudget int

	// Callbacks receives advisory progress/log events at phase
	// boundaries (placement enumeration done, cover matrix built, each
	// solution emitted, each disassembly resolved). Never consulted for
	// correctness.
	Callbacks telemetry.Callbacks
}
