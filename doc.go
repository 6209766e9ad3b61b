// Package puzzlecore is the computational core of a mechanical-puzzle
// design toolkit: an assembly solver, a symmetry reducer, and a
// disassembly analyser, built on a pluggable grid abstraction.
//
// 🚀 What is puzzlecore?
//
//	A pure-Go library that brings together:
//
//	  • Exact-cover-with-ranges solving: an extended Dancing Links engine
//	    (cover) that admits optional goal voxels and per-piece count ranges.
//	  • Symmetry reduction: restricting one eligible piece's candidate
//	    rotations so the solver doesn't enumerate congruent solutions twice.
//	  • Disassembly analysis: a bounded movement-tree search (movement,
//	    disassemble) that finds a sequence of rigid motions separating an
//	    assembly's pieces, reordering and space-separating the result.
//	  • Grid independence: every geometric question (adjacency, rotation,
//	    translation, voxel/transform string syntax) goes through the Grid
//	    interface, so the solver never hard-codes a coordinate system.
//
// ✨ Why puzzlecore?
//
//   - Grid-agnostic    — cubic, square and rhombic grids ship today;
//     a new grid is one Grid implementation away.
//   - Deterministic    — no goroutines on the solve path; every result is
//     reproducible given the same Problem and Options.
//   - Composable       — assemble.Solve is the facade, but placement,
//     symmetry, cover, movement and disassemble are usable standalone.
//
// Packages, grouped by what they do:
//
//	grid/, grid/cubic/, grid/square/, grid/rhombic/ — geometry providers
//	piece/, placement/, symmetry/                   — piece model and enumeration
//	cover/                                           — the exact-cover engine
//	assemble/, solution/                             — the solver facade and its result type
//	movement/, disassemble/                          — disassembly search
//	dedup/                                           — symmetric-assembly deduplication
//	serialize/                                       — the YAML persistence boundary
//	telemetry/                                       — advisory progress/log callbacks
//	cmd/puzzlecore-solve/                            — a thin CLI smoke harness
//
// Quick example: tiling a 2x2 square with two identical dominoes.
//
//	g := square.New()
//	sols, err := assemble.Solve(g, assemble.Problem{
//	    GoalPieceID: 0,
//	    Pieces:      []piece.Piece{goal, domino},
//	    Counts:      map[int]assemble.PieceCount{1: {Min: 2, Max: 2}},
//	}, assemble.Options{})
//
// See the Example functions in assemble/example_test.go and
// dedup/example_test.go for complete, runnable scenarios and SPEC_FULL.md
// for the full component design.
//
//	go get github.com/katalvlaran/puzzlecore
package puzzlecore
