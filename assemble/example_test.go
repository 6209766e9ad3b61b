package assemble_test

import (
	"fmt"

	"github.com/katalvlaran/puzzlecore/assemble"
	"github.com/katalvlaran/puzzlecore/grid"
	"github.com/katalvlaran/puzzlecore/grid/square"
	"github.com/katalvlaran/puzzlecore/piece"
)

func mustPiece(id int, vs ...square.Voxel) piece.Piece {
	voxels := make([]grid.Voxel, len(vs))
	for i, v := range vs {
		voxels[i] = v
	}
	p, err := piece.New(id, voxels)
	if err != nil {
		panic(err)
	}

	return p
}

// ExampleSolve_twoDominoesFillASquare reproduces spec.md §8 scenario 1: two
// identical 1x2 pieces tiling a 2x2 square has exactly two raw solutions
// (the domino pair can run either horizontally-stacked or vertically-paired
// across the square's two rows/columns).
func ExampleSolve_twoDominoesFillASquare() {
	g := square.New()
	goal := mustPiece(0, square.Voxel{X: 0, Y: 0}, square.Voxel{X: 1, Y: 0}, square.Voxel{X: 0, Y: 1}, square.Voxel{X: 1, Y: 1})
	domino := mustPiece(1, square.Voxel{X: 0, Y: 0}, square.Voxel{X: 1, Y: 0})

	sols, err := assemble.Solve(g, assemble.Problem{
		GoalPieceID: 0,
		Pieces:      []piece.Piece{goal, domino},
		Counts:      map[int]assemble.PieceCount{1: {Min: 2, Max: 2}},
	}, assemble.Options{})
	if err != nil {
		panic(err)
	}

	fmt.Println(len(sols))
	// Output: 2
}

// ExampleSolve_singlePieceTrivialSolve reproduces spec.md §8 scenario 2: a
// goal matched by exactly one candidate piece has exactly one solution and,
// with disassembly requested, no steps (a one-piece assembly is terminal).
func ExampleSolve_singlePieceTrivialSolve() {
	g := square.New()
	shape := []square.Voxel{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}}
	goal := mustPiece(0, shape...)
	onlyPiece := mustPiece(1, shape...)

	sols, err := assemble.Solve(g, assemble.Problem{
		GoalPieceID: 0,
		Pieces:      []piece.Piece{goal, onlyPiece},
		Counts:      map[int]assemble.PieceCount{1: {Min: 1, Max: 1}},
		Disassemble: true,
	}, assemble.Options{})
	if err != nil {
		panic(err)
	}

	fmt.Println(len(sols), len(sols[0].Placements), len(sols[0].Disassemblies[0].Steps))
	// Output: 1 1 0
}

// ExampleSolve_optionalGoalVoxelsAllowPartialCoverage reproduces spec.md §8
// scenario 3: two of the goal's four voxels are marked optional, and a
// single piece covering only the two required voxels is a valid solution.
func ExampleSolve_optionalGoalVoxelsAllowPartialCoverage() {
	g := square.New()
	required := []square.Voxel{{X: 0, Y: 0}, {X: 1, Y: 0}}
	optional := []square.Voxel{{X: 0, Y: 1}, {X: 1, Y: 1}}

	goal := mustPiece(0, append(append([]square.Voxel{}, required...), optional...)...)
	for _, v := range optional {
		goal.SetAttribute(piece.OptionalAttribute, v, true)
	}
	smallPiece := mustPiece(1, required...)

	sols, err := assemble.Solve(g, assemble.Problem{
		GoalPieceID: 0,
		Pieces:      []piece.Piece{goal, smallPiece},
		Counts:      map[int]assemble.PieceCount{1: {Min: 1, Max: 1}},
	}, assemble.Options{})
	if err != nil {
		panic(err)
	}

	fmt.Println(len(sols), len(sols[0].Placements[0].Voxels()))
	// Output: 1 2
}

// ExampleSolve_disassemblySeparatesInTwoMoves reproduces spec.md §8 scenario
// 4: an 8-cell ring (missing its top-middle cell, the opening) plus the
// ring's center. A ring piece tiles the ring cells; a 1x1 piece sits at the
// center, one cell below the opening, and must slide into the opening
// before it clears the ring, so disassembly takes two steps: a
// non-separating slide followed by the separating move out through it.
func ExampleSolve_disassemblySeparatesInTwoMoves() {
	g := square.New()

	goal := mustPiece(0,
		square.Voxel{X: 0, Y: 0}, square.Voxel{X: 2, Y: 0},
		square.Voxel{X: 0, Y: 1}, square.Voxel{X: 1, Y: 1}, square.Voxel{X: 2, Y: 1},
		square.Voxel{X: 0, Y: 2}, square.Voxel{X: 1, Y: 2}, square.Voxel{X: 2, Y: 2},
	)
	ring := mustPiece(1,
		square.Voxel{X: 0, Y: 0}, square.Voxel{X: 2, Y: 0},
		square.Voxel{X: 0, Y: 1}, square.Voxel{X: 2, Y: 1},
		square.Voxel{X: 0, Y: 2}, square.Voxel{X: 1, Y: 2}, square.Voxel{X: 2, Y: 2},
	)
	center := mustPiece(2, square.Voxel{X: 1, Y: 1})

	sols, err := assemble.Solve(g, assemble.Problem{
		GoalPieceID: 0,
		Pieces:      []piece.Piece{goal, ring, center},
		Counts: map[int]assemble.PieceCount{
			1: {Min: 1, Max: 1},
			2: {Min: 1, Max: 1},
		},
		Disassemble: true,
	}, assemble.Options{})
	if err != nil {
		panic(err)
	}

	fmt.Println(len(sols), len(sols[0].Disassemblies[0].Steps))
	// Output: 1 2
}
