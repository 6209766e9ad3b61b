package serialize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/puzzlecore/assemble"
	"github.com/katalvlaran/puzzlecore/grid/square"
	"github.com/katalvlaran/puzzlecore/piece"
	"github.com/katalvlaran/puzzlecore/serialize"
)

func TestProblemRoundTrip_YieldsEqualValue(t *testing.T) {
	g := square.New()
	goal := buildVoxelPiece(t, 0, square.Voxel{X: 0, Y: 0}, square.Voxel{X: 1, Y: 0}, square.Voxel{X: 2, Y: 0})
	domino := buildVoxelPiece(t, 1, square.Voxel{X: 0, Y: 0}, square.Voxel{X: 1, Y: 0})
	mono := buildVoxelPiece(t, 2, square.Voxel{X: 0, Y: 0})

	problem := assemble.Problem{
		GoalPieceID: 0,
		Pieces:      []piece.Piece{goal, domino, mono},
		Counts: map[int]assemble.PieceCount{
			1: {Min: 1, Max: 1},
			2: {Min: 1, Max: 1},
		},
		Symmetry:            assemble.SymmetryRotation,
		Disassemble:         true,
		RemoveNoDisassembly: true,
	}

	data, err := serialize.MarshalProblem(g, problem)
	require.NoError(t, err)

	got, err := serialize.UnmarshalProblem(g, data)
	require.NoError(t, err)
	assert.Equal(t, problem, got)
}

func TestProblemRoundTrip_NoPiecesOrCountsStayNil(t *testing.T) {
	g := square.New()
	goal := buildVoxelPiece(t, 0, square.Voxel{X: 0, Y: 0})
	problem := assemble.Problem{GoalPieceID: 0, Pieces: []piece.Piece{goal}}

	data, err := serialize.MarshalProblem(g, problem)
	require.NoError(t, err)

	got, err := serialize.UnmarshalProblem(g, data)
	require.NoError(t, err)
	assert.Equal(t, problem, got)
	assert.Nil(t, got.Counts)
}

func TestProblemRoundTrip_UnknownSymmetryReductionErrors(t *testing.T) {
	g := square.New()
	_, err := serialize.ProblemFromDTO(g, serialize.ProblemDTO{SymmetryReduction: "bogus"})
	assert.ErrorIs(t, err, serialize.ErrUnknownSymmetryReduction)
}
