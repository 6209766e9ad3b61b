package assemble

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/puzzlecore/grid"
	"github.com/katalvlaran/puzzlecore/grid/square"
	"github.com/katalvlaran/puzzlecore/piece"
)

func mustValidatePiece(t *testing.T, id int, vs ...square.Voxel) piece.Piece {
	t.Helper()
	voxels := make([]grid.Voxel, len(vs))
	for i, v := range vs {
		voxels[i] = v
	}
	p, err := piece.New(id, voxels)
	require.NoError(t, err)

	return p
}

func TestValidate_GoalMissingWhenNoPieceMatchesGoalID(t *testing.T) {
	p1 := mustValidatePiece(t, 1, square.Voxel{X: 0, Y: 0})
	_, _, err := validate(Problem{GoalPieceID: 0, Pieces: []piece.Piece{p1}})
	assert.ErrorIs(t, err, ErrGoalMissing)
}

func TestValidate_GoalEmptyWhenGoalHasNoVoxels(t *testing.T) {
	goal := piece.Piece{ID: 0}
	p1 := mustValidatePiece(t, 1, square.Voxel{X: 0, Y: 0})
	_, _, err := validate(Problem{GoalPieceID: 0, Pieces: []piece.Piece{goal, p1}})
	assert.ErrorIs(t, err, ErrGoalEmpty)
}

func TestValidate_NoPiecesWhenOnlyTheGoalIsListed(t *testing.T) {
	goal := mustValidatePiece(t, 0, square.Voxel{X: 0, Y: 0})
	_, _, err := validate(Problem{GoalPieceID: 0, Pieces: []piece.Piece{goal}})
	assert.ErrorIs(t, err, ErrNoPieces)
}

func TestValidate_OptionalOnNonGoalIsRejected(t *testing.T) {
	goal := mustValidatePiece(t, 0, square.Voxel{X: 0, Y: 0}, square.Voxel{X: 1, Y: 0})
	other := mustValidatePiece(t, 1, square.Voxel{X: 0, Y: 0})
	other.SetAttribute(piece.OptionalAttribute, square.Voxel{X: 0, Y: 0}, true)
	_, _, err := validate(Problem{
		GoalPieceID: 0,
		Pieces:      []piece.Piece{goal, other},
		Counts:      map[int]PieceCount{1: {Min: 1, Max: 1}},
	})
	assert.ErrorIs(t, err, ErrOptionalOnNonGoal)
}

func TestValidate_VoxelCountMismatchWhenPiecesCannotFillGoal(t *testing.T) {
	goal := mustValidatePiece(t, 0,
		square.Voxel{X: 0, Y: 0}, square.Voxel{X: 1, Y: 0}, square.Voxel{X: 2, Y: 0})
	other := mustValidatePiece(t, 1, square.Voxel{X: 0, Y: 0})
	_, _, err := validate(Problem{
		GoalPieceID: 0,
		Pieces:      []piece.Piece{goal, other},
		Counts:      map[int]PieceCount{1: {Min: 1, Max: 1}},
	})
	assert.ErrorIs(t, err, ErrVoxelCountMismatch)
}

func TestValidate_AcceptsAMatchingGoalAndPieceSet(t *testing.T) {
	goal := mustValidatePiece(t, 0, square.Voxel{X: 0, Y: 0}, square.Voxel{X: 1, Y: 0})
	other := mustValidatePiece(t, 1, square.Voxel{X: 0, Y: 0}, square.Voxel{X: 1, Y: 0})
	g, others, err := validate(Problem{
		GoalPieceID: 0,
		Pieces:      []piece.Piece{goal, other},
		Counts:      map[int]PieceCount{1: {Min: 1, Max: 1}},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, g.ID)
	require.Len(t, others, 1)
	assert.Equal(t, 1, others[0].ID)
}
