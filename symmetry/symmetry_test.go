package symmetry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/puzzlecore/grid"
	"github.com/katalvlaran/puzzlecore/grid/square"
)

func sv(vs ...square.Voxel) []grid.Voxel {
	out := make([]grid.Voxel, len(vs))
	for i, v := range vs {
		out[i] = v
	}

	return out
}

func TestScanAllowed_AllSameGroupRejectsEverythingButFirst(t *testing.T) {
	pieceGroups := []int{0, 0, 0, 0}
	goalGroups := []int{0, 0, 0, 0}
	allowed, pieceReduced, goalReduced := scanAllowed(pieceGroups, goalGroups)
	assert.Equal(t, []bool{true, false, false, false}, allowed)
	assert.Equal(t, 3, pieceReduced)
	assert.Equal(t, 0, goalReduced)
}

func TestScanAllowed_DistinctPieceGroupsCoveredByGoalSymmetry(t *testing.T) {
	pieceGroups := []int{0, 1, 2, 3}
	goalGroups := []int{0, 0, 0, 0}
	allowed, pieceReduced, goalReduced := scanAllowed(pieceGroups, goalGroups)
	assert.Equal(t, []bool{true, false, false, false}, allowed)
	assert.Equal(t, 0, pieceReduced)
	assert.Equal(t, 3, goalReduced)
}

func TestReduce_SingleVoxelCandidateNeverBreaksSymmetry(t *testing.T) {
	g := square.New()
	goal := sv(square.Voxel{X: 0, Y: 0}, square.Voxel{X: 1, Y: 0}, square.Voxel{X: 0, Y: 1}, square.Voxel{X: 1, Y: 1})
	rotations := g.GetRotations(false)

	candidates := []Candidate{{PieceID: 1, Voxels: sv(square.Voxel{X: 0, Y: 0})}}
	result, err := Reduce(g, goal, candidates, rotations)
	require.NoError(t, err)
	assert.Nil(t, result, "a single-voxel piece is translation-congruent under every rotation and cannot break symmetry")
}

func TestReduce_AsymmetricPieceYieldsReduction(t *testing.T) {
	g := square.New()
	goal := sv(square.Voxel{X: 0, Y: 0}, square.Voxel{X: 1, Y: 0}, square.Voxel{X: 0, Y: 1}, square.Voxel{X: 1, Y: 1})
	rotations := g.GetRotations(false)

	// An L-tromino-shaped candidate (within the 2x2 goal, using 3 of its 4
	// cells) has no rotational self-symmetry, so it should fully quotient
	// the goal's 4-element rotation group.
	candidates := []Candidate{{
		PieceID: 1,
		Voxels:  sv(square.Voxel{X: 0, Y: 0}, square.Voxel{X: 1, Y: 0}, square.Voxel{X: 0, Y: 1}),
	}}
	result, err := Reduce(g, goal, candidates, rotations)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, 1, result.PieceID)
	assert.Greater(t, result.Reduction, 1.0)
	assert.Less(t, len(result.AllowedRotations), len(rotations))
}

func TestReduce_PicksHighestReductionAmongCandidates(t *testing.T) {
	g := square.New()
	goal := sv(square.Voxel{X: 0, Y: 0}, square.Voxel{X: 1, Y: 0}, square.Voxel{X: 0, Y: 1}, square.Voxel{X: 1, Y: 1})
	rotations := g.GetRotations(false)

	weak := Candidate{PieceID: 1, Voxels: sv(square.Voxel{X: 0, Y: 0})}
	strong := Candidate{PieceID: 2, Voxels: sv(square.Voxel{X: 0, Y: 0}, square.Voxel{X: 1, Y: 0}, square.Voxel{X: 0, Y: 1})}

	result, err := Reduce(g, goal, []Candidate{weak, strong}, rotations)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, 2, result.PieceID)
}
