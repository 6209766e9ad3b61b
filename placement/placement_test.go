package placement_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/puzzlecore/grid"
	"github.com/katalvlaran/puzzlecore/grid/square"
	"github.com/katalvlaran/puzzlecore/piece"
	"github.com/katalvlaran/puzzlecore/placement"
)

func sv(vs ...square.Voxel) []grid.Voxel {
	out := make([]grid.Voxel, len(vs))
	for i, v := range vs {
		out[i] = v
	}

	return out
}

func Test_DominoInTwoByTwoSquare(t *testing.T) {
	g := square.New()
	goal := sv(square.Voxel{X: 0, Y: 0}, square.Voxel{X: 1, Y: 0}, square.Voxel{X: 0, Y: 1}, square.Voxel{X: 1, Y: 1})
	domino, err := piece.New(1, sv(square.Voxel{X: 0, Y: 0}, square.Voxel{X: 1, Y: 0}))
	require.NoError(t, err)

	placements, err := placement.Enumerate(g, goal, domino, g.GetRotations(false))
	require.NoError(t, err)
	// A 1x2 domino has 2 orientations (horizontal, vertical) that are not
	// translation-congruent, each fitting at 2 positions in a 2x2 square: 4 total.
	assert.Len(t, placements, 4)
}

func Test_SinglePieceTrivialSolve(t *testing.T) {
	g := square.New()
	goal := sv(square.Voxel{X: 0, Y: 0}, square.Voxel{X: 0, Y: 1}, square.Voxel{X: 1, Y: 1})
	p, err := piece.New(1, goal)
	require.NoError(t, err)

	placements, err := placement.Enumerate(g, goal, p, g.GetRotations(false))
	require.NoError(t, err)
	require.Len(t, placements, 1)
	assert.ElementsMatch(t, goal, placements[0].Voxels())
}

func Test_UnplaceablePieceYieldsNoPlacements(t *testing.T) {
	g := square.New()
	goal := sv(square.Voxel{X: 0, Y: 0})
	tooBig, err := piece.New(1, sv(square.Voxel{X: 0, Y: 0}, square.Voxel{X: 1, Y: 0}, square.Voxel{X: 2, Y: 0}))
	require.NoError(t, err)

	placements, err := placement.Enumerate(g, goal, tooBig, g.GetRotations(false))
	require.NoError(t, err)
	assert.Empty(t, placements)
}

func Test_IsTranslationCongruent(t *testing.T) {
	g := square.New()
	a := sv(square.Voxel{X: 0, Y: 0}, square.Voxel{X: 1, Y: 0})
	b := sv(square.Voxel{X: 5, Y: 5}, square.Voxel{X: 6, Y: 5})
	ok, err := placement.IsTranslationCongruent(g, a, b)
	require.NoError(t, err)
	assert.True(t, ok)

	c := sv(square.Voxel{X: 0, Y: 0}, square.Voxel{X: 0, Y: 1})
	ok2, err := placement.IsTranslationCongruent(g, a, c)
	require.NoError(t, err)
	assert.False(t, ok2)
}
