package square_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/puzzlecore/grid"
	"github.com/katalvlaran/puzzlecore/grid/square"
)

func TestGetRotations_Counts(t *testing.T) {
	g := square.New()
	assert.Len(t, g.GetRotations(false), 4)
	assert.Len(t, g.GetRotations(true), 8)
}

func TestDoTransform_Rotation90(t *testing.T) {
	g := square.New()
	rotations := g.GetRotations(false)
	v := []grid.Voxel{square.Voxel{X: 1, Y: 0}}
	var sawIdentity, sawNonIdentity, sawQuarterTurn bool
	for _, r := range rotations {
		out, err := g.DoTransform(r, v)
		require.NoError(t, err)
		if out[0] == v[0] {
			sawIdentity = true
		} else {
			sawNonIdentity = true
		}
		if out[0] == (square.Voxel{X: 0, Y: 1}) {
			sawQuarterTurn = true
		}
	}
	assert.True(t, sawIdentity)
	assert.True(t, sawNonIdentity)
	assert.True(t, sawQuarterTurn, "a 90-degree rotation maps (1,0) to (0,1)")
}

func TestIsSeparate(t *testing.T) {
	g := square.New()
	a := []grid.Voxel{square.Voxel{X: 0, Y: 0}}
	touching := []grid.Voxel{square.Voxel{X: 0, Y: 1}}
	diagOnly := []grid.Voxel{square.Voxel{X: 1, Y: 1}}
	assert.False(t, g.IsSeparate(a, touching))
	assert.True(t, g.IsSeparate(a, diagOnly)) // 4-connectivity: diagonal doesn't count
}

func TestVoxelAndTransformRoundTrip(t *testing.T) {
	g := square.New()
	v := square.Voxel{X: -4, Y: 6}
	parsed, err := g.ParseVoxel(g.FormatVoxel(v))
	require.NoError(t, err)
	assert.Equal(t, v, parsed)

	tr, err := g.GetTranslation(square.Voxel{}, square.Voxel{X: 2, Y: -3})
	require.NoError(t, err)
	tparsed, err := g.ParseTransform(g.FormatTransform(tr))
	require.NoError(t, err)
	assert.Equal(t, tr, tparsed)
}
