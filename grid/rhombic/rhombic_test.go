package rhombic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/puzzlecore/grid"
	"github.com/katalvlaran/puzzlecore/grid/rhombic"
)

func TestGetDisassemblyTransforms_TwelveNeighbors(t *testing.T) {
	g := rhombic.New()
	assert.Len(t, g.GetDisassemblyTransforms(), 12)
}

func TestParseVoxel_RejectsOffLattice(t *testing.T) {
	g := rhombic.New()
	_, err := g.ParseVoxel("1,0,0") // sum=1, odd
	assert.ErrorIs(t, err, grid.ErrParseVoxel)

	v, err := g.ParseVoxel("1,1,0") // sum=2, even
	require.NoError(t, err)
	assert.Equal(t, rhombic.Voxel{X: 1, Y: 1, Z: 0}, v)
}

func TestRotationPreservesLattice(t *testing.T) {
	g := rhombic.New()
	v := []grid.Voxel{rhombic.Voxel{X: 1, Y: 1, Z: 0}}
	for _, r := range g.GetRotations(true) {
		out, err := g.DoTransform(r, v)
		require.NoError(t, err)
		ov := out[0].(rhombic.Voxel)
		assert.Equal(t, 0, (ov.X+ov.Y+ov.Z)%2, "rotation must preserve FCC parity")
	}
}

func TestIsSeparate(t *testing.T) {
	g := rhombic.New()
	a := []grid.Voxel{rhombic.Voxel{X: 0, Y: 0, Z: 0}}
	touching := []grid.Voxel{rhombic.Voxel{X: 1, Y: 1, Z: 0}}
	far := []grid.Voxel{rhombic.Voxel{X: 4, Y: 4, Z: 0}}
	assert.False(t, g.IsSeparate(a, touching))
	assert.True(t, g.IsSeparate(a, far))
}
