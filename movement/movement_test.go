package movement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/puzzlecore/grid"
	"github.com/katalvlaran/puzzlecore/grid/square"
	"github.com/katalvlaran/puzzlecore/piece"
)

func mustPiece(t *testing.T, id int, vs ...square.Voxel) piece.Piece {
	t.Helper()
	voxels := make([]grid.Voxel, len(vs))
	for i, v := range vs {
		voxels[i] = v
	}
	p, err := piece.New(id, voxels)
	require.NoError(t, err)

	return p
}

func TestEnumerate_IsolatedPieceSeparatesImmediately(t *testing.T) {
	g := square.New()
	frame := mustPiece(t, 0, square.Voxel{X: -5, Y: 0})
	lone := mustPiece(t, 1, square.Voxel{X: 0, Y: 0})
	assembly := piece.Assembly{frame, lone}

	moves, err := Enumerate(g, assembly, g.GetDisassemblyTransforms())
	require.NoError(t, err)

	found := false
	for _, m := range moves {
		if len(m.MovedPieces) == 1 && m.MovedPieces[0] == "1" && m.Separates && m.Repeat == 1 {
			found = true
		}
	}
	assert.True(t, found, "expected at least one immediate single-repeat separating move for the lone piece")
}

func TestEnumerate_GroupGrowthSingleRepeatStep(t *testing.T) {
	g := square.New()
	frame := mustPiece(t, 0, square.Voxel{X: -1, Y: 0}, square.Voxel{X: 5, Y: 0})
	a := mustPiece(t, 1, square.Voxel{X: 1, Y: 0})
	b := mustPiece(t, 2, square.Voxel{X: 2, Y: 0})
	assembly := piece.Assembly{frame, a, b}

	right, err := g.GetTranslation(square.Voxel{X: 0, Y: 0}, square.Voxel{X: 1, Y: 0})
	require.NoError(t, err)

	moves, err := enumerateOne(g, assembly, 1, right, (len(assembly)+1)/2)
	require.NoError(t, err)
	require.Len(t, moves, 1)
	assert.Equal(t, []string{"1", "2"}, moves[0].MovedPieces)
	assert.Equal(t, 1, moves[0].Repeat)
	assert.True(t, moves[0].Separates)
}

func TestEnumerate_BoundAbandonsOversizedGroup(t *testing.T) {
	g := square.New()
	p0 := mustPiece(t, 0, square.Voxel{X: 0, Y: 0})
	p1 := mustPiece(t, 1, square.Voxel{X: 1, Y: 0})
	assembly := piece.Assembly{p0, p1}

	moves, err := Enumerate(g, assembly, g.GetDisassemblyTransforms())
	require.NoError(t, err)
	for _, m := range moves {
		assert.LessOrEqual(t, len(m.MovedPieces), 1, "k=2 bound (ceil(2/2)=1) forbids any 2-piece group")
	}
}
