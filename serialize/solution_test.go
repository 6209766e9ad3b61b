package serialize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/puzzlecore/disassemble"
	"github.com/katalvlaran/puzzlecore/grid/square"
	"github.com/katalvlaran/puzzlecore/piece"
	"github.com/katalvlaran/puzzlecore/serialize"
	"github.com/katalvlaran/puzzlecore/solution"
)

func TestSolutionRoundTrip_WithDisassembliesYieldsEqualValue(t *testing.T) {
	g := square.New()
	domino := buildVoxelPiece(t, 1, square.Voxel{X: 0, Y: 0}, square.Voxel{X: 1, Y: 0})
	mono := buildVoxelPiece(t, 2, square.Voxel{X: 2, Y: 0})

	translation, err := g.GetTranslation(square.Voxel{X: 0, Y: 0}, square.Voxel{X: 0, Y: 1})
	require.NoError(t, err)

	sol := solution.Solution{
		ID:         1,
		Placements: piece.Assembly{domino, mono},
		Disassemblies: []disassemble.Disassembly{
			{Steps: []disassemble.Step{
				{MovedPieces: []string{"2"}, Transform: translation, Repeat: 1, Separates: true},
			}},
		},
	}

	data, err := serialize.MarshalSolution(g, sol)
	require.NoError(t, err)

	got, err := serialize.UnmarshalSolution(g, data)
	require.NoError(t, err)
	assert.Equal(t, sol, got)
}

func TestSolutionRoundTrip_NoDisassembliesStaysNil(t *testing.T) {
	g := square.New()
	mono := buildVoxelPiece(t, 1, square.Voxel{X: 0, Y: 0})

	sol := solution.Solution{ID: 2, Placements: piece.Assembly{mono}}

	data, err := serialize.MarshalSolution(g, sol)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "disassemblies")

	got, err := serialize.UnmarshalSolution(g, data)
	require.NoError(t, err)
	assert.Equal(t, sol, got)
	assert.Nil(t, got.Disassemblies)
}
