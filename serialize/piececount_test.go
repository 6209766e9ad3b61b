package serialize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/puzzlecore/assemble"
	"github.com/katalvlaran/puzzlecore/grid/square"
	"github.com/katalvlaran/puzzlecore/piece"
	"github.com/katalvlaran/puzzlecore/serialize"
)

func TestPieceCountDTO_EqualMinMaxMarshalsAsBareInt(t *testing.T) {
	g := square.New()
	goal := buildVoxelPiece(t, 0, square.Voxel{X: 0, Y: 0}, square.Voxel{X: 1, Y: 0})
	part := buildVoxelPiece(t, 1, square.Voxel{X: 0, Y: 0})
	problem := assemble.Problem{
		GoalPieceID: 0,
		Pieces:      []piece.Piece{goal, part},
		Counts:      map[int]assemble.PieceCount{1: {Min: 2, Max: 2}},
	}

	data, err := serialize.MarshalProblem(g, problem)
	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, yaml.Unmarshal(data, &doc))
	counts := doc["usedPieceCounts"].(map[interface{}]interface{})
	assert.Equal(t, 2, counts[1])
}

func TestPieceCountDTO_DistinctMinMaxMarshalsAsMapping(t *testing.T) {
	g := square.New()
	goal := buildVoxelPiece(t, 0, square.Voxel{X: 0, Y: 0}, square.Voxel{X: 1, Y: 0})
	part := buildVoxelPiece(t, 1, square.Voxel{X: 0, Y: 0})
	problem := assemble.Problem{
		GoalPieceID: 0,
		Pieces:      []piece.Piece{goal, part},
		Counts:      map[int]assemble.PieceCount{1: {Min: 1, Max: 2}},
	}

	data, err := serialize.MarshalProblem(g, problem)
	require.NoError(t, err)

	got, err := serialize.UnmarshalProblem(g, data)
	require.NoError(t, err)
	assert.Equal(t, assemble.PieceCount{Min: 1, Max: 2}, got.Counts[1])
}
