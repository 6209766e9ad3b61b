package assemble

import (
	"fmt"

	"github.com/katalvlaran/puzzlecore/cover"
	"github.com/katalvlaran/puzzlecore/grid"
	"github.com/katalvlaran/puzzlecore/piece"
)

// buildMatrix lays out spec.md §4.4's column model (one piece column per
// non-goal piece id, then one voxel column per goal voxel) and one row per
// accepted placement, returning the matrix alongside parallel slices
// mapping each row index back to its piece id and placement.
func buildMatrix(
	others []piece.Piece,
	placementsByID map[int][]piece.Piece,
	goal piece.Piece,
	goalVoxels []grid.Voxel,
	counts map[int]PieceCount,
) (m *cover.Matrix, numPieceCols int, rowPieceID []int, rowPlacement []piece.Piece, err error) {
	numPieceCols = len(others)
	columns := make([]cover.ColumnSpec, 0, numPieceCols+len(goalVoxels))
	pieceColIdx := make(map[int]int, numPieceCols)
	for i, op := range others {
		c := counts[op.ID]
		pieceColIdx[op.ID] = i
		columns = append(columns, cover.ColumnSpec{Name: fmt.Sprintf("piece:%d", op.ID), Min: c.Min, Max: c.Max})
	}

	voxelColIdx := make(map[string]int, len(goalVoxels))
	for j, v := range goalVoxels {
		optional := goal.IsOptional(v)
		min := 1
		if optional {
			min = 0
		}
		voxelColIdx[v.Key()] = numPieceCols + j
		columns = append(columns, cover.ColumnSpec{Name: "voxel:" + v.Key(), Min: min, Max: 1, Optional: optional})
	}

	var rows [][]int
	for _, op := range others {
		for _, pl := range placementsByID[op.ID] {
			rows = append(rows, buildRow(op.ID, pl, pieceColIdx, voxelColIdx))
			rowPieceID = append(rowPieceID, op.ID)
			rowPlacement = append(rowPlacement, pl)
		}
	}

	m, err = cover.NewMatrix(columns, rows)
	if err != nil {
		return nil, 0, nil, nil, err
	}

	return m, numPieceCols, rowPieceID, rowPlacement, nil
}

// buildRow lists the column indices one placement's row touches: the
// piece column for pieceID, plus one column per voxel the placement covers.
func buildRow(pieceID int, pl piece.Piece, pieceColIdx map[int]int, voxelColIdx map[string]int) []int {
	cols := make([]int, 0, 1+pl.Len())
	cols = append(cols, pieceColIdx[pieceID])
	for _, v := range pl.Voxels() {
		if idx, ok := voxelColIdx[v.Key()]; ok {
			cols = append(cols, idx)
		}
	}

	return cols
}
