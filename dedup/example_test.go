package dedup

import (
	"fmt"

	"github.com/katalvlaran/puzzlecore/grid"
	"github.com/katalvlaran/puzzlecore/grid/cubic"
	"github.com/katalvlaran/puzzlecore/piece"
)

// ExampleDedup_cubeCornerTrominoUnderFullRotationGroup reproduces spec.md
// §8 scenario 6: every rotated image of a cube-corner tromino under the
// cube's full rotation group (24 proper rotations) collapses to a single
// canonical representative.
func ExampleDedup_cubeCornerTrominoUnderFullRotationGroup() {
	g := cubic.New()
	rotations := g.GetRotations(false)

	cornerVoxels := []cubic.Voxel{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}}
	voxels := make([]grid.Voxel, len(cornerVoxels))
	for i, v := range cornerVoxels {
		voxels[i] = v
	}
	corner, err := piece.New(1, voxels)
	if err != nil {
		panic(err)
	}

	var assemblies []piece.Assembly
	for _, r := range rotations {
		rotatedVoxels, err := g.DoTransform(r, corner.Voxels())
		if err != nil {
			panic(err)
		}
		assemblies = append(assemblies, piece.Assembly{corner.WithVoxels(rotatedVoxels)})
	}

	kept, err := Dedup(g, assemblies, rotations)
	if err != nil {
		panic(err)
	}

	fmt.Println(len(assemblies), len(kept))
	// Output: 24 1
}
