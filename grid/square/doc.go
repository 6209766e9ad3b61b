// Package square implements grid.Grid for the ordinary axis-aligned unit
// square 2-D lattice used by flat polyomino puzzles.
//
// What:
//
//   - Voxel is an (X,Y) integer pair.
//   - Rotations are the 4 proper rotations of the square (8 with mirrors),
//     i.e. the dihedral group D4, generated as 2x2 signed-permutation
//     matrices (the 2-D analogue of grid/internal/group3).
//   - Disassembly transforms are the 4 unit translations ±X, ±Y.
//   - Adjacency (for IsSeparate) is 4-connectivity (shared edge).
//
// Voxel/Transform string syntax (persistence boundary only):
//
//   - Voxel: "x,y"
//   - Translation: "t:dx,dy"
//   - Rotation: "r:<index>" into GetRotations(true)'s canonical order.
package square
