// Package cubic implements grid.Grid for an axis-aligned, unit-cube 3-D
// lattice: the ordinary voxel grid used by most polycube puzzles.
//
// What:
//
//   - Voxel is an (X,Y,Z) integer triple.
//   - Rotations are the 24 proper rotations of the cube (48 with mirrors),
//     generated as signed-permutation matrices (grid/internal/group3).
//   - Translations and rotations share one affine representation
//     (grid/internal/affine3), so ScaleTransform is just integer power.
//   - Disassembly transforms are the 6 unit translations ±X, ±Y, ±Z.
//   - Adjacency (for IsSeparate) is 6-connectivity (shared face).
//
// Complexity: GetVoxels is O(volume of bounds); DoTransform is O(n) for n
// input voxels; GetRotations is O(1) (precomputed, 24 or 48 elements).
//
// Voxel/Transform string syntax (persistence boundary only):
//
//   - Voxel: "x,y,z"
//   - Translation: "t:dx,dy,dz"
//   - Rotation: "r:<index>" where index selects one of the 24 (or 48)
//     canonically-ordered matrices returned by GetRotations.
package cubic
