// Package grid defines the geometry contract consumed by the rest of
// puzzlecore: Voxel, Transform, Bounds and the Grid interface itself.
//
// What:
//
//   - Grid is the only geometry-aware object the solver touches; every
//     other package (placement, symmetry, cover, assemble, movement,
//     disassemble) is abstract over it.
//   - Voxel and Transform are opaque, hashable tokens: concrete grids
//     (grid/cubic, grid/square, grid/rhombic) decide what they represent.
//   - Bounds is the one concrete, grid-agnostic type: a pair of voxels
//     (Min, Max) that every Grid implementation knows how to interpret.
//
// Why:
//
//   - Keeping voxels/transforms opaque lets a cubic grid use packed
//     (x,y,z) triples while a rhombic grid uses a parity-constrained
//     lattice, without leaking either representation into the solver.
//
// Errors:
//
//   - ErrForeignVoxel: a Voxel produced by a different Grid implementation
//     was passed to a method that requires this Grid's own type.
//   - ErrForeignTransform: same, for Transform.
//   - ErrEmptyVoxelSet: an operation that requires at least one voxel
//     received none.
//
// See: grid/cubic, grid/square, grid/rhombic for concrete implementations.
package grid
