// Package piece defines the Piece and Assembly types shared by every other
// puzzlecore package: an identified, voxel-set value with optional
// per-voxel attributes, and the ordered, voxel-disjoint sequence of pieces
// that forms an Assembly.
//
// What:
//
//   - Piece: integer ID, optional instance ID, voxel set (order-insensitive,
//     duplicates collapse), optional `attribute -> voxel -> bool` map. The
//     only attribute the solver interprets is "optional" (goal pieces only).
//   - CompleteID(): "{id}" or "{id}-{instance}" when an instance is set.
//   - Equal(): voxel-set equality plus attribute-value equality restricted
//     to voxels present in both pieces.
//   - Assembly: []Piece, pairwise voxel-disjoint by construction.
//
// Why a dedicated package: every other package (placement, symmetry, cover,
// assemble, movement, disassemble) needs the same Piece shape without
// depending on each other — this is the shared vocabulary, analogous to how
// lvlath's core package holds Vertex/Edge for every algorithm package.
//
// Errors:
//
//   - ErrEmptyVoxelSet: a piece was constructed with zero voxels.
//   - ErrOptionalOnNonGoal: the "optional" attribute was set on a non-goal piece.
package piece
