// Package rhombic implements grid.Grid for a rhombic-tiling 3-D grid: the
// face-centered-cubic (FCC) lattice, whose Voronoi cells are rhombic
// dodecahedra. This is the grid used by ball-pyramid and rhombic-piece
// puzzles, where each cell has 12 neighbors rather than a cubic grid's 6.
//
// What:
//
//   - Voxel is an (X,Y,Z) integer triple constrained to the FCC sublattice
//     of Z^3 where X+Y+Z is even — exactly the points a cubic lattice with
//     alternating cells removed leaves behind.
//   - The point symmetry group of the FCC lattice is the same full
//     octahedral group Oh used by grid/cubic (signed permutation matrices
//     preserve the X+Y+Z parity, since permuting coordinates doesn't
//     change the sum and negating one coordinate changes it by an even
//     amount) — so rotation generation is shared with grid/cubic via
//     grid/internal/group3.
//   - Adjacency is the FCC 12-neighbor relation: all permutations of
//     (±1,±1,0), each of which stays on the lattice and is the minimal
//     step between neighboring rhombic cells.
//   - Disassembly transforms are those same 12 unit lattice vectors.
//
// Voxel/Transform string syntax (persistence boundary only):
//
//   - Voxel: "x,y,z" (same syntax as cubic; validity is lattice-checked by
//     ParseVoxel, which rejects odd-parity triples)
//   - Translation: "t:dx,dy,dz"
//   - Rotation: "r:<index>" into GetRotations(true)'s canonical order.
package rhombic
