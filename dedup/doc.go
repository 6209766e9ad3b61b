// Package dedup implements spec.md §4.8's symmetric-assembly filter: given
// an ordered list of assemblies, it keeps the first assembly to reach each
// grid-symmetry equivalence class and drops every later one whose canonical
// form matches a symmetric image of one already kept.
//
// Canonicalization translates an assembly so its bounds origin lands on a
// fixed reference voxel (established once per Dedup call, mirroring
// disassemble's canonicalKey), sorts each piece's voxels (Piece.Voxels
// already does this), sorts pieces by their serialized voxel list, and joins
// the result into a single string. Two assemblies canonicalize to the same
// string iff they are identical up to pure translation.
package dedup
