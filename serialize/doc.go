// Package serialize implements spec.md §6's canonical persistence boundary:
// YAML-tagged DTOs for Piece, Problem, and Solution, plus the conversions to
// and from the live assemble/piece/solution types. Voxel and Transform
// strings remain opaque here — this package only calls Grid.FormatVoxel,
// Grid.ParseVoxel, Grid.FormatTransform, and Grid.ParseTransform, never
// interpreting the strings itself, so it never special-cases a grid
// implementation (per design note "keep the joined-by-';' serialisation
// only at the persistence boundary").
//
// Unlike the teacher's x/marshaller/yaml package — a generic codec dispatching
// on a Kind tag because it serializes an open set of tensor/graph/model
// types — puzzlecore's DTOs are a closed, concrete set, so plain
// yaml.Marshal/yaml.Unmarshal over tagged structs is enough; only
// PieceCountDTO needs the teacher's custom-(Un)MarshalYAML technique, to
// accept the scalar-or-range union spec.md's usedPieceCounts requires.
package serialize
