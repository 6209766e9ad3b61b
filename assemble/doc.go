// Package assemble implements spec.md §4.5's Solve facade: the end-to-end
// pipeline that turns a Problem into the list of valid assemblies (and,
// optionally, their disassembly sequences).
//
// Solve composes four packages in sequence: placement (expand every piece's
// accepted placements against the goal, with an optional symmetry-reduced
// rotation subset chosen by the symmetry package), cover (the exact-cover
// search over the resulting incidence matrix), and disassemble (movement-tree
// search per surviving solution). assemble itself owns only the glue: input
// validation, matrix layout, solution reconstruction, and final renumbering.
package assemble
