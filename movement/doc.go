// Package movement enumerates single-step rigid movements of a growing
// subset of an assembly's pieces (spec.md §4.6), the primitive the
// disassembler (package disassemble) searches over.
//
// For each starting piece and each disassembly transform, Enumerate grows a
// "moving group" from a single piece: apply the transform once to every
// piece already in the group, then pull in any piece the group now
// overlaps, catching newcomers up to the group's own repeat count. Growth
// is only permitted during the group's first application (repeat==1) —
// catching a newcomer up after a second application would require
// reasoning about a frozen intermediate position the group never actually
// held, so that (start, transform) pair is abandoned instead.
//
// A moving group larger than half the assembly (rounded up) is also
// abandoned: whatever its complement does under the transform's inverse is
// an equivalent movement already covered from the complement's own
// starting piece.
//
// Each accepted repeat level is its own emitted Movement, canonicalized by
// sorting MovedPieces' complete-ids (spec.md §4.6a) so two groups reached
// by different growth orders compare equal — load-bearing for
// disassemble's visited-state dedup.
package movement
