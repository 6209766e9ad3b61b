// Package placement enumerates, for a single piece against a goal shape,
// every distinct (orientation x translation) that fits entirely inside the
// goal's voxel set.
//
// Algorithm (spec.md §4.2):
//
//  1. Apply every allowed rotation to the piece's voxels ("orientations").
//  2. Quotient orientations by translation congruence — two orientations
//     that differ only by a shift collapse to one representative — by
//     translating each to a shared canonical reference voxel and comparing
//     the resulting voxel sets.
//  3. For each representative and each goal voxel, translate the piece so
//     its first voxel lands on that goal voxel; keep the placement iff
//     every transformed voxel lies in the goal.
//
// Complexity: O(|R| * n) to build orientations (n = piece size), O(|R|^2 * n
// log n) worst case to quotient by congruence (dominated by the sort used
// for the canonical key), O(|R'| * |G| * n) to enumerate placements, where
// R' is the post-quotient orientation count and G is the goal voxel count.
package placement
