// Package symmetry implements the assembly solver's symmetry reducer
// (spec.md §4.3): choosing one "symmetry-breaking" piece whose restricted
// orientation set quotients the goal's symmetry group, so the exact-cover
// solver never emits two solutions related only by a rigid symmetry of the
// goal shape.
//
// Only pieces with an exact (min==max==1) count in the problem are eligible
// candidates — a duplicated piece cannot serve as the tie-breaker, since
// permuting its own copies would reintroduce the symmetry it's meant to
// remove.
//
// Reduce scores every eligible candidate and returns the one with the
// highest reduction factor, or nil if none clears the reduction>1 threshold
// (in which case the caller falls back to the grid's full rotation set for
// every piece).
package symmetry
