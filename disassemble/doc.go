// Package disassemble searches for a sequence of rigid movements (package
// movement) that takes a completed assembly apart, and replays that
// sequence with enough extra spacing to animate cleanly (spec.md §4.7).
//
// Disassemble recurses on an assembly: if it is down to one piece (or
// zero) there is nothing left to separate. Otherwise it asks movement.
// Enumerate for every single-step movement; a movement that separates the
// assembly into two groups is taken immediately, and the two groups are
// disassembled independently and their step sequences concatenated (the
// separating step first, then one sub-branch's steps, then the other's).
// When no movement separates anything outright, disassemble falls back to
// a bounded breadth-first search over non-separating moves, deduplicating
// visited configurations by a translation-normalized canonical key, until
// either a separating move is found from some reachable state or the
// search's node budget (Options.NodeBudget) is exhausted — the latter
// case is reported distinctly (ErrInconclusive) from a search that fully
// explored the reachable state space and never found a way out
// (ErrStuck), since only the former is a "try harder" situation.
//
// Reorder is a standalone canonicalization pass described by spec.md
// §4.7: given a flat step list, it regroups every step following a
// separating step into the side of the split its moved pieces belong to,
// recursively, so that depth-first linearization holds even if steps
// arrived in some other interleaving. Disassemble calls it on its own
// output as a closing pass, so callers never see non-canonical ordering.
//
// SpaceSeparatedParts is the second algorithm of spec.md §4.7: it replays
// a Disassembly against the original assembly, tracking the partition of
// pieces into "parts" induced by each separating step, and whenever two
// parts end up within one disassembly-direction step of touching (not
// just overlapping — an actual visible gap is required for clean
// playback), it bumps the Repeat of the separating step that most
// recently pulled those two parts apart and replays again. It gives up
// after a bounded number of iterations (spec.md's
// nPieces*(totalVoxels+2*nPieces) bound) and reports ErrSeparationNotFound
// if the replay never stabilizes — an internal-invariant failure, wrapped
// with github.com/pkg/errors.WithStack at the point of detection.
package disassemble
