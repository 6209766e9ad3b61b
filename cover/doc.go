// Package cover implements the extended Dancing Links exact-cover engine
// (spec.md §4.4): classic Algorithm X/DLX generalized with per-column
// {min,max} ranges and an optional flag, instead of the usual "exactly
// once" column semantics.
//
// Matrix model: a 0/1 incidence matrix where each row is a candidate
// (a piece placement) and each column is an item to cover (a piece-instance
// column or a goal-voxel column). Columns carry need (remaining required
// covers) and remaining (remaining allowed covers); a column with
// need==remaining==0 is satisfied and excluded from branching.
//
// Representation: one arena of doubly-linked nodes (up/down/left/right),
// indexed by int rather than pointer, mirroring tsp.bbEngine's dense-buffer
// discipline — no per-node heap object, no pointer graph to walk during GC.
// Column headers occupy indices [0,numCols) of the arena; a root sentinel
// at index numCols links live column headers in a circular row.
//
// Engine invariant (load-bearing): every row must touch at least one
// column with Max==1 — true for this domain because every placement row
// always covers at least one goal-voxel column, and goal-voxel columns
// always have Max==1 (spec.md §4.4). This guarantees a selected row is
// fully detached from every column it touches (not just the one being
// branched on) the moment any one of its Max==1 columns saturates, since
// covering a column physically removes every other row sharing it —
// including that row's own nodes in its other columns. NewMatrix rejects
// any row that would violate this invariant.
//
// Branching: MRV column selection (smallest live-row count) restricted to
// columns with need>0, per DESIGN.md's resolution of the "need=0 but
// remaining>0" open question: such a column is never a branching candidate
// but keeps accepting covers (and keeps decrementing remaining) until it
// saturates, exactly like spec.md's explicit rule for optional columns.
//
// Complexity: per search node, O(column count) to pick the branching
// column plus O(row width) per covered row; worst case exponential in row
// count (exact cover is NP-complete), bounded in practice by Options'
// MaxSolutions and NodeBudget.
//
// Errors: NewMatrix returns ErrEmptyRow, ErrColumnIndexOutOfRange,
// ErrInvalidColumnRange, and ErrRowNeverSaturates for malformed input;
// Solve itself never errors —
// a search that exhausts its NodeBudget simply stops early and reports
// Truncated=true in the Result.
package cover
