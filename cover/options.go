package cover

// Options governs the search's resource bounds and observability hooks.
// Both fields are optional; a zero Options runs an unbounded, silent search.
type Options struct {
	// MaxSolutions stops the search after this many solutions are emitted.
	// 0 means unbounded.
	MaxSolutions int

	// NodeBudget stops the search after this many search-tree nodes have
	// been visited (one visit per recursive descent, whether it branches
	// or terminates), regardless of how many solutions were found. 0 means
	// unbounded. Existence of this field is what lets a caller bound a
	// pathological instance without the engine needing to know anything
	// about wall-clock time.
	NodeBudget int

	// OnSolution, if non-nil, is called once per emitted solution (copy of
	// the selected row indices, safe to retain). Returning false stops the
	// search early, same as MaxSolutions/NodeBudget exhaustion.
	OnSolution func(rows []int) bool
}
