package cover

// Result is the outcome of a search: every solution found, each the list
// of selected row indices in the order the search selected them (not
// sorted), plus whether the search stopped early
// because of a resource bound rather than exhaustion.
type Result struct {
	Solutions [][]int
	Truncated bool
}

// engine carries the per-run search state layered on top of the immutable
// Matrix topology (dense arrays, no closures — tsp.bbEngine's discipline).
type engine struct {
	m *Matrix

	selected []int
	result   Result

	maxSolutions int
	nodeBudget   int
	nodesUsed    int
	onSolution   func([]int) bool

	stop bool
}

// Solve runs the extended DLX search to exhaustion (or until a resource
// bound in opts triggers early stop) and returns every solution found.
// Solve never mutates m after returning — the final cover/uncover pair
// always restores the matrix to its pre-call topology.
func Solve(m *Matrix, opts Options) Result {
	e := &engine{
		m:            m,
		maxSolutions: opts.MaxSolutions,
		nodeBudget:   opts.NodeBudget,
		onSolution:   opts.OnSolution,
	}
	e.search()

	return e.result
}

func (e *engine) search() {
	if e.stop {
		return
	}
	if e.nodeBudget > 0 && e.nodesUsed >= e.nodeBudget {
		e.result.Truncated = true
		e.stop = true

		return
	}
	e.nodesUsed++

	col, ok := e.chooseColumn()
	if !ok {
		e.emit()

		return
	}

	m := e.m
	for r := m.nodes[col].down; r != col; r = m.nodes[r].down {
		rowID := m.nodes[r].row
		steps := e.cover(rowID)
		e.selected = append(e.selected, rowID)
		e.search()
		e.selected = e.selected[:len(e.selected)-1]
		e.uncover(steps)
		if e.stop {
			return
		}
	}
}

// chooseColumn implements MRV over columns still needing coverage (need>0),
// restricted to columns still linked into the header row. A column linked
// with need>0 but zero live rows is picked (it has the smallest possible
// size) and immediately prunes the branch, since its row loop is empty.
func (e *engine) chooseColumn() (int, bool) {
	m := e.m
	best := -1
	for c := m.nodes[m.root].right; c != m.root; c = m.nodes[c].right {
		if m.colNeed[c] <= 0 {
			continue
		}
		if best == -1 || m.colSize[c] < m.colSize[best] {
			best = c
		}
		if best != -1 && m.colSize[best] == 0 {
			break
		}
	}
	if best == -1 {
		return 0, false
	}

	return best, true
}

// undoStep records one column's pre-cover (need, remaining) and whether
// covering this row closed that column, so uncover can restore both the
// counters and the linked-list topology in exact reverse order.
type undoStep struct {
	col                   int
	prevNeed, prevRemaining int
	closed                bool
}

// cover decrements need/remaining for every column rowID touches, closing
// (coverColumnFull) any column whose remaining reaches zero. Per the
// engine invariant (doc.go), at least one touched column always closes,
// which detaches rowID's own nodes from every other column as a side
// effect of removing that column's intersecting rows.
func (e *engine) cover(rowID int) []undoStep {
	m := e.m
	cols := m.rowCols[rowID]
	steps := make([]undoStep, len(cols))
	for i, c := range cols {
		prevNeed, prevRemaining := m.colNeed[c], m.colRemaining[c]
		if m.colNeed[c] > 0 {
			m.colNeed[c]--
		}
		m.colRemaining[c]--
		closed := false
		if m.colRemaining[c] == 0 {
			m.coverColumnFull(c)
			closed = true
		}
		steps[i] = undoStep{col: c, prevNeed: prevNeed, prevRemaining: prevRemaining, closed: closed}
	}

	return steps
}

// uncover reverses cover in exact opposite order: relink any closed column
// before restoring its counters, walking the step list back to front.
func (e *engine) uncover(steps []undoStep) {
	m := e.m
	for i := len(steps) - 1; i >= 0; i-- {
		s := steps[i]
		if s.closed {
			m.uncoverColumnFull(s.col)
		}
		m.colNeed[s.col] = s.prevNeed
		m.colRemaining[s.col] = s.prevRemaining
	}
}

func (e *engine) emit() {
	sol := make([]int, len(e.selected))
	copy(sol, e.selected)
	e.result.Solutions = append(e.result.Solutions, sol)

	if e.maxSolutions > 0 && len(e.result.Solutions) >= e.maxSolutions {
		e.result.Truncated = true
		e.stop = true
	}
	if e.onSolution != nil && !e.onSolution(sol) {
		e.stop = true
	}
}
