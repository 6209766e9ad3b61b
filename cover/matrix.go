package cover

// node is one cell of the sparse incidence matrix: a row/column intersection,
// threaded into its column's vertical list and its row's horizontal list.
// Column headers and the root sentinel are nodes too, distinguished by row<0.
type node struct {
	up, down, left, right int
	col                   int
	row                   int // -1 for header/root nodes
}

// ColumnSpec describes one column's range semantics before the matrix is built.
type ColumnSpec struct {
	Name     string // display-only, never interpreted
	Min      int
	Max      int
	Optional bool
}

// Matrix is the arena-backed, extended Dancing Links incidence matrix.
type Matrix struct {
	nodes []node
	root  int

	colMin, colMax, colNeed, colRemaining []int
	colOptional                           []bool
	colSize                               []int // live (currently linked) row count per column
	colName                               []string

	rowCols [][]int // column indices touched by each row, in build order
}

// NewMatrix builds a Matrix from columns and rows (rows[i] lists the column
// indices row i touches, duplicates not allowed within one row). Returns
// ErrEmptyRow, ErrColumnIndexOutOfRange, ErrInvalidColumnRange, or
// ErrRowNeverSaturates on malformed input.
func NewMatrix(columns []ColumnSpec, rows [][]int) (*Matrix, error) {
	numCols := len(columns)
	m := &Matrix{
		colMin:       make([]int, numCols),
		colMax:       make([]int, numCols),
		colNeed:      make([]int, numCols),
		colRemaining: make([]int, numCols),
		colOptional:  make([]bool, numCols),
		colSize:      make([]int, numCols),
		colName:      make([]string, numCols),
		rowCols:      make([][]int, len(rows)),
	}
	m.nodes = make([]node, numCols+1)
	m.root = numCols
	m.nodes[m.root] = node{col: -1, row: -1}

	for c, spec := range columns {
		if spec.Min < 0 || spec.Min > spec.Max {
			return nil, ErrInvalidColumnRange
		}
		m.colMin[c] = spec.Min
		m.colMax[c] = spec.Max
		m.colNeed[c] = spec.Min
		m.colRemaining[c] = spec.Max
		m.colOptional[c] = spec.Optional
		m.colName[c] = spec.Name
		m.nodes[c] = node{col: c, row: -1, up: c, down: c}
	}

	prev := m.root
	for c := 0; c < numCols; c++ {
		m.nodes[prev].right = c
		m.nodes[c].left = prev
		prev = c
	}
	m.nodes[prev].right = m.root
	m.nodes[m.root].left = prev

	for rowID, cols := range rows {
		if len(cols) == 0 {
			return nil, ErrEmptyRow
		}
		saturates := false
		first, last := -1, -1
		rowColsCopy := make([]int, len(cols))
		for k, c := range cols {
			if c < 0 || c >= numCols {
				return nil, ErrColumnIndexOutOfRange
			}
			rowColsCopy[k] = c
			if m.colMax[c] == 1 {
				saturates = true
			}
			idx := len(m.nodes)
			m.nodes = append(m.nodes, node{col: c, row: rowID})

			up := m.nodes[c].up
			m.nodes[idx].up = up
			m.nodes[idx].down = c
			m.nodes[up].down = idx
			m.nodes[c].up = idx
			m.colSize[c]++

			if first == -1 {
				first = idx
				m.nodes[idx].left = idx
				m.nodes[idx].right = idx
			} else {
				m.nodes[idx].left = last
				m.nodes[idx].right = first
				m.nodes[last].right = idx
				m.nodes[first].left = idx
			}
			last = idx
		}
		if !saturates {
			return nil, ErrRowNeverSaturates
		}
		m.rowCols[rowID] = rowColsCopy
	}

	return m, nil
}

// RowColumns returns a copy of the column indices row rowID touches, in
// the order NewMatrix was given them. Exposed for callers that need to
// cross-check a solved row's columns against their own bookkeeping (e.g.
// assemble verifying a selected row maps to exactly one piece column).
func (m *Matrix) RowColumns(rowID int) []int {
	return append([]int(nil), m.rowCols[rowID]...)
}

// coverColumnFull performs the classic DLX "cover" surgery: detach header c
// from the header row, and remove every row intersecting c from their other
// columns (their siblings). Column c's own vertical chain is untouched, so
// it can still be walked by uncoverColumnFull (or by a caller that already
// holds a node index into it).
func (m *Matrix) coverColumnFull(c int) {
	l, r := m.nodes[c].left, m.nodes[c].right
	m.nodes[l].right = r
	m.nodes[r].left = l

	for i := m.nodes[c].down; i != c; i = m.nodes[i].down {
		for j := m.nodes[i].right; j != i; j = m.nodes[j].right {
			u, d := m.nodes[j].up, m.nodes[j].down
			m.nodes[u].down = d
			m.nodes[d].up = u
			m.colSize[m.nodes[j].col]--
		}
	}
}

// uncoverColumnFull reverses coverColumnFull exactly, in the mirrored order
// (bottom-to-top, right-to-left relative to the cover's top-to-bottom,
// left-to-right), restoring the matrix to its pre-cover topology.
func (m *Matrix) uncoverColumnFull(c int) {
	for i := m.nodes[c].up; i != c; i = m.nodes[i].up {
		for j := m.nodes[i].left; j != i; j = m.nodes[j].left {
			m.colSize[m.nodes[j].col]++
			u, d := m.nodes[j].up, m.nodes[j].down
			m.nodes[u].down = j
			m.nodes[d].up = j
		}
	}
	l, r := m.nodes[c].left, m.nodes[c].right
	m.nodes[l].right = c
	m.nodes[r].left = c
}
