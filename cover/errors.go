package cover

import "errors"

var (
	// ErrEmptyRow indicates a row with zero columns was passed to NewMatrix.
	ErrEmptyRow = errors.New("cover: row touches no columns")

	// ErrColumnIndexOutOfRange indicates a row referenced a column index
	// outside [0, numCols).
	ErrColumnIndexOutOfRange = errors.New("cover: column index out of range")

	// ErrRowNeverSaturates indicates a row touches no column with Max==1,
	// violating the engine's load-bearing detachment invariant (see doc.go).
	ErrRowNeverSaturates = errors.New("cover: row touches no Max==1 column")

	// ErrInvalidColumnRange indicates a column's Min>Max or Min<0.
	ErrInvalidColumnRange = errors.New("cover: invalid column min/max range")
)
