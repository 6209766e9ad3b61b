package assemble

import (
	"errors"

	pkgerrors "github.com/pkg/errors"
)

// Validation errors (spec.md §7 "Input validity"): expected, recoverable
// conditions a caller branches on via errors.Is. ErrPieceUnplaceable is
// wrapped with fmt.Errorf("%w: ...") naming the offending piece; the others
// are returned directly. None is wrapped with pkgerrors.WithStack.
var (
	ErrGoalMissing        = errors.New("assemble: problem's goal piece id has no matching piece")
	ErrGoalEmpty          = errors.New("assemble: goal piece has no voxels")
	ErrNoPieces           = errors.New("assemble: problem lists no non-goal pieces")
	ErrOptionalOnNonGoal  = errors.New("assemble: a non-goal piece carries the optional attribute")
	ErrVoxelCountMismatch = errors.New("assemble: no combination of piece counts can fill the goal's voxel range")
	ErrPieceUnplaceable   = errors.New("assemble: a piece has zero accepted placements against the goal")
)

// ErrMultiplePiecesInRow is an internal-invariant failure (spec.md §7): a
// cover solution's selected row touched more than one piece column during
// reconstruction, which should be impossible given how assemble builds
// rows. Wrapped with pkgerrors.WithStack at the point of detection.
var ErrMultiplePiecesInRow = errors.New("assemble: cover solution row touches more than one piece column")

func invariantf(base error) error {
	return pkgerrors.WithStack(base)
}
