package assemble

import (
	"github.com/katalvlaran/puzzlecore/piece"
)

// validate implements spec.md §4.5 step 1. It returns the goal piece and
// the non-goal pieces (in Problem.Pieces order) on success.
func validate(p Problem) (goal piece.Piece, others []piece.Piece, err error) {
	found := false
	for _, pc := range p.Pieces {
		if pc.ID == p.GoalPieceID {
			goal = pc
			found = true

			break
		}
	}
	if !found {
		return piece.Piece{}, nil, ErrGoalMissing
	}
	if goal.Len() == 0 {
		return piece.Piece{}, nil, ErrGoalEmpty
	}

	for _, pc := range p.Pieces {
		if pc.ID == p.GoalPieceID {
			continue
		}
		others = append(others, pc)
	}
	if len(others) == 0 {
		return piece.Piece{}, nil, ErrNoPieces
	}

	for _, pc := range others {
		for _, v := range pc.Voxels() {
			if _, ok := pc.Attribute(piece.OptionalAttribute, v); ok {
				return piece.Piece{}, nil, ErrOptionalOnNonGoal
			}
		}
	}

	requiredVoxels, optionalVoxels := 0, 0
	for _, v := range goal.Voxels() {
		if goal.IsOptional(v) {
			optionalVoxels++
		} else {
			requiredVoxels++
		}
	}

	minTotal, maxTotal := 0, 0
	for _, pc := range others {
		c := p.Counts[pc.ID]
		minTotal += c.Min * pc.Len()
		maxTotal += c.Max * pc.Len()
	}
	if maxTotal < requiredVoxels || minTotal > requiredVoxels+optionalVoxels {
		return piece.Piece{}, nil, ErrVoxelCountMismatch
	}

	return goal, others, nil
}
