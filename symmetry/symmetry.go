package symmetry

import (
	"github.com/katalvlaran/puzzlecore/grid"
	"github.com/katalvlaran/puzzlecore/piece"
	"github.com/katalvlaran/puzzlecore/placement"
)

// Candidate is a piece eligible for symmetry-breaking: its problem count is
// exactly 1 (min==max==1). A Candidate carries no count, so Reduce does not
// check that rule; the caller (assemble), which knows the problem's count
// ranges, passes only pieces that satisfy it.
type Candidate struct {
	PieceID int
	Voxels  []grid.Voxel
}

// Result is the chosen symmetry-breaking piece, its restricted rotation
// subset, and the reduction factor that justified picking it.
type Result struct {
	PieceID          int
	AllowedRotations []grid.Transform
	Reduction        float64
}

// Reduce scans candidates and returns the one with the highest reduction
// factor among those exceeding 1, or nil if none qualifies.
func Reduce(g grid.Grid, goal []grid.Voxel, candidates []Candidate, rotations []grid.Transform) (*Result, error) {
	if len(rotations) == 0 || len(candidates) == 0 {
		return nil, nil
	}

	goalGroups, err := groupIndices(g, goal, rotations)
	if err != nil {
		return nil, err
	}

	var best *Result
	for _, c := range candidates {
		pieceGroups, err := groupIndices(g, c.Voxels, rotations)
		if err != nil {
			return nil, err
		}

		allowed, pieceReduced, goalReduced := scanAllowed(pieceGroups, goalGroups)
		denom := len(rotations) - pieceReduced - goalReduced
		if denom <= 0 {
			continue
		}
		reduction := float64(len(rotations)-pieceReduced) / float64(denom)
		if reduction <= 1 {
			continue
		}
		if best == nil || reduction > best.Reduction {
			var allowedRotations []grid.Transform
			for i, ok := range allowed {
				if ok {
					allowedRotations = append(allowedRotations, rotations[i])
				}
			}
			best = &Result{PieceID: c.PieceID, AllowedRotations: allowedRotations, Reduction: reduction}
		}
	}

	return best, nil
}

// scanAllowed runs spec.md §4.3 step 2's low-to-high scan: it marks an
// orientation allowed only when no earlier orientation already covers it
// via the piece's own symmetry or the goal's symmetry, and returns the
// allowed mask plus how many later indices each kind of symmetry covered.
func scanAllowed(pieceGroups, goalGroups []int) (allowed []bool, pieceReduced, goalReduced int) {
	n := len(pieceGroups)
	allowed = make([]bool, n)
	covered := make([]bool, n)
	for i := 0; i < n; i++ {
		if covered[i] {
			continue
		}
		allowed[i] = true
		for j := i + 1; j < n; j++ {
			if covered[j] {
				continue
			}
			switch {
			case pieceGroups[j] == pieceGroups[i]:
				covered[j] = true
				pieceReduced++
			case goalGroups[j] == goalGroups[i]:
				covered[j] = true
				goalReduced++
			}
		}
	}

	return allowed, pieceReduced, goalReduced
}

// groupIndices assigns each rotation index the id of the first index whose
// oriented voxels are translation-congruent to it (first-seen-wins, so
// group ids are stable and deterministic across runs).
func groupIndices(g grid.Grid, voxels []grid.Voxel, rotations []grid.Transform) ([]int, error) {
	oriented := make([][]grid.Voxel, len(rotations))
	for i, r := range rotations {
		out, err := g.DoTransform(r, voxels)
		if err != nil {
			return nil, err
		}
		oriented[i] = out
	}

	groups := make([]int, len(rotations))
	for i := range groups {
		groups[i] = -1
	}
	for i := range oriented {
		if groups[i] != -1 {
			continue
		}
		groups[i] = i
		for j := i + 1; j < len(oriented); j++ {
			if groups[j] != -1 {
				continue
			}
			congruent, err := placement.IsTranslationCongruent(g, oriented[i], oriented[j])
			if err != nil {
				return nil, err
			}
			if congruent {
				groups[j] = i
			}
		}
	}

	return groups, nil
}

// CandidatesFrom builds Candidate values from goal-less assembly pieces
// (assemble passes only those whose problem count is exactly 1).
func CandidatesFrom(pieces []piece.Piece) []Candidate {
	out := make([]Candidate, len(pieces))
	for i, p := range pieces {
		out[i] = Candidate{PieceID: p.ID, Voxels: p.Voxels()}
	}

	return out
}
