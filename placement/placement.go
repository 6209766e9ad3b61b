package placement

import (
	"sort"
	"strings"

	"github.com/katalvlaran/puzzlecore/grid"
	"github.com/katalvlaran/puzzlecore/piece"
)

// Enumerate computes every accepted placement of p against goal, trying
// each rotation in rotations (in order — callers pass the grid's full
// rotation set, or a symmetry-reduced subset for the symmetry-breaking
// piece). Accepted placements preserve p's ID (never its Instance, which is
// assigned later by assemble). A piece with zero accepted placements
// returns an empty, non-nil slice — it is the caller's (assemble's) job to
// treat that as PieceUnplaceable, since only it knows the piece's label.
func Enumerate(g grid.Grid, goal []grid.Voxel, p piece.Piece, rotations []grid.Transform) ([]piece.Piece, error) {
	goalSet := make(map[string]bool, len(goal))
	for _, v := range goal {
		goalSet[v.Key()] = true
	}

	pieceVoxels := p.Voxels()
	ref := pieceVoxels[0]

	reps, err := representatives(g, pieceVoxels, ref, rotations)
	if err != nil {
		return nil, err
	}

	var out []piece.Piece
	for _, rep := range reps {
		anchor := rep[0]
		for _, v := range goal {
			t, err := g.GetTranslation(anchor, v)
			if err != nil {
				return nil, err
			}
			placed, err := g.DoTransform(t, rep)
			if err != nil {
				return nil, err
			}
			if fitsWithin(placed, goalSet) {
				out = append(out, p.WithVoxels(placed))
			}
		}
	}

	return out, nil
}

// fitsWithin reports whether every voxel of placed is a member of goalSet.
func fitsWithin(placed []grid.Voxel, goalSet map[string]bool) bool {
	for _, v := range placed {
		if !goalSet[v.Key()] {
			return false
		}
	}

	return true
}

// representatives returns one oriented voxel list per translation-congruence
// class, in rotation order (first rotation to reach a class wins).
func representatives(g grid.Grid, pieceVoxels []grid.Voxel, ref grid.Voxel, rotations []grid.Transform) ([][]grid.Voxel, error) {
	seen := make(map[string]bool, len(rotations))
	var reps [][]grid.Voxel
	for _, r := range rotations {
		oriented, err := g.DoTransform(r, pieceVoxels)
		if err != nil {
			return nil, err
		}
		key, err := canonicalKey(g, oriented, ref)
		if err != nil {
			return nil, err
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		reps = append(reps, oriented)
	}

	return reps, nil
}

// canonicalKey translates voxels so their bounds-origin lands on ref, then
// renders the resulting set as a sorted, ';'-joined key. Two voxel sets
// congruent by translation alone always produce the same key for the same
// ref, regardless of which orientation ref itself came from.
func canonicalKey(g grid.Grid, voxels []grid.Voxel, ref grid.Voxel) (string, error) {
	b, err := g.GetVoxelBounds(voxels...)
	if err != nil {
		return "", err
	}
	origin := g.GetBoundsOrigin(b)
	t, err := g.GetTranslation(origin, ref)
	if err != nil {
		return "", err
	}
	shifted, err := g.DoTransform(t, voxels)
	if err != nil {
		return "", err
	}
	keys := make([]string, len(shifted))
	for i, v := range shifted {
		keys[i] = v.Key()
	}
	sort.Strings(keys)

	return strings.Join(keys, ";"), nil
}

// IsTranslationCongruent reports whether a and b are related by a pure
// translation, per the same canonicalization canonicalKey uses. Exposed for
// property tests (spec.md §8's algebraic law) and for symmetry's grouping.
func IsTranslationCongruent(g grid.Grid, a, b []grid.Voxel) (bool, error) {
	if len(a) == 0 || len(b) == 0 {
		return len(a) == len(b), nil
	}
	ka, err := canonicalKey(g, a, a[0])
	if err != nil {
		return false, err
	}
	kb, err := canonicalKey(g, b, a[0])
	if err != nil {
		return false, err
	}

	return ka == kb, nil
}
