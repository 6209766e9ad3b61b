package movement

import (
	"sort"

	"github.com/katalvlaran/puzzlecore/grid"
	"github.com/katalvlaran/puzzlecore/piece"
)

// Movement is one accepted emission of spec.md §4.6 step 5: a snapshot of
// the assembly after repeatedly applying Transform to every piece in
// MovedPieces, plus whether that snapshot separates the moved group from
// the rest of the assembly.
type Movement struct {
	MovedPieces []string // complete-ids, sorted
	Transform   grid.Transform
	Placements  piece.Assembly
	Repeat      int
	Separates   bool
}

// Enumerate runs spec.md §4.6 for every (starting piece, transform) pair.
func Enumerate(g grid.Grid, assembly piece.Assembly, transforms []grid.Transform) ([]Movement, error) {
	k := len(assembly)
	var out []Movement
	bound := (k + 1) / 2 // ceil(k/2)

	for i := 0; i < k; i++ {
		for _, t := range transforms {
			moves, err := enumerateOne(g, assembly, i, t, bound)
			if err != nil {
				return nil, err
			}
			out = append(out, moves...)
		}
	}

	return out, nil
}

func enumerateOne(g grid.Grid, assembly piece.Assembly, start int, t grid.Transform, bound int) ([]Movement, error) {
	group := map[int]bool{start: true}
	cur := assembly.Clone()
	repeat := 0
	var out []Movement

	for {
		repeat++
		for idx := range group {
			moved, err := g.DoTransform(t, cur[idx].Voxels())
			if err != nil {
				return nil, err
			}
			cur[idx] = cur[idx].WithVoxels(moved)
		}

		abandoned := false
		for {
			overlapping := findOverlaps(cur, group)
			if len(overlapping) == 0 {
				break
			}
			if repeat > 1 {
				abandoned = true

				break
			}
			scaled, err := g.ScaleTransform(t, repeat)
			if err != nil {
				return nil, err
			}
			for _, idx := range overlapping {
				moved, err := g.DoTransform(scaled, cur[idx].Voxels())
				if err != nil {
					return nil, err
				}
				cur[idx] = cur[idx].WithVoxels(moved)
				group[idx] = true
			}
		}
		if abandoned {
			break
		}
		if len(group) > bound {
			break
		}

		groupVoxels, otherVoxels := splitVoxels(cur, group)
		separates := g.IsSeparate(groupVoxels, otherVoxels)
		out = append(out, Movement{
			MovedPieces: sortedCompleteIDs(cur, group),
			Transform:   t,
			Placements:  cur.Clone(),
			Repeat:      repeat,
			Separates:   separates,
		})
		if separates {
			break
		}
	}

	return out, nil
}

// findOverlaps returns the indices not yet in group whose voxels intersect
// any group member's voxels (a literal shared-voxel test, not isSeparate's
// adjacency-aware one — step 3 only cares about actual overlap).
func findOverlaps(assembly piece.Assembly, group map[int]bool) []int {
	occupied := make(map[string]bool)
	for idx := range group {
		for _, v := range assembly[idx].Voxels() {
			occupied[v.Key()] = true
		}
	}

	var out []int
	for idx, p := range assembly {
		if group[idx] {
			continue
		}
		for _, v := range p.Voxels() {
			if occupied[v.Key()] {
				out = append(out, idx)

				break
			}
		}
	}
	sort.Ints(out)

	return out
}

func splitVoxels(assembly piece.Assembly, group map[int]bool) (groupVoxels, otherVoxels []grid.Voxel) {
	for idx, p := range assembly {
		if group[idx] {
			groupVoxels = append(groupVoxels, p.Voxels()...)
		} else {
			otherVoxels = append(otherVoxels, p.Voxels()...)
		}
	}

	return groupVoxels, otherVoxels
}

func sortedCompleteIDs(assembly piece.Assembly, group map[int]bool) []string {
	ids := make([]string, 0, len(group))
	for idx := range group {
		ids = append(ids, assembly[idx].CompleteID())
	}
	sort.Strings(ids)

	return ids
}
