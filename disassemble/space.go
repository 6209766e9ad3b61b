package disassemble

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/puzzlecore/grid"
	"github.com/katalvlaran/puzzlecore/piece"
)

// SpaceSeparatedParts replays d against initial, bumping the Repeat of
// whichever separating step most recently pulled two parts apart whenever
// those parts end up within one disassembly-direction step of touching,
// and re-replays until no such collision remains or the iteration bound
// (nPieces*(totalVoxels+2*nPieces), spec.md §4.7) is exhausted.
func SpaceSeparatedParts(g grid.Grid, initial piece.Assembly, d Disassembly) (Disassembly, error) {
	n := len(initial)
	bound := n * (len(initial.Voxels()) + 2*n)
	steps := append([]Step(nil), d.Steps...)
	dirs := g.GetDisassemblyTransforms()

	for iter := 0; iter < bound; iter++ {
		collision, err := replayAndDetectCollision(g, initial, steps, dirs)
		if err != nil {
			return Disassembly{}, err
		}
		if collision == nil {
			return Disassembly{Steps: steps}, nil
		}

		idx, ok := latestSharedSeparation(collision.historyA, collision.historyB)
		if !ok {
			return Disassembly{}, errors.WithStack(ErrSeparationNotFound)
		}
		steps[idx].Repeat++
	}

	return Disassembly{}, errors.WithStack(ErrSeparationNotFound)
}

type partCollision struct {
	historyA, historyB []int
}

type part struct {
	ids     map[string]bool
	history []int // indices (ascending) of separating steps in this part's ancestry
}

// replayAndDetectCollision applies steps in order to a working copy of
// initial, splitting the partition of parts on every separating step, and
// reports the first pair of distinct parts found touching (under the
// inflated adjacency test) after any step, or nil if the full replay
// completes cleanly.
func replayAndDetectCollision(g grid.Grid, initial piece.Assembly, steps []Step, dirs []grid.Transform) (*partCollision, error) {
	byID := make(map[string]piece.Piece, len(initial))
	for _, p := range initial {
		byID[p.CompleteID()] = p
	}

	allIDs := make(map[string]bool, len(initial))
	for id := range byID {
		allIDs[id] = true
	}
	parts := []*part{{ids: allIDs, history: nil}}

	for i, s := range steps {
		t, err := g.ScaleTransform(s.Transform, s.Repeat)
		if err != nil {
			return nil, err
		}
		for _, id := range s.MovedPieces {
			p := byID[id]
			moved, err := g.DoTransform(t, p.Voxels())
			if err != nil {
				return nil, err
			}
			byID[id] = p.WithVoxels(moved)
		}

		if s.Separates {
			parts = splitPart(parts, s.MovedPieces, i)
		}

		if collision := findCollision(byID, parts, g, dirs); collision != nil {
			return collision, nil
		}
	}

	return nil, nil
}

func splitPart(parts []*part, movedIDs []string, stepIdx int) []*part {
	moved := make(map[string]bool, len(movedIDs))
	for _, id := range movedIDs {
		moved[id] = true
	}

	out := make([]*part, 0, len(parts)+1)
	for _, p := range parts {
		var a, b map[string]bool
		for id := range p.ids {
			if moved[id] {
				if a == nil {
					a = make(map[string]bool)
				}
				a[id] = true
			} else {
				if b == nil {
					b = make(map[string]bool)
				}
				b[id] = true
			}
		}
		if a == nil || b == nil {
			// this part was not the one the separating step split.
			out = append(out, p)

			continue
		}
		history := append(append([]int(nil), p.history...), stepIdx)
		out = append(out, &part{ids: a, history: history}, &part{ids: b, history: history})
	}

	return out
}

func findCollision(byID map[string]piece.Piece, parts []*part, g grid.Grid, dirs []grid.Transform) *partCollision {
	voxelsOf := func(p *part) []grid.Voxel {
		var out []grid.Voxel
		for id := range p.ids {
			out = append(out, byID[id].Voxels()...)
		}

		return out
	}
	inflate := func(voxels []grid.Voxel) []grid.Voxel {
		out := append([]grid.Voxel(nil), voxels...)
		for _, d := range dirs {
			shifted, err := g.DoTransform(d, voxels)
			if err != nil {
				continue
			}
			out = append(out, shifted...)
		}

		return out
	}

	for i := 0; i < len(parts); i++ {
		for j := i + 1; j < len(parts); j++ {
			expanded := inflate(voxelsOf(parts[i]))
			if !g.IsSeparate(expanded, voxelsOf(parts[j])) {
				return &partCollision{historyA: parts[i].history, historyB: parts[j].history}
			}
		}
	}

	return nil
}

// latestSharedSeparation finds the greatest index present in both
// histories — the separating step that most recently pulled the two
// parts' common ancestor apart into lineages containing each of them.
func latestSharedSeparation(a, b []int) (int, bool) {
	set := make(map[int]bool, len(a))
	for _, i := range a {
		set[i] = true
	}
	best, found := -1, false
	for _, i := range b {
		if set[i] && i > best {
			best, found = i, true
		}
	}

	return best, found
}
