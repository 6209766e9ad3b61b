package disassemble

import (
	"sort"
	"strings"

	"github.com/katalvlaran/puzzlecore/grid"
	"github.com/katalvlaran/puzzlecore/movement"
	"github.com/katalvlaran/puzzlecore/piece"
)

// Disassemble searches for a sequence of movements that takes assembly
// apart, per spec.md §4.7. It returns ErrStuck if the reachable state
// space is fully explored and no such sequence exists, or ErrInconclusive
// if opts.NodeBudget is exhausted first.
func Disassemble(g grid.Grid, assembly piece.Assembly, opts Options) (Disassembly, error) {
	st := &searchState{
		g:          g,
		transforms: g.GetDisassemblyTransforms(),
		budget:     opts.nodeBudget(),
	}

	return disassembleNode(st, assembly)
}

type searchState struct {
	g          grid.Grid
	transforms []grid.Transform
	budget     int
}

func disassembleNode(st *searchState, asm piece.Assembly) (Disassembly, error) {
	if len(asm) <= 1 {
		return Disassembly{}, nil
	}

	moves, err := movement.Enumerate(st.g, asm, st.transforms)
	if err != nil {
		return Disassembly{}, err
	}

	for _, m := range moves {
		if m.Separates {
			return resolveSeparation(st, nil, m)
		}
	}

	// A fresh counter per sub-assembly: opts.NodeBudget bounds each
	// sub-assembly's own non-separating search independently, so one
	// expensive branch never starves a sibling's budget.
	used := 0

	return searchNonSeparating(st, &used, asm, moves)
}

// resolveSeparation builds the Step for m, recurses on the two halves it
// splits asm into, and concatenates prefix (non-separating moves already
// taken to reach this state) with the new step and both halves' steps.
func resolveSeparation(st *searchState, prefix []Step, m movement.Movement) (Disassembly, error) {
	groupAsm, otherAsm := splitByCompleteID(m.Placements, m.MovedPieces)

	left, err := disassembleNode(st, groupAsm)
	if err != nil {
		return Disassembly{}, err
	}
	right, err := disassembleNode(st, otherAsm)
	if err != nil {
		return Disassembly{}, err
	}

	steps := append([]Step(nil), prefix...)
	steps = append(steps, Step{
		MovedPieces: m.MovedPieces,
		Transform:   m.Transform,
		Repeat:      m.Repeat,
		Separates:   true,
	})
	steps = append(steps, left.Steps...)
	steps = append(steps, right.Steps...)

	return Reorder(Disassembly{Steps: steps}), nil
}

// searchNonSeparating explores non-separating moves breadth-first,
// deduplicating visited configurations, until a separating move is
// reachable or the node budget runs out.
func searchNonSeparating(st *searchState, used *int, asm piece.Assembly, initialMoves []movement.Movement) (Disassembly, error) {
	bounds, err := st.g.GetVoxelBounds(asm.Voxels()...)
	if err != nil {
		return Disassembly{}, err
	}
	ref := st.g.GetBoundsOrigin(bounds)

	type frontierEntry struct {
		asm  piece.Assembly
		path []Step
	}

	visited := make(map[string]bool)
	startKey, err := canonicalKey(st.g, asm, ref)
	if err != nil {
		return Disassembly{}, err
	}
	visited[startKey] = true

	var queue []frontierEntry
	for _, m := range initialMoves {
		key, err := canonicalKey(st.g, m.Placements, ref)
		if err != nil {
			return Disassembly{}, err
		}
		if visited[key] {
			continue
		}
		visited[key] = true
		queue = append(queue, frontierEntry{
			asm: m.Placements,
			path: []Step{{
				MovedPieces: m.MovedPieces,
				Transform:   m.Transform,
				Repeat:      m.Repeat,
				Separates:   false,
			}},
		})
	}

	for len(queue) > 0 {
		if *used >= st.budget {
			return Disassembly{}, ErrInconclusive
		}
		*used++

		cur := queue[0]
		queue = queue[1:]

		moves, err := movement.Enumerate(st.g, cur.asm, st.transforms)
		if err != nil {
			return Disassembly{}, err
		}

		for _, m := range moves {
			if m.Separates {
				return resolveSeparation(st, cur.path, m)
			}

			key, err := canonicalKey(st.g, m.Placements, ref)
			if err != nil {
				return Disassembly{}, err
			}
			if visited[key] {
				continue
			}
			visited[key] = true

			path := append(append([]Step(nil), cur.path...), Step{
				MovedPieces: m.MovedPieces,
				Transform:   m.Transform,
				Repeat:      m.Repeat,
				Separates:   false,
			})
			queue = append(queue, frontierEntry{asm: m.Placements, path: path})
		}
	}

	return Disassembly{}, ErrStuck
}

// splitByCompleteID partitions asm into the pieces whose complete-id is in
// ids and the rest, preserving asm's relative order in each half.
func splitByCompleteID(asm piece.Assembly, ids []string) (group, other piece.Assembly) {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	for _, p := range asm {
		if set[p.CompleteID()] {
			group = append(group, p)
		} else {
			other = append(other, p)
		}
	}

	return group, other
}

// canonicalKey renders asm's configuration, translated so its bounds
// origin lands on ref, as a string: sorted per-piece voxel sets joined by
// complete-id. Two configurations differing only by a uniform translation
// of the whole assembly hash equal.
func canonicalKey(g grid.Grid, asm piece.Assembly, ref grid.Voxel) (string, error) {
	all := asm.Voxels()
	if len(all) == 0 {
		return "", nil
	}
	bounds, err := g.GetVoxelBounds(all...)
	if err != nil {
		return "", err
	}
	origin := g.GetBoundsOrigin(bounds)
	t, err := g.GetTranslation(origin, ref)
	if err != nil {
		return "", err
	}

	ids := make([]string, len(asm))
	byID := make(map[string]piece.Piece, len(asm))
	for i, p := range asm {
		ids[i] = p.CompleteID()
		byID[p.CompleteID()] = p
	}
	sort.Strings(ids)

	var sb strings.Builder
	for i, id := range ids {
		shifted, err := g.DoTransform(t, byID[id].Voxels())
		if err != nil {
			return "", err
		}
		keys := make([]string, len(shifted))
		for j, v := range shifted {
			keys[j] = v.Key()
		}
		sort.Strings(keys)

		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(id)
		sb.WriteByte(':')
		sb.WriteString(strings.Join(keys, ";"))
	}

	return sb.String(), nil
}
