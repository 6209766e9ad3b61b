package dedup

import (
	"sort"
	"strings"

	"github.com/katalvlaran/puzzlecore/grid"
	"github.com/katalvlaran/puzzlecore/piece"
)

// Dedup implements spec.md §4.8. It iterates assemblies in order; for each
// whose canonical form has not been seen, it is kept and the canonical
// forms of all its images under rotations are recorded as seen (so any
// later assembly congruent to it, directly or via a grid symmetry, is
// dropped).
func Dedup(g grid.Grid, assemblies []piece.Assembly, rotations []grid.Transform) ([]piece.Assembly, error) {
	if len(assemblies) == 0 {
		return nil, nil
	}

	ref, err := referenceVoxel(g, assemblies)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(assemblies))
	var kept []piece.Assembly
	for _, asm := range assemblies {
		key, err := canonicalKey(g, asm, ref)
		if err != nil {
			return nil, err
		}
		if seen[key] {
			continue
		}

		for _, r := range rotations {
			rotated, err := applyToAssembly(g, r, asm)
			if err != nil {
				return nil, err
			}
			rotatedKey, err := canonicalKey(g, rotated, ref)
			if err != nil {
				return nil, err
			}
			seen[rotatedKey] = true
		}
		seen[key] = true
		kept = append(kept, asm)
	}

	return kept, nil
}

// referenceVoxel picks the bounds origin of the first non-empty assembly as
// the fixed anchor every canonicalKey call in this Dedup invocation
// translates against.
func referenceVoxel(g grid.Grid, assemblies []piece.Assembly) (grid.Voxel, error) {
	for _, asm := range assemblies {
		voxels := asm.Voxels()
		if len(voxels) == 0 {
			continue
		}
		b, err := g.GetVoxelBounds(voxels...)
		if err != nil {
			return nil, err
		}

		return g.GetBoundsOrigin(b), nil
	}

	return nil, ErrAllAssembliesEmpty
}

// applyToAssembly transforms every piece's voxels by t, preserving piece
// identity (id and instance) but not attributes, per Piece.WithVoxels.
func applyToAssembly(g grid.Grid, t grid.Transform, asm piece.Assembly) (piece.Assembly, error) {
	out := make(piece.Assembly, len(asm))
	for i, p := range asm {
		voxels, err := g.DoTransform(t, p.Voxels())
		if err != nil {
			return nil, err
		}
		out[i] = p.WithVoxels(voxels)
	}

	return out, nil
}

// canonicalKey translates asm so its bounds origin lands on ref, then
// renders one ';'-joined line of sorted voxel keys per piece, pieces sorted
// lexicographically (equivalent to "sort pieces by their first voxel" since
// each line already starts with its piece's lowest-keyed voxel and no two
// pieces of a valid assembly share a first voxel), joined by '\n'.
func canonicalKey(g grid.Grid, asm piece.Assembly, ref grid.Voxel) (string, error) {
	all := asm.Voxels()
	if len(all) == 0 {
		return "", nil
	}

	b, err := g.GetVoxelBounds(all...)
	if err != nil {
		return "", err
	}
	origin := g.GetBoundsOrigin(b)
	t, err := g.GetTranslation(origin, ref)
	if err != nil {
		return "", err
	}

	shifted, err := applyToAssembly(g, t, asm)
	if err != nil {
		return "", err
	}

	lines := make([]string, len(shifted))
	for i, p := range shifted {
		voxels := p.Voxels()
		keys := make([]string, len(voxels))
		for j, v := range voxels {
			keys[j] = v.Key()
		}
		lines[i] = strings.Join(keys, ";")
	}
	sort.Strings(lines)

	return strings.Join(lines, "\n"), nil
}
