package square

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/puzzlecore/grid"
)

// Voxel is a cell of the square lattice Z^2.
type Voxel struct {
	X, Y int
}

// Key implements grid.Voxel.
func (v Voxel) Key() string { return fmt.Sprintf("%d,%d", v.X, v.Y) }

func (v Voxel) arr() [2]int { return [2]int{v.X, v.Y} }

func fromArr(a [2]int) Voxel { return Voxel{X: a[0], Y: a[1]} }

// affine2 is an affine map v' = M*v + T on Z^2, mirroring grid/internal/affine3
// but specialized to two dimensions (not worth sharing a package for a 2x2).
type affine2 struct {
	M [2][2]int
	T [2]int
}

func identity2() affine2 { return affine2{M: [2][2]int{{1, 0}, {0, 1}}} }

func translation2(dx, dy int) affine2 {
	a := identity2()
	a.T = [2]int{dx, dy}

	return a
}

func (a affine2) apply(v [2]int) [2]int {
	return [2]int{
		a.M[0][0]*v[0] + a.M[0][1]*v[1] + a.T[0],
		a.M[1][0]*v[0] + a.M[1][1]*v[1] + a.T[1],
	}
}

func compose2(a, b affine2) affine2 {
	var out affine2
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			out.M[i][j] = a.M[i][0]*b.M[0][j] + a.M[i][1]*b.M[1][j]
		}
	}
	for i := 0; i < 2; i++ {
		out.T[i] = a.T[i] + a.M[i][0]*b.T[0] + a.M[i][1]*b.T[1]
	}

	return out
}

func inverse2(a affine2) affine2 {
	var inv affine2
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			inv.M[i][j] = a.M[j][i]
		}
	}
	neg := [2]int{-a.T[0], -a.T[1]}
	inv.T[0] = inv.M[0][0]*neg[0] + inv.M[0][1]*neg[1]
	inv.T[1] = inv.M[1][0]*neg[0] + inv.M[1][1]*neg[1]

	return inv
}

func power2(a affine2, n int) affine2 {
	if n == 0 {
		return identity2()
	}
	base := a
	if n < 0 {
		base = inverse2(a)
		n = -n
	}
	out := identity2()
	for i := 0; i < n; i++ {
		out = compose2(base, out)
	}

	return out
}

func (a affine2) key() string {
	return fmt.Sprintf("%d,%d;%d,%d|%d,%d", a.M[0][0], a.M[0][1], a.M[1][0], a.M[1][1], a.T[0], a.T[1])
}

// Transform is an affine map on the square lattice.
type Transform struct {
	a affine2
}

// Key implements grid.Transform.
func (t Transform) Key() string { return t.a.key() }

// Grid implements grid.Grid for the axis-aligned unit-square lattice.
type Grid struct {
	rotations [][2][2]int // 4 proper rotations
	mirrors   [][2][2]int // 4 reflections
}

// New constructs a square Grid, generating the dihedral group D4 once.
func New() *Grid {
	var rot, mir [][2][2]int
	perms := [][2]int{{0, 1}, {1, 0}}
	seen := make(map[[4]int]bool, 8)
	for _, p := range perms {
		for s := 0; s < 4; s++ {
			var m [2][2]int
			for i := 0; i < 2; i++ {
				sign := 1
				if s&(1<<uint(i)) != 0 {
					sign = -1
				}
				m[i][p[i]] = sign
			}
			k := [4]int{m[0][0], m[0][1], m[1][0], m[1][1]}
			if seen[k] {
				continue
			}
			seen[k] = true
			det := m[0][0]*m[1][1] - m[0][1]*m[1][0]
			if det > 0 {
				rot = append(rot, m)
			} else {
				mir = append(mir, m)
			}
		}
	}
	sortMats2(rot)
	sortMats2(mir)

	return &Grid{rotations: rot, mirrors: mir}
}

func sortMats2(ms [][2][2]int) {
	sort.Slice(ms, func(i, j int) bool {
		a, b := ms[i], ms[j]
		ka := [4]int{a[0][0], a[0][1], a[1][0], a[1][1]}
		kb := [4]int{b[0][0], b[0][1], b[1][0], b[1][1]}
		for x := 0; x < 4; x++ {
			if ka[x] != kb[x] {
				return ka[x] < kb[x]
			}
		}
		return false
	})
}

var neighborOffsets = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

func asVoxel(v grid.Voxel) (Voxel, error) {
	cv, ok := v.(Voxel)
	if !ok {
		return Voxel{}, grid.ErrForeignVoxel
	}

	return cv, nil
}

func asTransform(t grid.Transform) (Transform, error) {
	ct, ok := t.(Transform)
	if !ok {
		return Transform{}, grid.ErrForeignTransform
	}

	return ct, nil
}

// GetVoxels implements grid.Grid.
func (g *Grid) GetVoxels(bounds grid.Bounds) []grid.Voxel {
	min, err1 := asVoxel(bounds.Min)
	max, err2 := asVoxel(bounds.Max)
	if err1 != nil || err2 != nil {
		return nil
	}
	var out []grid.Voxel
	for x := min.X; x <= max.X; x++ {
		for y := min.Y; y <= max.Y; y++ {
			out = append(out, Voxel{X: x, Y: y})
		}
	}

	return out
}

// GetVoxelBounds implements grid.Grid.
func (g *Grid) GetVoxelBounds(voxels ...grid.Voxel) (grid.Bounds, error) {
	if len(voxels) == 0 {
		return grid.Bounds{}, grid.ErrEmptyVoxelSet
	}
	first, err := asVoxel(voxels[0])
	if err != nil {
		return grid.Bounds{}, err
	}
	min, max := first, first
	for _, raw := range voxels[1:] {
		v, err := asVoxel(raw)
		if err != nil {
			return grid.Bounds{}, err
		}
		if v.X < min.X {
			min.X = v.X
		}
		if v.Y < min.Y {
			min.Y = v.Y
		}
		if v.X > max.X {
			max.X = v.X
		}
		if v.Y > max.Y {
			max.Y = v.Y
		}
	}

	return grid.Bounds{Min: min, Max: max}, nil
}

// GetBoundsMax implements grid.Grid.
func (g *Grid) GetBoundsMax(bounds ...grid.Bounds) (grid.Bounds, error) {
	if len(bounds) == 0 {
		return grid.Bounds{}, grid.ErrEmptyVoxelSet
	}
	voxels := make([]grid.Voxel, 0, len(bounds)*2)
	for _, b := range bounds {
		voxels = append(voxels, b.Min, b.Max)
	}

	return g.GetVoxelBounds(voxels...)
}

// GetBoundsOrigin implements grid.Grid.
func (g *Grid) GetBoundsOrigin(bounds grid.Bounds) grid.Voxel { return bounds.Min }

// DoTransform implements grid.Grid.
func (g *Grid) DoTransform(rawT grid.Transform, voxels []grid.Voxel) ([]grid.Voxel, error) {
	t, err := asTransform(rawT)
	if err != nil {
		return nil, err
	}
	out := make([]grid.Voxel, len(voxels))
	for i, raw := range voxels {
		v, err := asVoxel(raw)
		if err != nil {
			return nil, err
		}
		out[i] = fromArr(t.a.apply(v.arr()))
	}

	return out, nil
}

// ScaleTransform implements grid.Grid.
func (g *Grid) ScaleTransform(rawT grid.Transform, n int) (grid.Transform, error) {
	t, err := asTransform(rawT)
	if err != nil {
		return nil, err
	}

	return Transform{a: power2(t.a, n)}, nil
}

// GetRotations implements grid.Grid.
func (g *Grid) GetRotations(includeMirrors bool) []grid.Transform {
	out := make([]grid.Transform, 0, 8)
	for _, m := range g.rotations {
		out = append(out, Transform{a: affine2{M: m}})
	}
	if includeMirrors {
		for _, m := range g.mirrors {
			out = append(out, Transform{a: affine2{M: m}})
		}
	}

	return out
}

// GetTranslation implements grid.Grid.
func (g *Grid) GetTranslation(rawFrom, rawTo grid.Voxel) (grid.Transform, error) {
	from, err := asVoxel(rawFrom)
	if err != nil {
		return nil, err
	}
	to, err := asVoxel(rawTo)
	if err != nil {
		return nil, err
	}

	return Transform{a: translation2(to.X-from.X, to.Y-from.Y)}, nil
}

// GetDisassemblyTransforms implements grid.Grid: the 4 unit axis translations.
func (g *Grid) GetDisassemblyTransforms() []grid.Transform {
	out := make([]grid.Transform, 0, 4)
	for _, off := range neighborOffsets {
		out = append(out, Transform{a: translation2(off[0], off[1])})
	}

	return out
}

// IsSeparate implements grid.Grid using 4-connectivity (shared edge).
func (g *Grid) IsSeparate(a, b []grid.Voxel) bool {
	bSet := make(map[Voxel]bool, len(b))
	for _, raw := range b {
		v, err := asVoxel(raw)
		if err != nil {
			return false
		}
		bSet[v] = true
	}
	for _, raw := range a {
		v, err := asVoxel(raw)
		if err != nil {
			return false
		}
		if bSet[v] {
			return false
		}
		for _, off := range neighborOffsets {
			n := Voxel{X: v.X + off[0], Y: v.Y + off[1]}
			if bSet[n] {
				return false
			}
		}
	}

	return true
}

// FormatVoxel implements grid.Grid's persistence-boundary syntax.
func (g *Grid) FormatVoxel(raw grid.Voxel) string {
	v, err := asVoxel(raw)
	if err != nil {
		return ""
	}

	return v.Key()
}

// ParseVoxel implements grid.Grid's persistence-boundary syntax: "x,y".
func (g *Grid) ParseVoxel(s string) (grid.Voxel, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return nil, grid.ErrParseVoxel
	}
	var coords [2]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", grid.ErrParseVoxel, err)
		}
		coords[i] = n
	}

	return Voxel{X: coords[0], Y: coords[1]}, nil
}

// FormatTransform implements grid.Grid's persistence-boundary syntax.
func (g *Grid) FormatTransform(rawT grid.Transform) string {
	t, err := asTransform(rawT)
	if err != nil {
		return ""
	}
	if t.a.M == identity2().M {
		return fmt.Sprintf("t:%d,%d", t.a.T[0], t.a.T[1])
	}
	all := g.GetRotations(true)
	for i, r := range all {
		if r.Key() == t.Key() {
			return fmt.Sprintf("r:%d", i)
		}
	}

	return t.Key()
}

// ParseTransform implements grid.Grid's persistence-boundary syntax.
func (g *Grid) ParseTransform(s string) (grid.Transform, error) {
	switch {
	case strings.HasPrefix(s, "t:"):
		parts := strings.Split(strings.TrimPrefix(s, "t:"), ",")
		if len(parts) != 2 {
			return nil, grid.ErrParseTransform
		}
		var d [2]int
		for i, p := range parts {
			n, err := strconv.Atoi(strings.TrimSpace(p))
			if err != nil {
				return nil, fmt.Errorf("%w: %v", grid.ErrParseTransform, err)
			}
			d[i] = n
		}

		return Transform{a: translation2(d[0], d[1])}, nil
	case strings.HasPrefix(s, "r:"):
		idx, err := strconv.Atoi(strings.TrimPrefix(s, "r:"))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", grid.ErrParseTransform, err)
		}
		all := g.GetRotations(true)
		if idx < 0 || idx >= len(all) {
			return nil, grid.ErrParseTransform
		}

		return all[idx], nil
	default:
		return nil, errors.New("square: " + grid.ErrParseTransform.Error() + ": unknown prefix")
	}
}
