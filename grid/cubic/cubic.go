package cubic

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/puzzlecore/grid"
	"github.com/katalvlaran/puzzlecore/grid/internal/affine3"
	"github.com/katalvlaran/puzzlecore/grid/internal/group3"
)

// Voxel is a cell of the cubic lattice Z^3.
type Voxel struct {
	X, Y, Z int
}

// Key implements grid.Voxel.
func (v Voxel) Key() string {
	return fmt.Sprintf("%d,%d,%d", v.X, v.Y, v.Z)
}

func (v Voxel) arr() [3]int { return [3]int{v.X, v.Y, v.Z} }

func fromArr(a [3]int) Voxel { return Voxel{X: a[0], Y: a[1], Z: a[2]} }

// Transform is an affine map on the cubic lattice: rotation, translation,
// or (internally, during composition) a combination of both.
type Transform struct {
	t affine3.Transform
}

// Key implements grid.Transform.
func (t Transform) Key() string { return t.t.Key() }

// Grid implements grid.Grid for the axis-aligned unit-cube lattice.
type Grid struct {
	rotations [][3][3]int // proper rotations only, length 24
	mirrors   [][3][3]int // improper rotations, length 24
}

// New constructs a cubic Grid. Construction is O(1): the rotation group is
// generated once via grid/internal/group3.
func New() *Grid {
	rot, mir := group3.All()

	return &Grid{rotations: rot, mirrors: mir}
}

var neighborOffsets = [6][3]int{
	{1, 0, 0}, {-1, 0, 0},
	{0, 1, 0}, {0, -1, 0},
	{0, 0, 1}, {0, 0, -1},
}

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
			for z := min.Z; z <= max.Z; z++ {
				out = append(out, Voxel{X: x, Y: y, Z: z})
			}
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
		if v.Z < min.Z {
			min.Z = v.Z
		}
		if v.X > max.X {
			max.X = v.X
		}
		if v.Y > max.Y {
			max.Y = v.Y
		}
		if v.Z > max.Z {
			max.Z = v.Z
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
func (g *Grid) GetBoundsOrigin(bounds grid.Bounds) grid.Voxel {
	return bounds.Min
}

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
		out[i] = fromArr(t.t.Apply(v.arr()))
	}

	return out, nil
}

// ScaleTransform implements grid.Grid.
func (g *Grid) ScaleTransform(rawT grid.Transform, n int) (grid.Transform, error) {
	t, err := asTransform(rawT)
	if err != nil {
		return nil, err
	}

	return Transform{t: affine3.Power(t.t, n)}, nil
}

// GetRotations implements grid.Grid. Order is the stable order produced by
// group3.All: all 24 proper rotations first, then (if requested) the 24
// mirrors, each block internally sorted by matrix key.
func (g *Grid) GetRotations(includeMirrors bool) []grid.Transform {
	out := make([]grid.Transform, 0, 48)
	for _, m := range g.rotations {
		out = append(out, Transform{t: affine3.Rotation(m)})
	}
	if includeMirrors {
		for _, m := range g.mirrors {
			out = append(out, Transform{t: affine3.Rotation(m)})
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

	return Transform{t: affine3.Translation(to.X-from.X, to.Y-from.Y, to.Z-from.Z)}, nil
}

// GetDisassemblyTransforms implements grid.Grid: the 6 unit axis translations.
func (g *Grid) GetDisassemblyTransforms() []grid.Transform {
	out := make([]grid.Transform, 0, 6)
	for _, off := range neighborOffsets {
		out = append(out, Transform{t: affine3.Translation(off[0], off[1], off[2])})
	}

	return out
}

// IsSeparate implements grid.Grid using 6-connectivity (shared face).
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
			return false // shared cell
		}
		for _, off := range neighborOffsets {
			n := Voxel{X: v.X + off[0], Y: v.Y + off[1], Z: v.Z + off[2]}
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

// ParseVoxel implements grid.Grid's persistence-boundary syntax: "x,y,z".
func (g *Grid) ParseVoxel(s string) (grid.Voxel, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return nil, grid.ErrParseVoxel
	}
	var coords [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", grid.ErrParseVoxel, err)
		}
		coords[i] = n
	}

	return Voxel{X: coords[0], Y: coords[1], Z: coords[2]}, nil
}

// FormatTransform implements grid.Grid's persistence-boundary syntax.
// Pure translations render as "t:dx,dy,dz"; pure rotations render as the
// index of the matching entry in GetRotations(true) ("r:<index>").
func (g *Grid) FormatTransform(rawT grid.Transform) string {
	t, err := asTransform(rawT)
	if err != nil {
		return ""
	}
	if t.t.M == affine3.Identity().M {
		return fmt.Sprintf("t:%d,%d,%d", t.t.T[0], t.t.T[1], t.t.T[2])
	}
	all := g.GetRotations(true)
	for i, r := range all {
		if r.Key() == t.Key() {
			return fmt.Sprintf("r:%d", i)
		}
	}

	return t.Key() // fallback: composed/unrecognized transform, raw key
}

// ParseTransform implements grid.Grid's persistence-boundary syntax.
func (g *Grid) ParseTransform(s string) (grid.Transform, error) {
	switch {
	case strings.HasPrefix(s, "t:"):
		parts := strings.Split(strings.TrimPrefix(s, "t:"), ",")
		if len(parts) != 3 {
			return nil, grid.ErrParseTransform
		}
		var d [3]int
		for i, p := range parts {
			n, err := strconv.Atoi(strings.TrimSpace(p))
			if err != nil {
				return nil, fmt.Errorf("%w: %v", grid.ErrParseTransform, err)
			}
			d[i] = n
		}

		return Transform{t: affine3.Translation(d[0], d[1], d[2])}, nil
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
		return nil, errors.New("cubic: " + grid.ErrParseTransform.Error() + ": unknown prefix")
	}
}
