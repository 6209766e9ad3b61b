// Package group3 generates the signed-permutation matrices of rank 3,
// i.e. the 48-element hyperoctahedral group B3, split into its
// orientation-preserving half (the 24 proper rotations of the cube) and
// its orientation-reversing half (the 24 improper rotations / mirrors).
//
// Both grid/cubic and grid/rhombic share this generator: the cube and the
// face-centered-cubic (rhombic) lattice have the same point symmetry group
// Oh, they just restrict it to different underlying voxel sets.
package group3

import "sort"

// permute3 returns every permutation of (0,1,2), in a fixed deterministic order.
func permute3() [][3]int {
	return [][3]int{
		{0, 1, 2}, {0, 2, 1}, {1, 0, 2},
		{1, 2, 0}, {2, 0, 1}, {2, 1, 0},
	}
}

// det3 returns the determinant of a 3x3 integer matrix.
func det3(m [3][3]int) int {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// key3 renders a matrix as a stable sort/dedup key.
func key3(m [3][3]int) [9]int {
	return [9]int{
		m[0][0], m[0][1], m[0][2],
		m[1][0], m[1][1], m[1][2],
		m[2][0], m[2][1], m[2][2],
	}
}

// All generates the 48 signed-permutation matrices of rank 3 and splits
// them into Rotations (det=+1, 24 elements) and Mirrors (det=-1, 24 elements).
// Both slices are returned sorted by key3 for a deterministic, stable
// iteration order independent of Go's map/slice iteration quirks.
func All() (rotations, mirrors [][3][3]int) {
	perms := permute3()
	seen := make(map[[9]int]bool, 48)
	for _, p := range perms {
		for s := 0; s < 8; s++ {
			var m [3][3]int
			for i := 0; i < 3; i++ {
				sign := 1
				if s&(1<<uint(i)) != 0 {
					sign = -1
				}
				m[i][p[i]] = sign
			}
			k := key3(m)
			if seen[k] {
				continue
			}
			seen[k] = true
			if det3(m) > 0 {
				rotations = append(rotations, m)
			} else {
				mirrors = append(mirrors, m)
			}
		}
	}
	sortMats(rotations)
	sortMats(mirrors)

	return rotations, mirrors
}

func sortMats(ms [][3][3]int) {
	sort.Slice(ms, func(i, j int) bool {
		ki, kj := key3(ms[i]), key3(ms[j])
		for x := 0; x < 9; x++ {
			if ki[x] != kj[x] {
				return ki[x] < kj[x]
			}
		}
		return false
	})
}
