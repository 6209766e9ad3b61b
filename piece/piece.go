package piece

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/puzzlecore/grid"
)

// Piece is an identified set of voxels with optional per-voxel attributes.
// Insertion order of voxels is irrelevant to equality; duplicates collapse.
//
// Label and Color are display-only metadata the solver never reads.
type Piece struct {
	// ID uniquely identifies this piece within a puzzle.
	ID int

	// Instance disambiguates duplicate copies of the same piece ID within
	// an assembly. Nil means "no instance assigned" (the problem-level
	// piece, before the solver expands it into placements).
	Instance *int

	// Label, Color are display-only metadata.
	Label, Color string

	voxels     map[string]grid.Voxel            // keyed by Voxel.Key()
	attributes map[string]map[string]bool // attribute name -> Voxel.Key() -> value
}

// New constructs a Piece from a (possibly duplicate-containing) voxel list.
// Returns ErrEmptyVoxelSet if voxels is empty after deduplication.
func New(id int, voxels []grid.Voxel) (Piece, error) {
	if len(voxels) == 0 {
		return Piece{}, ErrEmptyVoxelSet
	}
	vs := make(map[string]grid.Voxel, len(voxels))
	for _, v := range voxels {
		vs[v.Key()] = v
	}

	return Piece{ID: id, voxels: vs}, nil
}

// Voxels returns the piece's voxels in a deterministic order (sorted by key).
func (p Piece) Voxels() []grid.Voxel {
	out := make([]grid.Voxel, 0, len(p.voxels))
	for _, v := range p.voxels {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key() < out[j].Key() })

	return out
}

// Len returns the number of distinct voxels in the piece.
func (p Piece) Len() int { return len(p.voxels) }

// HasVoxel reports whether v is one of the piece's voxels.
func (p Piece) HasVoxel(v grid.Voxel) bool {
	_, ok := p.voxels[v.Key()]

	return ok
}

// SetAttribute records attr=value for voxel v. Intended for goal pieces
// only; validation that non-goal pieces never carry attributes is the
// assemble package's job (it has the goal/non-goal distinction, Piece does
// not).
func (p *Piece) SetAttribute(attr string, v grid.Voxel, value bool) {
	if p.attributes == nil {
		p.attributes = make(map[string]map[string]bool)
	}
	if p.attributes[attr] == nil {
		p.attributes[attr] = make(map[string]bool)
	}
	p.attributes[attr][v.Key()] = value
}

// Attribute returns attr's value for voxel v and whether it was set.
func (p Piece) Attribute(attr string, v grid.Voxel) (value bool, ok bool) {
	m, exists := p.attributes[attr]
	if !exists {
		return false, false
	}
	value, ok = m[v.Key()]

	return value, ok
}

// IsOptional reports whether v carries attribute="optional"=true on this piece.
func (p Piece) IsOptional(v grid.Voxel) bool {
	value, ok := p.Attribute(OptionalAttribute, v)

	return ok && value
}

// WithInstance returns a copy of p with Instance set to n.
func (p Piece) WithInstance(n int) Piece {
	cp := p.Clone()
	cp.Instance = &n

	return cp
}

// WithVoxels returns a copy of p with its voxel set replaced by voxels
// (attributes are dropped — a placement is a fresh occurrence of the
// piece's shape, not a reinterpretation of the original goal voxels).
func (p Piece) WithVoxels(voxels []grid.Voxel) Piece {
	cp := p.Clone()
	cp.voxels = make(map[string]grid.Voxel, len(voxels))
	for _, v := range voxels {
		cp.voxels[v.Key()] = v
	}
	cp.attributes = nil

	return cp
}

// Clone deep-copies p's voxel and attribute maps so the result shares no
// mutable state with p (SPEC_FULL.md's lifecycle/ownership note).
func (p Piece) Clone() Piece {
	cp := Piece{ID: p.ID, Label: p.Label, Color: p.Color}
	if p.Instance != nil {
		n := *p.Instance
		cp.Instance = &n
	}
	cp.voxels = make(map[string]grid.Voxel, len(p.voxels))
	for k, v := range p.voxels {
		cp.voxels[k] = v
	}
	if p.attributes != nil {
		cp.attributes = make(map[string]map[string]bool, len(p.attributes))
		for attr, m := range p.attributes {
			cp2 := make(map[string]bool, len(m))
			for k, v := range m {
				cp2[k] = v
			}
			cp.attributes[attr] = cp2
		}
	}

	return cp
}

// CompleteID renders "{id}" or "{id}-{instance}" when Instance is set.
func (p Piece) CompleteID() string {
	if p.Instance != nil {
		return fmt.Sprintf("%d-%d", p.ID, *p.Instance)
	}

	return fmt.Sprintf("%d", p.ID)
}

// Equal compares voxel sets and attribute values restricted to voxels
// present in both pieces (per spec.md §3's Piece equality rule). ID and
// Instance are not compared — callers that need identity equality should
// compare CompleteID() explicitly.
func (p Piece) Equal(other Piece) bool {
	if len(p.voxels) != len(other.voxels) {
		return false
	}
	for k := range p.voxels {
		if _, ok := other.voxels[k]; !ok {
			return false
		}
	}
	for attr, m := range p.attributes {
		om := other.attributes[attr]
		for vk, val := range m {
			if _, present := p.voxels[vk]; !present {
				continue
			}
			if ov, ok := om[vk]; !ok || ov != val {
				return false
			}
		}
	}
	for attr, om := range other.attributes {
		m := p.attributes[attr]
		for vk, val := range om {
			if _, present := other.voxels[vk]; !present {
				continue
			}
			if v, ok := m[vk]; !ok || v != val {
				return false
			}
		}
	}

	return true
}

// Assembly is an ordered sequence of Pieces whose voxel sets are pairwise
// disjoint — an invariant produced by the assemble solver and assumed (not
// re-validated per call) by the disassemble package.
type Assembly []Piece

// Clone deep-copies every piece in the assembly.
func (a Assembly) Clone() Assembly {
	out := make(Assembly, len(a))
	for i, p := range a {
		out[i] = p.Clone()
	}

	return out
}

// ErrNotDisjoint indicates two pieces of an assembly share a voxel.
var ErrNotDisjoint = fmt.Errorf("piece: assembly pieces are not pairwise voxel-disjoint")

// ValidateDisjoint checks the pairwise-disjoint invariant, returning
// ErrNotDisjoint (wrapped with the offending complete-ids) on violation.
// Callers needing this check routinely (e.g. solver tests) call it
// explicitly; the disassembler trusts the invariant instead of re-checking
// it on every movement (see doc.go).
func (a Assembly) ValidateDisjoint() error {
	seen := make(map[string]string, 64) // voxel key -> owning complete id
	for _, p := range a {
		for k := range p.voxels {
			if owner, ok := seen[k]; ok {
				return fmt.Errorf("%w: voxel %s claimed by both %s and %s", ErrNotDisjoint, k, owner, p.CompleteID())
			}
			seen[k] = p.CompleteID()
		}
	}

	return nil
}

// Voxels returns the union of every piece's voxels, in a deterministic order.
func (a Assembly) Voxels() []grid.Voxel {
	var out []grid.Voxel
	for _, p := range a {
		out = append(out, p.Voxels()...)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key() < out[j].Key() })

	return out
}

// ByCompleteID returns the piece with the given complete id, or ok=false.
func (a Assembly) ByCompleteID(completeID string) (Piece, bool) {
	for _, p := range a {
		if p.CompleteID() == completeID {
			return p, true
		}
	}

	return Piece{}, false
}
