package serialize

import (
	"strings"

	"github.com/katalvlaran/puzzlecore/grid"
	"github.com/katalvlaran/puzzlecore/piece"
)

// PieceDTO is spec.md §6's Piece serialisation: voxels joined by "; ",
// instance/label/color omitted when zero-valued, and optional voxels listed
// by their formatted string (the only voxel attribute the core interprets).
type PieceDTO struct {
	ID       int      `yaml:"id"`
	Instance *int     `yaml:"instance,omitempty"`
	Voxels   string   `yaml:"voxels"`
	Label    string   `yaml:"label,omitempty"`
	Color    string   `yaml:"color,omitempty"`
	Optional []string `yaml:"voxelAttributes,omitempty"`
}

// PieceToDTO converts a live Piece to its DTO using g's voxel string syntax.
func PieceToDTO(g grid.Grid, p piece.Piece) PieceDTO {
	voxels := p.Voxels()
	var formatted []string
	var optional []string
	for _, v := range voxels {
		s := g.FormatVoxel(v)
		formatted = append(formatted, s)
		if p.IsOptional(v) {
			optional = append(optional, s)
		}
	}

	var instance *int
	if p.Instance != nil {
		n := *p.Instance
		instance = &n
	}

	return PieceDTO{
		ID:       p.ID,
		Instance: instance,
		Voxels:   strings.Join(formatted, "; "),
		Label:    p.Label,
		Color:    p.Color,
		Optional: optional,
	}
}

// PieceFromDTO reconstructs a Piece from d using g's voxel string syntax.
func PieceFromDTO(g grid.Grid, d PieceDTO) (piece.Piece, error) {
	var voxels []grid.Voxel
	for _, s := range strings.Split(d.Voxels, ";") {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		v, err := g.ParseVoxel(s)
		if err != nil {
			return piece.Piece{}, err
		}
		voxels = append(voxels, v)
	}

	p, err := piece.New(d.ID, voxels)
	if err != nil {
		return piece.Piece{}, err
	}
	p.Label = d.Label
	p.Color = d.Color
	if d.Instance != nil {
		p = p.WithInstance(*d.Instance)
	}

	for _, s := range d.Optional {
		v, err := g.ParseVoxel(strings.TrimSpace(s))
		if err != nil {
			return piece.Piece{}, err
		}
		p.SetAttribute(piece.OptionalAttribute, v, true)
	}

	return p, nil
}

// MarshalPiece renders p as YAML using g's voxel string syntax.
func MarshalPiece(g grid.Grid, p piece.Piece) ([]byte, error) {
	return marshalYAML(PieceToDTO(g, p))
}

// UnmarshalPiece parses data as a PieceDTO and reconstructs the Piece.
func UnmarshalPiece(g grid.Grid, data []byte) (piece.Piece, error) {
	var d PieceDTO
	if err := unmarshalYAML(data, &d); err != nil {
		return piece.Piece{}, err
	}

	return PieceFromDTO(g, d)
}
