package serialize

import (
	"github.com/katalvlaran/puzzlecore/assemble"
	"gopkg.in/yaml.v3"
)

// PieceCountDTO mirrors spec.md §6's usedPieceCounts value grammar: either a
// bare integer n (meaning {min:n, max:n}) or a {min,max} mapping. Plain YAML
// tags can't express that union, so (Un)MarshalYAML are hand-written, the
// same technique the teacher's x/marshaller/yaml package uses to dispatch on
// its yamlValue.Kind tag.
type PieceCountDTO struct {
	Min, Max int
}

// MarshalYAML implements yaml.Marshaler: collapses to a bare int when
// Min==Max, otherwise emits the {min,max} mapping.
func (c PieceCountDTO) MarshalYAML() (interface{}, error) {
	if c.Min == c.Max {
		return c.Min, nil
	}

	return struct {
		Min int `yaml:"min"`
		Max int `yaml:"max"`
	}{Min: c.Min, Max: c.Max}, nil
}

// UnmarshalYAML implements yaml.v3's node-based Unmarshaler: accepts a
// bare int or a {min,max} mapping, dispatching on the node's Kind the way
// the teacher's yamlValue.Kind switch does.
func (c *PieceCountDTO) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		var n int
		if err := value.Decode(&n); err != nil {
			return err
		}
		c.Min, c.Max = n, n

		return nil
	}

	var rng struct {
		Min int `yaml:"min"`
		Max int `yaml:"max"`
	}
	if err := value.Decode(&rng); err != nil {
		return err
	}
	c.Min, c.Max = rng.Min, rng.Max

	return nil
}

func pieceCountToDTO(c assemble.PieceCount) PieceCountDTO {
	return PieceCountDTO{Min: c.Min, Max: c.Max}
}

func pieceCountFromDTO(d PieceCountDTO) assemble.PieceCount {
	return assemble.PieceCount{Min: d.Min, Max: d.Max}
}
