package serialize

import (
	"github.com/katalvlaran/puzzlecore/disassemble"
	"github.com/katalvlaran/puzzlecore/grid"
	"github.com/katalvlaran/puzzlecore/piece"
	"github.com/katalvlaran/puzzlecore/solution"
)

// DisassemblyDTO is a Disassembly rendered as a list of step strings
// (spec.md §6's "Disassembly.steps" grammar).
type DisassemblyDTO struct {
	Steps []string `yaml:"steps"`
}

// SolutionDTO is spec.md §6's Solution serialisation: an id, its placements,
// and zero or more disassemblies (the list is empty when Disassemble wasn't
// requested or none was found).
type SolutionDTO struct {
	ID            int              `yaml:"id"`
	Placements    []PieceDTO       `yaml:"placements"`
	Disassemblies []DisassemblyDTO `yaml:"disassemblies,omitempty"`
}

// DisassemblyToDTO converts a live Disassembly to its DTO using g's
// transform string syntax.
func DisassemblyToDTO(g grid.Grid, d disassemble.Disassembly) DisassemblyDTO {
	var steps []string
	for _, s := range d.Steps {
		steps = append(steps, formatStep(g, s))
	}

	return DisassemblyDTO{Steps: steps}
}

// DisassemblyFromDTO reconstructs a Disassembly from d using g's transform
// string syntax.
func DisassemblyFromDTO(g grid.Grid, d DisassemblyDTO) (disassemble.Disassembly, error) {
	var steps []disassemble.Step
	for _, s := range d.Steps {
		step, err := parseStep(g, s)
		if err != nil {
			return disassemble.Disassembly{}, err
		}
		steps = append(steps, step)
	}

	return disassemble.Disassembly{Steps: steps}, nil
}

// SolutionToDTO converts a live Solution to its DTO. Nil slices stay nil so
// Solution round-trips through Marshal/Unmarshal to an equal value.
func SolutionToDTO(g grid.Grid, s solution.Solution) SolutionDTO {
	var placements []PieceDTO
	for _, p := range s.Placements {
		placements = append(placements, PieceToDTO(g, p))
	}

	var disassemblies []DisassemblyDTO
	for _, d := range s.Disassemblies {
		disassemblies = append(disassemblies, DisassemblyToDTO(g, d))
	}

	return SolutionDTO{ID: s.ID, Placements: placements, Disassemblies: disassemblies}
}

// SolutionFromDTO reconstructs a Solution from d.
func SolutionFromDTO(g grid.Grid, d SolutionDTO) (solution.Solution, error) {
	var placements piece.Assembly
	for _, pd := range d.Placements {
		p, err := PieceFromDTO(g, pd)
		if err != nil {
			return solution.Solution{}, err
		}
		placements = append(placements, p)
	}

	var disassemblies []disassemble.Disassembly
	for _, dd := range d.Disassemblies {
		disasm, err := DisassemblyFromDTO(g, dd)
		if err != nil {
			return solution.Solution{}, err
		}
		disassemblies = append(disassemblies, disasm)
	}

	return solution.Solution{ID: d.ID, Placements: placements, Disassemblies: disassemblies}, nil
}

// MarshalSolution renders s as YAML using g's voxel/transform string syntax.
func MarshalSolution(g grid.Grid, s solution.Solution) ([]byte, error) {
	return marshalYAML(SolutionToDTO(g, s))
}

// UnmarshalSolution parses data as a SolutionDTO and reconstructs the Solution.
func UnmarshalSolution(g grid.Grid, data []byte) (solution.Solution, error) {
	var d SolutionDTO
	if err := unmarshalYAML(data, &d); err != nil {
		return solution.Solution{}, err
	}

	return SolutionFromDTO(g, d)
}
