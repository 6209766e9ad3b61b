package serialize

import (
	"github.com/katalvlaran/puzzlecore/assemble"
	"github.com/katalvlaran/puzzlecore/grid"
	"github.com/katalvlaran/puzzlecore/piece"
)

// ProblemDTO is spec.md §6's AssemblyProblem serialisation. Id and Label are
// editor-level metadata with no corresponding field on assemble.Problem;
// they round-trip through the DTO only, not through the live type.
type ProblemDTO struct {
	ID                  string                `yaml:"id,omitempty"`
	Label               string                `yaml:"label,omitempty"`
	SolverID            string                `yaml:"solverId"`
	SymmetryReduction   string                `yaml:"symmetryReduction"`
	Disassemble         bool                  `yaml:"disassemble"`
	RemoveNoDisassembly bool                  `yaml:"removeNoDisassembly"`
	UsedPieceCounts     map[int]PieceCountDTO `yaml:"usedPieceCounts"`
	GoalPieceID         *int                  `yaml:"goalPieceId,omitempty"`
	Pieces              []PieceDTO            `yaml:"pieces"`
}

func symmetryModeToString(m assemble.SymmetryMode) string {
	switch m {
	case assemble.SymmetryRotation:
		return "rotation"
	case assemble.SymmetryRotationMirror:
		return "rotation+mirror"
	default:
		return "none"
	}
}

func symmetryModeFromString(s string) (assemble.SymmetryMode, error) {
	switch s {
	case "", "none":
		return assemble.SymmetryNone, nil
	case "rotation":
		return assemble.SymmetryRotation, nil
	case "rotation+mirror":
		return assemble.SymmetryRotationMirror, nil
	default:
		return 0, ErrUnknownSymmetryReduction
	}
}

// ProblemToDTO converts a live Problem to its DTO, using g's voxel string
// syntax for every piece it carries (including the goal).
func ProblemToDTO(g grid.Grid, p assemble.Problem) ProblemDTO {
	var counts map[int]PieceCountDTO
	if len(p.Counts) > 0 {
		counts = make(map[int]PieceCountDTO, len(p.Counts))
		for id, c := range p.Counts {
			counts[id] = pieceCountToDTO(c)
		}
	}

	var pieces []PieceDTO
	for _, pc := range p.Pieces {
		pieces = append(pieces, PieceToDTO(g, pc))
	}

	goalID := p.GoalPieceID

	return ProblemDTO{
		SolverID:            "assembly",
		SymmetryReduction:   symmetryModeToString(p.Symmetry),
		Disassemble:         p.Disassemble,
		RemoveNoDisassembly: p.RemoveNoDisassembly,
		UsedPieceCounts:     counts,
		GoalPieceID:         &goalID,
		Pieces:              pieces,
	}
}

// ProblemFromDTO reconstructs a Problem from d, using g's voxel string
// syntax for every piece.
func ProblemFromDTO(g grid.Grid, d ProblemDTO) (assemble.Problem, error) {
	symmetry, err := symmetryModeFromString(d.SymmetryReduction)
	if err != nil {
		return assemble.Problem{}, err
	}

	var pieces []piece.Piece
	for _, pd := range d.Pieces {
		pc, err := PieceFromDTO(g, pd)
		if err != nil {
			return assemble.Problem{}, err
		}
		pieces = append(pieces, pc)
	}

	var counts map[int]assemble.PieceCount
	if len(d.UsedPieceCounts) > 0 {
		counts = make(map[int]assemble.PieceCount, len(d.UsedPieceCounts))
		for id, c := range d.UsedPieceCounts {
			counts[id] = pieceCountFromDTO(c)
		}
	}

	var goalID int
	if d.GoalPieceID != nil {
		goalID = *d.GoalPieceID
	}

	return assemble.Problem{
		GoalPieceID:         goalID,
		Pieces:              pieces,
		Counts:              counts,
		Symmetry:            symmetry,
		Disassemble:         d.Disassemble,
		RemoveNoDisassembly: d.RemoveNoDisassembly,
	}, nil
}

// MarshalProblem renders p as YAML using g's voxel string syntax.
func MarshalProblem(g grid.Grid, p assemble.Problem) ([]byte, error) {
	return marshalYAML(ProblemToDTO(g, p))
}

// UnmarshalProblem parses data as a ProblemDTO and reconstructs the Problem.
func UnmarshalProblem(g grid.Grid, data []byte) (assemble.Problem, error) {
	var d ProblemDTO
	if err := unmarshalYAML(data, &d); err != nil {
		return assemble.Problem{}, err
	}

	return ProblemFromDTO(g, d)
}
