package assemble

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/katalvlaran/puzzlecore/cover"
	"github.com/katalvlaran/puzzlecore/disassemble"
	"github.com/katalvlaran/puzzlecore/grid"
	"github.com/katalvlaran/puzzlecore/piece"
	"github.com/katalvlaran/puzzlecore/placement"
	"github.com/katalvlaran/puzzlecore/solution"
	"github.com/katalvlaran/puzzlecore/symmetry"
	"github.com/katalvlaran/puzzlecore/telemetry"
)

// Solve runs spec.md §4.5 end to end: validate, expand placements (with
// symmetry reduction when requested), build and solve the cover matrix,
// reconstruct assemblies, optionally disassemble them, and renumber the
// survivors 1..N.
func Solve(g grid.Grid, p Problem, opts Options) ([]solution.Solution, error) {
	runID := uuid.New()
	opts.Callbacks.Logf(telemetry.LevelDebug, "assemble.Solve starting", telemetry.Field{Key: "run_id", Value: runID})

	goal, others, err := validate(p)
	if err != nil {
		return nil, err
	}
	goalVoxels := goal.Voxels()

	includeMirrors := p.Symmetry == SymmetryRotationMirror
	rotations := g.GetRotations(includeMirrors)

	symmetryPieceID, symmetryRotations := -1, []grid.Transform(nil)
	if p.Symmetry != SymmetryNone {
		var candidates []piece.Piece
		for _, op := range others {
			c := p.Counts[op.ID]
			if c.Min == 1 && c.Max == 1 {
				candidates = append(candidates, op)
			}
		}
		result, err := symmetry.Reduce(g, goalVoxels, symmetry.CandidatesFrom(candidates), rotations)
		if err != nil {
			return nil, err
		}
		if result != nil {
			symmetryPieceID = result.PieceID
			symmetryRotations = result.AllowedRotations
			opts.Callbacks.Logf(telemetry.LevelDebug, "symmetry reduction chose a piece",
				telemetry.Field{Key: "piece_id", Value: symmetryPieceID},
				telemetry.Field{Key: "reduction", Value: result.Reduction})
		}
	}

	placementsByID := make(map[int][]piece.Piece, len(others))
	for _, op := range others {
		r := rotations
		if op.ID == symmetryPieceID {
			r = symmetryRotations
		}
		pls, err := placement.Enumerate(g, goalVoxels, op, r)
		if err != nil {
			return nil, err
		}
		if len(pls) == 0 {
			return nil, fmt.Errorf("%w: piece %q (id %d)", ErrPieceUnplaceable, op.Label, op.ID)
		}
		placementsByID[op.ID] = pls
	}
	opts.Callbacks.Progressf(33, "placements")

	m, numPieceCols, rowPieceID, rowPlacement, err := buildMatrix(others, placementsByID, goal, goalVoxels, p.Counts)
	if err != nil {
		return nil, err
	}
	opts.Callbacks.Logf(telemetry.LevelDebug, "cover matrix built",
		telemetry.Field{Key: "rows", Value: len(rowPieceID)},
		telemetry.Field{Key: "columns", Value: len(others) + len(goalVoxels)})

	result := cover.Solve(m, cover.Options{MaxSolutions: opts.MaxSolutions, NodeBudget: opts.CoverNodeBudget})
	opts.Callbacks.Progressf(66, "cover")

	var solutions []solution.Solution
	for _, sel := range result.Solutions {
		placements, err := reconstruct(m, numPieceCols, sel, rowPieceID, rowPlacement, p.Counts)
		if err != nil {
			return nil, err
		}

		sol := solution.Solution{Placements: placements}
		if p.Disassemble {
			d, err := disassemble.Disassemble(g, placements, disassemble.Options{NodeBudget: opts.DisassemblyNodeBudget})
			switch {
			case err == nil:
				spaced, err := disassemble.SpaceSeparatedParts(g, placements, d)
				if err != nil {
					return nil, err
				}
				sol.Disassemblies = []disassemble.Disassembly{spaced}
			case errorsIsStuckOrInconclusive(err):
				// no disassembly found; sol.Disassemblies stays nil.
			default:
				return nil, err
			}
			opts.Callbacks.Logf(telemetry.LevelDebug, "disassembly resolved",
				telemetry.Field{Key: "disassemblies", Value: len(sol.Disassemblies)})
		}
		if p.RemoveNoDisassembly && p.Disassemble && len(sol.Disassemblies) == 0 {
			continue
		}

		solutions = append(solutions, sol)
		opts.Callbacks.Logf(telemetry.LevelDebug, "solution emitted",
			telemetry.Field{Key: "solutions", Value: len(solutions)})
	}

	for i := range solutions {
		solutions[i].ID = i + 1
	}
	opts.Callbacks.Progressf(100, "done")
	opts.Callbacks.Logf(telemetry.LevelInfo, "assemble.Solve finished",
		telemetry.Field{Key: "run_id", Value: runID},
		telemetry.Field{Key: "solutions", Value: len(solutions)})

	return solutions, nil
}

func errorsIsStuckOrInconclusive(err error) bool {
	return errors.Is(err, disassemble.ErrStuck) || errors.Is(err, disassemble.ErrInconclusive)
}

// reconstruct recovers an Assembly from one cover solution (a list of
// selected row indices), assigning an instance counter per piece id whose
// count range allows more than one copy.
//
// Each selected row is cross-checked against the matrix itself via
// RowColumns, independent of the rowPieceID bookkeeping built alongside it:
// a solved row must touch exactly one piece column (index < numPieceCols).
// If it doesn't, cover.Solve returned a row that can't correspond to a
// single placement, an internal invariant violation rather than anything a
// caller can have caused.
func reconstruct(m *cover.Matrix, numPieceCols int, sel []int, rowPieceID []int, rowPlacement []piece.Piece, counts map[int]PieceCount) (piece.Assembly, error) {
	instanceCounters := make(map[int]int, len(sel))
	placements := make(piece.Assembly, 0, len(sel))
	for _, rowID := range sel {
		pieceCols := 0
		for _, c := range m.RowColumns(rowID) {
			if c < numPieceCols {
				pieceCols++
			}
		}
		if pieceCols != 1 {
			return nil, invariantf(ErrMultiplePiecesInRow)
		}

		id := rowPieceID[rowID]
		pl := rowPlacement[rowID].Clone()
		if counts[id].Max > 1 {
			n := instanceCounters[id]
			instanceCounters[id] = n + 1
			pl = pl.WithInstance(n)
		}
		placements = append(placements, pl)
	}

	return placements, nil
}
