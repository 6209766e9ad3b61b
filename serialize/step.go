package serialize

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/puzzlecore/disassemble"
	"github.com/katalvlaran/puzzlecore/grid"
)

// formatStep renders s per spec.md §6: "pieces=c1,c2 transform=T [repeat=N]
// [separates]", omitting repeat when it's 1 and separates when false.
func formatStep(g grid.Grid, s disassemble.Step) string {
	parts := []string{
		"pieces=" + strings.Join(s.MovedPieces, ","),
		"transform=" + g.FormatTransform(s.Transform),
	}
	if s.Repeat != 1 {
		parts = append(parts, fmt.Sprintf("repeat=%d", s.Repeat))
	}
	if s.Separates {
		parts = append(parts, "separates")
	}

	return strings.Join(parts, " ")
}

// parseStep reverses formatStep. Absent repeat defaults to 1; absent
// separates defaults to false.
func parseStep(g grid.Grid, s string) (disassemble.Step, error) {
	step := disassemble.Step{Repeat: 1}
	sawPieces, sawTransform := false, false

	for _, field := range strings.Fields(s) {
		switch {
		case field == "separates":
			step.Separates = true
		case strings.HasPrefix(field, "pieces="):
			v := strings.TrimPrefix(field, "pieces=")
			if v != "" {
				step.MovedPieces = strings.Split(v, ",")
			}
			sawPieces = true
		case strings.HasPrefix(field, "transform="):
			t, err := g.ParseTransform(strings.TrimPrefix(field, "transform="))
			if err != nil {
				return disassemble.Step{}, err
			}
			step.Transform = t
			sawTransform = true
		case strings.HasPrefix(field, "repeat="):
			n, err := strconv.Atoi(strings.TrimPrefix(field, "repeat="))
			if err != nil {
				return disassemble.Step{}, fmt.Errorf("%w: %s", ErrMalformedStep, s)
			}
			step.Repeat = n
		default:
			return disassemble.Step{}, fmt.Errorf("%w: %s", ErrMalformedStep, s)
		}
	}
	if !sawPieces || !sawTransform {
		return disassemble.Step{}, fmt.Errorf("%w: %s", ErrMalformedStep, s)
	}

	return step, nil
}
