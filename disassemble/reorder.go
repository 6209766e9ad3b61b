package disassemble

// Reorder rewrites steps so that, after every separating step, all steps
// belonging to one side of the split precede all steps belonging to the
// other (spec.md §4.7's depth-first linearization). It is a stable
// bucket-partition applied recursively: each separating step's
// MovedPieces defines "the left side" for everything after it, and every
// later step is routed to left or right by whether it touches any of
// those piece-ids.
//
// Reorder is idempotent: a list it has already produced is, by
// construction, already partitioned by every separating step it contains,
// so a second pass routes every step to the same bucket it is already in
// and returns an equal sequence.
func Reorder(d Disassembly) Disassembly {
	return Disassembly{Steps: reorderSteps(d.Steps)}
}

func reorderSteps(steps []Step) []Step {
	if len(steps) == 0 {
		return nil
	}

	idx := -1
	for i, s := range steps {
		if s.Separates {
			idx = i

			break
		}
	}
	if idx == -1 {
		return append([]Step(nil), steps...)
	}

	head := append([]Step(nil), steps[:idx+1]...)
	rest := steps[idx+1:]

	leftSet := make(map[string]bool, len(steps[idx].MovedPieces))
	for _, id := range steps[idx].MovedPieces {
		leftSet[id] = true
	}

	var left, right []Step
	for _, s := range rest {
		if stepTouches(s, leftSet) {
			left = append(left, s)
		} else {
			right = append(right, s)
		}
	}

	out := append(head, reorderSteps(left)...)
	out = append(out, reorderSteps(right)...)

	return out
}

func stepTouches(s Step, ids map[string]bool) bool {
	for _, id := range s.MovedPieces {
		if ids[id] {
			return true
		}
	}

	return false
}
