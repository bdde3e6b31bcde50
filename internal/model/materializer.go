package model

import "github.com/samber/lo"

// materialize builds the conflict-free grid for one combination. The returned
// allocation sets (one []bool per subject, indexed like its slots) are fresh
// per call: subjects themselves carry no candidate state.
//
// Pass 1 walks subjects in list order and their slots in declaration order,
// allocating every vector-selected slot whose range is still free — first
// writer wins, a lost slot is skipped without negotiation. Pass 2 gives
// fill-all subjects every one of their still-free slots, whether or not the
// vector selected it; the vector only varies the exploration branch, it is
// not an upper bound on what a fill-all subject ends up with.
func materialize(subjects []Subject, combination []SelectionVector, geometry WeekGeometry) (*Grid, [][]bool) {
	grid := NewGrid(geometry)
	allocated := lo.Map(subjects, func(subject Subject, _ int) []bool {
		return make([]bool, len(subject.Slots))
	})

	for i, subject := range subjects {
		for j, slot := range subject.Slots {
			if !combination[i][j] {
				continue
			}
			if grid.Free(slot) {
				grid.Fill(slot, subject.Name)
				allocated[i][j] = true
			}
		}
	}

	for i, subject := range subjects {
		if subject.Kind != FillAll {
			continue
		}
		for j, slot := range subject.Slots {
			if allocated[i][j] {
				continue
			}
			if grid.Free(slot) {
				grid.Fill(slot, subject.Name)
				allocated[i][j] = true
			}
		}
	}

	return grid, allocated
}

type candidateOutcome int

const (
	outcomeFailed candidateOutcome = iota
	outcomeIncomplete
	outcomeComplete
)

// classify inspects the per-subject allocation sets of one candidate. Any
// subject with zero allocated slots fails the whole candidate. A fill-all
// subject with some but not all of its slots makes the candidate incomplete
// yet still acceptable; required-one subjects are complete with any
// allocation, so incompleteness can only come from fill-all subjects.
func classify(subjects []Subject, allocated [][]bool) candidateOutcome {
	outcome := outcomeComplete
	for i, subject := range subjects {
		count := lo.Count(allocated[i], true)
		switch {
		case count == 0:
			return outcomeFailed
		case subject.Kind == FillAll && count < len(subject.Slots):
			outcome = outcomeIncomplete
		}
	}
	return outcome
}
