package model

import "github.com/samber/lo"

// Schedule is one accepted weekly grid. Sequence is 1-based in discovery
// order and stable across runs; the renderers derive output names from it.
type Schedule struct {
	Grid       *Grid
	Incomplete bool
	Sequence   int
}

// resultStore collects accepted schedules in discovery order and rejects any
// grid equal to one already stored. Comparison is a full grid scan per stored
// schedule, which is fine at this problem's scale (tens to low hundreds of
// accepted schedules).
type resultStore struct {
	schedules  []*Schedule
	duplicates int
}

// add stores the grid as a new schedule unless an equal grid exists. It
// returns the stored schedule and true, or nil and false for a duplicate.
func (store *resultStore) add(grid *Grid, incomplete bool) (*Schedule, bool) {
	duplicate := lo.SomeBy(store.schedules, func(schedule *Schedule) bool {
		return schedule.Grid.Equal(grid)
	})
	if duplicate {
		store.duplicates++
		return nil, false
	}

	schedule := &Schedule{
		Grid:       grid,
		Incomplete: incomplete,
		Sequence:   len(store.schedules) + 1,
	}
	store.schedules = append(store.schedules, schedule)
	return schedule, true
}
