package model

import (
	"errors"
	"fmt"
	"slices"

	"github.com/samber/lo"
)

var ErrNoSubjects = errors.New("no subjects to solve")

// Result aggregates everything one solve produced.
type Result struct {
	Schedules    []*Schedule
	Duplicates   int
	Incomplete   int
	Combinations uint64
}

// Solver enumerates every combination of per-subject slot selections,
// materializes each into a conflict-free weekly grid and keeps every unique
// acceptable schedule.
type Solver interface {
	// Solve evaluates the full combination space for the given subjects, in a
	// stable order, and returns the accepted schedules plus aggregate counts.
	// The subject list order is load-bearing: earlier subjects win slot
	// conflicts during materialization.
	Solve(subjects []Subject) (*Result, error)

	// Verify checks an accepted schedule against the subjects: every occupied
	// tick belongs to a declared slot of its subject, allocations never split
	// a slot, required-one subjects hold exactly one slot and every subject
	// holds at least one.
	Verify(schedule *Schedule, subjects []Subject) bool
}

type SolverOption func(*combinationSolver)

// WithGeometry overrides the grid geometry the solver materializes into.
func WithGeometry(geometry WeekGeometry) SolverOption {
	return func(solver *combinationSolver) {
		solver.geometry = geometry
	}
}

// WithScheduleHandler registers a callback invoked once per accepted
// schedule, in discovery order, while the solve is running. This is the hook
// the renderers attach to.
func WithScheduleHandler(handler func(*Schedule)) SolverOption {
	return func(solver *combinationSolver) {
		solver.handler = handler
	}
}

func NewSolver(options ...SolverOption) Solver {
	solver := &combinationSolver{geometry: DefaultGeometry}
	for _, option := range options {
		option(solver)
	}
	return solver
}

type combinationSolver struct {
	geometry WeekGeometry
	handler  func(*Schedule)
}

func (solver *combinationSolver) Solve(subjects []Subject) (*Result, error) {
	if len(subjects) == 0 {
		return nil, ErrNoSubjects
	}
	if err := solver.validate(subjects); err != nil {
		return nil, err
	}

	vectors := lo.Map(subjects, func(subject Subject, _ int) []SelectionVector {
		return ValidSelections(subject)
	})
	radices := lo.Map(vectors, func(subjectVectors []SelectionVector, _ int) int {
		return len(subjectVectors)
	})

	store := &resultStore{}
	result := &Result{}

	// A subject without valid selections contributes an empty factor: the
	// product is empty and every candidate would fail that subject anyway.
	if !slices.Contains(radices, 0) {
		solver.traverse(subjects, vectors, radices, store, result)
	}

	result.Schedules = store.schedules
	result.Duplicates = store.duplicates
	result.Incomplete = lo.CountBy(store.schedules, func(schedule *Schedule) bool {
		return schedule.Incomplete
	})
	return result, nil
}

// traverse walks the Cartesian product of the per-subject vector lists with a
// mixed-radix odometer: the last subject's index varies fastest. Each product
// point is visited exactly once, so no memoization or revisit pruning is
// needed, and the order is reproducible across runs.
func (solver *combinationSolver) traverse(
	subjects []Subject,
	vectors [][]SelectionVector,
	radices []int,
	store *resultStore,
	result *Result,
) {
	indices := make([]int, len(subjects))
	combination := make([]SelectionVector, len(subjects))

	for {
		for i, index := range indices {
			combination[i] = vectors[i][index]
		}
		result.Combinations++
		solver.evaluate(subjects, combination, store)

		position := len(indices) - 1
		for position >= 0 {
			indices[position]++
			if indices[position] < radices[position] {
				break
			}
			indices[position] = 0
			position--
		}
		if position < 0 {
			return
		}
	}
}

// evaluate runs one candidate through materialization, classification and
// deduplication. Failed candidates are discarded without touching the
// duplicate counter.
func (solver *combinationSolver) evaluate(subjects []Subject, combination []SelectionVector, store *resultStore) {
	grid, allocated := materialize(subjects, combination, solver.geometry)

	outcome := classify(subjects, allocated)
	if outcome == outcomeFailed {
		return
	}

	schedule, accepted := store.add(grid, outcome == outcomeIncomplete)
	if accepted && solver.handler != nil {
		solver.handler(schedule)
	}
}

// validate fails fast on subject lists the parser should never hand over: a
// silently skipped or misplaced subject would change the solution space.
func (solver *combinationSolver) validate(subjects []Subject) error {
	names := make(map[string]bool, len(subjects))
	for _, subject := range subjects {
		if subject.Name == "" {
			return errors.New("subject with empty name")
		}
		if names[subject.Name] {
			return fmt.Errorf("duplicate subject name %q", subject.Name)
		}
		names[subject.Name] = true

		for _, slot := range subject.Slots {
			if slot.Start >= slot.End || slot.Start%TickMinutes != 0 || slot.End%TickMinutes != 0 {
				return fmt.Errorf("subject %q: invalid slot range %d-%d", subject.Name, slot.Start, slot.End)
			}
			if !solver.geometry.Contains(slot) {
				return fmt.Errorf("subject %q: slot outside the week geometry", subject.Name)
			}
		}
		for i, slot := range subject.Slots {
			for _, other := range subject.Slots[i+1:] {
				if slot.Overlaps(other) {
					return fmt.Errorf("subject %q: overlapping slots", subject.Name)
				}
			}
		}
	}
	return nil
}

func (solver *combinationSolver) Verify(schedule *Schedule, subjects []Subject) bool {
	grid := schedule.Grid
	ownedTicks := map[string]int{}
	for tick := 0; tick < grid.Geometry().TotalTicks(); tick++ {
		if name := grid.At(tick); name != "" {
			ownedTicks[name]++
		}
	}

	declared := lo.SliceToMap(subjects, func(subject Subject) (string, bool) {
		return subject.Name, true
	})
	for name := range ownedTicks {
		if !declared[name] {
			return false
		}
	}

	for _, subject := range subjects {
		allocatedTicks := 0
		allocatedSlots := 0
		for _, slot := range subject.Slots {
			owned, ticks := slotOwner(grid, slot, subject.Name)
			if owned == partiallyOwned {
				return false
			}
			if owned == fullyOwned {
				allocatedSlots++
				allocatedTicks += ticks
			}
		}

		// Every tick the subject owns must come from a declared slot.
		if allocatedTicks != ownedTicks[subject.Name] {
			return false
		}
		if allocatedSlots == 0 {
			return false
		}
		if subject.Kind == RequiredOne && allocatedSlots != 1 {
			return false
		}
	}
	return true
}

type slotOwnership int

const (
	notOwned slotOwnership = iota
	partiallyOwned
	fullyOwned
)

// slotOwner scans a slot's range and reports whether the subject holds all,
// some or none of its ticks, plus the tick count of the range.
func slotOwner(grid *Grid, slot TimeSlot, name string) (slotOwnership, int) {
	owned, total := 0, 0
	for minute := slot.Start; minute < slot.End; minute += TickMinutes {
		total++
		if grid.At(grid.Geometry().Tick(slot.Day, minute)) == name {
			owned++
		}
	}
	switch owned {
	case 0:
		return notOwned, total
	case total:
		return fullyOwned, total
	}
	return partiallyOwned, total
}
