package model

import "fmt"

// SubjectKind determines how a subject's candidate slots must be fulfilled in
// an accepted schedule.
type SubjectKind int

const (
	// RequiredOne subjects must occupy exactly one of their declared slots.
	RequiredOne SubjectKind = iota
	// FillAll subjects attempt to occupy every declared slot, accepting
	// partial allocation when some slots are already taken.
	FillAll
)

func (kind SubjectKind) String() string {
	switch kind {
	case RequiredOne:
		return "required-one"
	case FillAll:
		return "fill-all"
	}
	return fmt.Sprintf("SubjectKind(%d)", int(kind))
}

// Color is the subject's display color, carried through to the renderers.
type Color struct {
	R, G, B uint8
}

// DefaultColor is used when a subject definition does not state a color.
var DefaultColor = Color{R: 127, G: 127, B: 127}

// TimeSlot is one candidate weekly time window of a subject. Day is a
// Monday-based weekday index (0 = Monday). Start and End are minutes from
// midnight, End exclusive; both must be aligned to the scheduling quantum.
type TimeSlot struct {
	Day      int
	Start    int
	End      int
	Location string
}

// Subject is a read-only record describing one subject to schedule. Subjects
// are never mutated during solving: all per-candidate allocation state lives
// in the solver.
type Subject struct {
	Name  string
	Kind  SubjectKind
	Slots []TimeSlot
	Color Color
}

// Overlaps reports whether two slots share at least one tick.
func (slot TimeSlot) Overlaps(other TimeSlot) bool {
	return slot.Day == other.Day && slot.Start < other.End && other.Start < slot.End
}
