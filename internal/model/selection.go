package model

import "github.com/samber/lo"

// SelectionVector records, per candidate slot of one subject, whether the
// slot is chosen for the first-come pass of a candidate schedule.
type SelectionVector []bool

// ValidSelections enumerates every selection vector consistent with the
// subject's kind, in a fixed order (ascending bitmask, slot i at bit i):
//   - RequiredOne: exactly one slot chosen
//   - FillAll: at least one slot chosen
//
// A subject with zero slots yields an empty sequence; the traversal treats it
// as an empty factor of the product, so no combination is ever evaluated.
func ValidSelections(subject Subject) []SelectionVector {
	count := len(subject.Slots)
	vectors := make([]SelectionVector, 0, count)

	for mask := 0; mask < 1<<count; mask++ {
		vector := make(SelectionVector, count)
		for i := range count {
			vector[i] = mask&(1<<i) != 0
		}

		chosen := lo.Count(vector, true)
		if subject.Kind == RequiredOne && chosen != 1 {
			continue
		}
		if chosen == 0 {
			continue
		}

		vectors = append(vectors, vector)
	}

	return vectors
}

// SelectionCursor steps through a subject's valid selection vectors.
// Advancing past the last vector sets the exhausted flag without moving the
// position, so a caller can detect wrap-around, clear the flag and continue
// from the same vector.
type SelectionCursor struct {
	vectors   []SelectionVector
	index     int
	exhausted bool
}

func NewSelectionCursor(subject Subject) *SelectionCursor {
	return &SelectionCursor{vectors: ValidSelections(subject)}
}

// Len returns the number of valid vectors the cursor ranges over.
func (cursor *SelectionCursor) Len() int {
	return len(cursor.vectors)
}

// Current returns the vector at the cursor position, or nil when the subject
// has no valid vectors.
func (cursor *SelectionCursor) Current() SelectionVector {
	if len(cursor.vectors) == 0 {
		return nil
	}
	return cursor.vectors[cursor.index]
}

// Advance moves to the next vector. At the last vector it sets the exhausted
// flag instead; repeated calls are idempotent.
func (cursor *SelectionCursor) Advance() {
	if cursor.index < len(cursor.vectors)-1 {
		cursor.index++
	} else {
		cursor.exhausted = true
	}
}

// Reverse moves back one vector, staying at the first.
func (cursor *SelectionCursor) Reverse() {
	if cursor.index > 0 {
		cursor.index--
	}
}

// Exhausted reports whether an Advance was attempted past the last vector.
func (cursor *SelectionCursor) Exhausted() bool {
	return cursor.exhausted
}

// ResetEnd clears the exhausted flag.
func (cursor *SelectionCursor) ResetEnd() {
	cursor.exhausted = false
}
