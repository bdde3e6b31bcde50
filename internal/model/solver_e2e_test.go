package model

import (
	"testing"

	. "github.com/onsi/gomega"
)

// End-to-end run over a week mixing contention, fill-all second chances and a
// duplicate-heavy fill-all subject.
func TestSolveEndToEnd(t *testing.T) {
	g := NewWithT(t)

	subjects := []Subject{
		{Name: "analysis", Kind: RequiredOne, Slots: []TimeSlot{
			{Day: 1, Start: 8 * 60, End: 9*60 + 30, Location: "Audimax"},
			{Day: 3, Start: 10 * 60, End: 11*60 + 30},
		}},
		{Name: "mechanics", Kind: FillAll, Slots: []TimeSlot{
			{Day: 0, Start: 11 * 60, End: 12*60 + 30},
			{Day: 1, Start: 11 * 60, End: 12*60 + 30},
			{Day: 2, Start: 11 * 60, End: 12 * 60},
		}},
		{Name: "tutorial", Kind: RequiredOne, Slots: []TimeSlot{
			{Day: 1, Start: 11 * 60, End: 12*60 + 30},
			{Day: 4, Start: 14 * 60, End: 15*60 + 30},
		}},
	}
	solver := NewSolver()

	result, err := solver.Solve(subjects)

	g.Expect(err).NotTo(HaveOccurred())
	// 2 analysis vectors x 7 mechanics vectors x 2 tutorial vectors.
	g.Expect(result.Combinations).To(Equal(uint64(28)))
	g.Expect(result.Schedules).NotTo(BeEmpty())
	g.Expect(result.Incomplete).To(BeNumerically(">", 0), "tutorial on Tuesday blocks a mechanics window")

	for _, schedule := range result.Schedules {
		g.Expect(solver.Verify(schedule, subjects)).To(BeTrue())
	}

	// Tutorial on Friday leaves all mechanics windows free: at least one
	// fully complete schedule must exist.
	g.Expect(result.Incomplete).To(BeNumerically("<", len(result.Schedules)))
}
