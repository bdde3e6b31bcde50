// Package render turns accepted schedules into their output representations:
// a plain tick listing, an ASCII calendar and a PDF calendar.
package render

import (
	"fmt"

	"scheduling/internal/model"
)

// Filename derives the base output name for a schedule from its sequence
// number, marking incomplete schedules in the name itself.
func Filename(schedule *model.Schedule) string {
	if schedule.Incomplete {
		return fmt.Sprintf("schedule%d_INCOMPLETE_", schedule.Sequence)
	}
	return fmt.Sprintf("schedule%d", schedule.Sequence)
}

// dayAbbrev is the two-letter weekday label used in the text outputs.
func dayAbbrev(day int) string {
	return model.DayNames[day][:2]
}

// clock formats minutes from midnight as HH:MM.
func clock(minute int) string {
	return fmt.Sprintf("%02d:%02d", minute/60, minute%60)
}
