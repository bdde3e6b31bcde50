package render

import (
	"bufio"
	"fmt"
	"io"

	"scheduling/internal/model"
)

// Plain writes the schedule as one line per tick: weekday abbreviation,
// start-of-tick clock time and the occupying subject (possibly empty).
func Plain(writer io.Writer, schedule *model.Schedule) error {
	buffered := bufio.NewWriter(writer)
	geometry := schedule.Grid.Geometry()

	for tick := 0; tick < geometry.TotalTicks(); tick++ {
		day, minute := geometry.TickTime(tick)
		if _, err := fmt.Fprintf(buffered, "%s %s %s\n", dayAbbrev(day), clock(minute), schedule.Grid.At(tick)); err != nil {
			return err
		}
	}
	return buffered.Flush()
}
