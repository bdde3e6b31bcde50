package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"scheduling/internal/model"
)

const cellWidth = 25

// ASCII writes the schedule as a fixed-width calendar: one column per
// weekday, one row per tick of the day.
func ASCII(writer io.Writer, schedule *model.Schedule) error {
	buffered := bufio.NewWriter(writer)
	geometry := schedule.Grid.Geometry()

	header := strings.Repeat(" ", 6)
	for day := 0; day < geometry.Days; day++ {
		header += center(model.DayNames[day], cellWidth)
	}
	if _, err := fmt.Fprintln(buffered, header); err != nil {
		return err
	}

	for offset := 0; offset < geometry.TicksPerDay(); offset++ {
		minute := geometry.StartHour*60 + offset*model.TickMinutes
		row := fmt.Sprintf("%-6s", clock(minute))
		for day := 0; day < geometry.Days; day++ {
			row += center(schedule.Grid.At(geometry.Tick(day, minute)), cellWidth)
		}
		if _, err := fmt.Fprintln(buffered, row); err != nil {
			return err
		}
	}
	return buffered.Flush()
}

func center(value string, width int) string {
	if len(value) >= width {
		return value[:width]
	}
	left := (width - len(value)) / 2
	return strings.Repeat(" ", left) + value + strings.Repeat(" ", width-len(value)-left)
}
