package model

import "slices"

// TickMinutes is the fixed scheduling quantum. Every slot boundary must be
// aligned to it.
const TickMinutes = 5

// WeekGeometry fixes the portion of the week a grid covers: the number of
// weekdays starting at Monday and the daily hour range.
type WeekGeometry struct {
	Days      int
	StartHour int
	EndHour   int
}

// DefaultGeometry covers Monday through Friday, 8:00 to 20:00.
var DefaultGeometry = WeekGeometry{Days: 5, StartHour: 8, EndHour: 20}

// TicksPerDay returns the number of grid cells each day contributes.
func (geometry WeekGeometry) TicksPerDay() int {
	return (geometry.EndHour - geometry.StartHour) * 60 / TickMinutes
}

// TotalTicks returns the number of cells in a grid with this geometry.
func (geometry WeekGeometry) TotalTicks() int {
	return geometry.Days * geometry.TicksPerDay()
}

// Tick maps a day index and minute-of-day to a cell index.
func (geometry WeekGeometry) Tick(day, minute int) int {
	return day*geometry.TicksPerDay() + (minute-geometry.StartHour*60)/TickMinutes
}

// TickTime is the inverse of Tick: the day index and minute-of-day a cell
// index starts at.
func (geometry WeekGeometry) TickTime(tick int) (day, minute int) {
	day = tick / geometry.TicksPerDay()
	minute = geometry.StartHour*60 + (tick%geometry.TicksPerDay())*TickMinutes
	return day, minute
}

// Contains reports whether the slot lies fully inside the geometry.
func (geometry WeekGeometry) Contains(slot TimeSlot) bool {
	return slot.Day >= 0 && slot.Day < geometry.Days &&
		slot.Start >= geometry.StartHour*60 && slot.End <= geometry.EndHour*60
}

// Grid is a materialized weekly schedule: one cell per tick of the week,
// holding the occupying subject's name or the empty string.
type Grid struct {
	geometry WeekGeometry
	cells    []string
}

func NewGrid(geometry WeekGeometry) *Grid {
	return &Grid{
		geometry: geometry,
		cells:    make([]string, geometry.TotalTicks()),
	}
}

func (grid *Grid) Geometry() WeekGeometry {
	return grid.geometry
}

// At returns the subject name occupying the tick, or "" if the tick is free.
func (grid *Grid) At(tick int) string {
	return grid.cells[tick]
}

// Free reports whether the slot's whole time range is unoccupied.
func (grid *Grid) Free(slot TimeSlot) bool {
	for minute := slot.Start; minute < slot.End; minute += TickMinutes {
		if grid.cells[grid.geometry.Tick(slot.Day, minute)] != "" {
			return false
		}
	}
	return true
}

// Fill writes the subject name into every tick of the slot's range.
func (grid *Grid) Fill(slot TimeSlot, name string) {
	for minute := slot.Start; minute < slot.End; minute += TickMinutes {
		grid.cells[grid.geometry.Tick(slot.Day, minute)] = name
	}
}

// Equal reports cell-for-cell equality. Two schedules are considered the same
// exactly when their grids are equal.
func (grid *Grid) Equal(other *Grid) bool {
	return grid.geometry == other.geometry && slices.Equal(grid.cells, other.cells)
}
