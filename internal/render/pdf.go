package render

import (
	"math"

	"github.com/jung-kurt/gofpdf"

	"scheduling/internal/model"
)

const (
	labelColumn = 24.0 // mm reserved for the time labels
	labelRow    = 10.0 // mm reserved for the weekday labels
	rulerStep   = 15   // minutes between horizontal guide lines
)

// PDF writes the schedule as an A4 landscape calendar: weekday columns, a
// light time ruler and one colored block per allocated slot. The subject list
// supplies colors and locations.
func PDF(path string, schedule *model.Schedule, subjects []model.Subject) error {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	geometry := schedule.Grid.Geometry()
	pageWidth, pageHeight := pdf.GetPageSize()
	dayWidth := (pageWidth - labelColumn) / float64(geometry.Days)
	minuteHeight := (pageHeight - labelRow) / float64((geometry.EndHour-geometry.StartHour)*60)

	dayX := func(day int) float64 {
		return labelColumn + float64(day)*dayWidth
	}
	minuteY := func(minute int) float64 {
		return labelRow + float64(minute-geometry.StartHour*60)*minuteHeight
	}

	// Ruler and day separators.
	pdf.SetDrawColor(204, 204, 204)
	for minute := geometry.StartHour * 60; minute < geometry.EndHour*60; minute += rulerStep {
		pdf.Line(0, minuteY(minute), pageWidth, minuteY(minute))
	}
	for day := 0; day < geometry.Days; day++ {
		pdf.Line(dayX(day), 0, dayX(day), pageHeight)
	}

	// Labels.
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "B", 11)
	for day := 0; day < geometry.Days; day++ {
		name := model.DayNames[day]
		pdf.Text(dayX(day)+(dayWidth-pdf.GetStringWidth(name))/2, labelRow-3, name)
	}
	pdf.SetFont("Helvetica", "", 7)
	for minute := geometry.StartHour * 60; minute < geometry.EndHour*60; minute += rulerStep {
		label := clock(minute) + "-" + clock(minute+rulerStep)
		pdf.Text((labelColumn-pdf.GetStringWidth(label))/2, minuteY(minute)+float64(rulerStep)*minuteHeight/2, label)
	}

	// Subject blocks: each declared slot the subject actually holds in the
	// grid becomes one rectangle.
	for _, subject := range subjects {
		for _, slot := range subject.Slots {
			if !holdsSlot(schedule.Grid, slot, subject.Name) {
				continue
			}
			x := dayX(slot.Day)
			y := minuteY(slot.Start)
			height := float64(slot.End-slot.Start) * minuteHeight

			pdf.SetFillColor(int(subject.Color.R), int(subject.Color.G), int(subject.Color.B))
			pdf.Rect(x+0.3, y+0.3, dayWidth-0.6, height-0.6, "F")

			if dark(subject.Color) {
				pdf.SetTextColor(255, 255, 255)
			} else {
				pdf.SetTextColor(0, 0, 0)
			}

			pdf.SetFont("Helvetica", "B", 10)
			pdf.Text(x+(dayWidth-pdf.GetStringWidth(subject.Name))/2, y+4.5, subject.Name)

			pdf.SetFont("Helvetica", "", 8)
			times := clock(slot.Start) + " - " + clock(slot.End)
			pdf.Text(x+1.2, y+height-1.5, times)
			if slot.Location != "" {
				pdf.Text(x+dayWidth-pdf.GetStringWidth(slot.Location)-1.2, y+height-1.5, slot.Location)
			}
		}
	}

	return pdf.OutputFileAndClose(path)
}

// holdsSlot reports whether every tick of the slot belongs to the subject.
func holdsSlot(grid *model.Grid, slot model.TimeSlot, name string) bool {
	for minute := slot.Start; minute < slot.End; minute += model.TickMinutes {
		if grid.At(grid.Geometry().Tick(slot.Day, minute)) != name {
			return false
		}
	}
	return true
}

// dark decides whether white cell text is needed, using the perceived
// luminance of the fill color.
func dark(color model.Color) bool {
	r, g, b := float64(color.R), float64(color.G), float64(color.B)
	return math.Sqrt(0.299*r*r+0.587*g*g+0.114*b*b)/255 < 0.75
}
