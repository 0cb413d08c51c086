package export

import (
	"hr-records/internal/employee"
	"hr-records/internal/record"
)

// Page geometry in points, origin at the bottom-left corner of a Letter page.
const (
	PageWidth  = 612.0
	PageHeight = 792.0
	FontSize   = 12.0

	marginX    = 50.0
	headerTop  = 750.0
	recordsTop = 650.0
	lineStep   = 20.0
	lowWater   = 50.0
)

// Line is one string drawn on page Page (1-based) at X, Y.
type Line struct {
	Page int
	X    float64
	Y    float64
	Text string
}

// entryText renders one record line: "{label}: {start} - {end}".
func entryText(e record.Entry) string {
	var label string
	switch e.Kind {
	case record.KindVacation, record.KindBusinessTrip, record.KindSickLeave:
		label = e.Kind.Info().Label
	default:
		label = "Неизвестный тип"
	}
	return label + ": " + e.StartDate.Format(DisplayDateLayout) + " - " + e.EndDate.Format(DisplayDateLayout)
}

// Layout places the employee header and one line per entry, in the given
// entry order. A new page starts whenever the cursor has reached the low-water mark.
func Layout(empl employee.EmployeeResponse, entries []record.Entry) []Line {
	header := []string{
		"Сотрудник: " + empl.LastName + " " + empl.FirstName,
		"Должность: " + empl.Position,
		"Дата приема на работу: " + displayDate(empl.HireDate),
		"Email: " + empl.Email,
		"Номер телефона: " + empl.PhoneNumber,
	}

	lines := make([]Line, 0, len(header)+len(entries))
	y := headerTop
	for _, text := range header {
		lines = append(lines, Line{Page: 1, X: marginX, Y: y, Text: text})
		y -= lineStep
	}

	page := 1
	y = recordsTop
	for _, e := range entries {
		if y <= lowWater {
			page++
			y = headerTop
		}
		lines = append(lines, Line{Page: page, X: marginX, Y: y, Text: entryText(e)})
		y -= lineStep
	}
	return lines
}
