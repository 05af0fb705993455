package selection

import (
	"time"

	"bluehaven/internal/domain/calendar"
)

type DayClass string

const (
	ClassPast       DayClass = "past"
	ClassBlocked    DayClass = "blocked"
	ClassCheckIn    DayClass = "check-in"
	ClassCheckOut   DayClass = "check-out"
	ClassInRange    DayClass = "in-range"
	ClassSelectable DayClass = "selectable"
)

// Classify renders one calendar day. Precedence: past, blocked, check-in,
// check-out, in-range, selectable.
func Classify(day, today calendar.Date, blocked calendar.Set, sel Selection) DayClass {
	switch {
	case day.Before(today):
		return ClassPast
	case blocked.Has(day):
		return ClassBlocked
	case sel.checkIn != nil && day.Equal(*sel.checkIn):
		return ClassCheckIn
	case sel.checkOut != nil && day.Equal(*sel.checkOut):
		return ClassCheckOut
	case sel.State() == StateComplete && day.After(*sel.checkIn) && day.Before(*sel.checkOut):
		return ClassInRange
	default:
		return ClassSelectable
	}
}

type DayCell struct {
	Date  calendar.Date
	Class DayClass
}

func (c DayCell) Selectable() bool {
	return c.Class != ClassPast && c.Class != ClassBlocked
}

// Month classifies every day of the given month from scratch.
func Month(year int, month time.Month, today calendar.Date, blocked calendar.Set, sel Selection) []DayCell {
	first := calendar.NewDate(year, month, 1)
	cells := make([]DayCell, 0, 31)
	for d := first; d.Month() == first.Month(); d = d.AddDays(1) {
		cells = append(cells, DayCell{Date: d, Class: Classify(d, today, blocked, sel)})
	}
	return cells
}
