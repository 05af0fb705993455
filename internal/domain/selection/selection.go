package selection

import (
	"errors"

	"bluehaven/internal/domain/calendar"
)

var (
	ErrDayUnavailable          = errors.New("day is in the past or already booked")
	ErrCheckOutNotAfterCheckIn = errors.New("check-out date must be after check-in date")
)

type State string

const (
	StateEmpty    State = "EMPTY"
	StatePartial  State = "PARTIAL"
	StateComplete State = "COMPLETE"
)

// Selection is the check-in/check-out pair being chosen on the calendar.
// It is a value: transitions return a new Selection and never mutate the receiver.
type Selection struct {
	checkIn  *calendar.Date
	checkOut *calendar.Date
}

func Empty() Selection {
	return Selection{}
}

// FromDates rebuilds a selection held by a client, enforcing that a
// check-out only exists alongside an earlier check-in.
func FromDates(checkIn, checkOut *calendar.Date) (Selection, error) {
	ci := normalize(checkIn)
	co := normalize(checkOut)
	switch {
	case ci == nil && co == nil:
		return Empty(), nil
	case ci == nil:
		return Selection{}, ErrCheckOutNotAfterCheckIn
	case co == nil:
		return Selection{checkIn: ci}, nil
	case !co.After(*ci):
		return Selection{}, ErrCheckOutNotAfterCheckIn
	default:
		return Selection{checkIn: ci, checkOut: co}, nil
	}
}

func normalize(d *calendar.Date) *calendar.Date {
	if d == nil || d.IsZero() {
		return nil
	}
	v := *d
	return &v
}

func (s Selection) CheckIn() *calendar.Date  { return normalize(s.checkIn) }
func (s Selection) CheckOut() *calendar.Date { return normalize(s.checkOut) }

func (s Selection) State() State {
	switch {
	case s.checkIn == nil:
		return StateEmpty
	case s.checkOut == nil:
		return StatePartial
	default:
		return StateComplete
	}
}

// Nights is zero unless the selection is complete.
func (s Selection) Nights() int {
	if s.State() != StateComplete {
		return 0
	}
	return calendar.DaysBetween(*s.checkIn, *s.checkOut)
}

func (s Selection) Reset() Selection {
	return Empty()
}

// Pick applies a click on day. Disabled days and an on-or-before check-out
// pick return the receiver unchanged together with the reason.
func (s Selection) Pick(day, today calendar.Date, blocked calendar.Set) (Selection, error) {
	if IsDisabled(day, today, blocked) {
		return s, ErrDayUnavailable
	}
	d := day
	switch s.State() {
	case StatePartial:
		if !day.After(*s.checkIn) {
			return s, ErrCheckOutNotAfterCheckIn
		}
		return Selection{checkIn: s.CheckIn(), checkOut: &d}, nil
	default:
		return Selection{checkIn: &d}, nil
	}
}

func IsDisabled(day, today calendar.Date, blocked calendar.Set) bool {
	return day.Before(today) || blocked.Has(day)
}
