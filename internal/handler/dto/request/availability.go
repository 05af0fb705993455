package request

import (
	"time"

	"bluehaven/internal/domain/calendar"
	"bluehaven/internal/domain/selection"
)

type QuoteQuery struct {
	CheckIn  string `form:"checkIn" binding:"omitempty,isodate"`
	CheckOut string `form:"checkOut" binding:"omitempty,isodate"`
}

// Dates returns nil for absent ends; the quote is zero unless both are present and ordered.
func (q QuoteQuery) Dates() (*calendar.Date, *calendar.Date) {
	checkIn, _ := optionalDate(q.CheckIn)
	checkOut, _ := optionalDate(q.CheckOut)
	return checkIn, checkOut
}

type CalendarQuery struct {
	Month    string `form:"month" binding:"omitempty,datetime=2006-01"`
	CheckIn  string `form:"checkIn" binding:"omitempty,isodate"`
	CheckOut string `form:"checkOut" binding:"omitempty,isodate"`
}

// YearMonth falls back to the month containing today.
func (q CalendarQuery) YearMonth(today calendar.Date) (int, time.Month) {
	if q.Month == "" {
		return today.Year(), today.Month()
	}
	t, err := time.Parse("2006-01", q.Month)
	if err != nil {
		return today.Year(), today.Month()
	}
	return t.Year(), t.Month()
}

func (q CalendarQuery) Selection() (selection.Selection, error) {
	checkIn, _ := optionalDate(q.CheckIn)
	checkOut, _ := optionalDate(q.CheckOut)
	return selection.FromDates(checkIn, checkOut)
}

type PickRequest struct {
	CheckIn  string `json:"checkIn" binding:"omitempty,isodate"`
	CheckOut string `json:"checkOut" binding:"omitempty,isodate"`
	Day      string `json:"day" binding:"required,isodate"`
}

func (r PickRequest) ToDomain() (selection.Selection, calendar.Date, error) {
	checkIn, _ := optionalDate(r.CheckIn)
	checkOut, _ := optionalDate(r.CheckOut)
	sel, err := selection.FromDates(checkIn, checkOut)
	if err != nil {
		return selection.Selection{}, calendar.Date{}, err
	}
	day, err := calendar.Parse(r.Day)
	if err != nil {
		return selection.Selection{}, calendar.Date{}, err
	}
	return sel, day, nil
}
