package calendar

import (
	"encoding/json"
	"errors"
	"time"

	"bluehaven/internal/pkg/clock"
)

const isoLayout = "2006-01-02"

var (
	ErrInvalidDate  = errors.New("date must be formatted as YYYY-MM-DD")
	ErrInvalidRange = errors.New("check-out must be after check-in")
)

// Date is a calendar day with no time-of-day and no zone.
// The zero value is not a valid day; use IsZero to detect it.
type Date struct {
	t time.Time // always midnight UTC
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates an instant to its calendar day in the instant's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return NewDate(y, m, d)
}

// Today is the current calendar day at the given location.
func Today(c clock.Clock, loc *time.Location) Date {
	now := c.Now()
	if loc != nil {
		now = now.In(loc)
	}
	return DateOf(now)
}

func Parse(s string) (Date, error) {
	t, err := time.Parse(isoLayout, s)
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{t: t}, nil
}

func MustParse(s string) Date {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(isoLayout)
}

func (d Date) IsZero() bool             { return d.t.IsZero() }
func (d Date) Year() int                { return d.t.Year() }
func (d Date) Month() time.Month        { return d.t.Month() }
func (d Date) Day() int                 { return d.t.Day() }
func (d Date) Weekday() time.Weekday    { return d.t.Weekday() }
func (d Date) AddDays(n int) Date       { return Date{t: d.t.AddDate(0, 0, n)} }
func (d Date) Before(other Date) bool   { return d.t.Before(other.t) }
func (d Date) After(other Date) bool    { return d.t.After(other.t) }
func (d Date) Equal(other Date) bool    { return d.t.Equal(other.t) }
func (d Date) Time() time.Time          { return d.t }
func (d Date) In(loc *time.Location) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, loc)
}

const secondsPerDay = 24 * 60 * 60

// DaysBetween returns b - a in whole days. Negative when b is before a.
// Both sides are UTC midnights, so Unix seconds divide exactly and the result
// does not saturate the way a time.Duration would past ~292 years.
func DaysBetween(a, b Date) int {
	return int((b.t.Unix() - a.t.Unix()) / secondsPerDay)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*d = Date{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return ErrInvalidDate
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Range is the half-open stay interval [CheckIn, CheckOut).
type Range struct {
	checkIn  Date
	checkOut Date
}

func NewRange(checkIn, checkOut Date) (Range, error) {
	if checkIn.IsZero() || checkOut.IsZero() || !checkOut.After(checkIn) {
		return Range{}, ErrInvalidRange
	}
	return Range{checkIn: checkIn, checkOut: checkOut}, nil
}

func (r Range) CheckIn() Date  { return r.checkIn }
func (r Range) CheckOut() Date { return r.checkOut }

func (r Range) Nights() int {
	return DaysBetween(r.checkIn, r.checkOut)
}

// Days lists every occupied night, check-in inclusive and check-out exclusive.
func (r Range) Days() []Date {
	n := r.Nights()
	if n <= 0 {
		return nil
	}
	days := make([]Date, 0, n)
	for d := r.checkIn; d.Before(r.checkOut); d = d.AddDays(1) {
		days = append(days, d)
	}
	return days
}

func (r Range) Contains(d Date) bool {
	return !d.Before(r.checkIn) && d.Before(r.checkOut)
}

func (r Range) Overlaps(other Range) bool {
	return r.checkIn.Before(other.checkOut) && other.checkIn.Before(r.checkOut)
}
