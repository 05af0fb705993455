package reservation

import (
	"errors"

	"bluehaven/internal/domain/calendar"
	"bluehaven/internal/domain/selection"
)

var (
	ErrIncompleteSelection   = errors.New("select both a check-in and a check-out date")
	ErrCheckInInPast         = errors.New("check-in date is in the past")
	ErrDatesUnavailable      = errors.New("selected dates overlap an existing booking")
	ErrConfirmationExhausted = errors.New("could not generate a unique confirmation code")
	ErrStayTooLong           = errors.New("stay exceeds the maximum number of nights")
)

const (
	maxCodeAttempts  = 5
	DefaultMaxNights = 90
)

// Draft is the guest-supplied input to the booking writer.
type Draft struct {
	Selection       selection.Selection
	Name            string
	Email           string
	Phone           string
	Guests          int
	CheckInTime     string
	SpecialRequests string
}

type Factory struct {
	services  *Services
	capacity  int
	maxNights int
}

func NewFactory(services *Services, capacity int) *Factory {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Factory{services: services, capacity: capacity, maxNights: DefaultMaxNights}
}

// WithMaxNights caps the stay length; non-positive values keep the default.
func (f *Factory) WithMaxNights(n int) *Factory {
	if n > 0 {
		f.maxNights = n
	}
	return f
}

func (f *Factory) Capacity() int  { return f.capacity }
func (f *Factory) MaxNights() int { return f.maxNights }

// Create validates a draft against today and the current blocked set and
// materializes a pending reservation. codeTaken may be nil.
func (f *Factory) Create(d Draft, today calendar.Date, blocked calendar.Set, codeTaken func(string) bool) (*Reservation, error) {
	if d.Selection.State() != selection.StateComplete {
		return nil, ErrIncompleteSelection
	}
	stay, err := calendar.NewRange(*d.Selection.CheckIn(), *d.Selection.CheckOut())
	if err != nil {
		return nil, err
	}
	if stay.CheckIn().Before(today) {
		return nil, ErrCheckInInPast
	}
	if stay.Nights() > f.maxNights {
		return nil, ErrStayTooLong
	}

	guest, err := NewGuest(d.Name, d.Email, d.Phone)
	if err != nil {
		return nil, err
	}
	party, err := NewPartySize(d.Guests, f.capacity)
	if err != nil {
		return nil, err
	}
	checkInTime, err := NewCheckInTime(d.CheckInTime)
	if err != nil {
		return nil, err
	}
	requests, err := NewSpecialRequests(d.SpecialRequests)
	if err != nil {
		return nil, err
	}

	if blocked.IntersectsRange(stay) {
		return nil, ErrDatesUnavailable
	}

	code, err := f.uniqueConfirmationCode(codeTaken)
	if err != nil {
		return nil, err
	}

	now := f.services.Clock.Now()
	quote := f.services.PriceCalculator.Quote(stay.Nights())

	return &Reservation{
		id:               f.services.Codes.ReservationID(now),
		confirmationCode: code,
		guest:            guest,
		partySize:        party,
		stay:             stay,
		checkInTime:      checkInTime,
		nights:           quote.Nights,
		total:            quote.Total,
		specialRequests:  requests,
		status:           StatusPending,
		paymentStatus:    PaymentPending,
		createdAt:        now,
		updatedAt:        now,
	}, nil
}

func (f *Factory) uniqueConfirmationCode(taken func(string) bool) (string, error) {
	for range maxCodeAttempts {
		code := f.services.Codes.ConfirmationCode()
		if taken == nil || !taken(code) {
			return code, nil
		}
	}
	return "", ErrConfirmationExhausted
}
