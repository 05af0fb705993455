package reservation

import (
	"errors"
	"time"

	"bluehaven/internal/domain/calendar"
	"bluehaven/internal/domain/user"
	"bluehaven/internal/pkg/clock"
)

var ErrPaymentNotAllowed = errors.New("reservation cannot accept a payment in its current state")

type Services struct {
	Clock           clock.Clock
	PriceCalculator PriceCalculator
	Codes           CodeGenerator
}

type Reservation struct {
	id               string
	confirmationCode string
	guest            Guest
	partySize        PartySize
	stay             calendar.Range
	checkInTime      CheckInTime
	nights           int
	total            Money
	specialRequests  SpecialRequests
	status           Status
	paymentStatus    PaymentStatus
	createdAt        time.Time
	updatedAt        time.Time
}

// Record is the flat persisted form of a Reservation.
type Record struct {
	ID               string
	ConfirmationCode string
	GuestName        string
	GuestEmail       string
	GuestPhone       string
	Guests           int
	CheckIn          calendar.Date
	CheckOut         calendar.Date
	CheckInTime      string
	Nights           int
	TotalCents       int64
	SpecialRequests  string
	Status           string
	PaymentStatus    string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Reconstruct rebuilds a stored reservation. Only structural checks are applied;
// capacity and contact rules are enforced at creation time.
func Reconstruct(rec Record) (*Reservation, error) {
	stay, err := calendar.NewRange(rec.CheckIn, rec.CheckOut)
	if err != nil {
		return nil, err
	}
	status, err := NewStatus(rec.Status)
	if err != nil {
		return nil, err
	}
	paymentStatus, err := NewPaymentStatus(rec.PaymentStatus)
	if err != nil {
		return nil, err
	}
	checkInTime, err := NewCheckInTime(rec.CheckInTime)
	if err != nil {
		checkInTime = CheckInTime{value: DefaultCheckInTime}
	}
	return &Reservation{
		id:               rec.ID,
		confirmationCode: rec.ConfirmationCode,
		guest:            Guest{name: rec.GuestName, email: user.ReconstructEmail(rec.GuestEmail), phone: rec.GuestPhone},
		partySize:        PartySize{value: rec.Guests},
		stay:             stay,
		checkInTime:      checkInTime,
		nights:           rec.Nights,
		total:            NewMoney(rec.TotalCents),
		specialRequests:  SpecialRequests{value: rec.SpecialRequests},
		status:           status,
		paymentStatus:    paymentStatus,
		createdAt:        rec.CreatedAt,
		updatedAt:        rec.UpdatedAt,
	}, nil
}

func (r *Reservation) Record() Record {
	return Record{
		ID:               r.id,
		ConfirmationCode: r.confirmationCode,
		GuestName:        r.guest.Name(),
		GuestEmail:       r.guest.Email().Value(),
		GuestPhone:       r.guest.Phone(),
		Guests:           r.partySize.Value(),
		CheckIn:          r.stay.CheckIn(),
		CheckOut:         r.stay.CheckOut(),
		CheckInTime:      r.checkInTime.String(),
		Nights:           r.nights,
		TotalCents:       r.total.Cents(),
		SpecialRequests:  r.specialRequests.String(),
		Status:           r.status.String(),
		PaymentStatus:    r.paymentStatus.String(),
		CreatedAt:        r.createdAt,
		UpdatedAt:        r.updatedAt,
	}
}

// ChangeStatus applies a lifecycle update and an optional payment update together.
func (r *Reservation) ChangeStatus(status Status, payment *PaymentStatus, now time.Time) error {
	if !status.IsValid() {
		return ErrInvalidStatus
	}
	if !r.status.CanTransitionTo(status) {
		return ErrStatusTransition
	}
	if payment != nil {
		if !payment.IsValid() {
			return ErrInvalidPaymentStatus
		}
		if !r.paymentStatus.CanTransitionTo(*payment) {
			return ErrPaymentTransition
		}
		r.paymentStatus = *payment
	}
	r.status = status
	r.updatedAt = now
	return nil
}

func (r *Reservation) CanAcceptPayment() error {
	if r.status == StatusCancelled || r.status == StatusCompleted {
		return ErrPaymentNotAllowed
	}
	if r.paymentStatus == PaymentPaid || r.paymentStatus == PaymentRefunded {
		return ErrPaymentNotAllowed
	}
	return nil
}

func (r *Reservation) IsUpcoming(today calendar.Date) bool {
	return !r.stay.CheckIn().Before(today) && r.status != StatusCancelled
}

func (r *Reservation) ID() string                       { return r.id }
func (r *Reservation) ConfirmationCode() string         { return r.confirmationCode }
func (r *Reservation) Guest() Guest                     { return r.guest }
func (r *Reservation) PartySize() PartySize             { return r.partySize }
func (r *Reservation) Stay() calendar.Range             { return r.stay }
func (r *Reservation) CheckInTime() CheckInTime         { return r.checkInTime }
func (r *Reservation) Nights() int                      { return r.nights }
func (r *Reservation) Total() Money                     { return r.total }
func (r *Reservation) SpecialRequests() SpecialRequests { return r.specialRequests }
func (r *Reservation) Status() Status                   { return r.status }
func (r *Reservation) PaymentStatus() PaymentStatus     { return r.paymentStatus }
func (r *Reservation) CreatedAt() time.Time             { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time             { return r.updatedAt }
