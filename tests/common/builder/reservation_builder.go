//go:build unit || e2e

package builder

import (
	"time"

	"bluehaven/internal/domain/calendar"
	"bluehaven/internal/domain/reservation"
	reqdto "bluehaven/internal/handler/dto/request"
	"bluehaven/internal/usecase/queries"
)

type ReservationBuilder struct {
	ID               string
	ConfirmationCode string
	Name             string
	Email            string
	Phone            string
	Guests           int
	CheckIn          calendar.Date
	CheckOut         calendar.Date
	CheckInTime      string
	TotalCents       int64
	SpecialRequests  string
	Status           reservation.Status
	PaymentStatus    reservation.PaymentStatus
	CreatedAt        time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:               "BHTEST0001",
		ConfirmationCode: "ABCD1234",
		Name:             "Thandi Mokoena",
		Email:            "thandi@example.com",
		Phone:            "+27 82 555 0101",
		Guests:           2,
		CheckIn:          calendar.MustParse("2026-07-10"),
		CheckOut:         calendar.MustParse("2026-07-13"),
		CheckInTime:      reservation.DefaultCheckInTime,
		TotalCents:       1650_00,
		Status:           reservation.StatusPending,
		PaymentStatus:    reservation.PaymentPending,
		CreatedAt:        time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) Record() reservation.Record {
	return reservation.Record{
		ID:               b.ID,
		ConfirmationCode: b.ConfirmationCode,
		GuestName:        b.Name,
		GuestEmail:       b.Email,
		GuestPhone:       b.Phone,
		Guests:           b.Guests,
		CheckIn:          b.CheckIn,
		CheckOut:         b.CheckOut,
		CheckInTime:      b.CheckInTime,
		Nights:           calendar.DaysBetween(b.CheckIn, b.CheckOut),
		TotalCents:       b.TotalCents,
		SpecialRequests:  b.SpecialRequests,
		Status:           b.Status.String(),
		PaymentStatus:    b.PaymentStatus.String(),
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.CreatedAt,
	}
}

func (b *ReservationBuilder) BuildDomain() (*reservation.Reservation, error) {
	return reservation.Reconstruct(b.Record())
}

// MustBuild panics on invalid builder state; tests construct fixtures only.
func (b *ReservationBuilder) MustBuild() *reservation.Reservation {
	r, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return r
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	return queries.NewReservationView(b.MustBuild())
}

func (b *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		CheckIn:         b.CheckIn.String(),
		CheckOut:        b.CheckOut.String(),
		Name:            b.Name,
		Email:           b.Email,
		Phone:           b.Phone,
		Guests:          b.Guests,
		CheckInTime:     b.CheckInTime,
		SpecialRequests: b.SpecialRequests,
	}
}

func (b *ReservationBuilder) WithDates(checkIn, checkOut string) *ReservationBuilder {
	b.CheckIn = calendar.MustParse(checkIn)
	b.CheckOut = calendar.MustParse(checkOut)
	return b
}

func (b *ReservationBuilder) WithID(id string) *ReservationBuilder {
	b.ID = id
	return b
}

func (b *ReservationBuilder) WithEmail(email string) *ReservationBuilder {
	b.Email = email
	return b
}

func (b *ReservationBuilder) WithStatus(status reservation.Status) *ReservationBuilder {
	b.Status = status
	return b
}

func (b *ReservationBuilder) WithPaymentStatus(status reservation.PaymentStatus) *ReservationBuilder {
	b.PaymentStatus = status
	return b
}

func (b *ReservationBuilder) AsConfirmed() *ReservationBuilder {
	b.Status = reservation.StatusConfirmed
	return b
}

func (b *ReservationBuilder) AsPaid() *ReservationBuilder {
	b.Status = reservation.StatusConfirmed
	b.PaymentStatus = reservation.PaymentPaid
	return b
}

func (b *ReservationBuilder) AsCancelled() *ReservationBuilder {
	b.Status = reservation.StatusCancelled
	return b
}
