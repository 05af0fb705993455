package shared

import (
	"time"

	"bluehaven/internal/domain/payment"
	"bluehaven/internal/domain/reservation"
)

// PropertySettings are the per-property parameters resolved once at startup.
type PropertySettings struct {
	Name      string
	Location  *time.Location
	Occupancy reservation.OccupancyPolicy
	Capacity  int
	MaxNights int
}

type ReminderKind string

const (
	ReminderCheckIn  ReminderKind = "checkin"
	ReminderCheckOut ReminderKind = "checkout"
)

func (k ReminderKind) IsValid() bool {
	return k == ReminderCheckIn || k == ReminderCheckOut
}

// BookingNotification is the structured payload handed to the mail relay.
type BookingNotification struct {
	ReservationID    string
	ConfirmationCode string
	GuestName        string
	GuestEmail       string
	GuestPhone       string
	CheckIn          string
	CheckOut         string
	CheckInTime      string
	Nights           int
	Guests           int
	Total            reservation.Money
	SpecialRequests  string
	CreatedAt        time.Time
}

func NewBookingNotification(r *reservation.Reservation) BookingNotification {
	return BookingNotification{
		ReservationID:    r.ID(),
		ConfirmationCode: r.ConfirmationCode(),
		GuestName:        r.Guest().Name(),
		GuestEmail:       r.Guest().Email().Value(),
		GuestPhone:       r.Guest().Phone(),
		CheckIn:          r.Stay().CheckIn().String(),
		CheckOut:         r.Stay().CheckOut().String(),
		CheckInTime:      r.CheckInTime().String(),
		Nights:           r.Nights(),
		Guests:           r.PartySize().Value(),
		Total:            r.Total(),
		SpecialRequests:  r.SpecialRequests().String(),
		CreatedAt:        r.CreatedAt(),
	}
}

type EventType string

const (
	EventBookingCreated       EventType = "booking.created"
	EventBookingStatusChanged EventType = "booking.status_changed"
	EventBookingsCleared      EventType = "bookings.cleared"
	EventPaymentProcessed     EventType = "payment.processed"
)

type BookingEvent struct {
	Type             EventType `json:"type"`
	ReservationID    string    `json:"reservationId,omitempty"`
	ConfirmationCode string    `json:"confirmationCode,omitempty"`
	Status           string    `json:"status,omitempty"`
	PaymentStatus    string    `json:"paymentStatus,omitempty"`
	CheckIn          string    `json:"checkIn,omitempty"`
	CheckOut         string    `json:"checkOut,omitempty"`
	OccurredAt       time.Time `json:"occurredAt"`
}

func NewBookingEvent(t EventType, r *reservation.Reservation, now time.Time) BookingEvent {
	e := BookingEvent{Type: t, OccurredAt: now}
	if r != nil {
		e.ReservationID = r.ID()
		e.ConfirmationCode = r.ConfirmationCode()
		e.Status = r.Status().String()
		e.PaymentStatus = r.PaymentStatus().String()
		e.CheckIn = r.Stay().CheckIn().String()
		e.CheckOut = r.Stay().CheckOut().String()
	}
	return e
}

type ChargeRequest struct {
	Method      payment.Method
	Reference   string
	AmountCents int64
	TotalCents  int64
	GuestName   string
	GuestEmail  string
}
