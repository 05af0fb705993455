package shared

import (
	"context"

	"bluehaven/internal/domain/calendar"
	"bluehaven/internal/domain/payment"
	"bluehaven/internal/domain/reservation"
	"bluehaven/internal/domain/review"
)

// ReservationStore is the system of record for bookings. Lists are ordered
// newest first.
type ReservationStore interface {
	List(ctx context.Context) ([]*reservation.Reservation, error)
	ListByEmail(ctx context.Context, email string) ([]*reservation.Reservation, error)
	FindByID(ctx context.Context, id string) (*reservation.Reservation, error)
	FindByConfirmationCode(ctx context.Context, code string) (*reservation.Reservation, error)
	Append(ctx context.Context, r *reservation.Reservation) error
	UpdateStatus(ctx context.Context, id string, status reservation.Status, paymentStatus *reservation.PaymentStatus) error
	Clear(ctx context.Context) (int, error)
}

type PaymentStore interface {
	Append(ctx context.Context, p *payment.Payment) error
	ListByReservation(ctx context.Context, reservationID string) ([]*payment.Payment, error)
}

type ReviewStore interface {
	Append(ctx context.Context, r *review.Review) error
	List(ctx context.Context) ([]*review.Review, error)
	FindByReservation(ctx context.Context, reservationID string) (*review.Review, error)
}

// AvailabilityCache holds the derived blocked-date set between writes.
type AvailabilityCache interface {
	Get(ctx context.Context) (calendar.Set, bool, error)
	Set(ctx context.Context, blocked calendar.Set) error
	Invalidate(ctx context.Context) error
}

type Notifier interface {
	BookingCreated(ctx context.Context, n BookingNotification) error
	Reminder(ctx context.Context, kind ReminderKind, n BookingNotification) error
}

type EventPublisher interface {
	Publish(ctx context.Context, e BookingEvent) error
}

type PaymentGateway interface {
	Charge(ctx context.Context, req ChargeRequest) (payment.Outcome, error)
}
