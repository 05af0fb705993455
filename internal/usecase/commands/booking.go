package commands

import (
	"context"
	"log/slog"

	"bluehaven/internal/domain/calendar"
	"bluehaven/internal/domain/reservation"
	"bluehaven/internal/domain/selection"
	"bluehaven/internal/infra"
	"bluehaven/internal/pkg/clock"
	"bluehaven/internal/pkg/errs"
	"bluehaven/internal/usecase/queries"
	"bluehaven/internal/usecase/shared"
)

var (
	ErrInvalidBooking          = errs.New("invalid booking")
	ErrDatesUnavailable        = errs.New("dates unavailable")
	ErrReservationNotFound     = queries.ErrReservationNotFound
	ErrInvalidStatusChange     = errs.New("invalid status change")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type CreateBookingInput struct {
	CheckIn         *calendar.Date
	CheckOut        *calendar.Date
	Name            string
	Email           string
	Phone           string
	Guests          int
	CheckInTime     string
	SpecialRequests string
}

type BookingCommands interface {
	// Create validates the stay against the store as it is now and appends a pending reservation.
	Create(ctx context.Context, in CreateBookingInput) (*queries.ReservationView, error)
	UpdateStatus(ctx context.Context, id string, status reservation.Status, paymentStatus *reservation.PaymentStatus) (*queries.ReservationView, error)
	ClearAll(ctx context.Context) (int, error)
}

type bookingCommandsImpl struct {
	store     shared.ReservationStore
	cache     shared.AvailabilityCache
	notifier  shared.Notifier
	publisher shared.EventPublisher
	factory   *reservation.Factory
	settings  shared.PropertySettings
	clock     clock.Clock
}

func NewBookingCommands(
	store shared.ReservationStore,
	cache shared.AvailabilityCache,
	notifier shared.Notifier,
	publisher shared.EventPublisher,
	factory *reservation.Factory,
	settings shared.PropertySettings,
	clk clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		store:     store,
		cache:     cache,
		notifier:  notifier,
		publisher: publisher,
		factory:   factory,
		settings:  settings,
		clock:     clk,
	}
}

func (b *bookingCommandsImpl) Create(ctx context.Context, in CreateBookingInput) (*queries.ReservationView, error) {
	sel, err := selection.FromDates(in.CheckIn, in.CheckOut)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidBooking)
	}

	existing, err := b.store.List(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	blocked := reservation.ExpandBlockedDates(existing, b.settings.Occupancy)
	codes := make(map[string]struct{}, len(existing))
	for _, r := range existing {
		codes[r.ConfirmationCode()] = struct{}{}
	}

	draft := reservation.Draft{
		Selection:       sel,
		Name:            in.Name,
		Email:           in.Email,
		Phone:           in.Phone,
		Guests:          in.Guests,
		CheckInTime:     in.CheckInTime,
		SpecialRequests: in.SpecialRequests,
	}
	today := calendar.Today(b.clock, b.settings.Location)
	created, err := b.factory.Create(draft, today, blocked, func(code string) bool {
		_, taken := codes[code]
		return taken
	})
	if err != nil {
		switch {
		case errs.Is(err, reservation.ErrDatesUnavailable):
			return nil, errs.Mark(err, ErrDatesUnavailable)
		case errs.Is(err, reservation.ErrConfirmationExhausted):
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		default:
			return nil, errs.Mark(err, ErrInvalidBooking)
		}
	}

	if err := b.store.Append(ctx, created); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, errs.Mark(err, ErrDatesUnavailable)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	slog.Info("booking created",
		"reservation_id", created.ID(),
		"confirmation_code", created.ConfirmationCode(),
		"check_in", created.Stay().CheckIn().String(),
		"nights", created.Nights())

	b.afterWrite(ctx, shared.NewBookingEvent(shared.EventBookingCreated, created, b.clock.Now()))
	if err := b.notifier.BookingCreated(ctx, shared.NewBookingNotification(created)); err != nil {
		slog.Warn("booking notification failed", "reservation_id", created.ID(), "error", err)
	}

	return queries.NewReservationView(created), nil
}

func (b *bookingCommandsImpl) UpdateStatus(
	ctx context.Context,
	id string,
	status reservation.Status,
	paymentStatus *reservation.PaymentStatus,
) (*queries.ReservationView, error) {
	current, err := b.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := current.ChangeStatus(status, paymentStatus, b.clock.Now()); err != nil {
		return nil, errs.Mark(err, ErrInvalidStatusChange)
	}
	next := current.PaymentStatus()
	if err := b.store.UpdateStatus(ctx, id, current.Status(), &next); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		if infra.IsKind(err, infra.KindConflict) {
			return nil, errs.Mark(err, ErrDatesUnavailable)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	slog.Info("booking status updated",
		"reservation_id", id,
		"status", current.Status().String(),
		"payment_status", next.String())

	b.afterWrite(ctx, shared.NewBookingEvent(shared.EventBookingStatusChanged, current, b.clock.Now()))
	return queries.NewReservationView(current), nil
}

func (b *bookingCommandsImpl) ClearAll(ctx context.Context) (int, error) {
	n, err := b.store.Clear(ctx)
	if err != nil {
		return 0, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	slog.Warn("all bookings cleared", "count", n)
	b.afterWrite(ctx, shared.NewBookingEvent(shared.EventBookingsCleared, nil, b.clock.Now()))
	return n, nil
}

// afterWrite drops the cached blocked dates and announces the change. Neither step
// can fail the write that preceded it.
func (b *bookingCommandsImpl) afterWrite(ctx context.Context, event shared.BookingEvent) {
	if err := b.cache.Invalidate(ctx); err != nil {
		slog.Warn("availability cache invalidation failed", "error", err)
	}
	if err := b.publisher.Publish(ctx, event); err != nil {
		slog.Warn("booking event publish failed", "type", string(event.Type), "error", err)
	}
}
