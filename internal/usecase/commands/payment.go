package commands

import (
	"context"
	"log/slog"

	"bluehaven/internal/domain/payment"
	"bluehaven/internal/domain/reservation"
	"bluehaven/internal/infra"
	"bluehaven/internal/pkg/clock"
	"bluehaven/internal/pkg/errs"
	"bluehaven/internal/usecase/queries"
	"bluehaven/internal/usecase/shared"
)

var (
	ErrInvalidPaymentMethod = errs.New("invalid payment method")
	ErrPaymentNotAllowed    = errs.New("payment not allowed")
	ErrPaymentGateway       = errs.New("payment gateway unavailable")
)

type PaymentResult struct {
	Payment     *queries.PaymentView
	Reservation *queries.ReservationView
	Success     bool
	Message     string
}

type PaymentCommands interface {
	// Process charges the full stay total through the chosen method. A declined
	// charge is a result, not an error; the reservation stays recorded either way.
	Process(ctx context.Context, reservationID, method string) (*PaymentResult, error)
}

type paymentCommandsImpl struct {
	reservations shared.ReservationStore
	payments     shared.PaymentStore
	gateway      shared.PaymentGateway
	cache        shared.AvailabilityCache
	publisher    shared.EventPublisher
	clock        clock.Clock
}

func NewPaymentCommands(
	reservations shared.ReservationStore,
	payments shared.PaymentStore,
	gateway shared.PaymentGateway,
	cache shared.AvailabilityCache,
	publisher shared.EventPublisher,
	clk clock.Clock,
) PaymentCommands {
	return &paymentCommandsImpl{
		reservations: reservations,
		payments:     payments,
		gateway:      gateway,
		cache:        cache,
		publisher:    publisher,
		clock:        clk,
	}
}

func (p *paymentCommandsImpl) Process(ctx context.Context, reservationID, methodID string) (*PaymentResult, error) {
	method, err := payment.LookupMethod(methodID)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidPaymentMethod)
	}

	res, err := p.reservations.FindByID(ctx, reservationID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if err := res.CanAcceptPayment(); err != nil {
		return nil, errs.Mark(err, ErrPaymentNotAllowed)
	}

	// A settled charge whose reservation update was lost earlier is applied
	// instead of charging the guest again.
	prior, err := p.settledPayment(ctx, res.ID())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if prior != nil {
		return p.reconcile(ctx, res, prior)
	}

	attempt, err := payment.NewPayment(res.ID(), method, res.Total().Cents(), p.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrPaymentNotAllowed)
	}

	outcome, err := p.gateway.Charge(ctx, shared.ChargeRequest{
		Method:      method,
		Reference:   attempt.Reference(),
		AmountCents: attempt.AmountCents(),
		TotalCents:  attempt.TotalPaidCents(),
		GuestName:   res.Guest().Name(),
		GuestEmail:  res.Guest().Email().Value(),
	})
	if err != nil {
		return nil, errs.Mark(err, ErrPaymentGateway)
	}
	attempt.Apply(outcome)

	if err := p.payments.Append(ctx, attempt); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := p.applyOutcome(ctx, res, method, attempt.Status()); err != nil {
		slog.Error("payment recorded but reservation not updated",
			"reservation_id", res.ID(),
			"payment_id", attempt.ID().String(),
			"reference", attempt.Reference(),
			"payment_record_status", string(attempt.Status()),
			"error", err)
		return nil, err
	}

	slog.Info("payment processed",
		"reservation_id", res.ID(),
		"method", string(method.ID),
		"reference", attempt.Reference(),
		"status", string(attempt.Status()))

	if err := p.publisher.Publish(ctx, shared.NewBookingEvent(shared.EventPaymentProcessed, res, p.clock.Now())); err != nil {
		slog.Warn("booking event publish failed", "type", string(shared.EventPaymentProcessed), "error", err)
	}

	return &PaymentResult{
		Payment:     queries.NewPaymentView(attempt),
		Reservation: queries.NewReservationView(res),
		Success:     outcome.Status != payment.StatusFailed,
		Message:     outcome.Message,
	}, nil
}

// settledPayment returns the first successful charge by a method that settles
// on its own, or nil.
func (p *paymentCommandsImpl) settledPayment(ctx context.Context, reservationID string) (*payment.Payment, error) {
	recorded, err := p.payments.ListByReservation(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	for _, pay := range recorded {
		if pay.Status() != payment.StatusSuccess {
			continue
		}
		if m, err := payment.LookupMethod(string(pay.Method())); err == nil && m.Settles() {
			return pay, nil
		}
	}
	return nil, nil
}

func (p *paymentCommandsImpl) reconcile(ctx context.Context, res *reservation.Reservation, prior *payment.Payment) (*PaymentResult, error) {
	method, err := payment.LookupMethod(string(prior.Method()))
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidPaymentMethod)
	}
	if err := p.applyOutcome(ctx, res, method, payment.StatusSuccess); err != nil {
		return nil, err
	}

	slog.Warn("reservation settled from an earlier payment",
		"reservation_id", res.ID(),
		"payment_id", prior.ID().String(),
		"reference", prior.Reference())

	if err := p.publisher.Publish(ctx, shared.NewBookingEvent(shared.EventPaymentProcessed, res, p.clock.Now())); err != nil {
		slog.Warn("booking event publish failed", "type", string(shared.EventPaymentProcessed), "error", err)
	}
	return &PaymentResult{
		Payment:     queries.NewPaymentView(prior),
		Reservation: queries.NewReservationView(res),
		Success:     true,
		Message:     "Payment already received",
	}, nil
}

// applyOutcome moves the reservation's statuses for an outcome and persists them.
func (p *paymentCommandsImpl) applyOutcome(ctx context.Context, res *reservation.Reservation, method payment.Method, outcome payment.Status) error {
	status, paymentStatus, changed := settle(res, method, outcome)
	if !changed {
		return nil
	}
	if err := res.ChangeStatus(status, &paymentStatus, p.clock.Now()); err != nil {
		return errs.Mark(err, ErrInvalidStatusChange)
	}
	if err := p.reservations.UpdateStatus(ctx, res.ID(), status, &paymentStatus); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if err := p.cache.Invalidate(ctx); err != nil {
		slog.Warn("availability cache invalidation failed", "error", err)
	}
	return nil
}

// settle maps a provider outcome onto the reservation. Pending outcomes from
// manual methods leave it untouched.
func settle(res *reservation.Reservation, method payment.Method, outcome payment.Status) (reservation.Status, reservation.PaymentStatus, bool) {
	switch {
	case outcome == payment.StatusSuccess && method.Settles():
		status := res.Status()
		if status == reservation.StatusPending {
			status = reservation.StatusConfirmed
		}
		return status, reservation.PaymentPaid, true
	case outcome == payment.StatusFailed:
		return res.Status(), reservation.PaymentFailed, true
	default:
		return res.Status(), res.PaymentStatus(), false
	}
}
