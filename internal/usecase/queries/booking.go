package queries

import (
	"context"
	"strings"

	"bluehaven/internal/infra"
	"bluehaven/internal/pkg/errs"
	"bluehaven/internal/usecase/shared"
)

var (
	ErrReservationNotFound = errs.New("reservation not found")
	ErrStoreUnavailable    = errs.New("reservation store unavailable")
)

type BookingQueries interface {
	List(ctx context.Context) ([]*ReservationView, error)
	ListByEmail(ctx context.Context, email string) ([]*ReservationView, error)
	GetByID(ctx context.Context, id string) (*ReservationView, error)
	Payments(ctx context.Context, reservationID string) ([]*PaymentView, error)
}

type bookingQueriesImpl struct {
	store    shared.ReservationStore
	payments shared.PaymentStore
}

func NewBookingQueries(store shared.ReservationStore, payments shared.PaymentStore) BookingQueries {
	return &bookingQueriesImpl{store: store, payments: payments}
}

func (q *bookingQueriesImpl) List(ctx context.Context) ([]*ReservationView, error) {
	rs, err := q.store.List(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}
	return NewReservationViews(rs), nil
}

func (q *bookingQueriesImpl) ListByEmail(ctx context.Context, email string) ([]*ReservationView, error) {
	rs, err := q.store.ListByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}
	return NewReservationViews(rs), nil
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id string) (*ReservationView, error) {
	r, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}
	return NewReservationView(r), nil
}

func (q *bookingQueriesImpl) Payments(ctx context.Context, reservationID string) ([]*PaymentView, error) {
	ps, err := q.payments.ListByReservation(ctx, reservationID)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}
	views := make([]*PaymentView, len(ps))
	for i, p := range ps {
		views[i] = NewPaymentView(p)
	}
	return views, nil
}
