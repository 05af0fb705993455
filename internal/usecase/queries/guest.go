package queries

import (
	"context"

	"bluehaven/internal/domain/calendar"
	"bluehaven/internal/domain/reservation"
	"bluehaven/internal/domain/user"
	"bluehaven/internal/pkg/clock"
	"bluehaven/internal/pkg/errs"
	"bluehaven/internal/usecase/shared"
)

type GuestStats struct {
	TotalBookings    int
	UpcomingBookings int
	PastBookings     int
	TotalSpentCents  int64
	ReviewsGiven     int
}

type DashboardView struct {
	Email    string
	Stats    GuestStats
	Upcoming []*ReservationView
	Past     []*ReservationView
}

type GuestQueries interface {
	Bookings(ctx context.Context, email string) ([]*ReservationView, error)
	Dashboard(ctx context.Context, email string) (*DashboardView, error)
}

type guestQueriesImpl struct {
	store    shared.ReservationStore
	reviews  shared.ReviewStore
	settings shared.PropertySettings
	clock    clock.Clock
}

func NewGuestQueries(store shared.ReservationStore, reviews shared.ReviewStore, settings shared.PropertySettings, clk clock.Clock) GuestQueries {
	return &guestQueriesImpl{store: store, reviews: reviews, settings: settings, clock: clk}
}

func (q *guestQueriesImpl) Bookings(ctx context.Context, email string) ([]*ReservationView, error) {
	rs, err := q.store.ListByEmail(ctx, email)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}
	return NewReservationViews(rs), nil
}

// Dashboard splits a guest's stays around today. Cancelled stays count towards
// the booking total but not towards spend.
func (q *guestQueriesImpl) Dashboard(ctx context.Context, email string) (*DashboardView, error) {
	rs, err := q.store.ListByEmail(ctx, email)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}
	reviews, err := q.reviews.List(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}

	today := calendar.Today(q.clock, q.settings.Location)
	guest := user.ReconstructEmail(email)
	view := &DashboardView{
		Email:    guest.Value(),
		Upcoming: []*ReservationView{},
		Past:     []*ReservationView{},
	}
	view.Stats.TotalBookings = len(rs)
	for _, r := range rs {
		if r.Status() != reservation.StatusCancelled {
			view.Stats.TotalSpentCents += r.Total().Cents()
		}
		if r.IsUpcoming(today) {
			view.Upcoming = append(view.Upcoming, NewReservationView(r))
		} else {
			view.Past = append(view.Past, NewReservationView(r))
		}
	}
	view.Stats.UpcomingBookings = len(view.Upcoming)
	view.Stats.PastBookings = len(view.Past)
	for _, rv := range reviews {
		if guest.Matches(rv.GuestEmail()) {
			view.Stats.ReviewsGiven++
		}
	}
	return view, nil
}
