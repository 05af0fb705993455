package queries

import (
	"context"

	"bluehaven/internal/domain/calendar"
	"bluehaven/internal/domain/reservation"
	"bluehaven/internal/pkg/clock"
	"bluehaven/internal/pkg/errs"
	"bluehaven/internal/usecase/shared"
)

type UpcomingReminders struct {
	CheckIns  []*ReservationView
	CheckOuts []*ReservationView
}

type ReminderQueries interface {
	// Upcoming lists confirmed stays that start or end within the next days days.
	Upcoming(ctx context.Context, days int) (*UpcomingReminders, error)
}

type reminderQueriesImpl struct {
	store    shared.ReservationStore
	settings shared.PropertySettings
	clock    clock.Clock
}

func NewReminderQueries(store shared.ReservationStore, settings shared.PropertySettings, clk clock.Clock) ReminderQueries {
	return &reminderQueriesImpl{store: store, settings: settings, clock: clk}
}

func (q *reminderQueriesImpl) Upcoming(ctx context.Context, days int) (*UpcomingReminders, error) {
	if days <= 0 {
		days = 1
	}
	rs, err := q.store.List(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}

	today := calendar.Today(q.clock, q.settings.Location)
	window, _ := calendar.NewRange(today.AddDays(1), today.AddDays(days+1))

	out := &UpcomingReminders{CheckIns: []*ReservationView{}, CheckOuts: []*ReservationView{}}
	for _, r := range rs {
		if r.Status() != reservation.StatusConfirmed {
			continue
		}
		if window.Contains(r.Stay().CheckIn()) {
			out.CheckIns = append(out.CheckIns, NewReservationView(r))
		}
		if window.Contains(r.Stay().CheckOut()) {
			out.CheckOuts = append(out.CheckOuts, NewReservationView(r))
		}
	}
	return out, nil
}
