package queries

import (
	"context"
	"log/slog"
	"time"

	"bluehaven/internal/domain/calendar"
	"bluehaven/internal/domain/reservation"
	"bluehaven/internal/domain/selection"
	"bluehaven/internal/pkg/clock"
	"bluehaven/internal/pkg/errs"
	"bluehaven/internal/usecase/shared"
)

var ErrRejectedPick = errs.New("rejected calendar pick")

type MonthView struct {
	Year      int
	Month     time.Month
	Today     calendar.Date
	Days      []selection.DayCell
	Selection SelectionView
	Quote     reservation.PriceQuote
}

type AvailabilityQueries interface {
	// BlockedDates is served from the cache when warm and recomputed from the store otherwise.
	BlockedDates(ctx context.Context) (calendar.Set, error)
	Quote(checkIn, checkOut *calendar.Date) reservation.PriceQuote
	Month(ctx context.Context, year int, month time.Month, sel selection.Selection) (*MonthView, error)
	// Pick applies one calendar click. A rejected pick returns the unchanged selection
	// together with an error marked ErrRejectedPick.
	Pick(ctx context.Context, sel selection.Selection, day calendar.Date) (SelectionView, error)
	Today() calendar.Date
}

type availabilityQueriesImpl struct {
	store    shared.ReservationStore
	cache    shared.AvailabilityCache
	calc     reservation.PriceCalculator
	settings shared.PropertySettings
	clock    clock.Clock
}

func NewAvailabilityQueries(
	store shared.ReservationStore,
	cache shared.AvailabilityCache,
	calc reservation.PriceCalculator,
	settings shared.PropertySettings,
	clk clock.Clock,
) AvailabilityQueries {
	return &availabilityQueriesImpl{
		store:    store,
		cache:    cache,
		calc:     calc,
		settings: settings,
		clock:    clk,
	}
}

func (q *availabilityQueriesImpl) Today() calendar.Date {
	return calendar.Today(q.clock, q.settings.Location)
}

func (q *availabilityQueriesImpl) BlockedDates(ctx context.Context) (calendar.Set, error) {
	cached, ok, err := q.cache.Get(ctx)
	if err != nil {
		slog.Warn("availability cache read failed", "error", err)
	} else if ok {
		return cached, nil
	}

	rs, err := q.store.List(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}
	blocked := reservation.ExpandBlockedDates(rs, q.settings.Occupancy)

	if err := q.cache.Set(ctx, blocked); err != nil {
		slog.Warn("availability cache write failed", "error", err)
	}
	return blocked, nil
}

func (q *availabilityQueriesImpl) Quote(checkIn, checkOut *calendar.Date) reservation.PriceQuote {
	return reservation.QuoteRange(q.calc, checkIn, checkOut)
}

func (q *availabilityQueriesImpl) Month(ctx context.Context, year int, month time.Month, sel selection.Selection) (*MonthView, error) {
	blocked, err := q.BlockedDates(ctx)
	if err != nil {
		return nil, err
	}
	today := q.Today()
	return &MonthView{
		Year:      year,
		Month:     month,
		Today:     today,
		Days:      selection.Month(year, month, today, blocked, sel),
		Selection: NewSelectionView(sel),
		Quote:     q.Quote(sel.CheckIn(), sel.CheckOut()),
	}, nil
}

func (q *availabilityQueriesImpl) Pick(ctx context.Context, sel selection.Selection, day calendar.Date) (SelectionView, error) {
	blocked, err := q.BlockedDates(ctx)
	if err != nil {
		return NewSelectionView(sel), err
	}
	next, err := sel.Pick(day, q.Today(), blocked)
	if err != nil {
		return NewSelectionView(next), errs.Mark(err, ErrRejectedPick)
	}
	return NewSelectionView(next), nil
}
