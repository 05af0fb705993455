package commands

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"bluehaven/internal/domain/calendar"
	"bluehaven/internal/domain/reservation"
	"bluehaven/internal/infra"
	"bluehaven/internal/pkg/clock"
	"bluehaven/internal/pkg/errs"
	"bluehaven/internal/usecase/shared"
)

var (
	ErrInvalidReminderKind = errs.New("invalid reminder kind")
	ErrReminderFailed      = errs.New("reminder dispatch failed")
)

type DispatchReport struct {
	CheckIns  int
	CheckOuts int
	Skipped   int
	Failed    int
}

type ReminderCommands interface {
	// DispatchDue sends tomorrow's check-in and check-out reminders for confirmed
	// stays. Each (reservation, kind, day) is sent at most once per process.
	DispatchDue(ctx context.Context) (*DispatchReport, error)
	Send(ctx context.Context, reservationID string, kind shared.ReminderKind) error
}

type reminderCommandsImpl struct {
	store    shared.ReservationStore
	notifier shared.Notifier
	settings shared.PropertySettings
	clock    clock.Clock

	mu   sync.Mutex
	sent map[string]struct{}
}

func NewReminderCommands(store shared.ReservationStore, notifier shared.Notifier, settings shared.PropertySettings, clk clock.Clock) ReminderCommands {
	return &reminderCommandsImpl{
		store:    store,
		notifier: notifier,
		settings: settings,
		clock:    clk,
		sent:     make(map[string]struct{}),
	}
}

func (uc *reminderCommandsImpl) DispatchDue(ctx context.Context) (*DispatchReport, error) {
	rs, err := uc.store.List(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	today := calendar.Today(uc.clock, uc.settings.Location)
	tomorrow := today.AddDays(1)
	report := &DispatchReport{}
	for _, r := range rs {
		if r.Status() != reservation.StatusConfirmed {
			continue
		}
		if r.Stay().CheckIn().Equal(tomorrow) {
			uc.dispatch(ctx, r, shared.ReminderCheckIn, today, report)
		}
		if r.Stay().CheckOut().Equal(tomorrow) {
			uc.dispatch(ctx, r, shared.ReminderCheckOut, today, report)
		}
	}

	uc.forgetBefore(today)
	slog.Info("reminder check completed",
		"check_ins", report.CheckIns,
		"check_outs", report.CheckOuts,
		"skipped", report.Skipped,
		"failed", report.Failed)
	return report, nil
}

func (uc *reminderCommandsImpl) dispatch(ctx context.Context, r *reservation.Reservation, kind shared.ReminderKind, today calendar.Date, report *DispatchReport) {
	key := dedupKey(r.ID(), kind, today)
	uc.mu.Lock()
	_, done := uc.sent[key]
	uc.mu.Unlock()
	if done {
		report.Skipped++
		return
	}

	if err := uc.notifier.Reminder(ctx, kind, shared.NewBookingNotification(r)); err != nil {
		slog.Warn("reminder failed", "reservation_id", r.ID(), "kind", string(kind), "error", err)
		report.Failed++
		return
	}

	uc.mu.Lock()
	uc.sent[key] = struct{}{}
	uc.mu.Unlock()
	if kind == shared.ReminderCheckIn {
		report.CheckIns++
	} else {
		report.CheckOuts++
	}
}

func (uc *reminderCommandsImpl) Send(ctx context.Context, reservationID string, kind shared.ReminderKind) error {
	if !kind.IsValid() {
		return ErrInvalidReminderKind
	}
	r, err := uc.store.FindByID(ctx, reservationID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrReservationNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if err := uc.notifier.Reminder(ctx, kind, shared.NewBookingNotification(r)); err != nil {
		return errs.Mark(err, ErrReminderFailed)
	}
	slog.Info("manual reminder sent", "reservation_id", r.ID(), "kind", string(kind))
	return nil
}

// forgetBefore drops dedup entries from earlier days.
func (uc *reminderCommandsImpl) forgetBefore(today calendar.Date) {
	suffix := "|" + today.String()
	uc.mu.Lock()
	defer uc.mu.Unlock()
	for k := range uc.sent {
		if !strings.HasSuffix(k, suffix) {
			delete(uc.sent, k)
		}
	}
}

func dedupKey(id string, kind shared.ReminderKind, day calendar.Date) string {
	return id + "|" + string(kind) + "|" + day.String()
}
