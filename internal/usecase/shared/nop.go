package shared

import (
	"context"

	"bluehaven/internal/domain/calendar"
)

// NopNotifier is wired when no mail relay is configured.
type NopNotifier struct{}

func (NopNotifier) BookingCreated(context.Context, BookingNotification) error        { return nil }
func (NopNotifier) Reminder(context.Context, ReminderKind, BookingNotification) error { return nil }

// NopPublisher is wired when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, BookingEvent) error { return nil }

// NopCache always misses.
type NopCache struct{}

func (NopCache) Get(context.Context) (calendar.Set, bool, error) { return nil, false, nil }
func (NopCache) Set(context.Context, calendar.Set) error         { return nil }
func (NopCache) Invalidate(context.Context) error                { return nil }
