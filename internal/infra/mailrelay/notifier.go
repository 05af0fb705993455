package mailrelay

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"bluehaven/internal/pkg/config"
	"bluehaven/internal/usecase/shared"
)

type Sender interface {
	Send(ctx context.Context, templateID string, params map[string]any) error
}

// Notifier renders booking payloads into the relay's template parameters.
type Notifier struct {
	sender     Sender
	templates  config.MailConfig
	ownerEmail string
	loc        *time.Location
}

func NewNotifier(sender Sender, templates config.MailConfig, ownerEmail string, loc *time.Location) *Notifier {
	if loc == nil {
		loc = time.UTC
	}
	return &Notifier{sender: sender, templates: templates, ownerEmail: ownerEmail, loc: loc}
}

// BookingCreated sends the guest confirmation and then the owner notification.
// A failed guest send does not stop the owner send.
func (n *Notifier) BookingCreated(ctx context.Context, b shared.BookingNotification) error {
	guestErr := n.sender.Send(ctx, n.templates.ConfirmationTemplate, guestParams(b))
	if guestErr != nil {
		slog.Warn("guest confirmation email failed", "confirmation_code", b.ConfirmationCode, "error", guestErr)
	} else {
		slog.Info("guest confirmation email sent", "confirmation_code", b.ConfirmationCode)
	}

	ownerErr := n.sender.Send(ctx, n.templates.OwnerTemplate, n.ownerParams(b))
	if ownerErr != nil {
		slog.Warn("owner notification email failed", "confirmation_code", b.ConfirmationCode, "error", ownerErr)
	} else {
		slog.Info("owner notification email sent", "confirmation_code", b.ConfirmationCode)
	}

	return errors.Join(guestErr, ownerErr)
}

func (n *Notifier) Reminder(ctx context.Context, kind shared.ReminderKind, b shared.BookingNotification) error {
	params := guestParams(b)
	params["guest_email"] = b.GuestEmail
	params["special_requests"] = specialRequests(b)

	template := n.templates.CheckInReminderTemplate
	if kind == shared.ReminderCheckOut {
		template = n.templates.CheckOutReminderTemplate
	} else {
		params["days_until_checkin"] = 1
		params["check_in_time"] = b.CheckInTime
	}
	return n.sender.Send(ctx, template, params)
}

func guestParams(b shared.BookingNotification) map[string]any {
	return map[string]any{
		"guest_name":        b.GuestName,
		"to_email":          b.GuestEmail,
		"confirmation_code": b.ConfirmationCode,
		"check_in_date":     b.CheckIn,
		"check_out_date":    b.CheckOut,
		"nights":            b.Nights,
		"guests":            b.Guests,
		"total_amount":      b.Total.String(),
	}
}

func (n *Notifier) ownerParams(b shared.BookingNotification) map[string]any {
	return map[string]any{
		"to_email":          n.ownerEmail,
		"booking_id":        b.ReservationID,
		"confirmation_code": b.ConfirmationCode,
		"guest_name":        b.GuestName,
		"guest_email":       b.GuestEmail,
		"guest_phone":       b.GuestPhone,
		"check_in_date":     b.CheckIn,
		"check_out_date":    b.CheckOut,
		"nights":            b.Nights,
		"guests":            b.Guests,
		"total_amount":      b.Total.String(),
		"booking_date":      b.CreatedAt.In(n.loc).Format("2006-01-02"),
		"special_requests":  specialRequests(b),
	}
}

func specialRequests(b shared.BookingNotification) string {
	if b.SpecialRequests == "" {
		return "None"
	}
	return b.SpecialRequests
}
