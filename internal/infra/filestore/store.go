package filestore

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"

	"bluehaven/internal/domain/calendar"
	"bluehaven/internal/domain/payment"
	"bluehaven/internal/domain/reservation"
	"bluehaven/internal/domain/review"
	"bluehaven/internal/infra"
	"bluehaven/internal/pkg/clock"
	"bluehaven/internal/pkg/errs"
)

var (
	errOverlap       = errs.New("stay overlaps an occupying reservation")
	errDuplicateCode = errs.New("confirmation code already in use")
	errDuplicateID   = errs.New("record id already in use")
	errNotFound      = errs.New("record not found")
)

// Store keeps bookings, payments and reviews as three JSON documents named
// <prefix>_bookings.json, <prefix>_payments.json and <prefix>_reviews.json.
type Store struct {
	bookings *document[bookingRecord]
	payments *document[paymentRecord]
	reviews  *document[reviewRecord]
	policy   reservation.OccupancyPolicy
	clock    clock.Clock
	logger   *slog.Logger
}

// New opens the documents under dir. policy must be the one the calendar uses,
// otherwise Append would refuse nights the calendar shows as free.
func New(dir, prefix string, policy reservation.OccupancyPolicy, clk clock.Clock, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	if policy == "" {
		policy = reservation.OccupancyConfirmedAndPending
	}
	return &Store{
		policy:   policy,
		bookings: newDocument[bookingRecord](filepath.Join(dir, prefix+"_bookings.json")),
		payments: newDocument[paymentRecord](filepath.Join(dir, prefix+"_payments.json")),
		reviews:  newDocument[reviewRecord](filepath.Join(dir, prefix+"_reviews.json")),
		clock:    clk,
		logger:   logger,
	}
}

func (s *Store) Reservations() *ReservationStore { return &ReservationStore{s: s} }
func (s *Store) Payments() *PaymentStore         { return &PaymentStore{s: s} }
func (s *Store) Reviews() *ReviewStore           { return &ReviewStore{s: s} }

func (s *Store) ioErr(msg string, err error) error {
	var repoErr infra.RepositoryError
	if errors.As(err, &repoErr) {
		return err
	}
	return infra.WrapRepoErr(s.logger, infra.KindIOFailure, msg, err)
}

type ReservationStore struct {
	s *Store
}

func (r *ReservationStore) List(ctx context.Context) ([]*reservation.Reservation, error) {
	return r.filter(ctx, "failed to list reservations", func(bookingRecord) bool { return true })
}

func (r *ReservationStore) ListByEmail(ctx context.Context, email string) ([]*reservation.Reservation, error) {
	want := strings.ToLower(strings.TrimSpace(email))
	return r.filter(ctx, "failed to list reservations by email", func(b bookingRecord) bool {
		return strings.ToLower(b.Email) == want
	})
}

func (r *ReservationStore) FindByID(ctx context.Context, id string) (*reservation.Reservation, error) {
	return r.findOne(ctx, "failed to find reservation", func(b bookingRecord) bool { return b.ID == id })
}

func (r *ReservationStore) FindByConfirmationCode(ctx context.Context, code string) (*reservation.Reservation, error) {
	want := strings.ToUpper(strings.TrimSpace(code))
	return r.findOne(ctx, "failed to find reservation by confirmation code", func(b bookingRecord) bool {
		return b.ConfirmationCode == want
	})
}

// Append re-checks overlap and code uniqueness under the document lock, so two
// requests in this process cannot both claim the same nights.
func (r *ReservationStore) Append(ctx context.Context, res *reservation.Reservation) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	rec := toBookingRecord(res)
	err := r.s.bookings.update(func(items []bookingRecord) ([]bookingRecord, error) {
		for _, b := range items {
			switch {
			case b.ID == rec.ID:
				return nil, infra.WrapRepoErr(r.s.logger, infra.KindDuplicateKey, "failed to append reservation", errDuplicateID)
			case b.ConfirmationCode == rec.ConfirmationCode:
				return nil, infra.WrapRepoErr(r.s.logger, infra.KindDuplicateKey, "failed to append reservation", errDuplicateCode)
			case r.s.occupiesOverlap(b, rec.ID, res.Status(), res.Stay()):
				return nil, infra.WrapRepoErr(r.s.logger, infra.KindConflict, "failed to append reservation", errOverlap)
			}
		}
		return append(items, rec), nil
	})
	if err != nil {
		return r.s.ioErr("failed to append reservation", err)
	}
	return nil
}

func (r *ReservationStore) UpdateStatus(
	ctx context.Context,
	id string,
	status reservation.Status,
	paymentStatus *reservation.PaymentStatus,
) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	now := r.s.clock.Now()
	err := r.s.bookings.update(func(items []bookingRecord) ([]bookingRecord, error) {
		for i := range items {
			if items[i].ID != id {
				continue
			}
			// a stay that starts occupying (pending to confirmed under the
			// confirmed-only policy) must not land on nights already held
			stay, err := calendar.NewRange(items[i].CheckIn, items[i].CheckOut)
			if err == nil {
				for _, other := range items {
					if r.s.occupiesOverlap(other, id, status, stay) {
						return nil, infra.WrapRepoErr(r.s.logger, infra.KindConflict, "failed to update reservation status", errOverlap)
					}
				}
			}
			items[i].Status = status.String()
			if paymentStatus != nil {
				items[i].PaymentStatus = paymentStatus.String()
			}
			items[i].UpdatedAt = now
			return items, nil
		}
		return nil, infra.WrapRepoErr(r.s.logger, infra.KindNotFound, "failed to update reservation status", errNotFound)
	})
	if err != nil {
		return r.s.ioErr("failed to update reservation status", err)
	}
	return nil
}

// Clear empties all three documents, bookings last.
func (r *ReservationStore) Clear(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if err := r.s.reviews.update(func([]reviewRecord) ([]reviewRecord, error) { return []reviewRecord{}, nil }); err != nil {
		return 0, r.s.ioErr("failed to clear reviews", err)
	}
	if err := r.s.payments.update(func([]paymentRecord) ([]paymentRecord, error) { return []paymentRecord{}, nil }); err != nil {
		return 0, r.s.ioErr("failed to clear payments", err)
	}
	var n int
	err := r.s.bookings.update(func(items []bookingRecord) ([]bookingRecord, error) {
		n = len(items)
		return []bookingRecord{}, nil
	})
	if err != nil {
		return 0, r.s.ioErr("failed to clear reservations", err)
	}
	return n, nil
}

func (r *ReservationStore) filter(ctx context.Context, msg string, keep func(bookingRecord) bool) ([]*reservation.Reservation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := []*reservation.Reservation{}
	err := r.s.bookings.view(func(items []bookingRecord) error {
		for _, b := range items {
			if !keep(b) {
				continue
			}
			res, err := b.toDomain()
			if err != nil {
				r.s.logger.Warn("skipping unreadable booking record", "id", b.ID, "error", err)
				continue
			}
			out = append(out, res)
		}
		return nil
	})
	if err != nil {
		return nil, r.s.ioErr(msg, err)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt().After(out[j].CreatedAt())
	})
	return out, nil
}

func (r *ReservationStore) findOne(ctx context.Context, msg string, match func(bookingRecord) bool) (*reservation.Reservation, error) {
	found, err := r.filter(ctx, msg, match)
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, infra.WrapRepoErr(r.s.logger, infra.KindNotFound, msg, errNotFound)
	}
	return found[0], nil
}

// occupiesOverlap reports whether existing (other than selfID) holds nights of
// stay while both it and a stay in status occupy inventory under the policy.
func (s *Store) occupiesOverlap(existing bookingRecord, selfID string, status reservation.Status, stay calendar.Range) bool {
	if existing.ID == selfID {
		return false
	}
	if !s.policy.Occupies(reservation.Status(existing.Status)) || !s.policy.Occupies(status) {
		return false
	}
	held, err := calendar.NewRange(existing.CheckIn, existing.CheckOut)
	if err != nil {
		return false
	}
	return held.Overlaps(stay)
}

type PaymentStore struct {
	s *Store
}

func (p *PaymentStore) Append(ctx context.Context, pay *payment.Payment) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	rec := toPaymentRecord(pay)
	err := p.s.payments.update(func(items []paymentRecord) ([]paymentRecord, error) {
		for _, existing := range items {
			if existing.Reference == rec.Reference {
				return nil, infra.WrapRepoErr(p.s.logger, infra.KindDuplicateKey, "failed to append payment", errDuplicateID)
			}
		}
		return append(items, rec), nil
	})
	if err != nil {
		return p.s.ioErr("failed to append payment", err)
	}
	return nil
}

func (p *PaymentStore) ListByReservation(ctx context.Context, reservationID string) ([]*payment.Payment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := []*payment.Payment{}
	err := p.s.payments.view(func(items []paymentRecord) error {
		for _, rec := range items {
			if rec.BookingID != reservationID {
				continue
			}
			pay, err := rec.toDomain()
			if err != nil {
				p.s.logger.Warn("skipping unreadable payment record", "id", rec.ID.String(), "error", err)
				continue
			}
			out = append(out, pay)
		}
		return nil
	})
	if err != nil {
		return nil, p.s.ioErr("failed to list payments", err)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt().After(out[j].CreatedAt())
	})
	return out, nil
}

type ReviewStore struct {
	s *Store
}

func (r *ReviewStore) Append(ctx context.Context, rv *review.Review) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	rec := toReviewRecord(rv)
	err := r.s.reviews.update(func(items []reviewRecord) ([]reviewRecord, error) {
		for _, existing := range items {
			if existing.BookingID == rec.BookingID {
				return nil, infra.WrapRepoErr(r.s.logger, infra.KindDuplicateKey, "failed to append review", errDuplicateID)
			}
		}
		return append(items, rec), nil
	})
	if err != nil {
		return r.s.ioErr("failed to append review", err)
	}
	return nil
}

func (r *ReviewStore) List(ctx context.Context) ([]*review.Review, error) {
	return r.filter(ctx, func(reviewRecord) bool { return true })
}

func (r *ReviewStore) FindByReservation(ctx context.Context, reservationID string) (*review.Review, error) {
	found, err := r.filter(ctx, func(rec reviewRecord) bool { return rec.BookingID == reservationID })
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, infra.WrapRepoErr(r.s.logger, infra.KindNotFound, "failed to find review", errNotFound)
	}
	return found[0], nil
}

func (r *ReviewStore) filter(ctx context.Context, keep func(reviewRecord) bool) ([]*review.Review, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := []*review.Review{}
	err := r.s.reviews.view(func(items []reviewRecord) error {
		for _, rec := range items {
			if keep(rec) {
				out = append(out, rec.toDomain())
			}
		}
		return nil
	})
	if err != nil {
		return nil, r.s.ioErr("failed to list reviews", err)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt().After(out[j].CreatedAt())
	})
	return out, nil
}
