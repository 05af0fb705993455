package commands

import (
	"context"

	"bluehaven/internal/domain/calendar"
	domreview "bluehaven/internal/domain/review"
	"bluehaven/internal/infra"
	"bluehaven/internal/pkg/clock"
	"bluehaven/internal/pkg/errs"
	"bluehaven/internal/usecase/queries"
	"bluehaven/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidReview     = errs.New("invalid review")
	ErrReviewNotAllowed  = errs.New("review not allowed")
	ErrDuplicateReview   = errs.New("duplicate review for reservation")
	ErrReviewNotYourStay = errs.New("review not owned by guest")
)

type CreateReviewInput struct {
	ReservationID string
	Rating        int
	Title         string
	Comment       string
}

type ReviewCommands interface {
	Create(ctx context.Context, guestEmail string, in CreateReviewInput) (*queries.ReviewView, error)
}

type reviewCommandsImpl struct {
	reservations shared.ReservationStore
	reviews      shared.ReviewStore
	settings     shared.PropertySettings
	clock        clock.Clock
}

func NewReviewCommands(reservations shared.ReservationStore, reviews shared.ReviewStore, settings shared.PropertySettings, clk clock.Clock) ReviewCommands {
	return &reviewCommandsImpl{reservations: reservations, reviews: reviews, settings: settings, clock: clk}
}

func (uc *reviewCommandsImpl) Create(ctx context.Context, guestEmail string, in CreateReviewInput) (*queries.ReviewView, error) {
	res, err := uc.reservations.FindByID(ctx, in.ReservationID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	_, err = uc.reviews.FindByReservation(ctx, res.ID())
	alreadyReviewed := err == nil
	if err != nil && !infra.IsKind(err, infra.KindNotFound) {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	err = domreview.CheckEligibility(domreview.EligibilityInput{
		Reservation:     res,
		GuestEmail:      guestEmail,
		Today:           calendar.Today(uc.clock, uc.settings.Location),
		AlreadyReviewed: alreadyReviewed,
	})
	switch {
	case errs.Is(err, domreview.ErrNotReservationGuest):
		return nil, errs.Mark(err, ErrReviewNotYourStay)
	case errs.Is(err, domreview.ErrReviewAlreadyExists):
		return nil, errs.Mark(err, ErrDuplicateReview)
	case err != nil:
		return nil, errs.Mark(err, ErrReviewNotAllowed)
	}

	rev, err := domreview.NewReview(uuid.New(), res.ID(), res.Guest().Name(), res.Guest().Email().Value(),
		in.Rating, in.Title, in.Comment, uc.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidReview)
	}

	if err := uc.reviews.Append(ctx, rev); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, ErrDuplicateReview)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return queries.NewReviewView(rev), nil
}
