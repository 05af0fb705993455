package review

import (
	"bluehaven/internal/domain/calendar"
	"bluehaven/internal/domain/reservation"
)

type EligibilityInput struct {
	Reservation     *reservation.Reservation
	GuestEmail      string
	Today           calendar.Date
	AlreadyReviewed bool
}

// CheckEligibility allows one review per stay, by the booking's guest, once
// the stay is completed or its check-out day has arrived.
func CheckEligibility(in EligibilityInput) error {
	res := in.Reservation
	if res == nil {
		return ErrReservationNotEligible
	}
	if !res.Guest().Email().Matches(in.GuestEmail) {
		return ErrNotReservationGuest
	}
	if in.AlreadyReviewed {
		return ErrReviewAlreadyExists
	}
	switch res.Status() {
	case reservation.StatusCompleted:
		return nil
	case reservation.StatusConfirmed:
		if !in.Today.Before(res.Stay().CheckOut()) {
			return nil
		}
	}
	return ErrReservationNotEligible
}
