package review

import (
	"time"

	"github.com/google/uuid"
)

type Review struct {
	id            uuid.UUID
	reservationID string
	guestName     string
	guestEmail    string
	rating        Rating
	title         Title
	comment       Comment
	createdAt     time.Time
}

func NewReview(id uuid.UUID, reservationID, guestName, guestEmail string, ratingValue int, titleText, commentText string, now time.Time) (*Review, error) {
	rating, err := NewRating(ratingValue)
	if err != nil {
		return nil, err
	}

	title, err := NewTitle(titleText)
	if err != nil {
		return nil, err
	}

	comment, err := NewComment(commentText)
	if err != nil {
		return nil, err
	}

	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Review{
		id:            id,
		reservationID: reservationID,
		guestName:     guestName,
		guestEmail:    guestEmail,
		rating:        rating,
		title:         title,
		comment:       comment,
		createdAt:     now,
	}, nil
}

// ReconstructReview rebuilds a stored review without re-validating it.
func ReconstructReview(id uuid.UUID, reservationID, guestName, guestEmail string, rating int, title, comment string, createdAt time.Time) *Review {
	return &Review{
		id:            id,
		reservationID: reservationID,
		guestName:     guestName,
		guestEmail:    guestEmail,
		rating:        Rating{value: rating},
		title:         Title{value: title},
		comment:       Comment{value: comment},
		createdAt:     createdAt,
	}
}

func (r *Review) ID() uuid.UUID         { return r.id }
func (r *Review) ReservationID() string { return r.reservationID }
func (r *Review) GuestName() string     { return r.guestName }
func (r *Review) GuestEmail() string    { return r.guestEmail }
func (r *Review) Rating() Rating        { return r.rating }
func (r *Review) Title() Title          { return r.title }
func (r *Review) Comment() Comment      { return r.comment }
func (r *Review) CreatedAt() time.Time  { return r.createdAt }
