//go:build unit || e2e

package builder

import (
	"time"

	domreview "bluehaven/internal/domain/review"
	reqdto "bluehaven/internal/handler/dto/request"
	"bluehaven/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReviewBuilder struct {
	ReservationID string
	GuestName     string
	GuestEmail    string
	Rating        int
	Title         string
	Comment       string
	CreatedAt     time.Time
}

func NewReviewBuilder() *ReviewBuilder {
	return &ReviewBuilder{
		ReservationID: "BHTEST0001",
		GuestName:     "Thandi Mokoena",
		GuestEmail:    "thandi@example.com",
		Rating:        5,
		Title:         "Perfect beach week",
		Comment:       "Spotless apartment and a view of the whole bay.",
		CreatedAt:     time.Date(2026, 7, 14, 10, 0, 0, 0, time.UTC),
	}
}

func (r *ReviewBuilder) With(mutate func(*ReviewBuilder)) *ReviewBuilder {
	mutate(r)
	return r
}

func (r *ReviewBuilder) BuildDomain() (*domreview.Review, error) {
	return domreview.NewReview(uuid.Nil, r.ReservationID, r.GuestName, r.GuestEmail, r.Rating, r.Title, r.Comment, r.CreatedAt)
}

func (r *ReviewBuilder) BuildView() *queries.ReviewView {
	return &queries.ReviewView{
		ID:            uuid.New(),
		ReservationID: r.ReservationID,
		GuestName:     r.GuestName,
		Rating:        r.Rating,
		Title:         r.Title,
		Comment:       r.Comment,
		CreatedAt:     r.CreatedAt,
	}
}

func (r *ReviewBuilder) BuildCreateRequestDTO() reqdto.CreateReviewRequest {
	return reqdto.CreateReviewRequest{
		ReservationID: r.ReservationID,
		Rating:        r.Rating,
		Title:         r.Title,
		Comment:       r.Comment,
	}
}

func (r *ReviewBuilder) WithRating(rating int) *ReviewBuilder {
	r.Rating = rating
	return r
}

func (r *ReviewBuilder) WithComment(comment string) *ReviewBuilder {
	r.Comment = comment
	return r
}

func (r *ReviewBuilder) WithTitle(title string) *ReviewBuilder {
	r.Title = title
	return r
}
