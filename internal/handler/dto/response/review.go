package response

import (
	"time"

	"bluehaven/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ReviewResponse struct {
	ID            uuid.UUID `json:"id"`
	ReservationID string    `json:"bookingId"`
	GuestName     string    `json:"guestName"`
	Rating        int       `json:"rating"`
	Title         string    `json:"title"`
	Comment       string    `json:"comment"`
	CreatedAt     time.Time `json:"createdAt"`
}

func FromReviewView(v *queries.ReviewView) *ReviewResponse {
	var out ReviewResponse
	_ = copier.Copy(&out, v)
	return &out
}

type ReviewListResponse struct {
	Count         int               `json:"count"`
	AverageRating float64           `json:"averageRating"`
	Reviews       []*ReviewResponse `json:"reviews"`
}

func FromReviewSummary(s *queries.ReviewSummary) *ReviewListResponse {
	out := &ReviewListResponse{Count: s.Count, AverageRating: s.AverageRating, Reviews: make([]*ReviewResponse, len(s.Reviews))}
	for i, v := range s.Reviews {
		out.Reviews[i] = FromReviewView(v)
	}
	return out
}
