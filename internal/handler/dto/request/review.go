package request

import (
	"strings"

	"bluehaven/internal/usecase/commands"
)

type CreateReviewRequest struct {
	ReservationID string `json:"reservationId" binding:"required"`
	Rating        int    `json:"rating" binding:"required,min=1,max=5"`
	Title         string `json:"title" binding:"max=120"`
	Comment       string `json:"comment" binding:"required,max=1000"`
}

func (r CreateReviewRequest) ToInput() commands.CreateReviewInput {
	return commands.CreateReviewInput{
		ReservationID: strings.TrimSpace(r.ReservationID),
		Rating:        r.Rating,
		Title:         strings.TrimSpace(r.Title),
		Comment:       strings.TrimSpace(r.Comment),
	}
}
