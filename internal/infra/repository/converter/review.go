package converter

import (
	"bluehaven/internal/domain/review"
	"bluehaven/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReviewRow struct {
	ID            uuid.UUID
	ReservationID string
	GuestName     string
	GuestEmail    string
	Rating        int32
	Title         pgtype.Text
	Comment       string
	CreatedAt     pgtype.Timestamptz
}

func (r *ReviewRow) Targets() []any {
	return []any{&r.ID, &r.ReservationID, &r.GuestName, &r.GuestEmail, &r.Rating, &r.Title, &r.Comment, &r.CreatedAt}
}

func (r *ReviewRow) Args() []any {
	return []any{r.ID, r.ReservationID, r.GuestName, r.GuestEmail, r.Rating, r.Title, r.Comment, r.CreatedAt}
}

func ReviewToRow(rv *review.Review) ReviewRow {
	return ReviewRow{
		ID:            rv.ID(),
		ReservationID: rv.ReservationID(),
		GuestName:     rv.GuestName(),
		GuestEmail:    rv.GuestEmail(),
		Rating:        int32(rv.Rating().Value()), // #nosec G115 -- rating is 1..5
		Title:         pgconv.TextToPgtype(rv.Title().String()),
		Comment:       rv.Comment().String(),
		CreatedAt:     pgconv.TimeToPgtype(rv.CreatedAt()),
	}
}

func ReviewFromRow(row ReviewRow) *review.Review {
	return review.ReconstructReview(
		row.ID,
		row.ReservationID,
		row.GuestName,
		row.GuestEmail,
		int(row.Rating),
		pgconv.TextFromPgtype(row.Title),
		row.Comment,
		pgconv.TimeFromPgtype(row.CreatedAt),
	)
}
