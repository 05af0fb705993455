package converter

import (
	"bluehaven/internal/domain/calendar"
	"bluehaven/internal/domain/reservation"
	"bluehaven/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

// ReservationRow mirrors one row of the reservations table.
type ReservationRow struct {
	ID               string
	ConfirmationCode string
	GuestName        string
	GuestEmail       string
	GuestPhone       string
	Guests           int32
	CheckIn          pgtype.Date
	CheckOut         pgtype.Date
	CheckInTime      string
	Nights           int32
	TotalCents       int64
	SpecialRequests  pgtype.Text
	Status           string
	PaymentStatus    string
	CreatedAt        pgtype.Timestamptz
	UpdatedAt        pgtype.Timestamptz
}

// Targets returns scan destinations in column order.
func (r *ReservationRow) Targets() []any {
	return []any{
		&r.ID, &r.ConfirmationCode, &r.GuestName, &r.GuestEmail, &r.GuestPhone, &r.Guests,
		&r.CheckIn, &r.CheckOut, &r.CheckInTime, &r.Nights, &r.TotalCents, &r.SpecialRequests,
		&r.Status, &r.PaymentStatus, &r.CreatedAt, &r.UpdatedAt,
	}
}

// Args returns insert arguments in column order.
func (r *ReservationRow) Args() []any {
	return []any{
		r.ID, r.ConfirmationCode, r.GuestName, r.GuestEmail, r.GuestPhone, r.Guests,
		r.CheckIn, r.CheckOut, r.CheckInTime, r.Nights, r.TotalCents, r.SpecialRequests,
		r.Status, r.PaymentStatus, r.CreatedAt, r.UpdatedAt,
	}
}

func ReservationToRow(res *reservation.Reservation) ReservationRow {
	rec := res.Record()
	return ReservationRow{
		ID:               rec.ID,
		ConfirmationCode: rec.ConfirmationCode,
		GuestName:        rec.GuestName,
		GuestEmail:       rec.GuestEmail,
		GuestPhone:       rec.GuestPhone,
		Guests:           int32(rec.Guests), // #nosec G115 -- bounded by property capacity
		CheckIn:          pgconv.DateToPgtype(rec.CheckIn.Time()),
		CheckOut:         pgconv.DateToPgtype(rec.CheckOut.Time()),
		CheckInTime:      rec.CheckInTime,
		Nights:           int32(rec.Nights), // #nosec G115 -- bounded by the calendar range
		TotalCents:       rec.TotalCents,
		SpecialRequests:  pgconv.TextToPgtype(rec.SpecialRequests),
		Status:           rec.Status,
		PaymentStatus:    rec.PaymentStatus,
		CreatedAt:        pgconv.TimeToPgtype(rec.CreatedAt),
		UpdatedAt:        pgconv.TimeToPgtype(rec.UpdatedAt),
	}
}

func ReservationFromRow(row ReservationRow) (*reservation.Reservation, error) {
	return reservation.Reconstruct(reservation.Record{
		ID:               row.ID,
		ConfirmationCode: row.ConfirmationCode,
		GuestName:        row.GuestName,
		GuestEmail:       row.GuestEmail,
		GuestPhone:       row.GuestPhone,
		Guests:           int(row.Guests),
		CheckIn:          calendar.DateOf(pgconv.DateFromPgtype(row.CheckIn)),
		CheckOut:         calendar.DateOf(pgconv.DateFromPgtype(row.CheckOut)),
		CheckInTime:      row.CheckInTime,
		Nights:           int(row.Nights),
		TotalCents:       row.TotalCents,
		SpecialRequests:  pgconv.TextFromPgtype(row.SpecialRequests),
		Status:           row.Status,
		PaymentStatus:    row.PaymentStatus,
		CreatedAt:        pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:        pgconv.TimeFromPgtype(row.UpdatedAt),
	})
}
