package converter

import (
	"bluehaven/internal/domain/payment"
	"bluehaven/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type PaymentRow struct {
	ID            uuid.UUID
	ReservationID string
	Method        string
	AmountCents   int64
	FeeCents      int64
	Reference     string
	Status        string
	TransactionID pgtype.Text
	Instructions  pgtype.Text
	RedirectURL   pgtype.Text
	CreatedAt     pgtype.Timestamptz
}

func (r *PaymentRow) Targets() []any {
	return []any{
		&r.ID, &r.ReservationID, &r.Method, &r.AmountCents, &r.FeeCents, &r.Reference,
		&r.Status, &r.TransactionID, &r.Instructions, &r.RedirectURL, &r.CreatedAt,
	}
}

func (r *PaymentRow) Args() []any {
	return []any{
		r.ID, r.ReservationID, r.Method, r.AmountCents, r.FeeCents, r.Reference,
		r.Status, r.TransactionID, r.Instructions, r.RedirectURL, r.CreatedAt,
	}
}

func PaymentToRow(p *payment.Payment) PaymentRow {
	rec := p.Record()
	return PaymentRow{
		ID:            rec.ID,
		ReservationID: rec.ReservationID,
		Method:        rec.Method,
		AmountCents:   rec.AmountCents,
		FeeCents:      rec.FeeCents,
		Reference:     rec.Reference,
		Status:        rec.Status,
		TransactionID: pgconv.TextToPgtype(rec.TransactionID),
		Instructions:  pgconv.TextToPgtype(rec.Instructions),
		RedirectURL:   pgconv.TextToPgtype(rec.RedirectURL),
		CreatedAt:     pgconv.TimeToPgtype(rec.CreatedAt),
	}
}

func PaymentFromRow(row PaymentRow) (*payment.Payment, error) {
	return payment.Reconstruct(payment.Record{
		ID:            row.ID,
		ReservationID: row.ReservationID,
		Method:        row.Method,
		AmountCents:   row.AmountCents,
		FeeCents:      row.FeeCents,
		Reference:     row.Reference,
		Status:        row.Status,
		TransactionID: pgconv.TextFromPgtype(row.TransactionID),
		Instructions:  pgconv.TextFromPgtype(row.Instructions),
		RedirectURL:   pgconv.TextFromPgtype(row.RedirectURL),
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
	})
}
