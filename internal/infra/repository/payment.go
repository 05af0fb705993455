package repository

import (
	"context"
	"log/slog"

	"bluehaven/internal/domain/payment"
	"bluehaven/internal/infra"
	"bluehaven/internal/infra/repository/converter"

	"github.com/jackc/pgx/v5/pgxpool"
)

const paymentColumns = `id, reservation_id, method, amount_cents, fee_cents, reference,
	status, transaction_id, instructions, redirect_url, created_at`

type PaymentRepository struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewPaymentRepository(pool *pgxpool.Pool, logger *slog.Logger) *PaymentRepository {
	return &PaymentRepository{pool: pool, logger: logger}
}

func (r *PaymentRepository) Append(ctx context.Context, p *payment.Payment) error {
	row := converter.PaymentToRow(p)
	_, err := r.pool.Exec(ctx,
		`INSERT INTO payments (`+paymentColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		row.Args()...)
	if err != nil {
		return classify(r.logger, "failed to append payment", err)
	}
	return nil
}

func (r *PaymentRepository) ListByReservation(ctx context.Context, reservationID string) ([]*payment.Payment, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+paymentColumns+` FROM payments WHERE reservation_id = $1 ORDER BY created_at DESC`,
		reservationID)
	if err != nil {
		return nil, classify(r.logger, "failed to list payments", err)
	}
	defer rows.Close()

	out := []*payment.Payment{}
	for rows.Next() {
		var row converter.PaymentRow
		if err := rows.Scan(row.Targets()...); err != nil {
			return nil, classify(r.logger, "failed to scan payment", err)
		}
		p, err := converter.PaymentFromRow(row)
		if err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "corrupt payment row", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(r.logger, "failed to list payments", err)
	}
	return out, nil
}
