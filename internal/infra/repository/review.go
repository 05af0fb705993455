package repository

import (
	"context"
	"log/slog"

	"bluehaven/internal/domain/review"
	"bluehaven/internal/infra/repository/converter"

	"github.com/jackc/pgx/v5/pgxpool"
)

const reviewColumns = `id, reservation_id, guest_name, guest_email, rating, title, comment, created_at`

type ReviewRepository struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewReviewRepository(pool *pgxpool.Pool, logger *slog.Logger) *ReviewRepository {
	return &ReviewRepository{pool: pool, logger: logger}
}

func (r *ReviewRepository) Append(ctx context.Context, rv *review.Review) error {
	row := converter.ReviewToRow(rv)
	_, err := r.pool.Exec(ctx,
		`INSERT INTO reviews (`+reviewColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		row.Args()...)
	if err != nil {
		return classify(r.logger, "failed to append review", err)
	}
	return nil
}

func (r *ReviewRepository) List(ctx context.Context) ([]*review.Review, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+reviewColumns+` FROM reviews ORDER BY created_at DESC`)
	if err != nil {
		return nil, classify(r.logger, "failed to list reviews", err)
	}
	defer rows.Close()

	out := []*review.Review{}
	for rows.Next() {
		var row converter.ReviewRow
		if err := rows.Scan(row.Targets()...); err != nil {
			return nil, classify(r.logger, "failed to scan review", err)
		}
		out = append(out, converter.ReviewFromRow(row))
	}
	if err := rows.Err(); err != nil {
		return nil, classify(r.logger, "failed to list reviews", err)
	}
	return out, nil
}

func (r *ReviewRepository) FindByReservation(ctx context.Context, reservationID string) (*review.Review, error) {
	var row converter.ReviewRow
	err := r.pool.QueryRow(ctx,
		`SELECT `+reviewColumns+` FROM reviews WHERE reservation_id = $1`, reservationID).Scan(row.Targets()...)
	if err != nil {
		return nil, classify(r.logger, "failed to find review", err)
	}
	return converter.ReviewFromRow(row), nil
}
