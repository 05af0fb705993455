package repository

import (
	"context"
	"log/slog"
	"strings"

	"bluehaven/internal/domain/reservation"
	"bluehaven/internal/infra"
	"bluehaven/internal/infra/repository/converter"
	"bluehaven/internal/infra/uow"
	"bluehaven/internal/pkg/clock"
	"bluehaven/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const reservationColumns = `id, confirmation_code, guest_name, guest_email, guest_phone, guests,
	check_in, check_out, check_in_time, nights, total_cents, special_requests,
	status, payment_status, created_at, updated_at`

// ReservationRepository is the PostgreSQL reservation store.
type ReservationRepository struct {
	pool   *pgxpool.Pool
	uow    *uow.PostgresUoW
	clock  clock.Clock
	logger *slog.Logger
}

func NewReservationRepository(pool *pgxpool.Pool, u *uow.PostgresUoW, clk clock.Clock, logger *slog.Logger) *ReservationRepository {
	return &ReservationRepository{pool: pool, uow: u, clock: clk, logger: logger}
}

func (r *ReservationRepository) List(ctx context.Context) ([]*reservation.Reservation, error) {
	return r.query(ctx, "failed to list reservations",
		`SELECT `+reservationColumns+` FROM reservations ORDER BY created_at DESC, id DESC`)
}

func (r *ReservationRepository) ListByEmail(ctx context.Context, email string) ([]*reservation.Reservation, error) {
	return r.query(ctx, "failed to list reservations by email",
		`SELECT `+reservationColumns+` FROM reservations
		 WHERE lower(guest_email) = $1 ORDER BY created_at DESC, id DESC`,
		strings.ToLower(strings.TrimSpace(email)))
}

func (r *ReservationRepository) FindByID(ctx context.Context, id string) (*reservation.Reservation, error) {
	return r.queryOne(ctx, "failed to find reservation",
		`SELECT `+reservationColumns+` FROM reservations WHERE id = $1`, id)
}

func (r *ReservationRepository) FindByConfirmationCode(ctx context.Context, code string) (*reservation.Reservation, error) {
	return r.queryOne(ctx, "failed to find reservation by confirmation code",
		`SELECT `+reservationColumns+` FROM reservations WHERE confirmation_code = $1`,
		strings.ToUpper(strings.TrimSpace(code)))
}

// Append relies on the reservations_no_overlap exclusion constraint to reject
// stays that race past the application-level check.
func (r *ReservationRepository) Append(ctx context.Context, res *reservation.Reservation) error {
	row := converter.ReservationToRow(res)
	_, err := r.pool.Exec(ctx,
		`INSERT INTO reservations (`+reservationColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`,
		row.Args()...)
	if err != nil {
		return classify(r.logger, "failed to append reservation", err)
	}
	return nil
}

func (r *ReservationRepository) UpdateStatus(
	ctx context.Context,
	id string,
	status reservation.Status,
	paymentStatus *reservation.PaymentStatus,
) error {
	err := r.uow.Within(ctx, func(ctx context.Context, tx pgx.Tx) error {
		var current string
		err := tx.QueryRow(ctx, `SELECT payment_status FROM reservations WHERE id = $1 FOR UPDATE`, id).Scan(&current)
		if err != nil {
			return classify(r.logger, "failed to lock reservation", err)
		}
		next := current
		if paymentStatus != nil {
			next = paymentStatus.String()
		}
		_, err = tx.Exec(ctx,
			`UPDATE reservations SET status = $2, payment_status = $3, updated_at = $4 WHERE id = $1`,
			id, status.String(), next, pgconv.TimeToPgtype(r.clock.Now()))
		if err != nil {
			return classify(r.logger, "failed to update reservation status", err)
		}
		return nil
	})
	return txErr(r.logger, "failed to update reservation status", err)
}

// Clear removes every reservation together with its payments and reviews.
func (r *ReservationRepository) Clear(ctx context.Context) (int, error) {
	var n int
	err := r.uow.Within(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM reviews`); err != nil {
			return classify(r.logger, "failed to clear reviews", err)
		}
		if _, err := tx.Exec(ctx, `DELETE FROM payments`); err != nil {
			return classify(r.logger, "failed to clear payments", err)
		}
		tag, err := tx.Exec(ctx, `DELETE FROM reservations`)
		if err != nil {
			return classify(r.logger, "failed to clear reservations", err)
		}
		n = int(tag.RowsAffected())
		return nil
	})
	if err != nil {
		return 0, txErr(r.logger, "failed to clear reservations", err)
	}
	return n, nil
}

func (r *ReservationRepository) query(ctx context.Context, msg, sql string, args ...any) ([]*reservation.Reservation, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, classify(r.logger, msg, err)
	}
	defer rows.Close()

	out := []*reservation.Reservation{}
	for rows.Next() {
		var row converter.ReservationRow
		if err := rows.Scan(row.Targets()...); err != nil {
			return nil, classify(r.logger, msg, err)
		}
		res, err := converter.ReservationFromRow(row)
		if err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "corrupt reservation row "+row.ID, err)
		}
		out = append(out, res)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(r.logger, msg, err)
	}
	return out, nil
}

func (r *ReservationRepository) queryOne(ctx context.Context, msg, sql string, args ...any) (*reservation.Reservation, error) {
	var row converter.ReservationRow
	if err := r.pool.QueryRow(ctx, sql, args...).Scan(row.Targets()...); err != nil {
		return nil, classify(r.logger, msg, err)
	}
	res, err := converter.ReservationFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "corrupt reservation row "+row.ID, err)
	}
	return res, nil
}
