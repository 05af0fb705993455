package uow

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"time"

	"bluehaven/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	errBegin     = errs.New("failed to begin transaction")
	errCommit    = errs.New("failed to commit transaction")
	errExhausted = errs.New("transaction failed after retries")
)

// PostgresUoW wraps booking mutations that read then write (status changes, bulk clear)
// in one transaction. Serialization failures and deadlocks are retried with jittered
// backoff; everything else, exclusion violations included, surfaces on the first try.
type PostgresUoW struct {
	pool     *pgxpool.Pool
	attempts int
	backoff  time.Duration
	logger   *slog.Logger
}

func NewPostgresUoW(pool *pgxpool.Pool) *PostgresUoW {
	return &PostgresUoW{
		pool:     pool,
		attempts: 4,
		backoff:  50 * time.Millisecond,
		logger:   slog.Default().With("component", "uow"),
	}
}

func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx pgx.Tx) error) error {
	var lastErr error
	for attempt := 1; attempt <= u.attempts; attempt++ {
		err := u.once(ctx, fn)
		if err == nil || !transient(err) {
			return err
		}
		lastErr = err

		if attempt == u.attempts {
			break
		}
		wait := u.backoff<<(attempt-1) + rand.N(u.backoff)
		u.logger.Warn("retrying booking transaction", "attempt", attempt, "wait_ms", wait.Milliseconds(), "error", err)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}

	u.logger.Error("booking transaction gave up", "attempts", u.attempts, "error", lastErr)
	return errs.Mark(lastErr, errExhausted)
}

// once runs fn in a single read-committed transaction. Rollback after a
// successful commit is a no-op.
func (u *PostgresUoW) once(ctx context.Context, fn func(ctx context.Context, tx pgx.Tx) error) (err error) {
	tx, err := u.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return errs.Mark(err, errBegin)
	}
	defer func() {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			u.logger.Warn("rollback failed", "error", rbErr)
		}
	}()

	if err = fn(ctx, tx); err != nil {
		return err
	}
	if err = tx.Commit(ctx); err != nil {
		return errs.Mark(err, errCommit)
	}
	return nil
}

func transient(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	// serialization_failure, deadlock_detected
	return pgErr.Code == "40001" || pgErr.Code == "40P01"
}
