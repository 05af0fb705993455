package repository

import (
	"errors"
	"log/slog"

	"bluehaven/internal/infra"
	"bluehaven/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgErrUniqueViolation     = "23505"
	pgErrForeignKeyViolation = "23503"
	pgErrExclusionViolation  = "23P01"
)

// classify maps a pgx error to a repository error kind.
func classify(logger *slog.Logger, msg string, err error) error {
	if pgconv.IsNoRows(err) {
		return infra.WrapRepoErr(logger, infra.KindNotFound, msg, err)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgErrExclusionViolation:
			return infra.WrapRepoErr(logger, infra.KindConflict, msg, err)
		case pgErrUniqueViolation:
			return infra.WrapRepoErr(logger, infra.KindDuplicateKey, msg, err)
		case pgErrForeignKeyViolation:
			return infra.WrapRepoErr(logger, infra.KindForeignKeyViolated, msg, err)
		}
	}
	return infra.WrapRepoErr(logger, infra.KindDBFailure, msg, err)
}

// txErr passes repository errors raised inside a transaction through and
// wraps begin/commit failures.
func txErr(logger *slog.Logger, msg string, err error) error {
	if err == nil {
		return nil
	}
	var repoErr infra.RepositoryError
	if errors.As(err, &repoErr) {
		return err
	}
	return infra.WrapRepoErr(logger, infra.KindDBFailure, msg, err)
}
