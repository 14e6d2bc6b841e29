package db

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"learnhub-api/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	ErrTransactionBegin   = errs.New("failed to begin transaction")
	ErrTransactionCommit  = errs.New("failed to commit transaction")
	ErrMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

// Beginner is the part of pgxpool.Pool that RunInTx needs.
type Beginner interface {
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

var _ Beginner = (*pgxpool.Pool)(nil)

// RunInTx runs fn inside a read-committed transaction, retrying serialization
// failures and deadlocks with backoff.
func RunInTx[T any](ctx context.Context, pool Beginner, fn func(ctx context.Context, tx pgx.Tx) (T, error)) (T, error) {
	var zero T
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		tx, err := pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
		if err != nil {
			return zero, errs.Mark(err, ErrTransactionBegin)
		}

		result, err := fn(ctx, tx)
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("failed to rollback transaction", "error", rollbackErr)
			}
			if isRetryable(err) && attempt < maxRetries {
				sleepBackoff(ctx, base<<attempt)
				continue
			}
			return zero, err
		}

		if err := tx.Commit(ctx); err != nil {
			if isRetryable(err) && attempt < maxRetries {
				sleepBackoff(ctx, base<<attempt)
				continue
			}
			return zero, errs.Mark(err, ErrTransactionCommit)
		}
		return result, nil
	}

	return zero, ErrMaxRetriesExceeded
}

func isRetryable(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgErrCodeSerializationFailure || pgErr.Code == pgErrCodeDeadlockDetected
	}
	return false
}

func sleepBackoff(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
