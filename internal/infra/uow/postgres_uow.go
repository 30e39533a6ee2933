// Package uow runs usecase callbacks inside pgx transactions and hands them
// repositories bound to that transaction.
package uow

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"time"

	"solar-dispatch/internal/infra/repository"
	"solar-dispatch/internal/pkg/errs"
	"solar-dispatch/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

// Conflicts worth replaying. 55P03 only shows up when the role runs with a
// lock_timeout.
var retryableCodes = map[string]bool{
	"40001": true, // serialization_failure
	"40P01": true, // deadlock_detected
	"55P03": true, // lock_not_available
}

type retryPolicy struct {
	attempts int
	base     time.Duration
}

var defaultRetry = retryPolicy{attempts: 4, base: 50 * time.Millisecond}

// backoff doubles per attempt and adds up to 20% jitter.
func (p retryPolicy) backoff(attempt int) time.Duration {
	wait := p.base << attempt
	return wait + rand.N(wait/5+1)
}

type PostgresUoW struct {
	pool  *pgxpool.Pool
	retry retryPolicy
}

func NewPostgresUoW(pool *pgxpool.Pool) shared.UnitOfWork {
	return &PostgresUoW{pool: pool, retry: defaultRetry}
}

func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	opts := pgx.TxOptions{IsoLevel: pgx.ReadCommitted}

	var err error
	for attempt := range u.retry.attempts {
		if attempt > 0 {
			wait := u.retry.backoff(attempt - 1)
			slog.WarnContext(ctx, "retrying transaction",
				slog.Int("attempt", attempt+1),
				slog.Int64("wait_ms", wait.Milliseconds()),
				slog.String("error", err.Error()))
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(wait):
			}
		}

		err = u.once(ctx, opts, fn)
		if err == nil || !isRetryable(err) {
			return err
		}
	}

	slog.ErrorContext(ctx, "transaction failed after max retries",
		slog.Int("attempts", u.retry.attempts),
		slog.String("error", err.Error()))
	return errs.Mark(err, errMaxRetriesExceeded)
}

// WithinReadOnly gives list and detail queries one snapshot across tables.
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.once(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly}, fn)
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, &pgTx{dbtx: u.pool})
}

// once runs fn in a single transaction. Rollback after a successful commit
// is a no-op.
func (u *PostgresUoW) once(ctx context.Context, opts pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	tx, err := u.pool.BeginTx(ctx, opts)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}
	defer func() {
		if rbErr := tx.Rollback(context.WithoutCancel(ctx)); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			slog.WarnContext(ctx, "rollback failed", slog.String("error", rbErr.Error()))
		}
	}()

	if err := fn(ctx, &pgTx{dbtx: tx}); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return errs.Mark(err, errTransactionCommit)
	}
	return nil
}

func isRetryable(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && retryableCodes[pgErr.Code]
}

type pgTx struct {
	dbtx shared.DBTX

	// Lazy-initialized repositories
	customerRepo  shared.CustomerRepository
	codeRepo      shared.VerificationCodeRepository
	blocklistRepo shared.BlocklistRepository
	auditRepo     shared.AuditRepository
	userRepo      shared.UserRepository
}

func (t *pgTx) DB() shared.DBTX {
	return t.dbtx
}

func (t *pgTx) Customers() shared.CustomerRepository {
	if t.customerRepo == nil {
		t.customerRepo = repository.NewCustomerRepository(t.dbtx)
	}
	return t.customerRepo
}

func (t *pgTx) Codes() shared.VerificationCodeRepository {
	if t.codeRepo == nil {
		t.codeRepo = repository.NewVerificationCodeRepository(t.dbtx)
	}
	return t.codeRepo
}

func (t *pgTx) Blocklist() shared.BlocklistRepository {
	if t.blocklistRepo == nil {
		t.blocklistRepo = repository.NewBlocklistRepository(t.dbtx)
	}
	return t.blocklistRepo
}

func (t *pgTx) Audit() shared.AuditRepository {
	if t.auditRepo == nil {
		t.auditRepo = repository.NewAuditRepository(t.dbtx)
	}
	return t.auditRepo
}

func (t *pgTx) Users() shared.UserRepository {
	if t.userRepo == nil {
		t.userRepo = repository.NewUserRepository(t.dbtx)
	}
	return t.userRepo
}
