package shared

import (
	"context"
	"time"

	"solar-dispatch/internal/domain/customer"
	"solar-dispatch/internal/domain/verification"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

//go:generate mockgen -source=uow.go -destination=../../../tests/mock/shared/uow_mock.go -package=sharedmock

// DBTX is satisfied by *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single statements using implicit transactions, for conditional
	// updates that must not be rolled back together with anything else
	WithDB(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Customers() CustomerRepository
	Codes() VerificationCodeRepository
	Blocklist() BlocklistRepository
	Audit() AuditRepository
	Users() UserRepository
	DB() DBTX
}

// CustomerRepository is the customer record store.
type CustomerRepository interface {
	GetAll(ctx context.Context) ([]*customer.Customer, error)
	GetByID(ctx context.Context, id uuid.UUID) (*customer.Customer, error)
	// Update writes the patch and returns the stored record with the new updated_at.
	Update(ctx context.Context, id uuid.UUID, patch customer.Patch) (*customer.Customer, error)
	// AssignConstructionTeam writes only while construction_team is empty and
	// reports KindConflict otherwise.
	AssignConstructionTeam(ctx context.Context, id uuid.UUID, team, phone, dispatchDate string) (*customer.Customer, error)
}

type VerificationCodeRepository interface {
	Create(ctx context.Context, code *verification.Code) error
	FindByID(ctx context.Context, id uuid.UUID) (*verification.Code, error)
	// FindByCode returns every record sharing the string, newest first.
	FindByCode(ctx context.Context, code string) ([]*verification.Code, error)
	ExistsActive(ctx context.Context, code string, now time.Time) (bool, error)
	// LockIssuance serializes issuance for the rest of the transaction.
	LockIssuance(ctx context.Context) error
	// MarkUsed flips used from false to true. KindNotFound for unknown ids,
	// KindConflict when already used.
	MarkUsed(ctx context.Context, id, userID uuid.UUID, at time.Time) error
	// Reserve claims an active code until the given time. KindConflict when
	// the code is used, expired, or held by someone else.
	Reserve(ctx context.Context, id, actorID uuid.UUID, now, until time.Time) error
	Release(ctx context.Context, id, actorID uuid.UUID) error
	DeleteExpiredBefore(ctx context.Context, cutoff time.Time) (int64, error)
	ReleaseStaleReservations(ctx context.Context, now time.Time) (int64, error)
}

type BlocklistRepository interface {
	List(ctx context.Context) ([]string, error)
	Replace(ctx context.Context, salesmen []string, actorID uuid.UUID) error
}

type AuditRepository interface {
	Append(ctx context.Context, entry AuditEntry) error
}

type UserRepository interface {
	UpdateLastLogin(ctx context.Context, userID uuid.UUID) error
}
