package repository

import (
	"context"
	"time"

	"solar-dispatch/internal/domain/verification"
	"solar-dispatch/internal/infra"
	"solar-dispatch/internal/pkg/pgconv"
	"solar-dispatch/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// issuanceLockKey is the advisory lock id taken while issuing a code.
const issuanceLockKey int64 = 0x736f6c6172 // "solar"

const codeColumns = `id, code, issued_by, blocked_salesmen, created_at, expires_at, used, used_by, used_at, reserved_by, reserved_until`

type VerificationCodeRepository struct {
	db shared.DBTX
}

func NewVerificationCodeRepository(db shared.DBTX) *VerificationCodeRepository {
	return &VerificationCodeRepository{db: db}
}

func (r *VerificationCodeRepository) Create(ctx context.Context, code *verification.Code) error {
	const query = `
INSERT INTO verification_codes (id, code, issued_by, blocked_salesmen, created_at, expires_at, used)
VALUES ($1, $2, $3, $4, $5, $6, false)`
	_, err := r.db.Exec(ctx, query,
		code.ID(), code.Code(), code.IssuedBy(), code.BlockedSalesmen(), code.CreatedAt(), code.ExpiresAt())
	if err != nil {
		return infra.WrapRepoErr("failed to create verification code", err)
	}
	return nil
}

func (r *VerificationCodeRepository) FindByID(ctx context.Context, id uuid.UUID) (*verification.Code, error) {
	c, err := scanCode(r.db.QueryRow(ctx, "SELECT "+codeColumns+" FROM verification_codes WHERE id = $1", id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("verification code not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find verification code", err)
	}
	return c, nil
}

func (r *VerificationCodeRepository) FindByCode(ctx context.Context, code string) ([]*verification.Code, error) {
	rows, err := r.db.Query(ctx,
		"SELECT "+codeColumns+" FROM verification_codes WHERE code = $1 ORDER BY created_at DESC, id DESC", code)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find verification codes", err)
	}
	defer rows.Close()

	var out []*verification.Code
	for rows.Next() {
		c, err := scanCode(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan verification code", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate verification codes", err)
	}
	return out, nil
}

func (r *VerificationCodeRepository) ExistsActive(ctx context.Context, code string, now time.Time) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM verification_codes WHERE code = $1 AND NOT used AND expires_at >= $2)",
		code, now).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check active verification code", err)
	}
	return exists, nil
}

func (r *VerificationCodeRepository) LockIssuance(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, "SELECT pg_advisory_xact_lock($1)", issuanceLockKey); err != nil {
		return infra.WrapRepoErr("failed to lock code issuance", err)
	}
	return nil
}

func (r *VerificationCodeRepository) MarkUsed(ctx context.Context, id, userID uuid.UUID, at time.Time) error {
	const query = `
UPDATE verification_codes
SET used = true, used_by = $2, used_at = $3, reserved_by = NULL, reserved_until = NULL
WHERE id = $1 AND NOT used`
	tag, err := r.db.Exec(ctx, query, id, userID, at)
	if err != nil {
		return infra.WrapRepoErr("failed to mark verification code used", err)
	}
	if tag.RowsAffected() == 1 {
		return nil
	}
	return r.missOrConflict(ctx, id, "verification code already used")
}

func (r *VerificationCodeRepository) Reserve(ctx context.Context, id, actorID uuid.UUID, now, until time.Time) error {
	const query = `
UPDATE verification_codes
SET reserved_by = $2, reserved_until = $4
WHERE id = $1 AND NOT used AND expires_at >= $3
  AND (reserved_until IS NULL OR reserved_until <= $3)`
	tag, err := r.db.Exec(ctx, query, id, actorID, now, until)
	if err != nil {
		return infra.WrapRepoErr("failed to reserve verification code", err)
	}
	if tag.RowsAffected() == 1 {
		return nil
	}
	return r.missOrConflict(ctx, id, "verification code not reservable")
}

func (r *VerificationCodeRepository) Release(ctx context.Context, id, actorID uuid.UUID) error {
	const query = `
UPDATE verification_codes
SET reserved_by = NULL, reserved_until = NULL
WHERE id = $1 AND reserved_by = $2 AND NOT used`
	if _, err := r.db.Exec(ctx, query, id, actorID); err != nil {
		return infra.WrapRepoErr("failed to release verification code", err)
	}
	return nil
}

func (r *VerificationCodeRepository) DeleteExpiredBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, "DELETE FROM verification_codes WHERE expires_at < $1", cutoff)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete expired verification codes", err)
	}
	return tag.RowsAffected(), nil
}

func (r *VerificationCodeRepository) ReleaseStaleReservations(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx,
		"UPDATE verification_codes SET reserved_by = NULL, reserved_until = NULL WHERE reserved_until IS NOT NULL AND reserved_until <= $1",
		now)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to release stale reservations", err)
	}
	return tag.RowsAffected(), nil
}

func (r *VerificationCodeRepository) missOrConflict(ctx context.Context, id uuid.UUID, conflictMsg string) error {
	var exists bool
	if err := r.db.QueryRow(ctx, "SELECT EXISTS (SELECT 1 FROM verification_codes WHERE id = $1)", id).Scan(&exists); err != nil {
		return infra.WrapRepoErr("failed to check verification code", err)
	}
	if !exists {
		return infra.WrapRepoErr("verification code not found", nil, infra.KindNotFound)
	}
	return infra.WrapRepoErr(conflictMsg, nil, infra.KindConflict)
}

func scanCode(row pgx.Row) (*verification.Code, error) {
	var (
		p             verification.Params
		usedBy        pgtype.UUID
		usedAt        pgtype.Timestamptz
		reservedBy    pgtype.UUID
		reservedUntil pgtype.Timestamptz
	)
	err := row.Scan(&p.ID, &p.Code, &p.IssuedBy, &p.BlockedSalesmen, &p.CreatedAt, &p.ExpiresAt,
		&p.Used, &usedBy, &usedAt, &reservedBy, &reservedUntil)
	if err != nil {
		return nil, err
	}
	p.UsedBy = pgconv.UUIDPtrFromPgtype(usedBy)
	p.UsedAt = pgconv.TimePtrFromPgtype(usedAt)
	p.ReservedBy = pgconv.UUIDPtrFromPgtype(reservedBy)
	p.ReservedUntil = pgconv.TimePtrFromPgtype(reservedUntil)
	return verification.Reconstruct(p), nil
}
