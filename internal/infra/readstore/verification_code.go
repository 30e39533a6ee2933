package readstore

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"solar-dispatch/internal/infra"
	"solar-dispatch/internal/pkg/pgconv"
	"solar-dispatch/internal/usecase/queries"
	"solar-dispatch/internal/usecase/shared"
)

const codeViewColumns = `id, code, issued_by, blocked_salesmen, used, used_by, used_at, reserved_by, reserved_until, created_at, expires_at`

type VerificationCodeReadStore struct {
	db shared.DBTX
}

func NewVerificationCodeReadStore(db shared.DBTX) *VerificationCodeReadStore {
	return &VerificationCodeReadStore{db: db}
}

func (r *VerificationCodeReadStore) FindFirstPage(ctx context.Context, issuedBy *uuid.UUID, limit int32) ([]*queries.CodeView, error) {
	const query = `
SELECT ` + codeViewColumns + `
FROM verification_codes
WHERE ($1::uuid IS NULL OR issued_by = $1)
ORDER BY created_at DESC, id DESC
LIMIT $2`
	return r.list(ctx, query, pgconv.UUIDPtrToPgtype(issuedBy), limit)
}

func (r *VerificationCodeReadStore) FindKeyset(ctx context.Context, issuedBy *uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.CodeView, error) {
	const query = `
SELECT ` + codeViewColumns + `
FROM verification_codes
WHERE ($1::uuid IS NULL OR issued_by = $1)
  AND (created_at, id) < ($2, $3)
ORDER BY created_at DESC, id DESC
LIMIT $4`
	return r.list(ctx, query, pgconv.UUIDPtrToPgtype(issuedBy), lastCreatedAt, lastID, limit)
}

func (r *VerificationCodeReadStore) list(ctx context.Context, query string, args ...any) ([]*queries.CodeView, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list verification codes", err)
	}
	defer rows.Close()

	out := make([]*queries.CodeView, 0)
	for rows.Next() {
		v, err := scanCodeView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan verification code", err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate verification codes", err)
	}
	return out, nil
}

func scanCodeView(row pgx.Row) (*queries.CodeView, error) {
	var (
		v             queries.CodeView
		usedBy        pgtype.UUID
		usedAt        pgtype.Timestamptz
		reservedBy    pgtype.UUID
		reservedUntil pgtype.Timestamptz
	)
	err := row.Scan(&v.ID, &v.Code, &v.IssuedBy, &v.BlockedSalesmen, &v.Used, &usedBy, &usedAt,
		&reservedBy, &reservedUntil, &v.CreatedAt, &v.ExpiresAt)
	if err != nil {
		return nil, err
	}
	v.UsedBy = pgconv.UUIDPtrFromPgtype(usedBy)
	v.UsedAt = pgconv.TimePtrFromPgtype(usedAt)
	v.ReservedBy = pgconv.UUIDPtrFromPgtype(reservedBy)
	v.ReservedUntil = pgconv.TimePtrFromPgtype(reservedUntil)
	if v.BlockedSalesmen == nil {
		v.BlockedSalesmen = []string{}
	}
	return &v, nil
}
