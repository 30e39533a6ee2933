package queries

import (
	"context"
	"time"

	"github.com/google/uuid"

	"solar-dispatch/internal/domain/verification"
	"solar-dispatch/internal/pkg/clock"
)

//go:generate mockgen -source=verification.go -destination=../../../tests/mock/queries/verification_mock.go -package=queriesmock

type VerificationCodeReadStore interface {
	FindFirstPage(ctx context.Context, issuedBy *uuid.UUID, limit int32) ([]*CodeView, error)
	FindKeyset(ctx context.Context, issuedBy *uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*CodeView, error)
}

type VerificationCodeQueries interface {
	// ListIssued pages through issued codes newest first. A nil issuer lists
	// every issuer's codes.
	ListIssued(ctx context.Context, issuedBy *uuid.UUID, cursor *Cursor, limit int) ([]*CodeView, *Cursor, error)
}

type verificationCodeQueriesImpl struct {
	repo  VerificationCodeReadStore
	clock clock.Clock
}

func NewVerificationCodeQueries(repo VerificationCodeReadStore, clk clock.Clock) VerificationCodeQueries {
	return &verificationCodeQueriesImpl{repo: repo, clock: clk}
}

func (q *verificationCodeQueriesImpl) ListIssued(ctx context.Context, issuedBy *uuid.UUID, cursor *Cursor, limit int) ([]*CodeView, *Cursor, error) {
	limit = ValidateLimit(limit)
	var rows []*CodeView
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.repo.FindFirstPage(ctx, issuedBy, int32(limit+1))
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, derr
		}
		rows, err = q.repo.FindKeyset(ctx, issuedBy, lastCreatedAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}

	now := q.clock.Now()
	for _, r := range rows {
		r.Status = string(statusOf(r, now))
	}
	return rows, next, nil
}

func statusOf(v *CodeView, now time.Time) verification.Status {
	return verification.Reconstruct(verification.Params{
		ID:            v.ID,
		Code:          v.Code,
		IssuedBy:      v.IssuedBy,
		CreatedAt:     v.CreatedAt,
		ExpiresAt:     v.ExpiresAt,
		Used:          v.Used,
		UsedBy:        v.UsedBy,
		UsedAt:        v.UsedAt,
		ReservedBy:    v.ReservedBy,
		ReservedUntil: v.ReservedUntil,
	}).Status(now)
}
