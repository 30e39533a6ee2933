package repository

import (
	"context"
	"encoding/json"

	"solar-dispatch/internal/infra"
	"solar-dispatch/internal/pkg/errs"
	"solar-dispatch/internal/pkg/pgconv"
	"solar-dispatch/internal/usecase/shared"

	"github.com/google/uuid"
)

type AuditRepository struct {
	db shared.DBTX
}

func NewAuditRepository(db shared.DBTX) *AuditRepository {
	return &AuditRepository{db: db}
}

func (r *AuditRepository) Append(ctx context.Context, entry shared.AuditEntry) error {
	detail := []byte("{}")
	if len(entry.Detail) > 0 {
		b, err := json.Marshal(entry.Detail)
		if err != nil {
			return errs.Wrap(err, "encode audit detail")
		}
		detail = b
	}

	const query = `
INSERT INTO dispatch_audit_log (id, actor_id, action, customer_id, code_id, detail, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(ctx, query,
		uuid.New(),
		entry.ActorID,
		string(entry.Action),
		pgconv.UUIDPtrToPgtype(entry.CustomerID),
		pgconv.UUIDPtrToPgtype(entry.CodeID),
		detail,
		entry.CreatedAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to append audit entry", err)
	}
	return nil
}
