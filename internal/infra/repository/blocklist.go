package repository

import (
	"context"

	"solar-dispatch/internal/infra"
	"solar-dispatch/internal/usecase/shared"

	"github.com/google/uuid"
)

type BlocklistRepository struct {
	db shared.DBTX
}

func NewBlocklistRepository(db shared.DBTX) *BlocklistRepository {
	return &BlocklistRepository{db: db}
}

func (r *BlocklistRepository) List(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, "SELECT salesman FROM salesman_blocklist ORDER BY created_at, salesman")
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list blocked salesmen", err)
	}
	defer rows.Close()

	out := []string{}
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, infra.WrapRepoErr("failed to scan blocked salesman", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate blocked salesmen", err)
	}
	return out, nil
}

// Replace must run inside a transaction so readers never see a half-written list.
func (r *BlocklistRepository) Replace(ctx context.Context, salesmen []string, actorID uuid.UUID) error {
	if _, err := r.db.Exec(ctx, "DELETE FROM salesman_blocklist"); err != nil {
		return infra.WrapRepoErr("failed to clear blocked salesmen", err)
	}
	if len(salesmen) == 0 {
		return nil
	}

	// WITH ORDINALITY keeps input order in created_at.
	const query = `
INSERT INTO salesman_blocklist (salesman, blocked_by, created_at)
SELECT s, $2, now() + (n * interval '1 microsecond')
FROM unnest($1::text[]) WITH ORDINALITY AS t(s, n)`
	if _, err := r.db.Exec(ctx, query, salesmen, actorID); err != nil {
		return infra.WrapRepoErr("failed to insert blocked salesmen", err)
	}
	return nil
}
