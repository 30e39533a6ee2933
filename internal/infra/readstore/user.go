package readstore

import (
	"context"

	"github.com/google/uuid"

	"solar-dispatch/internal/infra"
	"solar-dispatch/internal/pkg/pgconv"
	"solar-dispatch/internal/usecase/queries"
	"solar-dispatch/internal/usecase/shared"
)

const userColumns = `id, email, role, display_name, is_active`

type UserReadStore struct {
	db shared.DBTX
}

func NewUserReadStore(db shared.DBTX) *UserReadStore {
	return &UserReadStore{db: db}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	var v queries.AuthorizedUserView
	err := r.db.QueryRow(ctx, "SELECT "+userColumns+" FROM users WHERE id = $1", id).
		Scan(&v.ID, &v.Email, &v.Role, &v.DisplayName, &v.IsActive)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return &v, nil
}

func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	var (
		v    queries.AuthorizedUserView
		hash string
	)
	err := r.db.QueryRow(ctx, "SELECT "+userColumns+", password_hash FROM users WHERE email = $1", email).
		Scan(&v.ID, &v.Email, &v.Role, &v.DisplayName, &v.IsActive, &hash)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}
	return &v, hash, nil
}
