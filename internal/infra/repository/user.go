package repository

import (
	"context"

	"solar-dispatch/internal/domain/user"
	"solar-dispatch/internal/infra"
	"solar-dispatch/internal/usecase/shared"

	"github.com/google/uuid"
)

type UserRepository struct {
	db shared.DBTX
}

func NewUserRepository(db shared.DBTX) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, userID uuid.UUID) error {
	tag, err := r.db.Exec(ctx, "UPDATE users SET last_login = now(), updated_at = now() WHERE id = $1", userID)
	if err != nil {
		return infra.WrapRepoErr("failed to update user last login", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

// Create inserts a new user. Used by seeding and fixtures.
func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	const query = `
INSERT INTO users (id, email, password_hash, role, display_name, is_active, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, now(), now())`
	_, err := r.db.Exec(ctx, query,
		u.ID(), u.Email().Value(), u.PasswordHash(), u.Role().String(), u.DisplayName(), u.IsActive())
	if err != nil {
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}
