//go:build unit || e2e

package builder

import (
	"time"

	"solar-dispatch/internal/domain/user"
	"solar-dispatch/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserBuilder struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         string
	DisplayName  string
	IsActive     bool
}

// NewUserBuilder starts from an active dispatch manager.
func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:           uuid.New(),
		Email:        "manager@example.com",
		PasswordHash: "hashed_password",
		Role:         string(user.RoleDispatchManager),
		DisplayName:  "调度员",
		IsActive:     true,
	}
}

// TeamUser is a construction team account, the only role that draws.
func TeamUser() *UserBuilder {
	return NewUserBuilder().
		WithEmail("team@example.com").
		WithRole(user.RoleConstructionTeam).
		WithDisplayName("北城施工队")
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithRole(role user.Role) *UserBuilder {
	u.Role = string(role)
	return u
}

func (u *UserBuilder) WithDisplayName(name string) *UserBuilder {
	u.DisplayName = name
	return u
}

func (u *UserBuilder) AsInactive() *UserBuilder {
	u.IsActive = false
	return u
}

// BuildDomain goes through NewUser so its validation applies; inactive users
// are reconstructed since NewUser always activates.
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}
	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, err
	}
	if u.IsActive {
		return user.NewUser(email, u.PasswordHash, role, u.DisplayName)
	}
	now := time.Now()
	return user.ReconstructUser(u.ID, email, u.PasswordHash, role, u.DisplayName, nil, false, now, now), nil
}

func (u *UserBuilder) BuildReadModel() *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:          u.ID,
		Email:       u.Email,
		Role:        u.Role,
		DisplayName: u.DisplayName,
		IsActive:    u.IsActive,
	}
}
