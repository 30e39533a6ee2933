package request

import (
	"solar-dispatch/internal/domain/user"
)

// LoginRequest bounds both fields; bcrypt only reads the first 72 bytes.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email,max=254"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

func (r LoginRequest) ToDomain() (user.Credentials, error) {
	return user.NewCredentials(r.Email, r.Password)
}
