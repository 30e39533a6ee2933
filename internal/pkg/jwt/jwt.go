// Package jwt issues and checks the HS256 access tokens carried in the
// access_token cookie or the Authorization header.
package jwt

import (
	"errors"
	"time"

	"solar-dispatch/internal/domain/user"
	"solar-dispatch/internal/pkg/clock"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

const (
	issuer   = "solar-dispatch"
	audience = "dispatch-api"
	leeway   = 30 * time.Second
)

type Claims struct {
	UserID uuid.UUID `json:"user_id"`
	Role   string    `json:"role"`
	jwt.RegisteredClaims
}

type Service struct {
	secret   []byte
	lifetime time.Duration
	clock    clock.Clock
}

type Option func(*Service)

// WithClock pins issue and validation times, e.g. to mint expired tokens.
func WithClock(c clock.Clock) Option {
	return func(s *Service) { s.clock = c }
}

func NewService(secret string, lifetime time.Duration, opts ...Option) *Service {
	s := &Service{
		secret:   []byte(secret),
		lifetime: lifetime,
		clock:    clock.NewRealClock(),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *Service) TokenDuration() time.Duration {
	return s.lifetime
}

func (s *Service) GenerateToken(userID uuid.UUID, role user.Role) (string, error) {
	now := s.clock.Now()
	claims := Claims{
		UserID: userID,
		Role:   role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Audience:  jwt.ClaimStrings{audience},
			Subject:   userID.String(),
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.lifetime)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *Service) ValidateToken(raw string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims,
		func(*jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithAudience(audience),
		jwt.WithLeeway(leeway),
		jwt.WithTimeFunc(s.clock.Now),
	)
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, ErrExpiredToken
	case err != nil, !token.Valid, claims.UserID == uuid.Nil:
		return nil, ErrInvalidToken
	}
	return claims, nil
}
