package bootstrap

import (
	"time"

	"solar-dispatch/internal/pkg/clock"
	"solar-dispatch/internal/pkg/config"
	"solar-dispatch/internal/pkg/errs"
	"solar-dispatch/internal/pkg/jwt"
	"solar-dispatch/internal/usecase/commands"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		newJWTService,
		commands.NewTokenValidator,
	),
)

// newJWTService shares the app clock so token expiry and code expiry agree
// on "now".
func newJWTService(cfg config.Config, clk clock.Clock) (*jwt.Service, error) {
	lifetime, err := time.ParseDuration(cfg.JWT.AccessTokenDuration)
	if err != nil {
		return nil, errs.Wrap(err, "invalid JWT_ACCESS_TOKEN_DURATION")
	}
	if len(cfg.JWT.Secret) < 16 {
		return nil, errs.New("JWT_SECRET must be at least 16 characters")
	}
	return jwt.NewService(cfg.JWT.Secret, lifetime, jwt.WithClock(clk)), nil
}
